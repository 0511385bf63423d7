package domain

// OrderState represents the lifecycle state of a brokerage order.
type OrderState string

const (
	OrderStateQueued    OrderState = "queued"
	OrderStateConfirmed OrderState = "confirmed"
	OrderStatePartial   OrderState = "partially_filled"
	OrderStateFilled    OrderState = "filled"
	OrderStateCancelled OrderState = "cancelled"
	OrderStateRejected  OrderState = "rejected"
	OrderStateFailed    OrderState = "failed"
)

// OrderSide represents the side of an order or option leg.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// Execution is one partial or full fill event belonging to an order or an
// option leg. Numeric fields are kept as the strings the API returns;
// exported rows carry them verbatim and only the option leg aggregate
// parses them.
type Execution struct {
	Timestamp string `json:"timestamp"`
	Price     string `json:"price"`
	Quantity  string `json:"quantity"`
}

// StockOrder is an equity order record from the order history endpoint.
// Cancel is the cancellation URL the API attaches to orders that can still
// be cancelled; nil means the order carries no cancellation marker.
type StockOrder struct {
	ID                string      `json:"id"`
	Instrument        string      `json:"instrument"`
	State             OrderState  `json:"state"`
	Side              OrderSide   `json:"side"`
	Type              string      `json:"type"`
	Quantity          string      `json:"quantity"`
	AveragePrice      string      `json:"average_price"`
	Fees              string      `json:"fees"`
	LastTransactionAt string      `json:"last_transaction_at"`
	Cancel            *string     `json:"cancel"`
	Executions        []Execution `json:"executions"`
}

// CryptoOrder is a cryptocurrency order record. Fees is a pointer because
// the venue omits the field on some records; a missing fee is treated as
// zero cost, not an error.
type CryptoOrder struct {
	ID                string     `json:"id"`
	CurrencyPairID    string     `json:"currency_pair_id"`
	State             OrderState `json:"state"`
	Side              OrderSide  `json:"side"`
	Type              string     `json:"type"`
	Quantity          string     `json:"quantity"`
	AveragePrice      string     `json:"average_price"`
	Fees              *string    `json:"fees"`
	LastTransactionAt string     `json:"last_transaction_at"`
	CancelURL         *string    `json:"cancel_url"`
}

// OptionLeg is one side (buy/sell, single strike) of a possibly multi-leg
// option order. Option is the URL of the option instrument record.
type OptionLeg struct {
	Side       OrderSide   `json:"side"`
	Option     string      `json:"option"`
	Executions []Execution `json:"executions"`
}

// OptionOrder is an option order record with its legs.
type OptionOrder struct {
	ID                string      `json:"id"`
	ChainSymbol       string      `json:"chain_symbol"`
	State             OrderState  `json:"state"`
	Direction         string      `json:"direction"`
	Type              string      `json:"type"`
	OpeningStrategy   string      `json:"opening_strategy"`
	ClosingStrategy   string      `json:"closing_strategy"`
	Quantity          string      `json:"quantity"`
	Price             string      `json:"price"`
	ProcessedQuantity string      `json:"processed_quantity"`
	RegulatoryFees    string      `json:"regulatory_fees"`
	CreatedAt         string      `json:"created_at"`
	Legs              []OptionLeg `json:"legs"`
}

// OptionInstrument is the option contract detail record behind a leg's
// instrument URL.
type OptionInstrument struct {
	ID             string `json:"id"`
	ExpirationDate string `json:"expiration_date"`
	StrikePrice    string `json:"strike_price"`
	Type           string `json:"type"`
}
