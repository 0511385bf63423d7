package robinhood

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"rhcli/pkg/contracts/domain"
)

// AllStockOrders returns the complete equity order history, aggregated
// across all result pages. accountNumber narrows the history to one
// account when non-empty.
func (c *Client) AllStockOrders(ctx context.Context, accountNumber string) ([]domain.StockOrder, error) {
	first := c.endpoint("/orders/")
	if accountNumber != "" {
		first += "?account_number=" + url.QueryEscape(accountNumber)
	}

	orders, err := fetchAll[domain.StockOrder](ctx, c, first)
	if err != nil {
		return nil, fmt.Errorf("fetch stock orders: %w", err)
	}
	c.logger.Info("fetched stock order history", slog.Int("orders", len(orders)))
	return orders, nil
}

// AllCryptoOrders returns the complete cryptocurrency order history.
func (c *Client) AllCryptoOrders(ctx context.Context) ([]domain.CryptoOrder, error) {
	orders, err := fetchAll[domain.CryptoOrder](ctx, c, c.cryptoEndpoint("/orders/"))
	if err != nil {
		return nil, fmt.Errorf("fetch crypto orders: %w", err)
	}
	c.logger.Info("fetched crypto order history", slog.Int("orders", len(orders)))
	return orders, nil
}

// AllOptionOrders returns the complete option order history.
func (c *Client) AllOptionOrders(ctx context.Context) ([]domain.OptionOrder, error) {
	orders, err := fetchAll[domain.OptionOrder](ctx, c, c.endpoint("/options/orders/"))
	if err != nil {
		return nil, fmt.Errorf("fetch option orders: %w", err)
	}
	c.logger.Info("fetched option order history", slog.Int("orders", len(orders)))
	return orders, nil
}

// SymbolByInstrumentURL dereferences an equity instrument URL and returns
// its ticker symbol.
func (c *Client) SymbolByInstrumentURL(ctx context.Context, instrumentURL string) (string, error) {
	var instrument struct {
		Symbol string `json:"symbol"`
	}
	if err := c.get(ctx, instrumentURL, &instrument); err != nil {
		return "", fmt.Errorf("fetch instrument: %w", err)
	}
	return instrument.Symbol, nil
}

// CryptoSymbolByPairID resolves a currency-pair id to its quote symbol.
func (c *Client) CryptoSymbolByPairID(ctx context.Context, pairID string) (string, error) {
	var quote struct {
		Symbol string `json:"symbol"`
	}
	quoteURL := c.endpoint("/marketdata/forex/quotes/" + url.PathEscape(pairID) + "/")
	if err := c.get(ctx, quoteURL, &quote); err != nil {
		return "", fmt.Errorf("fetch crypto quote: %w", err)
	}
	return quote.Symbol, nil
}

// OptionInstrument dereferences an option instrument URL and returns the
// contract details used in the option export rows.
func (c *Client) OptionInstrument(ctx context.Context, instrumentURL string) (domain.OptionInstrument, error) {
	var instrument domain.OptionInstrument
	if err := c.get(ctx, instrumentURL, &instrument); err != nil {
		return domain.OptionInstrument{}, fmt.Errorf("fetch option instrument: %w", err)
	}
	return instrument, nil
}
