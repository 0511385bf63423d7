package exporter

import (
	"context"
	"log/slog"

	"rhcli/pkg/contracts/domain"
)

// OrderSource is the authenticated API surface the export operations
// consume. Order lists come back fully aggregated across result pages.
type OrderSource interface {
	AllStockOrders(ctx context.Context, accountNumber string) ([]domain.StockOrder, error)
	AllCryptoOrders(ctx context.Context) ([]domain.CryptoOrder, error)
	AllOptionOrders(ctx context.Context) ([]domain.OptionOrder, error)
	SymbolByInstrumentURL(ctx context.Context, instrumentURL string) (string, error)
	CryptoSymbolByPairID(ctx context.Context, pairID string) (string, error)
	OptionInstrument(ctx context.Context, instrumentURL string) (domain.OptionInstrument, error)
}

// Exporter writes completed order history to report files.
type Exporter struct {
	source OrderSource
	logger *slog.Logger
}

// New creates an exporter backed by the given order source.
func New(source OrderSource, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		source: source,
		logger: logger,
	}
}
