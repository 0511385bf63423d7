package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"rhcli/pkg/contracts/domain"
)

// fakeSource is an in-memory OrderSource for exporter tests.
type fakeSource struct {
	stockOrders  []domain.StockOrder
	cryptoOrders []domain.CryptoOrder
	optionOrders []domain.OptionOrder

	symbols     map[string]string // instrument URL -> symbol
	pairSymbols map[string]string // currency pair id -> symbol
	instruments map[string]domain.OptionInstrument

	stockErr  error
	cryptoErr error
	optionErr error
}

func (f *fakeSource) AllStockOrders(ctx context.Context, accountNumber string) ([]domain.StockOrder, error) {
	if f.stockErr != nil {
		return nil, f.stockErr
	}
	return f.stockOrders, nil
}

func (f *fakeSource) AllCryptoOrders(ctx context.Context) ([]domain.CryptoOrder, error) {
	if f.cryptoErr != nil {
		return nil, f.cryptoErr
	}
	return f.cryptoOrders, nil
}

func (f *fakeSource) AllOptionOrders(ctx context.Context) ([]domain.OptionOrder, error) {
	if f.optionErr != nil {
		return nil, f.optionErr
	}
	return f.optionOrders, nil
}

func (f *fakeSource) SymbolByInstrumentURL(ctx context.Context, instrumentURL string) (string, error) {
	symbol, ok := f.symbols[instrumentURL]
	if !ok {
		return "", fmt.Errorf("unknown instrument %s", instrumentURL)
	}
	return symbol, nil
}

func (f *fakeSource) CryptoSymbolByPairID(ctx context.Context, pairID string) (string, error) {
	symbol, ok := f.pairSymbols[pairID]
	if !ok {
		return "", fmt.Errorf("unknown currency pair %s", pairID)
	}
	return symbol, nil
}

func (f *fakeSource) OptionInstrument(ctx context.Context, instrumentURL string) (domain.OptionInstrument, error) {
	instrument, ok := f.instruments[instrumentURL]
	if !ok {
		return domain.OptionInstrument{}, fmt.Errorf("unknown option instrument %s", instrumentURL)
	}
	return instrument, nil
}

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stringPtr(s string) *string {
	return &s
}
