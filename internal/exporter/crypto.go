package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"rhcli/pkg/contracts/domain"
)

// cryptoHeader matches the stock export column contract.
var cryptoHeader = []string{
	"symbol",
	"date",
	"order_type",
	"side",
	"fees",
	"quantity",
	"average_price",
}

// ExportCompletedCryptoOrders writes all completed cryptocurrency orders
// to a CSV file under dirPath. fileName defaults to "crypto_orders.csv"
// when empty.
//
// Only fully filled orders without a cancel URL produce a row; unlike the
// stock export there is no partial-execution branch for cancelled orders.
// A missing fee field is written as 0.0 rather than treated as an error.
func (e *Exporter) ExportCompletedCryptoOrders(ctx context.Context, dirPath, fileName string) error {
	path, err := ResolveExportPath(dirPath, fileName, CategoryCrypto)
	if err != nil {
		return err
	}

	orders, err := e.source.AllCryptoOrders(ctx)
	if err != nil {
		return fmt.Errorf("fetch crypto orders: %w", err)
	}

	stream, err := NewStreamWriter(path, cryptoHeader)
	if err != nil {
		return err
	}

	rows := 0
	for _, order := range orders {
		record, ok, err := e.cryptoOrderRow(ctx, order)
		if err != nil {
			stream.Close()
			return err
		}
		if !ok {
			continue
		}
		if err := stream.WriteRecord(record); err != nil {
			stream.Close()
			return fmt.Errorf("write crypto order row: %w", err)
		}
		rows++
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	e.logger.Info("crypto order export complete",
		slog.String("path", path),
		slog.Int("orders", len(orders)),
		slog.Int("rows", rows))

	return nil
}

// cryptoOrderRow projects one crypto order onto its output row. ok is
// false when the order is not a completed transaction.
func (e *Exporter) cryptoOrderRow(ctx context.Context, order domain.CryptoOrder) ([]string, bool, error) {
	if order.State != domain.OrderStateFilled || order.CancelURL != nil {
		return nil, false, nil
	}

	symbol, err := e.source.CryptoSymbolByPairID(ctx, order.CurrencyPairID)
	if err != nil {
		return nil, false, fmt.Errorf("resolve symbol for order %s: %w", order.ID, err)
	}

	fees := "0.0"
	if order.Fees != nil {
		fees = *order.Fees
	}

	return []string{
		symbol,
		order.LastTransactionAt,
		order.Type,
		string(order.Side),
		fees,
		order.Quantity,
		order.AveragePrice,
	}, true, nil
}
