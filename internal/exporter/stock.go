package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"rhcli/pkg/contracts/domain"
)

// stockHeader is the fixed column contract for the stock export.
// Downstream consumers parse by position, so the order must not change.
var stockHeader = []string{
	"symbol",
	"date",
	"order_type",
	"side",
	"fees",
	"quantity",
	"average_price",
}

// ExportCompletedStockOrders writes all completed equity orders to a CSV
// file under dirPath. fileName defaults to "stock_orders.csv" when empty;
// accountNumber narrows the history to one account when non-empty.
//
// A filled order with no cancellation marker produces one row. A cancelled
// order that was partially executed produces one row per execution, using
// that execution's own timestamp, price, and quantity. Orders in any other
// state produce no rows.
func (e *Exporter) ExportCompletedStockOrders(ctx context.Context, dirPath, fileName, accountNumber string) error {
	path, err := ResolveExportPath(dirPath, fileName, CategoryStock)
	if err != nil {
		return err
	}

	orders, err := e.source.AllStockOrders(ctx, accountNumber)
	if err != nil {
		return fmt.Errorf("fetch stock orders: %w", err)
	}

	stream, err := NewStreamWriter(path, stockHeader)
	if err != nil {
		return err
	}

	rows := 0
	for _, order := range orders {
		records, err := e.stockOrderRows(ctx, order)
		if err != nil {
			stream.Close()
			return err
		}
		for _, record := range records {
			if err := stream.WriteRecord(record); err != nil {
				stream.Close()
				return fmt.Errorf("write stock order row: %w", err)
			}
			rows++
		}
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	e.logger.Info("stock order export complete",
		slog.String("path", path),
		slog.Int("orders", len(orders)),
		slog.Int("rows", rows))

	return nil
}

// stockOrderRows projects one order onto its output rows. Completed means
// either fully filled without a cancellation marker, or cancelled after
// partial execution.
func (e *Exporter) stockOrderRows(ctx context.Context, order domain.StockOrder) ([][]string, error) {
	switch {
	case order.State == domain.OrderStateCancelled && len(order.Executions) > 0:
		symbol, err := e.source.SymbolByInstrumentURL(ctx, order.Instrument)
		if err != nil {
			return nil, fmt.Errorf("resolve symbol for order %s: %w", order.ID, err)
		}
		rows := make([][]string, 0, len(order.Executions))
		for _, partial := range order.Executions {
			rows = append(rows, []string{
				symbol,
				partial.Timestamp,
				order.Type,
				string(order.Side),
				order.Fees,
				partial.Quantity,
				partial.Price,
			})
		}
		return rows, nil

	case order.State == domain.OrderStateFilled && order.Cancel == nil:
		symbol, err := e.source.SymbolByInstrumentURL(ctx, order.Instrument)
		if err != nil {
			return nil, fmt.Errorf("resolve symbol for order %s: %w", order.ID, err)
		}
		return [][]string{{
			symbol,
			order.LastTransactionAt,
			order.Type,
			string(order.Side),
			order.Fees,
			order.Quantity,
			order.AveragePrice,
		}}, nil

	default:
		return nil, nil
	}
}
