package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rhcli/pkg/contracts/domain"
)

// optionHeader is the fixed column contract for the option export.
var optionHeader = []string{
	"chain_symbol",
	"expiration_date",
	"strike_price",
	"option_type",
	"option_id",
	"side",
	"order_created_at",
	"direction",
	"order_quantity",
	"order_type",
	"opening_strategy",
	"closing_strategy",
	"price",
	"processed_quantity",
	"fees",
}

// ExportCompletedOptionOrders writes all filled option orders to a CSV
// file under dirPath, one row per leg. fileName defaults to
// "option_orders.csv" when empty.
//
// Each row combines order-level fields, the leg's side, the leg's option
// instrument details, and the leg's execution aggregate. Legs without any
// executions are skipped with a warning.
func (e *Exporter) ExportCompletedOptionOrders(ctx context.Context, dirPath, fileName string) error {
	path, err := ResolveExportPath(dirPath, fileName, CategoryOption)
	if err != nil {
		return err
	}

	orders, err := e.source.AllOptionOrders(ctx)
	if err != nil {
		return fmt.Errorf("fetch option orders: %w", err)
	}

	stream, err := NewStreamWriter(path, optionHeader)
	if err != nil {
		return err
	}

	rows := 0
	for _, order := range orders {
		records, err := e.optionOrderRows(ctx, order)
		if err != nil {
			stream.Close()
			return err
		}
		for _, record := range records {
			if err := stream.WriteRecord(record); err != nil {
				stream.Close()
				return fmt.Errorf("write option order row: %w", err)
			}
			rows++
		}
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	e.logger.Info("option order export complete",
		slog.String("path", path),
		slog.Int("orders", len(orders)),
		slog.Int("rows", rows))

	return nil
}

// optionOrderRows projects one filled option order onto one row per leg.
func (e *Exporter) optionOrderRows(ctx context.Context, order domain.OptionOrder) ([][]string, error) {
	if order.State != domain.OrderStateFilled {
		return nil, nil
	}

	rows := make([][]string, 0, len(order.Legs))
	for _, leg := range order.Legs {
		instrument, err := e.source.OptionInstrument(ctx, leg.Option)
		if err != nil {
			return nil, fmt.Errorf("fetch option instrument for order %s: %w", order.ID, err)
		}

		totalQuantity, avgPrice, err := AggregateExecutions(leg.Executions)
		if err != nil {
			if errors.Is(err, ErrNoExecutions) {
				e.logger.Warn("skipping option leg without executions",
					slog.String("order_id", order.ID),
					slog.String("option", leg.Option))
				continue
			}
			return nil, fmt.Errorf("aggregate executions for order %s: %w", order.ID, err)
		}

		// The per-leg execution aggregate supersedes the order-level
		// nominal quantity and price.
		rows = append(rows, []string{
			order.ChainSymbol,
			instrument.ExpirationDate,
			instrument.StrikePrice,
			instrument.Type,
			instrument.ID,
			string(leg.Side),
			order.CreatedAt,
			order.Direction,
			formatFloat(totalQuantity),
			order.Type,
			order.OpeningStrategy,
			order.ClosingStrategy,
			formatFloat(avgPrice),
			order.ProcessedQuantity,
			order.RegulatoryFees,
		})
	}

	return rows, nil
}
