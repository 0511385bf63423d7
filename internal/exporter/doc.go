// Package exporter writes a brokerage account's completed order history to
// delimited report files.
//
// This package contains three main components:
//
// Export path resolution: ResolveExportPath and NormalizeExtension build the
// destination file path from a directory, an optional file name, and the
// order category, always ending in the canonical .csv extension.
//
// Exporter: per-category export operations (stock, crypto, option) that
// fetch the full order history through an OrderSource, keep only completed
// transactions, and stream one row per qualifying order, execution, or leg.
//
// Workbook export: a companion operation that collects the same rows for
// all three categories into a single xlsx workbook, one sheet per category.
//
// Example usage:
//
//	client, err := robinhood.NewClient(cfg.Robinhood, logger)
//	if err != nil {
//		return err
//	}
//
//	exp := exporter.New(client, logger)
//	err = exp.ExportCompletedStockOrders(ctx, "data/reports", "", "")
package exporter
