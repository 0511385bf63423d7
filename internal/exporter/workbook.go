package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// workbookExtension is the suffix for the all-category workbook report.
const workbookExtension = ".xlsx"

// Sheet names for the order workbook.
const (
	sheetStockOrders  = "Stock Orders"
	sheetOptionOrders = "Option Orders"
	sheetCryptoOrders = "Crypto Orders"
)

// ExportOrderWorkbook writes the completed order history of all three
// categories into a single xlsx workbook under dirPath, one sheet per
// category. fileName defaults to "orders.xlsx" when empty; any other
// suffix is rewritten to .xlsx. Sheets carry the same headers and rows as
// the corresponding CSV exports.
func (e *Exporter) ExportOrderWorkbook(ctx context.Context, dirPath, fileName string) error {
	path, err := resolveWorkbookPath(dirPath, fileName)
	if err != nil {
		return err
	}

	stockRows, err := e.collectStockRows(ctx)
	if err != nil {
		return err
	}
	optionRows, err := e.collectOptionRows(ctx)
	if err != nil {
		return err
	}
	cryptoRows, err := e.collectCryptoRows(ctx)
	if err != nil {
		return err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheets := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{sheetStockOrders, stockHeader, stockRows},
		{sheetOptionOrders, optionHeader, optionRows},
		{sheetCryptoOrders, cryptoHeader, cryptoRows},
	}

	for _, sheet := range sheets {
		if _, err := workbook.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet.name, err)
		}
		if err := writeSheet(workbook, sheet.name, sheet.header, sheet.rows); err != nil {
			return err
		}
	}

	// Drop the default sheet excelize creates with the workbook.
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	e.logger.Info("order workbook export complete",
		slog.String("path", path),
		slog.Int("stock_rows", len(stockRows)),
		slog.Int("option_rows", len(optionRows)),
		slog.Int("crypto_rows", len(cryptoRows)))

	return nil
}

// resolveWorkbookPath mirrors ResolveExportPath for the xlsx report.
func resolveWorkbookPath(dirPath, fileName string) (string, error) {
	dir, err := filepath.Abs(dirPath)
	if err != nil {
		return "", fmt.Errorf("resolve export directory: %w", err)
	}

	if fileName == "" {
		fileName = "orders" + workbookExtension
	} else {
		fileName = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)) + workbookExtension
	}

	return filepath.Join(dir, fileName), nil
}

// writeSheet writes a header row followed by data rows.
func writeSheet(workbook *excelize.File, sheet string, header []string, rows [][]string) error {
	if err := setStringRow(workbook, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setStringRow(workbook, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setStringRow(workbook *excelize.File, sheet string, rowNumber int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, rowNumber, err)
	}

	row := make([]interface{}, len(values))
	for i, value := range values {
		row[i] = value
	}

	if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write sheet %s row %d: %w", sheet, rowNumber, err)
	}
	return nil
}

// collectStockRows materializes the stock export rows for the workbook.
func (e *Exporter) collectStockRows(ctx context.Context) ([][]string, error) {
	orders, err := e.source.AllStockOrders(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch stock orders: %w", err)
	}

	var rows [][]string
	for _, order := range orders {
		records, err := e.stockOrderRows(ctx, order)
		if err != nil {
			return nil, err
		}
		rows = append(rows, records...)
	}
	return rows, nil
}

// collectCryptoRows materializes the crypto export rows for the workbook.
func (e *Exporter) collectCryptoRows(ctx context.Context) ([][]string, error) {
	orders, err := e.source.AllCryptoOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch crypto orders: %w", err)
	}

	var rows [][]string
	for _, order := range orders {
		record, ok, err := e.cryptoOrderRow(ctx, order)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, record)
		}
	}
	return rows, nil
}

// collectOptionRows materializes the option export rows for the workbook.
func (e *Exporter) collectOptionRows(ctx context.Context) ([][]string, error) {
	orders, err := e.source.AllOptionOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch option orders: %w", err)
	}

	var rows [][]string
	for _, order := range orders {
		records, err := e.optionOrderRows(ctx, order)
		if err != nil {
			return nil, err
		}
		rows = append(rows, records...)
	}
	return rows, nil
}
