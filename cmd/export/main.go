package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"rhcli/internal/config"
	"rhcli/internal/exporter"
	"rhcli/internal/infrastructure"
	"rhcli/internal/robinhood"
)

func main() {
	dirPath := flag.String("dir", "", "output directory (defaults to export.output_dir from config)")
	fileName := flag.String("file", "", "output file name (defaults to {category}_orders.csv)")
	category := flag.String("category", "all", "order category to export: stock, option, crypto, or all")
	accountNumber := flag.String("account", "", "optional account number filter for stock orders")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *dirPath == "" {
		*dirPath = cfg.Export.OutputDir
	}

	var categories []string
	switch *category {
	case "all":
		if *fileName != "" {
			logger.Error("A file name can only be combined with a single category")
			os.Exit(1)
		}
		categories = []string{exporter.CategoryStock, exporter.CategoryOption, exporter.CategoryCrypto}
	case exporter.CategoryStock, exporter.CategoryOption, exporter.CategoryCrypto:
		categories = []string{*category}
	default:
		logger.Error("Unknown category", "category", *category)
		os.Exit(1)
	}

	client, err := robinhood.NewClient(cfg.Robinhood, logger)
	if err != nil {
		logger.Error("Failed to create API client", "error", err,
			"hint", "set RH_ROBINHOOD_TOKEN or robinhood.token in config.yaml")
		os.Exit(1)
	}

	exp := exporter.New(client, logger)
	ctx := infrastructure.WithTraceID(context.Background(), uuid.NewString())

	for _, cat := range categories {
		logger.Info("Exporting completed orders", "category", cat, "dir", *dirPath)

		switch cat {
		case exporter.CategoryStock:
			err = exp.ExportCompletedStockOrders(ctx, *dirPath, *fileName, *accountNumber)
		case exporter.CategoryOption:
			err = exp.ExportCompletedOptionOrders(ctx, *dirPath, *fileName)
		case exporter.CategoryCrypto:
			err = exp.ExportCompletedCryptoOrders(ctx, *dirPath, *fileName)
		}
		if err != nil {
			logger.Error("Export failed", "category", cat, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Export finished", "categories", len(categories))
}
