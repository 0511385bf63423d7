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
	fileName := flag.String("file", "", "workbook file name (defaults to orders.xlsx)")
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

	client, err := robinhood.NewClient(cfg.Robinhood, logger)
	if err != nil {
		logger.Error("Failed to create API client", "error", err,
			"hint", "set RH_ROBINHOOD_TOKEN or robinhood.token in config.yaml")
		os.Exit(1)
	}

	exp := exporter.New(client, logger)
	ctx := infrastructure.WithTraceID(context.Background(), uuid.NewString())

	logger.Info("Exporting order workbook", "dir", *dirPath)
	if err := exp.ExportOrderWorkbook(ctx, *dirPath, *fileName); err != nil {
		logger.Error("Workbook export failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Workbook export finished")
}
