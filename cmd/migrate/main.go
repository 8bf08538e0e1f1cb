package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"store-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/001_initial_schema.sql declaratively: atlas diffs the
// live database against the schema file using a throwaway dev database.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dbCfg, migrateCfg, err := config.LoadMigrationConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	schemaPath, err := filepath.Abs(migrateCfg.SchemaFile)
	if err != nil {
		logger.Error("Invalid schema file", "path", migrateCfg.SchemaFile, "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", migrateCfg.AtlasPath)
	if err != nil {
		logger.Error("Failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + schemaPath,
		DevURL:      migrateCfg.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("Schema apply failed", "error", err)
		os.Exit(1)
	}

	if *dryRun {
		for _, stmt := range res.Changes.Pending {
			logger.Info("Pending", "statement", stmt)
		}
		return
	}
	logger.Info("Schema applied", "statements", len(res.Changes.Applied))
}
