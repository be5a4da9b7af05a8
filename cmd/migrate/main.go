package main

import (
	"context"
	"log/slog"
	"os"

	"taller-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the versioned migrations under migrations/ against the database
// from the environment. Run before the API server on deploy.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS("migrations")),
	)
	if err != nil {
		slog.Error("failed to prepare migration workdir", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := workdir.Close(); closeErr != nil {
			slog.Warn("failed to clean up migration workdir", "error", closeErr)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	// Regenerate the checksum file so the directory does not need a committed
	// atlas.sum.
	if err := client.MigrateHash(context.Background(), &atlasexec.MigrateHashParams{}); err != nil {
		slog.Error("failed to hash migration directory", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
	)
}
