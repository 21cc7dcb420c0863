// Command migrate applies the versioned migrations in db/migrations to the
// database named by the standard DB_* environment variables. It wraps the
// atlas CLI, which must be on PATH.
package main

import (
	"context"
	"log/slog"
	"os"

	"blueprint-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err.Error())
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://db/migrations",
	})
	if err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
}
