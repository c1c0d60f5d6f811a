// Command sensorctl is a terminal client for the dashboard backend. It works
// directly against the configured store and keeps the logged-in user in the
// session file (session.path).
//
// Usage:
//
//	sensorctl login -u admin -p admin123
//	sensorctl whoami
//	sensorctl sensors [-search text] [-type Temperature]
//	sensorctl fleet [-search text] [-status Online]
//	sensorctl clients [-search text]
//	sensorctl orders [-status Pending] [-client C001]
//	sensorctl alerts [-all]
//	sensorctl dashboard
//	sensorctl export -what sensors|orders -out file.xlsx
//	sensorctl logout
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sensorfactory/nexus/internal/app"
	"github.com/sensorfactory/nexus/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sensorctl: %v\n", err)
		os.Exit(1)
	}
	// Info logs would interleave with command output.
	if cfg.Log.Level == "info" {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = "text"
	logger := app.NewLogger(cfg.Log)

	os.Exit(run(ctx, *cfg, logger, os.Args[1:], os.Stdout, os.Stderr))
}
