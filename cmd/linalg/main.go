// SPDX-License-Identifier: MIT

// Command linalg factorizes a reproducible random matrix and logs how well
// each factorization reconstructs it.
//
// It is configured entirely through LINALG_* environment variables:
//
//	LINALG_ROWS=6 LINALG_COLS=6 LINALG_METHOD=gram-schmidt LINALG_PRECISION=float32 linalg
//
// See internal/config for the full list and defaults.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log = logging.NewDefault()
		log.Warn("falling back to default logger", zap.String("level", cfg.Log.Level), zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	if err = run(cfg, log); err != nil {
		log.Error("diagnostics failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
