package main

import (
	"go.uber.org/zap"
)

// newLogger returns a development logger when verbose, and otherwise a
// production one that only reports warnings and errors. Both write onto
// STDERR.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
