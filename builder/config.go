// SPDX-License-Identifier: MIT
// Package: lvlath-patterns/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • outputDir = "."
//   • logger    = zap.NewNop()

package builder

import "go.uber.org/zap"

// builderConfig aggregates all knobs used by builders.
type builderConfig struct {
	// Directory HTMLBuilder writes its file into.
	outputDir string
	// Logger for build events; never nil after newBuilderConfig.
	logger *zap.Logger
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		outputDir: ".",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
