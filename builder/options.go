// SPDX-License-Identifier: MIT
// Package: lvlath-patterns/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Builders themselves never panic.

package builder

import (
	"go.uber.org/zap"
)

// BuilderOption customizes a builder by mutating builderConfig before use.
type BuilderOption func(*builderConfig)

// WithOutputDir sets the directory HTMLBuilder writes into.
// Panics on an empty dir; use "." for the working directory.
func WithOutputDir(dir string) BuilderOption {
	if dir == "" {
		panic("builder: WithOutputDir(\"\")")
	}
	return func(c *builderConfig) {
		c.outputDir = dir
	}
}

// WithLogger attaches a logger for build events. Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
