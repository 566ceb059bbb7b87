package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrorKind classifies a LoadError.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindInvalidConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidConfig:
		return "invalid config"
	default:
		return "unknown"
	}
}

// LoadError wraps every failure of Load with the file path.
type LoadError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Op: "config.load", Kind: KindNotFound, Path: path, Err: err}
	}

	cfg, err := Parse(b)
	if err != nil {
		return Config{}, &LoadError{Op: "config.load", Kind: KindInvalidConfig, Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes YAML bytes over Default. Unknown keys are rejected.
// An empty document yields Default.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
