package factory_method

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors for the factory_method package.
var (
	// ErrEmptyOwner indicates a card requested for an empty owner name.
	ErrEmptyOwner = errors.New("factory_method: owner is empty")

	// ErrUnknownSerial indicates that Lookup found no card.
	ErrUnknownSerial = errors.New("factory_method: unknown serial")

	// ErrForeignProduct indicates that a Creator was asked to register a
	// product it did not build.
	ErrForeignProduct = errors.New("factory_method: product of another factory")

	// ErrDuplicateSerial indicates a card whose serial is already registered.
	ErrDuplicateSerial = errors.New("factory_method: duplicate serial")
)

// Product is anything a factory creates.
type Product interface {
	fmt.Stringer
	Use(w io.Writer) error
}

// Creator is the factory side. Create calls CreateProduct then
// RegisterProduct; implementations do not call each other.
type Creator interface {
	CreateProduct(owner string) (Product, error)
	RegisterProduct(p Product) error
}

// Create builds a product for owner and registers it with c.
func Create(c Creator, owner string) (Product, error) {
	p, err := c.CreateProduct(owner)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", owner, err)
	}
	if err = c.RegisterProduct(p); err != nil {
		return nil, fmt.Errorf("register %s: %w", p, err)
	}
	return p, nil
}

// Options configures an IDCardFactory.
type Options struct {
	Serial func() string
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithSerialFunc replaces the serial number generator. Panics on nil.
func WithSerialFunc(fn func() string) Option {
	if fn == nil {
		panic("factory_method: WithSerialFunc(nil)")
	}
	return func(o *Options) {
		o.Serial = fn
	}
}

// WithLogger logs every registration at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("factory_method: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions uses random UUIDs and a no-op logger.
func DefaultOptions() Options {
	return Options{Serial: uuid.NewString, Logger: zap.NewNop()}
}
