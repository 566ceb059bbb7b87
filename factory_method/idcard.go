package factory_method

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// IDCard is the concrete product.
type IDCard struct {
	owner  string
	serial string
}

func (c *IDCard) Owner() string  { return c.owner }
func (c *IDCard) Serial() string { return c.serial }

// String renders "[IDCard:owner]".
func (c *IDCard) String() string { return fmt.Sprintf("[IDCard:%s]", c.owner) }

// Use writes "Using owner's card.".
func (c *IDCard) Use(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Using %s's card.\n", c.owner)
	return err
}

// IDCardFactory creates IDCards and keeps a registry of them.
type IDCardFactory struct {
	w      io.Writer
	opts   Options
	owners []string
	cards  map[string]*IDCard // by serial
}

// NewIDCardFactory returns a factory that reports its steps to w.
func NewIDCardFactory(w io.Writer, opts ...Option) *IDCardFactory {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &IDCardFactory{w: w, opts: cfg, cards: make(map[string]*IDCard)}
}

// CreateProduct builds a card for owner.
func (f *IDCardFactory) CreateProduct(owner string) (Product, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if _, err := fmt.Fprintf(f.w, "Creating card for %s.\n", owner); err != nil {
		return nil, err
	}
	return &IDCard{owner: owner, serial: f.opts.Serial()}, nil
}

// RegisterProduct records a card built by this factory. A serial may be
// registered once; a write failure leaves the registry unchanged.
func (f *IDCardFactory) RegisterProduct(p Product) error {
	card, ok := p.(*IDCard)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignProduct, p)
	}
	if card == nil {
		return fmt.Errorf("%w: nil card", ErrForeignProduct)
	}
	if _, dup := f.cards[card.serial]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSerial, card.serial)
	}
	// Nothing is recorded unless the report line was written.
	if _, err := fmt.Fprintf(f.w, "Registered %s.\n", card); err != nil {
		return err
	}
	f.cards[card.serial] = card
	f.owners = append(f.owners, card.owner)
	f.opts.Logger.Debug("card registered",
		zap.String("owner", card.owner),
		zap.String("serial", card.serial),
	)
	return nil
}

// Owners returns the owners in registration order.
func (f *IDCardFactory) Owners() []string {
	out := make([]string, len(f.owners))
	copy(out, f.owners)
	return out
}

// Lookup returns the card with the given serial.
func (f *IDCardFactory) Lookup(serial string) (*IDCard, error) {
	card, ok := f.cards[serial]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSerial, serial)
	}
	return card, nil
}

var (
	_ Product = (*IDCard)(nil)
	_ Creator = (*IDCardFactory)(nil)
)
