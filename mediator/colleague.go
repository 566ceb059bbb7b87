package mediator

import (
	"fmt"

	"go.uber.org/zap"
)

// base carries what every colleague shares.
type base struct {
	name     string
	mediator Mediator
	enabled  bool
	logger   *zap.Logger
}

func (b *base) Name() string           { return b.name }
func (b *base) SetMediator(m Mediator) { b.mediator = m }
func (b *base) Enabled() bool          { return b.enabled }

// SetColleagueEnabled is called by the mediator only.
func (b *base) SetColleagueEnabled(e bool) {
	if b.enabled != e && b.logger != nil {
		b.logger.Debug("colleague toggled", zap.String("colleague", b.name), zap.Bool("enabled", e))
	}
	b.enabled = e
}

func (b *base) changed() {
	if b.mediator != nil {
		b.mediator.ColleagueChanged()
	}
}

func (b *base) check() error {
	if !b.enabled {
		return fmt.Errorf("%w: %s", ErrDisabled, b.name)
	}
	return nil
}

// CheckBox is one button of a radio group.
type CheckBox struct {
	base
	state bool
	group []*CheckBox
}

// State reports whether the box is selected.
func (c *CheckBox) State() bool { return c.state }

// Click selects c and deselects the rest of its group.
func (c *CheckBox) Click() error {
	if err := c.check(); err != nil {
		return err
	}
	for _, other := range c.group {
		other.state = other == c
	}
	c.changed()
	return nil
}

// radioGroup links boxes so that exactly one is selected.
func radioGroup(boxes ...*CheckBox) {
	for _, b := range boxes {
		b.group = boxes
	}
}

// TextField holds a line of text.
type TextField struct {
	base
	text string
}

// Text returns the current contents.
func (t *TextField) Text() string { return t.text }

// SetText replaces the contents.
func (t *TextField) SetText(s string) error {
	if err := t.check(); err != nil {
		return err
	}
	t.text = s
	t.changed()
	return nil
}

// Button runs an action when pressed.
type Button struct {
	base
	action func()
}

// Press runs the button's action.
func (b *Button) Press() error {
	if err := b.check(); err != nil {
		return err
	}
	if b.action != nil {
		b.action()
	}
	b.changed()
	return nil
}

var (
	_ Colleague = (*CheckBox)(nil)
	_ Colleague = (*TextField)(nil)
	_ Colleague = (*Button)(nil)
)
