package mediator

import (
	"fmt"
	"io"
)

// LoginFrame is the concrete mediator.
type LoginFrame struct {
	Guest    *CheckBox
	Login    *CheckBox
	Username *TextField
	Password *TextField
	OK       *Button
	Cancel   *Button

	opts    Options
	outcome Outcome
}

// NewLoginFrame builds the dialog with Guest selected.
func NewLoginFrame(opts ...Option) *LoginFrame {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &LoginFrame{opts: cfg}
	f.CreateColleagues()
	f.Guest.state = true
	f.ColleagueChanged()
	return f
}

// CreateColleagues builds the six controls and registers f with each.
func (f *LoginFrame) CreateColleagues() {
	mk := func(name string) base {
		return base{name: name, mediator: f, enabled: true, logger: f.opts.Logger}
	}

	f.Guest = &CheckBox{base: mk("guest")}
	f.Login = &CheckBox{base: mk("login")}
	radioGroup(f.Guest, f.Login)

	f.Username = &TextField{base: mk("username")}
	f.Password = &TextField{base: mk("password")}

	f.OK = &Button{base: mk("ok"), action: func() { f.outcome = Submitted }}
	f.Cancel = &Button{base: mk("cancel"), action: func() { f.outcome = Cancelled }}
}

// ColleagueChanged recomputes every enabled flag from the current state.
func (f *LoginFrame) ColleagueChanged() {
	if f.Guest.State() {
		f.Username.SetColleagueEnabled(false)
		f.Password.SetColleagueEnabled(false)
		f.OK.SetColleagueEnabled(true)
		return
	}

	f.Username.SetColleagueEnabled(true)
	hasUser := f.Username.Text() != ""
	f.Password.SetColleagueEnabled(hasUser)
	f.OK.SetColleagueEnabled(hasUser && f.Password.Text() != "")
}

// Colleagues returns every control in display order.
func (f *LoginFrame) Colleagues() []Colleague {
	return []Colleague{f.Guest, f.Login, f.Username, f.Password, f.OK, f.Cancel}
}

// Outcome reports which button, if any, was pressed.
func (f *LoginFrame) Outcome() Outcome { return f.outcome }

// Render writes a one-line-per-control snapshot of the dialog.
func (f *LoginFrame) Render(w io.Writer) error {
	for _, c := range f.Colleagues() {
		var detail string
		switch v := c.(type) {
		case *CheckBox:
			detail = mark(v.State())
		case *TextField:
			detail = fmt.Sprintf("%q", v.Text())
		}
		if _, err := fmt.Fprintf(w, "%-8s %-4s %s\n", c.Name(), detail, state(c.Enabled())); err != nil {
			return err
		}
	}
	return nil
}

func mark(on bool) string {
	if on {
		return "(o)"
	}
	return "( )"
}

func state(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

var _ Mediator = (*LoginFrame)(nil)
