package state

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// SafeFrame is the Context. Output goes to w; the first write error is kept
// and returned by Run and Err.
type SafeFrame struct {
	w      io.Writer
	state  State
	logger *zap.Logger
	calls  int
	err    error
}

// NewSafeFrame returns a frame in the Day state writing to w.
func NewSafeFrame(w io.Writer, opts ...Option) *SafeFrame {
	return &SafeFrame{w: w, state: Day, logger: buildOptions(opts).Logger}
}

// State returns the current state.
func (f *SafeFrame) State() State { return f.state }

// Calls returns how many times the security centre was called.
func (f *SafeFrame) Calls() int { return f.calls }

// Err returns the first write error.
func (f *SafeFrame) Err() error { return f.err }

// SetClock tells the current state what time it is.
func (f *SafeFrame) SetClock(hour int) error {
	if err := checkHour(hour); err != nil {
		return err
	}
	f.state.DoClock(f, hour)
	return nil
}

// ChangeState switches to s.
func (f *SafeFrame) ChangeState(s State) {
	f.logger.Debug("state changed", zap.Stringer("from", f.state), zap.Stringer("to", s))
	f.state = s
}

// CallSecurityCenter reports msg to the security centre.
func (f *SafeFrame) CallSecurityCenter(msg string) {
	f.calls++
	f.write(msg)
}

// RecordLog appends msg to the log.
func (f *SafeFrame) RecordLog(msg string) { f.write(msg) }

func (f *SafeFrame) write(msg string) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, "%s:%s\n", f.state, msg)
}

// Use, Alarm and Phone are the user's actions.
func (f *SafeFrame) Use()   { f.state.DoUse(f) }
func (f *SafeFrame) Alarm() { f.state.DoAlarm(f) }
func (f *SafeFrame) Phone() { f.state.DoPhone(f) }

// Run simulates hours 0 to LastHour. Each hour sets the clock and then
// uses the safe, rings the alarm or phones, by hour%3.
func (f *SafeFrame) Run() error {
	for hour := 0; hour <= LastHour; hour++ {
		if err := f.SetClock(hour); err != nil {
			return err
		}
		switch hour % 3 {
		case 0:
			f.Use()
		case 1:
			f.Alarm()
		default:
			f.Phone()
		}
		if f.err != nil {
			return f.err
		}
	}
	return nil
}

var _ Context = (*SafeFrame)(nil)
