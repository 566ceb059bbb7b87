package state

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for the state package.
var (
	// ErrBadHour indicates an hour outside [0, 24].
	ErrBadHour = errors.New("state: hour out of range")
)

// Day-time bounds: Day covers [dayStart, dayEnd).
const (
	dayStart = 9
	dayEnd   = 17
)

// LastHour is the final hour Run visits.
const LastHour = 24

// Messages written by the states.
const (
	MsgUseDay     = "Use safe (day)"
	MsgUseNight   = "Emergency: use safe at night!"
	MsgAlarmDay   = "Alarm (day)"
	MsgAlarmNight = "Alarm (night)"
	MsgPhoneDay   = "Normal call (day)"
	MsgPhoneNight = "Night call recording"
)

// Context is what a State acts upon.
type Context interface {
	SetClock(hour int) error
	ChangeState(s State)
	CallSecurityCenter(msg string)
	RecordLog(msg string)
}

// State decides how each event is handled.
type State interface {
	// DoClock may switch the context to another state.
	DoClock(c Context, hour int)
	DoUse(c Context)
	DoAlarm(c Context)
	DoPhone(c Context)
	String() string
}

// Options configures a SafeFrame or MachineSafe.
type Options struct {
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger logs state transitions at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("state: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func isDay(hour int) bool { return hour >= dayStart && hour < dayEnd }

func checkHour(hour int) error {
	if hour < 0 || hour > LastHour {
		return fmt.Errorf("%w: %d", ErrBadHour, hour)
	}
	return nil
}
