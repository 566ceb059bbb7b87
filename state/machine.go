package state

import (
	"context"
	"fmt"
	"io"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// MachineSafe states and events.
const (
	StateDay   = "day"
	StateNight = "night"

	EventDusk = "dusk"
	EventDawn = "dawn"
)

type action int

const (
	actUse action = iota
	actAlarm
	actPhone
)

// machineMessages is the whole behaviour of the safe as data.
var machineMessages = map[string]map[action]string{
	StateDay:   {actUse: MsgUseDay, actAlarm: MsgAlarmDay, actPhone: MsgPhoneDay},
	StateNight: {actUse: MsgUseNight, actAlarm: MsgAlarmNight, actPhone: MsgPhoneNight},
}

var labels = map[string]string{StateDay: "[Day]", StateNight: "[Night]"}

// MachineSafe is the safe driven by a finite state machine.
type MachineSafe struct {
	fsm    *fsm.FSM
	w      io.Writer
	logger *zap.Logger
}

// NewMachineSafe returns a safe in the day state writing to w.
func NewMachineSafe(w io.Writer, opts ...Option) *MachineSafe {
	m := &MachineSafe{w: w, logger: buildOptions(opts).Logger}
	m.fsm = fsm.NewFSM(
		StateDay,
		fsm.Events{
			{Name: EventDusk, Src: []string{StateDay}, Dst: StateNight},
			{Name: EventDawn, Src: []string{StateNight}, Dst: StateDay},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				m.logger.Debug("state changed",
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst),
				)
			},
		},
	)
	return m
}

// Current returns StateDay or StateNight.
func (m *MachineSafe) Current() string { return m.fsm.Current() }

// SetClock fires dusk or dawn when hour crosses a boundary.
func (m *MachineSafe) SetClock(ctx context.Context, hour int) error {
	if err := checkHour(hour); err != nil {
		return err
	}
	want, event := StateNight, EventDusk
	if isDay(hour) {
		want, event = StateDay, EventDawn
	}
	if m.fsm.Is(want) {
		return nil
	}
	if err := m.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("state: %s at %d: %w", event, hour, err)
	}
	return nil
}

func (m *MachineSafe) do(a action) error {
	cur := m.fsm.Current()
	_, err := fmt.Fprintf(m.w, "%s:%s\n", labels[cur], machineMessages[cur][a])
	return err
}

// Use, Alarm and Phone write the message for the current state.
func (m *MachineSafe) Use() error   { return m.do(actUse) }
func (m *MachineSafe) Alarm() error { return m.do(actAlarm) }
func (m *MachineSafe) Phone() error { return m.do(actPhone) }

// Run is SafeFrame.Run for the state machine.
func (m *MachineSafe) Run(ctx context.Context) error {
	steps := [...]func() error{m.Use, m.Alarm, m.Phone}
	for hour := 0; hour <= LastHour; hour++ {
		if err := m.SetClock(ctx, hour); err != nil {
			return err
		}
		if err := steps[hour%3](); err != nil {
			return err
		}
	}
	return nil
}
