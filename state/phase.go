package state

import (
	"fmt"
	"io"
)

// Phase is the closed rendition of State.
type Phase int

const (
	// PhaseDay covers hours 9 to 16.
	PhaseDay Phase = iota
	// PhaseNight covers the other hours.
	PhaseNight
)

// String returns "[Day]" or "[Night]".
func (p Phase) String() string {
	if p == PhaseNight {
		return "[Night]"
	}
	return "[Day]"
}

// Clock returns the phase for hour.
func (p Phase) Clock(hour int) Phase {
	if isDay(hour) {
		return PhaseDay
	}
	return PhaseNight
}

// Use returns the message for using the safe and whether it is a call.
func (p Phase) Use() (msg string, call bool) {
	if p == PhaseNight {
		return MsgUseNight, true
	}
	return MsgUseDay, false
}

// Alarm returns the alarm message; alarms are always calls.
func (p Phase) Alarm() string {
	if p == PhaseNight {
		return MsgAlarmNight
	}
	return MsgAlarmDay
}

// Phone returns the phone message; phone calls are always logged.
func (p Phase) Phone() string {
	if p == PhaseNight {
		return MsgPhoneNight
	}
	return MsgPhoneDay
}

// RunPhases is SafeFrame.Run for the closed rendition.
func RunPhases(w io.Writer, start Phase) error {
	p := start
	for hour := 0; hour <= LastHour; hour++ {
		p = p.Clock(hour)
		var msg string
		switch hour % 3 {
		case 0:
			msg, _ = p.Use()
		case 1:
			msg = p.Alarm()
		default:
			msg = p.Phone()
		}
		if _, err := fmt.Fprintf(w, "%s:%s\n", p, msg); err != nil {
			return err
		}
	}
	return nil
}
