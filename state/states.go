package state

type day struct{}

// Day is the state for hours 9 to 16.
var Day State = day{}

func (day) String() string { return "[Day]" }

func (day) DoClock(c Context, hour int) {
	if !isDay(hour) {
		c.ChangeState(Night)
	}
}

func (day) DoUse(c Context)   { c.RecordLog(MsgUseDay) }
func (day) DoAlarm(c Context) { c.CallSecurityCenter(MsgAlarmDay) }
func (day) DoPhone(c Context) { c.RecordLog(MsgPhoneDay) }

type night struct{}

// Night is the state outside day hours.
var Night State = night{}

func (night) String() string { return "[Night]" }

func (night) DoClock(c Context, hour int) {
	if isDay(hour) {
		c.ChangeState(Day)
	}
}

func (night) DoUse(c Context)   { c.CallSecurityCenter(MsgUseNight) }
func (night) DoAlarm(c Context) { c.CallSecurityCenter(MsgAlarmNight) }
func (night) DoPhone(c Context) { c.RecordLog(MsgPhoneNight) }
