// Package state shows the State pattern with a bank safe that behaves
// differently by day and by night.
//
// A Context (SafeFrame) holds the current State. Every action (use the
// safe, ring the alarm, make a phone call) is forwarded to the state, and
// SetClock lets the state decide whether it should hand over to the other
// one. Day covers hours 9 to 16 inclusive; every other hour is Night.
//
//	event   Day                  Night
//	use     Use safe (day)       Emergency: use safe at night!
//	alarm   Alarm (day)          Alarm (night)
//	phone   Normal call (day)    Night call recording
//
// Output lines are "[Day]:msg" or "[Night]:msg". The use event is a log
// entry by day and a call to the security centre by night.
//
// Three renditions share that table:
//
//   - State interface with the package values Day and Night.
//   - Phase, a closed enum whose methods switch on the value.
//   - MachineSafe, table-driven on github.com/looplab/fsm with the events
//     "dusk" (day → night) and "dawn" (night → day).
//
// Errors:
//
//   - ErrBadHour: SetClock outside [0, 24].
package state
