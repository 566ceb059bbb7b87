// Package mediator shows the Mediator pattern with a headless login dialog.
//
// The dialog has six colleagues: two radio check boxes (Guest, Login), two
// text fields (Username, Password) and two buttons (OK, Cancel). None of
// them knows about the others. Every change is reported to the LoginFrame,
// which alone decides what is enabled:
//
//   - Guest selected: both text fields disabled, OK enabled.
//   - Login selected: Username enabled; Password enabled only when Username
//     is non-empty; OK enabled only when both are non-empty.
//   - Cancel is always enabled.
//
// A user is simulated by calling Click, SetText and Press on the colleagues.
// Acting on a disabled colleague returns ErrDisabled and changes nothing.
package mediator
