package observer

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// subject holds the observer list shared by every generator.
type subject struct {
	observers []Observer
	number    int
	logger    *zap.Logger
}

// AddObserver registers o at the end of the notification order.
func (s *subject) AddObserver(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}
	if !isComparable(o) {
		return fmt.Errorf("%w: %T", ErrNotComparable, o)
	}
	s.observers = append(s.observers, o)
	s.logger.Debug("observer added", zap.String("type", fmt.Sprintf("%T", o)), zap.Int("count", len(s.observers)))
	return nil
}

// DeleteObserver removes the first registration of o. It is safe to call
// from inside Update; the round in progress still reaches every observer
// that was registered when it started.
func (s *subject) DeleteObserver(o Observer) error {
	if o == nil || !isComparable(o) {
		return ErrObserverNotFound
	}
	for i, cur := range s.observers {
		if cur == o {
			s.observers = slices.Delete(slices.Clone(s.observers), i, i+1)
			s.logger.Debug("observer deleted", zap.String("type", fmt.Sprintf("%T", o)), zap.Int("count", len(s.observers)))
			return nil
		}
	}
	return ErrObserverNotFound
}

// Number returns the latest number.
func (s *subject) Number() int { return s.number }

// Observers returns how many observers are registered.
func (s *subject) Observers() int { return len(s.observers) }

// publish stores n and notifies every observer of g in order.
func (s *subject) publish(ctx context.Context, g NumberGenerator, n int) error {
	s.number = n
	for _, o := range slices.Clone(s.observers) {
		if err := o.Update(ctx, g); err != nil {
			return fmt.Errorf("observer: notify %T: %w", o, err)
		}
	}
	return nil
}

// isComparable reports whether o can be used with ==. The dynamic value is
// checked, so a struct holding a slice behind an interface field is
// rejected too.
func isComparable(o Observer) bool {
	return reflect.ValueOf(o).Comparable()
}
