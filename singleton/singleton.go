package singleton

import (
	"sync"
	"sync/atomic"
)

// DefaultName is the name every singleton starts with.
const DefaultName = "TEST"

// FirstTicket is the first number NextTicket returns.
const FirstTicket = 1000

// Singleton is an immutable named instance.
type Singleton struct {
	name string
}

// Name returns the instance name.
func (s *Singleton) Name() string { return s.name }

var instance = sync.OnceValue(func() *Singleton {
	return &Singleton{name: DefaultName}
})

// Instance returns the process-wide Singleton.
func Instance() *Singleton { return instance() }

// MutableSingleton is a named instance whose name can be changed
// concurrently.
type MutableSingleton struct {
	mu   sync.RWMutex
	name string
}

var mutable = sync.OnceValue(func() *MutableSingleton {
	return &MutableSingleton{name: DefaultName}
})

// Mutable returns the process-wide MutableSingleton.
func Mutable() *MutableSingleton { return mutable() }

// Name returns the current name.
func (m *MutableSingleton) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// SetName replaces the name.
func (m *MutableSingleton) SetName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
}

// With replaces the name with fn(current) while holding the lock, and
// returns the new name.
func (m *MutableSingleton) With(fn func(current string) string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = fn(m.name)
	return m.name
}

// TicketMaker issues unique, increasing ticket numbers.
type TicketMaker struct {
	next atomic.Int64
}

var tickets = sync.OnceValue(func() *TicketMaker {
	t := &TicketMaker{}
	t.next.Store(FirstTicket)
	return t
})

// Tickets returns the process-wide TicketMaker.
func Tickets() *TicketMaker { return tickets() }

// NextTicket returns the next number.
func (t *TicketMaker) NextTicket() int64 { return t.next.Add(1) - 1 }
