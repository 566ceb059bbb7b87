// Package singleton shows three ways to hold exactly one instance of a type
// per process:
//
//   - Instance returns a read-only *Singleton built on first use
//     (sync.OnceValue). Every caller gets the same pointer.
//   - Mutable returns a *MutableSingleton whose name may change; reads and
//     writes are serialized by an RWMutex, and With applies a
//     read-modify-write atomically.
//   - Tickets returns the *TicketMaker, which hands out increasing ticket
//     numbers from 1000 and is safe for concurrent use.
package singleton
