// Package factory_method shows the Factory Method pattern: Create fixes the
// order of the steps (build, then register) while a Creator decides what is
// built and how it is recorded.
//
// The framework half is Product, Creator and Create. The concrete half is
// IDCard and IDCardFactory: every card receives a serial number (a UUID by
// default, see WithSerialFunc) and the factory keeps a registry that can be
// queried with Owners and Lookup. A serial is registered at most once
// (ErrDuplicateSerial), and a card is recorded only after its "Registered"
// line has been written.
//
// Output of Create(f, "Alice") followed by card.Use(w):
//
//	Creating card for Alice.
//	Registered [IDCard:Alice].
//	Using Alice's card.
package factory_method
