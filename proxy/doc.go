// Package proxy shows the (virtual) Proxy pattern: PrinterProxy answers
// cheap questions itself and only builds the expensive Printer when a
// document is actually printed.
//
// Building a Printer runs a simulated heavy job: five ticks of
// HeavyJobDelay, each writing a dot, then "done.". The job respects ctx and
// returns ctx.Err() when cancelled; a cancelled proxy stays unrealized and
// tries again on the next Print.
//
//	p := proxy.NewPrinterProxy("Alice")
//	p.SetPrinterName("Bob")                  // no Printer yet
//	p.Print(ctx, w, "Hello, world.")         // Printer built here
//
//	Creating Printer instance (Bob).....done.
//	=== Bob ===
//	Hello, world.
//
// Variant is the closed rendition: KindPrinter is always realized,
// KindProxy realizes on first Print.
package proxy
