// Package session manages the connection to the redis server and the
// lifecycle of everything attached to it.
//
// Key Components:
//
//   - Config: connection parameters (address, pool size, watcher event
//     buffering, element serializer) with a pretty-printed String form.
//
//   - Handle: the shared, lazily-opened client behind all command round
//     trips. With the default pool size of 1, every command serializes on a
//     single physical connection; the pool size can be raised to trade that
//     mutual exclusion for throughput.
//
//   - Database: the library entry point. Creating a Database validates the
//     address but performs no network I/O; the first operation opens the
//     connection. Database also tracks live watcher subscriptions so that
//     Close reliably stops their background goroutines.
//
// Every command executed through the Handle is instrumented with
// VictoriaMetrics counters and duration histograms (see metrics.go).
package session
