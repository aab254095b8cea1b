// Package cli provides the interactive journal client.
//
// It wires configuration, the key-value store, the session and check-in
// services, and a REPL that moves between three screens:
//
//   - auth: sign in or sign up
//   - dashboard: greeting, 7-entry statistics, mood trend, history list
//   - check-in: the two-step wizard (mood, then stressor and note)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Start and runREPL for details.
package cli
