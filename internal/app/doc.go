// Package app is the composition root for PawsMatch.
//
// # Overview
//
// Run wires configuration, logging, the pet source, the interest store and
// the swipe deck together, then hands control to the TUI until the user
// quits or the context is cancelled.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read ~/.config/pawsmatch/config.toml
//	       ├─────> prefs.Load()           Theme and URL toggle
//	       ├─────> logging.New()          zap logger writing to log_file
//	       ├─────> petsource.LoadPool()   Embedded or custom pet pool
//	       ├─────> petsource.NewProvider() Pool + Picker + dog.ceo client
//	       ├─────> interest.Open()        SQLite interest store
//	       ├─────> deck.New().Start()     Initial concurrent fill
//	       ├─────> StartRelay()           Deck changes + heartbeat
//	       └─────> ui.Run()               TUI (blocks)
//
// # Relay
//
// The deck signals every mutation on a coalescing channel. StartRelay merges
// those signals with a slow heartbeat (default 2 seconds) into the channel
// the UI listens on, so views that depend on wall time, such as the activity
// log, refresh even when the deck is idle.
//
// # Error Handling
//
// Fatal errors (returned from Run, wrapped with context):
//   - Invalid configuration file
//   - Log file that cannot be created
//   - Missing or invalid pet pool file
//   - Interest database that cannot be opened
//
// Recoverable errors never reach Run: fetch failures are logged and counted
// by the deck, image warm failures are logged at debug level, and interest
// recording failures show up in the status line.
//
// # Shutdown
//
// After the UI returns, Run cancels the session context (aborting in-flight
// HTTP requests), closes the deck so late completions are dropped, waits for
// every fetch goroutine, and closes the interest store.
package app
