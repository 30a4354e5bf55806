// Package ui provides the PawsMatch terminal interface, built on Bubble Tea.
//
// # Overview
//
// The UI renders one pet at a time from the swipe deck and turns keyboard and
// mouse gestures into adopt or pass verdicts. It never mutates the deck
// directly: every committed verdict results in exactly one Deck.Advance call,
// and each render reads a fresh deck.Snapshot.
//
// # States
//
// The body shows exactly one of three deck states:
//
//   - Loading: the initial fill has not settled and the deck is empty
//   - Exhausted: nothing to show; "r" asks the deck for one more candidate
//   - Browsing: the current card, with the next pet listed underneath
//
// Overlays sit on top of the deck: the adoption confirmation (shown after an
// adopt verdict, with shelter contact details), the liked pets list read from
// the interest store, the activity log read back from the log file, and help.
//
// # Gestures
//
// SwipeTracker interprets horizontal drags. A drag commits when the card has
// travelled Threshold cells or was flung faster than Velocity cells/second in
// the direction it moved; otherwise it snaps back. Mouse drags use both
// rules. Keyboard drags (shift+arrows, released with enter) use displacement
// only. Plain arrow keys commit immediately.
//
// # Updates
//
// The deck signals changes on a channel. The app package relays those (plus a
// slow heartbeat) into Options.Notify, and the model re-reads the snapshot on
// every notification. Whenever the next card changes, the model issues a
// Warm command so its image is already fetched by the time it reaches the
// front.
//
// # Files
//
//   - app.go: Model, Update loop, key and mouse handling, Run
//   - commands.go: messages and tea.Cmd constructors for async work
//   - view.go: header, footer, deck states and the card
//   - overlays.go: confirmation, likes and activity overlays
//   - help.go: help overlay
//   - swipe.go: gesture interpretation
//   - theme.go, keys.go, style_helpers.go, strings.go: presentation helpers
package ui
