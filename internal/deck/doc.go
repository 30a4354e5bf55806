// Package deck implements the swipe stack behind PawsMatch.
//
// # Overview
//
// A Stack owns a short ordered buffer of candidate profiles. The front of the
// buffer is what the user is looking at, the second element is the lookahead
// the UI uses to warm its image cache, and everything is replenished in the
// background as the user swipes through.
//
//	  Start()                       Advance()
//	┌──────────────┐             ┌───────────────────────────┐
//	│ N fetches    │             │ drop front (synchronous)  │
//	│ in parallel  │             │ go fetch one ──┐          │
//	│ wait for all │             └────────────────┼──────────┘
//	│ append all   │                              ▼
//	└──────────────┘                  append to tail of the
//	                                  buffer as it is *now*
//
// # Lifecycle
//
//   - New returns an empty stack with Initializing() == true.
//   - Start launches BufferSize concurrent fetches. Each is independent: a
//     failing (or panicking) source call only makes the first fill shorter.
//     Once every call has settled the successes are appended in completion
//     order and Initializing flips to false, even if nothing succeeded.
//   - Advance removes the front element before returning and schedules exactly
//     one replacement fetch. Failures are logged and swallowed; the deck just
//     gets thinner.
//   - Close marks the session disposed. Outstanding fetches are not cancelled;
//     their results are dropped when they arrive.
//
// Start is guarded so that only the first call fetches anything.
//
// # Rendering
//
// Renderers take a Snapshot and switch on Phase:
//
//   - PhaseLoading: the first fill has not settled
//   - PhaseExhausted: settled at least once and the buffer is empty
//   - PhaseBrowsing: there is a current candidate
//
// Changes delivers a coalesced signal after every mutation so a UI can wait
// for updates instead of polling.
//
// # Concurrency
//
// All buffer mutations happen under a single mutex. A replenishment result is
// appended to the buffer as it exists when the fetch returns, so overlapping
// refills never overwrite each other. Goroutines are tracked with a
// conc.WaitGroup and Wait drains them.
//
// Errors never leave the package; callers see counters in Snapshot.Stats.
package deck
