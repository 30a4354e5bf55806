// Package logtail reads the tail of the PawsMatch log file for the in-app
// activity view.
//
// Read keeps a ring buffer of the last maxLines, so memory is bounded by the
// request rather than the file size. Tail parses each line back into an Entry
// using the same separator and time layout the logging package writes:
//
//	2026-10-19 14:32:15 | WARN | deck/stack.go:212 | profile fetch failed | {"error": "timeout"}
//
// Missing files are not an error; the activity view simply shows nothing.
// Lines that don't match the layout (stack traces, continuation lines) are
// kept verbatim in Entry.Raw.
package logtail
