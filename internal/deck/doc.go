// Package deck holds the question set cram studies from.
//
// A Deck is loaded once at startup by Load from a local file or an http(s)
// URL and is never mutated afterwards. JSON is the default format; sources
// ending in .yaml or .yml are decoded as YAML. Each entry has the shape:
//
//	{"id": 1, "question": "...", "answer": "...", "topic": "..."}
//
// Load never panics on bad input. Unreachable or malformed sources come back
// as a *LoadError, which the UI turns into a permanent degraded display.
package deck
