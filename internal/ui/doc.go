// Package ui implements cram's terminal interface on Bubble Tea.
//
// # Overview
//
// Model is the single owner of presentation state. Study state (the deck,
// position, filter and studied set) lives in a *session.Session that the model
// drives; every render is a projection of session.View().
//
// # Lifecycle
//
//  1. Init dispatches loadDeckCmd, the only asynchronous step
//  2. Until deckLoadedMsg arrives only quit keys are honoured
//  3. A load error switches to a permanent error screen (no retry)
//  4. Otherwise a session is created and the card is rendered
//  5. Quit (q, ctrl+c, or context cancellation in Run) saves the position
//
// # Input
//
//   - keys.go: bindings; → space enter next, ← previous, r/к random
//   - input.go: key dispatch and horizontal mouse drags (swipes)
//   - search.go: live search field and topic cycling
//   - confirm.go: huh yes/no form in front of progress reset
//
// Terminal resizes are debounced: each WindowSizeMsg schedules a
// resizeSettledMsg and only the latest one is applied.
//
// # Feedback
//
// After every move the card scrolls to the top, the terminal bell rings when
// stdout is a TTY, and the navigation hint starts fading once the studied count
// reaches the configured threshold. All of this is cosmetic; Capabilities
// switches each piece off where the terminal can't do it.
package ui
