package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which labels are shortened.
	LayoutCompactWidth = 70

	// LayoutMaxCardWidth caps the card so long answers stay readable.
	LayoutMaxCardWidth = 100
)

// Lines taken by everything around the card viewport: header, progress,
// stats, search/status, footer and the card border.
const chromeHeight = 8

// Timing constants.
const (
	// HintFadeDelay is how long the navigation hint stays faint before it disappears.
	HintFadeDelay = 2 * time.Second

	// StatusTTL is how long transient status messages stay visible.
	StatusTTL = 2 * time.Second

	// SwipeCooldown suppresses swipes fired in quick succession.
	SwipeCooldown = 300 * time.Millisecond
)
