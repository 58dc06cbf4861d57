// Package app is the composition root for cram.
//
// Run wires the pieces together in this order:
//
//  1. config.Load reads ~/.config/cram/config.toml (a -data flag overrides data_source)
//  2. The standard logger is pointed at the log file via tea.LogToFile
//  3. prefs.Load restores theme and answer visibility
//  4. progress.OpenSQLite opens the key-value store for studied ids and position
//  5. ui.Run starts the TUI, which loads the deck itself and blocks until exit
//
// Only an unreadable config file is fatal. A log file that can't be opened
// silences logging, and a progress database that can't be opened falls back to
// an in-memory store, so the user can still study without persistence.
package app
