// Package config loads cram's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cram/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are missing, empty or non-positive, use defaults
//
// A file that exists but cannot be parsed is an error; cram refuses to start
// rather than silently ignoring a broken config.
//
// # TOML Format
//
//	data_source = "~/decks/go.json"        # path or http(s) URL, .yaml/.yml also accepted
//	progress_db = "~/.local/share/cram/progress.db"
//	log_file = "~/.local/share/cram/cram.log"
//	hint_threshold = 3                     # studied items before the swipe hint fades
//	swipe_threshold = 8                    # terminal cells of horizontal drag
//	resize_debounce_ms = 150
//
// Paths starting with ~ are expanded against the user's home directory and made
// absolute. URLs in data_source are passed through unchanged.
package config
