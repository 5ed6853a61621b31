// SPDX-License-Identifier: MPL-2.0

// Package config handles speccheck configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/speccheck/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/speccheck/config.cue on macOS, %APPDATA%\speccheck\config.cue
// on Windows), falling back to ./speccheck.cue in the working directory. Every key can be
// overridden from the environment with the SPECCHECK_ prefix (SPECCHECK_UI_VERBOSE=true).
//
// Files are validated against the embedded CUE schema (config_schema.cue) before being
// merged into Viper.
package config
