// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the schema-first CUE loading used for speccheck's
// configuration and rule files.
//
// Every CUE document is handled the same way:
//
//  1. Compile the embedded schema
//  2. Compile the user document and unify it with a schema definition
//  3. Validate, then decode into a Go struct or a generic map
//
// Errors are rewritten to "<file>: <path>: <message>" so users can find the
// offending field, e.g. "rules.cue: version_groups[0]: incompatible list lengths".
package cueutil
