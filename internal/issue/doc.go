// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// pages for the failures speccheck users run into.
//
// ActionableError says what failed, on which file, and how to fix it. When
// it references a catalog entry (see ID), the CLI renders that page with
// glamour in verbose mode.
package issue
