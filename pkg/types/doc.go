// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared by the CLI and the
// entanglement engine: process exit codes and the repository root path.
package types
