// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the speccheck command-line interface.
//
// The root command checks a repository checkout against the entanglement
// rules; `rules` lists the active rules and `config show` prints the
// effective configuration. Commands are built by newXCommand(app) factories
// and executed through fang.
package cmd
