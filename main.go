// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/speccheck/speccheck/cmd/speccheck"

func main() {
	cmd.Execute()
}
