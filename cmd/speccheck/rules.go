// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speccheck/speccheck/internal/entangle"
)

// newRulesCommand creates the `speccheck rules` command.
func newRulesCommand(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active entanglement rules",
		Long: `List the active entanglement rules.

Rules come from --rules, then rules_file in the configuration, then the
built-in table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(flags, cfg)
			if err != nil {
				return err
			}
			return printRules(app.stdout, registry)
		},
	}
}

func printRules(w io.Writer, registry *entangle.Registry) error {
	var b strings.Builder
	for i, cat := range entangle.Categories() {
		if i > 0 {
			b.WriteString("\n")
		}

		fields := make([]string, 0, len(cat.Fields()))
		for _, f := range cat.Fields() {
			fields = append(fields, f.String())
		}
		fmt.Fprintf(&b, "%s %s\n", TitleStyle.Render(cat.String()), SubtitleStyle.Render("(must match: "+strings.Join(fields, ", ")+")"))

		groups := registry.Groups(cat)
		if len(groups) == 0 {
			fmt.Fprintf(&b, "  %s\n", SubtitleStyle.Render("(none)"))
			continue
		}
		for _, g := range groups {
			b.WriteString("  -\n")
			for _, m := range g.Members() {
				fmt.Fprintf(&b, "    %s\n", PathStyle.Render(m))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
