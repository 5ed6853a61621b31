// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViolationHeader opens every non-empty report.
const ViolationHeader = "The current repository state violates a spec entanglement rule!"

// Reporter renders a Result as plain text. The zero value is usable;
// styles default to no formatting.
type Reporter struct {
	// Verbose adds the diverging values under each group.
	Verbose bool

	HeaderStyle      lipgloss.Style
	InstructionStyle lipgloss.Style
	GroupStyle       lipgloss.Style
	ValueStyle       lipgloss.Style
}

// Report writes nothing when res has no violations. Otherwise it writes the
// header, then for each category with violations its instruction line and
// one bracketed member list per group.
func (r Reporter) Report(w io.Writer, res *Result) error {
	if !res.HasViolations() {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.HeaderStyle.Render(ViolationHeader))
	b.WriteString("\n")

	for _, cat := range Categories() {
		violations := res.Violations(cat)
		if len(violations) == 0 {
			continue
		}

		b.WriteString("\n")
		b.WriteString(r.InstructionStyle.Render(cat.Instruction()))
		b.WriteString("\n")

		for _, v := range violations {
			b.WriteString("  ")
			b.WriteString(r.GroupStyle.Render(v.Group.String()))
			b.WriteString("\n")
			if !r.Verbose {
				continue
			}
			for _, f := range v.DivergentFields() {
				fmt.Fprintf(&b, "    %s: %s\n", f, r.ValueStyle.Render(strings.Join(v.Values[f].Sorted(), ", ")))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
