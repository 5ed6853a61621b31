// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"

	"github.com/speccheck/speccheck/internal/issue"
)

// errorHandler prints command errors. Actionable errors get their
// suggestions, plus the catalog page under --verbose. An ExitError without
// a cause was already reported and prints nothing.
func errorHandler(flags *rootFlags) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			return
		}

		var ae *issue.ActionableError
		if !errors.As(err, &ae) {
			fang.DefaultErrorHandler(w, styles, err)
			return
		}

		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, flags.verbose))
		if flags.verbose && ae.IssueID != 0 {
			renderIssue(w, ae.IssueID, flags.colorScheme.GlamourStyle())
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue writes the catalog page for id with the given glamour style.
func renderIssue(w io.Writer, id issue.ID, style string) {
	page := issue.Get(id)
	if page == nil {
		return
	}
	rendered, err := page.Render(style)
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}
