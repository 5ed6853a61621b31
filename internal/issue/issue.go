// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Catalog page IDs.
const (
	RepoRootNotFoundID ID = iota + 1
	DescriptorNotFoundID
	DescriptorParseErrorID
	RuleFileInvalidID
	ConfigLoadFailedID
	EntanglementViolationID
)

type (
	// ID identifies a catalog page. The zero ID means "no page".
	ID int

	// MarkdownMsg is the Markdown body of a catalog page.
	MarkdownMsg string

	// HTTPLink is a documentation URL.
	HTTPLink string

	// Issue is one catalog page.
	Issue struct {
		id       ID
		mdMsg    MarkdownMsg
		docLinks []HTTPLink
	}
)

func (i *Issue) ID() ID { return i.id }

func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

func (i *Issue) DocLinks() []HTTPLink { return slices.Clone(i.docLinks) }

// Render renders the page with the named glamour style ("dark", "light",
// "notty", "auto", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "\n- <" + string(link) + ">"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	repoRootNotFoundIssue = &Issue{
		id: RepoRootNotFoundID,
		mdMsg: `
# Repository root not found!

speccheck resolves every entangled descriptor relative to the repository
root given on the command line, and that path does not name a directory.

## Things you can try
- Pass the checkout root, the directory that contains ` + "`SPECS/`" + `:
~~~
$ speccheck /path/to/repo
~~~
- Run from the checkout root and pass ` + "`.`" + ``,
	}

	descriptorNotFoundIssue = &Issue{
		id: DescriptorNotFoundID,
		mdMsg: `
# Entangled descriptor is missing!

A spec file listed in an entanglement group does not exist. This is a
configuration problem, not a version mismatch, so no report was produced.

## Things you can try
- Check that the repository root is correct
- If the package was renamed or retired, update the group in your rule file
  (` + "`--rules`" + ` or ` + "`rules_file`" + ` in the config)
- List the active groups:
~~~
$ speccheck rules
~~~`,
	}

	descriptorParseErrorIssue = &Issue{
		id: DescriptorParseErrorID,
		mdMsg: `
# Failed to read an entangled descriptor!

The spec file could not be interpreted, or its preamble lacks a tag the
rule needs (Name, Version, Release).

## Things you can try
- Make sure ` + "`Name:`, `Version:` and `Release:`" + ` appear before the first
  section (` + "`%description`, `%package`, `%prep`" + ` ...)
- Check ` + "`%define`/`%global`" + ` macros used by those tags; a macro that
  refers to itself cannot be expanded`,
	}

	ruleFileInvalidIssue = &Issue{
		id: RuleFileInvalidID,
		mdMsg: `
# Invalid rule file!

The rule file replaces the built-in entanglement table and must match the
schema below.

~~~cue
version_groups: [
	["SPECS/hyperv-daemons/hyperv-daemons.spec", "SPECS/kernel/kernel.spec"],
]
version_release_groups: [
	["SPECS/grub2/grub2.spec", "SPECS-SIGNED/grub2-efi-binary-signed-x64/grub2-efi-binary-signed-x64.spec"],
]
~~~

## Rules
- Every group lists at least two distinct spec paths
- Paths are relative to the repository root and cannot leave it`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedID,
		mdMsg: `
# Failed to load configuration!

## Things you can try
- Check the CUE syntax of your config file
- Show the effective configuration:
~~~
$ speccheck config show
~~~
- Supported keys: ` + "`rules_file`, `ui.verbose`, `ui.color_scheme`",
	}

	entanglementViolationIssue = &Issue{
		id: EntanglementViolationID,
		mdMsg: `
# Entangled specs have drifted apart!

Each listed group describes variants of the same software, such as a
kernel and its signed builds. They must be bumped together.

## How to fix
- Update every spec in the group to the same ` + "`Version`" + `
  (and ` + "`Release`" + ` for version+release groups)
- Re-run the check:
~~~
$ speccheck -v /path/to/repo
~~~`,
	}

	issues = map[ID]*Issue{
		repoRootNotFoundIssue.ID():      repoRootNotFoundIssue,
		descriptorNotFoundIssue.ID():    descriptorNotFoundIssue,
		descriptorParseErrorIssue.ID():  descriptorParseErrorIssue,
		ruleFileInvalidIssue.ID():       ruleFileInvalidIssue,
		configLoadFailedIssue.ID():      configLoadFailedIssue,
		entanglementViolationIssue.ID(): entanglementViolationIssue,
	}
)

// Values returns every catalog page ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the page for id, or nil.
func Get(id ID) *Issue {
	return issues[id]
}
