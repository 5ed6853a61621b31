// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/speccheck/speccheck/pkg/cueutil"
)

//go:embed rules_schema.cue
var rulesSchema string

// ruleFile mirrors #Rules in rules_schema.cue.
type ruleFile struct {
	VersionGroups        [][]string `json:"version_groups,omitempty"`
	VersionReleaseGroups [][]string `json:"version_release_groups,omitempty"`
}

// LoadRegistryFile reads a CUE rule file:
//
//	version_groups: [
//		["SPECS/hyperv-daemons/hyperv-daemons.spec", "SPECS/kernel/kernel.spec"],
//	]
//	version_release_groups: [
//		["SPECS/grub2/grub2.spec", "SPECS-SIGNED/grub2-efi-binary-signed-x64/grub2-efi-binary-signed-x64.spec"],
//	]
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	return ParseRegistry(data, path)
}

// ParseRegistry parses rule file content. filename is used in errors.
func ParseRegistry(data []byte, filename string) (*Registry, error) {
	result, err := cueutil.ParseAndDecode[ruleFile](rulesSchema, data, "#Rules", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}

	var (
		rules []Rule
		errs  []error
	)
	add := func(c Category, key string, groups [][]string) {
		for i, members := range groups {
			g, err := NewGroup(members...)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %s[%d]: %w", filename, key, i, err))
				continue
			}
			rules = append(rules, Rule{Category: c, Group: g})
		}
	}
	add(CategoryVersion, "version_groups", result.Value.VersionGroups)
	add(CategoryVersionRelease, "version_release_groups", result.Value.VersionReleaseGroups)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return NewRegistry(rules...)
}
