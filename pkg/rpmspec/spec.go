// SPDX-License-Identifier: MPL-2.0

package rpmspec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
)

// DefaultMaxFileSize bounds how much of a descriptor is read (4MB).
// Real-world spec files are well under 1MB even with long changelogs.
const DefaultMaxFileSize int64 = 4 * 1024 * 1024

// Well-known preamble tag names.
const (
	TagName    = "Name"
	TagEpoch   = "Epoch"
	TagVersion = "Version"
	TagRelease = "Release"
	TagSummary = "Summary"
	TagLicense = "License"
	TagURL     = "URL"
)

var (
	tagLinePattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)(\([^)]*\))?\s*:\s*(.*)$`)

	// Directives that end the preamble. Scriptlets and triggers are matched
	// by prefix in isSectionStart.
	sectionStarts = []string{
		"%description", "%package", "%prep", "%build", "%install", "%check",
		"%clean", "%conf", "%files", "%changelog", "%verifyscript",
		"%generate_buildrequires", "%sourcelist", "%patchlist",
	}
	sectionPrefixes = []string{"%pre", "%post", "%trigger", "%filetrigger", "%transfiletrigger"}
)

type (
	// Spec is the parsed preamble of one package-build descriptor.
	// It is read-only once returned by Parse.
	Spec struct {
		// FilePath is the path the descriptor was read from.
		FilePath string

		tags   map[string]tagValue
		macros map[string]macro
	}

	tagValue struct {
		raw   string
		value string
		line  int
	}

	macro struct {
		body string
		// expanded is true for %global definitions, whose body was expanded
		// when defined.
		expanded bool
	}
)

// ParseFile reads and parses the descriptor at path.
// A missing file yields an error wrapping fs.ErrNotExist.
func ParseFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spec file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}

// Parse reads a descriptor from r. name is used in error messages and
// recorded as FilePath.
func Parse(r io.Reader, name string) (*Spec, error) {
	data, err := io.ReadAll(io.LimitReader(r, DefaultMaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", name, err)
	}
	if int64(len(data)) > DefaultMaxFileSize {
		return nil, &MalformedSpecError{
			File:   name,
			Reason: fmt.Sprintf("file exceeds maximum size of %d bytes", DefaultMaxFileSize),
		}
	}

	s := &Spec{
		FilePath: name,
		tags:     make(map[string]tagValue),
		macros:   make(map[string]macro),
	}
	if err := s.readPreamble(data); err != nil {
		return nil, err
	}

	if _, ok := s.tags[strings.ToLower(TagName)]; !ok {
		return nil, &MalformedSpecError{File: name, Reason: "no Name tag in preamble"}
	}

	for key, tv := range s.tags {
		value, err := s.expand(tv.raw, 0)
		if err != nil {
			return nil, &MalformedSpecError{File: name, Line: tv.line, Reason: err.Error()}
		}
		tv.value = strings.TrimSpace(value)
		s.tags[key] = tv
	}

	return s, nil
}

func (s *Spec) readPreamble(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), int(DefaultMaxFileSize))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Multi-line macro bodies continue with a trailing backslash.
		startLine := lineNo
		for strings.HasSuffix(line, `\`) && scanner.Scan() {
			lineNo++
			line = strings.TrimSuffix(line, `\`) + "\n" + strings.TrimSpace(scanner.Text())
		}

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "%") {
			word, rest := splitWord(line)
			if isSectionStart(word) {
				return nil
			}
			if err := s.directive(word, rest, startLine); err != nil {
				return err
			}
			continue
		}

		m := tagLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// Qualified tags such as Requires(post) may repeat; none of them are
		// single-valued package identity, so only plain tags are recorded.
		if m[2] != "" {
			continue
		}
		key := strings.ToLower(m[1])
		s.tags[key] = tagValue{raw: m[3], line: startLine}
		s.macros[key] = macro{body: m[3]}
	}
	if err := scanner.Err(); err != nil {
		return &MalformedSpecError{File: s.FilePath, Line: lineNo + 1, Reason: err.Error()}
	}

	return nil
}

func (s *Spec) directive(word, rest string, line int) error {
	switch word {
	case "%define", "%global":
		name, body := splitWord(rest)
		// %define name(opts) takes arguments; the option list is not part of the name.
		if i := strings.IndexByte(name, '('); i > 0 {
			name = name[:i]
		}
		if !isMacroName(name) {
			return &MalformedSpecError{File: s.FilePath, Line: line, Reason: fmt.Sprintf("invalid macro name %q in %s", name, word)}
		}
		if word == "%global" {
			expanded, err := s.expand(body, 0)
			if err != nil {
				return &MalformedSpecError{File: s.FilePath, Line: line, Reason: err.Error()}
			}
			s.macros[name] = macro{body: expanded, expanded: true}
			return nil
		}
		s.macros[name] = macro{body: body}
	case "%undefine":
		delete(s.macros, strings.TrimSpace(rest))
	}
	return nil
}

// splitWord splits line at the first blank into a word and the trimmed rest.
func splitWord(line string) (word, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

func isSectionStart(word string) bool {
	if slices.Contains(sectionStarts, word) {
		return true
	}
	for _, prefix := range sectionPrefixes {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return false
}

// Name returns the expanded Name tag.
func (s *Spec) Name() string { return s.tagOrEmpty(TagName) }

// Epoch returns the expanded Epoch tag, or "" when unset.
func (s *Spec) Epoch() string { return s.tagOrEmpty(TagEpoch) }

// Version returns the expanded Version tag, or "" when unset.
func (s *Spec) Version() string { return s.tagOrEmpty(TagVersion) }

// Release returns the expanded Release tag, or "" when unset.
func (s *Spec) Release() string { return s.tagOrEmpty(TagRelease) }

// Summary returns the expanded Summary tag.
func (s *Spec) Summary() string { return s.tagOrEmpty(TagSummary) }

// License returns the expanded License tag.
func (s *Spec) License() string { return s.tagOrEmpty(TagLicense) }

// URL returns the expanded URL tag.
func (s *Spec) URL() string { return s.tagOrEmpty(TagURL) }

// Tag returns the expanded value of a preamble tag. Tag names are
// case-insensitive.
func (s *Spec) Tag(name string) (string, bool) {
	tv, ok := s.tags[strings.ToLower(name)]
	return tv.value, ok
}

// RawTag returns a preamble tag exactly as written, before macro expansion.
func (s *Spec) RawTag(name string) (string, bool) {
	tv, ok := s.tags[strings.ToLower(name)]
	return tv.raw, ok
}

// Lookup is Tag with a MissingTagError for absent tags.
func (s *Spec) Lookup(name string) (string, error) {
	v, ok := s.Tag(name)
	if !ok {
		return "", &MissingTagError{File: s.FilePath, Tag: name}
	}
	return v, nil
}

// Macro returns the body of a macro defined in the preamble.
func (s *Spec) Macro(name string) (string, bool) {
	m, ok := s.macros[name]
	return m.body, ok
}

func (s *Spec) tagOrEmpty(name string) string {
	v, _ := s.Tag(name)
	return v
}
