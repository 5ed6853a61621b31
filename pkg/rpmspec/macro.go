// SPDX-License-Identifier: MPL-2.0

package rpmspec

import (
	"errors"
	"fmt"
	"strings"
)

// maxExpansionDepth bounds nested macro expansion so that self-referencing
// definitions fail instead of looping.
const maxExpansionDepth = 32

var errExpansionTooDeep = errors.New("macro expansion too deep (recursive definition?)")

// expand replaces macro references in in. Supported forms:
//
//	%%             literal percent
//	%name %{name}  value of name, left untouched when undefined
//	%{?name}       value of name, or empty
//	%{?name:text}  text when name is defined, else empty
//	%{!?name:text} text when name is undefined, else empty
//
// Built-ins (%{expand:...}, %{lua:...}) and shell expansions %(...) are
// copied through unchanged.
func (s *Spec) expand(in string, depth int) (string, error) {
	if depth > maxExpansionDepth {
		return "", errExpansionTooDeep
	}
	if !strings.Contains(in, "%") {
		return in, nil
	}

	var out strings.Builder
	for i := 0; i < len(in); {
		c := in[i]
		if c != '%' || i+1 >= len(in) {
			out.WriteByte(c)
			i++
			continue
		}

		switch next := in[i+1]; {
		case next == '%':
			out.WriteByte('%')
			i += 2
		case next == '{':
			end, err := matchingBrace(in, i+1)
			if err != nil {
				return "", err
			}
			expanded, err := s.expandBraced(in[i+2:end], in[i:end+1], depth)
			if err != nil {
				return "", err
			}
			out.WriteString(expanded)
			i = end + 1
		case isMacroStart(next):
			j := i + 1
			for j < len(in) && isMacroChar(in[j]) {
				j++
			}
			name := in[i+1 : j]
			if m, ok := s.macros[name]; ok {
				expanded, err := s.expandMacro(m, depth)
				if err != nil {
					return "", err
				}
				out.WriteString(expanded)
			} else {
				out.WriteString(in[i:j])
			}
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), nil
}

// expandBraced expands the body of a %{...} reference. literal is the full
// reference text, used when the macro is unknown.
func (s *Spec) expandBraced(body, literal string, depth int) (string, error) {
	switch {
	case strings.HasPrefix(body, "!?"):
		name, text, hasText := strings.Cut(body[2:], ":")
		if _, ok := s.macros[name]; ok || !hasText {
			return "", nil
		}
		return s.expand(text, depth+1)
	case strings.HasPrefix(body, "?"):
		name, text, hasText := strings.Cut(body[1:], ":")
		m, ok := s.macros[name]
		if !ok {
			return "", nil
		}
		if hasText {
			return s.expand(text, depth+1)
		}
		return s.expandMacro(m, depth)
	}

	if !isMacroName(body) {
		return literal, nil
	}
	m, ok := s.macros[body]
	if !ok {
		return literal, nil
	}
	return s.expandMacro(m, depth)
}

func (s *Spec) expandMacro(m macro, depth int) (string, error) {
	if m.expanded {
		return m.body, nil
	}
	return s.expand(m.body, depth+1)
}

// matchingBrace returns the index of the '}' closing the '{' at open.
func matchingBrace(in string, open int) (int, error) {
	level := 0
	for i := open; i < len(in); i++ {
		switch in[i] {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unterminated macro reference %q", in[open-1:])
}

func isMacroName(name string) bool {
	if name == "" || !isMacroStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isMacroChar(name[i]) {
			return false
		}
	}
	return true
}

func isMacroStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isMacroChar(c byte) bool {
	return isMacroStart(c) || (c >= '0' && c <= '9')
}
