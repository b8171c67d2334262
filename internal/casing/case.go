// Package casing converts identifier names between the cases used by
// generated output: module names become snake_case files and directories,
// scaffold type names become PascalCase.
package casing

import (
	"strings"
	"unicode"
)

// segments splits an identifier into lowercase word segments.
// Splits on uppercase letters, underscores and dashes.
func segments(s string) []string {
	var segs []string
	var current strings.Builder

	for i, r := range s {
		if i == 0 {
			current.WriteRune(unicode.ToLower(r))
			continue
		}

		if unicode.IsUpper(r) || r == '_' || r == '-' {
			if current.Len() > 0 {
				segs = append(segs, current.String())
				current.Reset()
			}
			if r != '_' && r != '-' {
				current.WriteRune(unicode.ToLower(r))
			}
		} else {
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		segs = append(segs, current.String())
	}

	return segs
}

// Snake converts a name to snake_case.
func Snake(s string) string {
	segs := segments(s)
	if len(segs) == 0 {
		return s
	}
	return strings.Join(segs, "_")
}

// Pascal converts a name to PascalCase.
func Pascal(s string) string {
	segs := segments(s)
	if len(segs) == 0 {
		return s
	}

	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}

// Camel converts a name to camelCase.
func Camel(s string) string {
	segs := segments(s)
	if len(segs) == 0 {
		return s
	}

	result := segs[0]
	for _, seg := range segs[1:] {
		result += strings.ToUpper(seg[:1]) + seg[1:]
	}
	return result
}
