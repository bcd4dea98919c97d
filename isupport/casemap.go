// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package isupport

import "strings"

// CaseMap is a server-selected case-folding rule. Two names refer to
// the same channel or user exactly when their folded forms are equal,
// so the active rule decides identity for every target in the client.
//
// The zero value is RFC1459, the protocol default.
type CaseMap uint8

const (
	// RFC1459 folds A-Z to a-z and additionally treats "[]\~" as the
	// uppercase forms of "{}|^". This is the default rule when the
	// server advertises nothing.
	RFC1459 CaseMap = iota

	// RFC1459Strict folds A-Z and "[]\" but, unlike RFC1459, leaves
	// '~' alone.
	RFC1459Strict

	// ASCII folds A-Z to a-z and nothing else.
	ASCII
)

// ParseCaseMap maps a CASEMAPPING parameter value to a CaseMap.
// Unrecognized values fall back to RFC1459: a server advertising an
// unknown rule is treated as advertising the protocol default, which
// keeps parsing total.
func ParseCaseMap(value string) CaseMap {
	switch strings.ToLower(value) {
	case "ascii":
		return ASCII
	case "rfc1459-strict":
		return RFC1459Strict
	default:
		return RFC1459
	}
}

// String returns the CASEMAPPING parameter value for the rule.
func (m CaseMap) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case RFC1459Strict:
		return "rfc1459-strict"
	default:
		return "rfc1459"
	}
}

// Normalize returns the comparison form of s under the rule. Pure and
// total: any input, including the empty string and non-ASCII code
// points, maps deterministically to an output. Code points outside the
// rule's folding set pass through unchanged. The mapping is not
// invertible.
func (m CaseMap) Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		if m == ASCII {
			return r
		}
		switch r {
		case '[':
			return '{'
		case ']':
			return '}'
		case '\\':
			return '|'
		case '~':
			if m == RFC1459 {
				return '^'
			}
		}
		return r
	}, s)
}
