// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package isupport

import "strings"

const (
	defaultChantypes = "#&"
	defaultStatusmsg = ""
)

// Table is the negotiated ISUPPORT parameter view consumed by target
// parsing and command resolution. It starts at the protocol defaults
// (CHANTYPES "#&", empty STATUSMSG, RFC1459 case mapping) and is
// updated by feeding it raw RPL_ISUPPORT tokens via Apply.
//
// Table is not safe for concurrent mutation; connections apply tokens
// from their single read loop and hand out the table for read-only
// use afterwards.
type Table struct {
	chantypes []rune
	statusmsg []rune
	casemap   CaseMap
	raw       map[string]string
}

// NewTable returns a Table holding the protocol defaults.
func NewTable() *Table {
	return &Table{
		chantypes: []rune(defaultChantypes),
		statusmsg: []rune(defaultStatusmsg),
		casemap:   RFC1459,
		raw:       make(map[string]string),
	}
}

// Apply consumes one RPL_ISUPPORT token, either "KEY", "KEY=value", or
// "-KEY" (which reverts the parameter to its default). Keys are
// case-insensitive. Tokens for parameters this client does not model
// are retained verbatim and readable through Param.
func (t *Table) Apply(token string) {
	key, value, _ := strings.Cut(token, "=")
	key = strings.ToUpper(key)

	if negated := strings.TrimPrefix(key, "-"); negated != key {
		delete(t.raw, negated)
		switch negated {
		case "CHANTYPES":
			t.chantypes = []rune(defaultChantypes)
		case "STATUSMSG":
			t.statusmsg = []rune(defaultStatusmsg)
		case "CASEMAPPING":
			t.casemap = RFC1459
		}
		return
	}

	t.raw[key] = value
	switch key {
	case "CHANTYPES":
		t.chantypes = []rune(value)
	case "STATUSMSG":
		t.statusmsg = []rune(value)
	case "CASEMAPPING":
		t.casemap = ParseCaseMap(value)
	}
}

// Chantypes returns the channel-leading characters. The returned slice
// is a copy; callers may hold it across later Apply calls.
func (t *Table) Chantypes() []rune {
	chantypes := make([]rune, len(t.chantypes))
	copy(chantypes, t.chantypes)
	return chantypes
}

// Statusmsg returns the status-prefix characters, empty when the
// server advertises none. The returned slice is a copy.
func (t *Table) Statusmsg() []rune {
	statusmsg := make([]rune, len(t.statusmsg))
	copy(statusmsg, t.statusmsg)
	return statusmsg
}

// CaseMap returns the active case-folding rule.
func (t *Table) CaseMap() CaseMap { return t.casemap }

// Param returns the raw value of any applied parameter, including ones
// this client does not model. The second return is false if the
// parameter was never applied (or was reverted with a "-KEY" token).
func (t *Table) Param(key string) (string, bool) {
	value, ok := t.raw[strings.ToUpper(key)]
	return value, ok
}
