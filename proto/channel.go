// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package proto

import (
	"strings"
	"unicode/utf8"
)

// ParseChannelFromTarget splits an addressing string into a leading run
// of STATUSMSG prefixes and a channel name. The split point is the
// first rune that is not a statusmsg character; the string matches the
// channel pattern when that rune is one of the chantypes. The channel
// part keeps its leading sigil.
//
// ok is false when the string is empty, consists entirely of statusmsg
// runes, or the rune after the prefix run is not a chantype. This is
// the boundary rule for protocol-context parsing: prefixes only count
// when the server advertised them in STATUSMSG.
func ParseChannelFromTarget(raw string, chantypes, statusmsg []rune) (prefixes []rune, channel string, ok bool) {
	index := strings.IndexFunc(raw, func(r rune) bool {
		return !runeIn(statusmsg, r)
	})
	if index < 0 {
		return nil, "", false
	}

	first, _ := utf8.DecodeRuneInString(raw[index:])
	if !runeIn(chantypes, first) {
		return nil, "", false
	}
	return []rune(raw[:index]), raw[index:], true
}

func runeIn(set []rune, r rune) bool {
	for _, member := range set {
		if member == r {
			return true
		}
	}
	return false
}
