// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package user models user identity: a nickname carrying both its
// display spelling and its case-folded comparison form, and the full
// nick!username@hostname record parsed from a message source prefix.
package user

import (
	"fmt"
	"strings"

	"github.com/Frikilinux/halloy/isupport"
)

// Nick is an immutable nickname. It carries the display spelling and
// the normalized form computed once at construction under the
// connection's active case mapping; comparisons use only the
// normalized form. The zero value is not valid; use IsZero to check.
type Nick struct {
	raw        string
	normalized string
}

// NewNick folds raw under casemap and wraps both forms.
func NewNick(raw string, casemap isupport.CaseMap) Nick {
	return Nick{raw: raw, normalized: casemap.Normalize(raw)}
}

// String returns the display spelling.
func (n Nick) String() string { return n.raw }

// Normalized returns the case-folded comparison form.
func (n Nick) Normalized() string { return n.normalized }

// IsZero reports whether the Nick is the zero value.
func (n Nick) IsZero() bool { return n.raw == "" && n.normalized == "" }

// Equal reports whether two nicknames fold to the same form,
// regardless of display spelling.
func (n Nick) Equal(other Nick) bool { return n.normalized == other.normalized }

// Compare orders nicknames by their normalized forms.
func (n Nick) Compare(other Nick) int {
	return strings.Compare(n.normalized, other.normalized)
}

// User is a full identity record from a message source prefix:
// nick!username@hostname. Username and hostname are optional on the
// wire and empty when absent.
type User struct {
	nick     Nick
	username string
	hostname string
}

// ParseUser parses a source prefix ("nick", "nick!user", "nick@host",
// or "nick!user@host") under the given case mapping. Fails only on an
// empty nickname part.
func ParseUser(source string, casemap isupport.CaseMap) (User, error) {
	rest := source
	var username, hostname string
	if nick, after, found := strings.Cut(rest, "!"); found {
		rest = nick
		username, hostname, _ = strings.Cut(after, "@")
	} else if nick, host, found := strings.Cut(rest, "@"); found {
		rest = nick
		hostname = host
	}
	if rest == "" {
		return User{}, fmt.Errorf("user: empty nickname in source %q", source)
	}
	return User{
		nick:     NewNick(rest, casemap),
		username: username,
		hostname: hostname,
	}, nil
}

// Nick returns the nickname component.
func (u User) Nick() Nick { return u.nick }

// Username returns the username component, empty when absent.
func (u User) Username() string { return u.username }

// Hostname returns the hostname component, empty when absent.
func (u User) Hostname() string { return u.hostname }

// String reassembles the source prefix form.
func (u User) String() string {
	var b strings.Builder
	b.WriteString(u.nick.String())
	if u.username != "" {
		b.WriteByte('!')
		b.WriteString(u.username)
	}
	if u.hostname != "" {
		b.WriteByte('@')
		b.WriteString(u.hostname)
	}
	return b.String()
}
