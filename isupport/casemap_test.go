// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package isupport_test

import (
	"testing"

	"github.com/Frikilinux/halloy/isupport"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		casemap isupport.CaseMap
		in      string
		want    string
	}{
		{name: "ascii-lowercases", casemap: isupport.ASCII, in: "NickName", want: "nickname"},
		{name: "ascii-leaves-brackets", casemap: isupport.ASCII, in: "nick[]\\~", want: "nick[]\\~"},
		{name: "rfc1459-brackets", casemap: isupport.RFC1459, in: "Nick[]\\~", want: "nick{}|^"},
		{name: "rfc1459-strict-keeps-tilde", casemap: isupport.RFC1459Strict, in: "Nick[]\\~", want: "nick{}|~"},
		{name: "empty", casemap: isupport.RFC1459, in: "", want: ""},
		{name: "already-folded", casemap: isupport.RFC1459, in: "#chan", want: "#chan"},
		{name: "non-ascii-passthrough", casemap: isupport.RFC1459, in: "#café", want: "#café"},
		{name: "channel-with-case", casemap: isupport.RFC1459, in: "#HalloyChat", want: "#halloychat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.casemap.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	for _, casemap := range []isupport.CaseMap{isupport.ASCII, isupport.RFC1459, isupport.RFC1459Strict} {
		in := "Mixed[Case]\\Input~"
		if casemap.Normalize(in) != casemap.Normalize(in) {
			t.Errorf("%v: Normalize is not deterministic for %q", casemap, in)
		}
	}
}

func TestParseCaseMap(t *testing.T) {
	tests := []struct {
		value string
		want  isupport.CaseMap
	}{
		{"ascii", isupport.ASCII},
		{"ASCII", isupport.ASCII},
		{"rfc1459", isupport.RFC1459},
		{"rfc1459-strict", isupport.RFC1459Strict},
		{"", isupport.RFC1459},
		{"rfc7613", isupport.RFC1459}, // unknown rule falls back to the default
	}
	for _, tt := range tests {
		if got := isupport.ParseCaseMap(tt.value); got != tt.want {
			t.Errorf("ParseCaseMap(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestCaseMapString(t *testing.T) {
	for _, casemap := range []isupport.CaseMap{isupport.ASCII, isupport.RFC1459, isupport.RFC1459Strict} {
		if got := isupport.ParseCaseMap(casemap.String()); got != casemap {
			t.Errorf("ParseCaseMap(%v.String()) = %v", casemap, got)
		}
	}
}
