// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package user_test

import (
	"testing"

	"github.com/Frikilinux/halloy/isupport"
	"github.com/Frikilinux/halloy/user"
)

func TestNick(t *testing.T) {
	nick := user.NewNick("Guest[away]", isupport.RFC1459)
	if nick.String() != "Guest[away]" {
		t.Errorf("String() = %q", nick.String())
	}
	if nick.Normalized() != "guest{away}" {
		t.Errorf("Normalized() = %q", nick.Normalized())
	}
	if nick.IsZero() {
		t.Error("IsZero() = true for a valid nick")
	}

	other := user.NewNick("guest{AWAY}", isupport.RFC1459)
	if !nick.Equal(other) {
		t.Errorf("%q and %q should fold to the same nick", nick, other)
	}
	if nick.Compare(other) != 0 {
		t.Error("Compare should be 0 for equal nicks")
	}

	var zero user.Nick
	if !zero.IsZero() {
		t.Error("zero Nick should report IsZero")
	}
}

func TestParseUser(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantNick     string
		wantUsername string
		wantHostname string
		wantErr      bool
	}{
		{name: "full", source: "nick!user@host.example", wantNick: "nick", wantUsername: "user", wantHostname: "host.example"},
		{name: "nick-only", source: "nick", wantNick: "nick"},
		{name: "nick-user", source: "nick!user", wantNick: "nick", wantUsername: "user"},
		{name: "nick-host", source: "nick@host", wantNick: "nick", wantHostname: "host"},
		{name: "empty", source: "", wantErr: true},
		{name: "missing-nick", source: "!user@host", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := user.ParseUser(tt.source, isupport.RFC1459)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", u)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.Nick().String() != tt.wantNick {
				t.Errorf("nick = %q, want %q", u.Nick().String(), tt.wantNick)
			}
			if u.Username() != tt.wantUsername {
				t.Errorf("username = %q, want %q", u.Username(), tt.wantUsername)
			}
			if u.Hostname() != tt.wantHostname {
				t.Errorf("hostname = %q, want %q", u.Hostname(), tt.wantHostname)
			}
			if u.String() != tt.source {
				t.Errorf("String() = %q, want %q", u.String(), tt.source)
			}
		})
	}
}
