// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/Frikilinux/halloy/isupport"
	"github.com/Frikilinux/halloy/user"
)

func TestDescribe(t *testing.T) {
	table := isupport.NewTable()
	table.Apply("STATUSMSG=@+")
	nick := user.NewNick("halloyuser", table.CaseMap())

	tests := []struct {
		raw        string
		wantPrefix string
		wantOK     bool
	}{
		{"/join #halloy", "send   JOIN #halloy", true},
		{"/msg NickServ identify hunter2", "send   PRIVMSG NickServ :identify hunter2", true},
		{"/delay 2", "delay  2s", true},
		{"/query #a,#b", "open   #a and #b", true},
		{"/close #a,#b,#c", "close  #a, #b, and #c", true},
		{"/sysinfo", "ignore", true},
		{"bogus-garbage", "skip", false},
		{"/join nochantype", "skip", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			line, ok := describe(tt.raw, nick, table)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (line %q)", ok, tt.wantOK, line)
			}
			if !strings.HasPrefix(line, tt.wantPrefix) {
				t.Errorf("line = %q, want prefix %q", line, tt.wantPrefix)
			}
		})
	}
}
