// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package command resolves user-typed command strings into typed
// commands: either a protocol message to send, or an internal control
// command the client handles itself (buffer lifecycle, delays, and a
// few UI-side actions). Resolution needs context — the current
// nickname, an optional explicit target, and the negotiated ISUPPORT
// table — because target validation depends on what the server
// advertised.
package command

import (
	"github.com/Frikilinux/halloy/proto"
	"github.com/Frikilinux/halloy/target"
)

// Command is the closed sum of everything a command string can resolve
// to. Exactly one concrete type per variant; call sites switch on the
// type and handle all of them.
type Command interface {
	isCommand()
}

// Proto is a protocol-level command: a message destined for the wire.
type Proto struct {
	Message proto.Message
}

// OpenBuffers asks the UI layer to open a buffer per target, in order.
type OpenBuffers struct {
	Targets []target.Target
}

// LeaveBuffers asks the UI layer to close the buffers for the given
// targets. Reason is empty when the user gave none.
type LeaveBuffers struct {
	Targets []target.Target
	Reason  string
}

// Delay suspends whatever sequence the command runs in for the given
// number of seconds before the next command is evaluated.
type Delay struct {
	Seconds uint64
}

// ClearBuffer clears the current buffer's backlog.
type ClearBuffer struct{}

// Hop parts and rejoins a channel. Channel is empty for the current
// one; Reason is empty when the user gave none.
type Hop struct {
	Channel string
	Reason  string
}

// SysInfo posts client and system information to the current buffer.
type SysInfo struct{}

func (Proto) isCommand()        {}
func (OpenBuffers) isCommand()  {}
func (LeaveBuffers) isCommand() {}
func (Delay) isCommand()        {}
func (ClearBuffer) isCommand()  {}
func (Hop) isCommand()          {}
func (SysInfo) isCommand()      {}
