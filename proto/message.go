// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package proto

import (
	"errors"
	"fmt"
	"strings"
)

// maxParams is the protocol limit on parameters per message
// (RFC 2812 §2.3).
const maxParams = 15

// ErrEmptyCommand is returned by Encode for a message with no command.
var ErrEmptyCommand = errors.New("proto: message has no command")

// Message is a single outbound protocol message: a command verb and
// its parameters, unencoded. The zero value is not encodable.
type Message struct {
	Command string
	Params  []string
}

// New builds a Message from a command verb and parameters.
func New(command string, params ...string) Message {
	return Message{Command: command, Params: params}
}

// Encode renders the message in wire form, CRLF-terminated. The final
// parameter is sent as a trailing parameter (with a ':' sentinel) when
// it is empty, contains a space, or begins with ':'.
//
// Encoding fails on an empty command, on CR, LF, or NUL anywhere in
// the message, on a space or leading ':' in a non-final parameter, and
// on more than 15 parameters. Callers treat an encoding failure as
// "this message cannot exist on the wire" and drop the message.
func (m Message) Encode() (string, error) {
	if m.Command == "" {
		return "", ErrEmptyCommand
	}
	if strings.ContainsAny(m.Command, "\r\n\x00 ") {
		return "", fmt.Errorf("proto: invalid command %q", m.Command)
	}
	if len(m.Params) > maxParams {
		return "", fmt.Errorf("proto: %d parameters exceeds the limit of %d", len(m.Params), maxParams)
	}

	var b strings.Builder
	b.WriteString(m.Command)
	for i, param := range m.Params {
		if strings.ContainsAny(param, "\r\n\x00") {
			return "", fmt.Errorf("proto: parameter %q contains line framing characters", param)
		}
		needsTrailing := param == "" || strings.HasPrefix(param, ":") || strings.ContainsRune(param, ' ')
		if needsTrailing && i != len(m.Params)-1 {
			return "", fmt.Errorf("proto: non-final parameter %q requires trailing encoding", param)
		}
		b.WriteByte(' ')
		if needsTrailing {
			b.WriteByte(':')
		}
		b.WriteString(param)
	}
	b.WriteString("\r\n")
	return b.String(), nil
}

// String returns the wire form without the trailing CRLF when the
// message encodes, or a debug rendering when it does not. For logging.
func (m Message) String() string {
	wire, err := m.Encode()
	if err != nil {
		return fmt.Sprintf("%s %v (unencodable)", m.Command, m.Params)
	}
	return strings.TrimSuffix(wire, "\r\n")
}
