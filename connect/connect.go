// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package connect replays a server's configured on_connect commands
// after registration completes. Each configured string resolves to a
// typed command; protocol commands are sent through the connection
// handle in exactly the configured order, delays suspend the sequence,
// and buffer-lifecycle commands surface as events for the session
// layer. Startup must be robust to partially invalid configuration, so
// unresolvable entries are dropped and send failures are logged and
// skipped — the pass always completes.
package connect

import (
	"context"
	"log/slog"
	"time"

	"github.com/Frikilinux/halloy/command"
	"github.com/Frikilinux/halloy/isupport"
	"github.com/Frikilinux/halloy/lib/clock"
	"github.com/Frikilinux/halloy/target"
	"github.com/Frikilinux/halloy/user"
)

// Event is the closed sum of buffer-lifecycle notifications the
// sequence yields to its caller.
type Event interface {
	isEvent()
}

// OpenBuffers carries the targets to open, in configured order.
type OpenBuffers struct {
	Targets []target.Target
}

// LeaveBuffers carries the targets to close. Reason is empty when the
// configured command gave none.
type LeaveBuffers struct {
	Targets []target.Target
	Reason  string
}

func (OpenBuffers) isEvent()  {}
func (LeaveBuffers) isEvent() {}

// Handle transmits an encoded protocol message over the live
// connection. Implementations may suspend on transport backpressure
// but preserve send order per connection; handles for the same
// connection route through the same transmit path.
type Handle interface {
	Send(ctx context.Context, wire string) error
}

// Resolver turns one configured command string into a typed command
// using connection context. The default resolver is command.Parse with
// no explicit target; tests inject their own.
type Resolver func(raw string, nick user.Nick, table *isupport.Table) (command.Command, error)

// Sequence is a one-shot, forward-only pass over the resolved startup
// commands. It is advanced only by Next and never runs concurrently
// with itself; independent connections own independent sequences and
// share nothing. A Sequence is never restarted or reset.
type Sequence struct {
	handle   Handle
	clock    clock.Clock
	logger   *slog.Logger
	resolver Resolver
	commands []command.Command
	index    int
}

// Option adjusts sequence construction.
type Option func(*Sequence)

// WithClock injects the clock used for delay commands. Defaults to
// the real clock.
func WithClock(c clock.Clock) Option {
	return func(s *Sequence) { s.clock = c }
}

// WithLogger injects the logger used for send-failure warnings.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequence) { s.logger = logger }
}

// WithResolver replaces the command resolver.
func WithResolver(resolver Resolver) Option {
	return func(s *Sequence) { s.resolver = resolver }
}

// OnConnect resolves the configured command strings and returns the
// sequence ready for its single pass. Resolution is eager: every
// string goes through the resolver here, and any string that fails to
// resolve is silently excluded — a malformed startup command must
// never abort startup or surface an error.
func OnConnect(handle Handle, configured []string, nick user.Nick, table *isupport.Table, opts ...Option) *Sequence {
	s := &Sequence{
		handle: handle,
		clock:  clock.Real(),
		logger: slog.Default(),
		resolver: func(raw string, nick user.Nick, table *isupport.Table) (command.Command, error) {
			var n *user.Nick
			if !nick.IsZero() {
				n = &nick
			}
			return command.Parse(raw, nil, n, table)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.commands = make([]command.Command, 0, len(configured))
	for _, raw := range configured {
		resolved, err := s.resolver(raw, nick, table)
		if err != nil {
			continue
		}
		s.commands = append(s.commands, resolved)
	}
	return s
}

// Next advances the sequence until it produces an event, exhausts the
// command list, or ctx is cancelled. It returns ok=false with a nil
// Event on exhaustion and on cancellation; after that the sequence is
// finished for good.
//
// Protocol commands are encoded and sent inline during the call:
// encoding failures skip the command silently, send failures are
// logged at warn level and skipped, and neither stops the pass. A
// delay command suspends this sequence only — the caller's other
// connections keep running — and a zero-second delay still passes
// through the clock so it remains an ordering point.
func (s *Sequence) Next(ctx context.Context) (Event, bool) {
	for s.index < len(s.commands) {
		cmd := s.commands[s.index]
		s.index++

		switch c := cmd.(type) {
		case command.Proto:
			wire, err := c.Message.Encode()
			if err != nil {
				continue
			}
			if err := s.handle.Send(ctx, wire); err != nil {
				s.logger.Warn("error sending message",
					"command", c.Message.Command,
					"error", err)
			}

		case command.OpenBuffers:
			return OpenBuffers{Targets: c.Targets}, true

		case command.LeaveBuffers:
			return LeaveBuffers{Targets: c.Targets, Reason: c.Reason}, true

		case command.Delay:
			select {
			case <-ctx.Done():
				s.index = len(s.commands)
				return nil, false
			case <-s.clock.After(time.Duration(c.Seconds) * time.Second):
			}

		case command.ClearBuffer, command.Hop, command.SysInfo:
			// Meaningless at initial connect time.
		}
	}
	return nil, false
}
