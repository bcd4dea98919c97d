// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package session tracks which buffers are open per server and
// persists that state across restarts. It is the consumer of the
// connect sequencer's buffer-lifecycle events: OpenBuffers adds,
// LeaveBuffers removes, and everything is keyed by target identity —
// opening "@#Chan" and closing "#chan" touch the same buffer.
package session

import (
	"fmt"
	"os"
	"sort"

	"github.com/Frikilinux/halloy/connect"
	"github.com/Frikilinux/halloy/lib/codec"
	"github.com/Frikilinux/halloy/target"
)

// State holds the open-buffer lists for every server. Buffers are kept
// in target order (channels before queries, each lexicographic on the
// folded name), deduplicated by identity.
//
// State is not safe for concurrent use; the session layer owns it from
// a single goroutine.
type State struct {
	servers map[string][]target.Target
}

// NewState returns an empty State.
func NewState() *State {
	return &State{servers: make(map[string][]target.Target)}
}

// Apply folds one sequencer event into the state for the named server.
func (s *State) Apply(server string, event connect.Event) {
	switch e := event.(type) {
	case connect.OpenBuffers:
		for _, t := range e.Targets {
			s.open(server, t)
		}
	case connect.LeaveBuffers:
		for _, t := range e.Targets {
			s.leave(server, t)
		}
	}
}

// open adds a buffer unless one with the same identity already exists.
// The first spelling seen wins; a later reference to the same target
// with different prefixes or case is the same buffer.
func (s *State) open(server string, t target.Target) {
	buffers := s.servers[server]
	for _, existing := range buffers {
		if existing.Equal(t) {
			return
		}
	}
	buffers = append(buffers, t)
	sort.Slice(buffers, func(i, j int) bool {
		return buffers[i].Compare(buffers[j]) < 0
	})
	s.servers[server] = buffers
}

// leave removes the buffer with the same identity, regardless of raw
// spelling or status prefixes.
func (s *State) leave(server string, t target.Target) {
	buffers := s.servers[server]
	for i, existing := range buffers {
		if existing.Equal(t) {
			s.servers[server] = append(buffers[:i], buffers[i+1:]...)
			return
		}
	}
}

// Buffers returns the open buffers for a server in target order. The
// returned slice is a copy.
func (s *State) Buffers(server string) []target.Target {
	buffers := make([]target.Target, len(s.servers[server]))
	copy(buffers, s.servers[server])
	return buffers
}

// Servers returns the names of servers with at least one open buffer,
// sorted.
func (s *State) Servers() []string {
	names := make([]string, 0, len(s.servers))
	for name, buffers := range s.servers {
		if len(buffers) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// bufferRecord is the persisted form of one target: the variant tag
// plus exactly the payload fields, so a reload reproduces the target
// bit-for-bit with no re-folding.
type bufferRecord struct {
	Kind       string   `json:"kind"` // "channel" or "query"
	Prefixes   []string `json:"prefixes,omitempty"`
	Normalized string   `json:"normalized"`
	Raw        string   `json:"raw"`
}

// stateFile is the on-disk layout, encoded as deterministic CBOR.
type stateFile struct {
	Servers map[string][]bufferRecord `json:"servers"`
}

func recordTarget(t target.Target) bufferRecord {
	if channel, ok := t.AsChannel(); ok {
		prefixes := make([]string, 0, len(channel.Prefixes()))
		for _, r := range channel.Prefixes() {
			prefixes = append(prefixes, string(r))
		}
		return bufferRecord{
			Kind:       "channel",
			Prefixes:   prefixes,
			Normalized: channel.Normalized(),
			Raw:        channel.String(),
		}
	}
	return bufferRecord{
		Kind:       "query",
		Normalized: t.Normalized(),
		Raw:        t.String(),
	}
}

func (r bufferRecord) toTarget() (target.Target, error) {
	switch r.Kind {
	case "channel":
		prefixes := make([]rune, 0, len(r.Prefixes))
		for _, s := range r.Prefixes {
			runes := []rune(s)
			if len(runes) != 1 {
				return target.Target{}, fmt.Errorf("session: prefix %q is not a single character", s)
			}
			prefixes = append(prefixes, runes[0])
		}
		return target.ChannelFromParts(prefixes, r.Normalized, r.Raw).Target(), nil
	case "query":
		return target.QueryFromParts(r.Normalized, r.Raw).Target(), nil
	default:
		return target.Target{}, fmt.Errorf("session: unknown buffer kind %q", r.Kind)
	}
}

// Save writes the state to path as deterministic CBOR. Unchanged state
// produces byte-identical files.
func (s *State) Save(path string) error {
	file := stateFile{Servers: make(map[string][]bufferRecord, len(s.servers))}
	for server, buffers := range s.servers {
		records := make([]bufferRecord, 0, len(buffers))
		for _, t := range buffers {
			records = append(records, recordTarget(t))
		}
		file.Servers[server] = records
	}

	data, err := codec.Marshal(file)
	if err != nil {
		return fmt.Errorf("session: encoding state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("session: writing state: %w", err)
	}
	return nil
}

// Load reads a state file written by Save.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: reading state: %w", err)
	}
	var file stateFile
	if err := codec.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("session: decoding state: %w", err)
	}

	state := NewState()
	for server, records := range file.Servers {
		buffers := make([]target.Target, 0, len(records))
		for _, record := range records {
			t, err := record.toTarget()
			if err != nil {
				return nil, err
			}
			buffers = append(buffers, t)
		}
		state.servers[server] = buffers
	}
	return state, nil
}
