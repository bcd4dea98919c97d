// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package proto provides the protocol message value type, its wire
// encoding, and the statusmsg-aware channel split used by target
// parsing. Transport framing, connection management, and inbound
// message parsing live elsewhere; this package only knows how a single
// outbound message is shaped on the wire.
package proto
