// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package isupport holds the server-advertised protocol parameters this
// client consumes after registration: which characters begin a channel
// name (CHANTYPES), which characters scope a message to a channel
// status subset (STATUSMSG), and which case-folding rule governs name
// comparison (CASEMAPPING).
//
// The negotiation handshake itself (RPL_ISUPPORT accumulation and
// re-negotiation) lives with the connection code. This package is the
// read-only view the rest of the client keys identity decisions on:
// every channel and query comparison anywhere in the client goes
// through CaseMap.Normalize with the table's active rule.
package isupport
