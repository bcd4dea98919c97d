// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Frikilinux/halloy/isupport"
	"github.com/Frikilinux/halloy/proto"
	"github.com/Frikilinux/halloy/target"
	"github.com/Frikilinux/halloy/user"
)

// ErrEmpty is returned when the command string is empty or whitespace.
var ErrEmpty = errors.New("command: empty command")

// UnknownCommandError is returned for an unrecognized command name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command: unknown command %q", e.Name)
}

// Parse resolves one command string. A single leading '/' is accepted
// and ignored. explicit is the target of the buffer the command was
// typed in, nil when there is none (for example on_connect commands,
// which run before any buffer exists). nick is the connection's
// current nickname, nil before registration. table supplies the
// negotiated parameters for target validation; nil means protocol
// defaults.
//
// Errors carry enough text to show the user, but callers in
// fault-tolerant positions (startup command replay) are free to drop
// failing entries without inspecting them.
func Parse(raw string, explicit *target.Target, nick *user.Nick, table *isupport.Table) (Command, error) {
	if table == nil {
		table = isupport.NewTable()
	}
	line := strings.TrimSpace(raw)
	line = strings.TrimPrefix(line, "/")
	if line == "" {
		return nil, ErrEmpty
	}

	name, rest, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	chantypes := table.Chantypes()
	statusmsg := table.Statusmsg()
	casemap := table.CaseMap()

	switch name {
	case "join", "j":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("command: /join takes channels and optional keys")
		}
		if err := validateChannels(args[0], chantypes, statusmsg, casemap); err != nil {
			return nil, err
		}
		return Proto{Message: proto.New("JOIN", args...)}, nil

	case "part", "leave":
		if len(args) < 1 {
			return nil, fmt.Errorf("command: /part requires channels")
		}
		if err := validateChannels(args[0], chantypes, statusmsg, casemap); err != nil {
			return nil, err
		}
		channels, reason, _ := strings.Cut(rest, " ")
		params := []string{channels}
		if reason = strings.TrimSpace(reason); reason != "" {
			params = append(params, reason)
		}
		return Proto{Message: proto.New("PART", params...)}, nil

	case "msg", "notice":
		targets, text, found := strings.Cut(rest, " ")
		text = strings.TrimSpace(text)
		if targets == "" || !found || text == "" {
			return nil, fmt.Errorf("command: /%s requires a target and a message", name)
		}
		verb := "PRIVMSG"
		if name == "notice" {
			verb = "NOTICE"
		}
		return Proto{Message: proto.New(verb, targets, text)}, nil

	case "me":
		if explicit == nil {
			return nil, fmt.Errorf("command: /me requires an open buffer")
		}
		if rest == "" {
			return nil, fmt.Errorf("command: /me requires an action")
		}
		action := "\x01ACTION " + rest + "\x01"
		return Proto{Message: proto.New("PRIVMSG", explicit.String(), action)}, nil

	case "nick":
		if len(args) != 1 {
			return nil, fmt.Errorf("command: /nick requires a nickname")
		}
		return Proto{Message: proto.New("NICK", args[0])}, nil

	case "topic":
		if len(args) < 1 {
			return nil, fmt.Errorf("command: /topic requires a channel")
		}
		if _, err := target.ParseChannel(args[0], chantypes, statusmsg, casemap); err != nil {
			return nil, err
		}
		channel, topic, _ := strings.Cut(rest, " ")
		params := []string{channel}
		if topic = strings.TrimSpace(topic); topic != "" {
			params = append(params, topic)
		}
		return Proto{Message: proto.New("TOPIC", params...)}, nil

	case "mode":
		if len(args) < 1 {
			return nil, fmt.Errorf("command: /mode requires a target")
		}
		return Proto{Message: proto.New("MODE", args...)}, nil

	case "away":
		if rest == "" {
			return Proto{Message: proto.New("AWAY")}, nil
		}
		return Proto{Message: proto.New("AWAY", rest)}, nil

	case "whois":
		if len(args) == 1 {
			return Proto{Message: proto.New("WHOIS", args[0])}, nil
		}
		if len(args) == 0 && nick != nil {
			return Proto{Message: proto.New("WHOIS", nick.String())}, nil
		}
		return nil, fmt.Errorf("command: /whois requires a nickname")

	case "quit":
		if rest == "" {
			return Proto{Message: proto.New("QUIT")}, nil
		}
		return Proto{Message: proto.New("QUIT", rest)}, nil

	case "quote", "raw":
		return parseRaw(rest)

	case "query", "q":
		if len(args) != 1 {
			return nil, fmt.Errorf("command: /query requires targets")
		}
		return OpenBuffers{Targets: splitTargets(args[0], chantypes, statusmsg, casemap)}, nil

	case "close":
		if len(args) == 0 {
			if explicit == nil {
				return nil, fmt.Errorf("command: /close requires a target or an open buffer")
			}
			return LeaveBuffers{Targets: []target.Target{*explicit}}, nil
		}
		names, reason, _ := strings.Cut(rest, " ")
		return LeaveBuffers{
			Targets: splitTargets(names, chantypes, statusmsg, casemap),
			Reason:  strings.TrimSpace(reason),
		}, nil

	case "delay":
		if len(args) != 1 {
			return nil, fmt.Errorf("command: /delay requires a number of seconds")
		}
		seconds, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("command: /delay: %w", err)
		}
		return Delay{Seconds: seconds}, nil

	case "clearbuffer", "clear":
		return ClearBuffer{}, nil

	case "hop":
		hop := Hop{}
		if len(args) >= 1 {
			if _, err := target.ParseChannel(args[0], chantypes, statusmsg, casemap); err != nil {
				return nil, err
			}
			hop.Channel = args[0]
			_, reason, _ := strings.Cut(rest, " ")
			hop.Reason = strings.TrimSpace(reason)
		}
		return hop, nil

	case "sysinfo":
		return SysInfo{}, nil

	default:
		return nil, &UnknownCommandError{Name: name}
	}
}

// validateChannels checks every entry of a comma-separated channel
// list against the negotiated channel pattern.
func validateChannels(list string, chantypes, statusmsg []rune, casemap isupport.CaseMap) error {
	for _, name := range strings.Split(list, ",") {
		if _, err := target.ParseChannel(name, chantypes, statusmsg, casemap); err != nil {
			return err
		}
	}
	return nil
}

// splitTargets parses a comma-separated target list. Infallible:
// anything that is not a channel is a query.
func splitTargets(list string, chantypes, statusmsg []rune, casemap isupport.CaseMap) []target.Target {
	names := strings.Split(list, ",")
	targets := make([]target.Target, 0, len(names))
	for _, name := range names {
		targets = append(targets, target.ParseTarget(name, chantypes, statusmsg, casemap))
	}
	return targets
}

// parseRaw resolves a /quote line: the first token is the protocol
// verb, the remaining tokens are parameters, and a token beginning
// with ':' starts the trailing parameter, which runs to the end of the
// line with spaces preserved.
func parseRaw(rest string) (Command, error) {
	if rest == "" {
		return nil, fmt.Errorf("command: /quote requires a protocol command")
	}
	verb, remainder, _ := strings.Cut(rest, " ")

	var params []string
	for remainder != "" {
		if strings.HasPrefix(remainder, ":") {
			params = append(params, remainder[1:])
			break
		}
		var token string
		token, remainder, _ = strings.Cut(remainder, " ")
		if token != "" {
			params = append(params, token)
		}
	}
	return Proto{Message: proto.New(strings.ToUpper(verb), params...)}, nil
}
