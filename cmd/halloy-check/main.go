// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// halloy-check lints the on_connect command lists in a configuration
// file. The live sequencer silently drops entries that fail to
// resolve, which makes startup robust but also makes typos invisible;
// this tool resolves every entry against an assumed ISUPPORT
// negotiation and prints what each one would do.
//
// Exit status is 1 when any entry fails to resolve.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Frikilinux/halloy/command"
	"github.com/Frikilinux/halloy/config"
	"github.com/Frikilinux/halloy/isupport"
	"github.com/Frikilinux/halloy/target"
	"github.com/Frikilinux/halloy/user"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var serverFilter string
	var chantypes string
	var statusmsg string
	var casemapping string
	var verbose bool

	flagSet := pflag.NewFlagSet("halloy-check", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to the configuration file (required)")
	flagSet.StringVar(&serverFilter, "server", "", "check only this server entry")
	flagSet.StringVar(&chantypes, "chantypes", "#&", "assumed CHANTYPES negotiation")
	flagSet.StringVar(&statusmsg, "statusmsg", "", "assumed STATUSMSG negotiation")
	flagSet.StringVar(&casemapping, "casemapping", "rfc1459", "assumed CASEMAPPING negotiation")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if configPath == "" {
		return fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	table := isupport.NewTable()
	table.Apply("CHANTYPES=" + chantypes)
	table.Apply("STATUSMSG=" + statusmsg)
	table.Apply("CASEMAPPING=" + casemapping)

	names := make([]string, 0, len(cfg.Servers))
	for name := range cfg.Servers {
		if serverFilter != "" && name != serverFilter {
			continue
		}
		names = append(names, name)
	}
	if serverFilter != "" && len(names) == 0 {
		return fmt.Errorf("server %q not found in %s", serverFilter, configPath)
	}
	sort.Strings(names)

	failures := 0
	for _, name := range names {
		server := cfg.Servers[name]
		fmt.Printf("%s (%s:%d)\n", name, server.Server, server.EffectivePort())
		nick := user.NewNick(server.Nickname, table.CaseMap())
		for _, raw := range server.OnConnect {
			line, ok := describe(raw, nick, table)
			if !ok {
				failures++
			}
			fmt.Printf("  %s\n", line)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d on_connect entries failed to resolve (the client would drop them)", failures)
	}
	return nil
}

// describe resolves one on_connect entry and renders its plan line.
func describe(raw string, nick user.Nick, table *isupport.Table) (string, bool) {
	resolved, err := command.Parse(raw, nil, &nick, table)
	if err != nil {
		return fmt.Sprintf("skip   %-30q %v", raw, err), false
	}

	switch c := resolved.(type) {
	case command.Proto:
		wire, err := c.Message.Encode()
		if err != nil {
			return fmt.Sprintf("skip   %-30q unencodable: %v", raw, err), false
		}
		return fmt.Sprintf("send   %s", strings.TrimSuffix(wire, "\r\n")), true
	case command.OpenBuffers:
		return fmt.Sprintf("open   %s", target.Join(displayNames(c.Targets))), true
	case command.LeaveBuffers:
		line := fmt.Sprintf("close  %s", target.Join(displayNames(c.Targets)))
		if c.Reason != "" {
			line += fmt.Sprintf(" (%s)", c.Reason)
		}
		return line, true
	case command.Delay:
		return fmt.Sprintf("delay  %ds", c.Seconds), true
	default:
		return fmt.Sprintf("ignore %q (no effect at connect time)", raw), true
	}
}

func displayNames(targets []target.Target) []string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.String())
	}
	return names
}
