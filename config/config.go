// Copyright 2026 The Halloy Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads client configuration. Configuration lives in a
// single file; TOML is the native format, with YAML and JSONC (JSON
// with comments and trailing commas) accepted on extension. There is
// no automatic discovery or layering — the caller names the file,
// which keeps configuration deterministic and auditable.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	// Servers maps a display name to its server configuration.
	Servers map[string]Server `toml:"servers" yaml:"servers" json:"servers"`
}

// Server configures one connection.
type Server struct {
	// Server is the hostname or address to connect to.
	Server string `toml:"server" yaml:"server" json:"server"`

	// Port is the TCP port. Zero selects the default for the
	// transport: 6697 with TLS, 6667 without.
	Port uint16 `toml:"port" yaml:"port" json:"port"`

	// UseTLS enables TLS for the connection. Defaults to true.
	UseTLS *bool `toml:"use_tls" yaml:"use_tls" json:"use_tls"`

	// Nickname is the nickname requested at registration.
	Nickname string `toml:"nickname" yaml:"nickname" json:"nickname"`

	// OnConnect is the ordered list of command strings replayed after
	// registration completes. Entries use the same grammar as typed
	// commands ("/join #halloy", "/delay 2", ...); the leading slash
	// is optional.
	OnConnect []string `toml:"on_connect" yaml:"on_connect" json:"on_connect"`
}

// TLS reports whether the connection uses TLS (the default when the
// config file says nothing).
func (s Server) TLS() bool {
	return s.UseTLS == nil || *s.UseTLS
}

// EffectivePort returns the configured port, or the transport default
// when the config file says nothing.
func (s Server) EffectivePort() uint16 {
	if s.Port != 0 {
		return s.Port
	}
	if s.TLS() {
		return 6697
	}
	return 6667
}

// Load reads and validates a configuration file. The format is chosen
// by extension: .toml, .yaml/.yml, or .json/.jsonc.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported config format %q", ext)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Servers) == 0 {
		return fmt.Errorf("config: no servers configured")
	}
	for name, server := range c.Servers {
		if server.Server == "" {
			return fmt.Errorf("config: server %q has no address", name)
		}
		if server.Nickname == "" {
			return fmt.Errorf("config: server %q has no nickname", name)
		}
	}
	return nil
}
