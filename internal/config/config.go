// Package config loads settings for the cbc-grpcd daemon.
//
// Settings come from an optional JSON file and are then overridden by
// command-line flags that were set explicitly:
//
//	{
//	  "listen": "127.0.0.1:7777",
//	  "backend": "localfs",
//	  "localfs_dir": "/var/lib/cbc",
//	  "max_msg_bytes": 1048576,
//	  "log_level": "info"
//	}
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"xdao.co/cbc/storage"
	"xdao.co/cbc/storage/localfs"
	"xdao.co/cbc/storage/memcas"
)

const (
	BackendLocalFS = "localfs"
	BackendMemory  = "memory"
)

type Config struct {
	Listen      string `json:"listen,omitempty"`
	Backend     string `json:"backend,omitempty"`
	LocalFSDir  string `json:"localfs_dir,omitempty"`
	MaxMsgBytes int    `json:"max_msg_bytes,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
}

// Default returns the settings used when neither file nor flags say otherwise.
func Default() Config {
	return Config{
		Listen:   "127.0.0.1:7777",
		Backend:  BackendMemory,
		LogLevel: "info",
	}
}

// LoadFile reads a JSON config on top of Default. Unknown keys are rejected.
// The result is not validated, since flags may still complete it.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config: empty config path")
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// RegisterFlags binds flags to c. Defaults shown in usage are c's current values.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Listen, "listen", c.Listen, "listen address")
	fs.StringVar(&c.Backend, "backend", c.Backend, "label store backend: localfs or memory")
	fs.StringVar(&c.LocalFSDir, "localfs-dir", c.LocalFSDir, "LocalFS store directory (for --backend=localfs)")
	fs.IntVar(&c.MaxMsgBytes, "max-msg-bytes", c.MaxMsgBytes, "max gRPC message size (0 = gRPC default)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Overlay copies every flag in fs that was set on the command line from src into c.
func (c *Config) Overlay(fs *flag.FlagSet, src Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			c.Listen = src.Listen
		case "backend":
			c.Backend = src.Backend
		case "localfs-dir":
			c.LocalFSDir = src.LocalFSDir
		case "max-msg-bytes":
			c.MaxMsgBytes = src.MaxMsgBytes
		case "log-level":
			c.LogLevel = src.LogLevel
		}
	})
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("config: listen address is required")
	}
	switch c.Backend {
	case BackendMemory:
	case BackendLocalFS:
		if c.LocalFSDir == "" {
			return errors.New("config: localfs_dir is required for backend localfs")
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.MaxMsgBytes < 0 {
		return fmt.Errorf("config: max_msg_bytes must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return l, nil
}

// OpenStore opens the configured backend.
func (c Config) OpenStore() (storage.CAS, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Backend {
	case BackendLocalFS:
		return localfs.New(c.LocalFSDir)
	default:
		return memcas.New(), nil
	}
}
