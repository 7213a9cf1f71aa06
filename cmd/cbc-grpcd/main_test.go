package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_RejectsBadConfig(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":    {"-nope"},
		"unknown backend": {"-backend", "tape"},
		"localfs no dir":  {"-backend", "localfs"},
		"bad log level":   {"-log-level", "loud"},
		"missing file":    {"-config", filepath.Join(t.TempDir(), "absent.json")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var errOut bytes.Buffer
			if code := run(args, &errOut); code != 2 {
				t.Fatalf("exit %d, want 2 (stderr %q)", code, errOut.String())
			}
		})
	}
}

func TestRun_ConfigFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cbc.json")
	if err := os.WriteFile(path, []byte(`{"listen":"127.0.0.1:0","colour":"red"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var errOut bytes.Buffer
	if code := run([]string{"-config", path}, &errOut); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), "colour") {
		t.Fatalf("stderr should name the unknown key: %q", errOut.String())
	}
}
