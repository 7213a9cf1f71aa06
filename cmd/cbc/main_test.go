package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testPostal  = "263-0023"
	testAddress = "千葉市稲毛区緑町3丁目30-8　郵便ビル403号"
	testTokens  = "STC 2 6 3 0 0 2 3 3 - 3 0 - 8 - 4 0 3 CC4 CC4 CC4 5 SPC"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("no args: exit %d, want 2", code)
	}
	if code, _, errOut := runCLI(t, "bogus"); code != 2 || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("bogus: exit %d, stderr %q", code, errOut)
	}
	if code, out, _ := runCLI(t, "help"); code != 0 || !strings.Contains(out, "cbc encode") {
		t.Fatalf("help: exit %d", code)
	}
}

func TestEncode_Formats(t *testing.T) {
	code, out, errOut := runCLI(t, "encode", "--postal", testPostal, "--address", testAddress)
	if code != 0 {
		t.Fatalf("encode: exit %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != testTokens {
		t.Fatalf("tokens = %q", out)
	}

	_, out, _ = runCLI(t, "encode", "--postal", testPostal, "--address", testAddress, "--format", "canonical")
	if strings.TrimSpace(out) != "3-30-8-403" {
		t.Fatalf("canonical = %q", out)
	}

	_, out, _ = runCLI(t, "encode", "--postal", testPostal, "--address", testAddress, "--format", "json")
	var got encodeOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	if got.PostalCode != "2630023" || got.CheckDigit != "5" || len(got.Tokens) != 23 {
		t.Fatalf("unexpected json output: %+v", got)
	}
}

func TestEncode_BadPostalCode(t *testing.T) {
	code, _, errOut := runCLI(t, "encode", "--postal", "123", "--address", testAddress)
	if code != 1 || !strings.Contains(errOut, "CBC-POSTAL-001") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestGlyphs_OutDir(t *testing.T) {
	dir := t.TempDir()
	code, _, errOut := runCLI(t, "glyphs", "--postal", testPostal, "--address", testAddress, "--out", dir)
	if code != 0 {
		t.Fatalf("glyphs: exit %d: %s", code, errOut)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 23 {
		t.Fatalf("got %d files, want 23", len(entries))
	}
	if _, err := os.Stat(filepath.Join(dir, "09_HY.gif")); err != nil {
		t.Fatalf("expected hyphen glyph file: %v", err)
	}

	_, out, _ := runCLI(t, "glyphs", "--postal", testPostal, "--address", testAddress)
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 23 {
		t.Fatalf("got %d base64 lines, want 23", n)
	}
}

func TestLabel_CID_Verify_Store(t *testing.T) {
	code, raw, errOut := runCLI(t, "label", "--postal", testPostal, "--address", testAddress)
	if code != 0 {
		t.Fatalf("label: exit %d: %s", code, errOut)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "a.label")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	code, out, errOut := runCLI(t, "cid", path)
	if code != 0 {
		t.Fatalf("cid: exit %d: %s", code, errOut)
	}
	id := strings.TrimSpace(out)

	crlf := filepath.Join(dir, "crlf.label")
	if err := os.WriteFile(crlf, []byte(strings.ReplaceAll(raw, "\n", "\r\n")+"\r\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if code, out, _ := runCLI(t, "verify", crlf); code != 0 || strings.TrimSpace(out) != "OK "+id {
		t.Fatalf("verify: exit %d, out %q", code, out)
	}
	if code, _, errOut := runCLI(t, "verify", "--mode", "strict", crlf); code != 1 || !strings.Contains(errOut, "CBC-LABEL-002") {
		t.Fatalf("strict verify: exit %d, stderr %q", code, errOut)
	}
	if code, _, _ := runCLI(t, "cid", crlf); code != 1 {
		t.Fatalf("cid should reject non-canonical bytes, exit %d", code)
	}

	store := filepath.Join(dir, "store")
	code, out, errOut = runCLI(t, "put", "--store", store, path)
	if code != 0 || strings.TrimSpace(out) != id {
		t.Fatalf("put: exit %d, out %q, stderr %q", code, out, errOut)
	}
	code, out, errOut = runCLI(t, "put", "--store", store, "--postal", testPostal, "--address", testAddress)
	if code != 0 || strings.TrimSpace(out) != id {
		t.Fatalf("put from flags: exit %d, out %q, stderr %q", code, out, errOut)
	}
	code, out, _ = runCLI(t, "get", "--store", store, id)
	if code != 0 || out != raw {
		t.Fatalf("get: exit %d, out %q", code, out)
	}
	code, out, _ = runCLI(t, "ls", "--store", store)
	if code != 0 || strings.TrimSpace(out) != id {
		t.Fatalf("ls: exit %d, out %q", code, out)
	}
}

func TestPut_RequiresOneStore(t *testing.T) {
	if code, _, _ := runCLI(t, "put", "--postal", testPostal, "--address", testAddress); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if code, _, _ := runCLI(t, "put", "--store", t.TempDir(), "--grpc", "x:1", "--postal", testPostal, "--address", testAddress); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
