package glyph_test

import (
	"bytes"
	"image/gif"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/glyph"
)

func TestTokens_MatchVocabulary(t *testing.T) {
	want := make([]string, len(barcode.Vocabulary))
	for i, tok := range barcode.Vocabulary {
		want[i] = string(tok)
	}
	sort.Strings(want)
	if diff := cmp.Diff(want, glyph.Tokens()); diff != "" {
		t.Fatalf("glyph table keys differ from vocabulary (-want +got):\n%s", diff)
	}
}

func TestLookup_DecodesAsGIF(t *testing.T) {
	for _, tok := range glyph.Tokens() {
		p, ok := glyph.Lookup(tok)
		if !ok {
			t.Fatalf("Lookup(%q) missed", tok)
		}
		cfg, err := gif.DecodeConfig(bytes.NewReader(p))
		if err != nil {
			t.Fatalf("%q: not a GIF: %v", tok, err)
		}
		if cfg.Width != 12 || cfg.Height != 12 {
			t.Fatalf("%q: got %dx%d, want 12x12", tok, cfg.Width, cfg.Height)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	a, _ := glyph.Lookup("STC")
	a[0] ^= 0xFF
	b, _ := glyph.Lookup("STC")
	if bytes.Equal(a, b) {
		t.Fatalf("Lookup exposes the shared table")
	}
}

func TestLookup_Miss(t *testing.T) {
	if _, ok := glyph.Lookup("CC9"); ok {
		t.Fatalf("Lookup(CC9) should miss")
	}
	if _, ok := glyph.Base64(""); ok {
		t.Fatalf("Base64(\"\") should miss")
	}
}

func TestMustLookup_PanicsOnMiss(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	glyph.MustLookup("CC9")
}
