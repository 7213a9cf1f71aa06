// Package glyph maps Customer Barcode tokens to pre-rendered glyph images.
//
// The table is fixed: every token the encoder can emit (0-9, '-',
// CC1-CC8, STC, SPC) has exactly one 12x12 GIF. A lookup miss is a
// programming error, which is why MustLookup panics instead of returning
// an error.
package glyph

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"sort"
)

// Payload is the encoded image for one token. Treat it as opaque bytes.
type Payload []byte

// MediaType is the MIME type of every Payload.
const MediaType = "image/gif"

var payloads = decodeTable()

func decodeTable() map[string]Payload {
	out := make(map[string]Payload, len(table))
	for tok, s := range table {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			panic(fmt.Sprintf("glyph: corrupt table entry %q: %v", tok, err))
		}
		out[tok] = b
	}
	return out
}

// Lookup returns a copy of the payload for token.
func Lookup(token string) (Payload, bool) {
	p, ok := payloads[token]
	if !ok {
		return nil, false
	}
	return bytes.Clone(p), true
}

// MustLookup is like Lookup but panics when token has no glyph.
func MustLookup(token string) Payload {
	p, ok := Lookup(token)
	if !ok {
		panic(fmt.Sprintf("glyph: no glyph for token %q", token))
	}
	return p
}

// Base64 returns the standard base64 form of the payload for token.
func Base64(token string) (string, bool) {
	s, ok := table[token]
	return s, ok
}

// Tokens returns every token with a glyph, sorted.
func Tokens() []string {
	out := make([]string, 0, len(table))
	for tok := range table {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
