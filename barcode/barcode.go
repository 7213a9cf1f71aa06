package barcode

import (
	"encoding/base64"
	"strings"

	"xdao.co/cbc/glyph"
)

// Barcode is an encoded postal code and address.
//
// Every derived field is computed by New; a Barcode is immutable and safe
// for concurrent use. Accessors return copies.
type Barcode struct {
	postalCode string
	address    string
	canonical  string
	tokens     []Token
}

// New encodes postalCode and address. The only failure is a postal code
// that does not reduce to seven digits; any address is accepted, and one
// that normalizes to nothing is padded with CC4.
func New(postalCode, address string) (*Barcode, error) {
	postal, err := ParsePostalCode(postalCode)
	if err != nil {
		return nil, err
	}
	canonical := CanonicalAddress(address)
	return &Barcode{
		postalCode: postal,
		address:    address,
		canonical:  canonical,
		tokens:     Assemble(Payload(postal, canonical)),
	}, nil
}

// Assemble frames payload with STC, the check digit and SPC.
func Assemble(payload []Token) []Token {
	out := make([]Token, 0, len(payload)+3)
	out = append(out, Start)
	out = append(out, payload...)
	return append(out, CheckDigit(payload), Stop)
}

// PostalCode returns the seven postal code digits.
func (b *Barcode) PostalCode() string { return b.postalCode }

// Address returns the address exactly as given to New.
func (b *Barcode) Address() string { return b.address }

// CanonicalAddress returns the address reduced to {0-9, A-Z, '-'}.
func (b *Barcode) CanonicalAddress() string { return b.canonical }

// Tokens returns the complete 23-token sequence.
func (b *Barcode) Tokens() []Token {
	return append([]Token(nil), b.tokens...)
}

// Payload returns the 20 tokens between STC and the check digit.
func (b *Barcode) Payload() []Token {
	return append([]Token(nil), b.tokens[1:1+PayloadLength]...)
}

// CheckDigit returns the check digit token.
func (b *Barcode) CheckDigit() Token {
	return b.tokens[len(b.tokens)-2]
}

// Glyphs returns the glyph payload for every token, in sequence order.
func (b *Barcode) Glyphs() []glyph.Payload {
	out := make([]glyph.Payload, len(b.tokens))
	for i, t := range b.tokens {
		out[i] = glyph.MustLookup(string(t))
	}
	return out
}

// Base64Glyphs is Glyphs with each payload in standard base64.
func (b *Barcode) Base64Glyphs() []string {
	out := make([]string, len(b.tokens))
	for i, g := range b.Glyphs() {
		out[i] = base64.StdEncoding.EncodeToString(g)
	}
	return out
}

// String joins the tokens with single spaces.
func (b *Barcode) String() string {
	return JoinTokens(b.tokens)
}

// JoinTokens joins tokens with single spaces.
func JoinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

// SplitTokens is the inverse of JoinTokens. It does not validate tokens.
func SplitTokens(s string) []Token {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, " ")
	out := make([]Token, len(parts))
	for i, p := range parts {
		out[i] = Token(p)
	}
	return out
}
