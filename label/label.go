// Package label renders and parses the canonical text form of an encoded
// Customer Barcode. A label is the unit that is content-addressed and stored:
//
//	-----BEGIN CBC LABEL-----
//	Address: 千葉市稲毛区緑町3丁目30-8　郵便ビル403号
//	Postal-Code: 2630023
//	Tokens: STC 2 6 3 0 0 2 3 3 - 3 0 - 8 - 4 0 3 CC4 CC4 CC4 5 SPC
//	-----END CBC LABEL-----
//
// Keys appear once each in lexicographic order, lines end in LF, and there is
// no BOM, no trailing whitespace and no trailing newline.
package label

import (
	"strings"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
)

const (
	Preamble  = "-----BEGIN CBC LABEL-----"
	Postamble = "-----END CBC LABEL-----"
)

const (
	KeyAddress    = "Address"
	KeyPostalCode = "Postal-Code"
	KeyTokens     = "Tokens"
)

// KeyOrder is the canonical key order.
var KeyOrder = []string{KeyAddress, KeyPostalCode, KeyTokens}

// Label is a parsed, verified label.
type Label struct {
	Barcode *barcode.Barcode
	Raw     []byte // Canonical bytes
}

// Render produces canonical label bytes for b.
func Render(b *barcode.Barcode) ([]byte, error) {
	if b == nil {
		return nil, barcode.NewError(barcode.KindLabel, "CBC-LABEL-030", "nil barcode")
	}
	addr := b.Address()
	switch {
	case addr == "":
		return nil, barcode.NewError(barcode.KindLabel, "CBC-LABEL-030", "address must not be empty")
	case strings.ContainsAny(addr, "\r\n"):
		return nil, barcode.NewError(barcode.KindLabel, "CBC-LABEL-030", "address must not contain newlines")
	case strings.TrimSpace(addr) != addr:
		return nil, barcode.NewError(barcode.KindLabel, "CBC-LABEL-030", "address must not start or end with whitespace")
	}

	values := map[string]string{
		KeyAddress:    addr,
		KeyPostalCode: b.PostalCode(),
		KeyTokens:     b.String(),
	}
	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\n")
	for _, k := range KeyOrder {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(values[k])
		sb.WriteString("\n")
	}
	sb.WriteString(Postamble)
	return []byte(sb.String()), nil
}

// CID returns the CIDv1 (raw + sha2-256) of the label's canonical bytes.
func (l *Label) CID() (string, error) {
	if l == nil || len(l.Raw) == 0 {
		return "", barcode.NewError(barcode.KindCID, "CBC-CID-001", "nil label")
	}
	return cidutil.CIDv1RawSHA256(l.Raw), nil
}

// CID parses data as a canonical label and returns its CID.
// Non-canonical input is rejected rather than normalized.
func CID(data []byte) (string, error) {
	l, err := Parse(data)
	if err != nil {
		return "", err
	}
	return l.CID()
}

// RenderWithCID renders b and returns the label bytes with their CID.
func RenderWithCID(b *barcode.Barcode) ([]byte, string, error) {
	raw, err := Render(b)
	if err != nil {
		return nil, "", err
	}
	return raw, cidutil.CIDv1RawSHA256(raw), nil
}
