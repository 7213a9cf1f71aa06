package label

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/compliance"
)

type parseRule struct {
	id    string
	apply func([]byte) error
}

func applyParseRules(input []byte, rules []parseRule) error {
	for _, r := range rules {
		if r.apply == nil {
			return barcode.NewError(barcode.KindInternal, "CBC-INTERNAL-010", "nil parse rule")
		}
		if err := r.apply(input); err != nil {
			return err
		}
	}
	return nil
}

func labelError(ruleID, msg string) error {
	return barcode.NewError(barcode.KindLabel, ruleID, msg)
}

var parseRules = []parseRule{
	{
		id: "CBC-LABEL-001",
		apply: func(b []byte) error {
			if !utf8.Valid(b) {
				return labelError("CBC-LABEL-001", "label must be valid UTF-8")
			}
			return nil
		},
	},
	{
		id: "CBC-LABEL-002",
		apply: func(b []byte) error {
			if bytes.Contains(b, []byte("\r")) {
				return labelError("CBC-LABEL-002", "CR line endings not allowed")
			}
			return nil
		},
	},
	{
		id: "CBC-LABEL-003",
		apply: func(b []byte) error {
			if bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) {
				return labelError("CBC-LABEL-003", "BOM not allowed")
			}
			return nil
		},
	},
	{
		id: "CBC-LABEL-004",
		apply: func(b []byte) error {
			if len(b) > 0 && b[len(b)-1] == '\n' {
				return labelError("CBC-LABEL-004", "trailing newline not allowed")
			}
			return nil
		},
	},
	{
		id: "CBC-LABEL-005",
		apply: func(b []byte) error {
			if !bytes.HasPrefix(b, []byte(Preamble+"\n")) {
				return labelError("CBC-LABEL-005", "label preamble must be the first line")
			}
			if !bytes.HasSuffix(b, []byte("\n"+Postamble)) {
				return labelError("CBC-LABEL-005", "label postamble must be the last line")
			}
			return nil
		},
	},
	{
		id: "CBC-LABEL-006",
		apply: func(b []byte) error {
			for _, line := range bytes.Split(b, []byte("\n")) {
				if len(line) > 0 && (line[len(line)-1] == ' ' || line[len(line)-1] == '\t') {
					return labelError("CBC-LABEL-006", "trailing whitespace forbidden")
				}
			}
			return nil
		},
	},
}

// Parse parses a label, enforcing canonical serialization, and re-encodes the
// postal code and address to verify the token line. Non-canonical input is
// rejected; see Normalize for a tolerant entry point.
func Parse(data []byte) (*Label, error) {
	if err := applyParseRules(data, parseRules); err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	body := lines[1 : len(lines)-1]
	if len(body) != len(KeyOrder) {
		return nil, labelError("CBC-LABEL-010", "label must contain exactly Address, Postal-Code and Tokens")
	}
	values := make(map[string]string, len(KeyOrder))
	for i, line := range body {
		k, v, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, labelError("CBC-LABEL-010", "malformed line: missing \": \" delimiter")
		}
		if k != KeyOrder[i] {
			return nil, labelError("CBC-LABEL-010", "unexpected key "+k+" (keys must be sorted)")
		}
		if v == "" || strings.HasPrefix(v, " ") {
			return nil, labelError("CBC-LABEL-010", "empty or space-prefixed value for "+k)
		}
		values[k] = v
	}

	b, err := barcode.New(values[KeyPostalCode], values[KeyAddress])
	if err != nil {
		return nil, barcode.WrapError(barcode.KindLabel, "CBC-LABEL-011", "invalid postal code", err)
	}
	if b.PostalCode() != values[KeyPostalCode] {
		return nil, labelError("CBC-LABEL-012", "postal code must be written as 7 digits")
	}
	if b.String() != values[KeyTokens] {
		return nil, labelError("CBC-LABEL-020", "tokens do not match the encoded postal code and address")
	}

	canonical, err := Render(b)
	if err != nil {
		return nil, barcode.WrapError(barcode.KindLabel, "CBC-LABEL-021", "label not renderable", err)
	}
	if !bytes.Equal(canonical, data) {
		return nil, labelError("CBC-LABEL-021", "label bytes are not canonical")
	}
	return &Label{Barcode: b, Raw: canonical}, nil
}

// Normalize tolerates a UTF-8 BOM, CRLF line endings and trailing newlines,
// then parses the result. Everything else must already be canonical.
func Normalize(input []byte) (*Label, error) {
	b := bytes.TrimPrefix(input, []byte{0xEF, 0xBB, 0xBF})
	if bytes.Contains(b, []byte("\r")) {
		b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
		if bytes.Contains(b, []byte("\r")) {
			return nil, labelError("CBC-LABEL-002", "CR line endings not allowed")
		}
	}
	b = bytes.TrimRight(b, "\n")
	return Parse(b)
}

// Read parses input under the given compliance mode: Strict is Parse,
// Permissive is Normalize.
func Read(input []byte, mode compliance.Mode) (*Label, error) {
	if mode == compliance.Strict {
		return Parse(input)
	}
	return Normalize(input)
}
