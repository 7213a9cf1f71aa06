package barcode

import "strings"

// ParsePostalCode strips every rune that is not an ASCII digit and requires
// exactly seven digits to remain ("263-0023" and "〒263-0023" both give
// "2630023"). Fullwidth digits are not digits here.
func ParsePostalCode(s string) (string, error) {
	var sb strings.Builder
	for _, r := range s {
		if isDigit(r) {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()
	if len(digits) != PostalLength {
		return "", WrapError(KindPostalCode, "CBC-POSTAL-001",
			"postal code "+quote(s)+" must contain exactly 7 digits", ErrPostalCodeFormat)
	}
	return digits, nil
}

func quote(s string) string {
	return "\"" + s + "\""
}
