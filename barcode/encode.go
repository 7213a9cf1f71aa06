package barcode

// PostalTokens returns one digit token per postal code digit.
// postal must already be reduced by ParsePostalCode.
func PostalTokens(postal string) []Token {
	out := make([]Token, 0, len(postal))
	for _, c := range postal {
		out = append(out, Token(string(c)))
	}
	return out
}

// AddressTokens expands a canonical address into tokens. Letters become a
// group marker plus an offset digit: A-J as CC1, K-T as CC2, U-Z as CC3.
// Runes outside the canonical alphabet are skipped.
func AddressTokens(canonical string) []Token {
	out := make([]Token, 0, len(canonical)+4)
	for _, c := range canonical {
		switch {
		case isDigit(c):
			out = append(out, Digit(int(c-'0')))
		case c == '-':
			out = append(out, Hyphen)
		case c >= 'A' && c <= 'J':
			out = append(out, CC1, Digit(int(c-'A')))
		case c >= 'K' && c <= 'T':
			out = append(out, CC2, Digit(int(c-'K')))
		case c >= 'U' && c <= 'Z':
			out = append(out, CC3, Digit(int(c-'U')))
		}
	}
	return out
}

// FitAddress pads tokens with CC4 up to AddressLength, or keeps only the
// first AddressLength tokens. The result never aliases tokens.
func FitAddress(tokens []Token) []Token {
	out := make([]Token, AddressLength)
	n := copy(out, tokens)
	for i := n; i < AddressLength; i++ {
		out[i] = CC4
	}
	return out
}

// Payload returns the 20 tokens covered by the check digit.
func Payload(postal, canonical string) []Token {
	out := make([]Token, 0, PayloadLength)
	out = append(out, PostalTokens(postal)...)
	return append(out, FitAddress(AddressTokens(canonical))...)
}
