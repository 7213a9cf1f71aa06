package barcode

import "strconv"

// Token is one symbol of the Customer Barcode alphabet.
type Token string

const (
	Hyphen Token = "-"
	CC1    Token = "CC1"
	CC2    Token = "CC2"
	CC3    Token = "CC3"
	CC4    Token = "CC4"
	CC5    Token = "CC5"
	CC6    Token = "CC6"
	CC7    Token = "CC7"
	CC8    Token = "CC8"
	Start  Token = "STC"
	Stop   Token = "SPC"
)

const (
	// PostalLength is the number of digits (and tokens) in a postal code.
	PostalLength = 7
	// AddressLength is the fixed number of address tokens.
	AddressLength = 13
	// PayloadLength is the number of tokens covered by the check digit.
	PayloadLength = PostalLength + AddressLength
	// SequenceLength is the length of a complete token sequence.
	SequenceLength = PayloadLength + 3
)

// Vocabulary lists every token value the encoder can emit, in glyph table order.
var Vocabulary = []Token{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	Hyphen,
	CC1, CC2, CC3, CC4, CC5, CC6, CC7, CC8,
	Start, Stop,
}

// Digit returns the token for a decimal digit 0-9.
func Digit(d int) Token {
	return Token(strconv.Itoa(d))
}

// IsDigit reports whether t is one of "0".."9".
func (t Token) IsDigit() bool {
	return len(t) == 1 && t[0] >= '0' && t[0] <= '9'
}

// Valid reports whether t belongs to Vocabulary.
func (t Token) Valid() bool {
	for _, v := range Vocabulary {
		if t == v {
			return true
		}
	}
	return false
}

// Weight returns the check-digit contribution of t: digits count as their
// value, '-' as 10 and CCn as 10+n. STC and SPC carry no weight and report false.
func (t Token) Weight() (int, bool) {
	switch {
	case t.IsDigit():
		return int(t[0] - '0'), true
	case t == Hyphen:
		return 10, true
	case len(t) == 3 && t[:2] == "CC" && t[2] >= '1' && t[2] <= '8':
		return 10 + int(t[2]-'0'), true
	}
	return 0, false
}

// tokenForWeight is the inverse of Weight over 0..18.
func tokenForWeight(w int) Token {
	switch {
	case w < 10:
		return Digit(w)
	case w == 10:
		return Hyphen
	default:
		return Token("CC" + strconv.Itoa(w-10))
	}
}
