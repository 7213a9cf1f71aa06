package barcode

// CheckDigit returns the token that makes the weight sum of payload plus
// the check token divisible by 19. Tokens without a weight (STC, SPC)
// contribute nothing.
func CheckDigit(payload []Token) Token {
	sum := 0
	for _, t := range payload {
		w, _ := t.Weight()
		sum += w
	}
	remainder := sum % 19
	if remainder == 0 {
		return Digit(0)
	}
	return tokenForWeight(19 - remainder)
}
