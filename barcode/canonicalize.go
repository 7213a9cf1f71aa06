package barcode

// Canonicalize collapses a normalized address into the {0-9, A-Z, '-'}
// alphabet. Hyphens survive only as separators between digit groups:
// never leading or trailing, never touching a letter, and letter words of
// two or more runes are reduced to a separator.
func Canonicalize(normalized string) string {
	return runPasses(normalized, canonicalPasses)
}

// CanonicalAddress runs Normalize followed by Canonicalize.
func CanonicalAddress(address string) string {
	return Canonicalize(Normalize(address))
}

var canonicalPasses = []pass{
	{id: "separators", apply: replaceSeparators},
	{id: "isolated-letter", apply: replaceIsolatedLetters},
	{id: "letter-words", apply: replaceLetterWords},
	{id: "collapse-hyphens", apply: collapseHyphens},
	{id: "trailing-hyphen", apply: trimTrailingHyphen},
	{id: "attach-letters", apply: attachLetters},
	{id: "leading-hyphen", apply: trimLeadingHyphen},
}

func replaceSeparators(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		if isAlnum(c) {
			out[i] = c
		} else {
			out[i] = '-'
		}
	}
	return out
}

// replaceIsolatedLetters turns digit-letter-digit into digit-'-'-digit.
// Matches do not overlap: the trailing digit of one match cannot start the
// next, so "1A2B3" becomes "1-2B3".
func replaceIsolatedLetters(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); {
		if i+2 < len(r) && isDigit(r[i]) && isUpper(r[i+1]) && isDigit(r[i+2]) {
			out = append(out, r[i], '-', r[i+2])
			i += 3
			continue
		}
		out = append(out, r[i])
		i++
	}
	return out
}

func replaceLetterWords(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); {
		j := i
		for j < len(r) && isUpper(r[j]) {
			j++
		}
		if j-i >= 2 {
			out = append(out, '-')
			i = j
			continue
		}
		out = append(out, r[i])
		i++
	}
	return out
}

func collapseHyphens(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == '-' && i > 0 && r[i-1] == '-' {
			continue
		}
		out = append(out, c)
	}
	return out
}

func trimTrailingHyphen(r []rune) []rune {
	if len(r) > 0 && r[len(r)-1] == '-' {
		return r[:len(r)-1]
	}
	return r
}

// attachLetters drops a hyphen on either side of a single letter.
func attachLetters(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if c == '-' && ((i > 0 && isUpper(r[i-1])) || (i+1 < len(r) && isUpper(r[i+1]))) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func trimLeadingHyphen(r []rune) []rune {
	if len(r) > 0 && r[0] == '-' {
		return r[1:]
	}
	return r
}
