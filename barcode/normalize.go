package barcode

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// pass is one named string-to-string step of the normalizer or canonicalizer.
// Passes are pure and run in list order; each one sees the previous output.
type pass struct {
	id    string
	apply func([]rune) []rune
}

func runPasses(s string, passes []pass) string {
	r := []rune(s)
	for _, p := range passes {
		r = p.apply(r)
	}
	return string(r)
}

// fullwidthAlnum covers Ａ-Ｚ, ａ-ｚ and ０-９ (U+FF10.., U+FF21.., U+FF41..).
var fullwidthAlnum = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xFF10, Hi: 0xFF19, Stride: 1},
		{Lo: 0xFF21, Hi: 0xFF3A, Stride: 1},
		{Lo: 0xFF41, Hi: 0xFF5A, Stride: 1},
	},
}

const fullwidthOffset = 0xFEE0

// foldAndUpper returns a fresh transformer; transformers carry state and
// must not be shared between goroutines.
func foldAndUpper() transform.Transformer {
	fold := runes.If(runes.In(fullwidthAlnum), runes.Map(func(r rune) rune {
		return r - fullwidthOffset
	}), nil)
	return transform.Chain(fold, cases.Upper(language.Und))
}

// Normalize folds an address into the intermediate form consumed by
// Canonicalize: half-width upper-case alphanumerics, no '&', '/', '・' or '.',
// kanji unit numbers rewritten in arabic digits and stray unit letters
// ("10F") dropped.
func Normalize(address string) string {
	folded, _, err := transform.String(foldAndUpper(), address)
	if err != nil {
		// Invalid UTF-8 is passed through by the transformers; an error here
		// means a transformer bug, so fall back to the unfolded input.
		folded = strings.ToUpper(address)
	}
	return runPasses(folded, normalizePasses)
}

var normalizePasses = []pass{
	{id: "drop-punctuation", apply: dropPunctuation},
	{id: "kanji-numerals", apply: convertKanjiNumerals},
	{id: "drop-unit-letter", apply: dropUnitLetter},
	{id: "trim-space", apply: trimSpace},
}

func dropPunctuation(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for _, c := range r {
		switch c {
		case '&', '/', '・', '.':
			continue
		}
		out = append(out, c)
	}
	return out
}

// dropUnitLetter deletes a letter that directly follows a digit and is
// followed by a non-alphanumeric rune or the end of input ("3F", "10F　").
// Neighbours are judged on the input, so deletions never cascade.
func dropUnitLetter(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if isUpper(c) && i > 0 && isDigit(r[i-1]) && (i+1 == len(r) || !isAlnum(r[i+1])) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func trimSpace(r []rune) []rune {
	return []rune(strings.TrimSpace(string(r)))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isAlnum(r rune) bool { return isDigit(r) || isUpper(r) }
