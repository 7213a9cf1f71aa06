package barcode

import "strconv"

// kanjiValues maps kanji numerals to their value. Values divisible by 10
// are multipliers; the rest are unit digits.
var kanjiValues = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
	'十': 10, '百': 100, '千': 1000,
}

// unitMarkers are the address units whose preceding kanji numeral is
// rewritten.
var unitMarkers = [][]rune{
	[]rune("丁目"), []rune("丁"), []rune("番地"), []rune("番"),
	[]rune("号"), []rune("地割"), []rune("線"), []rune("の"), []rune("ノ"),
}

// KanjiValue folds a run of kanji numerals left to right over
// (pending, total), both starting at 0:
//
//   - unit digit d: pending = d, total += d
//   - multiplier m after a unit: total = total - pending + pending*m, pending = 0
//   - multiplier m with no pending unit: total += m
//
// So 十一 is 11, 二十 is 20 and 三百 is 300. ok is false when s contains a
// rune that is not a kanji numeral.
func KanjiValue(s string) (value int, ok bool) {
	pending, total := 0, 0
	for _, r := range s {
		v, known := kanjiValues[r]
		if !known {
			return 0, false
		}
		if v%10 != 0 {
			pending = v
			total += v
			continue
		}
		if pending != 0 {
			total = total - pending + pending*v
			pending = 0
		} else {
			total += v
		}
	}
	return total, true
}

// convertKanjiNumerals rewrites every maximal run of kanji numerals that is
// immediately followed by a unit marker; the marker itself is kept.
func convertKanjiNumerals(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); {
		if _, ok := kanjiValues[r[i]]; !ok {
			out = append(out, r[i])
			i++
			continue
		}
		j := i
		for j < len(r) {
			if _, ok := kanjiValues[r[j]]; !ok {
				break
			}
			j++
		}
		if hasUnitMarker(r[j:]) {
			v, _ := KanjiValue(string(r[i:j]))
			out = append(out, []rune(strconv.Itoa(v))...)
		} else {
			out = append(out, r[i:j]...)
		}
		i = j
	}
	return out
}

func hasUnitMarker(r []rune) bool {
	for _, m := range unitMarkers {
		if hasRunePrefix(r, m) {
			return true
		}
	}
	return false
}

func hasRunePrefix(r, prefix []rune) bool {
	if len(r) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if r[i] != p {
			return false
		}
	}
	return true
}
