package barcode

import "testing"

func TestToken_Weight(t *testing.T) {
	want := map[Token]int{
		"0": 0, "5": 5, "9": 9,
		Hyphen: 10,
		CC1:    11, CC4: 14, CC8: 18,
	}
	for tok, w := range want {
		got, ok := tok.Weight()
		if !ok || got != w {
			t.Fatalf("%q.Weight() = %d, %v; want %d, true", tok, got, ok, w)
		}
	}
	for _, tok := range []Token{Start, Stop, "CC9", "CC0", "10", "", "A"} {
		if _, ok := tok.Weight(); ok {
			t.Fatalf("%q.Weight() reported ok", tok)
		}
	}
}

func TestTokenForWeight_InvertsWeight(t *testing.T) {
	for w := 0; w <= 18; w++ {
		tok := tokenForWeight(w)
		if !tok.Valid() {
			t.Fatalf("tokenForWeight(%d) = %q not in vocabulary", w, tok)
		}
		got, ok := tok.Weight()
		if !ok || got != w {
			t.Fatalf("tokenForWeight(%d) = %q with weight %d", w, tok, got)
		}
	}
}

func TestVocabulary(t *testing.T) {
	if len(Vocabulary) != 21 {
		t.Fatalf("Vocabulary has %d tokens, want 21", len(Vocabulary))
	}
	seen := map[Token]bool{}
	for _, tok := range Vocabulary {
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
	if Token("CC9").Valid() {
		t.Fatalf("CC9 must not be valid")
	}
}
