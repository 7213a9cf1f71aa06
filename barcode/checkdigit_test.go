package barcode

import (
	"math/rand"
	"testing"
)

func repeat(t Token, n int) []Token {
	out := make([]Token, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func TestCheckDigit_Branches(t *testing.T) {
	cases := []struct {
		name    string
		payload []Token
		want    Token
	}{
		// 19 ones: remainder 0.
		{"remainder zero", append(repeat("1", 19), "0"), "0"},
		// sum 9: sub 10.
		{"hyphen", append([]Token{"9"}, repeat("0", 19)...), Hyphen},
		// sum 1: sub 18.
		{"cc8", append([]Token{"1"}, repeat("0", 19)...), CC8},
		// sum 4: sub 15.
		{"cc5", append([]Token{"4"}, repeat("0", 19)...), CC5},
		// sum 14: sub 5.
		{"digit", append([]Token{CC4}, repeat("0", 19)...), "5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckDigit(tc.payload); got != tc.want {
				t.Fatalf("CheckDigit = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckDigit_Manual263(t *testing.T) {
	payload := SplitTokens("2 6 3 0 0 2 3 3 - 3 0 - 8 - 4 0 3 CC4 CC4 CC4")
	if got := CheckDigit(payload); got != "5" {
		t.Fatalf("CheckDigit = %q, want 5", got)
	}
}

func TestCheckDigit_SumDivisibleBy19(t *testing.T) {
	weighted := Vocabulary[:19] // everything but STC and SPC
	rng := rand.New(rand.NewSource(19))
	for i := 0; i < 2000; i++ {
		payload := make([]Token, PayloadLength)
		sum := 0
		for j := range payload {
			payload[j] = weighted[rng.Intn(len(weighted))]
			w, _ := payload[j].Weight()
			sum += w
		}
		cd := CheckDigit(payload)
		w, ok := cd.Weight()
		if !ok {
			t.Fatalf("check digit %q has no weight", cd)
		}
		if (sum+w)%19 != 0 {
			t.Fatalf("payload %v: (sum %d + check %d) mod 19 != 0", payload, sum, w)
		}
	}
}
