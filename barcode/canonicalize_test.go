package barcode

import "testing"

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"3丁目30-8　郵便ビル403号", "3-30-8-403"},
		{"-1--2-", "1-2"},
		{"ABC-1", "1"},
		{"A-1", "A1"},
		{"1-A-2", "1A2"},
		{"1A2", "1-2"},
		// Isolated-letter matches do not overlap.
		{"1A2B3", "1-2B3"},
		{"LプラザB106", "LB106"},
		{"郵便ABコーポB604号", "B604"},
		{"J1ビル2-B", "J1-2B"},
		{"ビル", ""},
	}
	for _, tc := range cases {
		if got := Canonicalize(tc.in); got != tc.want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"千葉市稲毛区緑町3丁目30-8　郵便ビル403号", "3-30-8-403"},
		{"千葉県鎌ケ谷市右京塚　東3丁目-20-5　郵便・A&bコーポB604号", "3-20-5B604"},
		{"東京都青梅市河辺町十一丁目六番地一号　郵便タワー601", "11-6-1-601"},
		{"京都府綾部市青野町綾部6-7　LプラザB106", "6-7LB106"},
		{"福井県福井市新田塚3丁目80-25　J1ビル2-B", "3-80-25J1-2B"},
		{"神戸市中央区港島中町9丁目7-6　郵便シティA棟1F1号", "9-7-6A1-1"},
		{"、。！", ""},
	}
	for _, tc := range cases {
		if got := CanonicalAddress(tc.in); got != tc.want {
			t.Fatalf("CanonicalAddress(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalAddress_Idempotent(t *testing.T) {
	// Fixed points: digits, separators and letters that are neither a
	// trailing unit letter nor flanked by digits.
	for _, s := range []string{"", "1-2", "3-30-8-403", "11-6-1-601", "21-480", "C12-3", "A1"} {
		if got := CanonicalAddress(s); got != s {
			t.Fatalf("CanonicalAddress(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestCanonicalPasses_Invariants(t *testing.T) {
	inputs := []string{
		"千葉市稲毛区緑町3丁目30-8　郵便ビル403号",
		"北海道札幌市東区北六条東4丁目　郵便センター6号館",
		"A-B-C",
		"---",
		"1A-B2",
		"Z",
	}
	for _, in := range inputs {
		got := CanonicalAddress(in)
		r := []rune(got)
		for i, c := range r {
			if !isAlnum(c) && c != '-' {
				t.Fatalf("%q: rune %q outside alphabet in %q", in, c, got)
			}
			if c == '-' && (i == 0 || i == len(r)-1) {
				t.Fatalf("%q: leading or trailing hyphen in %q", in, got)
			}
			if c == '-' && i > 0 && r[i-1] == '-' {
				t.Fatalf("%q: repeated hyphen in %q", in, got)
			}
			if isUpper(c) && ((i > 0 && r[i-1] == '-') || (i+1 < len(r) && r[i+1] == '-')) {
				t.Fatalf("%q: hyphen touching letter in %q", in, got)
			}
		}
	}
}
