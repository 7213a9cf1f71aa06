// Package barcode encodes a Japanese postal code and address into the token
// sequence of the Japan Post Customer Barcode (カスタマバーコード).
//
// The pipeline is a fixed series of pure steps:
//
//	Normalize    fold width and case, drop punctuation, convert kanji numerals
//	Canonicalize collapse to digits, single letters and '-' separators
//	Encode       expand to tokens and fit the address to 13 tokens
//	CheckDigit   mod-19 check token over the 20 payload tokens
//
// New runs every step once and returns an immutable *Barcode whose 23-token
// sequence always starts with STC and ends with SPC.
package barcode
