// Package compliance selects how strictly label input is accepted.
package compliance

import "fmt"

// Mode selects how aggressively label readers reject non-canonical input.
//
// Strict mode accepts only the exact canonical bytes. Permissive mode
// repairs transport damage (BOM, CRLF, trailing newlines) before parsing;
// the content itself must still verify.
type Mode int

const (
	Permissive Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "strict" or "permissive".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("compliance: unknown mode %q", s)
}
