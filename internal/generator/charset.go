package generator

import (
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinStringLength = 1
	MaxStringLength = 100
)

// CharsetSpec selects the character classes that make up a pool.
type CharsetSpec struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Special   bool
}

// alphabets is the set of per-class alphabets a pool is assembled from.
type alphabets struct {
	upper, lower, digits, special string
}

var (
	standardAlphabets = alphabets{uppercaseChars, lowercaseChars, digitChars, specialChars}
	passwordAlphabets = alphabets{
		upper:   "ABCDEFGHJKLMNPQRSTUVWXYZ",
		lower:   "abcdefghijkmnopqrstuvwxyz",
		digits:  "23456789",
		special: "!@#$%^&*_+-=",
	}
)

// classes returns the enabled class alphabets in a fixed order.
func (a alphabets) classes(spec CharsetSpec) []string {
	var sets []string
	if spec.Uppercase {
		sets = append(sets, a.upper)
	}
	if spec.Lowercase {
		sets = append(sets, a.lower)
	}
	if spec.Digits {
		sets = append(sets, a.digits)
	}
	if spec.Special {
		sets = append(sets, a.special)
	}
	return sets
}

// String returns length independent draws from the pool selected by spec.
func (g *Generator) String(length int, spec CharsetSpec) (string, error) {
	if length < MinStringLength || length > MaxStringLength {
		return "", fmt.Errorf("%w: length must be between %d and %d", ErrInvalidLength, MinStringLength, MaxStringLength)
	}
	pool := strings.Join(standardAlphabets.classes(spec), "")
	if pool == "" {
		return "", ErrEmptyCharset
	}
	return g.draw(pool, length), nil
}
