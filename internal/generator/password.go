package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 32
)

// Password builds a password from the unambiguous alphabets selected by spec. The result holds
// at least one character from every selected class, in shuffled positions.
func (g *Generator) Password(length int, spec CharsetSpec) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: password length must be between %d and %d", ErrInvalidLength, MinPasswordLength, MaxPasswordLength)
	}

	required := passwordAlphabets.classes(spec)
	if len(required) == 0 {
		return "", ErrEmptyCharset
	}
	pool := strings.Join(required, "")

	result := make([]byte, length)

	// One character from each selected class.
	for i, charset := range required {
		result[i] = g.pickByte(charset)
	}

	// Fill the remaining positions from the full pool.
	for i := len(required); i < length; i++ {
		result[i] = g.pickByte(pool)
	}

	g.shuffle(result)

	return string(result), nil
}

// StrengthLabel grades a password.
type StrengthLabel string

const (
	StrengthWeak   StrengthLabel = "weak"
	StrengthMedium StrengthLabel = "medium"
	StrengthStrong StrengthLabel = "strong"
)

// Display returns the label as shown in the tool's UI.
func (l StrengthLabel) Display() string {
	switch l {
	case StrengthStrong:
		return "强"
	case StrengthMedium:
		return "中等"
	default:
		return "弱"
	}
}

// Strength is a 0-100 score with its grade.
type Strength struct {
	Score int
	Label StrengthLabel
}

// PasswordStrength scores a password: five points per character up to 100, plus bonuses for
// uppercase (10), lowercase (10), digits (10) and anything non-alphanumeric (15), capped at 100.
func PasswordStrength(password string) Strength {
	if password == "" {
		return Strength{Score: 0, Label: StrengthWeak}
	}

	score := min(100, utf8.RuneCountInString(password)*5)

	var hasUpper, hasLower, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	if hasUpper {
		score += 10
	}
	if hasLower {
		score += 10
	}
	if hasDigit {
		score += 10
	}
	if hasOther {
		score += 15
	}
	score = min(100, score)

	label := StrengthStrong
	switch {
	case score < 50:
		label = StrengthWeak
	case score < 80:
		label = StrengthMedium
	}
	return Strength{Score: score, Label: label}
}
