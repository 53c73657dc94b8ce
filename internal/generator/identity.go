package generator

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

const (
	DefaultNameLength = 8
	RandomDomain      = "random"

	emailLocalChars = lowercaseChars + digitChars
)

var emailDomains = []string{"gmail.com", "outlook.com", "qq.com", "163.com", "126.com", "yahoo.com", "hotmail.com", "foxmail.com"}

// UsernameSpec selects the character classes of a username.
type UsernameSpec struct {
	Letters    bool
	Digits     bool
	Underscore bool
}

func nameLength(length int) (int, error) {
	if length <= 0 {
		return DefaultNameLength, nil
	}
	if length > MaxStringLength {
		return 0, fmt.Errorf("%w: length must be at most %d", ErrInvalidLength, MaxStringLength)
	}
	return length, nil
}

// Username draws each position from the selected classes. A non-positive length means
// DefaultNameLength.
func (g *Generator) Username(length int, spec UsernameSpec) (string, error) {
	if !spec.Letters && !spec.Digits && !spec.Underscore {
		return "", ErrEmptyCharset
	}
	n, err := nameLength(length)
	if err != nil {
		return "", err
	}

	var pool string
	if spec.Letters {
		pool += lowercaseChars + uppercaseChars
	}
	if spec.Digits {
		pool += digitChars
	}
	if spec.Underscore {
		pool += "_"
	}
	return g.draw(pool, n), nil
}

// Email returns local@domain with a [a-z0-9] local part. An empty domain or RandomDomain picks
// one of the built-in webmail domains.
func (g *Generator) Email(length int, domain string) (string, error) {
	n, err := nameLength(length)
	if err != nil {
		return "", err
	}

	domain = strings.TrimSpace(domain)
	switch {
	case domain == "" || domain == RandomDomain:
		domain = g.pickString(emailDomains)
	case !govalidator.IsDNSName(domain):
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	return g.draw(emailLocalChars, n) + "@" + domain, nil
}
