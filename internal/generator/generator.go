// Package generator builds random values: integers, strings, passwords, UUIDs, phone numbers,
// usernames, emails, IP addresses, dates and times.
//
// Every generator is a function of its arguments and the Generator's Source. Nothing is
// retained between calls.
package generator

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRange  = errors.New("min must be less than max")
	ErrInvalidLength = errors.New("length out of range")
	ErrEmptyCharset  = errors.New("at least one character type must be selected")
	ErrInvalidDomain = errors.New("invalid email domain")
)

// Generator produces random values from a Source.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src. A nil src uses CryptoSource.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// intn returns a uniform int in [0, n).
func (g *Generator) intn(n int) int {
	return int(g.src.Uint64N(uint64(n)))
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.intn(hi-lo+1)
}

func (g *Generator) pickByte(charset string) byte {
	return charset[g.intn(len(charset))]
}

func (g *Generator) pickString(list []string) string {
	return list[g.intn(len(list))]
}

// draw returns n independent uniform picks from charset.
func (g *Generator) draw(charset string, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(g.pickByte(charset))
	}
	return sb.String()
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
