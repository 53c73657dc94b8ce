package generator

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"sync"
)

// Source is a uniform random source. *math/rand/v2.Rand satisfies it.
type Source interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
	Float64() float64
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// Uint64 returns 64 random bits.
func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read crashes the program on failure rather than returning an error.
	rand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Uint64N returns a uniform value in [0, n). It panics if n == 0.
func (s CryptoSource) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("generator: invalid argument to Uint64N")
	}
	if n&(n-1) == 0 {
		return s.Uint64() & (n - 1)
	}
	// Reject the tail that would bias the modulo.
	limit := -n % n
	for {
		v := s.Uint64()
		if v >= limit {
			return v % n
		}
	}
}

// Float64 returns a uniform value in [0, 1).
func (s CryptoSource) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// lockedSource serializes access to a *math/rand/v2.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// NewSeededSource returns a deterministic PCG-backed source. The same seed yields the same
// sequence, which makes generator output reproducible.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Uint64()
}

func (s *lockedSource) Uint64N(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Uint64N(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// sourceReader adapts a Source to io.Reader.
type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], r.src.Uint64())
		copy(p[i:], b[:])
	}
	return len(p), nil
}
