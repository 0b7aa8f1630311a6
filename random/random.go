// Package random is the only source of randomness in fakegen.
//
// Every draw goes through an explicit *Source so a run can be replayed
// from its seed. All helpers derive from a single uniform draw in [0,1).
package random

import (
	"math"
	"math/rand"
	"time"

	"github.com/teranos/fakegen/errors"
)

// Entropy abstracts the underlying uniform generator
type Entropy interface {
	Float64() float64
}

// Source draws the values fakegen needs from an Entropy
type Source struct {
	entropy Entropy
	seed    int64
}

// New creates a deterministic source
func New(seed int64) *Source {
	return &Source{entropy: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewUnseeded creates a source seeded from the clock.
// Seed still reports the seed used, so a run can be reproduced.
func NewUnseeded() *Source {
	return New(time.Now().UnixNano())
}

// FromEntropy wraps an arbitrary generator
func FromEntropy(e Entropy) *Source {
	return &Source{entropy: e}
}

// Seed returns the seed the source was created with, 0 for FromEntropy
func (s *Source) Seed() int64 {
	return s.seed
}

// Float returns a uniform draw in [0,1)
func (s *Source) Float() float64 {
	return s.entropy.Float64()
}

// Int returns a uniform integer in [min, max], both inclusive
func (s *Source) Int(min, max int) int {
	return int(math.Floor(s.Float()*float64(max-min+1))) + min
}

// FloatRange returns a uniform real in [min, max)
func (s *Source) FloatRange(min, max float64) float64 {
	return s.Float()*(max-min) + min
}

// Bool flips a fair coin
func (s *Source) Bool() bool {
	return s.Float() >= 0.5
}

// MaxStringLen caps the drawn maximum length when String is called with max 0
const MaxStringLen = 15

// String returns a lowercase a-z string whose length is drawn from [min, max].
// A max of 0 draws the maximum itself from [min, MaxStringLen] first;
// a min above MaxStringLen is then its own maximum.
func (s *Source) String(min, max int) string {
	if max == 0 {
		if min >= MaxStringLen {
			max = min
		} else {
			max = s.Int(min, MaxStringLen)
		}
	}
	n := s.Int(min, max)
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(s.Int('a', 'z'))
	}
	return string(b)
}

// Pick returns a uniform index into a list of n items
func (s *Source) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.AssertionFailedf("pick from empty list")
	}
	return s.Int(0, n-1), nil
}

// Shuffle permutes n items in place with a Fisher-Yates pass
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(math.Floor(s.Float() * float64(i+1)))
		swap(i, j)
	}
}
