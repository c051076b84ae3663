// Package random provides the sampling helpers behind slantgrid layouts: a
// uniform closed-range integer sampler and a skewed, approximately normal
// sampler over a bounded range.
//
// All helpers draw from a seeded [Source], so a drawing is reproducible from
// its seed.
package random

import (
	"math"
	"math/rand/v2"
)

// MaxResamples bounds the rejection loop in [Source.Normal]. Out-of-range
// draws are rare, so the cap is only reached by a broken generator.
const MaxResamples = 1000

// Source wraps a PCG generator. It is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// NewWithSource returns a Source drawing from src.
func NewWithSource(src rand.Source) *Source {
	return &Source{rng: rand.New(src)}
}

// Float64 returns a uniform sample in [0, 1).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// IntBetween returns a uniform integer in the closed range [lo, hi].
// It requires lo <= hi.
func (s *Source) IntBetween(lo, hi int) int {
	return int(math.Floor(s.rng.Float64()*float64(hi-lo+1) + float64(lo)))
}

// Normal returns a value in [lo, hi] drawn from an approximately normal
// distribution centered on 0.5 of the unit range, raised to skew and then
// stretched onto [lo, hi]. A skew above 1 pushes samples toward lo.
func (s *Source) Normal(lo, hi, skew float64) float64 {
	return math.Pow(s.unitNormal(), skew)*(hi-lo) + lo
}

// IntBetweenNormal returns floor(Normal(0, 1, skew) * (hi-lo+1) + lo).
func (s *Source) IntBetweenNormal(lo, hi int, skew float64) int {
	return int(math.Floor(s.Normal(0, 1, skew)*float64(hi-lo+1) + float64(lo)))
}

// unitNormal compresses a standard normal sample into [0, 1] and rejects
// anything outside. After MaxResamples rejections the last draw is clamped.
func (s *Source) unitNormal() float64 {
	var num float64
	for range MaxResamples {
		num = s.boxMuller()/10 + 0.5
		if num >= 0 && num <= 1 {
			return num
		}
	}
	return min(max(num, 0), 1)
}

func (s *Source) boxMuller() float64 {
	u, v := s.nonZero(), s.nonZero()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// nonZero maps [0, 1) to (0, 1) so the logarithm stays finite.
func (s *Source) nonZero() float64 {
	for {
		if u := s.rng.Float64(); u != 0 {
			return u
		}
	}
}
