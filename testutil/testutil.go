package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// ExampleReadings is the 12-reading, 5-bit reference diagnostic report.
//
// Expected values: gamma 22, epsilon 9 (product 198); oxygen generator 23, CO2 scrubber 10
// (product 230).
var ExampleReadings = []string{
	"00100", "11110", "10110", "10111", "10101", "01111",
	"00111", "11100", "10000", "11001", "00010", "01010",
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Readings returns num random readings of the given width. Duplicates are possible.
func (r *RNG) Readings(num, width int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	var sb strings.Builder
	for i := range out {
		sb.Reset()
		for c := 0; c < width; c++ {
			sb.WriteByte('0' + byte(r.rand.Intn(2)))
		}
		out[i] = sb.String()
	}
	return out
}

// BiasedReadings returns num readings where each bit is 1 with probability p.
func (r *RNG) BiasedReadings(num, width int, p float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	var sb strings.Builder
	for i := range out {
		sb.Reset()
		for c := 0; c < width; c++ {
			if r.rand.Float64() < p {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		out[i] = sb.String()
	}
	return out
}

// DistinctReadings returns num unique readings of the given width in random order.
// It panics if num exceeds 2^width or width exceeds 30.
func (r *RNG) DistinctReadings(num, width int) []string {
	if width > 30 {
		panic(fmt.Sprintf("testutil: width %d too large for distinct readings", width))
	}
	if num > 1<<width {
		panic(fmt.Sprintf("testutil: cannot draw %d distinct %d-bit readings", num, width))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]struct{}, num)
	out := make([]string, 0, num)
	for len(out) < num {
		v := r.rand.Intn(1 << width)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, fmt.Sprintf("%0*b", width, v))
	}
	return out
}
