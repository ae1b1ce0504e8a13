// Package rng provides the seeded pseudo-random stream used to shuffle map
// candidates. The algorithm is fixed: persisted seeds must keep producing the
// same map lists, so cyrb128 and mulberry32 are reproduced bit for bit.
package rng

import "unicode/utf16"

// Random is a mulberry32 stream seeded from a string.
type Random struct {
	state uint32
}

// New derives the generator state from seed.
func New(seed string) *Random {
	return &Random{state: cyrb128(seed)[0]}
}

// Float64 returns the next value in [0, 1).
func (r *Random) Float64() float64 {
	r.state += 0x6d2b79f5
	a := r.state
	t := (a ^ a>>15) * (1 | a)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / 4294967296
}

// Intn returns a value in [0, n).
func (r *Random) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Shuffle returns a shuffled copy of items (Fisher–Yates, last index first).
func Shuffle[T any](r *Random, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// cyrb128 hashes the UTF-16 code units of s into four 32-bit words.
func cyrb128(s string) [4]uint32 {
	h1, h2, h3, h4 := uint32(1779033703), uint32(3144134277), uint32(1013904242), uint32(2773480762)
	for _, u := range utf16.Encode([]rune(s)) {
		k := uint32(u)
		h1 = h2 ^ (h1^k)*597399067
		h2 = h3 ^ (h2^k)*2869860233
		h3 = h4 ^ (h3^k)*951274213
		h4 = h1 ^ (h4^k)*2716044179
	}
	h1 = (h3 ^ h1>>18) * 597399067
	h2 = (h4 ^ h2>>22) * 2869860233
	h3 = (h1 ^ h3>>17) * 951274213
	h4 = (h2 ^ h4>>19) * 2716044179
	return [4]uint32{h1 ^ h2 ^ h3 ^ h4, h2 ^ h1, h3 ^ h1, h4 ^ h1}
}
