// SPDX-License-Identifier: MIT

package lin

// Randoms is a deterministic xorshift64 stream of doubles in (0, 1].
// The same seed gives the same sequence on every platform.
//
// Concurrency: a *Randoms is NOT goroutine-safe; give each goroutine its own.
type Randoms struct {
	state uint64
}

const (
	randomsMix   = 4101842887655102017 // xored into the seed
	randomsMul   = 2685821657736338717 // output multiplier
	randomsScale = 5.42101086242752217e-20
)

// NewRandoms seeds a stream. Seed 0 is valid and is the package default.
// xorshift is stuck at a zero state, so the one seed that mixes to zero
// (randomsMix itself) is remapped and yields the seed-0 stream.
func NewRandoms(seed uint64) *Randoms {
	r := &Randoms{state: seed ^ randomsMix}
	if r.state == 0 {
		r.state = randomsMix
	}
	r.Uint64() // discard the first draw

	return r
}

// Uint64 advances the stream and returns the scrambled 64-bit state.
func (r *Randoms) Uint64() uint64 {
	r.state ^= r.state >> 21
	r.state ^= r.state << 35
	r.state ^= r.state >> 4

	return r.state * randomsMul
}

// Float64 returns the next value in (0, 1].
func (r *Randoms) Float64() float64 {
	return randomsScale * float64(r.Uint64())
}

// Source is anything yielding float64 draws; *Randoms and *math/rand.Rand both qualify.
type Source interface {
	Float64() float64
}

// Rand returns an instance of t filled in row-major order from src.
// A nil src uses a fresh NewRandoms(0) stream.
func (t *Type) Rand(src Source) *Tensor {
	if src == nil {
		src = NewRandoms(0)
	}
	out := newTensor(t)
	data := out.data()
	for k := range data {
		data[k] = src.Float64()
	}

	return out
}
