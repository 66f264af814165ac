// Package bloom implements a Bloom filter keyed by PolymurHash.
//
// Rather than requiring k independent hash functions, two PolymurHash
// digests are widened into k probe indices using the Kirsch/Mitzenmacher
// double-hashing trick: two independent lanes are obtained from two calls to
// polymur.Hash over the same key with tweak 0 and tweak 1 respectively
// (distinct tweaks decorrelate the two outputs), and every further probe is
// g_i = lane0 + i*lane1 mod m.
package bloom

import (
	"errors"
	"math"

	"github.com/opencoff/polymurhash/bitset"
	"github.com/opencoff/polymurhash/polymur"
)

// errIncompatibleFilters is returned by Union when the two filters were not
// built with the same sizing and keying parameters.
var errIncompatibleFilters = errors.New("bloom: filters are not union-compatible")

// Filter is a Bloom filter over arbitrary []byte keys.
type Filter struct {
	bits   *bitset.Set
	m      uint64 // number of bits, power of 2
	k      uint32 // number of probes
	params polymur.Params
	n      uint64 // number of items added
}

// New creates a Bloom filter sized for expectedN items at target false
// positive rate fp (0 < fp < 1), keyed by a PolymurHash Params derived from
// seed.
func New(expectedN uint64, fp float64, seed uint64) *Filter {
	if expectedN == 0 {
		expectedN = 1
	}
	if fp <= 0 || fp >= 1 {
		fp = 0.01
	}

	m := optimalBits(expectedN, fp)
	k := optimalK(m, expectedN)

	return &Filter{
		bits:   bitset.New(m),
		m:      m,
		k:      k,
		params: polymur.InitParamsFromSeed(seed),
	}
}

func optimalBits(n uint64, fp float64) uint64 {
	m := -1.0 * float64(n) * math.Log(fp) / (math.Ln2 * math.Ln2)
	if m < 64 {
		m = 64
	}
	return nextpow2(uint64(math.Ceil(m)))
}

func optimalK(m, n uint64) uint32 {
	k := uint32(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	if k > 32 {
		k = 32
	}
	return k
}

func nextpow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

func (f *Filter) lanes(key []byte) (uint64, uint64) {
	lane0 := polymur.Hash(key, &f.params, 0)
	lane1 := polymur.Hash(key, &f.params, 1)
	// An odd lane1 is invertible mod the power-of-2 m, so the k probe
	// indices lane0 + i*lane1 for i in [0, k) are all distinct.
	lane1 |= 1
	return lane0, lane1
}

// Add inserts key into the filter.
func (f *Filter) Add(key []byte) {
	lane0, lane1 := f.lanes(key)
	mask := f.bits.Size() - 1
	for i := uint32(0); i < f.k; i++ {
		idx := (lane0 + uint64(i)*lane1) & mask
		f.bits.Set(idx)
	}
	f.n++
}

// Test reports whether key may have been added. False positives are
// possible; false negatives are not.
func (f *Filter) Test(key []byte) bool {
	lane0, lane1 := f.lanes(key)
	mask := f.bits.Size() - 1
	for i := uint32(0); i < f.k; i++ {
		idx := (lane0 + uint64(i)*lane1) & mask
		if !f.bits.IsSet(idx) {
			return false
		}
	}
	return true
}

// EstimateFalsePositiveRate estimates the current false-positive rate given
// the number of items added so far.
func (f *Filter) EstimateFalsePositiveRate() float64 {
	m := float64(f.bits.Size())
	k := float64(f.k)
	n := float64(f.n)
	return math.Pow(1-math.Exp(-k*n/m), k)
}

// Len returns the number of items added to the filter.
func (f *Filter) Len() uint64 {
	return f.n
}

// Reset clears every bit in the filter and its item count, so it can be
// reused for a new window of data without reallocating.
func (f *Filter) Reset() {
	f.bits.Reset()
	f.n = 0
}

// Union ORs other's bits into f, so f subsequently reports present for
// anything either filter reported present for. f and other must have been
// created with the same expectedN/fp/seed (same m, k, and params); Union
// returns an error otherwise. f.Len() becomes an upper bound on the
// distinct items in the union, since items added to both sides are counted
// twice.
func (f *Filter) Union(other *Filter) error {
	if f.m != other.m || f.k != other.k || f.params != other.params {
		return errIncompatibleFilters
	}
	f.bits.Merge(other.bits)
	f.n += other.n
	return nil
}
