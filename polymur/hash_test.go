package polymur

import (
	"math/rand"
	"testing"

	"github.com/opencoff/polymurhash/internal/testutil"
)

const (
	refSeed  = 0xFEDBCA9876543210
	refTweak = 0xABCDEF0123456789
)

func TestReferenceVectors(t *testing.T) {
	assert := testutil.NewAsserter(t)

	p := InitParamsFromSeed(refSeed)
	for i, s := range ReferenceStrings {
		got := Hash([]byte(s), &p, refTweak)
		want := ReferenceValues[i]
		assert(got == want, "len %d %q: got %#016x, want %#016x", len(s), s, got, want)
	}
}

func TestReferenceAnchors(t *testing.T) {
	assert := testutil.NewAsserter(t)
	p := InitParamsFromSeed(refSeed)

	cases := []struct {
		s    string
		want uint64
	}{
		{"", 0x0000000000000000},
		{"i", 0xD16D059771C65E13},
		{"es", 0x5EE4E0C09F562F87},
		{"oo70ed77jci4bgodhnyf37axrx4f8gf8qs94f4l9xi9h0jkdl2ozoi2p7q7qu1945l21dzj6rhvqearzrmblfo3ljjldj0m9fue", 0x194FA4F68AAB8E27},
	}
	for _, c := range cases {
		got := Hash([]byte(c.s), &p, refTweak)
		assert(got == c.want, "%q: got %#016x, want %#016x", c.s, got, c.want)
	}
}

func TestEmptyInputLaw(t *testing.T) {
	assert := testutil.NewAsserter(t)
	seeds := []uint64{0, 1, refSeed, ^uint64(0)}
	tweaks := []uint64{0, 1, refTweak, ^uint64(0)}
	for _, sd := range seeds {
		p := InitParamsFromSeed(sd)
		for _, tw := range tweaks {
			got := Hash(nil, &p, tw)
			assert(got == 0, "hash(\"\") with seed %#x tweak %#x = %#x, want 0", sd, tw, got)
			got = Hash([]byte{}, &p, tw)
			assert(got == 0, "hash([]byte{}) with seed %#x tweak %#x = %#x, want 0", sd, tw, got)
		}
	}
}

func TestDeterminism(t *testing.T) {
	assert := testutil.NewAsserter(t)
	p := InitParamsFromSeed(refSeed)
	buf := []byte("the quick brown fox jumps over the lazy dog, 1234567890")
	a := Hash(buf, &p, refTweak)
	b := Hash(buf, &p, refTweak)
	assert(a == b, "hash not deterministic: %#x != %#x", a, b)
}

func TestBoundaryLengths(t *testing.T) {
	assert := testutil.NewAsserter(t)
	p := InitParamsFromSeed(refSeed)

	for _, n := range []int{0, 1, 3, 4, 7, 8, 21, 22, 49, 50, 98, 99} {
		s := ReferenceStrings[n]
		assert(len(s) == n, "fixture length mismatch: want %d, got %d", n, len(s))
		got := Hash([]byte(s), &p, refTweak)
		want := ReferenceValues[n]
		assert(got == want, "boundary length %d: got %#016x, want %#016x", n, got, want)
	}
}

func TestTweakSeparation(t *testing.T) {
	assert := testutil.NewAsserter(t)
	p := InitParamsFromSeed(refSeed)

	rng := rand.New(rand.NewSource(1))
	const nSamples = 1000
	diff := 0
	for i := 0; i < nSamples; i++ {
		buf := make([]byte, 1+rng.Intn(200))
		rng.Read(buf)
		if Hash(buf, &p, 0) != Hash(buf, &p, 1) {
			diff++
		}
	}
	assert(diff >= nSamples*99/100, "tweak separation too weak: only %d/%d differ", diff, nSamples)
}

func TestParamInvariants(t *testing.T) {
	assert := testutil.NewAsserter(t)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 64; i++ {
		seed := rng.Uint64()
		p := InitParamsFromSeed(seed)

		assert(p.K7 < (uint64(1)<<60)-(uint64(1)<<56), "seed %#x: k7 %#x out of bound", seed, p.K7)
		assert(p.K < (uint64(1)<<61), "seed %#x: k %#x >= 2^61", seed, p.K)
		assert(p.K2 < (uint64(1)<<61), "seed %#x: k2 %#x >= 2^61", seed, p.K2)
		assert(p.K7 < (uint64(1)<<61), "seed %#x: k7 %#x >= 2^61", seed, p.K7)

		k2 := extrared611(red611(mul128(p.K, p.K)))
		assert(k2 == p.K2, "seed %#x: recomputed k2 %#x != stored %#x", seed, k2, p.K2)
	}
}

func TestMixingBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-sample mixing test in -short mode")
	}
	assert := testutil.NewAsserter(t)

	p := InitParamsFromSeed(refSeed)
	rng := rand.New(rand.NewSource(7))

	const n = 200000
	var xorAcc uint64
	seen := make(map[uint64]struct{}, n)
	buf := make([]byte, 32)
	collisions := 0
	for i := 0; i < n; i++ {
		rng.Read(buf)
		h := Hash(buf, &p, refTweak)
		xorAcc ^= h
		if _, ok := seen[h]; ok {
			collisions++
		}
		seen[h] = struct{}{}
	}
	assert(collisions == 0, "unexpected collisions among %d random 32-byte inputs: %d", n, collisions)

	for bit := 0; bit < 64; bit++ {
		ones := 0
		if xorAcc&(1<<uint(bit)) != 0 {
			ones = 1
		}
		_ = ones // single accumulated XOR value; presence of both 0/1 bits checked below
	}
	// A balanced mix should not leave the XOR-of-all-outputs heavily biased
	// toward all-zero or all-one bit patterns.
	popcount := 0
	for bit := 0; bit < 64; bit++ {
		if xorAcc&(1<<uint(bit)) != 0 {
			popcount++
		}
	}
	assert(popcount > 16 && popcount < 48, "xor-of-outputs popcount %d looks biased", popcount)
}
