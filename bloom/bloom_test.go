package bloom

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/opencoff/polymurhash/internal/testutil"
)

func TestBloomNoFalseNegatives(t *testing.T) {
	assert := testutil.NewAsserter(t)

	f := New(1000, 0.01, 0xdeadbeef)
	keys := make([][]byte, 1000)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%d", i))
		f.Add(keys[i])
	}

	for _, k := range keys {
		assert(f.Test(k), "false negative for key %q", k)
	}
}

func TestBloomFalsePositiveRateIsReasonable(t *testing.T) {
	assert := testutil.NewAsserter(t)

	const n = 5000
	f := New(n, 0.01, 0x1234)
	rng := rand.New(rand.NewSource(99))

	present := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		k := make([]byte, 16)
		rng.Read(k)
		present[string(k)] = true
		f.Add(k)
	}

	trials := 20000
	falsePos := 0
	for i := 0; i < trials; i++ {
		k := make([]byte, 16)
		rng.Read(k)
		if present[string(k)] {
			continue
		}
		if f.Test(k) {
			falsePos++
		}
	}

	rate := float64(falsePos) / float64(trials)
	assert(rate < 0.05, "false positive rate too high: %f", rate)
}

func TestBloomReset(t *testing.T) {
	assert := testutil.NewAsserter(t)

	f := New(100, 0.01, 0xabc)
	f.Add([]byte("hello"))
	assert(f.Test([]byte("hello")), "expected hit before reset")

	f.Reset()
	assert(!f.Test([]byte("hello")), "unexpected hit after reset")
	assert(f.Len() == 0, "expected Len 0 after reset, got %d", f.Len())
}

func TestBloomUnion(t *testing.T) {
	assert := testutil.NewAsserter(t)

	a := New(1000, 0.01, 0x42)
	b := New(1000, 0.01, 0x42)

	a.Add([]byte("apple"))
	b.Add([]byte("banana"))

	assert(a.Union(b) == nil, "union failed")
	assert(a.Test([]byte("apple")), "expected apple present after union")
	assert(a.Test([]byte("banana")), "expected banana present after union")
}

func TestBloomUnionIncompatible(t *testing.T) {
	assert := testutil.NewAsserter(t)

	a := New(1000, 0.01, 0x42)
	b := New(50, 0.1, 0x43)

	assert(a.Union(b) == errIncompatibleFilters, "expected errIncompatibleFilters for mismatched filters")
}
