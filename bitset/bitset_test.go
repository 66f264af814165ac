package bitset

import (
	"testing"

	"github.com/opencoff/polymurhash/internal/testutil"
)

func TestBitSetSimple(t *testing.T) {
	assert := testutil.NewAsserter(t)

	bv := New(100)
	assert(bv.Size() == 128, "size mismatch; exp 128, saw %d", bv.Size())

	for i := uint64(0); i < bv.Size(); i++ {
		if i&1 == 1 {
			bv.Set(i)
		}
	}

	for i := uint64(0); i < bv.Size(); i++ {
		if i&1 == 1 {
			assert(bv.IsSet(i), "%d not set", i)
		} else {
			assert(!bv.IsSet(i), "%d is set", i)
		}
	}
	assert(bv.Popcount() == bv.Size()/2, "popcount mismatch: got %d, want %d", bv.Popcount(), bv.Size()/2)
}

func TestBitSetMerge(t *testing.T) {
	assert := testutil.NewAsserter(t)

	a := New(64)
	b := New(64)

	a.Set(1).Set(3).Set(5)
	b.Set(2).Set(3).Set(7)

	a.Merge(b)

	for _, i := range []uint64{1, 2, 3, 5, 7} {
		assert(a.IsSet(i), "bit %d should be set after merge", i)
	}
	assert(!a.IsSet(4), "bit 4 should not be set after merge")
}

func TestBitSetReset(t *testing.T) {
	assert := testutil.NewAsserter(t)

	a := New(64)
	a.Set(10).Set(20).Set(30)
	a.Reset()

	for i := uint64(0); i < a.Size(); i++ {
		assert(!a.IsSet(i), "bit %d set after reset", i)
	}
}
