package polymur

import (
	"testing"

	"github.com/opencoff/polymurhash/internal/testutil"
)

// TestEndianIndependence checks that the manual little-endian byte loads
// used throughout poly611 do not depend on host byte order: they are built
// from explicit byte shifts, never a native multi-byte load, so the packed
// value for a given byte sequence is the same regardless of the machine
// this test runs on.
func TestEndianIndependence(t *testing.T) {
	assert := testutil.NewAsserter(t)

	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	got := loadLE64(buf, 0)
	want := uint64(0x0807060504030201)
	assert(got == want, "loadLE64: got %#x, want %#x", got, want)

	got32 := loadLE32(buf, 0)
	want32 := uint32(0x04030201)
	assert(got32 == want32, "loadLE32: got %#x, want %#x", got32, want32)

	for n := 1; n <= 8; n++ {
		v := loadLE64_1_8(buf[:n], n)
		var want uint64
		for i := 0; i < n; i++ {
			want |= uint64(buf[i]) << uint(8*i)
		}
		assert(v == want, "loadLE64_1_8(n=%d): got %#x, want %#x", n, v, want)
	}
}

func TestRed611Bound(t *testing.T) {
	assert := testutil.NewAsserter(t)

	x := mul128(p611, p611)
	r := red611(x)
	assert(r < (uint64(1)<<63), "red611 result %#x exceeds 63 bits", r)

	e := extrared611(r)
	assert(e < (uint64(1)<<61), "extrared611 result %#x exceeds 61 bits", e)
}
