// arith.go -- lazy modular arithmetic over GF(2^61 - 1)
//
// All of PolymurHash's field arithmetic is "lazily reduced": values are kept
// as 64-bit words congruent to, but not necessarily less than, the Mersenne
// prime p611 = 2^61 - 1. Full reduction only ever happens implicitly, by
// virtue of the final output being treated as an opaque 64-bit word.

package polymur

import "math/bits"

// p611 is the Mersenne prime 2^61 - 1.
const p611 = (uint64(1) << 61) - 1

// u128 is a 128-bit unsigned integer split into high/low 64-bit halves,
// since Go has no native 128-bit integer type.
type u128 struct {
	lo, hi uint64
}

// mul128 computes the exact 128-bit product of a and b.
func mul128(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{lo: lo, hi: hi}
}

// add128 computes the wrapping 128-bit sum of a and b.
func add128(a, b u128) u128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return u128{lo: lo, hi: hi}
}

// red611 partially reduces a 128-bit value modulo p611. If x < 2^122 the
// result fits in 63 bits and is congruent to x mod p611, but is not
// necessarily fully reduced into [0, p611).
func red611(x u128) uint64 {
	return (x.lo & p611) + ((x.lo >> 61) | (x.hi << 3))
}

// extrared611 performs a further partial reduction of a value known to be
// less than 2^62, producing a result less than 2^61.
func extrared611(x uint64) uint64 {
	return (x & p611) + (x >> 61)
}

// loadLE64 reads 8 bytes from buf at off as a little-endian uint64.
func loadLE64(buf []byte, off int) uint64 {
	b := buf[off : off+8 : off+8]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// loadLE32 reads 4 bytes from buf at off as a little-endian uint32.
func loadLE32(buf []byte, off int) uint32 {
	b := buf[off : off+4 : off+4]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// loadLE64_1_8 loads 1 to 8 bytes from buf (len(buf) == n, 0 < n <= 8) as a
// little-endian integer, packed into the low bits of the result.
func loadLE64_1_8(buf []byte, n int) uint64 {
	if n < 4 {
		v := uint64(buf[0])
		v |= uint64(buf[n/2]) << (8 * uint(n/2))
		v |= uint64(buf[n-1]) << (8 * uint(n-1))
		return v
	}

	lo := uint64(loadLE32(buf, 0))
	hi := uint64(loadLE32(buf, n-4))
	return lo | (hi << (8 * uint(n-4)))
}
