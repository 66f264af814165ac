package polymur

// mx3Mul is the MX3 rev-2 multiplier by Jon Kagstrom.
const mx3Mul = 0x0E9846AF9B1A615D

// mix is the MX3-style avalanche finalizer applied to the polynomial
// accumulator before adding the seed's s value.
func mix(x uint64) uint64 {
	x ^= x >> 32
	x *= mx3Mul
	x ^= x >> 32
	x *= mx3Mul
	x ^= x >> 28
	return x
}
