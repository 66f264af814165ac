package polymur

// Arbitrary constants: the fractional bits of sqrt(2), sqrt(3), sqrt(5) and
// sqrt(7), taken from SHA-2. Nothing-up-my-sleeve numbers, used only to
// perturb a user-supplied seed so that an all-zero seed is never special.
const (
	arbitrary1 = 0x6A09E667F3BCC908
	arbitrary2 = 0xBB67AE8584CAA73B
	arbitrary3 = 0x3C6EF372FE94F82B
	arbitrary4 = 0xA54FF53A5F1D36F1
)

// Params holds the field elements derived from a user seed: a generator k
// of the multiplicative group mod p611, its square and 7th power, and an
// arbitrary post-mix addend s. Params is immutable once constructed and may
// be shared freely across goroutines.
type Params struct {
	K, K2, K7, S uint64
}

// pow37Table builds POW37[i] = 37^(2^i) mod p611 for i in [0, 64), by
// repeated squaring. The table is seeded at indices 0 and 32 so that the
// lower and upper halves can be filled independently.
func pow37Table() [64]uint64 {
	var pow37 [64]uint64
	pow37[0] = 37
	pow37[32] = 559096694736811184 // 37^(2^32) mod p611

	for i := 0; i < 31; i++ {
		pow37[i+1] = extrared611(red611(mul128(pow37[i], pow37[i])))
		pow37[i+33] = extrared611(red611(mul128(pow37[i+32], pow37[i+32])))
	}
	return pow37
}

// badExponentFactors are the odd prime factors of p611-1 = 2*3^2*5^2*7*11*
// 13*31*41*61*151*331*1321. An exponent e coprime to all of them (and odd)
// is coprime to p611-1, and hence 37^e generates the whole multiplicative
// group.
var badExponentFactors = [...]uint64{3, 5, 7, 11, 13, 31, 41, 61, 151, 331, 1321}

func hasBadFactor(e uint64) bool {
	for _, f := range badExponentFactors {
		if e%f == 0 {
			return true
		}
	}
	return false
}

// InitParams expands a 64-bit key seed and a 64-bit secondary seed into a
// set of Params for hash evaluation. The rejection loop inside terminates
// with probability 1 (expected ~6 iterations) and never returns an error.
func InitParams(kSeed, sSeed uint64) Params {
	var p Params
	p.S = sSeed ^ arbitrary1 // people love to pass zero.

	pow37 := pow37Table()

	for {
		// Choose a random exponent coprime to p611-1. ~35.3% success rate.
		kSeed += arbitrary2
		e := (kSeed >> 3) | 1 // e < 2^61, odd.
		if hasBadFactor(e) {
			continue
		}

		// Compute k = 37^e mod p611 by consuming e two bits at a time.
		// Since e is coprime with the order of the multiplicative group
		// and 37 is a generator, this produces another generator.
		ka, kb := uint64(1), uint64(1)
		for i := 0; e != 0; i, e = i+2, e>>2 {
			if e&1 != 0 {
				ka = extrared611(red611(mul128(ka, pow37[i])))
			}
			if e&2 != 0 {
				kb = extrared611(red611(mul128(kb, pow37[i+1])))
			}
		}
		k := extrared611(red611(mul128(ka, kb)))

		// ~46.875% success rate. The bound on k7 is needed for the inner
		// block loop's reduction to stay safely under 62 bits.
		p.K = extrared611(k)
		p.K2 = extrared611(red611(mul128(p.K, p.K)))
		k3 := red611(mul128(p.K, p.K2))
		k4 := red611(mul128(p.K2, p.K2))
		p.K7 = extrared611(red611(mul128(k3, k4)))
		if p.K7 < (uint64(1)<<60)-(uint64(1)<<56) {
			break
		}
	}

	return p
}

// InitParamsFromSeed expands a single 64-bit seed to a set of Params.
func InitParamsFromSeed(seed uint64) Params {
	return InitParams(mix(seed+arbitrary3), mix(seed+arbitrary4))
}
