package polymur

// mask56 keeps the low 56 bits of a loaded word; block and tail loads are
// masked to 56 bits so that every summand fed to mul128 stays under 62
// bits (see the overflow argument in the algorithm's design notes).
const mask56 = 0x00FFFFFFFFFFFFFF

// poly611 evaluates the keyed polynomial accumulator over buf in GF(2^61-1),
// dispatching on length. It never reduces buf to less than 8 bytes without
// handling the 1-7 byte tail explicitly; the 49-byte block loop boundary
// (n >= 50) is deliberate and must not be adjusted -- see the open question
// in the design notes. An empty buf yields 0 here as well, although Hash
// already returns 0 for it before calling.
func poly611(buf []byte, p *Params, tweak uint64) uint64 {
	n := len(buf)
	polyAcc := tweak

	if n <= 7 {
		if n == 0 {
			return 0
		}
		m0 := loadLE64_1_8(buf, n)
		return polyAcc + red611(mul128(p.K+m0, p.K2+uint64(n)))
	}

	k3 := red611(mul128(p.K, p.K2))
	k4 := red611(mul128(p.K2, p.K2))

	if n >= 50 {
		k5 := extrared611(red611(mul128(p.K, k4)))
		k6 := extrared611(red611(mul128(p.K2, k4)))
		k3 = extrared611(k3)
		k4 = extrared611(k4)

		h := uint64(0)
		off := 0
		for {
			m0 := loadLE64(buf, off) & mask56
			m1 := loadLE64(buf, off+7) & mask56
			m2 := loadLE64(buf, off+14) & mask56
			m3 := loadLE64(buf, off+21) & mask56
			m4 := loadLE64(buf, off+28) & mask56
			m5 := loadLE64(buf, off+35) & mask56
			m6 := loadLE64(buf, off+42) & mask56

			t0 := mul128(p.K+m0, k6+m1)
			t1 := mul128(p.K2+m2, k5+m3)
			t2 := mul128(k3+m4, k4+m5)
			t3 := mul128(h+m6, p.K7)
			s := add128(add128(t0, t1), add128(t2, t3))
			h = red611(s)

			n -= 49
			off += 49
			if n < 50 {
				break
			}
		}
		buf = buf[off:]

		k14 := red611(mul128(p.K7, p.K7))
		hk14 := red611(mul128(extrared611(h), k14))
		polyAcc += extrared611(hk14)
	}

	if n >= 8 {
		m0 := loadLE64(buf, 0) & mask56
		m1 := loadLE64(buf, (n-7)/2) & mask56
		m2 := loadLE64(buf, n-8) >> 8

		t0 := mul128(p.K2+m0, p.K7+m1)
		t1 := mul128(p.K+m2, k3+uint64(n))
		if n <= 21 {
			return polyAcc + red611(add128(t0, t1))
		}

		m3 := loadLE64(buf, 7) & mask56
		m4 := loadLE64(buf, 14) & mask56
		m5 := loadLE64(buf, n-21) & mask56
		m6 := loadLE64(buf, n-14) & mask56

		t0r := red611(t0)
		t2 := mul128(p.K2+m3, p.K7+m4)
		t3 := mul128(t0r+m5, k4+m6)
		s := add128(add128(t1, t2), t3)
		return polyAcc + red611(s)
	}

	// n < 8 after the block loop: can only happen with 1 <= n <= 7.
	m0 := loadLE64_1_8(buf, n)
	return polyAcc + red611(mul128(p.K+m0, p.K2+uint64(n)))
}
