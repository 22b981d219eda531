package classical

// ModInverse returns the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. The second return value is false when no
// inverse exists, i.e. gcd(a, m) != 1 (including a ≡ 0 mod m).
//
// a is normalized into [0, m) before computing, so negative inputs and
// inputs beyond m are handled. m must be positive.
func ModInverse(a, m int) (int, bool) {
	if m <= 0 {
		return 0, false
	}
	a %= m
	if a < 0 {
		a += m
	}
	if a == 0 {
		return 0, false
	}
	t0, t1 := 0, 1
	r0, r1 := m, a
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, false
	}
	inv := t0 % m
	if inv < 0 {
		inv += m
	}
	return inv, true
}
