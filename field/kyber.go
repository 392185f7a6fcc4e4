package field

// Kyber is a scalar element of Z_q1, q1 = 3329, the Kyber/ML-KEM field.
// Values are kept in a signed 16-bit range; arithmetic follows the
// Montgomery/Barrett scheme of _examples/original_source/src/field/kyber.rs.
type Kyber int16

const (
	// KyberQ is the Kyber field modulus.
	KyberQ = 3329

	// kyberMont is 2^16 mod q, the Montgomery radix's residue.
	kyberMont = -1044

	// kyberQinv is q^-1 mod 2^16.
	kyberQinv = -3327

	// KyberMontR2 is (2^16)^2 mod q, used to lift values into Montgomery
	// domain via a single fqmul.
	KyberMontR2 = 1353
)

// Add returns a+b without reduction.
func (a Kyber) Add(b Kyber) Kyber { return a + b }

// Sub returns a-b without reduction.
func (a Kyber) Sub(b Kyber) Kyber { return a - b }

// montgomeryReduce computes a*R^-1 mod q for R = 2^16, for
// -2^15*q <= a <= 2^15*q, returning a value strictly between -q and q.
func montgomeryReduce(a int32) Kyber {
	t := int16(int32(int16(a)) * kyberQinv)
	r := (a - int32(t)*KyberQ) >> 16
	return Kyber(r)
}

// KyberMulMont returns a*b*R^-1 mod q in Montgomery domain, |result| < q.
func KyberMulMont(a, b Kyber) Kyber {
	return montgomeryReduce(int32(a) * int32(b))
}

// barrettReduce computes a mod q in (-q/2, q/2], using the precomputed
// approximation v = floor(2^26/q + 1/2).
func barrettReduce(a Kyber) Kyber {
	const v = (1<<26 + KyberQ/2) / KyberQ
	t := int32(v)*int32(a) + (1 << 25)
	t >>= 26
	return a - Kyber(t)*KyberQ
}

// Reduce Barrett-reduces the receiver into canonical range (-q/2, q/2].
func (a Kyber) Reduce() Kyber { return barrettReduce(a) }

// CAddQ adds q iff the receiver is negative, yielding 0 <= r < 2q.
func (a Kyber) CAddQ() Kyber {
	return a + (Kyber(int16(a)>>15) & KyberQ)
}

// Freeze returns the canonical positive representative in [0, q).
func (a Kyber) Freeze() Kyber {
	return a.Reduce().CAddQ()
}
