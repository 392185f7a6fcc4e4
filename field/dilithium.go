package field

// Dilithium is a scalar element of Z_q2, q2 = 8380417, the Dilithium field.
// Present as shared substrate only: no signature scheme is implemented
// against it, but its field and NTT participate in the cross-field
// property tests alongside Kyber.
//
// Grounded on _examples/original_source/src/field/dilithium.rs.
type Dilithium int32

const (
	// DilithiumQ is the Dilithium field modulus: (1<<23) - (1<<13) + 1.
	DilithiumQ = 8380417

	// dilithiumMont is 2^32 mod q.
	dilithiumMont = -4186625

	// dilithiumQinv is q^-1 mod 2^32.
	dilithiumQinv = 58728449
)

// Add returns a+b without reduction.
func (a Dilithium) Add(b Dilithium) Dilithium { return a + b }

// Sub returns a-b without reduction.
func (a Dilithium) Sub(b Dilithium) Dilithium { return a - b }

// montgomeryReduce returns a*2^-32 mod q for -2^31*q <= a <= 2^31*q, with
// -q < r < q.
func montgomeryReduceDilithium(a int64) Dilithium {
	t := int32(a) * dilithiumQinv
	r := int32((a - int64(t)*DilithiumQ) >> 32)
	return Dilithium(r)
}

// DilithiumMulMont returns a*b*2^-32 mod q in Montgomery domain.
func DilithiumMulMont(a, b Dilithium) Dilithium {
	return montgomeryReduceDilithium(int64(a) * int64(b))
}

// reduce32 computes a mod q in [-6283009, 6283008] for a <= 2^31 - 2^22.
func reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*DilithiumQ
}

// Reduce is a two-step clamp (reduce32 followed by CAddQ) into [0, q).
func (a Dilithium) Reduce() Dilithium {
	return Dilithium(reduce32(int32(a))).CAddQ()
}

// CAddQ adds q iff the receiver is negative.
func (a Dilithium) CAddQ() Dilithium {
	return a + (Dilithium(int32(a)>>31) & DilithiumQ)
}
