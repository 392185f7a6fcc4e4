// Package polyvec implements length-K vectors of Kyber polynomials: the
// uniform-matrix and noise-vector expansion, vector multiply-accumulate,
// and vector (de)serialization the IND-CPA scheme builds on.
//
// Grounded on _examples/Yawning-kyber/polyvec.go for the per-vector
// method shape (compress/decompress/toBytes/fromBytes/ntt/invntt/
// pointwiseAcc/add), reworked onto the final ML-KEM poly package and the
// (i,j)/(j,i) transposed-nonce uniform expansion from
// _examples/original_source/src/polyvec.rs's `uniform<const TRANSPOSED>`.
package polyvec

import (
	"github.com/kammoh/krystals/chunk"
	"github.com/kammoh/krystals/poly"
)

// PolyVec is an ordered sequence of K Kyber polynomials.
type PolyVec struct {
	Polys []poly.Poly
}

// New allocates a zeroed vector of length k.
func New(k int) *PolyVec {
	return &PolyVec{Polys: make([]poly.Poly, k)}
}

// K returns the vector's length.
func (v *PolyVec) K() int { return len(v.Polys) }

// NTT lifts every element into the NTT domain in place.
func (v *PolyVec) NTT() {
	for i := range v.Polys {
		v.Polys[i].NTT()
	}
}

// InvNTT inverts the NTT on every element in place.
func (v *PolyVec) InvNTT() {
	for i := range v.Polys {
		v.Polys[i].InvNTT()
	}
}

// Reduce brings every coefficient of every element into canonical range.
func (v *PolyVec) Reduce() {
	for i := range v.Polys {
		v.Polys[i].Reduce()
	}
}

// Add sets v := a+b componentwise.
func (v *PolyVec) Add(a, b *PolyVec) {
	for i := range v.Polys {
		v.Polys[i].Add(&a.Polys[i], &b.Polys[i])
	}
}

// UniformMatrixRow fills v (length K, the matrix's row width) by expanding
// SHAKE128(seed, i, j) via rejection sampling, for row index `row`. When
// transposed is false this is row `row` of A; when true it is row `row`
// of A^T, with nonces (i,j) = (row,col) or (col,row) respectively.
func (v *PolyVec) UniformMatrixRow(seed []byte, row int, transposed bool) {
	for col := range v.Polys {
		if transposed {
			v.Polys[col].Uniform(seed, byte(col), byte(row))
		} else {
			v.Polys[col].Uniform(seed, byte(row), byte(col))
		}
	}
}

// NoiseVector fills v by sampling each element from CBD_eta, driven by
// SHAKE256(seed, nonce+i) for i in 0..K.
func (v *PolyVec) NoiseVector(seed []byte, nonce byte, eta int) {
	for i := range v.Polys {
		v.Polys[i].GetNoise(seed, nonce+byte(i), eta)
	}
}

// BasemulAcc sets r := sum_i a[i]*b[i] pointwise in the NTT domain,
// followed by a single final reduction. It owns the zeroing of its own
// accumulation; callers do not need to pre-zero r.
func BasemulAcc(r *poly.Poly, a, b *PolyVec) {
	var tmp poly.Poly

	r.PointwiseMul(&a.Polys[0], &b.Polys[0])
	for i := 1; i < len(a.Polys); i++ {
		tmp.PointwiseMul(&a.Polys[i], &b.Polys[i])
		r.Add(r, &tmp)
	}
	r.Reduce()
}

// PolyBytes is the serialized size of a single Kyber polynomial.
const PolyBytes = 384

// ToBytes serializes v into K*PolyBytes bytes.
func (v *PolyVec) ToBytes(r []byte) {
	it := chunk.NewIter(r, PolyBytes)
	for i := range v.Polys {
		c, ok := it.Next()
		if !ok {
			panic("polyvec: destination too short")
		}
		v.Polys[i].ToBytes(c)
	}
}

// FromBytes deserializes v from the ToBytes layout.
func (v *PolyVec) FromBytes(a []byte) {
	it := chunk.NewIter(a, PolyBytes)
	for i := range v.Polys {
		c, ok := it.Next()
		if !ok {
			panic("polyvec: source too short")
		}
		v.Polys[i].FromBytes(c)
	}
}

// CompressedSize returns the number of bytes Compress(d) writes for this
// vector.
func (v *PolyVec) CompressedSize(d int) int {
	return len(v.Polys) * poly.CompressedSize(d)
}

// Compress bit-packs every element at d bits per coefficient into r,
// component after component.
func (v *PolyVec) Compress(r []byte, d int) {
	it := chunk.NewIter(r, poly.CompressedSize(d))
	for i := range v.Polys {
		c, ok := it.Next()
		if !ok {
			panic("polyvec: destination too short")
		}
		v.Polys[i].Compress(c, d)
	}
}

// Decompress is the approximate inverse of Compress.
func (v *PolyVec) Decompress(a []byte, d int) {
	it := chunk.NewIter(a, poly.CompressedSize(d))
	for i := range v.Polys {
		c, ok := it.Next()
		if !ok {
			panic("polyvec: source too short")
		}
		v.Polys[i].Decompress(c, d)
	}
}
