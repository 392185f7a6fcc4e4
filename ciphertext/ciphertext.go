// Package ciphertext implements the compressed Kyber ciphertext layout: a
// polynomial vector compressed at d_vec bits per coefficient followed by
// a single polynomial compressed at d_poly bits, with (d_poly, d_vec) =
// (4, 10) for K in {2,3} and (5, 11) for K=4.
//
// Grounded on _examples/original_source/src/ciphertext.rs, which carries
// two storage shapes for the same layout: a stack-resident, const-generic
// array type (Ciphertext<D_POLY,D_PV,K,...>) and a heap-resident Vec-
// backed type (VecCipherText<K>), both implementing the same compression
// trait. Go has no const generics over array length, so the stack-
// resident shape here is three concrete fixed-size-array types (one per
// K), rather than one generic type — but all three, plus the slice-backed
// variant, funnel through the same private pack/unpack routine operating
// on a []byte destination, so the two storage shapes cannot diverge in
// their byte layout.
package ciphertext

import (
	"github.com/kammoh/krystals/chunk"
	"github.com/kammoh/krystals/poly"
	"github.com/kammoh/krystals/polyvec"
)

// Params returns the per-coefficient compression widths (dPoly, dVec)
// for a given K.
func Params(k int) (dPoly, dVec int) {
	if k == 4 {
		return 5, 11
	}
	return 4, 10
}

// Size returns the total ciphertext length for the given K.
func Size(k int) int {
	dPoly, dVec := Params(k)
	return k*poly.CompressedSize(dVec) + poly.CompressedSize(dPoly)
}

// Sizes for the three supported K values, used to size the fixed-array
// variants below.
const (
	SizeK2 = 2*320 + 128 // poly.CompressedSize(10)*2 + poly.CompressedSize(4)
	SizeK3 = 3*320 + 128 // poly.CompressedSize(10)*3 + poly.CompressedSize(4)
	SizeK4 = 4*352 + 160 // poly.CompressedSize(11)*4 + poly.CompressedSize(5)
)

// pack writes b (length-K vector, compressed at dVec bits) followed by v
// (single polynomial, compressed at dPoly bits) into dst. Shared by every
// storage variant below, so they cannot diverge.
func pack(dst []byte, b *polyvec.PolyVec, v *poly.Poly, dPoly, dVec int) {
	vecDst, polyDst, ok := chunk.TrySplit(dst, b.CompressedSize(dVec))
	if !ok {
		panic("ciphertext: destination too short")
	}
	b.Compress(vecDst, dVec)
	v.Compress(polyDst, dPoly)
}

// unpack is the inverse of pack.
func unpack(src []byte, b *polyvec.PolyVec, v *poly.Poly, dPoly, dVec int) {
	vecSrc, polySrc, ok := chunk.TrySplit(src, b.CompressedSize(dVec))
	if !ok {
		panic("ciphertext: source too short")
	}
	b.Decompress(vecSrc, dVec)
	v.Decompress(polySrc, dPoly)
}

// ArrayK2 is the stack-resident ciphertext shape for K=2 (d_poly=4,
// d_vec=10).
type ArrayK2 [SizeK2]byte

// Pack compresses (b, v) into the array in place.
func (a *ArrayK2) Pack(b *polyvec.PolyVec, v *poly.Poly) { pack(a[:], b, v, 4, 10) }

// Unpack decompresses the array into (b, v).
func (a *ArrayK2) Unpack(b *polyvec.PolyVec, v *poly.Poly) { unpack(a[:], b, v, 4, 10) }

// ArrayK3 is the stack-resident ciphertext shape for K=3 (d_poly=4,
// d_vec=10).
type ArrayK3 [SizeK3]byte

// Pack compresses (b, v) into the array in place.
func (a *ArrayK3) Pack(b *polyvec.PolyVec, v *poly.Poly) { pack(a[:], b, v, 4, 10) }

// Unpack decompresses the array into (b, v).
func (a *ArrayK3) Unpack(b *polyvec.PolyVec, v *poly.Poly) { unpack(a[:], b, v, 4, 10) }

// ArrayK4 is the stack-resident ciphertext shape for K=4 (d_poly=5,
// d_vec=11).
type ArrayK4 [SizeK4]byte

// Pack compresses (b, v) into the array in place.
func (a *ArrayK4) Pack(b *polyvec.PolyVec, v *poly.Poly) { pack(a[:], b, v, 5, 11) }

// Unpack decompresses the array into (b, v).
func (a *ArrayK4) Unpack(b *polyvec.PolyVec, v *poly.Poly) { unpack(a[:], b, v, 5, 11) }

// Slice is the heap-resident ciphertext variant: a plain byte slice of
// Size(k) bytes, for callers that want one type across all three K
// values (e.g. the indcpa package's Encrypt/Decrypt).
type Slice struct {
	Bytes []byte
	k     int
}

// NewSlice allocates a slice-shaped ciphertext buffer for the given K.
func NewSlice(k int) *Slice {
	return &Slice{Bytes: make([]byte, Size(k)), k: k}
}

// SliceFromBytes wraps an existing byte slice of length Size(k) as a
// Slice, for unpacking a ciphertext received over the wire.
func SliceFromBytes(k int, b []byte) *Slice {
	return &Slice{Bytes: b, k: k}
}

// Pack compresses (b, v) into the slice's backing bytes.
func (s *Slice) Pack(b *polyvec.PolyVec, v *poly.Poly) {
	dPoly, dVec := Params(s.k)
	pack(s.Bytes, b, v, dPoly, dVec)
}

// Unpack decompresses the slice's backing bytes into (b, v).
func (s *Slice) Unpack(b *polyvec.PolyVec, v *poly.Poly) {
	dPoly, dVec := Params(s.k)
	unpack(s.Bytes, b, v, dPoly, dVec)
}
