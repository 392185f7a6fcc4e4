// Package field implements the scalar finite-field arithmetic shared by the
// Kyber and Dilithium rings: Montgomery and Barrett reduction, and the
// branch-free primitives every higher layer (NTT, pointwise multiplication,
// compression) is built from.
//
// Kyber and Dilithium use different moduli, different Montgomery radices,
// and different reduction bounds, so the two rings are two concrete,
// independent types (Kyber, Dilithium) rather than one type parameterized
// over a shared field trait/interface: nothing downstream (poly.Poly vs.
// poly.DilithiumPoly, polyvec.PolyVec) is itself written generically over
// the ring, so a shared interface here would have no caller to satisfy it.
//
// Grounded on _examples/original_source/src/field/{mod,kyber,dilithium}.rs
// for the exact Montgomery/Barrett/reduce32/caddq formulas; the general
// reduction *technique* (not the constants, which are round-1 and wrong for
// the final parameter sets) is grounded on _examples/Yawning-kyber/reduce.go.
package field
