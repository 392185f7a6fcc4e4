package poly

import "github.com/kammoh/krystals/field"

// DilithiumN is the number of coefficients in a Dilithium polynomial.
const DilithiumN = 256

// DilithiumPoly is shared NTT/field substrate only: no signature scheme
// is built on it here, but it uses the same layer-based transform shape
// as the Kyber ring and has its own reduction, round-trip, and pointwise
// multiplication property tests.
//
// Grounded on _examples/original_source/src/{field/dilithium.rs,poly/mod.rs}:
// unlike Kyber, Dilithium's NTT is "complete" (runs all the way to gap
// length 1 rather than stopping at 2).
type DilithiumPoly struct {
	Coeffs [DilithiumN]field.Dilithium
}

var dilithiumZetas [256]field.Dilithium

func bitrev8(x int) int {
	var r int
	for i := 0; i < 8; i++ {
		r |= ((x >> uint(i)) & 1) << uint(7-i)
	}
	return r
}

func init() {
	const rootOfUnity = 1753

	var powers [256]int64
	powers[0] = 1
	for i := 1; i < 256; i++ {
		powers[i] = (powers[i-1] * rootOfUnity) % field.DilithiumQ
	}

	for i := 0; i < 256; i++ {
		v := powers[bitrev8(i)]
		if v > field.DilithiumQ/2 {
			v -= field.DilithiumQ
		}
		dilithiumZetas[i] = field.DilithiumMulMont(field.Dilithium(v), dilithiumMontR2)
	}
}

// dilithiumMontR2 is (2^32)^2 mod q, used to lift values into Montgomery
// domain via a single Montgomery multiplication.
const dilithiumMontR2 = 2365951

// NTT computes the complete Cooley-Tukey NTT in place, running every
// layer down to gap length 1 (unlike Kyber's degree-2-stopping NTT).
func (p *DilithiumPoly) NTT() {
	k := 1
	for length := 128; length >= 1; length /= 2 {
		for start := 0; start < DilithiumN; start += 2 * length {
			zeta := dilithiumZetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := field.DilithiumMulMont(zeta, p.Coeffs[j+length])
				p.Coeffs[j+length] = p.Coeffs[j].Sub(t)
				p.Coeffs[j] = p.Coeffs[j].Add(t)
			}
		}
	}
}

// invNTTScaleDilithium is the Montgomery correction InvNTT's final pass
// applies, matching the reference Dilithium constant.
const invNTTScaleDilithium = 41978

// InvNTT computes the complete inverse NTT in place. The output is left in
// Montgomery form: InvNTT(NTT(p)) = p*2^32 mod q.
func (p *DilithiumPoly) InvNTT() {
	k := 255
	for length := 1; length <= 128; length *= 2 {
		for start := 0; start < DilithiumN; start += 2 * length {
			zeta := -dilithiumZetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p.Coeffs[j]
				p.Coeffs[j] = t.Add(p.Coeffs[j+length])
				p.Coeffs[j+length] = t.Sub(p.Coeffs[j+length])
				p.Coeffs[j+length] = field.DilithiumMulMont(zeta, p.Coeffs[j+length])
			}
		}
	}
	for i := range p.Coeffs {
		p.Coeffs[i] = field.DilithiumMulMont(p.Coeffs[i], invNTTScaleDilithium)
	}
}

// PointwiseMul sets p := a*b coefficientwise in the NTT domain: a plain
// scalar Montgomery multiplication, unlike Kyber's 2x2 base case.
func (p *DilithiumPoly) PointwiseMul(a, b *DilithiumPoly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = field.DilithiumMulMont(a.Coeffs[i], b.Coeffs[i])
	}
}

// Reduce brings every coefficient into canonical range.
func (p *DilithiumPoly) Reduce() {
	for i := range p.Coeffs {
		p.Coeffs[i] = p.Coeffs[i].Reduce()
	}
}
