// Package poly implements the Kyber polynomial ring Z_q1[X]/(X^256+1):
// NTT/inverse NTT, pointwise multiplication, reduction, uniform and
// centered-binomial sampling, (de)serialization, message encoding, and
// coefficient compression.
//
// Grounded on _examples/Yawning-kyber/{poly,ntt,cbd}.go for structure (the
// layer-based NTT loop, the CBD bit-trick shape) and on
// _examples/original_source/src/poly/kyber.rs for the final ML-KEM
// constants and exact bit-packing formulas the teacher's round-1 Kyber
// code predates (q=3329, 12-bit serialization, eta in {2,3}).
package poly

import (
	"github.com/kammoh/krystals/field"
	"github.com/kammoh/krystals/keccak"
)

// N is the number of coefficients in a Kyber polynomial.
const N = 256

// SymBytes is the size, in bytes, of a seed, a noise seed, and a message.
const SymBytes = 32

// Poly is an element of R_q = Z_q[X]/(X^N+1), represented as
// coeffs[0] + X*coeffs[1] + ... + X^(N-1)*coeffs[N-1]. It carries an
// implicit domain (normal vs NTT) that the caller must track.
type Poly struct {
	Coeffs [N]field.Kyber
}

// zetas holds the bit-reversed powers of the primitive 256th root of unity
// 17, lifted into Montgomery form. Computed at init time (rather than
// transcribed as a literal table) so the ring's generator is the only
// magic number in the file, mirroring original_source's const-evaluated
// ZETAS table.
var zetas [128]field.Kyber

func bitrev7(x int) int {
	var r int
	for i := 0; i < 7; i++ {
		r |= ((x >> uint(i)) & 1) << uint(6-i)
	}
	return r
}

func init() {
	const rootOfUnity = 17

	var powers [128]int32
	powers[0] = 1
	for i := 1; i < 128; i++ {
		powers[i] = (powers[i-1] * rootOfUnity) % field.KyberQ
	}

	for i := 0; i < 128; i++ {
		v := powers[bitrev7(i)]
		if v > field.KyberQ/2 {
			v -= field.KyberQ
		}
		// Lift into Montgomery domain: fqmul(v, R^2) = v*R mod q.
		zetas[i] = field.KyberMulMont(field.Kyber(v), field.KyberMontR2)
	}
}

// Add sets p := a+b, Barrett-reducing each coefficient.
func (p *Poly) Add(a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = a.Coeffs[i].Add(b.Coeffs[i]).Reduce()
	}
}

// Sub sets p := a-b, Barrett-reducing each coefficient.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p.Coeffs {
		p.Coeffs[i] = a.Coeffs[i].Sub(b.Coeffs[i]).Reduce()
	}
}

// Reduce Barrett-reduces every coefficient into canonical range.
func (p *Poly) Reduce() {
	for i := range p.Coeffs {
		p.Coeffs[i] = p.Coeffs[i].Reduce()
	}
}

// NTT computes the Cooley-Tukey decimation-in-time NTT in place. Input is
// assumed in normal order; output is in bit-reversed order, and the
// transform stops at gap length 2, leaving the ring factored into degree-2
// blocks (Kyber's X^2-zeta irreducibles do not split further over Z_q).
func (p *Poly) NTT() {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := field.KyberMulMont(zeta, p.Coeffs[j+length])
				p.Coeffs[j+length] = p.Coeffs[j].Sub(t)
				p.Coeffs[j] = p.Coeffs[j].Add(t)
			}
		}
	}
}

// invNTTScale is R^2/128 mod q, the final per-coefficient scale factor
// inverse NTT applies: it cancels the factor 128 the seven butterfly
// layers accumulate and leaves one factor of R.
const invNTTScale = 1441

// InvNTT computes the inverse NTT in place, mirroring NTT's layering with
// the inverted butterfly, followed by the closing scale-by-invNTTScale
// pass. The output is left in Montgomery form: InvNTT(NTT(p)) = p*R mod q.
func (p *Poly) InvNTT() {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < N; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p.Coeffs[j]
				p.Coeffs[j] = t.Add(p.Coeffs[j+length]).Reduce()
				p.Coeffs[j+length] = p.Coeffs[j+length].Sub(t)
				p.Coeffs[j+length] = field.KyberMulMont(zeta, p.Coeffs[j+length])
			}
		}
	}
	for i := range p.Coeffs {
		p.Coeffs[i] = field.KyberMulMont(p.Coeffs[i], invNTTScale)
	}
}

// basemul computes (r0 + r1*X) := (a0 + a1*X)*(b0 + b1*X) mod (X^2 - zeta)
// in the Montgomery domain.
func basemul(a0, a1, b0, b1, zeta field.Kyber) (r0, r1 field.Kyber) {
	r0 = field.KyberMulMont(a1, b1)
	r0 = field.KyberMulMont(r0, zeta)
	r0 = r0.Add(field.KyberMulMont(a0, b0))
	r1 = field.KyberMulMont(a0, b1)
	r1 = r1.Add(field.KyberMulMont(a1, b0))
	return
}

// PointwiseMul sets p := a*b coefficientwise in the NTT domain, using a
// base-case 2x2 schoolbook: each adjacent pair is a degree-2 block over
// X^2-zeta or X^2+zeta, alternating sign from zetas[64+i].
func (p *Poly) PointwiseMul(a, b *Poly) {
	for i := 0; i < 64; i++ {
		zeta := zetas[64+i]
		p.Coeffs[4*i+0], p.Coeffs[4*i+1] = basemul(
			a.Coeffs[4*i+0], a.Coeffs[4*i+1], b.Coeffs[4*i+0], b.Coeffs[4*i+1], zeta)
		p.Coeffs[4*i+2], p.Coeffs[4*i+3] = basemul(
			a.Coeffs[4*i+2], a.Coeffs[4*i+3], b.Coeffs[4*i+2], b.Coeffs[4*i+3], -zeta)
	}
}

// ToBytes serializes p into 3*(N/2) = 384 bytes: 128 groups of 3 bytes,
// each a pair of 12-bit little-endian positive coefficients.
func (p *Poly) ToBytes(r []byte) {
	for i := 0; i < N/2; i++ {
		t0 := uint16(p.Coeffs[2*i+0].Freeze())
		t1 := uint16(p.Coeffs[2*i+1].Freeze())
		r[3*i+0] = byte(t0)
		r[3*i+1] = byte((t0 >> 8) | (t1 << 4))
		r[3*i+2] = byte(t1 >> 4)
	}
}

// FromBytes deserializes p from the ToBytes layout.
func (p *Poly) FromBytes(a []byte) {
	for i := 0; i < N/2; i++ {
		t0 := uint16(a[3*i+0]) | (uint16(a[3*i+1]) << 8)
		t1 := uint16(a[3*i+1])>>4 | (uint16(a[3*i+2]) << 4)
		p.Coeffs[2*i+0] = field.Kyber(t0 & 0xfff)
		p.Coeffs[2*i+1] = field.Kyber(t1 & 0xfff)
	}
}

// FromMsg encodes a 32-byte message into a polynomial: bit j of byte i
// selects ceil(q/2) if set, else 0.
func (p *Poly) FromMsg(msg []byte) {
	const halfQ = (field.KyberQ + 1) / 2
	for i, v := range msg[:SymBytes] {
		for j := 0; j < 8; j++ {
			mask := -field.Kyber((v >> uint(j)) & 1)
			p.Coeffs[8*i+j] = mask & halfQ
		}
	}
}

// ToMsg decodes p back into a 32-byte message, the approximate inverse of
// FromMsg: each coefficient is compressed to one bit.
func (p *Poly) ToMsg(msg []byte) {
	for i := 0; i < SymBytes; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			x := uint32(p.Coeffs[8*i+j].Freeze())
			t := ((x << 1) + field.KyberQ/2) / field.KyberQ & 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// GetNoise samples p from the centered binomial distribution CBD_eta,
// driven by SHAKE256(seed || nonce).
func (p *Poly) GetNoise(seed []byte, nonce byte, eta int) {
	buf := make([]byte, eta*N/4)
	s := keccak.Shake256AbsorbSeedNonce(seed, nonce)
	s.Read(buf)

	switch eta {
	case 2:
		p.cbd2(buf)
	case 3:
		p.cbd3(buf)
	default:
		panic("poly: eta must be 2 or 3")
	}
}

func load32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func load24LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// cbd2 samples from CBD_2 using the parity-of-adjacent-bit-columns trick:
// each 32-bit little-endian word yields eight coefficients.
func (p *Poly) cbd2(buf []byte) {
	for i := 0; i < N/8; i++ {
		t := load32LE(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := field.Kyber((d >> uint(4*j+0)) & 0x3)
			b := field.Kyber((d >> uint(4*j+2)) & 0x3)
			p.Coeffs[8*i+j] = a.Sub(b)
		}
	}
}

// cbd3 samples from CBD_3 using a 24-bit loader plus a count-three-
// adjacent-bit-columns trick.
func (p *Poly) cbd3(buf []byte) {
	for i := 0; i < N/4; i++ {
		t := load24LE(buf[3*i:])
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		for j := 0; j < 4; j++ {
			a := field.Kyber((d >> uint(6*j+0)) & 0x7)
			b := field.Kyber((d >> uint(6*j+3)) & 0x7)
			p.Coeffs[4*i+j] = a.Sub(b)
		}
	}
}

// Uniform fills p by rejection-sampling SHAKE128(seed || i || j) output:
// three bytes at a time yield two 12-bit candidates, each accepted iff
// strictly less than q.
func (p *Poly) Uniform(seed []byte, i, j byte) {
	const blockBytes = keccak.RateBytesShake128

	xof := keccak.Shake128AbsorbSeedNonce(seed, i, j)

	buf := make([]byte, blockBytes)
	pos, count := blockBytes, 0
	for count < N {
		if pos+3 > len(buf) {
			xof.Read(buf)
			pos = 0
		}
		d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0xf) << 8)
		d2 := uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)
		pos += 3

		if d1 < field.KyberQ && count < N {
			p.Coeffs[count] = field.Kyber(d1)
			count++
		}
		if d2 < field.KyberQ && count < N {
			p.Coeffs[count] = field.Kyber(d2)
			count++
		}
	}
}
