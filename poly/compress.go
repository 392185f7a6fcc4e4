package poly

import "github.com/kammoh/krystals/field"

// CompressedSize returns the number of bytes Compress(d) writes for this
// polynomial's N=256 coefficients.
func CompressedSize(d int) int {
	return (N * d) / 8
}

// compress maps one canonical-range coefficient to a d-bit lossy
// representative: floor((2^d * caddq(x) + q/2) / q) mod 2^d.
func compress(x field.Kyber, d int) uint32 {
	u := uint32(x.Freeze())
	return ((u << uint(d)) + field.KyberQ/2) / field.KyberQ & ((1 << uint(d)) - 1)
}

// decompress is the approximate inverse of compress: floor((y*q +
// 2^(d-1)) / 2^d).
func decompress(y uint32, d int) field.Kyber {
	return field.Kyber((y*field.KyberQ + (1 << uint(d-1))) >> uint(d))
}

// Compress bit-packs p's coefficients at d bits each into r, for
// d in {4,5,10,11}; d=10 packs four coefficients into 5 bytes per group,
// and d=4/5/11 pack eight coefficients into d bytes per group.
func (p *Poly) Compress(r []byte, d int) {
	switch d {
	case 4:
		for i := 0; i < N/8; i++ {
			var t [8]byte
			for j := 0; j < 8; j++ {
				t[j] = byte(compress(p.Coeffs[8*i+j], 4))
			}
			r[4*i+0] = t[0] | t[1]<<4
			r[4*i+1] = t[2] | t[3]<<4
			r[4*i+2] = t[4] | t[5]<<4
			r[4*i+3] = t[6] | t[7]<<4
		}
	case 5:
		for i := 0; i < N/8; i++ {
			var t [8]byte
			for j := 0; j < 8; j++ {
				t[j] = byte(compress(p.Coeffs[8*i+j], 5))
			}
			r[5*i+0] = t[0] | t[1]<<5
			r[5*i+1] = (t[1] >> 3) | t[2]<<2 | t[3]<<7
			r[5*i+2] = (t[3] >> 1) | t[4]<<4
			r[5*i+3] = (t[4] >> 4) | t[5]<<1 | t[6]<<6
			r[5*i+4] = (t[6] >> 2) | t[7]<<3
		}
	case 10:
		for i := 0; i < N/4; i++ {
			var t [4]uint16
			for j := 0; j < 4; j++ {
				t[j] = uint16(compress(p.Coeffs[4*i+j], 10))
			}
			r[5*i+0] = byte(t[0])
			r[5*i+1] = byte((t[0] >> 8) | (t[1] << 2))
			r[5*i+2] = byte((t[1] >> 6) | (t[2] << 4))
			r[5*i+3] = byte((t[2] >> 4) | (t[3] << 6))
			r[5*i+4] = byte(t[3] >> 2)
		}
	case 11:
		for i := 0; i < N/8; i++ {
			var t [8]uint16
			for j := 0; j < 8; j++ {
				t[j] = uint16(compress(p.Coeffs[8*i+j], 11))
			}
			r[11*i+0] = byte(t[0])
			r[11*i+1] = byte((t[0] >> 8) | (t[1] << 3))
			r[11*i+2] = byte((t[1] >> 5) | (t[2] << 6))
			r[11*i+3] = byte(t[2] >> 2)
			r[11*i+4] = byte((t[2] >> 10) | (t[3] << 1))
			r[11*i+5] = byte((t[3] >> 7) | (t[4] << 4))
			r[11*i+6] = byte((t[4] >> 4) | (t[5] << 7))
			r[11*i+7] = byte(t[5] >> 1)
			r[11*i+8] = byte((t[5] >> 9) | (t[6] << 2))
			r[11*i+9] = byte((t[6] >> 6) | (t[7] << 5))
			r[11*i+10] = byte(t[7] >> 3)
		}
	default:
		panic("poly: unsupported compression width")
	}
}

// Decompress is the approximate inverse of Compress.
func (p *Poly) Decompress(a []byte, d int) {
	switch d {
	case 4:
		for i := 0; i < N/8; i++ {
			p.Coeffs[8*i+0] = decompress(uint32(a[4*i+0]&0xf), 4)
			p.Coeffs[8*i+1] = decompress(uint32(a[4*i+0]>>4), 4)
			p.Coeffs[8*i+2] = decompress(uint32(a[4*i+1]&0xf), 4)
			p.Coeffs[8*i+3] = decompress(uint32(a[4*i+1]>>4), 4)
			p.Coeffs[8*i+4] = decompress(uint32(a[4*i+2]&0xf), 4)
			p.Coeffs[8*i+5] = decompress(uint32(a[4*i+2]>>4), 4)
			p.Coeffs[8*i+6] = decompress(uint32(a[4*i+3]&0xf), 4)
			p.Coeffs[8*i+7] = decompress(uint32(a[4*i+3]>>4), 4)
		}
	case 5:
		for i := 0; i < N/8; i++ {
			p.Coeffs[8*i+0] = decompress(uint32(a[5*i+0]&0x1f), 5)
			p.Coeffs[8*i+1] = decompress(uint32(a[5*i+0]>>5|(a[5*i+1]&0x3)<<3), 5)
			p.Coeffs[8*i+2] = decompress(uint32((a[5*i+1]>>2)&0x1f), 5)
			p.Coeffs[8*i+3] = decompress(uint32(a[5*i+1]>>7|(a[5*i+2]&0xf)<<1), 5)
			p.Coeffs[8*i+4] = decompress(uint32(a[5*i+2]>>4|(a[5*i+3]&0x1)<<4), 5)
			p.Coeffs[8*i+5] = decompress(uint32((a[5*i+3]>>1)&0x1f), 5)
			p.Coeffs[8*i+6] = decompress(uint32(a[5*i+3]>>6|(a[5*i+4]&0x7)<<2), 5)
			p.Coeffs[8*i+7] = decompress(uint32(a[5*i+4]>>3), 5)
		}
	case 10:
		for i := 0; i < N/4; i++ {
			t0 := uint32(a[5*i+0]) | uint32(a[5*i+1])<<8
			t1 := uint32(a[5*i+1])>>2 | uint32(a[5*i+2])<<6
			t2 := uint32(a[5*i+2])>>4 | uint32(a[5*i+3])<<4
			t3 := uint32(a[5*i+3])>>6 | uint32(a[5*i+4])<<2
			p.Coeffs[4*i+0] = decompress(t0&0x3ff, 10)
			p.Coeffs[4*i+1] = decompress(t1&0x3ff, 10)
			p.Coeffs[4*i+2] = decompress(t2&0x3ff, 10)
			p.Coeffs[4*i+3] = decompress(t3&0x3ff, 10)
		}
	case 11:
		for i := 0; i < N/8; i++ {
			b := a[11*i : 11*i+11]
			t0 := uint32(b[0]) | uint32(b[1])<<8
			t1 := uint32(b[1])>>3 | uint32(b[2])<<5
			t2 := uint32(b[2])>>6 | uint32(b[3])<<2 | uint32(b[4])<<10
			t3 := uint32(b[4])>>1 | uint32(b[5])<<7
			t4 := uint32(b[5])>>4 | uint32(b[6])<<4
			t5 := uint32(b[6])>>7 | uint32(b[7])<<1 | uint32(b[8])<<9
			t6 := uint32(b[8])>>2 | uint32(b[9])<<6
			t7 := uint32(b[9])>>5 | uint32(b[10])<<3
			p.Coeffs[8*i+0] = decompress(t0&0x7ff, 11)
			p.Coeffs[8*i+1] = decompress(t1&0x7ff, 11)
			p.Coeffs[8*i+2] = decompress(t2&0x7ff, 11)
			p.Coeffs[8*i+3] = decompress(t3&0x7ff, 11)
			p.Coeffs[8*i+4] = decompress(t4&0x7ff, 11)
			p.Coeffs[8*i+5] = decompress(t5&0x7ff, 11)
			p.Coeffs[8*i+6] = decompress(t6&0x7ff, 11)
			p.Coeffs[8*i+7] = decompress(t7&0x7ff, 11)
		}
	default:
		panic("poly: unsupported compression width")
	}
}
