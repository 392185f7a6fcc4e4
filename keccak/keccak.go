// Package keccak implements the Keccak-f[1600] permutation and the FIPS 202
// sponge modes (SHA3-256, SHA3-512, SHAKE128, SHAKE256) this module's key
// generation and sampling routines are built on, plus a specialized one-block absorb
// for the 32-byte-seed-plus-nonce pattern Kyber's matrix and noise
// expansion use.
//
// Grounded on _examples/original_source/src/keccak/keccak_f1600.rs (theta/
// rho_pi/chi/iota structure and its two-lane row buffer for chi, needed
// since chi reads each lane after its row neighbors have already been
// overwritten) and on the standard round-constant/rotation tables
// confirmed against _examples/other_examples' golang.org/x/crypto/sha3
// keccakF1600.
package keccak

// rc holds the 24 round constants for iota.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// piLane[i] is the destination lane index for the rho+pi step applied to
// source lane order 1, piLane[0], piLane[1], ...
var piLane = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}

// rotc[i] is the rotation amount paired with piLane[i].
var rotc = [24]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}

func rotl64(x uint64, n int) uint64 {
	return x<<uint(n) | x>>uint(64-n)
}

// permute applies the 24-round Keccak-f[1600] permutation in place to a
// 5x5 matrix of 64-bit lanes stored row-major (lane x+5y).
func permute(a *[25]uint64) {
	var bc [5]uint64

	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			bc[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			t := bc[(x+4)%5] ^ rotl64(bc[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= t
			}
		}

		// rho and pi, combined: walk the permutation cycle starting at
		// lane 1, rotating as each lane is relocated.
		t := a[1]
		for x := 0; x < 24; x++ {
			j := piLane[x]
			bc[0] = a[j]
			a[j] = rotl64(t, rotc[x])
			t = bc[0]
		}

		// chi: each row updated from a copy of the whole five-lane
		// pre-image row so in-place mutation cannot corrupt later
		// reads in the same row.
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			copy(row[:], a[y:y+5])
			for x := 0; x < 5; x++ {
				a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// iota
		a[0] ^= rc[round]
	}
}
