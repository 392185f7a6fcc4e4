// Package indcpa implements the Kyber IND-CPA public-key encryption
// scheme: key generation, encryption, and decryption, tying together the
// field, keccak, poly, polyvec, and ciphertext packages.
//
// Grounded on _examples/Yawning-kyber/indcpa.go for the overall shape
// (pack/unpack helpers plus keypair/encrypt/decrypt orchestrating them),
// reworked onto the final ML-KEM parameters and the generic-matrix
// expansion pattern from _examples/original_source/src/indcpa/pke.rs.
package indcpa

import (
	"github.com/kammoh/krystals/ciphertext"
	"github.com/kammoh/krystals/field"
	"github.com/kammoh/krystals/keccak"
	"github.com/kammoh/krystals/poly"
	"github.com/kammoh/krystals/polyvec"
)

// SymBytes is the size, in bytes, of seeds, coins, and messages.
const SymBytes = poly.SymBytes

// Etas returns the centered-binomial-distribution noise parameters
// (eta1, eta2) for the given K. K=2 draws its secret and error vectors
// from a wider distribution (eta1=3) than K=3 and K=4 (eta1=2); eta2,
// used for the ciphertext noise terms, is always 2.
func Etas(k int) (eta1, eta2 int) {
	if k == 2 {
		return 3, 2
	}
	return 2, 2
}

// PublicKey is a K-polynomial vector (in the NTT domain) plus the 32-byte
// public seed that generated the uniform matrix it was derived from.
type PublicKey struct {
	T    *polyvec.PolyVec
	Seed [SymBytes]byte
}

// SecretKey is a K-polynomial vector (in the NTT domain).
type SecretKey struct {
	S *polyvec.PolyVec
}

// genMatrixRow expands row `row` of the uniform matrix A (or A^T) from
// publicSeed.
func genMatrixRow(k int, publicSeed []byte, row int, transposed bool) *polyvec.PolyVec {
	v := polyvec.New(k)
	v.UniformMatrixRow(publicSeed, row, transposed)
	return v
}

// KeyPair runs Kyber IND-CPA keygen for the given K and 32-byte entropy.
func KeyPair(k int, entropy []byte) (*PublicKey, *SecretKey) {
	eta1, _ := Etas(k)

	seeds := keccak.Sum512(entropy)
	publicSeed, noiseSeed := seeds[:SymBytes], seeds[SymBytes:]

	s := polyvec.New(k)
	s.NoiseVector(noiseSeed, 0, eta1)
	e := polyvec.New(k)
	e.NoiseVector(noiseSeed, byte(k), eta1)

	s.NTT()
	s.Reduce()
	e.NTT()

	t := polyvec.New(k)
	for row := 0; row < k; row++ {
		aRow := genMatrixRow(k, publicSeed, row, false)
		polyvec.BasemulAcc(&t.Polys[row], aRow, s)
		// BasemulAcc leaves a factor R^-1; lift back to A*s before adding e.
		for i := range t.Polys[row].Coeffs {
			t.Polys[row].Coeffs[i] = field.KyberMulMont(t.Polys[row].Coeffs[i], field.KyberMontR2)
		}
	}
	t.Add(t, e)
	t.Reduce()

	pk := &PublicKey{T: t}
	copy(pk.Seed[:], publicSeed)
	sk := &SecretKey{S: s}

	return pk, sk
}

// Encrypt runs Kyber IND-CPA encryption.
func Encrypt(k int, msg, coins []byte, pk *PublicKey) []byte {
	eta1, eta2 := Etas(k)

	r := polyvec.New(k)
	r.NoiseVector(coins, 0, eta1)
	r.NTT()
	r.Reduce()

	u := polyvec.New(k)
	for row := 0; row < k; row++ {
		atRow := genMatrixRow(k, pk.Seed[:], row, true)
		polyvec.BasemulAcc(&u.Polys[row], atRow, r)
	}
	u.InvNTT()

	e1 := polyvec.New(k)
	e1.NoiseVector(coins, byte(k), eta2)
	u.Add(u, e1)
	u.Reduce()

	var v poly.Poly
	polyvec.BasemulAcc(&v, pk.T, r)
	v.InvNTT()

	var e2 poly.Poly
	e2.GetNoise(coins, byte(2*k), eta2)

	var encoded poly.Poly
	encoded.FromMsg(msg)

	v.Add(&v, &e2)
	v.Add(&v, &encoded)
	v.Reduce()

	ct := ciphertext.NewSlice(k)
	ct.Pack(u, &v)

	return ct.Bytes
}

// Decrypt runs Kyber IND-CPA decryption.
func Decrypt(k int, ct []byte, sk *SecretKey) []byte {
	b := polyvec.New(k)
	var v poly.Poly

	ciphertext.SliceFromBytes(k, ct).Unpack(b, &v)

	b.NTT()

	var m poly.Poly
	polyvec.BasemulAcc(&m, sk.S, b)
	m.InvNTT()

	m.Sub(&m, &v)
	m.Reduce()

	msg := make([]byte, SymBytes)
	m.ToMsg(msg)
	return msg
}
