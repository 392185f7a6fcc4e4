// pke.go - Kyber IND-CPA public-key encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"

	"github.com/kammoh/krystals/indcpa"
	"github.com/kammoh/krystals/polyvec"
)

var (
	// ErrInvalidKeySize is returned when a byte serialized key is an
	// invalid size.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte serialized
	// ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")

	// ErrInvalidMessageSize is returned when a message is not exactly
	// SymSize bytes.
	ErrInvalidMessageSize = errors.New("kyber: invalid message size")
)

// PublicKey is a Kyber public key.
type PublicKey struct {
	p  *ParameterSet
	pk *indcpa.PublicKey
}

// Bytes returns the byte serialization of a PublicKey: the polynomial
// vector T (12 bits per coefficient, uncompressed) followed by the 32-byte
// matrix seed.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, pk.p.PublicKeySize())
	pk.pk.T.ToBytes(b)
	copy(b[pk.p.k*polyvec.PolyBytes:], pk.pk.Seed[:])
	return b
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.PublicKeySize() {
		return nil, ErrInvalidKeySize
	}

	t := polyvec.New(p.k)
	t.FromBytes(b)

	pk := &indcpa.PublicKey{T: t}
	copy(pk.Seed[:], b[p.k*polyvec.PolyBytes:])

	return &PublicKey{p: p, pk: pk}, nil
}

// PrivateKey is a Kyber private key.
type PrivateKey struct {
	PublicKey
	sk *indcpa.SecretKey
}

// Bytes returns the byte serialization of a PrivateKey: the uncompressed
// secret polynomial vector S.
func (sk *PrivateKey) Bytes() []byte {
	b := make([]byte, sk.PublicKey.p.PrivateKeySize())
	sk.sk.S.ToBytes(b)
	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey. The
// returned key has no embedded PublicKey; callers that need one should
// keep it alongside, as produced by GenerateKeyPair.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.PrivateKeySize() {
		return nil, ErrInvalidKeySize
	}

	s := polyvec.New(p.k)
	s.FromBytes(b)

	return &PrivateKey{
		PublicKey: PublicKey{p: p},
		sk:        &indcpa.SecretKey{S: s},
	}, nil
}

// GenerateKeyPair generates a public/private key pair for the given
// ParameterSet, drawing 32 bytes of entropy from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	var entropy [SymSize]byte
	if _, err := io.ReadFull(rng, entropy[:]); err != nil {
		return nil, nil, err
	}

	pk, sk := indcpa.KeyPair(p.k, entropy[:])

	pub := &PublicKey{p: p, pk: pk}
	priv := &PrivateKey{PublicKey: *pub, sk: sk}

	return pub, priv, nil
}

// Encrypt encrypts a SymSize-byte message under pk, drawing 32 bytes of
// encryption randomness ("coins") from rng.
func (pk *PublicKey) Encrypt(rng io.Reader, msg []byte) ([]byte, error) {
	if len(msg) != SymSize {
		return nil, ErrInvalidMessageSize
	}

	var coins [SymSize]byte
	if _, err := io.ReadFull(rng, coins[:]); err != nil {
		return nil, err
	}

	return indcpa.Encrypt(pk.p.k, msg, coins[:], pk.pk), nil
}

// Decrypt decrypts a ciphertext produced by (*PublicKey).Encrypt.
func (sk *PrivateKey) Decrypt(cipherText []byte) ([]byte, error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	return indcpa.Decrypt(p.k, cipherText, sk.sk), nil
}
