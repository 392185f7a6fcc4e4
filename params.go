// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"github.com/kammoh/krystals/ciphertext"
	"github.com/kammoh/krystals/indcpa"
	"github.com/kammoh/krystals/polyvec"
)

const (
	// SymSize is the size of seeds, coins, and messages in bytes.
	SymSize = indcpa.SymBytes
)

var (
	// Kyber512 is the Kyber-512 parameter set (K=2), which aims to provide
	// security equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2)

	// Kyber768 is the Kyber-768 parameter set (K=3), which aims to provide
	// security equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3)

	// Kyber1024 is the Kyber-1024 parameter set (K=4), which aims to
	// provide security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4)
)

// ParameterSet is a Kyber parameter set, selecting the module rank K and
// the noise parameters that go with it.
type ParameterSet struct {
	name string
	k    int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k int) *ParameterSet {
	if k < 2 || k > 4 {
		panic("kyber: k must be in {2,3,4}")
	}

	var p ParameterSet
	p.name = name
	p.k = k

	p.publicKeySize = k*polyvec.PolyBytes + SymSize
	p.secretKeySize = k * polyvec.PolyBytes
	p.cipherTextSize = ciphertext.Size(k)

	return &p
}
