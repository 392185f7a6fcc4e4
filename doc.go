// doc.go - Kyber godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the Kyber IND-CPA-secure public-key encryption
// scheme, based on the hardness of the learning-with-errors (LWE) problem
// over module lattices, as standardized in NIST FIPS 203 (ML-KEM).
//
// This package implements the encryption primitive only: GenerateKeyPair,
// Encrypt, and Decrypt operate directly on the module-LWE PKE and do not
// layer a Fujisaki-Okamoto transform on top to build a CCA2-secure KEM.
// Callers that need a full key-encapsulation mechanism, or the Kyber.AKE /
// Kyber.UAKE authenticated key exchanges, need to supply that transform
// themselves; this package gives them the primitive to build it on top of.
//
// The underlying field, NTT, and Keccak substrate (the field and keccak
// packages) is shared with CRYSTALS-Dilithium, which uses the same
// module-lattice machinery for its signature scheme.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml.
package kyber
