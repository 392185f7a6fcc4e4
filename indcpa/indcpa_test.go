package indcpa

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// TestEncryptDecryptRoundTrip checks decrypt(encrypt(msg, pk, coins), sk)
// == msg across many random trials for every K.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, k := range []int{2, 3, 4} {
		k := k
		t.Run(kName(k), func(t *testing.T) {
			const rounds = 50
			for i := 0; i < rounds; i++ {
				entropy := randomBytes(t, SymBytes)
				pk, sk := KeyPair(k, entropy)

				msg := randomBytes(t, SymBytes)
				coins := randomBytes(t, SymBytes)

				ct := Encrypt(k, msg, coins, pk)
				require.Len(t, ct, expectedCipherTextLen(k))

				got := Decrypt(k, ct, sk)
				require.Equal(t, msg, got)
			}
		})
	}
}

// TestKeyPairDeterministic checks that identical entropy produces
// identical keys, since keygen is a pure function of its entropy input.
func TestKeyPairDeterministic(t *testing.T) {
	entropy := make([]byte, SymBytes)
	pk1, sk1 := KeyPair(2, entropy)
	pk2, sk2 := KeyPair(2, entropy)

	require.Equal(t, pk1.Seed, pk2.Seed)
	require.Equal(t, pk1.T.Polys, pk2.T.Polys)
	require.Equal(t, sk1.S.Polys, sk2.S.Polys)
}

// TestEtasPerK checks the per-K noise parameter table: K=2 uses the wider
// eta1=3, K=3 and K=4 use eta1=2; eta2 is always 2.
func TestEtasPerK(t *testing.T) {
	eta1, eta2 := Etas(2)
	require.Equal(t, 3, eta1)
	require.Equal(t, 2, eta2)

	for _, k := range []int{3, 4} {
		eta1, eta2 := Etas(k)
		require.Equal(t, 2, eta1)
		require.Equal(t, 2, eta2)
	}
}

func kName(k int) string {
	switch k {
	case 2:
		return "K2"
	case 3:
		return "K3"
	case 4:
		return "K4"
	}
	return "?"
}

func expectedCipherTextLen(k int) int {
	switch k {
	case 2:
		return 768
	case 3:
		return 1088
	case 4:
		return 1568
	}
	return 0
}
