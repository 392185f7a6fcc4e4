package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRoundTrip(t *testing.T, p *ParameterSet) {
	pk, sk, err := p.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	require.Len(t, pk.Bytes(), p.PublicKeySize())
	require.Len(t, sk.Bytes(), p.PrivateKeySize())

	msg := make([]byte, SymSize)
	_, err = rand.Read(msg)
	require.NoError(t, err)

	ct, err := pk.Encrypt(rand.Reader, msg)
	require.NoError(t, err)
	require.Len(t, ct, p.CipherTextSize())

	got, err := sk.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestKyber512RoundTrip(t *testing.T) {
	testRoundTrip(t, Kyber512)
}

func TestKyber768RoundTrip(t *testing.T) {
	testRoundTrip(t, Kyber768)
}

func TestKyber1024RoundTrip(t *testing.T) {
	testRoundTrip(t, Kyber1024)
}

func TestPublicKeySerializationRoundTrip(t *testing.T) {
	pk, _, err := Kyber768.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	b := pk.Bytes()
	got, err := Kyber768.PublicKeyFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, b, got.Bytes())
}

func TestPrivateKeySerializationRoundTrip(t *testing.T) {
	pk, sk, err := Kyber768.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	b := sk.Bytes()
	got, err := Kyber768.PrivateKeyFromBytes(b)
	require.NoError(t, err)
	got.PublicKey = *pk

	msg := make([]byte, SymSize)
	_, err = rand.Read(msg)
	require.NoError(t, err)

	ct, err := pk.Encrypt(rand.Reader, msg)
	require.NoError(t, err)

	decrypted, err := got.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, msg, decrypted)
}

func TestInvalidSizesRejected(t *testing.T) {
	_, err := Kyber512.PublicKeyFromBytes(make([]byte, 1))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = Kyber512.PrivateKeyFromBytes(make([]byte, 1))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	pk, sk, err := Kyber512.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	_, err = pk.Encrypt(rand.Reader, make([]byte, 1))
	require.ErrorIs(t, err, ErrInvalidMessageSize)

	_, err = sk.Decrypt(make([]byte, 1))
	require.ErrorIs(t, err, ErrInvalidCipherTextSize)
}
