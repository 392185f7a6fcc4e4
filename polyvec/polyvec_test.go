package polyvec

import (
	"math/rand"
	"testing"

	"github.com/kammoh/krystals/field"
	"github.com/kammoh/krystals/poly"
	"github.com/stretchr/testify/require"
)

func randomVec(r *rand.Rand, k int) *PolyVec {
	v := New(k)
	for i := range v.Polys {
		for j := range v.Polys[i].Coeffs {
			v.Polys[i].Coeffs[j] = field.Kyber(r.Intn(field.KyberQ))
		}
	}
	return v
}

// TestSerializationRoundTrip is property P7 at the vector level.
func TestSerializationRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, k := range []int{2, 3, 4} {
		v := randomVec(r, k)
		for i := range v.Polys {
			for j := range v.Polys[i].Coeffs {
				v.Polys[i].Coeffs[j] = v.Polys[i].Coeffs[j].Freeze()
			}
		}

		buf := make([]byte, k*PolyBytes)
		v.ToBytes(buf)

		got := New(k)
		got.FromBytes(buf)

		require.Equal(t, v.Polys, got.Polys)
	}
}

// TestUniformMatrixRowTransposeAgreement checks that row `i`, col `j` of
// A^T equals row `j`, col `i` of A, per the (i,j)/(j,i) nonce convention
// used to expand the two views of the same matrix.
func TestUniformMatrixRowTransposeAgreement(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i * 3)
	}

	k := 3
	var a, at [3]*PolyVec
	for i := 0; i < k; i++ {
		a[i] = New(k)
		a[i].UniformMatrixRow(seed, i, false)
		at[i] = New(k)
		at[i].UniformMatrixRow(seed, i, true)
	}

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			require.Equal(t, a[i].Polys[j].Coeffs, at[j].Polys[i].Coeffs, "A[%d][%d] vs A^T[%d][%d]", i, j, j, i)
		}
	}
}

// TestBasemulAccMatchesNaive checks BasemulAcc against an independent
// component-wise accumulation using the same PointwiseMul primitive.
func TestBasemulAccMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	k := 3
	a := randomVec(r, k)
	b := randomVec(r, k)

	var got poly.Poly
	BasemulAcc(&got, a, b)

	var want, tmp poly.Poly
	want.PointwiseMul(&a.Polys[0], &b.Polys[0])
	for i := 1; i < k; i++ {
		tmp.PointwiseMul(&a.Polys[i], &b.Polys[i])
		want.Add(&want, &tmp)
	}
	want.Reduce()

	require.Equal(t, want.Coeffs, got.Coeffs)
}

// TestNoiseVectorDeterministic is S4's determinism requirement: drawing a
// noise vector twice from the same seed and nonce reproduces the same
// coefficients, and a different nonce reproduces different ones.
func TestNoiseVectorDeterministic(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i * 5)
	}

	k, eta := 3, 2

	v1 := New(k)
	v1.NoiseVector(seed, 0, eta)

	v2 := New(k)
	v2.NoiseVector(seed, 0, eta)

	require.Equal(t, v1.Polys, v2.Polys)

	v3 := New(k)
	v3.NoiseVector(seed, 1, eta)

	require.NotEqual(t, v1.Polys, v3.Polys)
}
