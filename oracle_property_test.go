package bvrs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomizedOracleAgreement implements spec.md §8 scenario 6: for 100
// random B at each of the named sizes, rank1 must agree with the linear
// oracle at sampled positions, and select1 must agree with the linear
// oracle for sampled k at or below B's popcount.
func TestRandomizedOracleAgreement(t *testing.T) {
	sizes := []int{64, 256, 1024, 40960, 51200, 61440}
	const trialsPerSize = 100

	rng := rand.New(rand.NewSource(2024))

	for _, n := range sizes {
		for trial := 0; trial < trialsPerSize; trial++ {
			bv := NewBitVector(n)
			for i := 0; i < n; i++ {
				if rng.Intn(2) == 1 {
					require.NoError(t, bv.Set(i))
				}
			}

			r := NewRankIndex(bv)
			sel := NewSelectSupport(r)

			sampleIdx := []int{0, n / 4, n / 2, n - n/4, n - 1, rng.Intn(n)}
			for _, i := range sampleIdx {
				if i < 0 || i >= n {
					continue
				}
				assert.Equalf(t, dummyRank1(bv, i), r.Rank1(i), "n=%d trial=%d i=%d", n, trial, i)
			}

			popcount := r.Rank1(n - 1)
			sampleK := []int{1, popcount / 4, popcount / 2, popcount}
			if popcount > 0 {
				sampleK = append(sampleK, 1+rng.Intn(popcount))
			}
			for _, k := range sampleK {
				if k < 1 || k > popcount {
					continue
				}
				want, wantOK := dummySelect1(bv, k)
				got, gotOK := sel.Select1(k)
				assert.Equalf(t, wantOK, gotOK, "n=%d trial=%d k=%d", n, trial, k)
				if wantOK {
					assert.Equalf(t, want, got, "n=%d trial=%d k=%d", n, trial, k)
				}
			}
		}
	}
}
