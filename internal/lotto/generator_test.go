package lotto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suapapa/lotto645/internal/lotto"
)

func requireValidSet(t *testing.T, ns lotto.NumberSet) {
	t.Helper()
	for i, n := range ns {
		require.GreaterOrEqual(t, n, lotto.MinNumber)
		require.LessOrEqual(t, n, lotto.MaxNumber)
		if i > 0 {
			require.Less(t, ns[i-1], n, "set %v is not strictly ascending", ns)
		}
	}
}

func TestGenerateValidCounts(t *testing.T) {
	g := lotto.NewGenerator(42)
	for count := lotto.MinSets; count <= lotto.MaxSets; count++ {
		batch, err := g.Generate(count)
		require.NoError(t, err)
		require.Len(t, batch, count)
		for _, ns := range batch {
			requireValidSet(t, ns)
		}
	}
}

func TestGenerateRejectsOutOfRangeCount(t *testing.T) {
	g := lotto.NewGenerator(1)
	for _, count := range []int{-1, 0, 11, 100} {
		batch, err := g.Generate(count)
		require.ErrorIs(t, err, lotto.ErrInvalidArgument, "count %d", count)
		require.Nil(t, batch)
	}
}

func TestPackageGenerate(t *testing.T) {
	batch, err := lotto.Generate(5)
	require.NoError(t, err)
	require.Len(t, batch, 5)
}

func TestGeneratorSeedIsReproducible(t *testing.T) {
	a, err := lotto.NewGenerator(7).Generate(10)
	require.NoError(t, err)
	b, err := lotto.NewGenerator(7).Generate(10)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := lotto.NewGenerator(8).Generate(10)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

// Each value should show up in 6/45 of all draws.
func TestDrawIsUniform(t *testing.T) {
	const draws = 8000
	g := lotto.NewGenerator(2024)

	var freq [lotto.MaxNumber + 1]int
	for range draws {
		for _, n := range g.Draw() {
			freq[n]++
		}
	}

	expected := float64(draws*lotto.PickSize) / lotto.MaxNumber
	chi2 := 0.0
	for n := lotto.MinNumber; n <= lotto.MaxNumber; n++ {
		d := float64(freq[n]) - expected
		chi2 += d * d / expected
	}
	// 44 degrees of freedom; p = 0.0001 is about 88.
	require.Less(t, chi2, 100.0, "chi-square %.2f, frequencies %v", chi2, freq[1:])
}

func TestNewNumberSet(t *testing.T) {
	ns, err := lotto.NewNumberSet([]int{45, 1, 30, 10, 40, 20})
	require.NoError(t, err)
	require.Equal(t, lotto.NumberSet{1, 10, 20, 30, 40, 45}, ns)
	require.Equal(t, "1 10 20 30 40 45", ns.String())
	require.Equal(t, "01, 10, 20, 30, 40, 45", ns.Padded(", "))
	require.True(t, ns.Contains(30))
	require.False(t, ns.Contains(31))

	bad := map[string][]int{
		"too few":      {1, 2, 3, 4, 5},
		"too many":     {1, 2, 3, 4, 5, 6, 7},
		"out of range": {0, 2, 3, 4, 5, 6},
		"above max":    {1, 2, 3, 4, 5, 46},
		"duplicate":    {1, 1, 3, 4, 5, 6},
	}
	for name, nums := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := lotto.NewNumberSet(nums)
			require.ErrorIs(t, err, lotto.ErrInvalidArgument)
		})
	}
}
