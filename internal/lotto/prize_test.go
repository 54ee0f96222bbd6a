package lotto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suapapa/lotto645/internal/lotto"
)

func TestRankOf(t *testing.T) {
	tests := []struct {
		matches int
		bonus   bool
		want    lotto.Rank
	}{
		{6, false, lotto.RankFirst},
		{5, true, lotto.RankSecond},
		{5, false, lotto.RankThird},
		{4, true, lotto.RankFourth},
		{3, false, lotto.RankFifth},
		{2, true, lotto.RankNone},
		{0, false, lotto.RankNone},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, lotto.RankOf(tt.matches, tt.bonus), "%d matches, bonus %v", tt.matches, tt.bonus)
	}
}

func TestCheckDraw(t *testing.T) {
	draw := lotto.Winning{1, 10, 20, 30, 40, 45}
	batch := lotto.Batch{
		{1, 10, 20, 30, 40, 45},
		{1, 10, 20, 30, 40, 7},
		{1, 10, 20, 30, 40, 8},
		{2, 3, 4, 5, 6, 7},
	}
	for i := range batch {
		ns, err := lotto.NewNumberSet(batch[i][:])
		require.NoError(t, err)
		batch[i] = ns
	}

	results := lotto.CheckDraw(batch, draw, 7)
	require.Len(t, results, 4)
	require.Equal(t, lotto.RankFirst, results[0].Rank)
	require.Equal(t, lotto.RankSecond, results[1].Rank)
	require.True(t, results[1].BonusHit)
	require.Equal(t, lotto.RankThird, results[2].Rank)
	require.Equal(t, lotto.RankNone, results[3].Rank)
	require.True(t, results[3].BonusHit)
	require.Equal(t, 4, results[3].Position)

	require.Equal(t, lotto.RankFirst, lotto.BestRank(results))
	require.Equal(t, lotto.RankThird, lotto.BestRank(results[2:3]))
	require.Equal(t, lotto.RankNone, lotto.BestRank(results[3:]))
	require.Equal(t, "2nd", lotto.RankSecond.String())
	require.Equal(t, "none", lotto.RankNone.String())
}
