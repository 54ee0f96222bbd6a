package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suapapa/lotto645/internal/lotto"
)

func TestReplay(t *testing.T) {
	wh, err := readWinningHistory(strings.NewReader(historyCSV))
	require.NoError(t, err)

	steps := 0
	s, err := replay(context.Background(), lotto.NewGenerator(5), wh, 4, func() { steps++ })
	require.NoError(t, err)
	require.Equal(t, 3, steps)
	require.Equal(t, 3, s.Draws)
	require.Equal(t, 12, s.Sets)

	ranked := 0
	for _, n := range s.Ranks {
		ranked += n
	}
	require.Equal(t, s.Sets, ranked)

	tiers := 0
	for _, n := range s.Tiers {
		tiers += n
	}
	require.Equal(t, s.Draws, tiers)

	var buf bytes.Buffer
	require.NoError(t, writeReplaySummary(&buf, s))
	require.Contains(t, buf.String(), "3 draws, 12 sets")
	require.Contains(t, buf.String(), "낙첨")
}

func TestReplayStopsOnCancel(t *testing.T) {
	wh, err := readWinningHistory(strings.NewReader(historyCSV))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := replay(ctx, lotto.NewGenerator(5), wh, 1, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, s.Draws)
}

func TestReplayRejectsBadCount(t *testing.T) {
	wh, err := readWinningHistory(strings.NewReader(historyCSV))
	require.NoError(t, err)

	_, err = replay(context.Background(), lotto.NewGenerator(5), wh, 11, nil)
	require.ErrorIs(t, err, lotto.ErrInvalidArgument)
}
