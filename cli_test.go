package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/suapapa/lotto645/internal/lotto"
	"github.com/suapapa/lotto645/internal/parabola"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenCommand(t *testing.T) {
	out, err := execute(t, genCommand(&Config{Seed: 11}), "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "세트"))
	require.True(t, strings.HasPrefix(lines[3], "3 세트"))

	again, err := execute(t, genCommand(&Config{Seed: 11}), "-n", "3")
	require.NoError(t, err)
	require.Equal(t, out, again, "a fixed seed reproduces the batch")

	_, err = execute(t, genCommand(&Config{}), "-n", "11")
	require.ErrorIs(t, err, lotto.ErrInvalidArgument)
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, compareCommand(&Config{Seed: 11}), "-n", "2", "-w", "1, 10, 20, 30, 40, 45")
	require.NoError(t, err)
	require.Contains(t, out, "일치 개수")
	require.Contains(t, out, "2 세트")
	require.Regexp(t, `\[(top|high|some|none)\]`, out)

	_, err = execute(t, compareCommand(&Config{}), "-w", "1,2,3,4,5")
	require.ErrorIs(t, err, lotto.ErrValidation)

	_, err = execute(t, compareCommand(&Config{LenientParse: true}), "-w", "1,2,3,4,5,x,6")
	require.NoError(t, err)
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	results := lotto.Score(lotto.Batch{{1, 10, 20, 30, 40, 45}}, lotto.Winning{1, 10, 20, 30, 40, 45})
	require.NoError(t, writeResults(&buf, results))
	require.Contains(t, buf.String(), "1 10 20 30 40 45")
	require.Contains(t, buf.String(), "[top]")
}

func TestParabolaCommand(t *testing.T) {
	out, err := execute(t, parabolaCommand(), "--a=-2", "--cols", "21", "--rows", "11")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "y = -2.0x^2\n"))
	require.Contains(t, out, "opens down, narrow")

	out, err = execute(t, parabolaCommand(), "-a", "0")
	require.NoError(t, err)
	require.Contains(t, out, "using a = 0.1")

	_, err = execute(t, parabolaCommand(), "-a", "7")
	require.ErrorIs(t, err, parabola.ErrOutOfRange)
}
