package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suapapa/lotto645/internal/logger"
	"github.com/suapapa/lotto645/internal/lotto"
)

// replaySummary tallies random batches scored against past draws.
type replaySummary struct {
	Draws int
	Sets  int
	Ranks map[lotto.Rank]int // per set
	Tiers map[lotto.Tier]int // per draw, from the batch's best set
}

// replay draws a fresh batch of count sets for every draw in history and
// scores it. step is called after each draw.
func replay(ctx context.Context, gen *lotto.Generator, history WinningHistory, count int, step func()) (replaySummary, error) {
	s := replaySummary{
		Ranks: make(map[lotto.Rank]int),
		Tiers: make(map[lotto.Tier]int),
	}
	for _, w := range history {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		batch, err := gen.Generate(count)
		if err != nil {
			return s, err
		}
		results := w.Check(batch)
		best := 0
		for _, r := range results {
			s.Ranks[r.Rank]++
			best = max(best, r.Matches)
		}
		s.Tiers[lotto.TierFor(best)]++
		s.Draws++
		s.Sets += len(results)
		if step != nil {
			step()
		}
	}
	return s, nil
}

func writeReplaySummary(w io.Writer, s replaySummary) error {
	fmt.Fprintf(w, "%d draws, %d sets\n", s.Draws, s.Sets)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "순위\t세트 수")
	for _, r := range []lotto.Rank{lotto.RankFirst, lotto.RankSecond, lotto.RankThird, lotto.RankFourth, lotto.RankFifth, lotto.RankNone} {
		fmt.Fprintf(tw, "%s\t%d\n", rankText(r), s.Ranks[r])
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "tier\t회차 수")
	for _, t := range []lotto.Tier{lotto.TierTop, lotto.TierHigh, lotto.TierSome, lotto.TierNone} {
		fmt.Fprintf(tw, "%s\t%d\n", t, s.Tiers[t])
	}
	return tw.Flush()
}

func replayCommand(cfg *Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "replay [history.csv]",
		Short: "Scores random batches against every past draw",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.HistoryCSV
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no winning history CSV given")
			}

			ctx := cmd.Context()
			logger.Info(ctx, "loading winning history...", zap.String("path", path))
			history, err := loadWinningHistory(path)
			if err != nil {
				return fmt.Errorf("failed to load winning history: %w", err)
			}

			bar := progressbar.NewOptions(len(history),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("replaying"),
				progressbar.OptionShowCount(),
			)
			s, err := replay(ctx, newGenerator(cfg), history, count, func() { _ = bar.Add(1) })
			_ = bar.Finish()
			if err != nil {
				return err
			}
			return writeReplaySummary(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultSets, "sets per draw (1-10)")
	return cmd
}
