package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suapapa/lotto645/internal/lotto"
	"github.com/suapapa/lotto645/internal/parabola"
)

const defaultSets = 5

func writeBatch(w io.Writer, batch lotto.Batch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "세트\t번호")
	for i, ns := range batch {
		fmt.Fprintf(tw, "%s\t%s\n", setLabel(i+1), ns)
	}
	return tw.Flush()
}

func writeResults(w io.Writer, results []lotto.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "세트\t생성 번호\t일치 개수")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", setLabel(r.Position), r.Numbers, r.Matches)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	best := lotto.MaxMatches(results)
	_, err := fmt.Fprintf(w, "[%s] %s\n", lotto.TierFor(best), tierComment(best))
	return err
}

func genCommand(cfg *Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generates lotto number sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := newGenerator(cfg).Generate(count)
			if err != nil {
				return err
			}
			return writeBatch(cmd.OutOrStdout(), batch)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultSets, "number of sets (1-10)")
	return cmd
}

func compareCommand(cfg *Config) *cobra.Command {
	var (
		count   int
		winning string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Generates sets and compares them with winning numbers",
		Example: `  lotto645 compare -n 5 -w "1, 10, 20, 30, 40, 45"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := newGenerator(cfg).Generate(count)
			if err != nil {
				return err
			}
			results, err := lotto.Compare(batch, winning, cfg.compareOptions()...)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultSets, "number of sets (1-10)")
	cmd.Flags().StringVarP(&winning, "winning", "w", "", "six comma-separated winning numbers")
	_ = cmd.MarkFlagRequired("winning")
	return cmd
}

func parabolaCommand() *cobra.Command {
	var (
		a          float64
		cols, rows int
	)
	cmd := &cobra.Command{
		Use:   "parabola",
		Short: "Plots y = ax² as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parabola.New(a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if c.Adjusted {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: |a| is too close to 0, using a = %.1f\n", c.A)
			}
			fmt.Fprintln(out, c.Label())
			fmt.Fprintln(out, parabola.Render(c, cols, rows))
			_, err = fmt.Fprintf(out, "%s, %s\n", c.Shape(), c.Width())
			return err
		},
	}
	cmd.Flags().Float64VarP(&a, "a", "a", 1.0, "coefficient a (-5.0 to 5.0, step 0.1)")
	cmd.Flags().IntVar(&cols, "cols", 61, "chart width in characters")
	cmd.Flags().IntVar(&rows, "rows", 21, "chart height in lines")
	return cmd
}
