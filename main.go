// Command lotto645 draws Lotto 6/45 numbers, compares them with a winning
// combination and plots y = ax², as a Telegram bot or from the shell.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suapapa/lotto645/internal/logger"
)

func main() {
	cfg := &Config{}
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "lotto645",
		Short:        "Lotto 6/45 number picker and comparator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return logger.Setup(cfg.Environment)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".config.yaml", "config file path")

	rootCmd.AddCommand(
		botCommand(cfg),
		genCommand(cfg),
		compareCommand(cfg),
		replayCommand(cfg),
		parabolaCommand(),
	)

	ctx := context.Background()
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()
			panic(p)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
