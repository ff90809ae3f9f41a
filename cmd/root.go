package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/juson/ghibliai/internal/config"
	"github.com/juson/ghibliai/internal/generation"
	"github.com/spf13/cobra"
)

// app carries state resolved before any subcommand runs.
type app struct {
	cfg      *config.Config
	logLevel string
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "ghibliai",
		Short: "GhibliAI marketing site and mock image generation service",
		Long: `GhibliAI serves a bilingual landing page with an upload and generate studio.

Generation is simulated: after a short delay one of three stock images is returned.
The mock server also exposes a JSON resource API backed by a flat file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			a.cfg = cfg

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: config.ParseLevel(cfg.LogLevel),
			}))
			slog.SetDefault(logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newFunctionCmd(a))
	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newContentCmd())

	return cmd
}

func newGenerator(delay time.Duration, seed uint64) *generation.Service {
	opts := []generation.Option{generation.WithDelay(delay)}
	if seed != 0 {
		opts = append(opts, generation.WithSeed(seed))
	}
	return generation.NewService(opts...)
}
