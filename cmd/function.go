package cmd

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/juson/ghibliai/internal/config"
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/handlers"
	"github.com/spf13/cobra"
	"github.com/supabase-community/supabase-go"
)

// function is the standalone generation endpoint. The Supabase client is
// built from the environment but no call goes through it yet.
type function struct {
	handler  http.Handler
	supabase *supabase.Client
}

func newFunction(cfg *config.Config) (*function, error) {
	catalog, err := content.Load()
	if err != nil {
		return nil, err
	}

	fn := &function{
		handler: handlers.NewFunctionRouter(handlers.New(catalog, newGenerator(cfg.Function.Delay, cfg.Seed))),
	}

	if cfg.Function.HasSupabase() {
		client, err := supabase.NewClient(cfg.Function.SupabaseURL, cfg.Function.SupabaseAnonKey, &supabase.ClientOptions{})
		if err != nil {
			slog.Warn("Failed to create Supabase client", "error", err)
		} else {
			fn.supabase = client
			slog.Info("Supabase client initialized", "url", cfg.Function.SupabaseURL)
		}
	}
	return fn, nil
}

func newFunctionCmd(a *app) *cobra.Command {
	var (
		port  int
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "function",
		Short: "Run the standalone generate-image function",
		Long: `Runs the generation endpoint as a standalone function at ` + handlers.FunctionPath + `.

Every response carries permissive CORS headers and OPTIONS preflights return 200
with an empty body. SUPABASE_URL and SUPABASE_ANON_KEY are read when present.`,
		Example: `  ghibliai function
  ghibliai function --port 9000 --delay 0s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("port") {
				cfg.Function.Port = port
			}
			if cmd.Flags().Changed("delay") {
				cfg.Function.Delay = delay
			}

			fn, err := newFunction(cfg)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), ":"+strconv.Itoa(cfg.Function.Port), fn.handler, cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 54321, "Port to listen on (env FUNCTION_PORT)")
	cmd.Flags().DurationVar(&delay, "delay", 2*time.Second, "Artificial generation delay (env FUNCTION_DELAY)")

	return cmd
}
