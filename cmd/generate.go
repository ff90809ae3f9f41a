package cmd

import (
	"fmt"
	"log/slog"

	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/studio"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		prompt    string
		imagePath string
		endpoint  string
		lang      string
		local     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an image from a prompt and/or an image file",
		Long: `Drives the studio from the terminal.

The request is sent to the generate endpoint of a running server, or handled
in-process with --local. On success the image URL is printed; on any failure
the localized generic error message is printed instead.`,
		Example: `  ghibliai generate --prompt "a castle in the sky"
  ghibliai generate --image photo.jpg --lang zh
  ghibliai generate --prompt "forest spirit" --local`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("endpoint") {
				cfg.GenerateEndpoint = endpoint
			}

			catalog, err := content.Load()
			if err != nil {
				return err
			}
			up := catalog.Get(content.ParseLanguage(lang)).Upload

			var gen studio.Generator
			if local {
				gen = newGenerator(cfg.GenerateDelay, cfg.Seed)
			} else {
				gen = studio.NewHTTPGenerator(cfg.GenerateEndpoint, cfg.ClientTimeout)
			}

			widget := studio.NewWidget(gen,
				studio.WithErrorMessage(up.Error),
				studio.WithOnChange(func(s studio.State) {
					slog.Debug("Studio state changed", "phase", s.Phase.String(), "can_submit", s.CanSubmit())
				}),
			)

			if imagePath != "" {
				f, err := studio.ReadFile(imagePath)
				if err != nil {
					return err
				}
				if err := widget.SelectFile(f); err != nil {
					return fmt.Errorf("%s: %w", up.InvalidFile, err)
				}
			}
			widget.SetPrompt(prompt)

			if !widget.State().CanSubmit() {
				return fmt.Errorf("either --prompt or --image is required")
			}

			fmt.Fprintln(cmd.ErrOrStderr(), up.Generating)
			final, err := widget.Generate(cmd.Context())
			if err != nil {
				return err
			}

			if url, ok := final.Download(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			}
			return fmt.Errorf("%s", final.Err)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Description of the scene to generate")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path of a source image")
	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:3000/generate-image", "Generate endpoint URL (env GENERATE_ENDPOINT)")
	cmd.Flags().StringVar(&lang, "lang", string(content.English), "Message language (en, zh)")
	cmd.Flags().BoolVar(&local, "local", false, "Generate in-process instead of calling the endpoint")

	return cmd
}
