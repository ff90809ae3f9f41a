package cmd

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/spf13/cobra"
)

func newContentCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Print the localized site strings as YAML",
		Example: `  ghibliai content
  ghibliai content --lang zh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := content.Load()
			if err != nil {
				return err
			}
			out, err := catalog.Marshal(content.ParseLanguage(lang))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", string(content.English), "Language (en, zh)")

	return cmd
}
