package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"renderkit/internal/adapters/templating"
	"renderkit/internal/infrastructure/store"
)

var templateVars string

var templateCmd = &cobra.Command{
	Use:   "template <file>",
	Short: "Render a Scriggo template",
	Long: `Render a Scriggo template whose globals are the renderers, and print it.

Values are read from a TOML file given with --vars. Top-level keys are
values, the [attributes] table holds the attributes and any other table
holds the values of the differentiator it is named after:

  name = "ada lovelace"
  card = "4505 4405 8765 6430"

  [title]
  name = "countess"

  [attributes]
  lang = "en"

A template reads the differentiated value with capitalize("name#title").

Files included by the template are read from its directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, logger, err := loadServices()
		if err != nil {
			printError("configuration", err)
			return err
		}
		st := store.NewMemoryStore()
		if templateVars != "" {
			data, err := os.ReadFile(templateVars)
			if err != nil {
				return fmt.Errorf("lecture des variables : %w", err)
			}
			if err := loadVars(st, data); err != nil {
				return err
			}
		}
		dir, name := filepath.Split(args[0])
		if dir == "" {
			dir = "."
		}
		engine := templating.NewEngine(svcs.Render, templating.WithLogger(logger))
		return engine.Render(cmd.Context(), cmd.OutOrStdout(), os.DirFS(dir), name, st)
	},
}

func init() {
	templateCmd.Flags().StringVar(&templateVars, "vars", "", "TOML file with the template values")
	rootCmd.AddCommand(templateCmd)
}
