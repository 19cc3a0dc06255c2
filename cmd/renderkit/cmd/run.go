package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"renderkit/internal/domain/entities"
	"renderkit/internal/infrastructure/store"
	"renderkit/internal/ports/input"
)

var (
	runConfig      []string
	runContentType string
	runStdin       bool
)

var runCmd = &cobra.Command{
	Use:   "run <renderer> [value]",
	Short: "Run a renderer on a value",
	Long: `Run a renderer on a value and print the result.

Without a value (and without --stdin) the value is missing, which shows how
the renderer treats nulls. Configuration lines are given with --config:

  renderkit run mask "4505 4405 8765 6430" --config mask=# --config unmasked=4
  renderkit run uptime 90061000 --config "day=d\ "`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, _, err := loadServices()
		if err != nil {
			printError("configuration", err)
			return err
		}
		var value *string
		switch {
		case len(args) == 2:
			value = &args[1]
		case runStdin:
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("lecture de l'entrée standard : %w", err)
			}
			s := strings.TrimSuffix(string(b), "\n")
			value = &s
		}
		return runRenderer(cmd.Context(), cmd.OutOrStdout(), svcs.Render, args[0], value, runConfig, runContentType)
	},
}

func init() {
	runCmd.Flags().StringArrayVarP(&runConfig, "config", "c", nil, "configuration line key=value (repeatable)")
	runCmd.Flags().StringVar(&runContentType, "content-type", "text", "content type of the output: text, html, xml, json or js")
	runCmd.Flags().BoolVar(&runStdin, "stdin", false, "read the value from the standard input")
	rootCmd.AddCommand(runCmd)
}

// runRenderer renders value, nil when missing, and prints the result. A
// null result prints nothing.
func runRenderer(ctx context.Context, w io.Writer, uc input.RenderUseCase, renderer string, value *string, config []string, contentType string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	const id = "value"
	st := store.NewMemoryStore()
	if value != nil {
		st.SetValue(id, "", *value)
	}
	v, err := uc.Render(ctx, st, entities.RenderRequest{
		Renderer:    renderer,
		ID:          id,
		Config:      strings.Join(config, "\n"),
		ContentType: entities.ParseContentType(contentType),
	})
	if err != nil {
		return err
	}
	if v.Null {
		return nil
	}
	_, err = fmt.Fprintln(w, v.Text)
	return err
}
