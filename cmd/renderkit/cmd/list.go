package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"renderkit/internal/ports/input"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the renderers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, _, err := loadServices()
		if err != nil {
			printError("configuration", err)
			return err
		}
		return listRenderers(cmd.OutOrStdout(), svcs.Render)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listRenderers(w io.Writer, uc input.RenderUseCase) error {
	for _, name := range uc.Renderers() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
