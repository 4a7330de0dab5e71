package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightpaths/render"
)

func (a *app) pathsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the shortest paths to stdout without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			switch f {
			case render.FormatText, render.FormatJSON, render.FormatYAML:
			default:
				return fmt.Errorf("%w: %q (want text, json or yaml)", render.ErrUnknownFormat, format)
			}
			ps, err := a.enumerate(cmd.Context())
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), f, ps, a.renderOptions())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "text, json or yaml")
	return cmd
}
