package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Work with checksum manifests",
	}
	cmd.AddCommand(c.newManifestGenerateCmd())
	return cmd
}

func (c *CLI) newManifestGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <data-root>",
		Short: "Write a checksum manifest for every file below data-root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var w io.Writer = cmd.OutOrStdout()
			if out, _ := cmd.Flags().GetString("output"); out != "" && out != "-" {
				f, createErr := os.Create(out) //nolint:gosec // path is provided by user
				if createErr != nil {
					return zerr.With(zerr.Wrap(createErr, "failed to create manifest"), "path", out)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil && err == nil {
						err = zerr.With(zerr.Wrap(closeErr, "failed to close manifest"), "path", out)
					}
				}()
				w = f
			}
			return c.app.GenerateManifest(cmd.Context(), args[0], w)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the manifest to this file instead of stdout")
	return cmd
}
