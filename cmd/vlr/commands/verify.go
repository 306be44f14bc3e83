package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vlr/internal/app"
	"go.trai.ch/vlr/internal/core/domain"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the mission data against its checksum manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			cfg, err := c.loadConfig(cmd, func(cfg *domain.Config) {
				if flags.Changed("data-root") {
					cfg.DataRoot, _ = flags.GetString("data-root")
				}
				if flags.Changed("mission-root") {
					cfg.MissionDataRoot, _ = flags.GetString("mission-root")
				}
				if flags.Changed("manifest") {
					cfg.ManifestName, _ = flags.GetString("manifest")
				}
				if flags.Changed("chunk-size") {
					cfg.ChunkSize, _ = flags.GetInt("chunk-size")
				}
				applyOutputMode(cmd, cfg)
			})
			if err != nil {
				return err
			}

			skip, _ := flags.GetBool("skip-verified")
			format, _ := flags.GetString("format")

			return c.app.Verify(cmd.Context(), cfg, app.VerifyOptions{
				SkipVerified: skip,
				Format:       format,
				Output:       cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().String("data-root", "", "Root of the disc or archive")
	cmd.Flags().String("mission-root", "", "Mission data directory, relative to the data root")
	cmd.Flags().StringP("manifest", "m", domain.DefaultManifestName, "Name of the checksum manifest")
	cmd.Flags().Int("chunk-size", domain.DefaultChunkSize, "Read size of the hasher in bytes")
	cmd.Flags().StringP("format", "f", "", "Write a report: text, json or yaml")
	cmd.Flags().Bool("skip-verified", false, "Skip when the manifest already verified successfully")
	addOutputFlags(cmd)
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", string(domain.OutputAuto), "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output=linear)")
}

func applyOutputMode(cmd *cobra.Command, cfg *domain.Config) {
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		cfg.OutputMode = domain.OutputLinear
		return
	}
	if cmd.Flags().Changed("output") {
		mode, _ := cmd.Flags().GetString("output")
		cfg.OutputMode = domain.OutputMode(mode)
	}
}
