package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vlr/internal/core/domain"
)

func (c *CLI) newRecoverCmd() *cobra.Command {
	var opts domain.RecoveryOptions

	cmd := &cobra.Command{
		Use:   "recover <input-root> <output-root>",
		Short: "Run the extractor over verified mission data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, err := c.loadConfig(cmd, func(cfg *domain.Config) {
				if flags.Changed("extractor") {
					cfg.ExtractorPath, _ = flags.GetString("extractor")
				}
				if flags.Changed("connect-timeout") {
					cfg.ConnectTimeout, _ = flags.GetDuration("connect-timeout")
				}
				if flags.Changed("pty") {
					cfg.UsePTY, _ = flags.GetBool("pty")
				}
				applyOutputMode(cmd, cfg)
			})
			if err != nil {
				return err
			}

			opts.InputRoot = args[0]
			opts.OutputRoot = args[1]
			return c.app.Recover(cmd.Context(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.String("extractor", domain.DefaultExtractorPath, "Path to the extractor executable")
	f.Duration("connect-timeout", 0, "Give up waiting for the event channel after this long (0 waits forever)")
	f.Bool("pty", false, "Run the extractor attached to a pseudo terminal")
	addOutputFlags(cmd)

	f.BoolVar(&opts.Overwrite, "overwrite", false, "Overwrite existing output")
	f.BoolVar(&opts.DirectorizeBandClass, "directorize-band-class", false, "Group output by band class")
	f.BoolVar(&opts.DirectorizeLocation, "directorize-location", false, "Group output by location")
	f.BoolVar(&opts.DirectorizeMonth, "directorize-month", false, "Group output by month")
	f.BoolVar(&opts.DirectorizeSol, "directorize-sol", false, "Group output by sol")
	f.BoolVar(&opts.NoAutoRotate, "no-auto-rotate", false, "Keep images in sensor orientation")
	f.BoolVar(&opts.NoReconstruct, "no-reconstruct", false, "Skip image reconstruction")
	f.StringVar(&opts.FilterDiode, "filter-diode", domain.DefaultFilter, "Only extract this diode")
	f.StringVar(&opts.FilterLander, "filter-lander", domain.DefaultFilter, "Only extract this lander")
	f.BoolVar(&opts.Interlace, "interlace", false, "Write interlaced images")
	f.BoolVar(&opts.GenerateMetadata, "generate-metadata", false, "Write metadata next to each image")
	f.BoolVar(&opts.Verbose, "verbose", false, "Ask the extractor for verbose output")
	f.BoolVar(&opts.Jobs, "jobs", false, "Let the extractor run parallel jobs")
	return cmd
}
