// Package commands implements the CLI commands for vlr.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vlr/internal/app"
	"go.trai.ch/vlr/internal/build"
	"go.trai.ch/vlr/internal/core/domain"
)

// CLI represents the command line interface for vlr.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	LoadConfig(path string) (*domain.Config, error)
	Verify(ctx context.Context, cfg *domain.Config, opts app.VerifyOptions) error
	Recover(ctx context.Context, cfg *domain.Config, opts domain.RecoveryOptions) error
	GenerateManifest(ctx context.Context, dataRoot string, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vlr",
		Short:         "Verify and recover lander mission data from disc",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().String("trace", "", "Write a JSON-lines journal of every step to this file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newRecoverCmd())
	rootCmd.AddCommand(c.newManifestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// loadConfig loads the configuration, lets apply override it from flags and validates the result.
func (c *CLI) loadConfig(cmd *cobra.Command, apply func(cfg *domain.Config)) (*domain.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := c.app.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	apply(cfg)
	if cmd.Flags().Changed("trace") {
		cfg.TracePath, _ = cmd.Flags().GetString("trace")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
