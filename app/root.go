// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/randstring/internal/config"
	"github.com/GoPowerDNS-Admin/randstring/internal/logger"
)

// state is shared by the commands of one root command.
type state struct {
	configPath string // Path to the directory holding main.toml
	cfg        config.Config
}

// NewRootCmd returns the randstring command tree.
func NewRootCmd() *cobra.Command {
	s := &state{}

	rootCmd := &cobra.Command{
		Use:   "randstring",
		Short: "randstring generates and shuffles random strings",
		Long: `randstring generates random strings from explicit characters, character
categories or per-category minimums, and shuffles strings. It draws from a
cryptographically secure source by default.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if s.cfg, err = config.ReadConfig(s.configPath); err != nil {
				return err //nolint:wrapcheck
			}

			return logger.Init(s.cfg.Log) //nolint:wrapcheck
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if s.cfg.Metrics.TextFile == "" {
				return nil
			}

			return logger.WriteMetrics(s.cfg.Metrics.TextFile) //nolint:wrapcheck
		},
	}

	rootCmd.PersistentFlags().StringVarP(
		&s.configPath,
		"config",
		"c",
		config.DefaultPath,
		"directory holding main.toml",
	)

	rootCmd.AddCommand(
		newGenerateCmd(s),
		newShuffleCmd(s),
		newConfigCmd(s),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute() //nolint:wrapcheck
}
