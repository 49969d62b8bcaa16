package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/randstring/internal/config"
)

func newConfigCmd(s *state) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				out string
				err error
			)

			if asJSON {
				out, err = config.DumpConfigJSON(&s.cfg)
			} else {
				out, err = config.DumpConfig(&s.cfg)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")

	return cmd
}
