package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/randstring/internal/generator"
)

func newShuffleCmd(s *state) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "shuffle <text>",
		Short: "Print the characters of text in random order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = s.cfg.Generator.Source
			}

			g, err := generator.Named(source)
			if err != nil {
				return err //nolint:wrapcheck
			}

			shuffled, err := g.Shuffle(args[0])
			if err != nil {
				return errors.Wrap(err, "shuffle")
			}

			generatedStrings.WithLabelValues(source, "shuffle").Inc()
			log.Debug().Str("source", source).Msg("string shuffled")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), shuffled)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "random source, fast or secure (default from config)")

	return cmd
}
