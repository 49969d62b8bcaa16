package app

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GoPowerDNS-Admin/randstring/internal/charset"
	"github.com/GoPowerDNS-Admin/randstring/internal/generator"
)

const (
	modeChars      = "chars"
	modeCategories = "categories"
	modeMinimums   = "minimums"
)

var (
	validate = validator.New() //nolint:gochecknoglobals

	generatedStrings = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "randstring_generated_strings_total",
			Help: "Number of strings produced, by random source and mode.",
		},
		[]string{"source", "mode"},
	)
)

// generateOptions holds the flags of the generate command after config defaults are applied.
type generateOptions struct {
	Chars           string
	Categories      []string `validate:"dive,required"`
	MinUpper        int      `validate:"gte=0"`
	MinLower        int      `validate:"gte=0"`
	MinDigits       int      `validate:"gte=0"`
	MinSpecial      int      `validate:"gte=0"`
	ExtraLength     int      `validate:"gte=0"`
	ExtraCategories []string `validate:"dive,required"`
	Length          int      `validate:"gte=1,lte=5000"`
	ExcludeSimilar  bool
	Source          string `validate:"oneof=fast secure"`
	Count           int    `validate:"gte=1,lte=100000"`
	Workers         int    `validate:"gte=1,lte=256"`
}

func newGenerateCmd(s *state) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random strings",
		Long: `Print random strings built in one of three modes:

  --chars abc123             pick from the given characters, minus look-alikes with --exclude-similar
  --categories upper,digits  pick from character categories (default mode)
  --min-upper 2 --min-digits 2 --extra-length 8
                             guarantee per-category minimums, then shuffle`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := o.resolve(cmd, s)
			if err != nil {
				return err
			}

			return o.run(cmd, mode)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.Chars, "chars", "", "characters to pick from")
	f.StringSliceVar(&o.Categories, "categories", nil, "character categories to pick from (default from config)")
	f.IntVar(&o.MinUpper, "min-upper", 0, "minimum number of upper case letters")
	f.IntVar(&o.MinLower, "min-lower", 0, "minimum number of lower case letters")
	f.IntVar(&o.MinDigits, "min-digits", 0, "minimum number of digits")
	f.IntVar(&o.MinSpecial, "min-special", 0, "minimum number of special characters")
	f.IntVar(&o.ExtraLength, "extra-length", 0, "characters added on top of the minimums")
	f.StringSliceVar(&o.ExtraCategories, "extra-categories", nil, "categories of the extra characters (default all)")
	f.IntVar(&o.Length, "length", 0, "length of each string (default from config)")
	f.BoolVar(&o.ExcludeSimilar, "exclude-similar", false, "leave out similar looking characters like 1, l and I")
	f.StringVar(&o.Source, "source", "", "random source, fast or secure (default from config)")
	f.IntVar(&o.Count, "count", 0, "number of strings (default from config)")
	f.IntVar(&o.Workers, "workers", 0, "strings generated concurrently (default from config)")

	return cmd
}

// resolve fills unset options from the config and returns the generation mode.
func (o *generateOptions) resolve(cmd *cobra.Command, s *state) (string, error) {
	f := cmd.Flags()
	g := s.cfg.Generator

	minimums := f.Changed("min-upper") || f.Changed("min-lower") || f.Changed("min-digits") ||
		f.Changed("min-special") || f.Changed("extra-length") || f.Changed("extra-categories")

	mode := modeCategories

	switch {
	case f.Changed("chars") && (minimums || f.Changed("categories")):
		return "", ErrConflictingModes
	case minimums && f.Changed("categories"):
		return "", ErrConflictingModes
	case minimums && f.Changed("length"):
		return "", ErrLengthWithMinimums
	case f.Changed("chars"):
		mode = modeChars
	case minimums:
		mode = modeMinimums
	}

	if !f.Changed("categories") {
		o.Categories = g.Categories
	}

	if !f.Changed("length") {
		o.Length = g.Length
	}

	if !f.Changed("exclude-similar") {
		o.ExcludeSimilar = g.ExcludeSimilar
	}

	if o.Source == "" {
		o.Source = g.Source
	}

	if !f.Changed("count") {
		o.Count = g.Count
	}

	if !f.Changed("workers") {
		o.Workers = g.Workers
	}

	if err := validate.Struct(o); err != nil {
		return "", errors.Wrap(err, "invalid options")
	}

	return mode, nil
}

// producer returns the function building one string in mode.
func (o *generateOptions) producer(g *generator.Generator, mode string) (func() (string, error), error) {
	switch mode {
	case modeChars:
		chars := []rune(o.Chars)
		if o.ExcludeSimilar {
			chars = slices.DeleteFunc(chars, charset.IsSimilarLooking)
		}

		return func() (string, error) { return g.Generate(chars, o.Length) }, nil
	case modeMinimums:
		opts := []generator.Option{
			generator.WithExcludeSimilar(o.ExcludeSimilar),
			generator.WithExtraLength(o.ExtraLength),
		}

		if len(o.ExtraCategories) > 0 {
			extra, err := charset.Parse(o.ExtraCategories)
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			opts = append(opts, generator.WithExtraCategories(extra))
		}

		return func() (string, error) {
			return g.GenerateWithMinimums(o.MinUpper, o.MinLower, o.MinDigits, o.MinSpecial, opts...)
		}, nil
	default:
		categories, err := charset.Parse(o.Categories)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return func() (string, error) {
			return g.GenerateFromCategories(categories, o.Length, o.ExcludeSimilar)
		}, nil
	}
}

// run produces Count strings on up to Workers goroutines and prints them in order.
func (o *generateOptions) run(cmd *cobra.Command, mode string) error {
	g, err := generator.Named(o.Source)
	if err != nil {
		return err //nolint:wrapcheck
	}

	produce, err := o.producer(g, mode)
	if err != nil {
		return err
	}

	log.Debug().
		Str("mode", mode).
		Str("source", o.Source).
		Int("count", o.Count).
		Int("workers", o.Workers).
		Msg("generating strings")

	results := make([]string, o.Count)

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(o.Workers)

	for i := range o.Count {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			s, err := produce()
			if err != nil {
				return errors.Wrapf(err, "generate %s", mode)
			}

			results[i] = s
			generatedStrings.WithLabelValues(o.Source, mode).Inc()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("generation failed")

		return err //nolint:wrapcheck
	}

	out := cmd.OutOrStdout()
	for _, s := range results {
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
