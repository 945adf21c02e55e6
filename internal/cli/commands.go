package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Simplici0/carcost/internal/format"
	"github.com/Simplici0/carcost/internal/postcode"
	"github.com/Simplici0/carcost/internal/report"
	"github.com/Simplici0/carcost/internal/scenario"
	"github.com/Simplici0/carcost/internal/tco"
)

func (cli *CLI) newCalculateCmd() *cobra.Command {
	var (
		file     string
		asJSON   bool
		locale   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the cost of one ownership scenario",
		Long: "Reads a scenario file (yaml, json or toml) over the default scenario.\n" +
			"Any field can also be set from the environment, e.g. " + scenario.EnvPrefix + "_PURCHASEPRICE=30000.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.Ctx(cmd.Context())

			f, err := format.New(format.Options{Locale: locale, Currency: currency})
			if err != nil {
				return err
			}

			req, err := scenario.Load(file)
			if err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				var verr *scenario.ValidationError
				if errors.As(err, &verr) {
					for _, fe := range verr.Fields {
						logger.Error().Str("field", fe.Field).Msg(fe.Message)
					}
				}
				return fmt.Errorf("invalid scenario: %w", err)
			}

			in := req.Input()
			res := tco.CalculateCarCosts(in)
			reporter := report.NewReporter(cmd.OutOrStdout(), f)

			if asJSON {
				return reporter.JSON(in, res, req.Warnings())
			}
			return reporter.Handle(in, res, req.Warnings())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a scenario file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&locale, "locale", format.DefaultLocale, "Display locale (BCP 47)")
	cmd.Flags().StringVar(&currency, "currency", format.DefaultCurrency, "Display currency (ISO 4217)")

	return cmd
}

func (cli *CLI) newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List the vehicle excise duty bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.NewReporter(cmd.OutOrStdout(), nil).HandleBands(tco.Bands())
		},
	}
}

func (cli *CLI) newPostcodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postcode <code>",
		Short: "Check and normalise a UK postcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !postcode.Valid(code) {
				return fmt.Errorf("%q is not a valid UK postcode", code)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (outward code %s)\n", postcode.Format(code), postcode.Outward(code))
			return err
		},
	}
}
