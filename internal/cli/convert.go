package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/conversor/internal/domain"
)

func convertCmd(flags *globalFlags) *cobra.Command {
	var category string
	var from string
	var to string
	var format string

	c := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a single value through the conversion service",
		Example: `  conversor convert -c temperature -f c -t f 37
  conversor convert -c distance -f quilometros -t miles 12,5
  conversor convert -c temperature -f c -t k -- -40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}
			fromCode, err := domain.NormalizeUnit(cat, from)
			if err != nil {
				return err
			}
			toCode, err := domain.NormalizeUnit(cat, to)
			if err != nil {
				return err
			}

			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer app.close()

			req, res, err := app.submit.Run(cmd.Context(), cat, fromCode, toCode, args[0])
			if err != nil {
				return describeError(err)
			}

			return printConversion(cmd.OutOrStdout(), req, res, format)
		},
	}

	c.Flags().StringVarP(&category, "category", "c", string(domain.CategoryTemperature), "Category: temperature|distance|weight")
	c.Flags().StringVarP(&from, "from", "f", "", "Source unit code or synonym (required)")
	c.Flags().StringVarP(&to, "to", "t", "", "Target unit code or synonym (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func printConversion(w io.Writer, req domain.ConversionRequest, res domain.ConversionResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"category":    req.Category,
			"from_unit":   req.FromUnit,
			"to_unit":     req.ToUnit,
			"input_value": req.Value,
			"result":      domain.RoundResult(res.Result),
		}
		return enc.Encode(payload)
	case "pretty", "":
		_, err := fmt.Fprintln(w, domain.Describe(req, res))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// describeError keeps the CLI message short; the full chain is in the log.
func describeError(err error) error {
	switch domain.KindOf(err) {
	case domain.KindEmptyInput:
		return fmt.Errorf("informe um valor para converter: %w", err)
	case domain.KindInvalidNumber:
		return fmt.Errorf("valor inválido, use números (ex: 12.34): %w", err)
	default:
		return fmt.Errorf("não foi possível converter: %w", err)
	}
}
