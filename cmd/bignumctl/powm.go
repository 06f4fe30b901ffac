package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katesalazar/bignum/bignum"
)

func newPowmCmd() *cobra.Command {
	var base, exp, mod string

	cmd := &cobra.Command{
		Use:   "powm",
		Short: "Compute base^exp mod m (m omitted means plain exponentiation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			x, ok := new(bignum.Int).SetString(base, 0)
			if !ok {
				return errors.Errorf("powm: %q is not a valid integer", base)
			}
			y, ok := new(bignum.Int).SetString(exp, 0)
			if !ok {
				return errors.Errorf("powm: %q is not a valid integer", exp)
			}

			var m *bignum.Int
			if mod != "" {
				m, ok = new(bignum.Int).SetString(mod, 0)
				if !ok {
					return errors.Errorf("powm: %q is not a valid integer", mod)
				}
			}

			logger.Debug().Str("base", base).Str("exp", exp).Str("mod", mod).Msg("powm: starting")
			z := new(bignum.Int).Exp(x, y, m)
			_, err := z.Fprintf(cmd.OutOrStdout(), cfg.OutputBase)
			if err != nil {
				return errors.Wrap(err, "powm: writing result")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base operand (required)")
	cmd.Flags().StringVar(&exp, "exp", "", "exponent operand (required)")
	cmd.Flags().StringVar(&mod, "mod", "", "modulus operand (optional)")
	cmd.MarkFlagRequired("base")
	cmd.MarkFlagRequired("exp")
	return cmd
}
