package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katesalazar/bignum/bignum"
)

func newGCDCmd() *cobra.Command {
	var inverseMod string

	cmd := &cobra.Command{
		Use:   "gcd X Y",
		Short: "Compute gcd(X,Y) and Bezout coefficients, or a modular inverse",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, ok := new(bignum.Int).SetString(args[0], 0)
			if !ok {
				return errors.Errorf("gcd: %q is not a valid integer", args[0])
			}
			y, ok := new(bignum.Int).SetString(args[1], 0)
			if !ok {
				return errors.Errorf("gcd: %q is not a valid integer", args[1])
			}

			if inverseMod != "" {
				n, ok := new(bignum.Int).SetString(inverseMod, 0)
				if !ok {
					return errors.Errorf("gcd: %q is not a valid integer", inverseMod)
				}
				inv := new(bignum.Int).ModInverse(x, n)
				if inv == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "no inverse exists")
					return nil
				}
				_, err := inv.Fprintf(cmd.OutOrStdout(), cfg.OutputBase)
				fmt.Fprintln(cmd.OutOrStdout())
				return errors.Wrap(err, "gcd: writing result")
			}

			var cx, cy bignum.Int
			g := new(bignum.Int).GCD(&cx, &cy, x, y)
			logger.Debug().Str("x", args[0]).Str("y", args[1]).Msg("gcd: computed")

			fmt.Fprintf(cmd.OutOrStdout(), "gcd=%s x=%s y=%s\n", g.Text(cfg.OutputBase), cx.Text(cfg.OutputBase), cy.Text(cfg.OutputBase))
			return nil
		},
	}

	cmd.Flags().StringVar(&inverseMod, "inverse-mod", "", "report X's inverse mod this value instead of the GCD triple")
	return cmd
}
