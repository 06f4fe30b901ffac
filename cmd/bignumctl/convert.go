package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katesalazar/bignum/bignum"
)

func newConvertCmd() *cobra.Command {
	var fromBase, toBase int

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Reformat an integer from one base to another (2..62)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(bignum.Int).SetString(args[0], fromBase)
			if !ok {
				return errors.Errorf("convert: %q is not a valid base-%d integer", args[0], fromBase)
			}
			base := toBase
			if base == 0 {
				base = cfg.OutputBase
			}
			if base < 2 || base > bignum.MaxBase {
				return errors.Errorf("convert: --to-base must be between 2 and %d", bignum.MaxBase)
			}
			_, err := n.Fprintf(cmd.OutOrStdout(), base)
			fmt.Fprintln(cmd.OutOrStdout())
			return errors.Wrap(err, "convert: writing result")
		},
	}

	cmd.Flags().IntVar(&fromBase, "from-base", 0, "input base (0 auto-detects 0x/0o/0b prefixes, default base 10)")
	cmd.Flags().IntVar(&toBase, "to-base", 0, "output base (0 uses the configured default)")
	return cmd
}
