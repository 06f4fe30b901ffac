package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katesalazar/bignum/bignum"
)

func newPrimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Primality testing and prime generation",
	}
	cmd.AddCommand(newPrimeTestCmd())
	cmd.AddCommand(newPrimeNextCmd())
	cmd.AddCommand(newPrimeRandCmd())
	return cmd
}

func newPrimeTestCmd() *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "test N",
		Short: "Report whether N is probably prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(bignum.Int).SetString(args[0], 0)
			if !ok {
				return errors.Errorf("prime test: %q is not a valid integer", args[0])
			}
			r := rounds
			if r <= 0 {
				r = cfg.MillerRabinRounds
			}
			logger.Debug().Str("n", args[0]).Int("rounds", r).Msg("prime test: starting")
			fmt.Fprintln(cmd.OutOrStdout(), n.ProbablyPrime(r))
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Miller-Rabin round count (0 uses the configured default)")
	return cmd
}

func newPrimeNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next N",
		Short: "Find the smallest probable prime strictly greater than N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(bignum.Int).SetString(args[0], 0)
			if !ok {
				return errors.Errorf("prime next: %q is not a valid integer", args[0])
			}
			p := new(bignum.Int).NextPrime(n)
			_, err := p.Fprintf(cmd.OutOrStdout(), cfg.OutputBase)
			fmt.Fprintln(cmd.OutOrStdout())
			return errors.Wrap(err, "prime next: writing result")
		},
	}
	return cmd
}

func newPrimeRandCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Generate a random probable prime of the given bit length",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bits <= 0 {
				return errors.New("prime rand: --bits must be positive")
			}
			rnd, err := rngFromConfig(cfg.RNGSource)
			if err != nil {
				return errors.Wrap(err, "prime rand")
			}
			p := new(bignum.Int).RandPrime(rnd, bits)
			logger.Debug().Int("bits", bits).Str("rng", cfg.RNGSource).Msg("prime rand: generated")
			_, werr := p.Fprintf(cmd.OutOrStdout(), cfg.OutputBase)
			fmt.Fprintln(cmd.OutOrStdout())
			return errors.Wrap(werr, "prime rand: writing result")
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 0, "bit length of the generated prime (required)")
	cmd.MarkFlagRequired("bits")
	return cmd
}
