package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg     config
	logger  zerolog.Logger
	verbose bool
	cfgPath string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bignumctl",
		Short: "Arbitrary-precision integer engine — command-line harness",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "bignumctl.toml", "path to an optional TOML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(newPowmCmd())
	root.AddCommand(newGCDCmd())
	root.AddCommand(newPrimeCmd())
	root.AddCommand(newConvertCmd())
	return root
}
