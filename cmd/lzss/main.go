package main

import (
	"fmt"
	"os"

	"github.com/ei-projects/lzss/internal/config"
	"github.com/nuclio/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version string = "master" // Replaced by linker, see Makefile
var log = logrus.New()

// Resolved by the root command before any subcommand runs.
var cfg = config.Default()

func newRootCmd() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version of lzss",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "lzss",
		Short:         "LZSS compressor and decompressor with a small HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.AddCommand(newCompressCmd(), newDecompressCmd(), newServeCmd(), cmdVersion)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "Invalid log level %q", c.LogLevel)
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	cfg = c
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if cause := errors.RootCause(err); cause != nil && cause != err {
			log.WithError(cause).Error(err)
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}
