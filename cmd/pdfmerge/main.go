// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfmerge CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("failure already reported")

// newRootCmd builds the pdfmerge command writing progress to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pdfmerge [flags] file1.pdf [file2.pdf ...]",
		Short: "Merge multiple PDF files into a single document",
		Long: `pdfmerge concatenates the pages of the given PDF files, in the order they
are listed, into one output PDF. Every input must exist and carry a .pdf
extension; any bad input aborts the run before anything is written.

Without --output the result is named after the first input with a
_merged suffix.`,
		Example: `  pdfmerge document1.pdf document2.pdf
  pdfmerge *.pdf --output combined.pdf
  pdfmerge file1.pdf file2.pdf file3.pdf -o final.pdf`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, v, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().String("config", "", "config file (default: ./pdfmerge.yaml or ~/.config/pdfmerge/pdfmerge.yaml)")
	cmd.Flags().StringP("output", "o", "", "output filename (optional)")
	cmd.Flags().String("report", "", "write a YAML merge report to this path")
	cmd.Flags().String("validation", "relaxed", "PDF validation mode: relaxed or strict")
	cmd.Flags().String("log-level", "warn", "log level: debug, info, warn, error")

	_ = v.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = v.BindPFlag("validation", cmd.Flags().Lookup("validation"))
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))

	return cmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pdfmerge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pdfmerge"))
		}
	}

	v.SetEnvPrefix("PDFMERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
