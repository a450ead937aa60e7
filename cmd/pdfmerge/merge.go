package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfmerge/internal/merge"
	"github.com/pdiddy/pdfmerge/internal/outname"
	"github.com/pdiddy/pdfmerge/internal/validate"
	"github.com/pdiddy/pdfmerge/pkg/types"
)

// loadConfig resolves flags, env and config file into a MergeConfig.
func loadConfig(cmd *cobra.Command, v *viper.Viper, args []string) (types.MergeConfig, error) {
	mode, err := types.ParseValidationMode(v.GetString("validation"))
	if err != nil {
		return types.MergeConfig{}, err
	}
	output, _ := cmd.Flags().GetString("output")

	return types.MergeConfig{
		Inputs:     args,
		Output:     outname.Derive(args, output),
		Validation: mode,
		ReportPath: v.GetString("report"),
		LogLevel:   v.GetString("log_level"),
	}, nil
}

func runMerge(cmd *cobra.Command, v *viper.Viper, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "Error: No PDF files specified.")
		_ = cmd.Help()
		return errReported
	}

	cfg, err := loadConfig(cmd, v, args)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "PDF Merger")
	fmt.Fprintf(out, "Input files: %d\n", len(cfg.Inputs))
	fmt.Fprintf(out, "Output file: %s\n", cfg.Output)
	fmt.Fprintln(out, strings.Repeat("-", 50))

	if err := validate.Validate(cfg.Inputs); err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(out, "Error: %s\n", verr.Message())
		} else {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		return failed(out)
	}

	engine := merge.NewEngine(merge.NewPDFCPU(cfg.Validation), out, log)
	result, err := engine.Merge(cfg.Inputs, cfg.Output)
	if err != nil {
		fmt.Fprintf(out, "Error merging PDFs: %v\n", err)
		return failed(out)
	}
	fmt.Fprintf(out, "Successfully merged %d files into '%s'\n", len(cfg.Inputs), filepath.Base(cfg.Output))

	if cfg.ReportPath != "" {
		if err := merge.WriteReport(cfg.ReportPath, result); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return failed(out)
		}
		log.WithField("report", cfg.ReportPath).Info("wrote merge report")
	}

	location, err := filepath.Abs(cfg.Output)
	if err != nil {
		location = cfg.Output
	}
	fmt.Fprintln(out, "\nMerge completed successfully!")
	fmt.Fprintf(out, "Merged file location: %s\n", location)
	return nil
}

func failed(out io.Writer) error {
	fmt.Fprintln(out, "\nMerge failed!")
	return errReported
}
