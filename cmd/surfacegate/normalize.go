package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/workroomhq/surfacegate/internal/formatter"
	"github.com/workroomhq/surfacegate/internal/normalizer"
	"github.com/workroomhq/surfacegate/internal/surfcache"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize a raw surface batch from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		// The pipeline tolerates any decoded value, including scalars
		// and null; only a malformed byte stream is a CLI error.
		var raw any
		if err := json.Unmarshal(input, &raw); err != nil {
			return fmt.Errorf("decode input: %w", err)
		}

		pipeline := normalizer.NewPipeline(
			normalizer.WithCache(surfcache.New(cfg.Cache.Capacity)),
		)
		surfaces := pipeline.Normalize(raw)

		format, err := formatter.ParseOutputFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		if summary, _ := cmd.Flags().GetBool("summary"); summary {
			format = formatter.OutputFormatTable
		}

		surfaceFormatter, err := formatter.NewFormatterFactory().Create(format)
		if err != nil {
			return err
		}
		rendered, err := surfaceFormatter.FormatSurfaces(surfaces)
		if err != nil {
			return err
		}

		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			return atomic.WriteFile(outPath, bytes.NewReader([]byte(rendered+"\n")))
		}

		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringP("out", "o", "", "write output to file (atomic replace)")
	normalizeCmd.Flags().Bool("summary", false, "render a summary table instead of full output")
	normalizeCmd.Flags().String("output.format", "", "output format (json, yaml, table)")
}
