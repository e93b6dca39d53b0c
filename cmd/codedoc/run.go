// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/codedoc/pkg/codedoc"
)

// runDocument documents the module named by --file.
func runDocument(cmd *cobra.Command, args []string) error {
	module := viper.GetString("file")
	if module == "" {
		return fmt.Errorf("--file is required")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "codedoc"})
	if viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := codedoc.Config{
		Language:     viper.GetString("lang"),
		Dir:          viper.GetString("dir"),
		PythonPath:   viper.GetStringSlice("python-path"),
		Marker:       viper.GetString("marker"),
		Strategy:     viper.GetString("strategy"),
		DryRun:       viper.GetBool("dry-run"),
		ExportedOnly: viper.GetBool("exported-only"),
		RequireClean: viper.GetBool("require-clean"),
		Commit:       viper.GetBool("commit"),
		Logger:       logger,
	}

	d, err := codedoc.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := d.Document(ctx, module)
	if err != nil {
		return fmt.Errorf("documenting %s: %w", module, err)
	}

	if cfg.DryRun {
		fmt.Print(result.Diff)
		return nil
	}
	printResult(result)
	return nil
}

// printResult outputs the result as JSON to stdout.
func printResult(result *codedoc.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
