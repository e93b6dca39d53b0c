// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command codedoc adds placeholder documentation to every undocumented
// top-level function of a Go package or Python module.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/codedoc/pkg/codedoc"
)

const version = "0.1.0"

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command, which documents the module named by --file.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codedoc",
		Short: "Add placeholder documentation to undocumented functions",
		Long: "codedoc finds every top-level function of a Go package or Python module that has no\n" +
			"documentation, adds a placeholder doc comment or docstring, and rewrites the source in place.",
		SilenceUsage: true,
		RunE:         runDocument,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", "", "Module to document (Go package path or dotted Python module name)")
	flags.String("lang", "go", "Module language: go or python")
	flags.StringP("dir", "C", ".", "Directory modules are resolved from")
	flags.StringSlice("python-path", nil, "Additional Python module search roots")
	flags.String("marker", codedoc.DefaultMarker, "Placeholder documentation text")
	flags.String("strategy", "span", "How rewrites are located: span or text")
	flags.Bool("dry-run", false, "Print a diff instead of rewriting files")
	flags.Bool("exported-only", false, "Go only: document exported functions and methods only")
	flags.Bool("require-clean", false, "Refuse to overwrite files with uncommitted changes")
	flags.Bool("commit", false, "Commit the rewritten files")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	// Bind flags to viper.
	for _, name := range []string{
		"file", "lang", "dir", "python-path", "marker", "strategy",
		"dry-run", "exported-only", "require-clean", "commit", "verbose",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: CODEDOC_FILE, CODEDOC_LANG, etc.
	viper.SetEnvPrefix("CODEDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".codedoc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print codedoc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codedoc %s\n", version)
		},
	}
}
