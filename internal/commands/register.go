// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/jschema2py/internal/logger"
	"github.com/dacolabs/jschema2py/internal/translate"
	"github.com/dacolabs/jschema2py/internal/version"
)

// LogJSONEnv enables JSON logs when set to "1".
const LogJSONEnv = "JSCHEMA2PY_LOG_JSON"

type rootOptions struct {
	verbose bool
	logJSON bool
}

// NewRootCmd creates and returns the root command for the CLI.
// getenv may be nil.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}
	if getenv != nil {
		opts.logJSON = getenv(LogJSONEnv) == "1"
	}

	// Subcommands with their own PersistentPreRunE still initialize logging.
	cobra.EnableTraverseRunHooks = true

	rootCmd := &cobra.Command{
		Use:           "jschema2py",
		Short:         "Generate Python attrs classes from JSON Schema",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(opts.verbose, opts.logJSON)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", opts.logJSON, "Write logs as JSON (also "+LogJSONEnv+"=1)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd(translators))
	rootCmd.AddCommand(newClassesCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
