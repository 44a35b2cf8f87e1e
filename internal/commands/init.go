// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dacolabs/jschema2py/internal/config"
	"github.com/dacolabs/jschema2py/internal/prompts"
	"github.com/dacolabs/jschema2py/internal/session"
	"github.com/dacolabs/jschema2py/internal/translate"
)

type initOptions struct {
	schema         string
	hints          string
	output         string
	root           string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new jschema2py project",
		Long: `Initialize a new jschema2py project with a jschema2py.yaml configuration file
pointing at the JSON Schema to generate classes from.`,
		Example: `  # Interactive mode
  jschema2py init

  # Non-interactive
  jschema2py init --schema schemas/sarif.schema.json --hints schemas/sarif.hints.json --non-interactive
  jschema2py init --schema sarif.schema.json --root SarifLog --output sarif --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Path to the JSON Schema")
	cmd.Flags().StringVar(&opts.hints, "hints", "", "Path to a code generation hints file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output directory for generated modules")
	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "Class name for the root schema (root is skipped when empty)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --schema)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get current directory")
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.Newf("%s already exists; project already initialized", session.ConfigFileName)
	}

	if opts.nonInteractive {
		if opts.schema == "" {
			return errors.New("non-interactive mode requires --schema")
		}
	} else {
		if err := prompts.RunInitForm(&opts.schema, &opts.hints, &opts.output, &opts.root); err != nil {
			return err
		}
	}

	if opts.root != "" && !translate.IsIdentifier(opts.root) {
		return errors.Newf("root class name %q is not a valid identifier", opts.root)
	}

	schemaPath := opts.schema
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(cwd, schemaPath)
	}
	if _, err := os.Stat(schemaPath); err != nil {
		return errors.WithHint(
			errors.Newf("schema file not found: %s", opts.schema),
			"pass the path of an existing JSON Schema with --schema",
		)
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  opts.schema,
		Hints:   opts.hints,
		Root:    opts.root,
	}
	if opts.output != config.DefaultOutput {
		cfg.Output = opts.output
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if err := cfg.Save(configPath); err != nil {
		return errors.Wrapf(err, "failed to write %s", session.ConfigFileName)
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Schema", Value: cfg.Schema},
	}
	if cfg.Hints != "" {
		fields = append(fields, prompts.ResultField{Label: "Hints", Value: cfg.Hints})
	}
	fields = append(fields, prompts.ResultField{Label: "Output", Value: cfg.OutputDir()})
	if cfg.Root != "" {
		fields = append(fields, prompts.ResultField{Label: "Root class", Value: cfg.Root})
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Initialization completed")

	return nil
}
