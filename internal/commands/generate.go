// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dacolabs/jschema2py/internal/jschema"
	"github.com/dacolabs/jschema2py/internal/logger"
	"github.com/dacolabs/jschema2py/internal/output"
	"github.com/dacolabs/jschema2py/internal/session"
	"github.com/dacolabs/jschema2py/internal/translate"
)

const defaultFormat = "attrs"

type generateOptions struct {
	classes []string
	output  string
	format  string
	dryRun  bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Python classes from the project schema",
		Long: `Generate one Python module per class schema found in the project schema,
plus an __init__.py that re-exports every generated class.

Classes are taken from the schema's definitions and $defs. Enum definitions
are skipped. Available formats: ` + strings.Join(translators.Available(), ", "),
		Example: `  # Generate every class
  jschema2py generate

  # Generate selected classes into a custom directory
  jschema2py generate --class Widget,Bag --output out/models`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.classes, "class", "c", nil, "Classes to generate (default: all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: from "+session.ConfigFileName+")")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaultFormat, "Output format")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print generated files instead of writing them")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	factory, err := translators.Get(opts.format)
	if err != nil {
		return errors.WithHint(err, "available formats: "+strings.Join(translators.Available(), ", "))
	}
	translator := factory(translate.Options{Hints: ctx.Hints, Logger: logger.Logger})

	classes, err := jschema.Classes(ctx.Schema, ctx.Config.Root)
	if err != nil {
		return err
	}
	classes, err = selectClasses(classes, opts.classes)
	if err != nil {
		return err
	}

	outDir := ctx.OutputDir()
	if opts.output != "" {
		outDir = opts.output
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(ctx.Dir, outDir)
		}
	}
	out := cmd.OutOrStdout()

	var w output.Writer = output.NewDirWriter(outDir)
	var mem *output.MemoryWriter
	if opts.dryRun {
		mem = output.NewMemoryWriter()
		w = mem
	}

	_, _ = fmt.Fprintf(out, "Generating %d class(es)...\n", len(classes))

	var generated []string
	var failed []error
	for _, class := range classes {
		if jschema.IsEnum(class.Schema) {
			logger.Logger.Debug("skipping enum definition", zap.String(logger.FieldClass, class.Name))
			_, _ = fmt.Fprintf(out, "  - %s (enum, skipped)\n", class.Name)
			continue
		}
		if err := translator.Generate(class.Name, class.Schema, w); err != nil {
			failed = append(failed, err)
			_, _ = fmt.Fprintf(out, "  ✗ %s: %v\n", class.Name, err)
			continue
		}
		generated = append(generated, class.Name)
		_, _ = fmt.Fprintf(out, "  ✓ %s -> %s\n", class.Name, translator.FileName(class.Name))
	}

	if len(generated) > 0 {
		name, lines := translator.PackageInit(generated)
		if err := w.Write(name, lines); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}

	logger.Logger.Info("generation finished",
		zap.Int(logger.FieldCount, len(generated)),
		zap.String(logger.FieldFile, outDir),
	)

	if mem != nil {
		for _, name := range mem.Names() {
			_, _ = fmt.Fprintf(out, "\n==> %s <==\n%s", name, mem.Content(name))
		}
	}

	if len(failed) > 0 {
		return errors.Newf("failed to generate %d class(es)", len(failed))
	}
	if mem != nil {
		return nil
	}

	_, _ = fmt.Fprintf(out, "\nGenerated %d class(es) in %s\n", len(generated), outDir)
	return nil
}

// selectClasses filters classes down to names, keeping the original order.
// An empty names list selects every class.
func selectClasses(classes []jschema.Class, names []string) ([]jschema.Class, error) {
	if len(names) == 0 {
		return classes, nil
	}

	byName := make(map[string]jschema.Class, len(classes))
	for _, c := range classes {
		byName[c.Name] = c
	}

	wanted := make(map[string]bool, len(names))
	var unknown []string
	for _, n := range names {
		if _, ok := byName[n]; !ok {
			unknown = append(unknown, n)
			continue
		}
		wanted[n] = true
	}
	if len(unknown) > 0 {
		return nil, errors.WithHint(
			errors.Newf("unknown class(es): %s", strings.Join(unknown, ", ")),
			"run \"jschema2py classes\" to list the available classes",
		)
	}

	selected := make([]jschema.Class, 0, len(wanted))
	for _, c := range classes {
		if wanted[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
