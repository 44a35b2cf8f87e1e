// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/jschema2py/internal/jschema"
	"github.com/dacolabs/jschema2py/internal/session"
	"github.com/dacolabs/jschema2py/internal/translate"
)

func newClassesCmd(translators translate.Register) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the classes found in the project schema",
		Example: `  # List classes and their module files
  jschema2py classes`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			factory, err := translators.Get(format)
			if err != nil {
				return err
			}
			return runClasses(cmd, ctx, factory(translate.Options{}))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", defaultFormat, "Output format used to name module files")

	return cmd
}

func runClasses(cmd *cobra.Command, ctx *session.Context, translator translate.Translator) error {
	classes, err := jschema.Classes(ctx.Schema, ctx.Config.Root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(classes) == 0 {
		_, _ = fmt.Fprintln(out, "No classes found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CLASS\tFILE\tSOURCE")
	for _, c := range classes {
		file := translator.FileName(c.Name)
		source := c.DefName
		switch {
		case source == "":
			source = "(root)"
		case jschema.IsEnum(c.Schema):
			file = "-"
			source += " (enum)"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, file, source)
	}
	return w.Flush()
}
