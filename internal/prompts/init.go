// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input; values already set are
// offered as defaults.
func RunInitForm(schema, hints, output, root *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to the JSON Schema").
				Placeholder("schemas/model.schema.json").
				Validate(requiredValidator("schema path")).
				Value(schema),
			huh.NewInput().
				Title("Path to a code generation hints file (optional)").
				Placeholder("schemas/model.hints.json").
				Value(hints),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("generated").
				Value(output),
			huh.NewInput().
				Title("Class name for the root schema (optional)").
				Validate(classNameValidator).
				Value(root),
		),
	).WithTheme(Theme()).Run()
}
