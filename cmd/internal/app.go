// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/jschema2py/internal/commands"
	"github.com/dacolabs/jschema2py/internal/translate"
	"github.com/dacolabs/jschema2py/internal/translate/attrs"
)

func registerTranslators() translate.Register {
	translators := make(translate.Register)
	translators["attrs"] = attrs.New
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	translators := registerTranslators()
	rootCmd := commands.NewRootCmd(translators, getenv)
	return rootCmd.ExecuteContext(ctx)
}
