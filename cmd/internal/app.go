// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/bodkin/internal/commands"
	"github.com/dacolabs/bodkin/internal/session"
	"github.com/dacolabs/bodkin/internal/translate"
	"github.com/dacolabs/bodkin/internal/translate/avro"
	"github.com/dacolabs/bodkin/internal/translate/gotypes"
	"github.com/dacolabs/bodkin/internal/translate/jsonschema"
	"github.com/dacolabs/bodkin/internal/translate/markdown"
	"github.com/dacolabs/bodkin/internal/translate/protobuf"
	"github.com/dacolabs/bodkin/internal/translate/rust"
)

// Translators returns every output target keyed by its --target name.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators["rust"] = &rust.Translator{}
	translators["go"] = &gotypes.Translator{}
	translators["jsonschema"] = &jsonschema.Translator{}
	translators["avro"] = &avro.Translator{}
	translators["protobuf"] = &protobuf.Translator{}
	translators["markdown"] = &markdown.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(Translators(), getenv)
	executed, err := rootCmd.ExecuteContextC(ctx)
	session.FromCommand(executed).Close()
	return err
}
