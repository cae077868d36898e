// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// Source kinds offered by RunSourceForm.
const (
	SourceFile    = "file"
	SourceDataset = "dataset"
)

// RunSourceForm asks where the schema comes from and, when askTarget is
// set, which output target to render. It fills the provided pointers.
func RunSourceForm(kind, path, dataset, target *string, datasets, targets []string, askTarget bool) error {
	if *kind == "" {
		*kind = SourceFile
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Schema source").
				Options(
					huh.NewOption("Local Parquet file", SourceFile),
					huh.NewOption("Known dataset", SourceDataset),
				).
				Value(kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Path to Parquet file").
				Placeholder("data.parquet").
				Validate(requiredValidator("file path")).
				Value(path),
		).WithHideFunc(func() bool { return *kind != SourceFile }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dataset").
				Options(selectOptions(datasets)...).
				Value(dataset),
		).WithHideFunc(func() bool { return *kind != SourceDataset }),
		huh.NewGroup(
			TargetSelect(target, targets),
		).WithHideFunc(func() bool { return !askTarget }),
	).WithTheme(Theme()).Run()
}

// TargetSelect returns a select field for choosing the output target.
func TargetSelect(value *string, targets []string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Output target").
		Options(selectOptions(targets)...).
		Value(value)
}
