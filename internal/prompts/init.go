// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(target, pkg, onCollision *string, targets, policies []string) error {
	return huh.NewForm(
		huh.NewGroup(
			TargetSelect(target, targets),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Package name").
				Description("Used by targets that emit a package clause").
				Placeholder("models").
				Validate(identifierValidator).
				Value(pkg),
			huh.NewSelect[string]().
				Title("When two nested groups share a name").
				Options(selectOptions(policies)...).
				Value(onCollision),
		),
	).WithTheme(Theme()).Run()
}
