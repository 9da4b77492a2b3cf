// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rosmsg2asn1 Authors

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for the messages to translate when none were given
// on the command line. available holds every resolvable "pkg/Name".
func RunGenerateForm(selected *[]string, available []string) error {
	if len(available) == 0 {
		return errors.New("no messages found in the search path")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Messages to translate").
				Options(huh.NewOptions(available...)...).
				Filterable(true).
				Value(selected),
		),
	).WithTheme(Theme())

	return form.Run()
}
