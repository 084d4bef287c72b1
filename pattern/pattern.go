/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package pattern checks free-form text against a regular expression,
// independently of any commit grammar.
package pattern

import (
	"regexp"

	"chainguard.dev/semanticpr/failure"
)

// Matches succeeds when expr matches anywhere in text.
func Matches(expr, text string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return failure.New(failure.InvalidConfig, "Invalid regex input: %v", err)
	}
	if re.MatchString(text) {
		return nil
	}
	return failure.New(failure.PatternMismatch,
		"The text is not compliant with the specified regex...\n%s\n%s", text, expr)
}
