/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package conventional

import (
	"regexp"

	"chainguard.dev/semanticpr/failure"
)

// titleRegex matches "type(scope)!: description". Groups: 1 type, 2 the
// parenthesized scope, 3 the scope itself, 4 the breaking marker.
var titleRegex = regexp.MustCompile(`^([^\s()!:]+)(\(([^)]*)\))?(!)?:`)

// Classify parses title and checks its type against allowed.
func Classify(title string, allowed AllowList) (*CommitDetail, error) {
	m := titleRegex.FindStringSubmatchIndex(title)
	if m == nil {
		return nil, nonConforming(title, allowed)
	}

	detail := &CommitDetail{
		Type:     title[m[2]:m[3]],
		Breaking: m[8] >= 0,
	}
	if m[4] >= 0 {
		scope := title[m[6]:m[7]]
		detail.Scope = &scope
	}

	if !allowed.Contains(detail.Type) {
		return nil, nonConforming(title, allowed)
	}
	return detail, nil
}

func nonConforming(title string, allowed AllowList) error {
	return failure.New(failure.NonConformingTitle,
		"Invalid pull request title: '%s'. Expected '<type>(<scope>)!: <description>' with type one of: %s",
		title, allowed)
}
