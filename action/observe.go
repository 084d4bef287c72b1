/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"errors"

	"chainguard.dev/semanticpr/failure"
	"chainguard.dev/semanticpr/metrics"
)

var kinds = []error{
	failure.MissingInput,
	failure.InvalidConfig,
	failure.NonConformingTitle,
	failure.ScopeNotAllowed,
	failure.PatternMismatch,
	failure.LabelStore,
}

// Observe records the outcome on runs.
func (o *Outcome) Observe(runs *metrics.Runs) {
	commitType := ""
	if o.Detail != nil {
		commitType = o.Detail.Type
	}
	runs.Check(o.Passed(), commitType)

	for _, err := range o.Failures {
		runs.Failure(kindOf(err))
	}
	if o.Plan != nil {
		runs.LabelChanges(len(o.Plan.Add), len(o.Plan.Remove))
	}
}

func kindOf(err error) string {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "unknown"
}
