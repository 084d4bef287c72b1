/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package conventional

import (
	"strings"

	"chainguard.dev/semanticpr/failure"
)

// ValidateScope checks the scope of detail against rawScopes, a JSON array.
//
// Scope checking is opt-in: a nil detail or an empty rawScopes succeeds.
// A missing scope is compared as "", so listing "" permits titles without a
// scope. An empty array permits nothing.
func ValidateScope(detail *CommitDetail, rawScopes string) error {
	if detail == nil || strings.TrimSpace(rawScopes) == "" {
		return nil
	}

	allowed, err := ParseAllowList(ScopeTypesInput, rawScopes)
	if err != nil {
		return err
	}

	scope := detail.ScopeName()
	if allowed.Contains(scope) {
		return nil
	}
	return failure.New(failure.ScopeNotAllowed,
		"Invalid or missing scope: '%s'. Must be one of: %s", scope, allowed)
}
