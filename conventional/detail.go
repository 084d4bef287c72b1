/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package conventional

// CommitDetail is the classification of a conventional commit title.
type CommitDetail struct {
	Type string
	// Scope is nil when the title has no parentheses at all, and points at
	// the empty string for an explicit empty scope such as "feat()!: ...".
	Scope    *string
	Breaking bool
}

// HasScope reports whether the title carried a parenthesized scope.
func (d *CommitDetail) HasScope() bool {
	return d != nil && d.Scope != nil
}

// ScopeName returns the scope, or "" when there is none.
func (d *CommitDetail) ScopeName() string {
	if !d.HasScope() {
		return ""
	}
	return *d.Scope
}
