/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package labels

import (
	"chainguard.dev/semanticpr/conventional"
)

// BreakingChange is the label applied to breaking changes.
const BreakingChange = "breaking change"

// Plan is the set of label changes needed to converge a pull request.
type Plan struct {
	Add    []string
	Remove []string
}

// Empty reports whether the plan has nothing to do.
func (p *Plan) Empty() bool {
	return p == nil || (len(p.Add) == 0 && len(p.Remove) == 0)
}

// ComputePlan diffs current against desired. Only labels in managed are
// eligible for removal. Both lists are sorted.
func ComputePlan(current, desired, managed Set) *Plan {
	plan := &Plan{}
	for _, name := range desired.Sorted() {
		if !current.Has(name) {
			plan.Add = append(plan.Add, name)
		}
	}
	for _, name := range current.Sorted() {
		if managed.Has(name) && !desired.Has(name) {
			plan.Remove = append(plan.Remove, name)
		}
	}
	return plan
}

// Desired returns the labels implied by detail: its type, the breaking change
// label when breaking, any custom labels keyed by the type or by BreakingKey,
// and the scope itself when it is one of scopes. A nil scopes applies no
// scope label, so only scopes the reconciler can later remove are added.
func Desired(detail *conventional.CommitDetail, custom CustomLabels, scopes Set) Set {
	desired := NewSet()
	if detail == nil {
		return desired
	}

	desired.Insert(detail.Type)
	desired.Insert(custom[detail.Type]...)
	if detail.Breaking {
		desired.Insert(BreakingChange)
		desired.Insert(custom[BreakingKey]...)
	}
	if scope := detail.ScopeName(); scopes.Has(scope) {
		desired.Insert(scope)
	}
	return desired
}

// Managed returns the universe of labels the reconciler may remove.
func Managed(types, scopes conventional.AllowList) Set {
	managed := NewSet(types...)
	managed.Insert(BreakingChange)
	managed.Insert(scopes...)
	return managed
}
