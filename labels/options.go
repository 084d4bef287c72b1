/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package labels

import (
	"chainguard.dev/semanticpr/conventional"
	"chainguard.dev/semanticpr/metrics"
)

// Option configures the Reconciler.
type Option func(*Reconciler)

// WithApply turns reconciliation on or off. When off, Reconcile makes no
// store calls at all.
func WithApply(apply bool) Option {
	return func(r *Reconciler) {
		r.apply = apply
	}
}

// WithTypes sets the allowed commit types, which are all managed labels.
func WithTypes(types conventional.AllowList) Option {
	return func(r *Reconciler) {
		r.types = types
	}
}

// WithScopeLabels applies the commit scope as a label when it is one of
// scopes, and manages every non-empty scope in scopes.
func WithScopeLabels(scopes conventional.AllowList) Option {
	return func(r *Reconciler) {
		r.scopeLabels = true
		r.scopes = scopes
	}
}

// WithCustomLabels merges extra labels into the desired set.
func WithCustomLabels(custom CustomLabels) Option {
	return func(r *Reconciler) {
		r.custom = custom
	}
}

// WithColors overrides the color used when creating missing labels.
func WithColors(colorFor func(string) string) Option {
	return func(r *Reconciler) {
		r.colorFor = colorFor
	}
}

// WithMetrics records every store call on m.
func WithMetrics(m *metrics.Labels) Option {
	return func(r *Reconciler) {
		r.metrics = m
	}
}
