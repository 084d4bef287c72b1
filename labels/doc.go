/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package labels keeps a pull request's labels in sync with its conventional
// commit classification.
//
// The reconciler follows the usual pattern: fetch the current state, compute
// the desired state, and apply the difference. Only labels in the managed
// universe (every allowed type, the "breaking change" label and, when scope
// labels are enabled, every allowed scope) are ever removed, so labels that
// people add by hand are left alone.
//
// # Basic Usage
//
//	r := labels.New(store,
//	    labels.WithTypes(types),
//	    labels.WithCustomLabels(custom),
//	)
//	plan, err := r.Reconcile(ctx, detail)
//	if err != nil {
//	    // Every planned call was attempted; err joins the ones that failed.
//	}
//
// The plan itself is a pure function of three sets and can be computed
// without any store:
//
//	plan := labels.ComputePlan(current, desired, managed)
package labels
