/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package labels

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/semanticpr/conventional"
	"chainguard.dev/semanticpr/failure"
	"chainguard.dev/semanticpr/metrics"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const instrumentationName = "chainguard.dev/semanticpr/labels"

// Store is the set of labels attached to one pull request.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}

// Creator is implemented by stores that can create a repository label
// before it is first attached.
type Creator interface {
	Ensure(ctx context.Context, name, color string) error
}

// Reconciler converges a pull request's labels on its classification.
type Reconciler struct {
	store Store

	apply       bool
	types       conventional.AllowList
	scopes      conventional.AllowList
	scopeLabels bool
	custom      CustomLabels
	colorFor    func(string) string
	metrics     *metrics.Labels
}

// New creates a Reconciler over store. Reconciliation is on by default.
func New(store Store, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:    store,
		apply:    true,
		colorFor: ColorFor,
		metrics:  metrics.NewLabels(instrumentationName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Managed returns the labels this reconciler may remove.
func (r *Reconciler) Managed() Set {
	return Managed(r.types, r.scopeSet().Sorted())
}

// scopeSet returns the scopes applied as labels, or nil when scope labels
// are off.
func (r *Reconciler) scopeSet() Set {
	if !r.scopeLabels {
		return nil
	}
	return NewSet(r.scopes...)
}

// Reconcile lists the current labels, then removes and adds labels until the
// pull request carries exactly the desired managed labels.
//
// Every planned call is attempted even if an earlier one fails; the returned
// error joins all failures. A nil detail or a disabled reconciler is a no-op.
func (r *Reconciler) Reconcile(ctx context.Context, detail *conventional.CommitDetail) (*Plan, error) {
	if !r.apply || detail == nil {
		return &Plan{}, nil
	}

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "labels.Reconcile")
	defer span.End()

	log := clog.FromContext(ctx)

	current, err := r.store.List(ctx)
	r.metrics.RecordOperation(ctx, metrics.OpList, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing labels")
		return nil, failure.Wrap(failure.LabelStore, fmt.Errorf("listing labels: %w", err))
	}

	plan := ComputePlan(NewSet(current...), Desired(detail, r.custom, r.scopeSet()), r.Managed())
	span.SetAttributes(
		attribute.StringSlice("labels.add", plan.Add),
		attribute.StringSlice("labels.remove", plan.Remove),
	)
	if plan.Empty() {
		log.Info("Labels are up to date")
		return plan, nil
	}

	var errs []error
	for _, name := range plan.Remove {
		log.With("label", name).Info("Removing label")
		err := r.store.Remove(ctx, name)
		r.metrics.RecordOperation(ctx, metrics.OpRemove, err)
		if err != nil {
			errs = append(errs, failure.Wrap(failure.LabelStore, fmt.Errorf("removing label %q: %w", name, err)))
		}
	}

	creator, _ := r.store.(Creator)
	for _, name := range plan.Add {
		if creator != nil {
			// The add call creates missing labels with a default color, so a
			// failure here only costs the color.
			err := creator.Ensure(ctx, name, r.colorFor(name))
			r.metrics.RecordOperation(ctx, metrics.OpEnsure, err)
			if err != nil {
				log.With("label", name).Warnf("Failed to ensure label exists: %v", err)
			}
		}

		log.With("label", name).Info("Adding label")
		err := r.store.Add(ctx, name)
		r.metrics.RecordOperation(ctx, metrics.OpAdd, err)
		if err != nil {
			errs = append(errs, failure.Wrap(failure.LabelStore, fmt.Errorf("adding label %q: %w", name, err)))
		}
	}

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "applying label plan")
		return plan, err
	}
	return plan, nil
}
