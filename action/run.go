/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"context"

	"chainguard.dev/semanticpr/conventional"
	"chainguard.dev/semanticpr/labels"
	"chainguard.dev/semanticpr/pattern"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Request is everything a check needs, read up front.
type Request struct {
	Title string

	TaskTypes     string
	ScopeTypes    string
	AddLabel      bool
	AddScopeLabel bool
	CustomLabels  string

	Regex     string
	RegexText string
}

// NewRequest builds a Request from the configuration and pull request. The
// pattern text defaults to the title.
func NewRequest(cfg *Config, pr *PullRequest) Request {
	text := cfg.RegexText
	if text == "" {
		text = pr.Title
	}
	return Request{
		Title:         pr.Title,
		TaskTypes:     cfg.TaskTypes,
		ScopeTypes:    cfg.ScopeTypes,
		AddLabel:      cfg.LabelsEnabled(),
		AddScopeLabel: cfg.ScopeLabelsEnabled(),
		CustomLabels:  cfg.CustomLabels,
		Regex:         cfg.Regex,
		RegexText:     text,
	}
}

// Outcome is the result of a check.
type Outcome struct {
	// Detail is nil when the title could not be classified.
	Detail *conventional.CommitDetail
	// Plan is nil when labels were not reconciled.
	Plan     *labels.Plan
	Failures []error
}

// Passed reports whether no step failed.
func (o *Outcome) Passed() bool {
	return len(o.Failures) == 0
}

// Run performs every step of the check. A failing step does not stop the
// others; only scope validation and labeling, which need a classification,
// are skipped when the title cannot be classified.
func Run(ctx context.Context, req Request, store labels.Store, opts ...labels.Option) *Outcome {
	ctx, span := otel.Tracer("chainguard.dev/semanticpr/action").Start(ctx, "action.Run")
	defer span.End()

	log := clog.FromContext(ctx)
	out := &Outcome{}
	fail := func(err error) {
		log.With("error", err).Error("Check failed")
		span.RecordError(err)
		out.Failures = append(out.Failures, err)
	}

	types, err := conventional.ParseAllowList(conventional.TaskTypesInput, req.TaskTypes)
	if err != nil {
		fail(err)
	} else if out.Detail, err = conventional.Classify(req.Title, types); err != nil {
		fail(err)
	} else {
		log.With("type", out.Detail.Type).
			With("scope", out.Detail.ScopeName()).
			With("breaking", out.Detail.Breaking).
			Info("Classified pull request title")
		span.SetAttributes(
			attribute.String("commit.type", out.Detail.Type),
			attribute.Bool("commit.breaking", out.Detail.Breaking),
		)
	}

	if err := conventional.ValidateScope(out.Detail, req.ScopeTypes); err != nil {
		fail(err)
	}

	if req.Regex != "" {
		if err := pattern.Matches(req.Regex, req.RegexText); err != nil {
			fail(err)
		}
	}

	if out.Detail != nil && req.AddLabel {
		plan, err := reconcileLabels(ctx, req, out.Detail, types, store, opts)
		if err != nil {
			fail(err)
		}
		out.Plan = plan
	}

	if !out.Passed() {
		span.SetStatus(codes.Error, "check failed")
	}
	return out
}

func reconcileLabels(ctx context.Context, req Request, detail *conventional.CommitDetail, types conventional.AllowList, store labels.Store, extra []labels.Option) (*labels.Plan, error) {
	custom, err := labels.ParseCustomLabels(req.CustomLabels)
	if err != nil {
		return nil, err
	}

	opts := []labels.Option{
		labels.WithTypes(types),
		labels.WithCustomLabels(custom),
	}
	if req.AddScopeLabel {
		// Only allow-listed scopes become labels. A broken scope_types was
		// already reported by scope validation.
		scopes, err := conventional.ParseAllowList(conventional.ScopeTypesInput, req.ScopeTypes)
		if err != nil {
			clog.FromContext(ctx).Warnf("Scope labels need a valid scope_types, skipping them: %v", err)
		}
		opts = append(opts, labels.WithScopeLabels(scopes))
	}
	opts = append(opts, extra...)

	return labels.New(store, opts...).Reconcile(ctx, detail)
}
