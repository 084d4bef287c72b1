/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Runs counts check outcomes with Prometheus. A workflow step is too short
// lived to be scraped, so the counters are pushed to a Pushgateway at the end
// of the run when one is configured.
type Runs struct {
	registry *prometheus.Registry

	checks   *prometheus.CounterVec
	failures *prometheus.CounterVec
	changes  *prometheus.CounterVec
}

// NewRuns creates the run counters on a private registry.
func NewRuns() *Runs {
	r := &Runs{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semantic_pr_checks_total",
				Help: "Total number of pull request title checks, by result and commit type",
			},
			[]string{"result", "type"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semantic_pr_failures_total",
				Help: "Total number of reported failures, by kind",
			},
			[]string{"kind"},
		),
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semantic_pr_label_changes_total",
				Help: "Total number of planned label changes, by operation",
			},
			[]string{"operation"},
		),
	}
	r.registry.MustRegister(r.checks, r.failures, r.changes)
	return r
}

// Gatherer exposes the registry, mainly for tests.
func (r *Runs) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Check records one check. An empty commitType is reported as "unknown".
func (r *Runs) Check(passed bool, commitType string) {
	result := "pass"
	if !passed {
		result = "fail"
	}
	if commitType == "" {
		commitType = "unknown"
	}
	r.checks.With(prometheus.Labels{"result": result, "type": commitType}).Inc()
}

// Failure records one failure of the given kind.
func (r *Runs) Failure(kind string) {
	r.failures.With(prometheus.Labels{"kind": kind}).Inc()
}

// LabelChanges records the size of a label plan.
func (r *Runs) LabelChanges(added, removed int) {
	r.changes.With(prometheus.Labels{"operation": OpAdd}).Add(float64(added))
	r.changes.With(prometheus.Labels{"operation": OpRemove}).Add(float64(removed))
}

// Push sends the counters to the Pushgateway at url under job, grouped by
// repository.
func (r *Runs) Push(ctx context.Context, url, job, repository string) error {
	pusher := push.New(url, job).
		Gatherer(r.registry).
		Grouping("repository", repository)
	if err := pusher.AddContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics: %w", err)
	}
	return nil
}
