/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements a GitHub Action that checks pull request titles
// against the Conventional Commits format and labels the pull request with
// its commit type.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/semanticpr/action"
	"chainguard.dev/semanticpr/labels"
	"chainguard.dev/semanticpr/labels/githubstore"
	"chainguard.dev/semanticpr/metrics"
	"github.com/chainguard-dev/clog"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := action.LoadConfig(ctx, nil)
	if err != nil {
		(&action.Reporter{Stdout: os.Stdout}).Error(err)
		clog.FatalContextf(ctx, "loading config: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	ctx = clog.WithLogger(ctx, clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	code := run(ctx, cfg)
	cancel()
	os.Exit(code)
}

// run performs the check and returns the process exit code.
func run(ctx context.Context, cfg *action.Config) int {
	reporter := action.NewReporter(cfg)

	pr, err := action.LoadEvent(cfg.EventPath, cfg.Repository)
	if err != nil {
		reporter.Error(err)
		clog.ErrorContextf(ctx, "loading event: %v", err)
		return 1
	}
	if pr == nil {
		reporter.Warning("No pull request in the " + cfg.EventName + " event payload, skipping")
		return 0
	}

	gh, err := githubstore.NewClient(ctx, cfg.AuthToken(), cfg.APIURL)
	if err != nil {
		reporter.Error(err)
		clog.ErrorContextf(ctx, "creating GitHub client: %v", err)
		return 1
	}
	if cfg.AuthToken() != "" {
		pr = action.Refresh(ctx, gh, pr)
	}

	ctx = clog.WithLogger(ctx, clog.FromContext(ctx).With("repository", pr.Repository(), "pull_request", pr.Number))
	clog.InfoContextf(ctx, "Checking pull request %s#%d: %q", pr.Repository(), pr.Number, pr.Title)

	lm := metrics.NewLabels("chainguard.dev/semanticpr")
	lm.SetAttributeEnricher(metrics.PullRequestEnricher(pr.Repository(), pr.Number))

	outcome := action.Run(ctx, action.NewRequest(cfg, pr),
		githubstore.New(gh, pr.Owner, pr.Repo, pr.Number),
		labels.WithMetrics(lm),
	)

	if err := reporter.Report(pr, outcome); err != nil {
		clog.WarnContextf(ctx, "reporting outcome: %v", err)
	}

	if cfg.Pushgateway != "" {
		runs := metrics.NewRuns()
		outcome.Observe(runs)
		if err := runs.Push(ctx, cfg.Pushgateway, "semantic-pr", pr.Repository()); err != nil {
			clog.WarnContextf(ctx, "%v", err)
		}
	}

	if !outcome.Passed() {
		return 1
	}
	clog.InfoContextf(ctx, "All checks passed")
	return 0
}
