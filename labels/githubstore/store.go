/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package githubstore implements labels.Store over the GitHub REST API.
package githubstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"chainguard.dev/semanticpr/labels"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// NewClient returns a GitHub client authenticated with token. A non-empty
// apiURL other than the public API selects a GitHub Enterprise Server.
func NewClient(ctx context.Context, token, apiURL string) (*github.Client, error) {
	var hc *http.Client
	if token != "" {
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	gh := github.NewClient(hc)

	if apiURL == "" || strings.TrimSuffix(apiURL, "/") == "https://api.github.com" {
		return gh, nil
	}
	gh, err := gh.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configuring enterprise URL %q: %w", apiURL, err)
	}
	return gh, nil
}

// Store is the label set of a single pull request.
type Store struct {
	client  *github.Client
	owner   string
	repo    string
	number  int
	backoff Backoff
}

// Option configures a Store.
type Option func(*Store)

// WithBackoff replaces DefaultBackoff.
func WithBackoff(b Backoff) Option {
	return func(s *Store) {
		s.backoff = b
	}
}

var (
	_ labels.Store   = (*Store)(nil)
	_ labels.Creator = (*Store)(nil)
)

// New returns the label store of pull request owner/repo#number.
func New(client *github.Client, owner, repo string, number int, opts ...Option) *Store {
	s := &Store{
		client:  client,
		owner:   owner,
		repo:    repo,
		number:  number,
		backoff: DefaultBackoff(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the names of every label on the pull request.
//
// List, Add and Remove return go-github errors as they are; callers add the
// operation and label name.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := withRetry(ctx, s.backoff, "list_labels", func() ([]*github.Label, *github.Response, error) {
			return s.client.Issues.ListLabelsByIssue(ctx, s.owner, s.repo, s.number, opts)
		})
		if err != nil {
			return nil, err
		}
		for _, l := range page {
			names = append(names, l.GetName())
		}
		if resp.NextPage == 0 {
			return names, nil
		}
		opts.Page = resp.NextPage
	}
}

// Add attaches the label to the pull request.
func (s *Store) Add(ctx context.Context, name string) error {
	_, _, err := withRetry(ctx, s.backoff, "add_label", func() ([]*github.Label, *github.Response, error) {
		return s.client.Issues.AddLabelsToIssue(ctx, s.owner, s.repo, s.number, []string{name})
	})
	return err
}

// Remove detaches the label from the pull request. A label that is already
// gone is not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	_, resp, err := withRetry(ctx, s.backoff, "remove_label", func() (struct{}, *github.Response, error) {
		resp, err := s.client.Issues.RemoveLabelForIssue(ctx, s.owner, s.repo, s.number, name)
		return struct{}{}, resp, err
	})
	if err != nil && !isNotFound(resp, err) {
		return err
	}
	return nil
}

// Ensure creates the repository label with color unless it already exists.
func (s *Store) Ensure(ctx context.Context, name, color string) error {
	_, resp, err := withRetry(ctx, s.backoff, "get_label", func() (*github.Label, *github.Response, error) {
		return s.client.Issues.GetLabel(ctx, s.owner, s.repo, name)
	})
	switch {
	case err == nil:
		return nil
	case !isNotFound(resp, err):
		return fmt.Errorf("getting label: %w", err)
	}

	_, resp, err = withRetry(ctx, s.backoff, "create_label", func() (*github.Label, *github.Response, error) {
		return s.client.Issues.CreateLabel(ctx, s.owner, s.repo, &github.Label{
			Name:  github.Ptr(name),
			Color: github.Ptr(color),
		})
	})
	if err != nil {
		// Someone else created it between the two calls.
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return nil
		}
		return fmt.Errorf("creating label: %w", err)
	}
	return nil
}

func isNotFound(resp *github.Response, err error) bool {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
