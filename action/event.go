/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// PullRequest identifies the pull request under check.
type PullRequest struct {
	Owner  string
	Repo   string
	Number int
	Title  string
	Body   string
}

// Repository returns "owner/repo".
func (pr *PullRequest) Repository() string {
	return pr.Owner + "/" + pr.Repo
}

// LoadEvent reads the pull request from the event payload at path. It returns
// nil without error for events that carry no pull request. repository
// ("owner/repo") is used when the payload omits the repository.
func LoadEvent(path, repository string) (*PullRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event payload: %w", err)
	}

	// pull_request and pull_request_target share this payload shape.
	var event github.PullRequestEvent
	if err := json.Unmarshal(b, &event); err != nil {
		return nil, fmt.Errorf("decoding event payload: %w", err)
	}
	pr := event.GetPullRequest()
	if pr == nil {
		return nil, nil
	}

	owner := event.GetRepo().GetOwner().GetLogin()
	repo := event.GetRepo().GetName()
	if owner == "" || repo == "" {
		var ok bool
		owner, repo, ok = strings.Cut(repository, "/")
		if !ok {
			return nil, fmt.Errorf("cannot determine repository from payload or %q", repository)
		}
	}

	return &PullRequest{
		Owner:  owner,
		Repo:   repo,
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
	}, nil
}

// Refresh re-reads the title and body from the API, since a re-run job sees
// the payload of the original event. On failure pr is returned unchanged.
func Refresh(ctx context.Context, gh *github.Client, pr *PullRequest) *PullRequest {
	live, _, err := gh.PullRequests.Get(ctx, pr.Owner, pr.Repo, pr.Number)
	if err != nil {
		clog.FromContext(ctx).Warnf("Failed to fetch pull request, using event payload: %v", err)
		return pr
	}
	refreshed := *pr
	refreshed.Title = live.GetTitle()
	refreshed.Body = live.GetBody()
	return &refreshed
}
