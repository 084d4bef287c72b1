/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package conventional

import (
	"errors"
	"testing"

	"chainguard.dev/semanticpr/failure"
)

func TestValidateScope(t *testing.T) {
	tests := []struct {
		name    string
		detail  *CommitDetail
		raw     string
		wantErr string
		kind    error
	}{{
		name:   "unset scope_types is a no-op",
		detail: &CommitDetail{Type: "feat", Scope: ptr("anything")},
		raw:    "",
	}, {
		name: "nil detail is a no-op",
		raw:  `["api"]`,
	}, {
		name:   "nil detail with broken config is still a no-op",
		raw:    `not json`,
		detail: nil,
	}, {
		name:   "allowed scope",
		detail: &CommitDetail{Type: "feat", Scope: ptr("signup")},
		raw:    `["login","signup","checkout"]`,
	}, {
		name:    "scope not allowed",
		detail:  &CommitDetail{Type: "feat", Scope: ptr("invalid")},
		raw:     `["login","signup","checkout"]`,
		wantErr: "Invalid or missing scope: 'invalid'. Must be one of: login, signup, checkout",
		kind:    failure.ScopeNotAllowed,
	}, {
		name:    "missing scope not allowed",
		detail:  &CommitDetail{Type: "feat"},
		raw:     `["login","signup","checkout"]`,
		wantErr: "Invalid or missing scope: ''. Must be one of: login, signup, checkout",
		kind:    failure.ScopeNotAllowed,
	}, {
		name:    "empty allow-list rejects any scope",
		detail:  &CommitDetail{Type: "feat", Scope: ptr("api")},
		raw:     `[]`,
		wantErr: "Invalid or missing scope: 'api'. Must be one of: ",
		kind:    failure.ScopeNotAllowed,
	}, {
		name:    "empty allow-list rejects a missing scope",
		detail:  &CommitDetail{Type: "feat"},
		raw:     `[]`,
		wantErr: "Invalid or missing scope: ''. Must be one of: ",
		kind:    failure.ScopeNotAllowed,
	}, {
		name:   "empty string permits a missing scope",
		detail: &CommitDetail{Type: "feat"},
		raw:    `["", "api"]`,
	}, {
		name:   "empty string permits an explicit empty scope",
		detail: &CommitDetail{Type: "feat", Scope: ptr(""), Breaking: true},
		raw:    `[""]`,
	}, {
		name:    "invalid config",
		detail:  &CommitDetail{Type: "feat"},
		raw:     `{"api": 1}`,
		wantErr: "Invalid scope_types input. Expecting a JSON array.",
		kind:    failure.InvalidConfig,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScope(tt.detail, tt.raw)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateScope() error: got = %v, wanted = nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateScope() error: got = nil, wanted = %q", tt.wantErr)
			}
			if got := err.Error(); got != tt.wantErr {
				t.Errorf("ValidateScope() error: got = %q, wanted = %q", got, tt.wantErr)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("error kind: got = %v, wanted = %v", err, tt.kind)
			}
		})
	}
}

func TestCommitDetailScopeName(t *testing.T) {
	var nilDetail *CommitDetail
	if nilDetail.HasScope() {
		t.Error("nil HasScope(): got = true, wanted = false")
	}
	if got := nilDetail.ScopeName(); got != "" {
		t.Errorf("nil ScopeName(): got = %q, wanted = \"\"", got)
	}

	d := &CommitDetail{Type: "fix", Scope: ptr("")}
	if !d.HasScope() {
		t.Error("explicit empty HasScope(): got = false, wanted = true")
	}
	if got := d.ScopeName(); got != "" {
		t.Errorf("explicit empty ScopeName(): got = %q, wanted = \"\"", got)
	}
}
