/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainguard.dev/semanticpr/conventional"
	"chainguard.dev/semanticpr/failure"
	"chainguard.dev/semanticpr/labels"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// parseOutputs decodes a GITHUB_OUTPUT file written with heredoc delimiters.
func parseOutputs(t *testing.T, content string) map[string]string {
	t.Helper()
	out := map[string]string{}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		name, delim, ok := strings.Cut(lines[i], "<<")
		require.True(t, ok, "line %d is not a heredoc start: %q", i, lines[i])
		var value []string
		for i++; i < len(lines) && lines[i] != delim; i++ {
			value = append(value, lines[i])
		}
		require.Less(t, i, len(lines), "unterminated value for %s", name)
		out[name] = strings.Join(value, "\n")
	}
	return out
}

func TestEscapeData(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"100%", "100%25"},
		{"a\nb", "a%0Ab"},
		{"a\r\nb", "a%0D%0Ab"},
		{"%0A", "%250A"},
	}
	for _, tt := range tests {
		if got := escapeData(tt.in); got != tt.want {
			t.Errorf("escapeData(%q): got = %q, wanted = %q", tt.in, got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	r := &Reporter{
		Stdout:      &stdout,
		OutputPath:  filepath.Join(dir, "output"),
		SummaryPath: filepath.Join(dir, "summary"),
	}

	scope := "api"
	out := &Outcome{
		Detail: &conventional.CommitDetail{Type: "feat", Scope: &scope, Breaking: true},
		Plan:   &labels.Plan{Add: []string{labels.BreakingChange, "feat"}, Remove: []string{"fix"}},
		Failures: []error{
			failure.New(failure.PatternMismatch, "The text is not compliant with the specified regex...\n%s\n%s", "body", `\d+`),
		},
	}
	pr := &PullRequest{Owner: "octo", Repo: "repo", Number: 7, Title: "feat(api)!: drop v1"}

	require.NoError(t, r.Report(pr, out))

	wantStdout := "::error::The text is not compliant with the specified regex...%0Abody%0A\\d+\n"
	if got := stdout.String(); got != wantStdout {
		t.Errorf("stdout: got = %q, wanted = %q", got, wantStdout)
	}

	b, err := os.ReadFile(r.OutputPath)
	require.NoError(t, err)
	want := map[string]string{
		"type":           "feat",
		"scope":          "api",
		"breaking":       "true",
		"labels_added":   "breaking change,feat",
		"labels_removed": "fix",
	}
	if diff := cmp.Diff(want, parseOutputs(t, string(b))); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}

	b, err = os.ReadFile(r.SummaryPath)
	require.NoError(t, err)
	for _, s := range []string{"## Semantic Pull Request", "❌ Found 1 issue(s)", "### Issues", "octo/repo#7"} {
		if !strings.Contains(string(b), s) {
			t.Errorf("summary does not contain %q:\n%s", s, b)
		}
	}
}

func TestReportUnclassified(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	r := &Reporter{Stdout: &stdout, OutputPath: filepath.Join(dir, "output")}

	out := &Outcome{Failures: []error{
		failure.New(failure.MissingInput, "Missing required input: task_types"),
	}}
	require.NoError(t, r.Report(&PullRequest{Title: "x"}, out))

	b, err := os.ReadFile(r.OutputPath)
	require.NoError(t, err)
	want := map[string]string{
		"type":           "",
		"scope":          "",
		"breaking":       "false",
		"labels_added":   "",
		"labels_removed": "",
	}
	if diff := cmp.Diff(want, parseOutputs(t, string(b))); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
	if got, want := stdout.String(), "::error::Missing required input: task_types\n"; got != want {
		t.Errorf("stdout: got = %q, wanted = %q", got, want)
	}
}

func TestReportAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("earlier<<EOF\nvalue\nEOF\n"), 0o600))

	r := &Reporter{Stdout: &bytes.Buffer{}, OutputPath: path}
	require.NoError(t, r.Report(nil, &Outcome{}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	got := parseOutputs(t, string(b))
	if got["earlier"] != "value" {
		t.Errorf("earlier output: got = %q, wanted = %q", got["earlier"], "value")
	}
}

func TestReportWriteFailure(t *testing.T) {
	r := &Reporter{
		Stdout:     &bytes.Buffer{},
		OutputPath: filepath.Join(t.TempDir(), "missing", "output"),
	}
	if err := r.Report(nil, &Outcome{}); err == nil {
		t.Error("Report() error: got = nil, wanted = non-nil")
	}
}

func TestError(t *testing.T) {
	var stdout bytes.Buffer
	r := &Reporter{Stdout: &stdout}

	_, err := LoadEvent("", "octo/repo")
	require.Error(t, err)
	r.Error(err)

	if got, want := stdout.String(), "::error::GITHUB_EVENT_PATH is not set\n"; got != want {
		t.Errorf("Error(): got = %q, wanted = %q", got, want)
	}
}

func TestWarning(t *testing.T) {
	var stdout bytes.Buffer
	(&Reporter{Stdout: &stdout}).Warning("not a pull request\nevent")

	if got, want := stdout.String(), "::warning::not a pull request%0Aevent\n"; got != want {
		t.Errorf("Warning(): got = %q, wanted = %q", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		outcome *Outcome
		want    []string
		notWant []string
	}{{
		name: "passed",
		outcome: &Outcome{
			Detail: &conventional.CommitDetail{Type: "fix"},
			Plan:   &labels.Plan{Add: []string{"fix"}},
		},
		want:    []string{"✅ All checks passed!", "Field", "`fix`", "_none_", "Labels added"},
		notWant: []string{"### Issues"},
	}, {
		name: "unclassified",
		outcome: &Outcome{Failures: []error{
			errors.New("first"),
			errors.New("second"),
		}},
		want:    []string{"❌ Found 2 issue(s)", "### Issues", "```\nfirst\n```", "```\nsecond\n```"},
		notWant: []string{"Field", "Labels added"},
	}, {
		name: "labels disabled",
		outcome: &Outcome{
			Detail: &conventional.CommitDetail{Type: "feat", Breaking: true},
		},
		want:    []string{"`feat`", "true"},
		notWant: []string{"Labels added"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.outcome.Markdown(&PullRequest{Owner: "octo", Repo: "repo", Number: 1, Title: "t"})
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("Markdown() does not contain %q:\n%s", s, got)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(got, s) {
					t.Errorf("Markdown() contains %q:\n%s", s, got)
				}
			}
		})
	}
}
