/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Reporter hands the outcome back to the workflow run.
type Reporter struct {
	// Stdout receives workflow commands.
	Stdout io.Writer
	// OutputPath is GITHUB_OUTPUT; empty skips step outputs.
	OutputPath string
	// SummaryPath is GITHUB_STEP_SUMMARY; empty skips the job summary.
	SummaryPath string
}

// NewReporter returns a Reporter for the runner described by cfg.
func NewReporter(cfg *Config) *Reporter {
	return &Reporter{
		Stdout:      os.Stdout,
		OutputPath:  cfg.OutputPath,
		SummaryPath: cfg.SummaryPath,
	}
}

// Report annotates every failure, then writes step outputs and the job
// summary. Failures of the latter two are joined into the returned error;
// the annotations are always written first.
func (r *Reporter) Report(pr *PullRequest, o *Outcome) error {
	for _, err := range o.Failures {
		if _, werr := fmt.Fprintf(r.Stdout, "::error::%s\n", escapeData(err.Error())); werr != nil {
			return fmt.Errorf("writing annotation: %w", werr)
		}
	}

	var errs []error
	if r.OutputPath != "" {
		if err := appendFile(r.OutputPath, formatOutputs(o)); err != nil {
			errs = append(errs, fmt.Errorf("writing step outputs: %w", err))
		}
	}
	if r.SummaryPath != "" {
		if err := appendFile(r.SummaryPath, o.Markdown(pr)); err != nil {
			errs = append(errs, fmt.Errorf("writing job summary: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Error writes an error annotation for a failure that stopped the check
// before it produced an Outcome.
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.Stdout, "::error::%s\n", escapeData(err.Error()))
}

// Warning writes a warning annotation.
func (r *Reporter) Warning(msg string) {
	fmt.Fprintf(r.Stdout, "::warning::%s\n", escapeData(msg))
}

// formatOutputs renders the step outputs in the GITHUB_OUTPUT file format,
// using a random heredoc delimiter for every value.
func formatOutputs(o *Outcome) string {
	outputs := [][2]string{
		{"type", ""},
		{"scope", ""},
		{"breaking", "false"},
		{"labels_added", ""},
		{"labels_removed", ""},
	}
	if o.Detail != nil {
		outputs[0][1] = o.Detail.Type
		outputs[1][1] = o.Detail.ScopeName()
		outputs[2][1] = strconv.FormatBool(o.Detail.Breaking)
	}
	if o.Plan != nil {
		outputs[3][1] = strings.Join(o.Plan.Add, ",")
		outputs[4][1] = strings.Join(o.Plan.Remove, ",")
	}

	var sb strings.Builder
	for _, kv := range outputs {
		delim := "ghadelimiter_" + uuid.NewString()
		fmt.Fprintf(&sb, "%s<<%s\n%s\n%s\n", kv[0], delim, kv[1], delim)
	}
	return sb.String()
}

// escapeData escapes a workflow command message.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
