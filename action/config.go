/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the step inputs and runner environment. GitHub exposes each
// `with:` input as INPUT_<NAME>.
type Config struct {
	TaskTypes     string `env:"INPUT_TASK_TYPES"`
	ScopeTypes    string `env:"INPUT_SCOPE_TYPES"`
	AddLabel      string `env:"INPUT_ADD_LABEL,default=true"`
	AddScopeLabel string `env:"INPUT_ADD_SCOPE_LABEL,default=false"`
	CustomLabels  string `env:"INPUT_CUSTOM_LABELS"`
	Regex         string `env:"INPUT_REGEX,noexpand"`
	RegexText     string `env:"INPUT_REGEX_TEXT,noexpand"`
	Token         string `env:"INPUT_TOKEN"`
	Pushgateway   string `env:"INPUT_METRICS_PUSHGATEWAY"`

	// Runner environment
	GitHubToken string `env:"GITHUB_TOKEN"`
	EventName   string `env:"GITHUB_EVENT_NAME"`
	EventPath   string `env:"GITHUB_EVENT_PATH"`
	Repository  string `env:"GITHUB_REPOSITORY"`
	APIURL      string `env:"GITHUB_API_URL,default=https://api.github.com"`
	OutputPath  string `env:"GITHUB_OUTPUT"`
	SummaryPath string `env:"GITHUB_STEP_SUMMARY"`
	Debug       bool   `env:"RUNNER_DEBUG,default=false"`
}

// LoadConfig reads the configuration through lookuper, or the process
// environment when lookuper is nil.
func LoadConfig(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	return &cfg, nil
}

// LabelsEnabled reports whether label reconciliation is on. Only the literal
// "false" turns it off.
func (c *Config) LabelsEnabled() bool {
	return !strings.EqualFold(strings.TrimSpace(c.AddLabel), "false")
}

// ScopeLabelsEnabled reports whether the scope is applied as a label.
func (c *Config) ScopeLabelsEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(c.AddScopeLabel), "true")
}

// AuthToken returns the token input, falling back to GITHUB_TOKEN.
func (c *Config) AuthToken() string {
	if c.Token != "" {
		return c.Token
	}
	return c.GitHubToken
}
