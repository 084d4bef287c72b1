/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package action

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Markdown renders the outcome as the job summary.
func (o *Outcome) Markdown(pr *PullRequest) string {
	var sb strings.Builder
	sb.WriteString("## Semantic Pull Request\n\n")
	if pr != nil {
		sb.WriteString(fmt.Sprintf("`%s` (%s#%d)\n\n", pr.Title, pr.Repository(), pr.Number))
	}

	if o.Passed() {
		sb.WriteString("✅ All checks passed!\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("❌ Found %d issue(s)\n\n", len(o.Failures)))
	}

	if o.Detail != nil {
		table := newMarkdownTable([]string{"Field", "Value"}, &sb)
		scope := "_none_"
		if o.Detail.HasScope() {
			scope = "`" + o.Detail.ScopeName() + "`"
		}
		_ = table.Append([]string{"Type", "`" + o.Detail.Type + "`"})
		_ = table.Append([]string{"Scope", scope})
		_ = table.Append([]string{"Breaking", strconv.FormatBool(o.Detail.Breaking)})
		if o.Plan != nil {
			_ = table.Append([]string{"Labels added", codeList(o.Plan.Add)})
			_ = table.Append([]string{"Labels removed", codeList(o.Plan.Remove)})
		}
		_ = table.Render()
		sb.WriteString("\n")
	}

	if len(o.Failures) > 0 {
		sb.WriteString("### Issues\n\n")
		for _, err := range o.Failures {
			sb.WriteString("```\n")
			sb.WriteString(err.Error())
			sb.WriteString("\n```\n\n")
		}
	}

	return sb.String()
}

func codeList(names []string) string {
	if len(names) == 0 {
		return "_none_"
	}
	return "`" + strings.Join(names, "`, `") + "`"
}

// newMarkdownTable creates a GitHub flavored markdown table writing to w.
func newMarkdownTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
