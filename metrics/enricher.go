/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// AttributeEnricher enriches metric attributes with additional context.
// The enricher receives base attributes (operation, outcome) and returns an
// enriched set.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue

// PullRequestEnricher tags every measurement with the repository and pull
// request number.
func PullRequestEnricher(repository string, number int) AttributeEnricher {
	return func(_ context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue {
		return append(baseAttrs,
			attribute.String("repository", repository),
			attribute.Int("pull_request", number),
		)
	}
}
