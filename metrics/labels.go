/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Label operations.
const (
	OpList   = "list"
	OpAdd    = "add"
	OpRemove = "remove"
	OpEnsure = "ensure"
)

// Labels provides OpenTelemetry metrics for label store operations.
// If counter creation fails it degrades to a no-op counter.
type Labels struct {
	meter        metric.Meter
	operations   metric.Int64Counter
	attrEnricher AttributeEnricher
}

// NewLabels creates label metrics on the named meter of the global provider.
func NewLabels(meterName string) *Labels {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	operations, err := meter.Int64Counter("semanticpr.label.operations",
		metric.WithDescription("The number of label store operations attempted"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create label operations counter, metrics will be disabled", "error", err, "meter", meterName)
		operations = noop.Int64Counter{}
	}

	return &Labels{
		meter:      meter,
		operations: operations,
	}
}

// SetAttributeEnricher sets the attribute enricher for this metrics instance.
func (m *Labels) SetAttributeEnricher(enricher AttributeEnricher) {
	m.attrEnricher = enricher
}

// RecordOperation records one label store call and whether it failed.
func (m *Labels) RecordOperation(ctx context.Context, op string, err error, attrs ...attribute.KeyValue) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	baseAttrs := []attribute.KeyValue{
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	}

	if m.attrEnricher != nil {
		baseAttrs = m.attrEnricher(ctx, baseAttrs)
	}

	baseAttrs = append(baseAttrs, attrs...)

	m.operations.Add(ctx, 1, metric.WithAttributes(baseAttrs...))
}
