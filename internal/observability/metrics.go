package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/query"
)

// Metrics holds OTel metric instruments for engine queries. It is a
// query.Observer.
type Metrics struct {
	QueryCount      metric.Int64Counter
	QueryLatency    metric.Float64Histogram
	DroppedSortKeys metric.Int64Counter
	RemoteErrors    metric.Int64Counter
}

var _ query.Observer = (*Metrics)(nil)

// NewMetrics creates the query metric instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFrom(otel.Meter("engine-client"))
}

// NewMetricsFrom creates the query metric instruments on meter.
func NewMetricsFrom(meter metric.Meter) (*Metrics, error) {
	queryCount, err := meter.Int64Counter("engine.query.count",
		metric.WithDescription("Number of executed engine queries"),
	)
	if err != nil {
		return nil, err
	}

	queryLatency, err := meter.Float64Histogram("engine.query.latency_seconds",
		metric.WithDescription("Engine query round trip time"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	dropped, err := meter.Int64Counter("engine.query.sort_key_dropped",
		metric.WithDescription("Orderings skipped because the engine has no sort key for them"),
	)
	if err != nil {
		return nil, err
	}

	remoteErrors, err := meter.Int64Counter("engine.remote.errors",
		metric.WithDescription("Engine calls that failed remotely"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		QueryCount:      queryCount,
		QueryLatency:    queryLatency,
		DroppedSortKeys: dropped,
		RemoteErrors:    remoteErrors,
	}, nil
}

// QueryExecuted records one list or count execution.
func (m *Metrics) QueryExecuted(ctx context.Context, kind, call string, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("call", call),
		attribute.String("outcome", Outcome(err)),
	)
	m.QueryCount.Add(ctx, 1, attrs)
	m.QueryLatency.Record(ctx, elapsed.Seconds(), attrs)
	if errors.Is(err, domain.ErrRemote) {
		m.RemoteErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// SortKeyDropped records an ordering the engine cannot sort by.
func (m *Metrics) SortKeyDropped(ctx context.Context, kind, property string) {
	m.DroppedSortKeys.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("kind", kind),
			attribute.String("property", property),
		),
	)
}

// Outcome classifies a query error for metric attributes.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUsage), errors.Is(err, domain.ErrValidation):
		return "rejected"
	case errors.Is(err, domain.ErrCardinality):
		return "cardinality"
	case errors.Is(err, domain.ErrRemote):
		return "remote_error"
	default:
		return "error"
	}
}
