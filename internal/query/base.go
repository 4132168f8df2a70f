// Package query implements the fluent engine queries: per-kind filter state,
// ordering and variable predicates, projection onto the engine's wire
// requests and paged execution against a transport Endpoint.
//
// Builders record the first usage error and ignore later setter calls; the
// error is available from Err and is returned by every execution method
// before anything is sent to the engine.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// Ordering is one orderBy entry of a query.
type Ordering struct {
	Property  string
	Direction domain.SortDirection
	Type      domain.ValueType
	Relation  domain.Relation
}

// Observer receives execution events. observability.Metrics implements it.
type Observer interface {
	QueryExecuted(ctx context.Context, kind, call string, elapsed time.Duration, err error)
	SortKeyDropped(ctx context.Context, kind, property string)
}

type nopObserver struct{}

func (nopObserver) QueryExecuted(context.Context, string, string, time.Duration, error) {}
func (nopObserver) SortKeyDropped(context.Context, string, string)                      {}

// Option configures a query.
type Option func(*settings)

type settings struct {
	logger   *slog.Logger
	observer Observer
}

// WithLogger sets the logger used for dropped sort keys. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver sets the execution observer.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observer = o
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{logger: slog.Default(), observer: nopObserver{}}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// base is the state every query kind shares: sticky usage error, ordering
// entries and the tenant filter.
type base struct {
	kind string
	settings

	err       error
	orderings []Ordering

	// tenantIDsSet with a nil tenantIDs means "without tenant id".
	tenantIDs    []string
	tenantIDsSet bool
}

func newBase(kind string, opts []Option) base {
	return base{kind: kind, settings: newSettings(opts)}
}

// Err returns the first usage error recorded by a setter.
func (b *base) Err() error {
	return b.err
}

// Orderings returns a copy of the ordering entries.
func (b *base) Orderings() []Ordering {
	return append([]Ordering(nil), b.orderings...)
}

func (b *base) op(setter string) string {
	return b.kind + "." + setter
}

// ok reports whether a setter may proceed, recording err when it is the first failure.
func (b *base) ok(err error) bool {
	if b.err != nil {
		return false
	}
	if err != nil {
		b.err = err
		return false
	}
	return true
}

func (b *base) usage(setter, format string, args ...any) {
	b.ok(domain.UsageError(b.op(setter), format, args...))
}

func (b *base) setString(setter, name string, dst *string, v string) bool {
	if !b.ok(domain.RequireString(b.op(setter), name, v)) {
		return false
	}
	*dst = v
	return true
}

func (b *base) setStrings(setter, name string, dst *[]string, v []string) bool {
	if !b.ok(domain.RequireStrings(b.op(setter), name, v)) {
		return false
	}
	*dst = append([]string(nil), v...)
	return true
}

func (b *base) setTime(setter, name string, dst *time.Time, v time.Time) bool {
	if !b.ok(domain.RequireTime(b.op(setter), name, v)) {
		return false
	}
	*dst = v
	return true
}

func (b *base) setFlag(dst *bool) {
	if b.ok(nil) {
		*dst = true
	}
}

func (b *base) setInt(dst **int, v int) {
	if b.ok(nil) {
		*dst = &v
	}
}

func (b *base) tenantIDIn(ids []string) {
	const setter = "TenantIDIn"
	if !b.ok(domain.RequireStrings(b.op(setter), "tenantIds", ids)) {
		return
	}
	if b.tenantIDsSet && b.tenantIDs == nil {
		b.usage(setter, "cannot set both tenantIdIn and withoutTenantId filters.")
		return
	}
	b.tenantIDs = append([]string(nil), ids...)
	b.tenantIDsSet = true
}

func (b *base) withoutTenantID() {
	if !b.ok(nil) {
		return
	}
	if len(b.tenantIDs) > 0 {
		b.usage("WithoutTenantID", "cannot set both tenantIdIn and withoutTenantId filters.")
		return
	}
	b.tenantIDs = nil
	b.tenantIDsSet = true
}

func (b *base) withoutTenant() *bool {
	return wire.True(b.tenantIDsSet && b.tenantIDs == nil)
}

func (b *base) orderBy(property string) {
	if b.ok(domain.RequireString(b.op("OrderBy"), "property", property)) {
		b.orderings = append(b.orderings, Ordering{Property: property})
	}
}

func (b *base) orderByVariable(setter, name string, t domain.ValueType, rel domain.Relation) {
	if !b.ok(domain.RequireString(b.op(setter), "variableName", name)) {
		return
	}
	if !t.Valid() {
		b.usage(setter, "unsupported variable type %q", t)
		return
	}
	b.orderings = append(b.orderings, Ordering{Property: name, Type: t, Relation: rel})
}

func (b *base) direction(setter string, d domain.SortDirection) {
	if !b.ok(nil) {
		return
	}
	if len(b.orderings) == 0 {
		b.usage(setter, "sort direction requires a preceding orderBy")
		return
	}
	last := &b.orderings[len(b.orderings)-1]
	if last.Direction != domain.SortUnset {
		b.usage(setter, "sort direction cannot be set twice for same property")
		return
	}
	last.Direction = d
}

// validate checks the rules shared by all kinds.
func (b *base) validate() error {
	if b.err != nil {
		return b.err
	}
	for _, o := range b.orderings {
		if o.Direction == domain.SortUnset {
			return domain.ValidationError(b.kind, "sort direction has to be set for each ordering property")
		}
	}
	return nil
}
