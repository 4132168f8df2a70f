package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// Endpoint is the transport collaborator of one query kind: a paged list
// call and a count call taking the same wire request.
type Endpoint[Req, Rec any] interface {
	List(ctx context.Context, req Req, firstResult, maxResults int) ([]Rec, error)
	Count(ctx context.Context, req Req) (int64, error)
}

type identified interface {
	ID() string
}

// executor implements domain.Query for a kind. request validates and
// projects the kind's state; adapt wraps one record.
type executor[Req, Rec any, T identified] struct {
	b        *base
	endpoint Endpoint[Req, Rec]
	request  func(context.Context) (Req, error)
	adapt    func(Rec) T
}

// List returns all matches.
func (e *executor[Req, Rec, T]) List(ctx context.Context) ([]T, error) {
	return e.ListPage(ctx, 0, domain.MaxResults)
}

// UnlimitedList returns the same single page as List.
func (e *executor[Req, Rec, T]) UnlimitedList(ctx context.Context) ([]T, error) {
	return e.List(ctx)
}

// ListPage returns up to maxResults matches starting at firstResult.
func (e *executor[Req, Rec, T]) ListPage(ctx context.Context, firstResult, maxResults int) ([]T, error) {
	start := time.Now()
	out, err := e.listPage(ctx, firstResult, maxResults)
	e.b.observer.QueryExecuted(ctx, e.b.kind, "list", time.Since(start), err)
	return out, err
}

func (e *executor[Req, Rec, T]) listPage(ctx context.Context, firstResult, maxResults int) ([]T, error) {
	if err := e.b.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidatePage(e.b.op("ListPage"), firstResult, maxResults); err != nil {
		return nil, err
	}
	req, err := e.request(ctx)
	if err != nil {
		return nil, err
	}
	records, err := e.endpoint.List(ctx, req, firstResult, maxResults)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, e.adapt(rec))
	}
	return out, nil
}

// ListIDs returns the ids of all matches.
func (e *executor[Req, Rec, T]) ListIDs(ctx context.Context) ([]string, error) {
	results, err := e.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID()
	}
	return ids, nil
}

// Count returns the number of matches.
func (e *executor[Req, Rec, T]) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := e.count(ctx)
	e.b.observer.QueryExecuted(ctx, e.b.kind, "count", time.Since(start), err)
	return n, err
}

func (e *executor[Req, Rec, T]) count(ctx context.Context) (int64, error) {
	if err := e.b.Err(); err != nil {
		return 0, err
	}
	req, err := e.request(ctx)
	if err != nil {
		return 0, err
	}
	return e.endpoint.Count(ctx, req)
}

// SingleResult returns the only match, ok=false when there is none, and a
// cardinality error when there is more than one.
func (e *executor[Req, Rec, T]) SingleResult(ctx context.Context) (T, bool, error) {
	var zero T
	results, err := e.List(ctx)
	if err != nil {
		return zero, false, err
	}
	switch len(results) {
	case 0:
		return zero, false, nil
	case 1:
		return results[0], true, nil
	}
	return zero, false, domain.CardinalityError(e.b.op("SingleResult"), len(results))
}

// Request validates the query and returns the wire request without calling
// the engine.
func (e *executor[Req, Rec, T]) Request(ctx context.Context) (Req, error) {
	if err := e.b.Err(); err != nil {
		var zero Req
		return zero, err
	}
	return e.request(ctx)
}

// project fills dst by resolving every wire field of R through assign.
// assign must return unmapped for a field it does not know.
func project[R any](dst *R, assign func(dst *R, field string) error) error {
	for _, field := range wire.FieldNames[R]() {
		if err := assign(dst, field); err != nil {
			return err
		}
	}
	return nil
}

func unmapped(kind, field string) error {
	return domain.ConfigurationError(kind, field, "no mapping for wire field %q", field)
}
