package query

import (
	"context"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// EventSubscriptionQuery queries signal, message, compensation and
// conditional event subscriptions.
type EventSubscriptionQuery struct {
	base
	executor[wire.EventSubscriptionQuery, wire.EventSubscriptionRecord, domain.EventSubscription]

	eventSubscriptionID            string
	eventName, eventType           string
	executionID, processInstanceID string
	activityID                     string
	includeWithoutTenantID         bool
}

// NewEventSubscriptionQuery returns an empty event subscription query executed through endpoint.
func NewEventSubscriptionQuery(endpoint Endpoint[wire.EventSubscriptionQuery, wire.EventSubscriptionRecord], opts ...Option) *EventSubscriptionQuery {
	q := &EventSubscriptionQuery{base: newBase("EventSubscriptionQuery", opts)}
	q.executor = executor[wire.EventSubscriptionQuery, wire.EventSubscriptionRecord, domain.EventSubscription]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.EventSubscription,
	}
	return q
}

// EventSubscriptionID filters by id.
func (q *EventSubscriptionQuery) EventSubscriptionID(id string) *EventSubscriptionQuery {
	q.setString("EventSubscriptionID", "eventSubscriptionId", &q.eventSubscriptionID, id)
	return q
}

// EventName filters by event name.
func (q *EventSubscriptionQuery) EventName(name string) *EventSubscriptionQuery {
	q.setString("EventName", "eventName", &q.eventName, name)
	return q
}

// EventType is one of signal, message, compensate or conditional.
func (q *EventSubscriptionQuery) EventType(eventType string) *EventSubscriptionQuery {
	q.setString("EventType", "eventType", &q.eventType, eventType)
	return q
}

// ExecutionID filters by execution id.
func (q *EventSubscriptionQuery) ExecutionID(id string) *EventSubscriptionQuery {
	q.setString("ExecutionID", "executionId", &q.executionID, id)
	return q
}

// ProcessInstanceID filters by process instance id.
func (q *EventSubscriptionQuery) ProcessInstanceID(id string) *EventSubscriptionQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ActivityID filters by activity id.
func (q *EventSubscriptionQuery) ActivityID(id string) *EventSubscriptionQuery {
	q.setString("ActivityID", "activityId", &q.activityID, id)
	return q
}

// TenantIDIn restricts the query to event subscriptions whose tenant id is any of ids.
func (q *EventSubscriptionQuery) TenantIDIn(ids ...string) *EventSubscriptionQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to event subscriptions without tenant id.
func (q *EventSubscriptionQuery) WithoutTenantID() *EventSubscriptionQuery {
	q.withoutTenantID()
	return q
}

// IncludeEventSubscriptionsWithoutTenantID also returns event subscriptions without tenant id when filtering by tenant.
func (q *EventSubscriptionQuery) IncludeEventSubscriptionsWithoutTenantID() *EventSubscriptionQuery {
	q.setFlag(&q.includeWithoutTenantID)
	return q
}

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *EventSubscriptionQuery) OrderBy(property string) *EventSubscriptionQuery {
	q.orderBy(property)
	return q
}

// OrderByCreated sorts by created.
func (q *EventSubscriptionQuery) OrderByCreated() *EventSubscriptionQuery {
	return q.OrderBy("created")
}

// OrderByTenantID sorts by tenant id.
func (q *EventSubscriptionQuery) OrderByTenantID() *EventSubscriptionQuery {
	return q.OrderBy("tenantId")
}

// Asc sets the direction of the most recent ordering to ascending.
func (q *EventSubscriptionQuery) Asc() *EventSubscriptionQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *EventSubscriptionQuery) Desc() *EventSubscriptionQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *EventSubscriptionQuery) request(ctx context.Context) (wire.EventSubscriptionQuery, error) {
	var req wire.EventSubscriptionQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	sortBy, sortOrder := q.singleSort(ctx, eventSubscriptionSortKeys)
	err := project(&req, func(dst *wire.EventSubscriptionQuery, field string) error {
		switch field {
		case "eventSubscriptionId":
			dst.EventSubscriptionID = wire.String(q.eventSubscriptionID)
		case "eventName":
			dst.EventName = wire.String(q.eventName)
		case "eventType":
			dst.EventType = wire.String(q.eventType)
		case "executionId":
			dst.ExecutionID = wire.String(q.executionID)
		case "processInstanceId":
			dst.ProcessInstanceID = wire.String(q.processInstanceID)
		case "activityId":
			dst.ActivityID = wire.String(q.activityID)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "withoutTenantId":
			dst.WithoutTenantID = q.withoutTenant()
		case "includeEventSubscriptionsWithoutTenantId":
			dst.IncludeEventSubscriptionsWithoutTenantID = wire.True(q.includeWithoutTenantID)
		case "sortBy":
			dst.SortBy = sortBy
		case "sortOrder":
			dst.SortOrder = sortOrder
		default:
			return unmapped(q.kind, field)
		}
		return nil
	})
	return req, err
}
