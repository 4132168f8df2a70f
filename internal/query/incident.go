package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// IncidentQuery queries open incidents. It is sent as query-string
// parameters, so only the first ordering entry takes effect.
type IncidentQuery struct {
	base
	executor[wire.IncidentQuery, wire.IncidentRecord, domain.Incident]

	incidentID, incidentType             string
	incidentMessage, incidentMessageLike string
	processDefinitionID                  string
	processDefinitionKeys                []string
	processInstanceID, executionID       string
	timestampBefore, timestampAfter      time.Time
	activityID, failedActivityID         string
	causeIncidentID, rootCauseIncidentID string
	configuration                        string
	jobDefinitionIDs                     []string
}

// NewIncidentQuery returns an empty incident query executed through endpoint.
func NewIncidentQuery(endpoint Endpoint[wire.IncidentQuery, wire.IncidentRecord], opts ...Option) *IncidentQuery {
	q := &IncidentQuery{base: newBase("IncidentQuery", opts)}
	q.executor = executor[wire.IncidentQuery, wire.IncidentRecord, domain.Incident]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.Incident,
	}
	return q
}

// IncidentID filters by id.
func (q *IncidentQuery) IncidentID(id string) *IncidentQuery {
	q.setString("IncidentID", "incidentId", &q.incidentID, id)
	return q
}

// IncidentType filters by type.
func (q *IncidentQuery) IncidentType(incidentType string) *IncidentQuery {
	q.setString("IncidentType", "incidentType", &q.incidentType, incidentType)
	return q
}

// IncidentMessage filters by message.
func (q *IncidentQuery) IncidentMessage(message string) *IncidentQuery {
	q.setString("IncidentMessage", "incidentMessage", &q.incidentMessage, message)
	return q
}

// IncidentMessageLike filters by message matching pattern, where % matches any characters.
func (q *IncidentQuery) IncidentMessageLike(pattern string) *IncidentQuery {
	q.setString("IncidentMessageLike", "incidentMessageLike", &q.incidentMessageLike, pattern)
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *IncidentQuery) ProcessDefinitionID(id string) *IncidentQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.processDefinitionID, id)
	return q
}

// ProcessDefinitionKeyIn restricts the query to incidents whose process definition key is any of keys.
func (q *IncidentQuery) ProcessDefinitionKeyIn(keys ...string) *IncidentQuery {
	q.setStrings("ProcessDefinitionKeyIn", "processDefinitionKeys", &q.processDefinitionKeys, keys)
	return q
}

// ProcessInstanceID filters by process instance id.
func (q *IncidentQuery) ProcessInstanceID(id string) *IncidentQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ExecutionID filters by execution id.
func (q *IncidentQuery) ExecutionID(id string) *IncidentQuery {
	q.setString("ExecutionID", "executionId", &q.executionID, id)
	return q
}

// IncidentTimestampBefore filters incidents by timestamp before t.
func (q *IncidentQuery) IncidentTimestampBefore(t time.Time) *IncidentQuery {
	q.setTime("IncidentTimestampBefore", "incidentTimestampBefore", &q.timestampBefore, t)
	return q
}

// IncidentTimestampAfter filters incidents by timestamp after t.
func (q *IncidentQuery) IncidentTimestampAfter(t time.Time) *IncidentQuery {
	q.setTime("IncidentTimestampAfter", "incidentTimestampAfter", &q.timestampAfter, t)
	return q
}

// ActivityID filters by activity id.
func (q *IncidentQuery) ActivityID(id string) *IncidentQuery {
	q.setString("ActivityID", "activityId", &q.activityID, id)
	return q
}

// FailedActivityID filters by failed activity id.
func (q *IncidentQuery) FailedActivityID(id string) *IncidentQuery {
	q.setString("FailedActivityID", "failedActivityId", &q.failedActivityID, id)
	return q
}

// CauseIncidentID filters by cause incident id.
func (q *IncidentQuery) CauseIncidentID(id string) *IncidentQuery {
	q.setString("CauseIncidentID", "causeIncidentId", &q.causeIncidentID, id)
	return q
}

// RootCauseIncidentID filters by root cause incident id.
func (q *IncidentQuery) RootCauseIncidentID(id string) *IncidentQuery {
	q.setString("RootCauseIncidentID", "rootCauseIncidentId", &q.rootCauseIncidentID, id)
	return q
}

// Configuration filters by configuration.
func (q *IncidentQuery) Configuration(configuration string) *IncidentQuery {
	q.setString("Configuration", "configuration", &q.configuration, configuration)
	return q
}

// TenantIDIn filters by tenant. The incident endpoint has no "without
// tenant" filter.
func (q *IncidentQuery) TenantIDIn(ids ...string) *IncidentQuery {
	q.tenantIDIn(ids)
	return q
}

// JobDefinitionIDIn restricts the query to incidents whose job definition id is any of ids.
func (q *IncidentQuery) JobDefinitionIDIn(ids ...string) *IncidentQuery {
	q.setStrings("JobDefinitionIDIn", "jobDefinitionIds", &q.jobDefinitionIDs, ids)
	return q
}

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *IncidentQuery) OrderBy(property string) *IncidentQuery {
	q.orderBy(property)
	return q
}

// OrderByIncidentID sorts by incident id.
func (q *IncidentQuery) OrderByIncidentID() *IncidentQuery { return q.OrderBy("incidentId") }

// OrderByIncidentMessage sorts by incident message.
func (q *IncidentQuery) OrderByIncidentMessage() *IncidentQuery { return q.OrderBy("incidentMessage") }

// OrderByIncidentTimestamp sorts by incident timestamp.
func (q *IncidentQuery) OrderByIncidentTimestamp() *IncidentQuery {
	return q.OrderBy("incidentTimestamp")
}

// OrderByIncidentType sorts by incident type.
func (q *IncidentQuery) OrderByIncidentType() *IncidentQuery { return q.OrderBy("incidentType") }

// OrderByExecutionID sorts by execution id.
func (q *IncidentQuery) OrderByExecutionID() *IncidentQuery { return q.OrderBy("executionId") }

// OrderByActivityID sorts by activity id.
func (q *IncidentQuery) OrderByActivityID() *IncidentQuery { return q.OrderBy("activityId") }

// OrderByProcessInstanceID sorts by process instance id.
func (q *IncidentQuery) OrderByProcessInstanceID() *IncidentQuery {
	return q.OrderBy("processInstanceId")
}

// OrderByProcessDefinitionID sorts by process definition id.
func (q *IncidentQuery) OrderByProcessDefinitionID() *IncidentQuery {
	return q.OrderBy("processDefinitionId")
}

// OrderByCauseIncidentID sorts by cause incident id.
func (q *IncidentQuery) OrderByCauseIncidentID() *IncidentQuery { return q.OrderBy("causeIncidentId") }

// OrderByRootCauseIncidentID sorts by root cause incident id.
func (q *IncidentQuery) OrderByRootCauseIncidentID() *IncidentQuery {
	return q.OrderBy("rootCauseIncidentId")
}

// OrderByConfiguration sorts by configuration.
func (q *IncidentQuery) OrderByConfiguration() *IncidentQuery { return q.OrderBy("configuration") }

// OrderByTenantID sorts by tenant id.
func (q *IncidentQuery) OrderByTenantID() *IncidentQuery { return q.OrderBy("tenantId") }

// Asc sets the direction of the most recent ordering to ascending.
func (q *IncidentQuery) Asc() *IncidentQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *IncidentQuery) Desc() *IncidentQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *IncidentQuery) request(ctx context.Context) (wire.IncidentQuery, error) {
	var req wire.IncidentQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	sortBy, sortOrder := q.singleSort(ctx, incidentSortKeys)
	err := project(&req, func(dst *wire.IncidentQuery, field string) error {
		switch field {
		case "incidentId":
			dst.IncidentID = wire.String(q.incidentID)
		case "incidentType":
			dst.IncidentType = wire.String(q.incidentType)
		case "incidentMessage":
			dst.IncidentMessage = wire.String(q.incidentMessage)
		case "incidentMessageLike":
			dst.IncidentMessageLike = wire.String(q.incidentMessageLike)
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.processDefinitionID)
		case "processDefinitionKeyIn":
			dst.ProcessDefinitionKeyIn = q.processDefinitionKeys
		case "processInstanceId":
			dst.ProcessInstanceID = wire.String(q.processInstanceID)
		case "executionId":
			dst.ExecutionID = wire.String(q.executionID)
		case "incidentTimestampBefore":
			dst.IncidentTimestampBefore = wire.TimeOf(q.timestampBefore)
		case "incidentTimestampAfter":
			dst.IncidentTimestampAfter = wire.TimeOf(q.timestampAfter)
		case "activityId":
			dst.ActivityID = wire.String(q.activityID)
		case "failedActivityId":
			dst.FailedActivityID = wire.String(q.failedActivityID)
		case "causeIncidentId":
			dst.CauseIncidentID = wire.String(q.causeIncidentID)
		case "rootCauseIncidentId":
			dst.RootCauseIncidentID = wire.String(q.rootCauseIncidentID)
		case "configuration":
			dst.Configuration = wire.String(q.configuration)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "jobDefinitionIdIn":
			dst.JobDefinitionIDIn = q.jobDefinitionIDs
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
