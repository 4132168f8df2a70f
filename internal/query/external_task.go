package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// ExternalTaskQuery queries external tasks.
type ExternalTaskQuery struct {
	base
	executor[wire.ExternalTaskQuery, wire.ExternalTaskRecord, domain.ExternalTask]

	externalTaskID                            string
	externalTaskIDs                           []string
	topicName, workerID                       string
	locked, notLocked                         bool
	withRetriesLeft, noRetriesLeft            bool
	lockExpirationAfter, lockExpirationBefore time.Time
	activityID                                string
	activityIDs                               []string
	executionID                               string
	processInstanceID                         string
	processInstanceIDs                        []string
	processDefinitionID                       string
	suspension                                domain.SuspensionState
	priorityHigherThanOrEquals                *int64
	priorityLowerThanOrEquals                 *int64
}

// NewExternalTaskQuery returns an empty external task query executed through endpoint.
func NewExternalTaskQuery(endpoint Endpoint[wire.ExternalTaskQuery, wire.ExternalTaskRecord], opts ...Option) *ExternalTaskQuery {
	q := &ExternalTaskQuery{base: newBase("ExternalTaskQuery", opts)}
	q.executor = executor[wire.ExternalTaskQuery, wire.ExternalTaskRecord, domain.ExternalTask]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.ExternalTask,
	}
	return q
}

// ExternalTaskID filters by id.
func (q *ExternalTaskQuery) ExternalTaskID(id string) *ExternalTaskQuery {
	q.setString("ExternalTaskID", "externalTaskId", &q.externalTaskID, id)
	return q
}

// ExternalTaskIDIn restricts the query to external tasks whose id is any of ids.
func (q *ExternalTaskQuery) ExternalTaskIDIn(ids ...string) *ExternalTaskQuery {
	q.setStrings("ExternalTaskIDIn", "externalTaskIds", &q.externalTaskIDs, ids)
	return q
}

// TopicName filters by topic name.
func (q *ExternalTaskQuery) TopicName(topic string) *ExternalTaskQuery {
	q.setString("TopicName", "topicName", &q.topicName, topic)
	return q
}

// WorkerID filters by worker id.
func (q *ExternalTaskQuery) WorkerID(id string) *ExternalTaskQuery {
	q.setString("WorkerID", "workerId", &q.workerID, id)
	return q
}

// Locked restricts the query to locked external tasks.
func (q *ExternalTaskQuery) Locked() *ExternalTaskQuery {
	q.setFlag(&q.locked)
	return q
}

// NotLocked restricts the query to external tasks no worker holds a lock on.
func (q *ExternalTaskQuery) NotLocked() *ExternalTaskQuery {
	q.setFlag(&q.notLocked)
	return q
}

// WithRetriesLeft restricts the query to external tasks with retries left.
func (q *ExternalTaskQuery) WithRetriesLeft() *ExternalTaskQuery {
	q.setFlag(&q.withRetriesLeft)
	return q
}

// NoRetriesLeft restricts the query to external tasks whose retries are used up.
func (q *ExternalTaskQuery) NoRetriesLeft() *ExternalTaskQuery {
	q.setFlag(&q.noRetriesLeft)
	return q
}

// LockExpirationAfter filters external tasks by lock expiration after t.
func (q *ExternalTaskQuery) LockExpirationAfter(t time.Time) *ExternalTaskQuery {
	q.setTime("LockExpirationAfter", "lockExpirationDate", &q.lockExpirationAfter, t)
	return q
}

// LockExpirationBefore filters external tasks by lock expiration before t.
func (q *ExternalTaskQuery) LockExpirationBefore(t time.Time) *ExternalTaskQuery {
	q.setTime("LockExpirationBefore", "lockExpirationDate", &q.lockExpirationBefore, t)
	return q
}

// ActivityID filters by activity id.
func (q *ExternalTaskQuery) ActivityID(id string) *ExternalTaskQuery {
	q.setString("ActivityID", "activityId", &q.activityID, id)
	return q
}

// ActivityIDIn restricts the query to external tasks whose activity id is any of ids.
func (q *ExternalTaskQuery) ActivityIDIn(ids ...string) *ExternalTaskQuery {
	q.setStrings("ActivityIDIn", "activityIds", &q.activityIDs, ids)
	return q
}

// ExecutionID filters by execution id.
func (q *ExternalTaskQuery) ExecutionID(id string) *ExternalTaskQuery {
	q.setString("ExecutionID", "executionId", &q.executionID, id)
	return q
}

// ProcessInstanceID filters by process instance id.
func (q *ExternalTaskQuery) ProcessInstanceID(id string) *ExternalTaskQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ProcessInstanceIDIn restricts the query to external tasks whose process instance id is any of ids.
func (q *ExternalTaskQuery) ProcessInstanceIDIn(ids ...string) *ExternalTaskQuery {
	q.setStrings("ProcessInstanceIDIn", "processInstanceIds", &q.processInstanceIDs, ids)
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *ExternalTaskQuery) ProcessDefinitionID(id string) *ExternalTaskQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.processDefinitionID, id)
	return q
}

// Active restricts the query to active external tasks.
func (q *ExternalTaskQuery) Active() *ExternalTaskQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionActive
	}
	return q
}

// Suspended restricts the query to suspended external tasks.
func (q *ExternalTaskQuery) Suspended() *ExternalTaskQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionSuspended
	}
	return q
}

// PriorityHigherThanOrEquals restricts the query to external tasks with a priority of at least priority.
func (q *ExternalTaskQuery) PriorityHigherThanOrEquals(priority int64) *ExternalTaskQuery {
	if q.ok(nil) {
		q.priorityHigherThanOrEquals = &priority
	}
	return q
}

// PriorityLowerThanOrEquals restricts the query to external tasks with a priority of at most priority.
func (q *ExternalTaskQuery) PriorityLowerThanOrEquals(priority int64) *ExternalTaskQuery {
	if q.ok(nil) {
		q.priorityLowerThanOrEquals = &priority
	}
	return q
}

// TenantIDIn filters by tenant. The external task endpoint has no
// "without tenant" filter.
func (q *ExternalTaskQuery) TenantIDIn(ids ...string) *ExternalTaskQuery {
	q.tenantIDIn(ids)
	return q
}

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *ExternalTaskQuery) OrderBy(property string) *ExternalTaskQuery {
	q.orderBy(property)
	return q
}

// OrderByID sorts by id.
func (q *ExternalTaskQuery) OrderByID() *ExternalTaskQuery { return q.OrderBy("id") }

// OrderByLockExpirationTime sorts by lock expiration time.
func (q *ExternalTaskQuery) OrderByLockExpirationTime() *ExternalTaskQuery {
	return q.OrderBy("lockExpirationTime")
}

// OrderByProcessInstanceID sorts by process instance id.
func (q *ExternalTaskQuery) OrderByProcessInstanceID() *ExternalTaskQuery {
	return q.OrderBy("processInstanceId")
}

// OrderByProcessDefinitionID sorts by process definition id.
func (q *ExternalTaskQuery) OrderByProcessDefinitionID() *ExternalTaskQuery {
	return q.OrderBy("processDefinitionId")
}

// OrderByProcessDefinitionKey sorts by process definition key.
func (q *ExternalTaskQuery) OrderByProcessDefinitionKey() *ExternalTaskQuery {
	return q.OrderBy("processDefinitionKey")
}

// OrderByPriority sorts by priority.
func (q *ExternalTaskQuery) OrderByPriority() *ExternalTaskQuery { return q.OrderBy("taskPriority") }

// OrderByTenantID sorts by tenant id.
func (q *ExternalTaskQuery) OrderByTenantID() *ExternalTaskQuery { return q.OrderBy("tenantId") }

// Asc sets the direction of the most recent ordering to ascending.
func (q *ExternalTaskQuery) Asc() *ExternalTaskQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *ExternalTaskQuery) Desc() *ExternalTaskQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *ExternalTaskQuery) request(ctx context.Context) (wire.ExternalTaskQuery, error) {
	var req wire.ExternalTaskQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	err := project(&req, func(dst *wire.ExternalTaskQuery, field string) error {
		switch field {
		case "externalTaskId":
			dst.ExternalTaskID = wire.String(q.externalTaskID)
		case "externalTaskIdIn":
			dst.ExternalTaskIDIn = q.externalTaskIDs
		case "topicName":
			dst.TopicName = wire.String(q.topicName)
		case "workerId":
			dst.WorkerID = wire.String(q.workerID)
		case "locked":
			dst.Locked = wire.True(q.locked)
		case "notLocked":
			dst.NotLocked = wire.True(q.notLocked)
		case "withRetriesLeft":
			dst.WithRetriesLeft = wire.True(q.withRetriesLeft)
		case "noRetriesLeft":
			dst.NoRetriesLeft = wire.True(q.noRetriesLeft)
		case "lockExpirationAfter":
			dst.LockExpirationAfter = wire.TimeOf(q.lockExpirationAfter)
		case "lockExpirationBefore":
			dst.LockExpirationBefore = wire.TimeOf(q.lockExpirationBefore)
		case "activityId":
			dst.ActivityID = wire.String(q.activityID)
		case "activityIdIn":
			dst.ActivityIDIn = q.activityIDs
		case "executionId":
			dst.ExecutionID = wire.String(q.executionID)
		case "processInstanceId":
			dst.ProcessInstanceID = wire.String(q.processInstanceID)
		case "processInstanceIdIn":
			dst.ProcessInstanceIDIn = q.processInstanceIDs
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.processDefinitionID)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "active":
			dst.Active = wire.True(q.suspension == domain.SuspensionActive)
		case "suspended":
			dst.Suspended = wire.True(q.suspension == domain.SuspensionSuspended)
		case "priorityHigherThanOrEquals":
			dst.PriorityHigherThanOrEquals = q.priorityHigherThanOrEquals
		case "priorityLowerThanOrEquals":
			dst.PriorityLowerThanOrEquals = q.priorityLowerThanOrEquals
		case "sorting":
			dst.Sorting = q.sortingList(ctx, externalTaskSortKeys, nil)
		default:
			return unmapped(q.kind, field)
		}
		return nil
	})
	return req, err
}
