package query

import (
	"context"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// ExecutionQuery queries executions of running process instances.
type ExecutionQuery struct {
	base
	variableFilter
	executor[wire.ExecutionQuery, wire.ExecutionRecord, domain.Execution]

	processDefinitionID, processDefinitionKey string
	processInstanceID, businessKey            string
	activityID                                string
	signalNames, messageNames                 []string
	suspension                                domain.SuspensionState
	incidentID, incidentType                  string
	incidentMessage, incidentMessageLike      string
}

// NewExecutionQuery returns an empty execution query executed through endpoint.
func NewExecutionQuery(endpoint Endpoint[wire.ExecutionQuery, wire.ExecutionRecord], opts ...Option) *ExecutionQuery {
	q := &ExecutionQuery{base: newBase("ExecutionQuery", opts)}
	q.executor = executor[wire.ExecutionQuery, wire.ExecutionRecord, domain.Execution]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.Execution,
	}
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *ExecutionQuery) ProcessDefinitionID(id string) *ExecutionQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.processDefinitionID, id)
	return q
}

// ProcessDefinitionKey filters by process definition key.
func (q *ExecutionQuery) ProcessDefinitionKey(key string) *ExecutionQuery {
	q.setString("ProcessDefinitionKey", "processDefinitionKey", &q.processDefinitionKey, key)
	return q
}

// ProcessInstanceID filters by process instance id.
func (q *ExecutionQuery) ProcessInstanceID(id string) *ExecutionQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ProcessInstanceBusinessKey filters by process instance business key.
func (q *ExecutionQuery) ProcessInstanceBusinessKey(key string) *ExecutionQuery {
	q.setString("ProcessInstanceBusinessKey", "businessKey", &q.businessKey, key)
	return q
}

// ActivityID filters by activity id.
func (q *ExecutionQuery) ActivityID(id string) *ExecutionQuery {
	q.setString("ActivityID", "activityId", &q.activityID, id)
	return q
}

// SignalEventSubscriptionName filters executions waiting for the signal.
// The engine accepts one signal name per query; a second one fails at execution.
func (q *ExecutionQuery) SignalEventSubscriptionName(name string) *ExecutionQuery {
	if q.ok(domain.RequireString(q.op("SignalEventSubscriptionName"), "signalName", name)) {
		q.signalNames = append(q.signalNames, name)
	}
	return q
}

// MessageEventSubscriptionName filters executions waiting for the message.
// The engine accepts one message name per query.
func (q *ExecutionQuery) MessageEventSubscriptionName(name string) *ExecutionQuery {
	if q.ok(domain.RequireString(q.op("MessageEventSubscriptionName"), "messageName", name)) {
		q.messageNames = append(q.messageNames, name)
	}
	return q
}

// Active restricts the query to active executions.
func (q *ExecutionQuery) Active() *ExecutionQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionActive
	}
	return q
}

// Suspended restricts the query to suspended executions.
func (q *ExecutionQuery) Suspended() *ExecutionQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionSuspended
	}
	return q
}

// IncidentID filters by incident id.
func (q *ExecutionQuery) IncidentID(id string) *ExecutionQuery {
	q.setString("IncidentID", "incidentId", &q.incidentID, id)
	return q
}

// IncidentType filters by incident type.
func (q *ExecutionQuery) IncidentType(incidentType string) *ExecutionQuery {
	q.setString("IncidentType", "incidentType", &q.incidentType, incidentType)
	return q
}

// IncidentMessage filters by incident message.
func (q *ExecutionQuery) IncidentMessage(message string) *ExecutionQuery {
	q.setString("IncidentMessage", "incidentMessage", &q.incidentMessage, message)
	return q
}

// IncidentMessageLike filters by incident message matching pattern, where % matches any characters.
func (q *ExecutionQuery) IncidentMessageLike(pattern string) *ExecutionQuery {
	q.setString("IncidentMessageLike", "incidentMessageLike", &q.incidentMessageLike, pattern)
	return q
}

// TenantIDIn restricts the query to executions whose tenant id is any of ids.
func (q *ExecutionQuery) TenantIDIn(ids ...string) *ExecutionQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to executions without tenant id.
func (q *ExecutionQuery) WithoutTenantID() *ExecutionQuery {
	q.withoutTenantID()
	return q
}

// Variable predicates without a prefix match local execution variables;
// the ProcessVariable family matches variables of the process instance.

func (q *ExecutionQuery) variable(setter, name string, value any, op domain.Operator, scope domain.VariableScope) *ExecutionQuery {
	q.addVariable(&q.base, setter, name, value, op, scope)
	return q
}

// VariableValueEquals matches executions with a variable name whose value equals value.
func (q *ExecutionQuery) VariableValueEquals(name string, value any) *ExecutionQuery {
	return q.variable("VariableValueEquals", name, value, domain.OpEquals, domain.ScopeLocal)
}

// VariableValueNotEquals matches executions with a variable name whose value differs from value.
func (q *ExecutionQuery) VariableValueNotEquals(name string, value any) *ExecutionQuery {
	return q.variable("VariableValueNotEquals", name, value, domain.OpNotEquals, domain.ScopeLocal)
}

// VariableValueGreaterThan matches executions with a variable name whose value is greater than value.
func (q *ExecutionQuery) VariableValueGreaterThan(name string, value any) *ExecutionQuery {
	return q.variable("VariableValueGreaterThan", name, value, domain.OpGreaterThan, domain.ScopeLocal)
}

// VariableValueGreaterThanOrEqual matches executions with a variable name whose value is at least value.
func (q *ExecutionQuery) VariableValueGreaterThanOrEqual(name string, value any) *ExecutionQuery {
	return q.variable("VariableValueGreaterThanOrEqual", name, value, domain.OpGreaterThanOrEqual, domain.ScopeLocal)
}

// VariableValueLessThan matches executions with a variable name whose value is less than value.
func (q *ExecutionQuery) VariableValueLessThan(name string, value any) *ExecutionQuery {
	return q.variable("VariableValueLessThan", name, value, domain.OpLessThan, domain.ScopeLocal)
}

// VariableValueLessThanOrEqual matches executions with a variable name whose value is at most value.
func (q *ExecutionQuery) VariableValueLessThanOrEqual(name string, value any) *ExecutionQuery {
	return q.variable("VariableValueLessThanOrEqual", name, value, domain.OpLessThanOrEqual, domain.ScopeLocal)
}

// VariableValueLike matches executions with a variable name whose value matches the pattern.
func (q *ExecutionQuery) VariableValueLike(name, pattern string) *ExecutionQuery {
	return q.variable("VariableValueLike", name, pattern, domain.OpLike, domain.ScopeLocal)
}

// VariableValueNotLike matches executions with a variable name whose value does not match the pattern.
func (q *ExecutionQuery) VariableValueNotLike(name, pattern string) *ExecutionQuery {
	return q.variable("VariableValueNotLike", name, pattern, domain.OpNotLike, domain.ScopeLocal)
}

// ProcessVariableValueEquals matches executions with a process variable name whose value equals value.
func (q *ExecutionQuery) ProcessVariableValueEquals(name string, value any) *ExecutionQuery {
	return q.variable("ProcessVariableValueEquals", name, value, domain.OpEquals, domain.ScopeProcess)
}

// ProcessVariableValueNotEquals matches executions with a process variable name whose value differs from value.
func (q *ExecutionQuery) ProcessVariableValueNotEquals(name string, value any) *ExecutionQuery {
	return q.variable("ProcessVariableValueNotEquals", name, value, domain.OpNotEquals, domain.ScopeProcess)
}

// ProcessVariableValueLike matches executions with a process variable name whose value matches the pattern.
func (q *ExecutionQuery) ProcessVariableValueLike(name, pattern string) *ExecutionQuery {
	return q.variable("ProcessVariableValueLike", name, pattern, domain.OpLike, domain.ScopeProcess)
}

// ProcessVariableValueNotLike matches executions with a process variable name whose value does not match the pattern.
func (q *ExecutionQuery) ProcessVariableValueNotLike(name, pattern string) *ExecutionQuery {
	return q.variable("ProcessVariableValueNotLike", name, pattern, domain.OpNotLike, domain.ScopeProcess)
}

// MatchVariableNamesIgnoreCase compares the names of all variable predicates
// case-insensitively, including ones added earlier.
func (q *ExecutionQuery) MatchVariableNamesIgnoreCase() *ExecutionQuery {
	q.matchNamesIgnoreCase(&q.base)
	return q
}

// MatchVariableValuesIgnoreCase compares the text values of variable predicates
// added after this call case-insensitively.
func (q *ExecutionQuery) MatchVariableValuesIgnoreCase() *ExecutionQuery {
	q.matchValuesIgnoreCase(&q.base)
	return q
}

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *ExecutionQuery) OrderBy(property string) *ExecutionQuery {
	q.orderBy(property)
	return q
}

// OrderByProcessInstanceID sorts by process instance id.
func (q *ExecutionQuery) OrderByProcessInstanceID() *ExecutionQuery {
	return q.OrderBy("instanceId")
}

// OrderByProcessDefinitionKey sorts by process definition key.
func (q *ExecutionQuery) OrderByProcessDefinitionKey() *ExecutionQuery {
	return q.OrderBy("definitionKey")
}

// OrderByProcessDefinitionID sorts by process definition id.
func (q *ExecutionQuery) OrderByProcessDefinitionID() *ExecutionQuery {
	return q.OrderBy("definitionId")
}

// OrderByTenantID sorts by tenant id.
func (q *ExecutionQuery) OrderByTenantID() *ExecutionQuery {
	return q.OrderBy("tenantId")
}

// Asc sets the direction of the most recent ordering to ascending.
func (q *ExecutionQuery) Asc() *ExecutionQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *ExecutionQuery) Desc() *ExecutionQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *ExecutionQuery) validate() error {
	if err := q.base.validate(); err != nil {
		return err
	}
	if len(q.signalNames) > 1 {
		return domain.ValidationError(q.kind, "Only one signal name for event subscriptions allowed")
	}
	if len(q.messageNames) > 1 {
		return domain.ValidationError(q.kind, "Only one message name for event subscriptions allowed")
	}
	return nil
}

func first(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	return wire.String(values[0])
}

func (q *ExecutionQuery) request(ctx context.Context) (wire.ExecutionQuery, error) {
	var req wire.ExecutionQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	err := project(&req, func(dst *wire.ExecutionQuery, field string) error {
		var err error
		switch field {
		case "businessKey":
			dst.BusinessKey = wire.String(q.businessKey)
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.processDefinitionID)
		case "processDefinitionKey":
			dst.ProcessDefinitionKey = wire.String(q.processDefinitionKey)
		case "processInstanceId":
			dst.ProcessInstanceID = wire.String(q.processInstanceID)
		case "activityId":
			dst.ActivityID = wire.String(q.activityID)
		case "signalEventSubscriptionName":
			dst.SignalEventSubscriptionName = first(q.signalNames)
		case "messageEventSubscriptionName":
			dst.MessageEventSubscriptionName = first(q.messageNames)
		case "active":
			dst.Active = wire.True(q.suspension == domain.SuspensionActive)
		case "suspended":
			dst.Suspended = wire.True(q.suspension == domain.SuspensionSuspended)
		case "incidentId":
			dst.IncidentID = wire.String(q.incidentID)
		case "incidentType":
			dst.IncidentType = wire.String(q.incidentType)
		case "incidentMessage":
			dst.IncidentMessage = wire.String(q.incidentMessage)
		case "incidentMessageLike":
			dst.IncidentMessageLike = wire.String(q.incidentMessageLike)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "withoutTenantId":
			dst.WithoutTenantID = q.withoutTenant()
		case "variables":
			dst.Variables, err = q.params(q.kind, domain.ScopeLocal)
		case "processVariables":
			dst.ProcessVariables, err = q.params(q.kind, domain.ScopeProcess)
		case "variableNamesIgnoreCase":
			dst.VariableNamesIgnoreCase = wire.True(q.namesIgnoreCase)
		case "variableValuesIgnoreCase":
			dst.VariableValuesIgnoreCase = wire.True(q.valuesIgnoreCase)
		case "sorting":
			dst.Sorting = q.sortingList(ctx, executionSortKeys, nil)
		default:
			return unmapped(q.kind, field)
		}
		return err
	})
	return req, err
}
