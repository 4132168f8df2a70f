package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// HistoricProcessInstanceQuery queries the process instance history.
type HistoricProcessInstanceQuery struct {
	base
	variableFilter
	executor[wire.HistoricProcessInstanceQuery, wire.HistoricProcessInstanceRecord, domain.HistoricProcessInstance]

	processInstanceID                                string
	processInstanceIDs                               []string
	processDefinitionID, processDefinitionKey        string
	processDefinitionKeys, processDefinitionKeyNotIn []string
	processDefinitionName, processDefinitionNameLike string
	businessKey, businessKeyLike                     string
	businessKeyIn                                    []string
	rootProcessInstances                             bool
	finished, unfinished                             bool
	withIncidents, withRootIncidents                 bool
	incidentType, incidentMessage                    string
	incidentMessageLike                              string
	incidentStatus                                   domain.IncidentStatus
	startedBefore, startedAfter                      time.Time
	finishedBefore, finishedAfter                    time.Time
	executedActivityAfter, executedActivityBefore    time.Time
	executedJobAfter, executedJobBefore              time.Time
	startedBy                                        string
	superProcessInstanceID, subProcessInstanceID     string
	superCaseInstanceID, subCaseInstanceID           string
	caseInstanceID                                   string
	executedActivityIDs, activeActivityIDs           []string
	state                                            domain.HistoricState
	orRequested                                      bool
}

// NewHistoricProcessInstanceQuery returns an empty history query executed through endpoint.
func NewHistoricProcessInstanceQuery(endpoint Endpoint[wire.HistoricProcessInstanceQuery, wire.HistoricProcessInstanceRecord], opts ...Option) *HistoricProcessInstanceQuery {
	q := &HistoricProcessInstanceQuery{base: newBase("HistoricProcessInstanceQuery", opts)}
	q.executor = executor[wire.HistoricProcessInstanceQuery, wire.HistoricProcessInstanceRecord, domain.HistoricProcessInstance]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.HistoricProcessInstance,
	}
	return q
}

// ProcessInstanceID filters by process instance id.
func (q *HistoricProcessInstanceQuery) ProcessInstanceID(id string) *HistoricProcessInstanceQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ProcessInstanceIDs restricts the query to historic process instances whose process instance id is any of ids.
func (q *HistoricProcessInstanceQuery) ProcessInstanceIDs(ids ...string) *HistoricProcessInstanceQuery {
	q.setStrings("ProcessInstanceIDs", "processInstanceIds", &q.processInstanceIDs, ids)
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *HistoricProcessInstanceQuery) ProcessDefinitionID(id string) *HistoricProcessInstanceQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.processDefinitionID, id)
	return q
}

// ProcessDefinitionKey filters by process definition key.
func (q *HistoricProcessInstanceQuery) ProcessDefinitionKey(key string) *HistoricProcessInstanceQuery {
	q.setString("ProcessDefinitionKey", "processDefinitionKey", &q.processDefinitionKey, key)
	return q
}

// ProcessDefinitionKeyIn restricts the query to historic process instances whose process definition key is any of keys.
func (q *HistoricProcessInstanceQuery) ProcessDefinitionKeyIn(keys ...string) *HistoricProcessInstanceQuery {
	q.setStrings("ProcessDefinitionKeyIn", "processDefinitionKeys", &q.processDefinitionKeys, keys)
	return q
}

// ProcessDefinitionKeyNotIn excludes historic process instances whose process definition key is any of keys.
func (q *HistoricProcessInstanceQuery) ProcessDefinitionKeyNotIn(keys ...string) *HistoricProcessInstanceQuery {
	q.setStrings("ProcessDefinitionKeyNotIn", "processDefinitionKeys", &q.processDefinitionKeyNotIn, keys)
	return q
}

// ProcessDefinitionName filters by process definition name.
func (q *HistoricProcessInstanceQuery) ProcessDefinitionName(name string) *HistoricProcessInstanceQuery {
	q.setString("ProcessDefinitionName", "processDefinitionName", &q.processDefinitionName, name)
	return q
}

// ProcessDefinitionNameLike filters by process definition name matching pattern, where % matches any characters.
func (q *HistoricProcessInstanceQuery) ProcessDefinitionNameLike(pattern string) *HistoricProcessInstanceQuery {
	q.setString("ProcessDefinitionNameLike", "processDefinitionNameLike", &q.processDefinitionNameLike, pattern)
	return q
}

// ProcessInstanceBusinessKey filters by process instance business key.
func (q *HistoricProcessInstanceQuery) ProcessInstanceBusinessKey(key string) *HistoricProcessInstanceQuery {
	q.setString("ProcessInstanceBusinessKey", "businessKey", &q.businessKey, key)
	return q
}

// ProcessInstanceBusinessKeyIn restricts the query to historic process instances whose process instance business key is any of keys.
func (q *HistoricProcessInstanceQuery) ProcessInstanceBusinessKeyIn(keys ...string) *HistoricProcessInstanceQuery {
	q.setStrings("ProcessInstanceBusinessKeyIn", "businessKeys", &q.businessKeyIn, keys)
	return q
}

// ProcessInstanceBusinessKeyLike filters by process instance business key matching pattern, where % matches any characters.
func (q *HistoricProcessInstanceQuery) ProcessInstanceBusinessKeyLike(pattern string) *HistoricProcessInstanceQuery {
	q.setString("ProcessInstanceBusinessKeyLike", "businessKeyLike", &q.businessKeyLike, pattern)
	return q
}

// Finished restricts the query to finished historic process instances.
func (q *HistoricProcessInstanceQuery) Finished() *HistoricProcessInstanceQuery {
	q.setFlag(&q.finished)
	return q
}

// Unfinished restricts the query to unfinished historic process instances.
func (q *HistoricProcessInstanceQuery) Unfinished() *HistoricProcessInstanceQuery {
	q.setFlag(&q.unfinished)
	return q
}

// WithIncidents restricts the query to historic process instances with incidents.
func (q *HistoricProcessInstanceQuery) WithIncidents() *HistoricProcessInstanceQuery {
	q.setFlag(&q.withIncidents)
	return q
}

// WithRootIncidents restricts the query to historic process instances with root incidents.
func (q *HistoricProcessInstanceQuery) WithRootIncidents() *HistoricProcessInstanceQuery {
	q.setFlag(&q.withRootIncidents)
	return q
}

// IncidentStatus restricts the query to historic process instances with an incident in status.
func (q *HistoricProcessInstanceQuery) IncidentStatus(status domain.IncidentStatus) *HistoricProcessInstanceQuery {
	if !q.ok(nil) {
		return q
	}
	if !status.Valid() {
		q.usage("IncidentStatus", "unknown incident status %q", status)
		return q
	}
	q.incidentStatus = status
	return q
}

// IncidentType filters by incident type.
func (q *HistoricProcessInstanceQuery) IncidentType(incidentType string) *HistoricProcessInstanceQuery {
	q.setString("IncidentType", "incidentType", &q.incidentType, incidentType)
	return q
}

// IncidentMessage filters by incident message.
func (q *HistoricProcessInstanceQuery) IncidentMessage(message string) *HistoricProcessInstanceQuery {
	q.setString("IncidentMessage", "incidentMessage", &q.incidentMessage, message)
	return q
}

// IncidentMessageLike filters by incident message matching pattern, where % matches any characters.
func (q *HistoricProcessInstanceQuery) IncidentMessageLike(pattern string) *HistoricProcessInstanceQuery {
	q.setString("IncidentMessageLike", "incidentMessageLike", &q.incidentMessageLike, pattern)
	return q
}

// CaseInstanceID filters by case instance id.
func (q *HistoricProcessInstanceQuery) CaseInstanceID(id string) *HistoricProcessInstanceQuery {
	q.setString("CaseInstanceID", "caseInstanceId", &q.caseInstanceID, id)
	return q
}

// StartedBefore filters historic process instances by started before t.
func (q *HistoricProcessInstanceQuery) StartedBefore(t time.Time) *HistoricProcessInstanceQuery {
	q.setTime("StartedBefore", "startedBefore", &q.startedBefore, t)
	return q
}

// StartedAfter filters historic process instances by started after t.
func (q *HistoricProcessInstanceQuery) StartedAfter(t time.Time) *HistoricProcessInstanceQuery {
	q.setTime("StartedAfter", "startedAfter", &q.startedAfter, t)
	return q
}

// FinishedBefore also restricts the query to finished instances.
func (q *HistoricProcessInstanceQuery) FinishedBefore(t time.Time) *HistoricProcessInstanceQuery {
	if q.setTime("FinishedBefore", "finishedBefore", &q.finishedBefore, t) {
		q.finished = true
	}
	return q
}

// FinishedAfter also restricts the query to finished instances.
func (q *HistoricProcessInstanceQuery) FinishedAfter(t time.Time) *HistoricProcessInstanceQuery {
	if q.setTime("FinishedAfter", "finishedAfter", &q.finishedAfter, t) {
		q.finished = true
	}
	return q
}

// StartDateOn selects instances started on the calendar day of t, in t's location.
func (q *HistoricProcessInstanceQuery) StartDateOn(t time.Time) *HistoricProcessInstanceQuery {
	if q.ok(domain.RequireTime(q.op("StartDateOn"), "startDateOn", t)) {
		q.startedAfter, q.startedBefore = dayBounds(t)
	}
	return q
}

// FinishDateOn selects instances finished on the calendar day of t.
func (q *HistoricProcessInstanceQuery) FinishDateOn(t time.Time) *HistoricProcessInstanceQuery {
	if q.ok(domain.RequireTime(q.op("FinishDateOn"), "finishDateOn", t)) {
		q.finishedAfter, q.finishedBefore = dayBounds(t)
		q.finished = true
	}
	return q
}

// dayBounds returns midnight of t's day and the last second before the next midnight.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Second)
}

// StartedBy restricts the query to historic process instances started by userID.
func (q *HistoricProcessInstanceQuery) StartedBy(userID string) *HistoricProcessInstanceQuery {
	q.setString("StartedBy", "startedBy", &q.startedBy, userID)
	return q
}

// RootProcessInstances selects instances without a super process or case
// instance. It excludes SuperProcessInstanceID and SuperCaseInstanceID.
func (q *HistoricProcessInstanceQuery) RootProcessInstances() *HistoricProcessInstanceQuery {
	switch {
	case !q.ok(nil):
	case q.superProcessInstanceID != "":
		q.usage("RootProcessInstances", "cannot set both rootProcessInstances and superProcessInstanceId")
	case q.superCaseInstanceID != "":
		q.usage("RootProcessInstances", "cannot set both rootProcessInstances and superCaseInstanceId")
	default:
		q.rootProcessInstances = true
	}
	return q
}

// SuperProcessInstanceID filters by super process instance id.
func (q *HistoricProcessInstanceQuery) SuperProcessInstanceID(id string) *HistoricProcessInstanceQuery {
	if q.ok(nil) && q.rootProcessInstances {
		q.usage("SuperProcessInstanceID", "cannot set both rootProcessInstances and superProcessInstanceId")
		return q
	}
	q.setString("SuperProcessInstanceID", "superProcessInstanceId", &q.superProcessInstanceID, id)
	return q
}

// SubProcessInstanceID filters by sub process instance id.
func (q *HistoricProcessInstanceQuery) SubProcessInstanceID(id string) *HistoricProcessInstanceQuery {
	q.setString("SubProcessInstanceID", "subProcessInstanceId", &q.subProcessInstanceID, id)
	return q
}

// SuperCaseInstanceID filters by super case instance id.
func (q *HistoricProcessInstanceQuery) SuperCaseInstanceID(id string) *HistoricProcessInstanceQuery {
	if q.ok(nil) && q.rootProcessInstances {
		q.usage("SuperCaseInstanceID", "cannot set both rootProcessInstances and superCaseInstanceId")
		return q
	}
	q.setString("SuperCaseInstanceID", "superCaseInstanceId", &q.superCaseInstanceID, id)
	return q
}

// SubCaseInstanceID filters by sub case instance id.
func (q *HistoricProcessInstanceQuery) SubCaseInstanceID(id string) *HistoricProcessInstanceQuery {
	q.setString("SubCaseInstanceID", "subCaseInstanceId", &q.subCaseInstanceID, id)
	return q
}

// ExecutedActivityAfter filters historic process instances by executed activity after t.
func (q *HistoricProcessInstanceQuery) ExecutedActivityAfter(t time.Time) *HistoricProcessInstanceQuery {
	q.setTime("ExecutedActivityAfter", "executedActivityAfter", &q.executedActivityAfter, t)
	return q
}

// ExecutedActivityBefore filters historic process instances by executed activity before t.
func (q *HistoricProcessInstanceQuery) ExecutedActivityBefore(t time.Time) *HistoricProcessInstanceQuery {
	q.setTime("ExecutedActivityBefore", "executedActivityBefore", &q.executedActivityBefore, t)
	return q
}

// ExecutedActivityIDIn restricts the query to historic process instances whose executed activity id is any of ids.
func (q *HistoricProcessInstanceQuery) ExecutedActivityIDIn(ids ...string) *HistoricProcessInstanceQuery {
	q.setStrings("ExecutedActivityIDIn", "executedActivityIds", &q.executedActivityIDs, ids)
	return q
}

// ActiveActivityIDIn restricts the query to historic process instances whose active activity id is any of ids.
func (q *HistoricProcessInstanceQuery) ActiveActivityIDIn(ids ...string) *HistoricProcessInstanceQuery {
	q.setStrings("ActiveActivityIDIn", "activeActivityIds", &q.activeActivityIDs, ids)
	return q
}

// ExecutedJobAfter filters historic process instances by executed job after t.
func (q *HistoricProcessInstanceQuery) ExecutedJobAfter(t time.Time) *HistoricProcessInstanceQuery {
	q.setTime("ExecutedJobAfter", "executedJobAfter", &q.executedJobAfter, t)
	return q
}

// ExecutedJobBefore filters historic process instances by executed job before t.
func (q *HistoricProcessInstanceQuery) ExecutedJobBefore(t time.Time) *HistoricProcessInstanceQuery {
	q.setTime("ExecutedJobBefore", "executedJobBefore", &q.executedJobBefore, t)
	return q
}

func (q *HistoricProcessInstanceQuery) setState(s domain.HistoricState) *HistoricProcessInstanceQuery {
	if q.ok(nil) {
		q.state = s
	}
	return q
}

// Active restricts the query to active historic process instances.
func (q *HistoricProcessInstanceQuery) Active() *HistoricProcessInstanceQuery {
	return q.setState(domain.HistoricActive)
}

// Suspended restricts the query to suspended historic process instances.
func (q *HistoricProcessInstanceQuery) Suspended() *HistoricProcessInstanceQuery {
	return q.setState(domain.HistoricSuspended)
}

// Completed restricts the query to completed historic process instances.
func (q *HistoricProcessInstanceQuery) Completed() *HistoricProcessInstanceQuery {
	return q.setState(domain.HistoricCompleted)
}

// ExternallyTerminated restricts the query to historic process instances that are externally terminated.
func (q *HistoricProcessInstanceQuery) ExternallyTerminated() *HistoricProcessInstanceQuery {
	return q.setState(domain.HistoricExternallyTerminated)
}

// InternallyTerminated restricts the query to historic process instances that are internally terminated.
func (q *HistoricProcessInstanceQuery) InternallyTerminated() *HistoricProcessInstanceQuery {
	return q.setState(domain.HistoricInternallyTerminated)
}

// TenantIDIn restricts the query to historic process instances whose tenant id is any of ids.
func (q *HistoricProcessInstanceQuery) TenantIDIn(ids ...string) *HistoricProcessInstanceQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to historic process instances without tenant id.
func (q *HistoricProcessInstanceQuery) WithoutTenantID() *HistoricProcessInstanceQuery {
	q.withoutTenantID()
	return q
}

func (q *HistoricProcessInstanceQuery) variable(setter, name string, value any, op domain.Operator) *HistoricProcessInstanceQuery {
	q.addVariable(&q.base, setter, name, value, op, domain.ScopeProcess)
	return q
}

// VariableValueEquals matches historic process instances with a variable name whose value equals value.
func (q *HistoricProcessInstanceQuery) VariableValueEquals(name string, value any) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueEquals", name, value, domain.OpEquals)
}

// VariableValueNotEquals matches historic process instances with a variable name whose value differs from value.
func (q *HistoricProcessInstanceQuery) VariableValueNotEquals(name string, value any) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueNotEquals", name, value, domain.OpNotEquals)
}

// VariableValueGreaterThan matches historic process instances with a variable name whose value is greater than value.
func (q *HistoricProcessInstanceQuery) VariableValueGreaterThan(name string, value any) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueGreaterThan", name, value, domain.OpGreaterThan)
}

// VariableValueGreaterThanOrEqual matches historic process instances with a variable name whose value is at least value.
func (q *HistoricProcessInstanceQuery) VariableValueGreaterThanOrEqual(name string, value any) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueGreaterThanOrEqual", name, value, domain.OpGreaterThanOrEqual)
}

// VariableValueLessThan matches historic process instances with a variable name whose value is less than value.
func (q *HistoricProcessInstanceQuery) VariableValueLessThan(name string, value any) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueLessThan", name, value, domain.OpLessThan)
}

// VariableValueLessThanOrEqual matches historic process instances with a variable name whose value is at most value.
func (q *HistoricProcessInstanceQuery) VariableValueLessThanOrEqual(name string, value any) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueLessThanOrEqual", name, value, domain.OpLessThanOrEqual)
}

// VariableValueLike matches historic process instances with a variable name whose value matches the pattern.
func (q *HistoricProcessInstanceQuery) VariableValueLike(name, pattern string) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueLike", name, pattern, domain.OpLike)
}

// VariableValueNotLike matches historic process instances with a variable name whose value does not match the pattern.
func (q *HistoricProcessInstanceQuery) VariableValueNotLike(name, pattern string) *HistoricProcessInstanceQuery {
	return q.variable("VariableValueNotLike", name, pattern, domain.OpNotLike)
}

// MatchVariableNamesIgnoreCase compares the names of all variable predicates
// case-insensitively, including ones added earlier.
func (q *HistoricProcessInstanceQuery) MatchVariableNamesIgnoreCase() *HistoricProcessInstanceQuery {
	q.matchNamesIgnoreCase(&q.base)
	return q
}

// MatchVariableValuesIgnoreCase compares the text values of variable predicates
// added after this call case-insensitively.
func (q *HistoricProcessInstanceQuery) MatchVariableValuesIgnoreCase() *HistoricProcessInstanceQuery {
	q.matchValuesIgnoreCase(&q.base)
	return q
}

// Or starts an or-query. Or-queries cannot be executed remotely; a query
// using one fails validation.
func (q *HistoricProcessInstanceQuery) Or() *HistoricProcessInstanceQuery {
	if q.ok(nil) {
		q.orRequested = true
	}
	return q
}

// EndOr closes an or-query and otherwise has no effect.
func (q *HistoricProcessInstanceQuery) EndOr() *HistoricProcessInstanceQuery { return q }

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *HistoricProcessInstanceQuery) OrderBy(property string) *HistoricProcessInstanceQuery {
	q.orderBy(property)
	return q
}

// OrderByProcessInstanceID sorts by process instance id.
func (q *HistoricProcessInstanceQuery) OrderByProcessInstanceID() *HistoricProcessInstanceQuery {
	return q.OrderBy("instanceId")
}

// OrderByProcessDefinitionID sorts by process definition id.
func (q *HistoricProcessInstanceQuery) OrderByProcessDefinitionID() *HistoricProcessInstanceQuery {
	return q.OrderBy("definitionId")
}

// OrderByProcessDefinitionKey sorts by process definition key.
func (q *HistoricProcessInstanceQuery) OrderByProcessDefinitionKey() *HistoricProcessInstanceQuery {
	return q.OrderBy("definitionKey")
}

// OrderByProcessDefinitionName sorts by process definition name.
func (q *HistoricProcessInstanceQuery) OrderByProcessDefinitionName() *HistoricProcessInstanceQuery {
	return q.OrderBy("definitionName")
}

// OrderByProcessDefinitionVersion sorts by process definition version.
func (q *HistoricProcessInstanceQuery) OrderByProcessDefinitionVersion() *HistoricProcessInstanceQuery {
	return q.OrderBy("definitionVersion")
}

// OrderByProcessInstanceBusinessKey sorts by process instance business key.
func (q *HistoricProcessInstanceQuery) OrderByProcessInstanceBusinessKey() *HistoricProcessInstanceQuery {
	return q.OrderBy("businessKey")
}

// OrderByProcessInstanceStartTime sorts by process instance start time.
func (q *HistoricProcessInstanceQuery) OrderByProcessInstanceStartTime() *HistoricProcessInstanceQuery {
	return q.OrderBy("startTime")
}

// OrderByProcessInstanceEndTime sorts by process instance end time.
func (q *HistoricProcessInstanceQuery) OrderByProcessInstanceEndTime() *HistoricProcessInstanceQuery {
	return q.OrderBy("endTime")
}

// OrderByProcessInstanceDuration sorts by process instance duration.
func (q *HistoricProcessInstanceQuery) OrderByProcessInstanceDuration() *HistoricProcessInstanceQuery {
	return q.OrderBy("duration")
}

// OrderByTenantID sorts by tenant id.
func (q *HistoricProcessInstanceQuery) OrderByTenantID() *HistoricProcessInstanceQuery {
	return q.OrderBy("tenantId")
}

// Asc sets the direction of the most recent ordering to ascending.
func (q *HistoricProcessInstanceQuery) Asc() *HistoricProcessInstanceQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *HistoricProcessInstanceQuery) Desc() *HistoricProcessInstanceQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *HistoricProcessInstanceQuery) validate() error {
	if err := q.base.validate(); err != nil {
		return err
	}
	if q.orRequested {
		return domain.ValidationError(q.kind, "or-Queries are not supported")
	}
	return nil
}

func (q *HistoricProcessInstanceQuery) request(ctx context.Context) (wire.HistoricProcessInstanceQuery, error) {
	var req wire.HistoricProcessInstanceQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	err := project(&req, func(dst *wire.HistoricProcessInstanceQuery, field string) error {
		var err error
		switch field {
		case "processInstanceId":
			dst.ProcessInstanceID = wire.String(q.processInstanceID)
		case "processInstanceIds":
			dst.ProcessInstanceIDs = q.processInstanceIDs
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.processDefinitionID)
		case "processDefinitionKey":
			dst.ProcessDefinitionKey = wire.String(q.processDefinitionKey)
		case "processDefinitionKeyIn":
			dst.ProcessDefinitionKeyIn = q.processDefinitionKeys
		case "processDefinitionName":
			dst.ProcessDefinitionName = wire.String(q.processDefinitionName)
		case "processDefinitionNameLike":
			dst.ProcessDefinitionNameLike = wire.String(q.processDefinitionNameLike)
		case "processDefinitionKeyNotIn":
			dst.ProcessDefinitionKeyNotIn = q.processDefinitionKeyNotIn
		case "processInstanceBusinessKey":
			dst.ProcessInstanceBusinessKey = wire.String(q.businessKey)
		case "processInstanceBusinessKeyIn":
			dst.ProcessInstanceBusinessKeyIn = q.businessKeyIn
		case "processInstanceBusinessKeyLike":
			dst.ProcessInstanceBusinessKeyLike = wire.String(q.businessKeyLike)
		case "rootProcessInstances":
			dst.RootProcessInstances = wire.True(q.rootProcessInstances)
		case "finished":
			dst.Finished = wire.True(q.finished)
		case "unfinished":
			dst.Unfinished = wire.True(q.unfinished)
		case "withIncidents":
			dst.WithIncidents = wire.True(q.withIncidents)
		case "withRootIncidents":
			dst.WithRootIncidents = wire.True(q.withRootIncidents)
		case "incidentType":
			dst.IncidentType = wire.String(q.incidentType)
		case "incidentStatus":
			dst.IncidentStatus = wire.String(string(q.incidentStatus))
		case "incidentMessage":
			dst.IncidentMessage = wire.String(q.incidentMessage)
		case "incidentMessageLike":
			dst.IncidentMessageLike = wire.String(q.incidentMessageLike)
		case "startedBefore":
			dst.StartedBefore = wire.TimeOf(q.startedBefore)
		case "startedAfter":
			dst.StartedAfter = wire.TimeOf(q.startedAfter)
		case "finishedBefore":
			dst.FinishedBefore = wire.TimeOf(q.finishedBefore)
		case "finishedAfter":
			dst.FinishedAfter = wire.TimeOf(q.finishedAfter)
		case "executedActivityAfter":
			dst.ExecutedActivityAfter = wire.TimeOf(q.executedActivityAfter)
		case "executedActivityBefore":
			dst.ExecutedActivityBefore = wire.TimeOf(q.executedActivityBefore)
		case "executedJobAfter":
			dst.ExecutedJobAfter = wire.TimeOf(q.executedJobAfter)
		case "executedJobBefore":
			dst.ExecutedJobBefore = wire.TimeOf(q.executedJobBefore)
		case "startedBy":
			dst.StartedBy = wire.String(q.startedBy)
		case "superProcessInstanceId":
			dst.SuperProcessInstanceID = wire.String(q.superProcessInstanceID)
		case "subProcessInstanceId":
			dst.SubProcessInstanceID = wire.String(q.subProcessInstanceID)
		case "superCaseInstanceId":
			dst.SuperCaseInstanceID = wire.String(q.superCaseInstanceID)
		case "subCaseInstanceId":
			dst.SubCaseInstanceID = wire.String(q.subCaseInstanceID)
		case "caseInstanceId":
			dst.CaseInstanceID = wire.String(q.caseInstanceID)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "withoutTenantId":
			dst.WithoutTenantID = q.withoutTenant()
		case "executedActivityIdIn":
			dst.ExecutedActivityIDIn = q.executedActivityIDs
		case "activeActivityIdIn":
			dst.ActiveActivityIDIn = q.activeActivityIDs
		case "active":
			dst.Active = wire.True(q.state == domain.HistoricActive)
		case "suspended":
			dst.Suspended = wire.True(q.state == domain.HistoricSuspended)
		case "completed":
			dst.Completed = wire.True(q.state == domain.HistoricCompleted)
		case "externallyTerminated":
			dst.ExternallyTerminated = wire.True(q.state == domain.HistoricExternallyTerminated)
		case "internallyTerminated":
			dst.InternallyTerminated = wire.True(q.state == domain.HistoricInternallyTerminated)
		case "variableNamesIgnoreCase":
			dst.VariableNamesIgnoreCase = wire.True(q.namesIgnoreCase)
		case "variableValuesIgnoreCase":
			dst.VariableValuesIgnoreCase = wire.True(q.valuesIgnoreCase)
		case "variables":
			dst.Variables, err = q.params(q.kind, domain.ScopeProcess)
		case "orQueries":
			dst.OrQueries = nil
		case "sorting":
			dst.Sorting = q.sortingList(ctx, historicProcessInstanceSortKeys, nil)
		default:
			return unmapped(q.kind, field)
		}
		return err
	})
	return req, err
}
