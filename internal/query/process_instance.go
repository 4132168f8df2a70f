package query

import (
	"context"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// ProcessInstanceQuery queries running process instances.
type ProcessInstanceQuery struct {
	base
	variableFilter
	executor[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord, domain.ProcessInstance]

	processInstanceID                          string
	processInstanceIDs                         []string
	businessKey, businessKeyLike               string
	processDefinitionID                        string
	processDefinitionKey                       string
	processDefinitionKeys                      []string
	processDefinitionKeyNotIn                  []string
	deploymentID                               string
	superProcessInstanceID                     string
	subProcessInstanceID                       string
	caseInstanceID                             string
	superCaseInstanceID, subCaseInstanceID     string
	suspension                                 domain.SuspensionState
	withIncident                               bool
	incidentID, incidentType                   string
	incidentMessage, incidentMessageLike       string
	processDefinitionWithoutTenantID           bool
	activityIDs                                []string
	rootProcessInstances, leafProcessInstances bool
	orRequested                                bool
}

// NewProcessInstanceQuery returns an empty process instance query executed through endpoint.
func NewProcessInstanceQuery(endpoint Endpoint[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord], opts ...Option) *ProcessInstanceQuery {
	q := &ProcessInstanceQuery{base: newBase("ProcessInstanceQuery", opts)}
	q.executor = executor[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord, domain.ProcessInstance]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.ProcessInstance,
	}
	return q
}

// ProcessInstanceID filters by process instance id.
func (q *ProcessInstanceQuery) ProcessInstanceID(id string) *ProcessInstanceQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ProcessInstanceIDs restricts the query to process instances whose process instance id is any of ids.
func (q *ProcessInstanceQuery) ProcessInstanceIDs(ids ...string) *ProcessInstanceQuery {
	q.setStrings("ProcessInstanceIDs", "processInstanceIds", &q.processInstanceIDs, ids)
	return q
}

// ProcessInstanceBusinessKey filters by process instance business key.
func (q *ProcessInstanceQuery) ProcessInstanceBusinessKey(key string) *ProcessInstanceQuery {
	q.setString("ProcessInstanceBusinessKey", "businessKey", &q.businessKey, key)
	return q
}

// ProcessInstanceBusinessKeyAndDefinition filters by business key within one process definition key.
func (q *ProcessInstanceQuery) ProcessInstanceBusinessKeyAndDefinition(key, processDefinitionKey string) *ProcessInstanceQuery {
	if q.setString("ProcessInstanceBusinessKeyAndDefinition", "businessKey", &q.businessKey, key) {
		q.setString("ProcessInstanceBusinessKeyAndDefinition", "processDefinitionKey", &q.processDefinitionKey, processDefinitionKey)
	}
	return q
}

// ProcessInstanceBusinessKeyLike filters by process instance business key matching pattern, where % matches any characters.
func (q *ProcessInstanceQuery) ProcessInstanceBusinessKeyLike(pattern string) *ProcessInstanceQuery {
	q.setString("ProcessInstanceBusinessKeyLike", "businessKeyLike", &q.businessKeyLike, pattern)
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *ProcessInstanceQuery) ProcessDefinitionID(id string) *ProcessInstanceQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.processDefinitionID, id)
	return q
}

// ProcessDefinitionKey filters by process definition key.
func (q *ProcessInstanceQuery) ProcessDefinitionKey(key string) *ProcessInstanceQuery {
	q.setString("ProcessDefinitionKey", "processDefinitionKey", &q.processDefinitionKey, key)
	return q
}

// ProcessDefinitionKeyIn restricts the query to process instances whose process definition key is any of keys.
func (q *ProcessInstanceQuery) ProcessDefinitionKeyIn(keys ...string) *ProcessInstanceQuery {
	q.setStrings("ProcessDefinitionKeyIn", "processDefinitionKeys", &q.processDefinitionKeys, keys)
	return q
}

// ProcessDefinitionKeyNotIn excludes process instances whose process definition key is any of keys.
func (q *ProcessInstanceQuery) ProcessDefinitionKeyNotIn(keys ...string) *ProcessInstanceQuery {
	q.setStrings("ProcessDefinitionKeyNotIn", "processDefinitionKeys", &q.processDefinitionKeyNotIn, keys)
	return q
}

// DeploymentID filters by deployment id.
func (q *ProcessInstanceQuery) DeploymentID(id string) *ProcessInstanceQuery {
	q.setString("DeploymentID", "deploymentId", &q.deploymentID, id)
	return q
}

// SuperProcessInstanceID selects sub instances of the given instance. It
// excludes RootProcessInstances.
func (q *ProcessInstanceQuery) SuperProcessInstanceID(id string) *ProcessInstanceQuery {
	if q.ok(nil) && q.rootProcessInstances {
		q.usage("SuperProcessInstanceID", "cannot set both rootProcessInstances and superProcessInstanceId")
		return q
	}
	q.setString("SuperProcessInstanceID", "superProcessInstanceId", &q.superProcessInstanceID, id)
	return q
}

// SubProcessInstanceID selects the parent of the given instance. It excludes
// LeafProcessInstances.
func (q *ProcessInstanceQuery) SubProcessInstanceID(id string) *ProcessInstanceQuery {
	if q.ok(nil) && q.leafProcessInstances {
		q.usage("SubProcessInstanceID", "cannot set both leafProcessInstances and subProcessInstanceId")
		return q
	}
	q.setString("SubProcessInstanceID", "subProcessInstanceId", &q.subProcessInstanceID, id)
	return q
}

// CaseInstanceID filters by case instance id.
func (q *ProcessInstanceQuery) CaseInstanceID(id string) *ProcessInstanceQuery {
	q.setString("CaseInstanceID", "caseInstanceId", &q.caseInstanceID, id)
	return q
}

// SuperCaseInstanceID filters by super case instance id.
func (q *ProcessInstanceQuery) SuperCaseInstanceID(id string) *ProcessInstanceQuery {
	q.setString("SuperCaseInstanceID", "superCaseInstanceId", &q.superCaseInstanceID, id)
	return q
}

// SubCaseInstanceID filters by sub case instance id.
func (q *ProcessInstanceQuery) SubCaseInstanceID(id string) *ProcessInstanceQuery {
	q.setString("SubCaseInstanceID", "subCaseInstanceId", &q.subCaseInstanceID, id)
	return q
}

// Active restricts the query to active process instances.
func (q *ProcessInstanceQuery) Active() *ProcessInstanceQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionActive
	}
	return q
}

// Suspended restricts the query to suspended process instances.
func (q *ProcessInstanceQuery) Suspended() *ProcessInstanceQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionSuspended
	}
	return q
}

// WithIncident restricts the query to process instances with incident.
func (q *ProcessInstanceQuery) WithIncident() *ProcessInstanceQuery {
	q.setFlag(&q.withIncident)
	return q
}

// IncidentID filters by incident id.
func (q *ProcessInstanceQuery) IncidentID(id string) *ProcessInstanceQuery {
	q.setString("IncidentID", "incidentId", &q.incidentID, id)
	return q
}

// IncidentType filters by incident type.
func (q *ProcessInstanceQuery) IncidentType(incidentType string) *ProcessInstanceQuery {
	q.setString("IncidentType", "incidentType", &q.incidentType, incidentType)
	return q
}

// IncidentMessage filters by incident message.
func (q *ProcessInstanceQuery) IncidentMessage(message string) *ProcessInstanceQuery {
	q.setString("IncidentMessage", "incidentMessage", &q.incidentMessage, message)
	return q
}

// IncidentMessageLike filters by incident message matching pattern, where % matches any characters.
func (q *ProcessInstanceQuery) IncidentMessageLike(pattern string) *ProcessInstanceQuery {
	q.setString("IncidentMessageLike", "incidentMessageLike", &q.incidentMessageLike, pattern)
	return q
}

// TenantIDIn restricts the query to process instances whose tenant id is any of ids.
func (q *ProcessInstanceQuery) TenantIDIn(ids ...string) *ProcessInstanceQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to process instances without tenant id.
func (q *ProcessInstanceQuery) WithoutTenantID() *ProcessInstanceQuery {
	q.withoutTenantID()
	return q
}

// ProcessDefinitionWithoutTenantID restricts the query to process instances whose
// definition has no tenant id.
func (q *ProcessInstanceQuery) ProcessDefinitionWithoutTenantID() *ProcessInstanceQuery {
	q.setFlag(&q.processDefinitionWithoutTenantID)
	return q
}

// ActivityIDIn restricts the query to process instances whose activity id is any of ids.
func (q *ProcessInstanceQuery) ActivityIDIn(ids ...string) *ProcessInstanceQuery {
	q.setStrings("ActivityIDIn", "activityIds", &q.activityIDs, ids)
	return q
}

// RootProcessInstances selects instances without a super instance. It
// excludes SuperProcessInstanceID.
func (q *ProcessInstanceQuery) RootProcessInstances() *ProcessInstanceQuery {
	if q.ok(nil) && q.superProcessInstanceID != "" {
		q.usage("RootProcessInstances", "cannot set both rootProcessInstances and superProcessInstanceId")
		return q
	}
	q.setFlag(&q.rootProcessInstances)
	return q
}

// LeafProcessInstances selects instances without sub instances. It excludes
// SubProcessInstanceID.
func (q *ProcessInstanceQuery) LeafProcessInstances() *ProcessInstanceQuery {
	if q.ok(nil) && q.subProcessInstanceID != "" {
		q.usage("LeafProcessInstances", "cannot set both leafProcessInstances and subProcessInstanceId")
		return q
	}
	q.setFlag(&q.leafProcessInstances)
	return q
}

func (q *ProcessInstanceQuery) variable(setter, name string, value any, op domain.Operator) *ProcessInstanceQuery {
	q.addVariable(&q.base, setter, name, value, op, domain.ScopeProcess)
	return q
}

// VariableValueEquals matches process instances with a variable name whose value equals value.
func (q *ProcessInstanceQuery) VariableValueEquals(name string, value any) *ProcessInstanceQuery {
	return q.variable("VariableValueEquals", name, value, domain.OpEquals)
}

// VariableValueNotEquals matches process instances with a variable name whose value differs from value.
func (q *ProcessInstanceQuery) VariableValueNotEquals(name string, value any) *ProcessInstanceQuery {
	return q.variable("VariableValueNotEquals", name, value, domain.OpNotEquals)
}

// VariableValueGreaterThan matches process instances with a variable name whose value is greater than value.
func (q *ProcessInstanceQuery) VariableValueGreaterThan(name string, value any) *ProcessInstanceQuery {
	return q.variable("VariableValueGreaterThan", name, value, domain.OpGreaterThan)
}

// VariableValueGreaterThanOrEqual matches process instances with a variable name whose value is at least value.
func (q *ProcessInstanceQuery) VariableValueGreaterThanOrEqual(name string, value any) *ProcessInstanceQuery {
	return q.variable("VariableValueGreaterThanOrEqual", name, value, domain.OpGreaterThanOrEqual)
}

// VariableValueLessThan matches process instances with a variable name whose value is less than value.
func (q *ProcessInstanceQuery) VariableValueLessThan(name string, value any) *ProcessInstanceQuery {
	return q.variable("VariableValueLessThan", name, value, domain.OpLessThan)
}

// VariableValueLessThanOrEqual matches process instances with a variable name whose value is at most value.
func (q *ProcessInstanceQuery) VariableValueLessThanOrEqual(name string, value any) *ProcessInstanceQuery {
	return q.variable("VariableValueLessThanOrEqual", name, value, domain.OpLessThanOrEqual)
}

// VariableValueLike matches process instances with a variable name whose value matches the pattern.
func (q *ProcessInstanceQuery) VariableValueLike(name, pattern string) *ProcessInstanceQuery {
	return q.variable("VariableValueLike", name, pattern, domain.OpLike)
}

// VariableValueNotLike matches process instances with a variable name whose value does not match the pattern.
func (q *ProcessInstanceQuery) VariableValueNotLike(name, pattern string) *ProcessInstanceQuery {
	return q.variable("VariableValueNotLike", name, pattern, domain.OpNotLike)
}

// MatchVariableNamesIgnoreCase compares the names of all variable predicates
// case-insensitively, including ones added earlier.
func (q *ProcessInstanceQuery) MatchVariableNamesIgnoreCase() *ProcessInstanceQuery {
	q.matchNamesIgnoreCase(&q.base)
	return q
}

// MatchVariableValuesIgnoreCase compares the text values of variable predicates
// added after this call case-insensitively.
func (q *ProcessInstanceQuery) MatchVariableValuesIgnoreCase() *ProcessInstanceQuery {
	q.matchValuesIgnoreCase(&q.base)
	return q
}

// Or starts an or-query. Or-queries cannot be executed remotely; a query
// using one fails validation.
func (q *ProcessInstanceQuery) Or() *ProcessInstanceQuery {
	if q.ok(nil) {
		q.orRequested = true
	}
	return q
}

// EndOr closes an or-query and otherwise has no effect.
func (q *ProcessInstanceQuery) EndOr() *ProcessInstanceQuery { return q }

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *ProcessInstanceQuery) OrderBy(property string) *ProcessInstanceQuery {
	q.orderBy(property)
	return q
}

// OrderByProcessInstanceID sorts by process instance id.
func (q *ProcessInstanceQuery) OrderByProcessInstanceID() *ProcessInstanceQuery {
	return q.OrderBy("instanceId")
}

// OrderByProcessDefinitionKey sorts by process definition key.
func (q *ProcessInstanceQuery) OrderByProcessDefinitionKey() *ProcessInstanceQuery {
	return q.OrderBy("definitionKey")
}

// OrderByProcessDefinitionID sorts by process definition id.
func (q *ProcessInstanceQuery) OrderByProcessDefinitionID() *ProcessInstanceQuery {
	return q.OrderBy("definitionId")
}

// OrderByTenantID sorts by tenant id.
func (q *ProcessInstanceQuery) OrderByTenantID() *ProcessInstanceQuery {
	return q.OrderBy("tenantId")
}

// OrderByBusinessKey sorts by business key.
func (q *ProcessInstanceQuery) OrderByBusinessKey() *ProcessInstanceQuery {
	return q.OrderBy("businessKey")
}

// Asc sets the direction of the most recent ordering to ascending.
func (q *ProcessInstanceQuery) Asc() *ProcessInstanceQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *ProcessInstanceQuery) Desc() *ProcessInstanceQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *ProcessInstanceQuery) validate() error {
	if err := q.base.validate(); err != nil {
		return err
	}
	if q.orRequested {
		return domain.ValidationError(q.kind, "or-Queries are not supported")
	}
	return nil
}

// instanceIDs merges ProcessInstanceID into the processInstanceIds list; the
// wire shape has no single-id field.
func (q *ProcessInstanceQuery) instanceIDs() []string {
	ids := append([]string(nil), q.processInstanceIDs...)
	if q.processInstanceID == "" {
		return ids
	}
	for _, id := range ids {
		if id == q.processInstanceID {
			return ids
		}
	}
	return append(ids, q.processInstanceID)
}

func (q *ProcessInstanceQuery) request(ctx context.Context) (wire.ProcessInstanceQuery, error) {
	var req wire.ProcessInstanceQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	err := project(&req, func(dst *wire.ProcessInstanceQuery, field string) error {
		var err error
		switch field {
		case "deploymentId":
			dst.DeploymentID = wire.String(q.deploymentID)
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.processDefinitionID)
		case "processDefinitionKey":
			dst.ProcessDefinitionKey = wire.String(q.processDefinitionKey)
		case "processDefinitionKeyIn":
			dst.ProcessDefinitionKeyIn = q.processDefinitionKeys
		case "processDefinitionKeyNotIn":
			dst.ProcessDefinitionKeyNotIn = q.processDefinitionKeyNotIn
		case "businessKey":
			dst.BusinessKey = wire.String(q.businessKey)
		case "businessKeyLike":
			dst.BusinessKeyLike = wire.String(q.businessKeyLike)
		case "caseInstanceId":
			dst.CaseInstanceID = wire.String(q.caseInstanceID)
		case "superProcessInstance":
			dst.SuperProcessInstance = wire.String(q.superProcessInstanceID)
		case "subProcessInstance":
			dst.SubProcessInstance = wire.String(q.subProcessInstanceID)
		case "superCaseInstance":
			dst.SuperCaseInstance = wire.String(q.superCaseInstanceID)
		case "subCaseInstance":
			dst.SubCaseInstance = wire.String(q.subCaseInstanceID)
		case "active":
			dst.Active = wire.True(q.suspension == domain.SuspensionActive)
		case "suspended":
			dst.Suspended = wire.True(q.suspension == domain.SuspensionSuspended)
		case "processInstanceIds":
			if ids := q.instanceIDs(); len(ids) > 0 {
				dst.ProcessInstanceIDs = ids
			}
		case "withIncident":
			dst.WithIncident = wire.True(q.withIncident)
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
		case "processDefinitionWithoutTenantId":
			dst.ProcessDefinitionWithoutTenantID = wire.True(q.processDefinitionWithoutTenantID)
		case "activityIdIn":
			dst.ActivityIDIn = q.activityIDs
		case "rootProcessInstances":
			dst.RootProcessInstances = wire.True(q.rootProcessInstances)
		case "leafProcessInstances":
			dst.LeafProcessInstances = wire.True(q.leafProcessInstances)
		case "variableNamesIgnoreCase":
			dst.VariableNamesIgnoreCase = wire.True(q.namesIgnoreCase)
		case "variableValuesIgnoreCase":
			dst.VariableValuesIgnoreCase = wire.True(q.valuesIgnoreCase)
		case "variables":
			dst.Variables, err = q.params(q.kind, domain.ScopeProcess)
		case "orQueries":
			dst.OrQueries = nil
		case "sorting":
			dst.Sorting = q.sortingList(ctx, processInstanceSortKeys, nil)
		default:
			return unmapped(q.kind, field)
		}
		return err
	})
	return req, err
}
