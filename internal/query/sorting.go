package query

import (
	"context"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// sortKeys maps ordering properties to the engine's sortBy values.
type sortKeys map[string]string

func (b *base) dropSortKey(ctx context.Context, property string) {
	b.logger.WarnContext(ctx, "query property is not supported for sorting",
		"kind", b.kind, "property", property)
	b.observer.SortKeyDropped(ctx, b.kind, property)
}

// sortingList projects every ordering entry onto a "sorting" list. Entries
// without a mapped key are logged and left out.
func (b *base) sortingList(ctx context.Context, keys sortKeys, variableKeys map[domain.Relation]string) []wire.Sorting {
	var out []wire.Sorting
	for _, o := range b.orderings {
		s := wire.Sorting{SortOrder: string(o.Direction)}
		if o.Relation != domain.RelationNone {
			by, ok := variableKeys[o.Relation]
			if !ok {
				b.dropSortKey(ctx, o.Property)
				continue
			}
			s.SortBy = by
			s.Parameters = &wire.SortingParameters{Variable: o.Property, Type: o.Type.WireName()}
		} else {
			by, ok := keys[o.Property]
			if !ok {
				b.dropSortKey(ctx, o.Property)
				continue
			}
			s.SortBy = by
		}
		out = append(out, s)
	}
	return out
}

// singleSort projects the first ordering entry onto sortBy/sortOrder
// parameters. Endpoints with query-string parameters sort by one property only.
func (b *base) singleSort(ctx context.Context, keys sortKeys) (sortBy, sortOrder *string) {
	if len(b.orderings) == 0 {
		return nil, nil
	}
	if len(b.orderings) > 1 {
		b.logger.WarnContext(ctx, "sorting with more than one property not supported, ignoring all but first",
			"kind", b.kind, "ignored", len(b.orderings)-1)
	}
	first := b.orderings[0]
	by, ok := keys[first.Property]
	if !ok || first.Relation != domain.RelationNone {
		b.dropSortKey(ctx, first.Property)
		return nil, nil
	}
	return &by, wire.String(string(first.Direction))
}

var processInstanceSortKeys = sortKeys{
	"instanceId":    "instanceId",
	"definitionId":  "definitionId",
	"definitionKey": "definitionKey",
	"tenantId":      "tenantId",
	"businessKey":   "businessKey",
}

var executionSortKeys = sortKeys{
	"instanceId":    "instanceId",
	"definitionId":  "definitionId",
	"definitionKey": "definitionKey",
	"tenantId":      "tenantId",
}

var historicProcessInstanceSortKeys = sortKeys{
	"instanceId":        "instanceId",
	"definitionId":      "definitionId",
	"definitionKey":     "definitionKey",
	"definitionName":    "definitionName",
	"definitionVersion": "definitionVersion",
	"tenantId":          "tenantId",
	"businessKey":       "businessKey",
	"startTime":         "startTime",
	"endTime":           "endTime",
	"duration":          "duration",
}

var taskSortKeys = sortKeys{
	"id":                  "id",
	"name":                "name",
	"nameCaseInsensitive": "nameCaseInsensitive",
	"description":         "description",
	"priority":            "priority",
	"assignee":            "assignee",
	"created":             "created",
	"lastUpdated":         "lastUpdated",
	"instanceId":          "instanceId",
	"caseInstanceId":      "caseInstanceId",
	"executionId":         "executionId",
	"caseExecutionId":     "caseExecutionId",
	"dueDate":             "dueDate",
	"followUpDate":        "followUpDate",
	"tenantId":            "tenantId",
}

var taskVariableSortKeys = map[domain.Relation]string{
	domain.RelationTask:            "taskVariable",
	domain.RelationProcessInstance: "processVariable",
	domain.RelationExecution:       "executionVariable",
	domain.RelationCaseInstance:    "caseInstanceVariable",
	domain.RelationCaseExecution:   "caseExecutionVariable",
}

var externalTaskSortKeys = sortKeys{
	"id":                   "id",
	"lockExpirationTime":   "lockExpirationTime",
	"processInstanceId":    "processInstanceId",
	"processDefinitionId":  "processDefinitionId",
	"processDefinitionKey": "processDefinitionKey",
	"taskPriority":         "taskPriority",
	"tenantId":             "tenantId",
}

var incidentSortKeys = sortKeys{
	"incidentId":          "incidentId",
	"incidentMessage":     "incidentMessage",
	"incidentTimestamp":   "incidentTimestamp",
	"incidentType":        "incidentType",
	"executionId":         "executionId",
	"activityId":          "activityId",
	"processInstanceId":   "processInstanceId",
	"processDefinitionId": "processDefinitionId",
	"causeIncidentId":     "causeIncidentId",
	"rootCauseIncidentId": "rootCauseIncidentId",
	"configuration":       "configuration",
	"tenantId":            "tenantId",
}

var eventSubscriptionSortKeys = sortKeys{
	"created":  "created",
	"tenantId": "tenantId",
}

var deploymentSortKeys = sortKeys{
	"id":             "id",
	"name":           "name",
	"deploymentTime": "deploymentTime",
	"tenantId":       "tenantId",
}

var processDefinitionSortKeys = sortKeys{
	"id":           "id",
	"key":          "key",
	"category":     "category",
	"name":         "name",
	"version":      "version",
	"deploymentId": "deploymentId",
	"deployTime":   "deployTime",
	"tenantId":     "tenantId",
	"versionTag":   "versionTag",
}
