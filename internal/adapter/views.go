package adapter

import (
	"encoding/json"
	"time"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// Task wraps a task record.
func Task(r wire.TaskRecord) domain.Task { return NewTask(TaskBeanFromRecord(r)) }

// NewTask wraps a bean.
func NewTask(b TaskBean) domain.Task { return taskView{b} }

type taskView struct{ b TaskBean }

func (v taskView) ID() string                              { return v.b.ID }
func (v taskView) Name() string                            { return v.b.Name }
func (v taskView) Description() string                     { return v.b.Description }
func (v taskView) Assignee() string                        { return v.b.Assignee }
func (v taskView) Owner() string                           { return v.b.Owner }
func (v taskView) Priority() int                           { return v.b.Priority }
func (v taskView) CreateTime() time.Time                   { return v.b.Created }
func (v taskView) LastUpdated() time.Time                  { return v.b.LastUpdated }
func (v taskView) DueDate() time.Time                      { return v.b.Due }
func (v taskView) FollowUpDate() time.Time                 { return v.b.FollowUp }
func (v taskView) DelegationState() domain.DelegationState { return v.b.DelegationState }
func (v taskView) ExecutionID() string                     { return v.b.ExecutionID }
func (v taskView) ParentTaskID() string                    { return v.b.ParentTaskID }
func (v taskView) ProcessDefinitionID() string             { return v.b.ProcessDefinitionID }
func (v taskView) ProcessInstanceID() string               { return v.b.ProcessInstanceID }
func (v taskView) CaseDefinitionID() string                { return v.b.CaseDefinitionID }
func (v taskView) CaseInstanceID() string                  { return v.b.CaseInstanceID }
func (v taskView) CaseExecutionID() string                 { return v.b.CaseExecutionID }
func (v taskView) TaskDefinitionKey() string               { return v.b.TaskDefinitionKey }
func (v taskView) FormKey() string                         { return v.b.FormKey }
func (v taskView) TenantID() string                        { return v.b.TenantID }
func (v taskView) IsSuspended() bool                       { return v.b.Suspended }
func (v taskView) MarshalJSON() ([]byte, error)            { return json.Marshal(v.b) }

// ProcessInstance wraps a process instance record.
func ProcessInstance(r wire.ProcessInstanceRecord) domain.ProcessInstance {
	return processInstanceView{ProcessInstanceBeanFromRecord(r)}
}

type processInstanceView struct{ b ProcessInstanceBean }

func (v processInstanceView) ID() string                   { return v.b.ID }
func (v processInstanceView) ProcessInstanceID() string    { return v.b.ID }
func (v processInstanceView) ProcessDefinitionID() string  { return v.b.ProcessDefinitionID }
func (v processInstanceView) BusinessKey() string          { return v.b.BusinessKey }
func (v processInstanceView) CaseInstanceID() string       { return v.b.CaseInstanceID }
func (v processInstanceView) IsEnded() bool                { return v.b.Ended }
func (v processInstanceView) IsSuspended() bool            { return v.b.Suspended }
func (v processInstanceView) TenantID() string             { return v.b.TenantID }
func (v processInstanceView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }

// Execution wraps an execution record.
func Execution(r wire.ExecutionRecord) domain.Execution {
	return executionView{ExecutionBeanFromRecord(r)}
}

type executionView struct{ b ExecutionBean }

func (v executionView) ID() string                   { return v.b.ID }
func (v executionView) ProcessInstanceID() string    { return v.b.ProcessInstanceID }
func (v executionView) IsEnded() bool                { return v.b.Ended }
func (v executionView) TenantID() string             { return v.b.TenantID }
func (v executionView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }

// ExternalTask wraps an external task record.
func ExternalTask(r wire.ExternalTaskRecord) domain.ExternalTask {
	return externalTaskView{ExternalTaskBeanFromRecord(r)}
}

type externalTaskView struct{ b ExternalTaskBean }

func (v externalTaskView) ID() string                    { return v.b.ID }
func (v externalTaskView) TopicName() string             { return v.b.TopicName }
func (v externalTaskView) WorkerID() string              { return v.b.WorkerID }
func (v externalTaskView) LockExpirationTime() time.Time { return v.b.LockExpirationTime }
func (v externalTaskView) ErrorMessage() string          { return v.b.ErrorMessage }
func (v externalTaskView) Priority() int64               { return v.b.Priority }
func (v externalTaskView) ActivityID() string            { return v.b.ActivityID }
func (v externalTaskView) ActivityInstanceID() string    { return v.b.ActivityInstanceID }
func (v externalTaskView) ExecutionID() string           { return v.b.ExecutionID }
func (v externalTaskView) ProcessInstanceID() string     { return v.b.ProcessInstanceID }
func (v externalTaskView) ProcessDefinitionID() string   { return v.b.ProcessDefinitionID }
func (v externalTaskView) ProcessDefinitionKey() string  { return v.b.ProcessDefinitionKey }
func (v externalTaskView) BusinessKey() string           { return v.b.BusinessKey }
func (v externalTaskView) TenantID() string              { return v.b.TenantID }
func (v externalTaskView) IsSuspended() bool             { return v.b.Suspended }
func (v externalTaskView) MarshalJSON() ([]byte, error)  { return json.Marshal(v.b) }

func (v externalTaskView) ProcessDefinitionVersionTag() string {
	return v.b.ProcessDefinitionVersionTag
}

// Retries reports false when the engine has not assigned retries yet.
func (v externalTaskView) Retries() (int, bool) {
	if v.b.Retries == nil {
		return 0, false
	}
	return *v.b.Retries, true
}

// Incident wraps an incident record.
func Incident(r wire.IncidentRecord) domain.Incident {
	return incidentView{IncidentBeanFromRecord(r)}
}

type incidentView struct{ b IncidentBean }

func (v incidentView) ID() string                   { return v.b.ID }
func (v incidentView) IncidentTimestamp() time.Time { return v.b.IncidentTimestamp }
func (v incidentView) IncidentType() string         { return v.b.IncidentType }
func (v incidentView) IncidentMessage() string      { return v.b.IncidentMessage }
func (v incidentView) ExecutionID() string          { return v.b.ExecutionID }
func (v incidentView) ActivityID() string           { return v.b.ActivityID }
func (v incidentView) FailedActivityID() string     { return v.b.FailedActivityID }
func (v incidentView) ProcessInstanceID() string    { return v.b.ProcessInstanceID }
func (v incidentView) ProcessDefinitionID() string  { return v.b.ProcessDefinitionID }
func (v incidentView) CauseIncidentID() string      { return v.b.CauseIncidentID }
func (v incidentView) RootCauseIncidentID() string  { return v.b.RootCauseIncidentID }
func (v incidentView) Configuration() string        { return v.b.Configuration }
func (v incidentView) JobDefinitionID() string      { return v.b.JobDefinitionID }
func (v incidentView) Annotation() string           { return v.b.Annotation }
func (v incidentView) TenantID() string             { return v.b.TenantID }
func (v incidentView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }

// EventSubscription wraps an event subscription record.
func EventSubscription(r wire.EventSubscriptionRecord) domain.EventSubscription {
	return eventSubscriptionView{EventSubscriptionBeanFromRecord(r)}
}

type eventSubscriptionView struct{ b EventSubscriptionBean }

func (v eventSubscriptionView) ID() string                   { return v.b.ID }
func (v eventSubscriptionView) EventType() string            { return v.b.EventType }
func (v eventSubscriptionView) EventName() string            { return v.b.EventName }
func (v eventSubscriptionView) ExecutionID() string          { return v.b.ExecutionID }
func (v eventSubscriptionView) ProcessInstanceID() string    { return v.b.ProcessInstanceID }
func (v eventSubscriptionView) ActivityID() string           { return v.b.ActivityID }
func (v eventSubscriptionView) TenantID() string             { return v.b.TenantID }
func (v eventSubscriptionView) Created() time.Time           { return v.b.Created }
func (v eventSubscriptionView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }

// Deployment wraps a deployment record.
func Deployment(r wire.DeploymentRecord) domain.Deployment {
	return deploymentView{DeploymentBeanFromRecord(r)}
}

type deploymentView struct{ b DeploymentBean }

func (v deploymentView) ID() string                   { return v.b.ID }
func (v deploymentView) Name() string                 { return v.b.Name }
func (v deploymentView) Source() string               { return v.b.Source }
func (v deploymentView) DeploymentTime() time.Time    { return v.b.DeploymentTime }
func (v deploymentView) TenantID() string             { return v.b.TenantID }
func (v deploymentView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }

// ProcessDefinition wraps a process definition record.
func ProcessDefinition(r wire.ProcessDefinitionRecord) domain.ProcessDefinition {
	return processDefinitionView{ProcessDefinitionBeanFromRecord(r)}
}

type processDefinitionView struct{ b ProcessDefinitionBean }

func (v processDefinitionView) ID() string                   { return v.b.ID }
func (v processDefinitionView) Key() string                  { return v.b.Key }
func (v processDefinitionView) Category() string             { return v.b.Category }
func (v processDefinitionView) Description() string          { return v.b.Description }
func (v processDefinitionView) Name() string                 { return v.b.Name }
func (v processDefinitionView) Version() int                 { return v.b.Version }
func (v processDefinitionView) ResourceName() string         { return v.b.ResourceName }
func (v processDefinitionView) DeploymentID() string         { return v.b.DeploymentID }
func (v processDefinitionView) DiagramResourceName() string  { return v.b.DiagramResourceName }
func (v processDefinitionView) IsSuspended() bool            { return v.b.Suspended }
func (v processDefinitionView) TenantID() string             { return v.b.TenantID }
func (v processDefinitionView) VersionTag() string           { return v.b.VersionTag }
func (v processDefinitionView) IsStartableInTasklist() bool  { return v.b.StartableInTasklist }
func (v processDefinitionView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }

func (v processDefinitionView) HistoryTimeToLive() (int, bool) {
	if v.b.HistoryTimeToLive == nil {
		return 0, false
	}
	return *v.b.HistoryTimeToLive, true
}

// HistoricProcessInstance wraps a historic process instance record.
func HistoricProcessInstance(r wire.HistoricProcessInstanceRecord) domain.HistoricProcessInstance {
	return historicProcessInstanceView{HistoricProcessInstanceBeanFromRecord(r)}
}

type historicProcessInstanceView struct{ b HistoricProcessInstanceBean }

func (v historicProcessInstanceView) ID() string                    { return v.b.ID }
func (v historicProcessInstanceView) BusinessKey() string           { return v.b.BusinessKey }
func (v historicProcessInstanceView) ProcessDefinitionID() string   { return v.b.ProcessDefinitionID }
func (v historicProcessInstanceView) ProcessDefinitionKey() string  { return v.b.ProcessDefinitionKey }
func (v historicProcessInstanceView) ProcessDefinitionName() string { return v.b.ProcessDefinitionName }
func (v historicProcessInstanceView) ProcessDefinitionVersion() int {
	return v.b.ProcessDefinitionVersion
}
func (v historicProcessInstanceView) StartTime() time.Time          { return v.b.StartTime }
func (v historicProcessInstanceView) EndTime() time.Time            { return v.b.EndTime }
func (v historicProcessInstanceView) RemovalTime() time.Time        { return v.b.RemovalTime }
func (v historicProcessInstanceView) DurationInMillis() int64       { return v.b.DurationInMillis }
func (v historicProcessInstanceView) StartUserID() string           { return v.b.StartUserID }
func (v historicProcessInstanceView) StartActivityID() string       { return v.b.StartActivityID }
func (v historicProcessInstanceView) DeleteReason() string          { return v.b.DeleteReason }
func (v historicProcessInstanceView) RootProcessInstanceID() string { return v.b.RootProcessInstanceID }
func (v historicProcessInstanceView) SuperProcessInstanceID() string {
	return v.b.SuperProcessInstanceID
}
func (v historicProcessInstanceView) SuperCaseInstanceID() string  { return v.b.SuperCaseInstanceID }
func (v historicProcessInstanceView) CaseInstanceID() string       { return v.b.CaseInstanceID }
func (v historicProcessInstanceView) TenantID() string             { return v.b.TenantID }
func (v historicProcessInstanceView) State() domain.HistoricState  { return v.b.State }
func (v historicProcessInstanceView) MarshalJSON() ([]byte, error) { return json.Marshal(v.b) }
