// Package adapter turns engine records into read-only domain entities.
//
// Each kind has a Bean holding the converted record (dates parsed, enums
// translated) and an unexported view exposing it through the domain
// interface. Views marshal to JSON as their bean.
package adapter

import (
	"time"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

type TaskBean struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name,omitempty"`
	Description         string                 `json:"description,omitempty"`
	Assignee            string                 `json:"assignee,omitempty"`
	Owner               string                 `json:"owner,omitempty"`
	Priority            int                    `json:"priority"`
	Created             time.Time              `json:"created,omitzero"`
	LastUpdated         time.Time              `json:"lastUpdated,omitzero"`
	Due                 time.Time              `json:"due,omitzero"`
	FollowUp            time.Time              `json:"followUp,omitzero"`
	DelegationState     domain.DelegationState `json:"delegationState,omitempty"`
	ExecutionID         string                 `json:"executionId,omitempty"`
	ParentTaskID        string                 `json:"parentTaskId,omitempty"`
	ProcessDefinitionID string                 `json:"processDefinitionId,omitempty"`
	ProcessInstanceID   string                 `json:"processInstanceId,omitempty"`
	CaseDefinitionID    string                 `json:"caseDefinitionId,omitempty"`
	CaseInstanceID      string                 `json:"caseInstanceId,omitempty"`
	CaseExecutionID     string                 `json:"caseExecutionId,omitempty"`
	TaskDefinitionKey   string                 `json:"taskDefinitionKey,omitempty"`
	FormKey             string                 `json:"formKey,omitempty"`
	TenantID            string                 `json:"tenantId,omitempty"`
	Suspended           bool                   `json:"suspended"`
}

func TaskBeanFromRecord(r wire.TaskRecord) TaskBean {
	return TaskBean{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		Assignee:            r.Assignee,
		Owner:               r.Owner,
		Priority:            r.Priority,
		Created:             r.Created.Std(),
		LastUpdated:         r.LastUpdated.Std(),
		Due:                 r.Due.Std(),
		FollowUp:            r.FollowUp.Std(),
		DelegationState:     delegationState(r.DelegationState),
		ExecutionID:         r.ExecutionID,
		ParentTaskID:        r.ParentTaskID,
		ProcessDefinitionID: r.ProcessDefinitionID,
		ProcessInstanceID:   r.ProcessInstanceID,
		CaseDefinitionID:    r.CaseDefinitionID,
		CaseInstanceID:      r.CaseInstanceID,
		CaseExecutionID:     r.CaseExecutionID,
		TaskDefinitionKey:   r.TaskDefinitionKey,
		FormKey:             r.FormKey,
		TenantID:            r.TenantID,
		Suspended:           r.Suspended,
	}
}

// delegationState drops values the engine API does not define.
func delegationState(s string) domain.DelegationState {
	if d := domain.DelegationState(s); d.Valid() {
		return d
	}
	return ""
}

type ProcessInstanceBean struct {
	ID                  string `json:"id"`
	ProcessDefinitionID string `json:"processDefinitionId,omitempty"`
	BusinessKey         string `json:"businessKey,omitempty"`
	CaseInstanceID      string `json:"caseInstanceId,omitempty"`
	Ended               bool   `json:"ended"`
	Suspended           bool   `json:"suspended"`
	TenantID            string `json:"tenantId,omitempty"`
}

func ProcessInstanceBeanFromRecord(r wire.ProcessInstanceRecord) ProcessInstanceBean {
	return ProcessInstanceBean{
		ID:                  r.ID,
		ProcessDefinitionID: r.DefinitionID,
		BusinessKey:         r.BusinessKey,
		CaseInstanceID:      r.CaseInstanceID,
		Ended:               r.Ended,
		Suspended:           r.Suspended,
		TenantID:            r.TenantID,
	}
}

type ExecutionBean struct {
	ID                string `json:"id"`
	ProcessInstanceID string `json:"processInstanceId,omitempty"`
	Ended             bool   `json:"ended"`
	TenantID          string `json:"tenantId,omitempty"`
}

func ExecutionBeanFromRecord(r wire.ExecutionRecord) ExecutionBean {
	return ExecutionBean{
		ID:                r.ID,
		ProcessInstanceID: r.ProcessInstanceID,
		Ended:             r.Ended,
		TenantID:          r.TenantID,
	}
}

type ExternalTaskBean struct {
	ID                          string    `json:"id"`
	TopicName                   string    `json:"topicName,omitempty"`
	WorkerID                    string    `json:"workerId,omitempty"`
	LockExpirationTime          time.Time `json:"lockExpirationTime,omitzero"`
	Retries                     *int      `json:"retries,omitempty"`
	ErrorMessage                string    `json:"errorMessage,omitempty"`
	Priority                    int64     `json:"priority"`
	ActivityID                  string    `json:"activityId,omitempty"`
	ActivityInstanceID          string    `json:"activityInstanceId,omitempty"`
	ExecutionID                 string    `json:"executionId,omitempty"`
	ProcessInstanceID           string    `json:"processInstanceId,omitempty"`
	ProcessDefinitionID         string    `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey        string    `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionVersionTag string    `json:"processDefinitionVersionTag,omitempty"`
	BusinessKey                 string    `json:"businessKey,omitempty"`
	TenantID                    string    `json:"tenantId,omitempty"`
	Suspended                   bool      `json:"suspended"`
}

func ExternalTaskBeanFromRecord(r wire.ExternalTaskRecord) ExternalTaskBean {
	b := ExternalTaskBean{
		ID:                          r.ID,
		TopicName:                   r.TopicName,
		WorkerID:                    r.WorkerID,
		LockExpirationTime:          r.LockExpirationTime.Std(),
		ErrorMessage:                r.ErrorMessage,
		Priority:                    r.Priority,
		ActivityID:                  r.ActivityID,
		ActivityInstanceID:          r.ActivityInstanceID,
		ExecutionID:                 r.ExecutionID,
		ProcessInstanceID:           r.ProcessInstanceID,
		ProcessDefinitionID:         r.ProcessDefinitionID,
		ProcessDefinitionKey:        r.ProcessDefinitionKey,
		ProcessDefinitionVersionTag: r.ProcessDefinitionVersionTag,
		BusinessKey:                 r.BusinessKey,
		TenantID:                    r.TenantID,
		Suspended:                   r.Suspended,
	}
	if r.Retries != nil {
		retries := *r.Retries
		b.Retries = &retries
	}
	return b
}

type IncidentBean struct {
	ID                  string    `json:"id"`
	IncidentTimestamp   time.Time `json:"incidentTimestamp,omitzero"`
	IncidentType        string    `json:"incidentType,omitempty"`
	IncidentMessage     string    `json:"incidentMessage,omitempty"`
	ExecutionID         string    `json:"executionId,omitempty"`
	ActivityID          string    `json:"activityId,omitempty"`
	FailedActivityID    string    `json:"failedActivityId,omitempty"`
	ProcessInstanceID   string    `json:"processInstanceId,omitempty"`
	ProcessDefinitionID string    `json:"processDefinitionId,omitempty"`
	CauseIncidentID     string    `json:"causeIncidentId,omitempty"`
	RootCauseIncidentID string    `json:"rootCauseIncidentId,omitempty"`
	Configuration       string    `json:"configuration,omitempty"`
	JobDefinitionID     string    `json:"jobDefinitionId,omitempty"`
	Annotation          string    `json:"annotation,omitempty"`
	TenantID            string    `json:"tenantId,omitempty"`
}

func IncidentBeanFromRecord(r wire.IncidentRecord) IncidentBean {
	return IncidentBean{
		ID:                  r.ID,
		IncidentTimestamp:   r.IncidentTimestamp.Std(),
		IncidentType:        r.IncidentType,
		IncidentMessage:     r.IncidentMessage,
		ExecutionID:         r.ExecutionID,
		ActivityID:          r.ActivityID,
		FailedActivityID:    r.FailedActivityID,
		ProcessInstanceID:   r.ProcessInstanceID,
		ProcessDefinitionID: r.ProcessDefinitionID,
		CauseIncidentID:     r.CauseIncidentID,
		RootCauseIncidentID: r.RootCauseIncidentID,
		Configuration:       r.Configuration,
		JobDefinitionID:     r.JobDefinitionID,
		Annotation:          r.Annotation,
		TenantID:            r.TenantID,
	}
}

type EventSubscriptionBean struct {
	ID                string    `json:"id"`
	EventType         string    `json:"eventType,omitempty"`
	EventName         string    `json:"eventName,omitempty"`
	ExecutionID       string    `json:"executionId,omitempty"`
	ProcessInstanceID string    `json:"processInstanceId,omitempty"`
	ActivityID        string    `json:"activityId,omitempty"`
	TenantID          string    `json:"tenantId,omitempty"`
	Created           time.Time `json:"created,omitzero"`
}

func EventSubscriptionBeanFromRecord(r wire.EventSubscriptionRecord) EventSubscriptionBean {
	return EventSubscriptionBean{
		ID:                r.ID,
		EventType:         r.EventType,
		EventName:         r.EventName,
		ExecutionID:       r.ExecutionID,
		ProcessInstanceID: r.ProcessInstanceID,
		ActivityID:        r.ActivityID,
		TenantID:          r.TenantID,
		Created:           r.CreatedDate.Std(),
	}
}

type DeploymentBean struct {
	ID             string    `json:"id"`
	Name           string    `json:"name,omitempty"`
	Source         string    `json:"source,omitempty"`
	DeploymentTime time.Time `json:"deploymentTime,omitzero"`
	TenantID       string    `json:"tenantId,omitempty"`
}

func DeploymentBeanFromRecord(r wire.DeploymentRecord) DeploymentBean {
	return DeploymentBean{
		ID:             r.ID,
		Name:           r.Name,
		Source:         r.Source,
		DeploymentTime: r.DeploymentTime.Std(),
		TenantID:       r.TenantID,
	}
}

type ProcessDefinitionBean struct {
	ID                  string `json:"id"`
	Key                 string `json:"key"`
	Category            string `json:"category,omitempty"`
	Description         string `json:"description,omitempty"`
	Name                string `json:"name,omitempty"`
	Version             int    `json:"version"`
	ResourceName        string `json:"resource,omitempty"`
	DeploymentID        string `json:"deploymentId,omitempty"`
	DiagramResourceName string `json:"diagram,omitempty"`
	Suspended           bool   `json:"suspended"`
	TenantID            string `json:"tenantId,omitempty"`
	VersionTag          string `json:"versionTag,omitempty"`
	HistoryTimeToLive   *int   `json:"historyTimeToLive,omitempty"`
	StartableInTasklist bool   `json:"startableInTasklist"`
}

func ProcessDefinitionBeanFromRecord(r wire.ProcessDefinitionRecord) ProcessDefinitionBean {
	b := ProcessDefinitionBean{
		ID:                  r.ID,
		Key:                 r.Key,
		Category:            r.Category,
		Description:         r.Description,
		Name:                r.Name,
		Version:             r.Version,
		ResourceName:        r.Resource,
		DeploymentID:        r.DeploymentID,
		DiagramResourceName: r.Diagram,
		Suspended:           r.Suspended,
		TenantID:            r.TenantID,
		VersionTag:          r.VersionTag,
		StartableInTasklist: r.StartableInTasklist,
	}
	if r.HistoryTimeToLive != nil {
		ttl := *r.HistoryTimeToLive
		b.HistoryTimeToLive = &ttl
	}
	return b
}

type HistoricProcessInstanceBean struct {
	ID                       string               `json:"id"`
	BusinessKey              string               `json:"businessKey,omitempty"`
	ProcessDefinitionID      string               `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey     string               `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionName    string               `json:"processDefinitionName,omitempty"`
	ProcessDefinitionVersion int                  `json:"processDefinitionVersion"`
	StartTime                time.Time            `json:"startTime,omitzero"`
	EndTime                  time.Time            `json:"endTime,omitzero"`
	RemovalTime              time.Time            `json:"removalTime,omitzero"`
	DurationInMillis         int64                `json:"durationInMillis"`
	StartUserID              string               `json:"startUserId,omitempty"`
	StartActivityID          string               `json:"startActivityId,omitempty"`
	DeleteReason             string               `json:"deleteReason,omitempty"`
	RootProcessInstanceID    string               `json:"rootProcessInstanceId,omitempty"`
	SuperProcessInstanceID   string               `json:"superProcessInstanceId,omitempty"`
	SuperCaseInstanceID      string               `json:"superCaseInstanceId,omitempty"`
	CaseInstanceID           string               `json:"caseInstanceId,omitempty"`
	TenantID                 string               `json:"tenantId,omitempty"`
	State                    domain.HistoricState `json:"state,omitempty"`
}

func HistoricProcessInstanceBeanFromRecord(r wire.HistoricProcessInstanceRecord) HistoricProcessInstanceBean {
	b := HistoricProcessInstanceBean{
		ID:                       r.ID,
		BusinessKey:              r.BusinessKey,
		ProcessDefinitionID:      r.ProcessDefinitionID,
		ProcessDefinitionKey:     r.ProcessDefinitionKey,
		ProcessDefinitionName:    r.ProcessDefinitionName,
		ProcessDefinitionVersion: r.ProcessDefinitionVersion,
		StartTime:                r.StartTime.Std(),
		EndTime:                  r.EndTime.Std(),
		RemovalTime:              r.RemovalTime.Std(),
		DurationInMillis:         r.DurationInMillis,
		StartUserID:              r.StartUserID,
		StartActivityID:          r.StartActivityID,
		DeleteReason:             r.DeleteReason,
		RootProcessInstanceID:    r.RootProcessInstanceID,
		SuperProcessInstanceID:   r.SuperProcessInstanceID,
		SuperCaseInstanceID:      r.SuperCaseInstanceID,
		CaseInstanceID:           r.CaseInstanceID,
		TenantID:                 r.TenantID,
	}
	if s := domain.HistoricState(r.State); s.Valid() {
		b.State = s
	}
	return b
}
