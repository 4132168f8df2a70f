package wire

// TaskRecord is one element of the GET/POST /task result.
type TaskRecord struct {
	ID                  string `json:"id"`
	Name                string `json:"name,omitempty"`
	Assignee            string `json:"assignee,omitempty"`
	Owner               string `json:"owner,omitempty"`
	Created             *Time  `json:"created,omitempty"`
	LastUpdated         *Time  `json:"lastUpdated,omitempty"`
	Due                 *Time  `json:"due,omitempty"`
	FollowUp            *Time  `json:"followUp,omitempty"`
	DelegationState     string `json:"delegationState,omitempty"`
	Description         string `json:"description,omitempty"`
	ExecutionID         string `json:"executionId,omitempty"`
	ParentTaskID        string `json:"parentTaskId,omitempty"`
	Priority            int    `json:"priority"`
	ProcessDefinitionID string `json:"processDefinitionId,omitempty"`
	ProcessInstanceID   string `json:"processInstanceId,omitempty"`
	CaseExecutionID     string `json:"caseExecutionId,omitempty"`
	CaseDefinitionID    string `json:"caseDefinitionId,omitempty"`
	CaseInstanceID      string `json:"caseInstanceId,omitempty"`
	TaskDefinitionKey   string `json:"taskDefinitionKey,omitempty"`
	Suspended           bool   `json:"suspended"`
	FormKey             string `json:"formKey,omitempty"`
	TenantID            string `json:"tenantId,omitempty"`
}

// ProcessInstanceRecord is one element of the /process-instance result.
type ProcessInstanceRecord struct {
	ID             string `json:"id"`
	DefinitionID   string `json:"definitionId,omitempty"`
	BusinessKey    string `json:"businessKey,omitempty"`
	CaseInstanceID string `json:"caseInstanceId,omitempty"`
	Ended          bool   `json:"ended"`
	Suspended      bool   `json:"suspended"`
	TenantID       string `json:"tenantId,omitempty"`
}

// ExecutionRecord is one element of the /execution result.
type ExecutionRecord struct {
	ID                string `json:"id"`
	ProcessInstanceID string `json:"processInstanceId,omitempty"`
	Ended             bool   `json:"ended"`
	TenantID          string `json:"tenantId,omitempty"`
}

// ExternalTaskRecord is one element of the /external-task result.
type ExternalTaskRecord struct {
	ID                          string `json:"id"`
	ActivityID                  string `json:"activityId,omitempty"`
	ActivityInstanceID          string `json:"activityInstanceId,omitempty"`
	ErrorMessage                string `json:"errorMessage,omitempty"`
	ExecutionID                 string `json:"executionId,omitempty"`
	LockExpirationTime          *Time  `json:"lockExpirationTime,omitempty"`
	ProcessDefinitionID         string `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey        string `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionVersionTag string `json:"processDefinitionVersionTag,omitempty"`
	ProcessInstanceID           string `json:"processInstanceId,omitempty"`
	Retries                     *int   `json:"retries,omitempty"`
	Suspended                   bool   `json:"suspended"`
	WorkerID                    string `json:"workerId,omitempty"`
	TopicName                   string `json:"topicName,omitempty"`
	TenantID                    string `json:"tenantId,omitempty"`
	Priority                    int64  `json:"priority"`
	BusinessKey                 string `json:"businessKey,omitempty"`
}

// IncidentRecord is one element of the /incident result.
type IncidentRecord struct {
	ID                  string `json:"id"`
	ProcessDefinitionID string `json:"processDefinitionId,omitempty"`
	ProcessInstanceID   string `json:"processInstanceId,omitempty"`
	ExecutionID         string `json:"executionId,omitempty"`
	IncidentTimestamp   *Time  `json:"incidentTimestamp,omitempty"`
	IncidentType        string `json:"incidentType,omitempty"`
	ActivityID          string `json:"activityId,omitempty"`
	FailedActivityID    string `json:"failedActivityId,omitempty"`
	CauseIncidentID     string `json:"causeIncidentId,omitempty"`
	RootCauseIncidentID string `json:"rootCauseIncidentId,omitempty"`
	Configuration       string `json:"configuration,omitempty"`
	TenantID            string `json:"tenantId,omitempty"`
	IncidentMessage     string `json:"incidentMessage,omitempty"`
	JobDefinitionID     string `json:"jobDefinitionId,omitempty"`
	Annotation          string `json:"annotation,omitempty"`
}

// EventSubscriptionRecord is one element of the /event-subscription result.
type EventSubscriptionRecord struct {
	ID                string `json:"id"`
	EventType         string `json:"eventType,omitempty"`
	EventName         string `json:"eventName,omitempty"`
	ExecutionID       string `json:"executionId,omitempty"`
	ProcessInstanceID string `json:"processInstanceId,omitempty"`
	ActivityID        string `json:"activityId,omitempty"`
	CreatedDate       *Time  `json:"createdDate,omitempty"`
	TenantID          string `json:"tenantId,omitempty"`
}

// DeploymentRecord is one element of the /deployment result.
type DeploymentRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	Source         string `json:"source,omitempty"`
	DeploymentTime *Time  `json:"deploymentTime,omitempty"`
	TenantID       string `json:"tenantId,omitempty"`
}

// ProcessDefinitionRecord is one element of the /process-definition result.
type ProcessDefinitionRecord struct {
	ID                  string `json:"id"`
	Key                 string `json:"key,omitempty"`
	Category            string `json:"category,omitempty"`
	Description         string `json:"description,omitempty"`
	Name                string `json:"name,omitempty"`
	Version             int    `json:"version"`
	Resource            string `json:"resource,omitempty"`
	DeploymentID        string `json:"deploymentId,omitempty"`
	Diagram             string `json:"diagram,omitempty"`
	Suspended           bool   `json:"suspended"`
	TenantID            string `json:"tenantId,omitempty"`
	VersionTag          string `json:"versionTag,omitempty"`
	HistoryTimeToLive   *int   `json:"historyTimeToLive,omitempty"`
	StartableInTasklist bool   `json:"startableInTasklist"`
}

// HistoricProcessInstanceRecord is one element of the /history/process-instance result.
type HistoricProcessInstanceRecord struct {
	ID                       string `json:"id"`
	BusinessKey              string `json:"businessKey,omitempty"`
	ProcessDefinitionID      string `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey     string `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionName    string `json:"processDefinitionName,omitempty"`
	ProcessDefinitionVersion int    `json:"processDefinitionVersion"`
	StartTime                *Time  `json:"startTime,omitempty"`
	EndTime                  *Time  `json:"endTime,omitempty"`
	RemovalTime              *Time  `json:"removalTime,omitempty"`
	DurationInMillis         int64  `json:"durationInMillis"`
	StartUserID              string `json:"startUserId,omitempty"`
	StartActivityID          string `json:"startActivityId,omitempty"`
	DeleteReason             string `json:"deleteReason,omitempty"`
	RootProcessInstanceID    string `json:"rootProcessInstanceId,omitempty"`
	SuperProcessInstanceID   string `json:"superProcessInstanceId,omitempty"`
	SuperCaseInstanceID      string `json:"superCaseInstanceId,omitempty"`
	CaseInstanceID           string `json:"caseInstanceId,omitempty"`
	TenantID                 string `json:"tenantId,omitempty"`
	State                    string `json:"state,omitempty"`
}
