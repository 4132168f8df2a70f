package wire

// TaskQuery is the body of POST /task and POST /task/count.
type TaskQuery struct {
	TaskID                                   *string                  `json:"taskId,omitempty"`
	TaskIDIn                                 []string                 `json:"taskIdIn,omitempty"`
	ProcessInstanceID                        *string                  `json:"processInstanceId,omitempty"`
	ProcessInstanceIDIn                      []string                 `json:"processInstanceIdIn,omitempty"`
	ProcessInstanceBusinessKey               *string                  `json:"processInstanceBusinessKey,omitempty"`
	ProcessInstanceBusinessKeyExpression     *string                  `json:"processInstanceBusinessKeyExpression,omitempty"`
	ProcessInstanceBusinessKeyIn             []string                 `json:"processInstanceBusinessKeyIn,omitempty"`
	ProcessInstanceBusinessKeyLike           *string                  `json:"processInstanceBusinessKeyLike,omitempty"`
	ProcessInstanceBusinessKeyLikeExpression *string                  `json:"processInstanceBusinessKeyLikeExpression,omitempty"`
	ProcessDefinitionID                      *string                  `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey                     *string                  `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionKeyIn                   []string                 `json:"processDefinitionKeyIn,omitempty"`
	ProcessDefinitionName                    *string                  `json:"processDefinitionName,omitempty"`
	ProcessDefinitionNameLike                *string                  `json:"processDefinitionNameLike,omitempty"`
	ExecutionID                              *string                  `json:"executionId,omitempty"`
	CaseInstanceID                           *string                  `json:"caseInstanceId,omitempty"`
	CaseInstanceBusinessKey                  *string                  `json:"caseInstanceBusinessKey,omitempty"`
	CaseInstanceBusinessKeyLike              *string                  `json:"caseInstanceBusinessKeyLike,omitempty"`
	CaseDefinitionID                         *string                  `json:"caseDefinitionId,omitempty"`
	CaseDefinitionKey                        *string                  `json:"caseDefinitionKey,omitempty"`
	CaseDefinitionName                       *string                  `json:"caseDefinitionName,omitempty"`
	CaseDefinitionNameLike                   *string                  `json:"caseDefinitionNameLike,omitempty"`
	CaseExecutionID                          *string                  `json:"caseExecutionId,omitempty"`
	ActivityInstanceIDIn                     []string                 `json:"activityInstanceIdIn,omitempty"`
	TenantIDIn                               []string                 `json:"tenantIdIn,omitempty"`
	WithoutTenantID                          *bool                    `json:"withoutTenantId,omitempty"`
	Assignee                                 *string                  `json:"assignee,omitempty"`
	AssigneeExpression                       *string                  `json:"assigneeExpression,omitempty"`
	AssigneeLike                             *string                  `json:"assigneeLike,omitempty"`
	AssigneeLikeExpression                   *string                  `json:"assigneeLikeExpression,omitempty"`
	AssigneeIn                               []string                 `json:"assigneeIn,omitempty"`
	AssigneeNotIn                            []string                 `json:"assigneeNotIn,omitempty"`
	Owner                                    *string                  `json:"owner,omitempty"`
	OwnerExpression                          *string                  `json:"ownerExpression,omitempty"`
	CandidateGroup                           *string                  `json:"candidateGroup,omitempty"`
	CandidateGroupExpression                 *string                  `json:"candidateGroupExpression,omitempty"`
	CandidateUser                            *string                  `json:"candidateUser,omitempty"`
	CandidateUserExpression                  *string                  `json:"candidateUserExpression,omitempty"`
	IncludeAssignedTasks                     *bool                    `json:"includeAssignedTasks,omitempty"`
	InvolvedUser                             *string                  `json:"involvedUser,omitempty"`
	InvolvedUserExpression                   *string                  `json:"involvedUserExpression,omitempty"`
	Assigned                                 *bool                    `json:"assigned,omitempty"`
	Unassigned                               *bool                    `json:"unassigned,omitempty"`
	TaskDefinitionKey                        *string                  `json:"taskDefinitionKey,omitempty"`
	TaskDefinitionKeyIn                      []string                 `json:"taskDefinitionKeyIn,omitempty"`
	TaskDefinitionKeyLike                    *string                  `json:"taskDefinitionKeyLike,omitempty"`
	Name                                     *string                  `json:"name,omitempty"`
	NameNotEqual                             *string                  `json:"nameNotEqual,omitempty"`
	NameLike                                 *string                  `json:"nameLike,omitempty"`
	NameNotLike                              *string                  `json:"nameNotLike,omitempty"`
	Description                              *string                  `json:"description,omitempty"`
	DescriptionLike                          *string                  `json:"descriptionLike,omitempty"`
	Priority                                 *int                     `json:"priority,omitempty"`
	MaxPriority                              *int                     `json:"maxPriority,omitempty"`
	MinPriority                              *int                     `json:"minPriority,omitempty"`
	DueDate                                  *Time                    `json:"dueDate,omitempty"`
	DueDateExpression                        *string                  `json:"dueDateExpression,omitempty"`
	DueAfter                                 *Time                    `json:"dueAfter,omitempty"`
	DueAfterExpression                       *string                  `json:"dueAfterExpression,omitempty"`
	DueBefore                                *Time                    `json:"dueBefore,omitempty"`
	DueBeforeExpression                      *string                  `json:"dueBeforeExpression,omitempty"`
	WithoutDueDate                           *bool                    `json:"withoutDueDate,omitempty"`
	FollowUpDate                             *Time                    `json:"followUpDate,omitempty"`
	FollowUpDateExpression                   *string                  `json:"followUpDateExpression,omitempty"`
	FollowUpAfter                            *Time                    `json:"followUpAfter,omitempty"`
	FollowUpAfterExpression                  *string                  `json:"followUpAfterExpression,omitempty"`
	FollowUpBefore                           *Time                    `json:"followUpBefore,omitempty"`
	FollowUpBeforeExpression                 *string                  `json:"followUpBeforeExpression,omitempty"`
	FollowUpBeforeOrNotExistent              *Time                    `json:"followUpBeforeOrNotExistent,omitempty"`
	FollowUpBeforeOrNotExistentExpression    *string                  `json:"followUpBeforeOrNotExistentExpression,omitempty"`
	CreatedOn                                *Time                    `json:"createdOn,omitempty"`
	CreatedOnExpression                      *string                  `json:"createdOnExpression,omitempty"`
	CreatedAfter                             *Time                    `json:"createdAfter,omitempty"`
	CreatedAfterExpression                   *string                  `json:"createdAfterExpression,omitempty"`
	CreatedBefore                            *Time                    `json:"createdBefore,omitempty"`
	CreatedBeforeExpression                  *string                  `json:"createdBeforeExpression,omitempty"`
	UpdatedAfter                             *Time                    `json:"updatedAfter,omitempty"`
	UpdatedAfterExpression                   *string                  `json:"updatedAfterExpression,omitempty"`
	DelegationState                          *string                  `json:"delegationState,omitempty"`
	CandidateGroups                          []string                 `json:"candidateGroups,omitempty"`
	CandidateGroupsExpression                *string                  `json:"candidateGroupsExpression,omitempty"`
	WithCandidateGroups                      *bool                    `json:"withCandidateGroups,omitempty"`
	WithoutCandidateGroups                   *bool                    `json:"withoutCandidateGroups,omitempty"`
	WithCandidateUsers                       *bool                    `json:"withCandidateUsers,omitempty"`
	WithoutCandidateUsers                    *bool                    `json:"withoutCandidateUsers,omitempty"`
	Active                                   *bool                    `json:"active,omitempty"`
	Suspended                                *bool                    `json:"suspended,omitempty"`
	TaskVariables                            []VariableQueryParameter `json:"taskVariables,omitempty"`
	ProcessVariables                         []VariableQueryParameter `json:"processVariables,omitempty"`
	CaseInstanceVariables                    []VariableQueryParameter `json:"caseInstanceVariables,omitempty"`
	VariableNamesIgnoreCase                  *bool                    `json:"variableNamesIgnoreCase,omitempty"`
	VariableValuesIgnoreCase                 *bool                    `json:"variableValuesIgnoreCase,omitempty"`
	ParentTaskID                             *string                  `json:"parentTaskId,omitempty"`
	OrQueries                                []TaskQuery              `json:"orQueries,omitempty"`
	Sorting                                  []Sorting                `json:"sorting,omitempty"`
}

// ProcessInstanceQuery is the body of POST /process-instance and its count.
type ProcessInstanceQuery struct {
	DeploymentID                     *string                  `json:"deploymentId,omitempty"`
	ProcessDefinitionID              *string                  `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey             *string                  `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionKeyIn           []string                 `json:"processDefinitionKeyIn,omitempty"`
	ProcessDefinitionKeyNotIn        []string                 `json:"processDefinitionKeyNotIn,omitempty"`
	BusinessKey                      *string                  `json:"businessKey,omitempty"`
	BusinessKeyLike                  *string                  `json:"businessKeyLike,omitempty"`
	CaseInstanceID                   *string                  `json:"caseInstanceId,omitempty"`
	SuperProcessInstance             *string                  `json:"superProcessInstance,omitempty"`
	SubProcessInstance               *string                  `json:"subProcessInstance,omitempty"`
	SuperCaseInstance                *string                  `json:"superCaseInstance,omitempty"`
	SubCaseInstance                  *string                  `json:"subCaseInstance,omitempty"`
	Active                           *bool                    `json:"active,omitempty"`
	Suspended                        *bool                    `json:"suspended,omitempty"`
	ProcessInstanceIDs               []string                 `json:"processInstanceIds,omitempty"`
	WithIncident                     *bool                    `json:"withIncident,omitempty"`
	IncidentID                       *string                  `json:"incidentId,omitempty"`
	IncidentType                     *string                  `json:"incidentType,omitempty"`
	IncidentMessage                  *string                  `json:"incidentMessage,omitempty"`
	IncidentMessageLike              *string                  `json:"incidentMessageLike,omitempty"`
	TenantIDIn                       []string                 `json:"tenantIdIn,omitempty"`
	WithoutTenantID                  *bool                    `json:"withoutTenantId,omitempty"`
	ProcessDefinitionWithoutTenantID *bool                    `json:"processDefinitionWithoutTenantId,omitempty"`
	ActivityIDIn                     []string                 `json:"activityIdIn,omitempty"`
	RootProcessInstances             *bool                    `json:"rootProcessInstances,omitempty"`
	LeafProcessInstances             *bool                    `json:"leafProcessInstances,omitempty"`
	VariableNamesIgnoreCase          *bool                    `json:"variableNamesIgnoreCase,omitempty"`
	VariableValuesIgnoreCase         *bool                    `json:"variableValuesIgnoreCase,omitempty"`
	Variables                        []VariableQueryParameter `json:"variables,omitempty"`
	OrQueries                        []ProcessInstanceQuery   `json:"orQueries,omitempty"`
	Sorting                          []Sorting                `json:"sorting,omitempty"`
}

// ExecutionQuery is the body of POST /execution and its count.
type ExecutionQuery struct {
	BusinessKey                  *string                  `json:"businessKey,omitempty"`
	ProcessDefinitionID          *string                  `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey         *string                  `json:"processDefinitionKey,omitempty"`
	ProcessInstanceID            *string                  `json:"processInstanceId,omitempty"`
	ActivityID                   *string                  `json:"activityId,omitempty"`
	SignalEventSubscriptionName  *string                  `json:"signalEventSubscriptionName,omitempty"`
	MessageEventSubscriptionName *string                  `json:"messageEventSubscriptionName,omitempty"`
	Active                       *bool                    `json:"active,omitempty"`
	Suspended                    *bool                    `json:"suspended,omitempty"`
	IncidentID                   *string                  `json:"incidentId,omitempty"`
	IncidentType                 *string                  `json:"incidentType,omitempty"`
	IncidentMessage              *string                  `json:"incidentMessage,omitempty"`
	IncidentMessageLike          *string                  `json:"incidentMessageLike,omitempty"`
	TenantIDIn                   []string                 `json:"tenantIdIn,omitempty"`
	WithoutTenantID              *bool                    `json:"withoutTenantId,omitempty"`
	Variables                    []VariableQueryParameter `json:"variables,omitempty"`
	ProcessVariables             []VariableQueryParameter `json:"processVariables,omitempty"`
	VariableNamesIgnoreCase      *bool                    `json:"variableNamesIgnoreCase,omitempty"`
	VariableValuesIgnoreCase     *bool                    `json:"variableValuesIgnoreCase,omitempty"`
	Sorting                      []Sorting                `json:"sorting,omitempty"`
}

// ExternalTaskQuery is the body of POST /external-task and its count.
type ExternalTaskQuery struct {
	ExternalTaskID             *string   `json:"externalTaskId,omitempty"`
	ExternalTaskIDIn           []string  `json:"externalTaskIdIn,omitempty"`
	TopicName                  *string   `json:"topicName,omitempty"`
	WorkerID                   *string   `json:"workerId,omitempty"`
	Locked                     *bool     `json:"locked,omitempty"`
	NotLocked                  *bool     `json:"notLocked,omitempty"`
	WithRetriesLeft            *bool     `json:"withRetriesLeft,omitempty"`
	NoRetriesLeft              *bool     `json:"noRetriesLeft,omitempty"`
	LockExpirationAfter        *Time     `json:"lockExpirationAfter,omitempty"`
	LockExpirationBefore       *Time     `json:"lockExpirationBefore,omitempty"`
	ActivityID                 *string   `json:"activityId,omitempty"`
	ActivityIDIn               []string  `json:"activityIdIn,omitempty"`
	ExecutionID                *string   `json:"executionId,omitempty"`
	ProcessInstanceID          *string   `json:"processInstanceId,omitempty"`
	ProcessInstanceIDIn        []string  `json:"processInstanceIdIn,omitempty"`
	ProcessDefinitionID        *string   `json:"processDefinitionId,omitempty"`
	TenantIDIn                 []string  `json:"tenantIdIn,omitempty"`
	Active                     *bool     `json:"active,omitempty"`
	Suspended                  *bool     `json:"suspended,omitempty"`
	PriorityHigherThanOrEquals *int64    `json:"priorityHigherThanOrEquals,omitempty"`
	PriorityLowerThanOrEquals  *int64    `json:"priorityLowerThanOrEquals,omitempty"`
	Sorting                    []Sorting `json:"sorting,omitempty"`
}

// HistoricProcessInstanceQuery is the body of POST /history/process-instance and its count.
type HistoricProcessInstanceQuery struct {
	ProcessInstanceID              *string                        `json:"processInstanceId,omitempty"`
	ProcessInstanceIDs             []string                       `json:"processInstanceIds,omitempty"`
	ProcessDefinitionID            *string                        `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey           *string                        `json:"processDefinitionKey,omitempty"`
	ProcessDefinitionKeyIn         []string                       `json:"processDefinitionKeyIn,omitempty"`
	ProcessDefinitionName          *string                        `json:"processDefinitionName,omitempty"`
	ProcessDefinitionNameLike      *string                        `json:"processDefinitionNameLike,omitempty"`
	ProcessDefinitionKeyNotIn      []string                       `json:"processDefinitionKeyNotIn,omitempty"`
	ProcessInstanceBusinessKey     *string                        `json:"processInstanceBusinessKey,omitempty"`
	ProcessInstanceBusinessKeyIn   []string                       `json:"processInstanceBusinessKeyIn,omitempty"`
	ProcessInstanceBusinessKeyLike *string                        `json:"processInstanceBusinessKeyLike,omitempty"`
	RootProcessInstances           *bool                          `json:"rootProcessInstances,omitempty"`
	Finished                       *bool                          `json:"finished,omitempty"`
	Unfinished                     *bool                          `json:"unfinished,omitempty"`
	WithIncidents                  *bool                          `json:"withIncidents,omitempty"`
	WithRootIncidents              *bool                          `json:"withRootIncidents,omitempty"`
	IncidentType                   *string                        `json:"incidentType,omitempty"`
	IncidentStatus                 *string                        `json:"incidentStatus,omitempty"`
	IncidentMessage                *string                        `json:"incidentMessage,omitempty"`
	IncidentMessageLike            *string                        `json:"incidentMessageLike,omitempty"`
	StartedBefore                  *Time                          `json:"startedBefore,omitempty"`
	StartedAfter                   *Time                          `json:"startedAfter,omitempty"`
	FinishedBefore                 *Time                          `json:"finishedBefore,omitempty"`
	FinishedAfter                  *Time                          `json:"finishedAfter,omitempty"`
	ExecutedActivityAfter          *Time                          `json:"executedActivityAfter,omitempty"`
	ExecutedActivityBefore         *Time                          `json:"executedActivityBefore,omitempty"`
	ExecutedJobAfter               *Time                          `json:"executedJobAfter,omitempty"`
	ExecutedJobBefore              *Time                          `json:"executedJobBefore,omitempty"`
	StartedBy                      *string                        `json:"startedBy,omitempty"`
	SuperProcessInstanceID         *string                        `json:"superProcessInstanceId,omitempty"`
	SubProcessInstanceID           *string                        `json:"subProcessInstanceId,omitempty"`
	SuperCaseInstanceID            *string                        `json:"superCaseInstanceId,omitempty"`
	SubCaseInstanceID              *string                        `json:"subCaseInstanceId,omitempty"`
	CaseInstanceID                 *string                        `json:"caseInstanceId,omitempty"`
	TenantIDIn                     []string                       `json:"tenantIdIn,omitempty"`
	WithoutTenantID                *bool                          `json:"withoutTenantId,omitempty"`
	ExecutedActivityIDIn           []string                       `json:"executedActivityIdIn,omitempty"`
	ActiveActivityIDIn             []string                       `json:"activeActivityIdIn,omitempty"`
	Active                         *bool                          `json:"active,omitempty"`
	Suspended                      *bool                          `json:"suspended,omitempty"`
	Completed                      *bool                          `json:"completed,omitempty"`
	ExternallyTerminated           *bool                          `json:"externallyTerminated,omitempty"`
	InternallyTerminated           *bool                          `json:"internallyTerminated,omitempty"`
	VariableNamesIgnoreCase        *bool                          `json:"variableNamesIgnoreCase,omitempty"`
	VariableValuesIgnoreCase       *bool                          `json:"variableValuesIgnoreCase,omitempty"`
	Variables                      []VariableQueryParameter       `json:"variables,omitempty"`
	OrQueries                      []HistoricProcessInstanceQuery `json:"orQueries,omitempty"`
	Sorting                        []Sorting                      `json:"sorting,omitempty"`
}

// The query-parameter shapes below carry url tags for go-querystring; list
// parameters are sent comma separated.

// IncidentQuery holds the query parameters of GET /incident and its count.
type IncidentQuery struct {
	IncidentID              *string  `json:"incidentId,omitempty" url:"incidentId,omitempty"`
	IncidentType            *string  `json:"incidentType,omitempty" url:"incidentType,omitempty"`
	IncidentMessage         *string  `json:"incidentMessage,omitempty" url:"incidentMessage,omitempty"`
	IncidentMessageLike     *string  `json:"incidentMessageLike,omitempty" url:"incidentMessageLike,omitempty"`
	ProcessDefinitionID     *string  `json:"processDefinitionId,omitempty" url:"processDefinitionId,omitempty"`
	ProcessDefinitionKeyIn  []string `json:"processDefinitionKeyIn,omitempty" url:"processDefinitionKeyIn,omitempty,comma"`
	ProcessInstanceID       *string  `json:"processInstanceId,omitempty" url:"processInstanceId,omitempty"`
	ExecutionID             *string  `json:"executionId,omitempty" url:"executionId,omitempty"`
	IncidentTimestampBefore *Time    `json:"incidentTimestampBefore,omitempty" url:"incidentTimestampBefore,omitempty"`
	IncidentTimestampAfter  *Time    `json:"incidentTimestampAfter,omitempty" url:"incidentTimestampAfter,omitempty"`
	ActivityID              *string  `json:"activityId,omitempty" url:"activityId,omitempty"`
	FailedActivityID        *string  `json:"failedActivityId,omitempty" url:"failedActivityId,omitempty"`
	CauseIncidentID         *string  `json:"causeIncidentId,omitempty" url:"causeIncidentId,omitempty"`
	RootCauseIncidentID     *string  `json:"rootCauseIncidentId,omitempty" url:"rootCauseIncidentId,omitempty"`
	Configuration           *string  `json:"configuration,omitempty" url:"configuration,omitempty"`
	TenantIDIn              []string `json:"tenantIdIn,omitempty" url:"tenantIdIn,omitempty,comma"`
	JobDefinitionIDIn       []string `json:"jobDefinitionIdIn,omitempty" url:"jobDefinitionIdIn,omitempty,comma"`
	SortBy                  *string  `json:"sortBy,omitempty" url:"sortBy,omitempty"`
	SortOrder               *string  `json:"sortOrder,omitempty" url:"sortOrder,omitempty"`
}

// EventSubscriptionQuery holds the query parameters of GET /event-subscription and its count.
type EventSubscriptionQuery struct {
	EventSubscriptionID                      *string  `json:"eventSubscriptionId,omitempty" url:"eventSubscriptionId,omitempty"`
	EventName                                *string  `json:"eventName,omitempty" url:"eventName,omitempty"`
	EventType                                *string  `json:"eventType,omitempty" url:"eventType,omitempty"`
	ExecutionID                              *string  `json:"executionId,omitempty" url:"executionId,omitempty"`
	ProcessInstanceID                        *string  `json:"processInstanceId,omitempty" url:"processInstanceId,omitempty"`
	ActivityID                               *string  `json:"activityId,omitempty" url:"activityId,omitempty"`
	TenantIDIn                               []string `json:"tenantIdIn,omitempty" url:"tenantIdIn,omitempty,comma"`
	WithoutTenantID                          *bool    `json:"withoutTenantId,omitempty" url:"withoutTenantId,omitempty"`
	IncludeEventSubscriptionsWithoutTenantID *bool    `json:"includeEventSubscriptionsWithoutTenantId,omitempty" url:"includeEventSubscriptionsWithoutTenantId,omitempty"`
	SortBy                                   *string  `json:"sortBy,omitempty" url:"sortBy,omitempty"`
	SortOrder                                *string  `json:"sortOrder,omitempty" url:"sortOrder,omitempty"`
}

// DeploymentQuery holds the query parameters of GET /deployment and its count.
type DeploymentQuery struct {
	ID                                *string  `json:"id,omitempty" url:"id,omitempty"`
	Name                              *string  `json:"name,omitempty" url:"name,omitempty"`
	NameLike                          *string  `json:"nameLike,omitempty" url:"nameLike,omitempty"`
	Source                            *string  `json:"source,omitempty" url:"source,omitempty"`
	WithoutSource                     *bool    `json:"withoutSource,omitempty" url:"withoutSource,omitempty"`
	TenantIDIn                        []string `json:"tenantIdIn,omitempty" url:"tenantIdIn,omitempty,comma"`
	WithoutTenantID                   *bool    `json:"withoutTenantId,omitempty" url:"withoutTenantId,omitempty"`
	IncludeDeploymentsWithoutTenantID *bool    `json:"includeDeploymentsWithoutTenantId,omitempty" url:"includeDeploymentsWithoutTenantId,omitempty"`
	Before                            *Time    `json:"before,omitempty" url:"before,omitempty"`
	After                             *Time    `json:"after,omitempty" url:"after,omitempty"`
	SortBy                            *string  `json:"sortBy,omitempty" url:"sortBy,omitempty"`
	SortOrder                         *string  `json:"sortOrder,omitempty" url:"sortOrder,omitempty"`
}

// ProcessDefinitionQuery holds the query parameters of GET /process-definition and its count.
type ProcessDefinitionQuery struct {
	ProcessDefinitionID                      *string  `json:"processDefinitionId,omitempty" url:"processDefinitionId,omitempty"`
	ProcessDefinitionIDIn                    []string `json:"processDefinitionIdIn,omitempty" url:"processDefinitionIdIn,omitempty,comma"`
	Name                                     *string  `json:"name,omitempty" url:"name,omitempty"`
	NameLike                                 *string  `json:"nameLike,omitempty" url:"nameLike,omitempty"`
	DeploymentID                             *string  `json:"deploymentId,omitempty" url:"deploymentId,omitempty"`
	DeployedAfter                            *Time    `json:"deployedAfter,omitempty" url:"deployedAfter,omitempty"`
	DeployedAt                               *Time    `json:"deployedAt,omitempty" url:"deployedAt,omitempty"`
	Key                                      *string  `json:"key,omitempty" url:"key,omitempty"`
	KeysIn                                   []string `json:"keysIn,omitempty" url:"keysIn,omitempty,comma"`
	KeyLike                                  *string  `json:"keyLike,omitempty" url:"keyLike,omitempty"`
	Category                                 *string  `json:"category,omitempty" url:"category,omitempty"`
	CategoryLike                             *string  `json:"categoryLike,omitempty" url:"categoryLike,omitempty"`
	Version                                  *int     `json:"version,omitempty" url:"version,omitempty"`
	LatestVersion                            *bool    `json:"latestVersion,omitempty" url:"latestVersion,omitempty"`
	ResourceName                             *string  `json:"resourceName,omitempty" url:"resourceName,omitempty"`
	ResourceNameLike                         *string  `json:"resourceNameLike,omitempty" url:"resourceNameLike,omitempty"`
	StartableBy                              *string  `json:"startableBy,omitempty" url:"startableBy,omitempty"`
	Active                                   *bool    `json:"active,omitempty" url:"active,omitempty"`
	Suspended                                *bool    `json:"suspended,omitempty" url:"suspended,omitempty"`
	IncidentID                               *string  `json:"incidentId,omitempty" url:"incidentId,omitempty"`
	IncidentType                             *string  `json:"incidentType,omitempty" url:"incidentType,omitempty"`
	IncidentMessage                          *string  `json:"incidentMessage,omitempty" url:"incidentMessage,omitempty"`
	IncidentMessageLike                      *string  `json:"incidentMessageLike,omitempty" url:"incidentMessageLike,omitempty"`
	TenantIDIn                               []string `json:"tenantIdIn,omitempty" url:"tenantIdIn,omitempty,comma"`
	WithoutTenantID                          *bool    `json:"withoutTenantId,omitempty" url:"withoutTenantId,omitempty"`
	IncludeProcessDefinitionsWithoutTenantID *bool    `json:"includeProcessDefinitionsWithoutTenantId,omitempty" url:"includeProcessDefinitionsWithoutTenantId,omitempty"`
	VersionTag                               *string  `json:"versionTag,omitempty" url:"versionTag,omitempty"`
	VersionTagLike                           *string  `json:"versionTagLike,omitempty" url:"versionTagLike,omitempty"`
	WithoutVersionTag                        *bool    `json:"withoutVersionTag,omitempty" url:"withoutVersionTag,omitempty"`
	StartableInTasklist                      *bool    `json:"startableInTasklist,omitempty" url:"startableInTasklist,omitempty"`
	NotStartableInTasklist                   *bool    `json:"notStartableInTasklist,omitempty" url:"notStartableInTasklist,omitempty"`
	SortBy                                   *string  `json:"sortBy,omitempty" url:"sortBy,omitempty"`
	SortOrder                                *string  `json:"sortOrder,omitempty" url:"sortOrder,omitempty"`
}
