package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// Expression keys of a task query. Each names the setter whose value the
// expression replaces.
const (
	exprAssignee                    = "taskAssignee"
	exprAssigneeLike                = "taskAssigneeLike"
	exprOwner                       = "taskOwner"
	exprCandidateUser               = "taskCandidateUser"
	exprCandidateGroup              = "taskCandidateGroup"
	exprCandidateGroupIn            = "taskCandidateGroupIn"
	exprInvolvedUser                = "taskInvolvedUser"
	exprBusinessKey                 = "processInstanceBusinessKey"
	exprBusinessKeyLike             = "processInstanceBusinessKeyLike"
	exprCreatedOn                   = "taskCreatedOn"
	exprCreatedBefore               = "taskCreatedBefore"
	exprCreatedAfter                = "taskCreatedAfter"
	exprUpdatedAfter                = "taskUpdatedAfter"
	exprDueDate                     = "dueDate"
	exprDueBefore                   = "dueBefore"
	exprDueAfter                    = "dueAfter"
	exprFollowUpDate                = "followUpDate"
	exprFollowUpBefore              = "followUpBefore"
	exprFollowUpAfter               = "followUpAfter"
	exprFollowUpBeforeOrNotExistent = "followUpBeforeOrNotExistent"
)

// TaskQuery queries user tasks.
type TaskQuery struct {
	base
	variableFilter
	executor[wire.TaskQuery, wire.TaskRecord, domain.Task]

	taskID, name, nameNotEqual, nameLike, nameNotLike string
	description, descriptionLike                      string
	taskIDIn                                          []string
	priority, minPriority, maxPriority                *int
	assignee, assigneeLike, owner, involvedUser       string
	assigneeIn, assigneeNotIn                         []string
	assigned, unassigned                              bool
	delegationState                                   domain.DelegationState
	candidateUser, candidateGroup                     string
	candidateGroups                                   []string
	withCandidateGroups, withoutCandidateGroups       bool
	withCandidateUsers, withoutCandidateUsers         bool
	includeAssignedTasks                              bool
	processInstanceID, executionID                    string
	processInstanceIDIn, activityInstanceIDIn         []string
	businessKey, businessKeyLike                      string
	businessKeyIn                                     []string
	createdOn, createdBefore, createdAfter            time.Time
	updatedAfter                                      time.Time
	taskDefinitionKey, taskDefinitionKeyLike          string
	taskDefinitionKeyIn                               []string
	parentTaskID                                      string
	processDefinitionID, processDefinitionKey         string
	processDefinitionName, processDefinitionNameLike  string
	processDefinitionKeyIn                            []string
	caseDefinitionID, caseDefinitionKey               string
	caseDefinitionName, caseDefinitionNameLike        string
	caseInstanceID, caseInstanceBusinessKey           string
	caseInstanceBusinessKeyLike, caseExecutionID      string
	dueDate, dueBefore, dueAfter                      time.Time
	withoutDueDate                                    bool
	followUpDate, followUpBefore, followUpAfter       time.Time
	followUpNullAccepted                              bool
	suspension                                        domain.SuspensionState
	expressions                                       map[string]string
	orRequested                                       bool
}

// NewTaskQuery returns an empty task query executed through endpoint.
func NewTaskQuery(endpoint Endpoint[wire.TaskQuery, wire.TaskRecord], opts ...Option) *TaskQuery {
	q := &TaskQuery{base: newBase("TaskQuery", opts), expressions: map[string]string{}}
	q.executor = executor[wire.TaskQuery, wire.TaskRecord, domain.Task]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.Task,
	}
	return q
}

func (q *TaskQuery) setExpression(setter, key, expression string) bool {
	if !q.ok(domain.RequireString(q.op(setter), "expression", expression)) {
		return false
	}
	q.expressions[key] = expression
	return true
}

func (q *TaskQuery) value(setter, name string, dst *string, v, exprKey string) *TaskQuery {
	if q.setString(setter, name, dst, v) {
		delete(q.expressions, exprKey)
	}
	return q
}

func (q *TaskQuery) date(setter, name string, dst *time.Time, v time.Time, exprKey string) *TaskQuery {
	if q.setTime(setter, name, dst, v) {
		delete(q.expressions, exprKey)
	}
	return q
}

func (q *TaskQuery) expression(setter, key, expression string) *TaskQuery {
	q.setExpression(setter, key, expression)
	return q
}

// TaskID filters by id.
func (q *TaskQuery) TaskID(id string) *TaskQuery {
	q.setString("TaskID", "taskId", &q.taskID, id)
	return q
}

// TaskIDIn restricts the query to tasks whose id is any of ids.
func (q *TaskQuery) TaskIDIn(ids ...string) *TaskQuery {
	q.setStrings("TaskIDIn", "taskIds", &q.taskIDIn, ids)
	return q
}

// TaskName filters by name.
func (q *TaskQuery) TaskName(name string) *TaskQuery {
	q.setString("TaskName", "name", &q.name, name)
	return q
}

// TaskNameNotEqual excludes tasks whose name equals name.
func (q *TaskQuery) TaskNameNotEqual(name string) *TaskQuery {
	q.setString("TaskNameNotEqual", "name", &q.nameNotEqual, name)
	return q
}

// TaskNameLike filters by name matching pattern, where % matches any characters.
func (q *TaskQuery) TaskNameLike(pattern string) *TaskQuery {
	q.setString("TaskNameLike", "nameLike", &q.nameLike, pattern)
	return q
}

// TaskNameNotLike excludes tasks whose name matches pattern.
func (q *TaskQuery) TaskNameNotLike(pattern string) *TaskQuery {
	q.setString("TaskNameNotLike", "nameNotLike", &q.nameNotLike, pattern)
	return q
}

// TaskDescription filters by description.
func (q *TaskQuery) TaskDescription(description string) *TaskQuery {
	q.setString("TaskDescription", "description", &q.description, description)
	return q
}

// TaskDescriptionLike filters by description matching pattern, where % matches any characters.
func (q *TaskQuery) TaskDescriptionLike(pattern string) *TaskQuery {
	q.setString("TaskDescriptionLike", "descriptionLike", &q.descriptionLike, pattern)
	return q
}

// TaskPriority filters by priority.
func (q *TaskQuery) TaskPriority(priority int) *TaskQuery {
	q.setInt(&q.priority, priority)
	return q
}

// TaskMinPriority restricts the query to tasks with a priority of at least priority.
func (q *TaskQuery) TaskMinPriority(priority int) *TaskQuery {
	q.setInt(&q.minPriority, priority)
	return q
}

// TaskMaxPriority restricts the query to tasks with a priority of at most priority.
func (q *TaskQuery) TaskMaxPriority(priority int) *TaskQuery {
	q.setInt(&q.maxPriority, priority)
	return q
}

// TaskAssignee filters by assignee.
func (q *TaskQuery) TaskAssignee(assignee string) *TaskQuery {
	return q.value("TaskAssignee", "assignee", &q.assignee, assignee, exprAssignee)
}

// TaskAssigneeExpression filters by assignee, resolved by the engine from expression.
func (q *TaskQuery) TaskAssigneeExpression(expression string) *TaskQuery {
	return q.expression("TaskAssigneeExpression", exprAssignee, expression)
}

// TaskAssigneeLike filters by assignee matching pattern, where % matches any characters.
func (q *TaskQuery) TaskAssigneeLike(pattern string) *TaskQuery {
	return q.value("TaskAssigneeLike", "assigneeLike", &q.assigneeLike, pattern, exprAssigneeLike)
}

// TaskAssigneeLikeExpression filters by assignee pattern, resolved by the engine from expression.
func (q *TaskQuery) TaskAssigneeLikeExpression(expression string) *TaskQuery {
	return q.expression("TaskAssigneeLikeExpression", exprAssigneeLike, expression)
}

// TaskAssigneeIn restricts the query to tasks whose assignee is any of assignees.
func (q *TaskQuery) TaskAssigneeIn(assignees ...string) *TaskQuery {
	q.setStrings("TaskAssigneeIn", "assignees", &q.assigneeIn, assignees)
	return q
}

// TaskAssigneeNotIn excludes tasks whose assignee is any of assignees.
func (q *TaskQuery) TaskAssigneeNotIn(assignees ...string) *TaskQuery {
	q.setStrings("TaskAssigneeNotIn", "assignees", &q.assigneeNotIn, assignees)
	return q
}

// TaskOwner filters by owner.
func (q *TaskQuery) TaskOwner(owner string) *TaskQuery {
	return q.value("TaskOwner", "owner", &q.owner, owner, exprOwner)
}

// TaskOwnerExpression filters by owner, resolved by the engine from expression.
func (q *TaskQuery) TaskOwnerExpression(expression string) *TaskQuery {
	return q.expression("TaskOwnerExpression", exprOwner, expression)
}

// TaskAssigned restricts the query to assigned tasks.
func (q *TaskQuery) TaskAssigned() *TaskQuery {
	q.setFlag(&q.assigned)
	return q
}

// TaskUnassigned restricts the query to unassigned tasks.
func (q *TaskQuery) TaskUnassigned() *TaskQuery {
	q.setFlag(&q.unassigned)
	return q
}

// TaskDelegationState filters by delegation state.
func (q *TaskQuery) TaskDelegationState(state domain.DelegationState) *TaskQuery {
	if !q.ok(nil) {
		return q
	}
	if !state.Valid() {
		q.usage("TaskDelegationState", "unknown delegation state %q", state)
		return q
	}
	q.delegationState = state
	return q
}

func (q *TaskQuery) hasCandidateUser() bool {
	return q.candidateUser != "" || q.expressions[exprCandidateUser] != ""
}

func (q *TaskQuery) hasCandidateGroup() bool {
	return q.candidateGroup != "" || q.expressions[exprCandidateGroup] != ""
}

func (q *TaskQuery) hasCandidateGroupIn() bool {
	return q.candidateGroups != nil || q.expressions[exprCandidateGroupIn] != ""
}

func (q *TaskQuery) candidateUserAllowed(setter string) bool {
	switch {
	case !q.ok(nil):
		return false
	case q.hasCandidateGroup():
		q.usage(setter, "cannot set both candidateUser and candidateGroup")
		return false
	case q.hasCandidateGroupIn():
		q.usage(setter, "cannot set both candidateUser and candidateGroupIn")
		return false
	}
	return true
}

func (q *TaskQuery) candidateGroupAllowed(setter, filter string) bool {
	if !q.ok(nil) {
		return false
	}
	if q.hasCandidateUser() {
		q.usage(setter, "cannot set both %s and candidateUser", filter)
		return false
	}
	return true
}

// TaskCandidateUser filters tasks the user is a candidate for. It excludes
// the candidate group filters.
func (q *TaskQuery) TaskCandidateUser(user string) *TaskQuery {
	if q.candidateUserAllowed("TaskCandidateUser") {
		q.value("TaskCandidateUser", "candidateUser", &q.candidateUser, user, exprCandidateUser)
	}
	return q
}

// TaskCandidateUserExpression filters by candidate user, resolved by the engine from expression.
func (q *TaskQuery) TaskCandidateUserExpression(expression string) *TaskQuery {
	if q.candidateUserAllowed("TaskCandidateUserExpression") {
		q.setExpression("TaskCandidateUserExpression", exprCandidateUser, expression)
	}
	return q
}

// TaskCandidateGroup filters tasks offered to the group. It excludes
// TaskCandidateUser.
func (q *TaskQuery) TaskCandidateGroup(group string) *TaskQuery {
	if q.candidateGroupAllowed("TaskCandidateGroup", "candidateGroup") {
		q.value("TaskCandidateGroup", "candidateGroup", &q.candidateGroup, group, exprCandidateGroup)
	}
	return q
}

// TaskCandidateGroupExpression filters by candidate group, resolved by the engine from expression.
func (q *TaskQuery) TaskCandidateGroupExpression(expression string) *TaskQuery {
	if q.candidateGroupAllowed("TaskCandidateGroupExpression", "candidateGroup") {
		q.setExpression("TaskCandidateGroupExpression", exprCandidateGroup, expression)
	}
	return q
}

// TaskCandidateGroupIn restricts the query to tasks whose candidate group is any of groups.
func (q *TaskQuery) TaskCandidateGroupIn(groups ...string) *TaskQuery {
	if q.candidateGroupAllowed("TaskCandidateGroupIn", "candidateGroupIn") &&
		q.setStrings("TaskCandidateGroupIn", "candidateGroups", &q.candidateGroups, groups) {
		delete(q.expressions, exprCandidateGroupIn)
	}
	return q
}

// TaskCandidateGroupInExpression filters by candidate group list, resolved by the engine from expression.
func (q *TaskQuery) TaskCandidateGroupInExpression(expression string) *TaskQuery {
	if q.candidateGroupAllowed("TaskCandidateGroupInExpression", "candidateGroupIn") {
		q.setExpression("TaskCandidateGroupInExpression", exprCandidateGroupIn, expression)
	}
	return q
}

// WithCandidateGroups restricts the query to tasks with candidate groups.
func (q *TaskQuery) WithCandidateGroups() *TaskQuery {
	q.setFlag(&q.withCandidateGroups)
	return q
}

// WithoutCandidateGroups restricts the query to tasks without candidate groups.
func (q *TaskQuery) WithoutCandidateGroups() *TaskQuery {
	q.setFlag(&q.withoutCandidateGroups)
	return q
}

// WithCandidateUsers restricts the query to tasks with candidate users.
func (q *TaskQuery) WithCandidateUsers() *TaskQuery {
	q.setFlag(&q.withCandidateUsers)
	return q
}

// WithoutCandidateUsers restricts the query to tasks without candidate users.
func (q *TaskQuery) WithoutCandidateUsers() *TaskQuery {
	q.setFlag(&q.withoutCandidateUsers)
	return q
}

// IncludeAssignedTasks widens a candidate filter to assigned tasks. A
// candidate filter must be set first.
func (q *TaskQuery) IncludeAssignedTasks() *TaskQuery {
	if !q.ok(nil) {
		return q
	}
	if !q.hasCandidateUser() && !q.hasCandidateGroup() && !q.hasCandidateGroupIn() &&
		!q.withCandidateGroups && !q.withoutCandidateGroups &&
		!q.withCandidateUsers && !q.withoutCandidateUsers {
		q.usage("IncludeAssignedTasks", "candidateUser, candidateGroup, candidateGroupIn, withCandidateGroups, "+
			"withoutCandidateGroups, withCandidateUsers, withoutCandidateUsers has to be called before 'includeAssignedTasks'.")
		return q
	}
	q.includeAssignedTasks = true
	return q
}

// TaskInvolvedUser filters by involved user.
func (q *TaskQuery) TaskInvolvedUser(user string) *TaskQuery {
	return q.value("TaskInvolvedUser", "involvedUser", &q.involvedUser, user, exprInvolvedUser)
}

// TaskInvolvedUserExpression filters by involved user, resolved by the engine from expression.
func (q *TaskQuery) TaskInvolvedUserExpression(expression string) *TaskQuery {
	return q.expression("TaskInvolvedUserExpression", exprInvolvedUser, expression)
}

// ProcessInstanceID filters by process instance id.
func (q *TaskQuery) ProcessInstanceID(id string) *TaskQuery {
	q.setString("ProcessInstanceID", "processInstanceId", &q.processInstanceID, id)
	return q
}

// ProcessInstanceIDIn restricts the query to tasks whose process instance id is any of ids.
func (q *TaskQuery) ProcessInstanceIDIn(ids ...string) *TaskQuery {
	q.setStrings("ProcessInstanceIDIn", "processInstanceIds", &q.processInstanceIDIn, ids)
	return q
}

// ProcessInstanceBusinessKey filters by process instance business key.
func (q *TaskQuery) ProcessInstanceBusinessKey(key string) *TaskQuery {
	return q.value("ProcessInstanceBusinessKey", "businessKey", &q.businessKey, key, exprBusinessKey)
}

// ProcessInstanceBusinessKeyExpression filters by process instance business key, resolved by the engine from expression.
func (q *TaskQuery) ProcessInstanceBusinessKeyExpression(expression string) *TaskQuery {
	return q.expression("ProcessInstanceBusinessKeyExpression", exprBusinessKey, expression)
}

// ProcessInstanceBusinessKeyIn restricts the query to tasks whose process instance business key is any of keys.
func (q *TaskQuery) ProcessInstanceBusinessKeyIn(keys ...string) *TaskQuery {
	q.setStrings("ProcessInstanceBusinessKeyIn", "businessKeys", &q.businessKeyIn, keys)
	return q
}

// ProcessInstanceBusinessKeyLike filters by process instance business key matching pattern, where % matches any characters.
func (q *TaskQuery) ProcessInstanceBusinessKeyLike(pattern string) *TaskQuery {
	return q.value("ProcessInstanceBusinessKeyLike", "businessKeyLike", &q.businessKeyLike, pattern, exprBusinessKeyLike)
}

// ProcessInstanceBusinessKeyLikeExpression filters by process instance business key pattern, resolved by the engine from expression.
func (q *TaskQuery) ProcessInstanceBusinessKeyLikeExpression(expression string) *TaskQuery {
	return q.expression("ProcessInstanceBusinessKeyLikeExpression", exprBusinessKeyLike, expression)
}

// ExecutionID filters by execution id.
func (q *TaskQuery) ExecutionID(id string) *TaskQuery {
	q.setString("ExecutionID", "executionId", &q.executionID, id)
	return q
}

// ActivityInstanceIDIn restricts the query to tasks whose activity instance id is any of ids.
func (q *TaskQuery) ActivityInstanceIDIn(ids ...string) *TaskQuery {
	q.setStrings("ActivityInstanceIDIn", "activityInstanceIds", &q.activityInstanceIDIn, ids)
	return q
}

// TaskCreatedOn filters tasks by created on t.
func (q *TaskQuery) TaskCreatedOn(t time.Time) *TaskQuery {
	return q.date("TaskCreatedOn", "createTime", &q.createdOn, t, exprCreatedOn)
}

// TaskCreatedOnExpression filters by created on, resolved by the engine from expression.
func (q *TaskQuery) TaskCreatedOnExpression(expression string) *TaskQuery {
	return q.expression("TaskCreatedOnExpression", exprCreatedOn, expression)
}

// TaskCreatedBefore filters tasks by created before t.
func (q *TaskQuery) TaskCreatedBefore(t time.Time) *TaskQuery {
	return q.date("TaskCreatedBefore", "before", &q.createdBefore, t, exprCreatedBefore)
}

// TaskCreatedBeforeExpression filters by created before, resolved by the engine from expression.
func (q *TaskQuery) TaskCreatedBeforeExpression(expression string) *TaskQuery {
	return q.expression("TaskCreatedBeforeExpression", exprCreatedBefore, expression)
}

// TaskCreatedAfter filters tasks by created after t.
func (q *TaskQuery) TaskCreatedAfter(t time.Time) *TaskQuery {
	return q.date("TaskCreatedAfter", "after", &q.createdAfter, t, exprCreatedAfter)
}

// TaskCreatedAfterExpression filters by created after, resolved by the engine from expression.
func (q *TaskQuery) TaskCreatedAfterExpression(expression string) *TaskQuery {
	return q.expression("TaskCreatedAfterExpression", exprCreatedAfter, expression)
}

// TaskUpdatedAfter filters tasks by updated after t.
func (q *TaskQuery) TaskUpdatedAfter(t time.Time) *TaskQuery {
	return q.date("TaskUpdatedAfter", "after", &q.updatedAfter, t, exprUpdatedAfter)
}

// TaskUpdatedAfterExpression filters by updated after, resolved by the engine from expression.
func (q *TaskQuery) TaskUpdatedAfterExpression(expression string) *TaskQuery {
	return q.expression("TaskUpdatedAfterExpression", exprUpdatedAfter, expression)
}

// TaskDefinitionKey filters by task definition key.
func (q *TaskQuery) TaskDefinitionKey(key string) *TaskQuery {
	q.setString("TaskDefinitionKey", "taskDefinitionKey", &q.taskDefinitionKey, key)
	return q
}

// TaskDefinitionKeyLike filters by task definition key matching pattern, where % matches any characters.
func (q *TaskQuery) TaskDefinitionKeyLike(pattern string) *TaskQuery {
	q.setString("TaskDefinitionKeyLike", "taskDefinitionKeyLike", &q.taskDefinitionKeyLike, pattern)
	return q
}

// TaskDefinitionKeyIn restricts the query to tasks whose task definition key is any of keys.
func (q *TaskQuery) TaskDefinitionKeyIn(keys ...string) *TaskQuery {
	q.setStrings("TaskDefinitionKeyIn", "taskDefinitionKeys", &q.taskDefinitionKeyIn, keys)
	return q
}

// TaskParentTaskID filters by parent task id.
func (q *TaskQuery) TaskParentTaskID(id string) *TaskQuery {
	q.setString("TaskParentTaskID", "parentTaskId", &q.parentTaskID, id)
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *TaskQuery) ProcessDefinitionID(id string) *TaskQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.processDefinitionID, id)
	return q
}

// ProcessDefinitionKey filters by process definition key.
func (q *TaskQuery) ProcessDefinitionKey(key string) *TaskQuery {
	q.setString("ProcessDefinitionKey", "processDefinitionKey", &q.processDefinitionKey, key)
	return q
}

// ProcessDefinitionKeyIn restricts the query to tasks whose process definition key is any of keys.
func (q *TaskQuery) ProcessDefinitionKeyIn(keys ...string) *TaskQuery {
	q.setStrings("ProcessDefinitionKeyIn", "processDefinitionKeys", &q.processDefinitionKeyIn, keys)
	return q
}

// ProcessDefinitionName filters by process definition name.
func (q *TaskQuery) ProcessDefinitionName(name string) *TaskQuery {
	q.setString("ProcessDefinitionName", "processDefinitionName", &q.processDefinitionName, name)
	return q
}

// ProcessDefinitionNameLike filters by process definition name matching pattern, where % matches any characters.
func (q *TaskQuery) ProcessDefinitionNameLike(pattern string) *TaskQuery {
	q.setString("ProcessDefinitionNameLike", "processDefinitionNameLike", &q.processDefinitionNameLike, pattern)
	return q
}

// CaseDefinitionID filters by case definition id.
func (q *TaskQuery) CaseDefinitionID(id string) *TaskQuery {
	q.setString("CaseDefinitionID", "caseDefinitionId", &q.caseDefinitionID, id)
	return q
}

// CaseDefinitionKey filters by case definition key.
func (q *TaskQuery) CaseDefinitionKey(key string) *TaskQuery {
	q.setString("CaseDefinitionKey", "caseDefinitionKey", &q.caseDefinitionKey, key)
	return q
}

// CaseDefinitionName filters by case definition name.
func (q *TaskQuery) CaseDefinitionName(name string) *TaskQuery {
	q.setString("CaseDefinitionName", "caseDefinitionName", &q.caseDefinitionName, name)
	return q
}

// CaseDefinitionNameLike filters by case definition name matching pattern, where % matches any characters.
func (q *TaskQuery) CaseDefinitionNameLike(pattern string) *TaskQuery {
	q.setString("CaseDefinitionNameLike", "caseDefinitionNameLike", &q.caseDefinitionNameLike, pattern)
	return q
}

// CaseInstanceID filters by case instance id.
func (q *TaskQuery) CaseInstanceID(id string) *TaskQuery {
	q.setString("CaseInstanceID", "caseInstanceId", &q.caseInstanceID, id)
	return q
}

// CaseInstanceBusinessKey filters by case instance business key.
func (q *TaskQuery) CaseInstanceBusinessKey(key string) *TaskQuery {
	q.setString("CaseInstanceBusinessKey", "caseInstanceBusinessKey", &q.caseInstanceBusinessKey, key)
	return q
}

// CaseInstanceBusinessKeyLike filters by case instance business key matching pattern, where % matches any characters.
func (q *TaskQuery) CaseInstanceBusinessKeyLike(pattern string) *TaskQuery {
	q.setString("CaseInstanceBusinessKeyLike", "caseInstanceBusinessKeyLike", &q.caseInstanceBusinessKeyLike, pattern)
	return q
}

// CaseExecutionID filters by case execution id.
func (q *TaskQuery) CaseExecutionID(id string) *TaskQuery {
	q.setString("CaseExecutionID", "caseExecutionId", &q.caseExecutionID, id)
	return q
}

func (q *TaskQuery) dueAllowed(setter, filter string) bool {
	if !q.ok(nil) {
		return false
	}
	if q.withoutDueDate {
		q.usage(setter, "cannot set both %s and withoutDueDate filters.", filter)
		return false
	}
	return true
}

// DueDate filters by exact due date. The due date filters exclude WithoutDueDate.
func (q *TaskQuery) DueDate(t time.Time) *TaskQuery {
	if q.dueAllowed("DueDate", "dueDate") {
		q.date("DueDate", "dueDate", &q.dueDate, t, exprDueDate)
	}
	return q
}

// DueDateExpression filters by due date, resolved by the engine from expression.
func (q *TaskQuery) DueDateExpression(expression string) *TaskQuery {
	if q.dueAllowed("DueDateExpression", "dueDateExpression") {
		q.setExpression("DueDateExpression", exprDueDate, expression)
	}
	return q
}

// DueBefore filters tasks by due before t.
func (q *TaskQuery) DueBefore(t time.Time) *TaskQuery {
	if q.dueAllowed("DueBefore", "dueBefore") {
		q.date("DueBefore", "dueBefore", &q.dueBefore, t, exprDueBefore)
	}
	return q
}

// DueBeforeExpression filters by due before, resolved by the engine from expression.
func (q *TaskQuery) DueBeforeExpression(expression string) *TaskQuery {
	if q.dueAllowed("DueBeforeExpression", "dueBeforeExpression") {
		q.setExpression("DueBeforeExpression", exprDueBefore, expression)
	}
	return q
}

// DueAfter filters tasks by due after t.
func (q *TaskQuery) DueAfter(t time.Time) *TaskQuery {
	if q.dueAllowed("DueAfter", "dueAfter") {
		q.date("DueAfter", "dueAfter", &q.dueAfter, t, exprDueAfter)
	}
	return q
}

// DueAfterExpression filters by due after, resolved by the engine from expression.
func (q *TaskQuery) DueAfterExpression(expression string) *TaskQuery {
	if q.dueAllowed("DueAfterExpression", "dueAfterExpression") {
		q.setExpression("DueAfterExpression", exprDueAfter, expression)
	}
	return q
}

// WithoutDueDate filters tasks without a due date.
func (q *TaskQuery) WithoutDueDate() *TaskQuery {
	if !q.ok(nil) {
		return q
	}
	for _, due := range []struct {
		set  bool
		name string
	}{
		{!q.dueDate.IsZero() || q.expressions[exprDueDate] != "", "dueDate"},
		{!q.dueBefore.IsZero() || q.expressions[exprDueBefore] != "", "dueBefore"},
		{!q.dueAfter.IsZero() || q.expressions[exprDueAfter] != "", "dueAfter"},
	} {
		if due.set {
			q.usage("WithoutDueDate", "cannot set both %s and withoutDueDate filters.", due.name)
			return q
		}
	}
	q.withoutDueDate = true
	return q
}

// FollowUpDate filters tasks by follow up date t.
func (q *TaskQuery) FollowUpDate(t time.Time) *TaskQuery {
	return q.date("FollowUpDate", "followUpDate", &q.followUpDate, t, exprFollowUpDate)
}

// FollowUpDateExpression filters by follow up date, resolved by the engine from expression.
func (q *TaskQuery) FollowUpDateExpression(expression string) *TaskQuery {
	return q.expression("FollowUpDateExpression", exprFollowUpDate, expression)
}

// FollowUpBefore filters tasks by follow up before t.
func (q *TaskQuery) FollowUpBefore(t time.Time) *TaskQuery {
	if q.setTime("FollowUpBefore", "followUpBefore", &q.followUpBefore, t) {
		q.followUpNullAccepted = false
		delete(q.expressions, exprFollowUpBefore)
	}
	return q
}

// FollowUpBeforeExpression filters by follow up before, resolved by the engine from expression.
func (q *TaskQuery) FollowUpBeforeExpression(expression string) *TaskQuery {
	return q.expression("FollowUpBeforeExpression", exprFollowUpBefore, expression)
}

// FollowUpBeforeOrNotExistent matches tasks with a follow-up date before t
// or none at all.
func (q *TaskQuery) FollowUpBeforeOrNotExistent(t time.Time) *TaskQuery {
	if q.setTime("FollowUpBeforeOrNotExistent", "followUpBefore", &q.followUpBefore, t) {
		q.followUpNullAccepted = true
		delete(q.expressions, exprFollowUpBeforeOrNotExistent)
	}
	return q
}

// FollowUpBeforeOrNotExistentExpression filters by follow up before or not existent, resolved by the engine from expression.
func (q *TaskQuery) FollowUpBeforeOrNotExistentExpression(expression string) *TaskQuery {
	if q.setExpression("FollowUpBeforeOrNotExistentExpression", exprFollowUpBeforeOrNotExistent, expression) {
		q.followUpNullAccepted = true
	}
	return q
}

// FollowUpAfter filters tasks by follow up after t.
func (q *TaskQuery) FollowUpAfter(t time.Time) *TaskQuery {
	return q.date("FollowUpAfter", "followUpAfter", &q.followUpAfter, t, exprFollowUpAfter)
}

// FollowUpAfterExpression filters by follow up after, resolved by the engine from expression.
func (q *TaskQuery) FollowUpAfterExpression(expression string) *TaskQuery {
	return q.expression("FollowUpAfterExpression", exprFollowUpAfter, expression)
}

// Active restricts the query to active tasks.
func (q *TaskQuery) Active() *TaskQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionActive
	}
	return q
}

// Suspended restricts the query to suspended tasks.
func (q *TaskQuery) Suspended() *TaskQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionSuspended
	}
	return q
}

// TenantIDIn restricts the query to tasks whose tenant id is any of ids.
func (q *TaskQuery) TenantIDIn(ids ...string) *TaskQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to tasks without tenant id.
func (q *TaskQuery) WithoutTenantID() *TaskQuery {
	q.withoutTenantID()
	return q
}

func (q *TaskQuery) taskVariable(setter, name string, value any, op domain.Operator) *TaskQuery {
	q.addVariable(&q.base, setter, name, value, op, domain.ScopeTask)
	return q
}

func (q *TaskQuery) processVariable(setter, name string, value any, op domain.Operator) *TaskQuery {
	q.addVariable(&q.base, setter, name, value, op, domain.ScopeProcess)
	return q
}

func (q *TaskQuery) caseInstanceVariable(setter, name string, value any, op domain.Operator) *TaskQuery {
	q.addVariable(&q.base, setter, name, value, op, domain.ScopeCaseInstance)
	return q
}

// TaskVariableValueEquals matches tasks with a task variable name whose value equals value.
func (q *TaskQuery) TaskVariableValueEquals(name string, value any) *TaskQuery {
	return q.taskVariable("TaskVariableValueEquals", name, value, domain.OpEquals)
}

// TaskVariableValueNotEquals matches tasks with a task variable name whose value differs from value.
func (q *TaskQuery) TaskVariableValueNotEquals(name string, value any) *TaskQuery {
	return q.taskVariable("TaskVariableValueNotEquals", name, value, domain.OpNotEquals)
}

// TaskVariableValueGreaterThan matches tasks with a task variable name whose value is greater than value.
func (q *TaskQuery) TaskVariableValueGreaterThan(name string, value any) *TaskQuery {
	return q.taskVariable("TaskVariableValueGreaterThan", name, value, domain.OpGreaterThan)
}

// TaskVariableValueGreaterThanOrEquals matches tasks with a task variable name whose value is at least value.
func (q *TaskQuery) TaskVariableValueGreaterThanOrEquals(name string, value any) *TaskQuery {
	return q.taskVariable("TaskVariableValueGreaterThanOrEquals", name, value, domain.OpGreaterThanOrEqual)
}

// TaskVariableValueLessThan matches tasks with a task variable name whose value is less than value.
func (q *TaskQuery) TaskVariableValueLessThan(name string, value any) *TaskQuery {
	return q.taskVariable("TaskVariableValueLessThan", name, value, domain.OpLessThan)
}

// TaskVariableValueLessThanOrEquals matches tasks with a task variable name whose value is at most value.
func (q *TaskQuery) TaskVariableValueLessThanOrEquals(name string, value any) *TaskQuery {
	return q.taskVariable("TaskVariableValueLessThanOrEquals", name, value, domain.OpLessThanOrEqual)
}

// TaskVariableValueLike matches tasks with a variable name whose value matches the pattern.
func (q *TaskQuery) TaskVariableValueLike(name, pattern string) *TaskQuery {
	return q.taskVariable("TaskVariableValueLike", name, pattern, domain.OpLike)
}

// TaskVariableValueNotLike matches tasks with a variable name whose value does not match the pattern.
func (q *TaskQuery) TaskVariableValueNotLike(name, pattern string) *TaskQuery {
	return q.taskVariable("TaskVariableValueNotLike", name, pattern, domain.OpNotLike)
}

// ProcessVariableValueEquals matches tasks with a process variable name whose value equals value.
func (q *TaskQuery) ProcessVariableValueEquals(name string, value any) *TaskQuery {
	return q.processVariable("ProcessVariableValueEquals", name, value, domain.OpEquals)
}

// ProcessVariableValueNotEquals matches tasks with a process variable name whose value differs from value.
func (q *TaskQuery) ProcessVariableValueNotEquals(name string, value any) *TaskQuery {
	return q.processVariable("ProcessVariableValueNotEquals", name, value, domain.OpNotEquals)
}

// ProcessVariableValueGreaterThan matches tasks with a process variable name whose value is greater than value.
func (q *TaskQuery) ProcessVariableValueGreaterThan(name string, value any) *TaskQuery {
	return q.processVariable("ProcessVariableValueGreaterThan", name, value, domain.OpGreaterThan)
}

// ProcessVariableValueGreaterThanOrEquals matches tasks with a process variable name whose value is at least value.
func (q *TaskQuery) ProcessVariableValueGreaterThanOrEquals(name string, value any) *TaskQuery {
	return q.processVariable("ProcessVariableValueGreaterThanOrEquals", name, value, domain.OpGreaterThanOrEqual)
}

// ProcessVariableValueLessThan matches tasks with a process variable name whose value is less than value.
func (q *TaskQuery) ProcessVariableValueLessThan(name string, value any) *TaskQuery {
	return q.processVariable("ProcessVariableValueLessThan", name, value, domain.OpLessThan)
}

// ProcessVariableValueLessThanOrEquals matches tasks with a process variable name whose value is at most value.
func (q *TaskQuery) ProcessVariableValueLessThanOrEquals(name string, value any) *TaskQuery {
	return q.processVariable("ProcessVariableValueLessThanOrEquals", name, value, domain.OpLessThanOrEqual)
}

// ProcessVariableValueLike matches tasks with a process variable name whose value matches the pattern.
func (q *TaskQuery) ProcessVariableValueLike(name, pattern string) *TaskQuery {
	return q.processVariable("ProcessVariableValueLike", name, pattern, domain.OpLike)
}

// ProcessVariableValueNotLike matches tasks with a process variable name whose value does not match the pattern.
func (q *TaskQuery) ProcessVariableValueNotLike(name, pattern string) *TaskQuery {
	return q.processVariable("ProcessVariableValueNotLike", name, pattern, domain.OpNotLike)
}

// CaseInstanceVariableValueEquals matches tasks with a case instance variable name whose value equals value.
func (q *TaskQuery) CaseInstanceVariableValueEquals(name string, value any) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueEquals", name, value, domain.OpEquals)
}

// CaseInstanceVariableValueNotEquals matches tasks with a case instance variable name whose value differs from value.
func (q *TaskQuery) CaseInstanceVariableValueNotEquals(name string, value any) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueNotEquals", name, value, domain.OpNotEquals)
}

// CaseInstanceVariableValueGreaterThan matches tasks with a case instance variable name whose value is greater than value.
func (q *TaskQuery) CaseInstanceVariableValueGreaterThan(name string, value any) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueGreaterThan", name, value, domain.OpGreaterThan)
}

// CaseInstanceVariableValueGreaterThanOrEquals matches tasks with a case instance variable name whose value is at least value.
func (q *TaskQuery) CaseInstanceVariableValueGreaterThanOrEquals(name string, value any) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueGreaterThanOrEquals", name, value, domain.OpGreaterThanOrEqual)
}

// CaseInstanceVariableValueLessThan matches tasks with a case instance variable name whose value is less than value.
func (q *TaskQuery) CaseInstanceVariableValueLessThan(name string, value any) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueLessThan", name, value, domain.OpLessThan)
}

// CaseInstanceVariableValueLessThanOrEquals matches tasks with a case instance variable name whose value is at most value.
func (q *TaskQuery) CaseInstanceVariableValueLessThanOrEquals(name string, value any) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueLessThanOrEquals", name, value, domain.OpLessThanOrEqual)
}

// CaseInstanceVariableValueLike matches tasks with a case instance variable name whose value matches the pattern.
func (q *TaskQuery) CaseInstanceVariableValueLike(name, pattern string) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueLike", name, pattern, domain.OpLike)
}

// CaseInstanceVariableValueNotLike matches tasks with a case instance variable name whose value does not match the pattern.
func (q *TaskQuery) CaseInstanceVariableValueNotLike(name, pattern string) *TaskQuery {
	return q.caseInstanceVariable("CaseInstanceVariableValueNotLike", name, pattern, domain.OpNotLike)
}

// MatchVariableNamesIgnoreCase applies to predicates added before and after the call.
func (q *TaskQuery) MatchVariableNamesIgnoreCase() *TaskQuery {
	q.matchNamesIgnoreCase(&q.base)
	return q
}

// MatchVariableValuesIgnoreCase applies to string predicates added after the call.
func (q *TaskQuery) MatchVariableValuesIgnoreCase() *TaskQuery {
	q.matchValuesIgnoreCase(&q.base)
	return q
}

// Or starts an or-query. Or-queries cannot be executed remotely; a query
// using one fails validation.
func (q *TaskQuery) Or() *TaskQuery {
	if q.ok(nil) {
		q.orRequested = true
	}
	return q
}

// EndOr closes an or-query and otherwise has no effect.
func (q *TaskQuery) EndOr() *TaskQuery { return q }

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *TaskQuery) OrderBy(property string) *TaskQuery {
	q.orderBy(property)
	return q
}

// OrderByTaskID sorts by task id.
func (q *TaskQuery) OrderByTaskID() *TaskQuery { return q.OrderBy("id") }

// OrderByTaskName sorts by task name.
func (q *TaskQuery) OrderByTaskName() *TaskQuery { return q.OrderBy("name") }

// OrderByTaskNameCaseInsensitive sorts by task name case insensitive.
func (q *TaskQuery) OrderByTaskNameCaseInsensitive() *TaskQuery {
	return q.OrderBy("nameCaseInsensitive")
}

// OrderByTaskDescription sorts by task description.
func (q *TaskQuery) OrderByTaskDescription() *TaskQuery { return q.OrderBy("description") }

// OrderByTaskPriority sorts by task priority.
func (q *TaskQuery) OrderByTaskPriority() *TaskQuery { return q.OrderBy("priority") }

// OrderByTaskAssignee sorts by task assignee.
func (q *TaskQuery) OrderByTaskAssignee() *TaskQuery { return q.OrderBy("assignee") }

// OrderByTaskCreateTime sorts by task create time.
func (q *TaskQuery) OrderByTaskCreateTime() *TaskQuery { return q.OrderBy("created") }

// OrderByLastUpdated sorts by last updated.
func (q *TaskQuery) OrderByLastUpdated() *TaskQuery { return q.OrderBy("lastUpdated") }

// OrderByProcessInstanceID sorts by process instance id.
func (q *TaskQuery) OrderByProcessInstanceID() *TaskQuery { return q.OrderBy("instanceId") }

// OrderByCaseInstanceID sorts by case instance id.
func (q *TaskQuery) OrderByCaseInstanceID() *TaskQuery { return q.OrderBy("caseInstanceId") }

// OrderByExecutionID sorts by execution id.
func (q *TaskQuery) OrderByExecutionID() *TaskQuery { return q.OrderBy("executionId") }

// OrderByCaseExecutionID sorts by case execution id.
func (q *TaskQuery) OrderByCaseExecutionID() *TaskQuery { return q.OrderBy("caseExecutionId") }

// OrderByDueDate sorts by due date.
func (q *TaskQuery) OrderByDueDate() *TaskQuery { return q.OrderBy("dueDate") }

// OrderByFollowUpDate sorts by follow up date.
func (q *TaskQuery) OrderByFollowUpDate() *TaskQuery { return q.OrderBy("followUpDate") }

// OrderByTenantID sorts by tenant id.
func (q *TaskQuery) OrderByTenantID() *TaskQuery { return q.OrderBy("tenantId") }

// OrderByProcessVariable sorts by the value of the process variable name, compared as type t.
func (q *TaskQuery) OrderByProcessVariable(name string, t domain.ValueType) *TaskQuery {
	q.orderByVariable("OrderByProcessVariable", name, t, domain.RelationProcessInstance)
	return q
}

// OrderByExecutionVariable sorts by the value of the execution variable name, compared as type t.
func (q *TaskQuery) OrderByExecutionVariable(name string, t domain.ValueType) *TaskQuery {
	q.orderByVariable("OrderByExecutionVariable", name, t, domain.RelationExecution)
	return q
}

// OrderByTaskVariable sorts by the value of the task variable name, compared as type t.
func (q *TaskQuery) OrderByTaskVariable(name string, t domain.ValueType) *TaskQuery {
	q.orderByVariable("OrderByTaskVariable", name, t, domain.RelationTask)
	return q
}

// OrderByCaseExecutionVariable sorts by the value of the case execution variable name, compared as type t.
func (q *TaskQuery) OrderByCaseExecutionVariable(name string, t domain.ValueType) *TaskQuery {
	q.orderByVariable("OrderByCaseExecutionVariable", name, t, domain.RelationCaseExecution)
	return q
}

// OrderByCaseInstanceVariable sorts by the value of the case instance variable name, compared as type t.
func (q *TaskQuery) OrderByCaseInstanceVariable(name string, t domain.ValueType) *TaskQuery {
	q.orderByVariable("OrderByCaseInstanceVariable", name, t, domain.RelationCaseInstance)
	return q
}

// Asc sets the direction of the most recent ordering to ascending.
func (q *TaskQuery) Asc() *TaskQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *TaskQuery) Desc() *TaskQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *TaskQuery) validate() error {
	if err := q.base.validate(); err != nil {
		return err
	}
	if q.orRequested {
		return domain.ValidationError(q.kind, "or-Queries are not supported")
	}
	return nil
}

func (q *TaskQuery) expr(key string) *string {
	return wire.String(q.expressions[key])
}

func (q *TaskQuery) request(ctx context.Context) (wire.TaskQuery, error) {
	var req wire.TaskQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	followUpBefore := wire.TimeOf(q.followUpBefore)
	var followUpBeforeOrNotExistent *wire.Time
	if q.followUpNullAccepted {
		followUpBefore, followUpBeforeOrNotExistent = nil, followUpBefore
	}
	err := project(&req, func(dst *wire.TaskQuery, field string) error {
		var err error
		switch field {
		case "taskId":
			dst.TaskID = wire.String(q.taskID)
		case "taskIdIn":
			dst.TaskIDIn = q.taskIDIn
		case "processInstanceId":
			dst.ProcessInstanceID = wire.String(q.processInstanceID)
		case "processInstanceIdIn":
			dst.ProcessInstanceIDIn = q.processInstanceIDIn
		case "processInstanceBusinessKey":
			dst.ProcessInstanceBusinessKey = wire.String(q.businessKey)
		case "processInstanceBusinessKeyExpression":
			dst.ProcessInstanceBusinessKeyExpression = q.expr(exprBusinessKey)
		case "processInstanceBusinessKeyIn":
			dst.ProcessInstanceBusinessKeyIn = q.businessKeyIn
		case "processInstanceBusinessKeyLike":
			dst.ProcessInstanceBusinessKeyLike = wire.String(q.businessKeyLike)
		case "processInstanceBusinessKeyLikeExpression":
			dst.ProcessInstanceBusinessKeyLikeExpression = q.expr(exprBusinessKeyLike)
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.processDefinitionID)
		case "processDefinitionKey":
			dst.ProcessDefinitionKey = wire.String(q.processDefinitionKey)
		case "processDefinitionKeyIn":
			dst.ProcessDefinitionKeyIn = q.processDefinitionKeyIn
		case "processDefinitionName":
			dst.ProcessDefinitionName = wire.String(q.processDefinitionName)
		case "processDefinitionNameLike":
			dst.ProcessDefinitionNameLike = wire.String(q.processDefinitionNameLike)
		case "executionId":
			dst.ExecutionID = wire.String(q.executionID)
		case "caseInstanceId":
			dst.CaseInstanceID = wire.String(q.caseInstanceID)
		case "caseInstanceBusinessKey":
			dst.CaseInstanceBusinessKey = wire.String(q.caseInstanceBusinessKey)
		case "caseInstanceBusinessKeyLike":
			dst.CaseInstanceBusinessKeyLike = wire.String(q.caseInstanceBusinessKeyLike)
		case "caseDefinitionId":
			dst.CaseDefinitionID = wire.String(q.caseDefinitionID)
		case "caseDefinitionKey":
			dst.CaseDefinitionKey = wire.String(q.caseDefinitionKey)
		case "caseDefinitionName":
			dst.CaseDefinitionName = wire.String(q.caseDefinitionName)
		case "caseDefinitionNameLike":
			dst.CaseDefinitionNameLike = wire.String(q.caseDefinitionNameLike)
		case "caseExecutionId":
			dst.CaseExecutionID = wire.String(q.caseExecutionID)
		case "activityInstanceIdIn":
			dst.ActivityInstanceIDIn = q.activityInstanceIDIn
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "withoutTenantId":
			dst.WithoutTenantID = q.withoutTenant()
		case "assignee":
			dst.Assignee = wire.String(q.assignee)
		case "assigneeExpression":
			dst.AssigneeExpression = q.expr(exprAssignee)
		case "assigneeLike":
			dst.AssigneeLike = wire.String(q.assigneeLike)
		case "assigneeLikeExpression":
			dst.AssigneeLikeExpression = q.expr(exprAssigneeLike)
		case "assigneeIn":
			dst.AssigneeIn = q.assigneeIn
		case "assigneeNotIn":
			dst.AssigneeNotIn = q.assigneeNotIn
		case "owner":
			dst.Owner = wire.String(q.owner)
		case "ownerExpression":
			dst.OwnerExpression = q.expr(exprOwner)
		case "candidateGroup":
			dst.CandidateGroup = wire.String(q.candidateGroup)
		case "candidateGroupExpression":
			dst.CandidateGroupExpression = q.expr(exprCandidateGroup)
		case "candidateUser":
			dst.CandidateUser = wire.String(q.candidateUser)
		case "candidateUserExpression":
			dst.CandidateUserExpression = q.expr(exprCandidateUser)
		case "includeAssignedTasks":
			dst.IncludeAssignedTasks = wire.True(q.includeAssignedTasks)
		case "involvedUser":
			dst.InvolvedUser = wire.String(q.involvedUser)
		case "involvedUserExpression":
			dst.InvolvedUserExpression = q.expr(exprInvolvedUser)
		case "assigned":
			dst.Assigned = wire.True(q.assigned)
		case "unassigned":
			dst.Unassigned = wire.True(q.unassigned)
		case "taskDefinitionKey":
			dst.TaskDefinitionKey = wire.String(q.taskDefinitionKey)
		case "taskDefinitionKeyIn":
			dst.TaskDefinitionKeyIn = q.taskDefinitionKeyIn
		case "taskDefinitionKeyLike":
			dst.TaskDefinitionKeyLike = wire.String(q.taskDefinitionKeyLike)
		case "name":
			dst.Name = wire.String(q.name)
		case "nameNotEqual":
			dst.NameNotEqual = wire.String(q.nameNotEqual)
		case "nameLike":
			dst.NameLike = wire.String(q.nameLike)
		case "nameNotLike":
			dst.NameNotLike = wire.String(q.nameNotLike)
		case "description":
			dst.Description = wire.String(q.description)
		case "descriptionLike":
			dst.DescriptionLike = wire.String(q.descriptionLike)
		case "priority":
			dst.Priority = q.priority
		case "maxPriority":
			dst.MaxPriority = q.maxPriority
		case "minPriority":
			dst.MinPriority = q.minPriority
		case "dueDate":
			dst.DueDate = wire.TimeOf(q.dueDate)
		case "dueDateExpression":
			dst.DueDateExpression = q.expr(exprDueDate)
		case "dueAfter":
			dst.DueAfter = wire.TimeOf(q.dueAfter)
		case "dueAfterExpression":
			dst.DueAfterExpression = q.expr(exprDueAfter)
		case "dueBefore":
			dst.DueBefore = wire.TimeOf(q.dueBefore)
		case "dueBeforeExpression":
			dst.DueBeforeExpression = q.expr(exprDueBefore)
		case "withoutDueDate":
			dst.WithoutDueDate = wire.True(q.withoutDueDate)
		case "followUpDate":
			dst.FollowUpDate = wire.TimeOf(q.followUpDate)
		case "followUpDateExpression":
			dst.FollowUpDateExpression = q.expr(exprFollowUpDate)
		case "followUpAfter":
			dst.FollowUpAfter = wire.TimeOf(q.followUpAfter)
		case "followUpAfterExpression":
			dst.FollowUpAfterExpression = q.expr(exprFollowUpAfter)
		case "followUpBefore":
			dst.FollowUpBefore = followUpBefore
		case "followUpBeforeExpression":
			dst.FollowUpBeforeExpression = q.expr(exprFollowUpBefore)
		case "followUpBeforeOrNotExistent":
			dst.FollowUpBeforeOrNotExistent = followUpBeforeOrNotExistent
		case "followUpBeforeOrNotExistentExpression":
			dst.FollowUpBeforeOrNotExistentExpression = q.expr(exprFollowUpBeforeOrNotExistent)
		case "createdOn":
			dst.CreatedOn = wire.TimeOf(q.createdOn)
		case "createdOnExpression":
			dst.CreatedOnExpression = q.expr(exprCreatedOn)
		case "createdAfter":
			dst.CreatedAfter = wire.TimeOf(q.createdAfter)
		case "createdAfterExpression":
			dst.CreatedAfterExpression = q.expr(exprCreatedAfter)
		case "createdBefore":
			dst.CreatedBefore = wire.TimeOf(q.createdBefore)
		case "createdBeforeExpression":
			dst.CreatedBeforeExpression = q.expr(exprCreatedBefore)
		case "updatedAfter":
			dst.UpdatedAfter = wire.TimeOf(q.updatedAfter)
		case "updatedAfterExpression":
			dst.UpdatedAfterExpression = q.expr(exprUpdatedAfter)
		case "delegationState":
			dst.DelegationState = wire.String(string(q.delegationState))
		case "candidateGroups":
			dst.CandidateGroups = q.candidateGroups
		case "candidateGroupsExpression":
			dst.CandidateGroupsExpression = q.expr(exprCandidateGroupIn)
		case "withCandidateGroups":
			dst.WithCandidateGroups = wire.True(q.withCandidateGroups)
		case "withoutCandidateGroups":
			dst.WithoutCandidateGroups = wire.True(q.withoutCandidateGroups)
		case "withCandidateUsers":
			dst.WithCandidateUsers = wire.True(q.withCandidateUsers)
		case "withoutCandidateUsers":
			dst.WithoutCandidateUsers = wire.True(q.withoutCandidateUsers)
		case "active":
			dst.Active = wire.True(q.suspension == domain.SuspensionActive)
		case "suspended":
			dst.Suspended = wire.True(q.suspension == domain.SuspensionSuspended)
		case "taskVariables":
			dst.TaskVariables, err = q.params(q.kind, domain.ScopeTask)
		case "processVariables":
			dst.ProcessVariables, err = q.params(q.kind, domain.ScopeProcess)
		case "caseInstanceVariables":
			dst.CaseInstanceVariables, err = q.params(q.kind, domain.ScopeCaseInstance)
		case "variableNamesIgnoreCase":
			dst.VariableNamesIgnoreCase = wire.True(q.namesIgnoreCase)
		case "variableValuesIgnoreCase":
			dst.VariableValuesIgnoreCase = wire.True(q.valuesIgnoreCase)
		case "parentTaskId":
			dst.ParentTaskID = wire.String(q.parentTaskID)
		case "orQueries":
			dst.OrQueries = nil
		case "sorting":
			dst.Sorting = q.sortingList(ctx, taskSortKeys, taskVariableSortKeys)
		default:
			return unmapped(q.kind, field)
		}
		return err
	})
	return req, err
}
