package query

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func newTaskQuery(opts ...Option) (*TaskQuery, *stubEndpoint[wire.TaskQuery, wire.TaskRecord]) {
	ep := &stubEndpoint[wire.TaskQuery, wire.TaskRecord]{}
	return NewTaskQuery(ep, append([]Option{quiet}, opts...)...), ep
}

func TestOrderingWithoutDirectionFailsValidation(t *testing.T) {
	q, ep := newTaskQuery()
	q.OrderByTaskName()

	require.NoError(t, q.Err())
	_, err := q.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "sort direction has to be set for each ordering property")

	_, err = q.Count(context.Background())
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, ep.calls(), "invalid query must not reach the endpoint")
}

func TestDirectionTwiceIsUsageError(t *testing.T) {
	q, _ := newTaskQuery()
	q.OrderByTaskName().Asc().Desc()

	err := q.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Contains(t, err.Error(), "sort direction cannot be set twice for same property")
	assert.Contains(t, err.Error(), "TaskQuery.Desc")
}

func TestDirectionWithoutOrderingIsUsageError(t *testing.T) {
	q, _ := newTaskQuery()
	q.Asc()
	assert.ErrorIs(t, q.Err(), domain.ErrUsage)
}

func TestOrderingsKeepCallOrder(t *testing.T) {
	q, _ := newTaskQuery()
	q.OrderByTaskCreateTime().Desc().OrderByProcessVariable("region", domain.TypeString).Asc()

	require.NoError(t, q.Err())
	assert.Equal(t, []Ordering{
		{Property: "created", Direction: domain.SortDesc},
		{Property: "region", Direction: domain.SortAsc, Type: domain.TypeString, Relation: domain.RelationProcessInstance},
	}, q.Orderings())
}

func TestCandidateUserAndGroupAreExclusive(t *testing.T) {
	t.Run("user then group", func(t *testing.T) {
		q, _ := newTaskQuery()
		q.TaskCandidateUser("kermit").TaskCandidateGroup("sales")
		require.ErrorIs(t, q.Err(), domain.ErrUsage)
		assert.Contains(t, q.Err().Error(), "cannot set both candidateGroup and candidateUser")
	})
	t.Run("group then user", func(t *testing.T) {
		q, _ := newTaskQuery()
		q.TaskCandidateGroup("sales").TaskCandidateUser("kermit")
		require.ErrorIs(t, q.Err(), domain.ErrUsage)
		assert.Contains(t, q.Err().Error(), "cannot set both candidateUser and candidateGroup")
	})
	t.Run("group in then user expression", func(t *testing.T) {
		q, _ := newTaskQuery()
		q.TaskCandidateGroupIn("sales", "ops").TaskCandidateUserExpression("${currentUser()}")
		require.ErrorIs(t, q.Err(), domain.ErrUsage)
		assert.Contains(t, q.Err().Error(), "cannot set both candidateUser and candidateGroupIn")
	})
}

func TestFirstUsageErrorSticks(t *testing.T) {
	q, ep := newTaskQuery()
	q.TaskCandidateUser("kermit").TaskCandidateGroup("sales").TaskName("")

	err := q.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TaskQuery.TaskCandidateGroup")

	_, _, err = q.SingleResult(context.Background())
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Zero(t, ep.calls())
}

func TestMissingArgumentIsUsageError(t *testing.T) {
	q, _ := newTaskQuery()
	q.TaskAssignee("")
	require.ErrorIs(t, q.Err(), domain.ErrUsage)
	assert.Contains(t, q.Err().Error(), "assignee is required")
}

func TestIncludeAssignedTasksNeedsCandidateFilter(t *testing.T) {
	q, _ := newTaskQuery()
	q.IncludeAssignedTasks()
	assert.ErrorIs(t, q.Err(), domain.ErrUsage)

	q, _ = newTaskQuery()
	q.WithCandidateUsers().IncludeAssignedTasks()
	require.NoError(t, q.Err())
	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wire.Ptr(true), req.IncludeAssignedTasks)
}

func TestWithoutDueDateExcludesDueFilters(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	q, _ := newTaskQuery()
	q.DueBefore(due).WithoutDueDate()
	require.ErrorIs(t, q.Err(), domain.ErrUsage)
	assert.Contains(t, q.Err().Error(), "dueBefore")

	q, _ = newTaskQuery()
	q.WithoutDueDate().DueDateExpression("${now()}")
	assert.ErrorIs(t, q.Err(), domain.ErrUsage)
}

func TestTenantFilterExclusivity(t *testing.T) {
	q, _ := newTaskQuery()
	q.TenantIDIn("a").WithoutTenantID()
	assert.ErrorIs(t, q.Err(), domain.ErrUsage)

	q, _ = newTaskQuery()
	q.WithoutTenantID()
	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wire.Ptr(true), req.WithoutTenantID)
	assert.Nil(t, req.TenantIDIn)
}

func TestNamesIgnoreCaseAppliesRetroactively(t *testing.T) {
	q, _ := newTaskQuery()
	q.TaskVariableValueEquals("Amount", 10).
		MatchVariableNamesIgnoreCase().
		ProcessVariableValueLike("Region", "em%")

	vars := q.Variables()
	require.Len(t, vars, 2)
	for _, v := range vars {
		assert.True(t, v.NameIgnoreCase, v.Name)
	}

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wire.Ptr(true), req.VariableNamesIgnoreCase)
	assert.Nil(t, req.VariableValuesIgnoreCase)
}

func TestValuesIgnoreCaseOnlyForText(t *testing.T) {
	q, _ := newTaskQuery()
	q.TaskVariableValueEquals("before", "X").
		MatchVariableValuesIgnoreCase().
		TaskVariableValueEquals("amount", 5).
		TaskVariableValueEquals("flag", true).
		TaskVariableValueEquals("name", "Kermit")

	vars := q.Variables()
	require.Len(t, vars, 4)
	assert.False(t, vars[0].ValueIgnoreCase, "added before the flag")
	assert.False(t, vars[1].ValueIgnoreCase, "integer value")
	assert.False(t, vars[2].ValueIgnoreCase, "boolean value")
	assert.True(t, vars[3].ValueIgnoreCase)
}

func TestVariablePredicatesGoToTheirScope(t *testing.T) {
	q, _ := newTaskQuery()
	q.TaskVariableValueEquals("a", "1").
		ProcessVariableValueGreaterThan("b", 2).
		CaseInstanceVariableValueNotLike("c", "x%")

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []wire.VariableQueryParameter{{Name: "a", Operator: "eq", Value: "1"}}, req.TaskVariables)
	require.Len(t, req.ProcessVariables, 1)
	assert.Equal(t, "gt", req.ProcessVariables[0].Operator)
	require.Len(t, req.CaseInstanceVariables, 1)
	assert.Equal(t, "notLike", req.CaseInstanceVariables[0].Operator)
}

func TestExpressionReplacesValue(t *testing.T) {
	q, _ := newTaskQuery()
	q.TaskAssigneeExpression("${currentUser()}").TaskAssignee("demo")

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wire.Ptr("demo"), req.Assignee)
	assert.Nil(t, req.AssigneeExpression)
}

func TestFollowUpBeforeOrNotExistent(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	q, _ := newTaskQuery()
	q.FollowUpBeforeOrNotExistent(at)
	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Nil(t, req.FollowUpBefore)
	require.NotNil(t, req.FollowUpBeforeOrNotExistent)
	assert.True(t, at.Equal(req.FollowUpBeforeOrNotExistent.Time))

	q.FollowUpBefore(at)
	req, err = q.Request(context.Background())
	require.NoError(t, err)
	assert.Nil(t, req.FollowUpBeforeOrNotExistent)
	require.NotNil(t, req.FollowUpBefore)
}

func TestOrQueriesAreRejected(t *testing.T) {
	q, ep := newTaskQuery()
	q.Or().TaskName("a").EndOr()

	_, err := q.List(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "or-Queries are not supported")
	assert.Zero(t, ep.calls())
}

func TestUnsupportedSortKeyIsDropped(t *testing.T) {
	obs := &recordingObserver{}
	q, _ := newTaskQuery(WithObserver(obs))
	q.OrderBy("bogus").Asc().OrderByTaskPriority().Desc()

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []wire.Sorting{{SortBy: "priority", SortOrder: "desc"}}, req.Sorting)
	assert.Equal(t, []string{"TaskQuery.bogus"}, obs.dropped)
}

func TestVariableSortingCarriesParameters(t *testing.T) {
	q, _ := newTaskQuery()
	q.OrderByTaskVariable("amount", domain.TypeInteger).Desc()

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []wire.Sorting{{
		SortBy:     "taskVariable",
		SortOrder:  "desc",
		Parameters: &wire.SortingParameters{Variable: "amount", Type: "Integer"},
	}}, req.Sorting)
}

func TestCandidateGroupScenario(t *testing.T) {
	q, ep := newTaskQuery()
	ep.records = []wire.TaskRecord{{ID: "t1", Name: "Approve invoice"}, {ID: "t2", Name: "Review"}}

	tasks, err := q.TaskCandidateGroup("sales").OrderByTaskName().Asc().List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID())
	assert.Equal(t, "Approve invoice", tasks[0].Name())

	assert.Equal(t, wire.Ptr("sales"), ep.lastReq.CandidateGroup)
	assert.Equal(t, []wire.Sorting{{SortBy: "name", SortOrder: "asc"}}, ep.lastReq.Sorting)
	assert.Equal(t, 0, ep.firstResult)
	assert.Equal(t, domain.MaxResults, ep.maxResults)
}

func TestSingleResult(t *testing.T) {
	tests := []struct {
		name    string
		records []wire.TaskRecord
		wantOK  bool
		wantErr bool
	}{
		{name: "none", records: nil},
		{name: "one", records: []wire.TaskRecord{{ID: "t1"}}, wantOK: true},
		{name: "two", records: []wire.TaskRecord{{ID: "t1"}, {ID: "t2"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ep := newTaskQuery()
			ep.records = tt.records

			task, ok, err := q.SingleResult(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrCardinality)
				assert.Contains(t, err.Error(), "2")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, "t1", task.ID())
			} else {
				assert.Nil(t, task)
			}
		})
	}
}

func TestListPagePassesPaging(t *testing.T) {
	q, ep := newTaskQuery()
	_, err := q.ListPage(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, ep.firstResult)
	assert.Equal(t, 5, ep.maxResults)

	_, err = q.ListPage(context.Background(), -1, 5)
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Equal(t, 1, ep.calls())
}

func TestRemoteErrorPassesThrough(t *testing.T) {
	obs := &recordingObserver{}
	q, ep := newTaskQuery(WithObserver(obs))
	boom := domain.RemoteError("GET /task", errors.New("connection refused"))
	ep.err = boom

	_, err := q.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Same(t, boom, err)

	require.Len(t, obs.executed, 1)
	assert.Equal(t, "TaskQuery", obs.executed[0].kind)
	assert.Equal(t, "list", obs.executed[0].call)
	assert.Equal(t, boom, obs.executed[0].err)
}

func TestListIDs(t *testing.T) {
	q, ep := newTaskQuery()
	ep.records = []wire.TaskRecord{{ID: "a"}, {ID: "b"}}
	ids, err := q.ListIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestUnlimitedListMatchesList(t *testing.T) {
	q, ep := newTaskQuery()
	ep.records = []wire.TaskRecord{{ID: "a"}}
	all, err := q.UnlimitedList(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, domain.MaxResults, ep.maxResults)
}

func TestProcessInstanceCountByTenant(t *testing.T) {
	obs := &recordingObserver{}
	ep := &stubEndpoint[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord]{count: 3}
	q := NewProcessInstanceQuery(ep, quiet, WithObserver(obs))

	n, err := q.TenantIDIn("t1", "t2").Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, []string{"t1", "t2"}, ep.lastReq.TenantIDIn)
	assert.Equal(t, 1, ep.countCalls)
	assert.Zero(t, ep.listCalls)
	require.Len(t, obs.executed, 1)
	assert.Equal(t, "count", obs.executed[0].call)
}

func TestProcessInstanceHierarchyExclusivity(t *testing.T) {
	ep := &stubEndpoint[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord]{}

	q := NewProcessInstanceQuery(ep, quiet).RootProcessInstances().SuperProcessInstanceID("p1")
	require.ErrorIs(t, q.Err(), domain.ErrUsage)
	assert.Contains(t, q.Err().Error(), "rootProcessInstances and superProcessInstanceId")

	q = NewProcessInstanceQuery(ep, quiet).SubProcessInstanceID("p2").LeafProcessInstances()
	require.ErrorIs(t, q.Err(), domain.ErrUsage)
	assert.Contains(t, q.Err().Error(), "leafProcessInstances and subProcessInstanceId")
}

func TestProcessInstanceIDIsMergedIntoIDs(t *testing.T) {
	ep := &stubEndpoint[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord]{}
	q := NewProcessInstanceQuery(ep, quiet).ProcessInstanceIDs("a", "b").ProcessInstanceID("c")

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, req.ProcessInstanceIDs)
}

func TestExecutionAllowsOneEventName(t *testing.T) {
	ep := &stubEndpoint[wire.ExecutionQuery, wire.ExecutionRecord]{}
	q := NewExecutionQuery(ep, quiet).SignalEventSubscriptionName("a").SignalEventSubscriptionName("b")

	require.NoError(t, q.Err())
	_, err := q.Request(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Only one signal name")
}

func TestHistoricStartDateOnSpansTheDay(t *testing.T) {
	ep := &stubEndpoint[wire.HistoricProcessInstanceQuery, wire.HistoricProcessInstanceRecord]{}
	day := time.Date(2024, 2, 29, 15, 30, 0, 0, time.UTC)

	req, err := NewHistoricProcessInstanceQuery(ep, quiet).StartDateOn(day).Request(context.Background())
	require.NoError(t, err)
	require.NotNil(t, req.StartedAfter)
	require.NotNil(t, req.StartedBefore)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), req.StartedAfter.Time)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), req.StartedBefore.Time)
}

func TestDeploymentSourceExclusivity(t *testing.T) {
	ep := &stubEndpoint[wire.DeploymentQuery, wire.DeploymentRecord]{}
	q := NewDeploymentQuery(ep, quiet).DeploymentSource("modeler").DeploymentWithoutSource()
	require.ErrorIs(t, q.Err(), domain.ErrUsage)
	assert.Contains(t, q.Err().Error(), "cannot set both source and withoutSource filters.")
}

func TestProcessDefinitionVersionMustBePositive(t *testing.T) {
	ep := &stubEndpoint[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord]{}
	q := NewProcessDefinitionQuery(ep, quiet).ProcessDefinitionVersion(0)
	assert.ErrorIs(t, q.Err(), domain.ErrUsage)
}

func TestParamKindsSortByFirstOrderingOnly(t *testing.T) {
	ep := &stubEndpoint[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord]{}
	q := NewProcessDefinitionQuery(ep, quiet).
		OrderByProcessDefinitionKey().Asc().
		OrderByProcessDefinitionVersion().Desc()

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wire.Ptr("key"), req.SortBy)
	assert.Equal(t, wire.Ptr("asc"), req.SortOrder)
}

func TestParamKindsDropUnknownSortKey(t *testing.T) {
	obs := &recordingObserver{}
	ep := &stubEndpoint[wire.IncidentQuery, wire.IncidentRecord]{}
	q := NewIncidentQuery(ep, quiet, WithObserver(obs)).OrderBy("severity").Desc()

	req, err := q.Request(context.Background())
	require.NoError(t, err)
	assert.Nil(t, req.SortBy)
	assert.Nil(t, req.SortOrder)
	assert.Equal(t, []string{"IncidentQuery.severity"}, obs.dropped)
}
