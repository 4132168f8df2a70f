package remote

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/config"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/testutil"
	"github.com/procrest/engine-client-go/internal/transport"
)

func newEngine(t *testing.T, opts ...query.Option) (*Engine, *testutil.FakeEngine) {
	t.Helper()
	fake := testutil.NewFixtureEngine(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := transport.New(transport.Options{
		BaseURL:       fake.BaseURL(),
		ErrorDecoding: transport.DefaultErrorDecoding(),
		HTTPClient:    fake.Client(),
		Logger:        logger,
	})
	require.NoError(t, err)
	return New(client, append([]query.Option{query.WithLogger(logger)}, opts...)...), fake
}

type countingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *countingObserver) QueryExecuted(_ context.Context, kind, call string, _ time.Duration, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, kind+"."+call)
}

func (o *countingObserver) SortKeyDropped(context.Context, string, string) {}

func TestTaskQueryThroughEngine(t *testing.T) {
	engine, fake := newEngine(t)

	tasks, err := engine.Tasks().CreateTaskQuery().
		TaskAssignee("demo").
		OrderByTaskPriority().Desc().
		List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Approve Invoice", tasks[0].Name())
	assert.Equal(t, domain.DelegationPending, tasks[1].DelegationState())

	last := fake.Last(t)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, testutil.RESTRoot+"/task", last.Path)
	assert.JSONEq(t, `{"assignee":"demo","sorting":[{"sortBy":"priority","sortOrder":"desc"}]}`, string(last.Body))
}

func TestRepositoryLatestDefinitions(t *testing.T) {
	engine, fake := newEngine(t)

	defs, err := engine.Repository().CreateProcessDefinitionQuery().
		ProcessDefinitionKey("invoice").
		LatestVersion().
		ListPage(context.Background(), 0, 10)
	require.NoError(t, err)
	require.NotEmpty(t, defs)
	assert.Equal(t, "Invoice Receipt", defs[0].Name())
	assert.Equal(t, 2, defs[0].Version())

	q := fake.Last(t).Query
	assert.Equal(t, "invoice", q.Get("key"))
	assert.Equal(t, "true", q.Get("latestVersion"))
	assert.Equal(t, "10", q.Get("maxResults"))
}

func TestRuntimeCountAndSingleResult(t *testing.T) {
	obs := &countingObserver{}
	engine, _ := newEngine(t, query.WithObserver(obs))

	n, err := engine.Runtime().CreateProcessInstanceQuery().TenantIDIn("acme").Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	incident, ok, err := engine.Runtime().CreateIncidentQuery().
		IncidentType("failedJob").
		SingleResult(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "archiveInvoice", incident.ActivityID())

	_, _, err = engine.Runtime().CreateProcessInstanceQuery().SingleResult(context.Background())
	assert.ErrorIs(t, err, domain.ErrCardinality)

	assert.Equal(t, []string{
		"ProcessInstanceQuery.count",
		"IncidentQuery.list",
		"ProcessInstanceQuery.list",
	}, obs.calls)
}

func TestExternalTasksThroughEngine(t *testing.T) {
	engine, _ := newEngine(t)

	tasks, err := engine.ExternalTasks().CreateExternalTaskQuery().
		TopicName("creditor-notification").
		Locked().
		List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "worker-7", tasks[0].WorkerID())
	retries, ok := tasks[0].Retries()
	require.True(t, ok)
	assert.Equal(t, 3, retries)
}

func TestWithAddsOptions(t *testing.T) {
	engine, _ := newEngine(t)
	obs := &countingObserver{}

	_, err := engine.With(query.WithObserver(obs)).Tasks().CreateTaskQuery().Count(context.Background())
	require.NoError(t, err)
	_, err = engine.Tasks().CreateTaskQuery().Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"TaskQuery.count"}, obs.calls)
}

func TestRuntimeVariables(t *testing.T) {
	engine, _ := newEngine(t)

	vars, err := engine.Runtime().Variables(context.Background(), testutil.FixtureProcessInstanceID)
	require.NoError(t, err)
	assert.Equal(t, "Great Pizza for Everyone Inc.", vars["creditor"].Value)

	_, err = engine.Runtime().Variables(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRemote)
}

func TestHistoryQueryUsesHistoryResource(t *testing.T) {
	engine, fake := newEngine(t)
	fake.Respond(http.MethodPost, testutil.RESTRoot+"/history/process-instance/count", http.StatusOK, map[string]int{"count": 5})

	n, err := engine.History().CreateHistoricProcessInstanceQuery().Finished().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.JSONEq(t, `{"finished":true}`, string(fake.Last(t).Body))
}

func TestStatsCountsInParallel(t *testing.T) {
	engine, fake := newEngine(t)

	stats, err := engine.Stats(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, Stats{
		ProcessDefinitions:     2,
		ActiveProcessInstances: 2,
		OpenTasks:              2,
		OpenIncidents:          1,
		ExternalTasks:          1,
	}, stats)

	reqs := fake.Requests()
	require.Len(t, reqs, 5)
	for _, r := range reqs {
		if r.Method == http.MethodGet {
			assert.Equal(t, "acme", r.Query.Get("tenantIdIn"), r.Path)
			continue
		}
		var body map[string]any
		require.NoError(t, r.JSON(&body))
		assert.Equal(t, []any{"acme"}, body["tenantIdIn"], r.Path)
	}
}

func TestStatsFailsWhenOneCountFails(t *testing.T) {
	engine, fake := newEngine(t)
	fake.Fail(http.MethodGet, testutil.RESTRoot+"/incident/count", http.StatusInternalServerError,
		"ProcessEngineException", "database unavailable")

	_, err := engine.Stats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Contains(t, err.Error(), "count incidents")
}

func TestDialFromConfig(t *testing.T) {
	fake := testutil.NewFixtureEngine(t)
	obs := &countingObserver{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine, err := Dial(config.Config{
		BaseURL:       fake.BaseURL(),
		Timeout:       5 * time.Second,
		ErrorDecoding: transport.DefaultErrorDecoding(),
	}, logger, query.WithObserver(obs))
	require.NoError(t, err)

	n, err := engine.Runtime().CreateIncidentQuery().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, []string{"IncidentQuery.count"}, obs.calls)

	_, err = Dial(config.Config{BaseURL: "://nope"}, logger)
	assert.Error(t, err)
}
