package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/api"
	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/ratelimit"
	"github.com/procrest/engine-client-go/internal/remote"
	"github.com/procrest/engine-client-go/internal/testutil"
	"github.com/procrest/engine-client-go/internal/transport"
)

func newTestServer(t *testing.T, opts api.Options) (*httptest.Server, *testutil.FakeEngine) {
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

	if opts.Logger == nil {
		opts.Logger = logger
	}
	srv, err := api.New(context.Background(), remote.New(client, query.WithLogger(logger)), opts)
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts, fake
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{})

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/v1/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestListProcessDefinitions(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{})

	var defs []map[string]any
	resp := getJSON(t, ts.URL+"/api/v1/process-definitions?key=invoice&latest=true", &defs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, defs, 2)
	assert.Equal(t, "invoice", defs[0]["key"])
	assert.Equal(t, float64(2), defs[0]["version"])

	q := fake.Last(t).Query
	assert.Equal(t, "invoice", q.Get("key"))
	assert.Equal(t, "true", q.Get("latestVersion"))
	assert.Equal(t, "key", q.Get("sortBy"))
	assert.Equal(t, "asc", q.Get("sortOrder"))
	assert.Equal(t, "0", q.Get("firstResult"))
	assert.Equal(t, "100", q.Get("maxResults"))
}

func TestListTasks(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{})

	var tasks []map[string]any
	resp := getJSON(t, ts.URL+"/api/v1/tasks?candidateGroup=accounting&first=10&max=5000", &tasks)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Approve Invoice", tasks[0]["name"])

	last := fake.Last(t)
	assert.Equal(t, "10", last.Query.Get("firstResult"))
	assert.Equal(t, "1000", last.Query.Get("maxResults"))
	assert.JSONEq(t, `{"candidateGroup":"accounting","sorting":[{"sortBy":"created","sortOrder":"desc"}]}`, string(last.Body))
}

func TestBadRequests(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{})

	for _, path := range []string{
		"/api/v1/tasks?first=-1",
		"/api/v1/tasks?max=lots",
		"/api/v1/process-definitions?latest=maybe",
		"/api/v1/incidents?first=x",
	} {
		var body map[string]string
		resp := getJSON(t, ts.URL+path, &body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.NotEmpty(t, body["error"], path)
	}
	assert.Empty(t, fake.Requests())
}

func TestCountProcessInstances(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{})

	var body map[string]int64
	resp := getJSON(t, ts.URL+"/api/v1/process-instances/count?definitionKey=invoice", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), body["count"])
	assert.JSONEq(t, `{"processDefinitionKey":"invoice"}`, string(fake.Last(t).Body))
}

func TestListProcessInstances(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{})

	var instances []map[string]any
	resp := getJSON(t, ts.URL+"/api/v1/process-instances?businessKey=INV-1001", &instances)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, instances, 2)
}

func TestListIncidents(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{})

	var incidents []map[string]any
	resp := getJSON(t, ts.URL+"/api/v1/incidents?type=failedJob", &incidents)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, incidents, 1)
	assert.Equal(t, "failedJob", incidents[0]["incidentType"])
	assert.Equal(t, "failedJob", fake.Last(t).Query.Get("incidentType"))
}

func TestProcessInstanceVariables(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{})

	var vars map[string]struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	}
	resp := getJSON(t, ts.URL+"/api/v1/process-instances/"+testutil.FixtureProcessInstanceID+"/variables", &vars)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Great Pizza for Everyone Inc.", vars["creditor"].Value)
	assert.Equal(t, map[string]any{"pages": float64(2), "archived": false}, vars["invoiceDocument"].Value)
}

func TestStats(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{})

	var stats remote.Stats
	resp := getJSON(t, ts.URL+"/api/v1/stats", &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), stats.OpenTasks)
	assert.Equal(t, int64(1), stats.OpenIncidents)
}

func TestRemoteErrorIsBadGateway(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{})
	fake.Fail(http.MethodPost, testutil.RESTRoot+"/task", http.StatusInternalServerError,
		"ProcessEngineException", "database unavailable")

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/v1/tasks", &body)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body["error"], "database unavailable")
}

func TestQueryBudget(t *testing.T) {
	ts, fake := newTestServer(t, api.Options{Budget: ratelimit.NewQueryBudget(1, time.Hour)})

	resp := getJSON(t, ts.URL+"/api/v1/incidents", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-Query-Budget-Remaining"))
	resp = getJSON(t, ts.URL+"/api/v1/incidents", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Len(t, fake.Requests(), 1)

	// budgets are per route
	resp = getJSON(t, ts.URL+"/api/v1/tasks", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{})

	resp := getJSON(t, ts.URL+"/api/v1/health", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "trace-me")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "trace-me", resp.Header.Get("X-Request-ID"))
}

func TestCORSHeaders(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{CORSOrigins: []string{"https://ops.example.com"}})

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/tasks", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	resp := preflight("https://ops.example.com")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://ops.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", resp.Header.Get("Vary"))

	resp = preflight("https://evil.example.com")
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	ts, _ := newTestServer(t, api.Options{})

	resp := getJSON(t, ts.URL+"/api/v1/health", nil)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
