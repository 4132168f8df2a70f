package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/procrest/engine-client-go/internal/testutil"
)

func run(t *testing.T, args ...string) (string, *testutil.FakeEngine, error) {
	t.Helper()
	fake := testutil.NewFixtureEngine(t)
	t.Setenv("ENGINE_BASE_URL", fake.BaseURL())
	t.Setenv("ENGINE_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), fake, err
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()
	for _, path := range [][]string{
		{"definitions"},
		{"tasks"},
		{"incidents"},
		{"instances", "count"},
		{"stats"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	output := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "table", output.DefValue)
}

func TestInvalidOutput(t *testing.T) {
	_, fake, err := run(t, "stats", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output "xml"`)
	assert.Empty(t, fake.Requests())
}

func TestDefinitionsTable(t *testing.T) {
	out, fake, err := run(t, "definitions", "--name-like", "%Invoice%", "--latest")
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "Invoice Receipt")
	assert.Contains(t, out, "ReviewInvoice")

	q := fake.Last(t).Query
	assert.Equal(t, "%Invoice%", q.Get("nameLike"))
	assert.Equal(t, "true", q.Get("latestVersion"))
	assert.Equal(t, "100", q.Get("maxResults"))
}

func TestTasksJSON(t *testing.T) {
	out, fake, err := run(t, "tasks", "--assignee", "demo", "--candidate-group", "accounting", "-o", "json", "--max", "5")
	require.NoError(t, err)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Approve Invoice", tasks[0]["name"])

	last := fake.Last(t)
	assert.Equal(t, "5", last.Query.Get("maxResults"))
	assert.JSONEq(t,
		`{"assignee":"demo","candidateGroup":"accounting","sorting":[{"sortBy":"created","sortOrder":"desc"}]}`,
		string(last.Body))
}

func TestIncidentsYAML(t *testing.T) {
	out, fake, err := run(t, "incidents", "--process-instance", "d4c3b2a1-2046-11e7-8f94-34f39ab71d4e", "--output", "yaml")
	require.NoError(t, err)

	var incidents []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &incidents))
	require.Len(t, incidents, 1)
	assert.Equal(t, "failedJob", incidents[0]["incidentType"])
	assert.Equal(t, "d4c3b2a1-2046-11e7-8f94-34f39ab71d4e", fake.Last(t).Query.Get("processInstanceId"))
}

func TestInstancesCount(t *testing.T) {
	out, fake, err := run(t, "instances", "count", "--key", "invoice", "--tenant", "acme", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":2}`, out)
	assert.JSONEq(t, `{"processDefinitionKey":"invoice","tenantIdIn":["acme"]}`, string(fake.Last(t).Body))
}

func TestStatsTable(t *testing.T) {
	out, fake, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "open incidents")
	assert.Contains(t, out, "active process instances")
	assert.Len(t, fake.Requests(), 5)
}

func TestRemoteErrorIsReturned(t *testing.T) {
	fake := testutil.NewFixtureEngine(t)
	fake.Fail(http.MethodPost, testutil.RESTRoot+"/task", http.StatusInternalServerError,
		"ProcessEngineException", "database unavailable")
	t.Setenv("ENGINE_BASE_URL", fake.BaseURL())
	t.Setenv("ENGINE_LOG_LEVEL", "error")

	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"tasks"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}
