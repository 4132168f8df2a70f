package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/query"
	"github.com/procrest/engine-client-go/internal/remote"
	"github.com/procrest/engine-client-go/internal/testutil"
	"github.com/procrest/engine-client-go/internal/transport"
)

func newEngine(t *testing.T) (*remote.Engine, *testutil.FakeEngine) {
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
	return remote.New(client, query.WithLogger(logger)), fake
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRegisterToolsListsAllTools(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v1"}, nil)
	RegisterTools(server, engine)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"list_process_definitions",
		"list_tasks",
		"count_process_instances",
		"list_incidents",
		"list_external_tasks",
		"get_process_instance_variables",
	}, names)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_tasks",
		Arguments: map[string]any{"assignee": "demo"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Approve Invoice")
}

func TestListProcessDefinitionsTool(t *testing.T) {
	engine, fake := newEngine(t)

	res, _, err := listProcessDefinitionsHandler(engine)(context.Background(), nil, listProcessDefinitionsInput{
		NameLike:   "Invoice%",
		LatestOnly: true,
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var defs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &defs))
	require.Len(t, defs, 2)
	assert.Equal(t, "invoice", defs[0]["key"])

	q := fake.Last(t).Query
	assert.Equal(t, "Invoice%", q.Get("nameLike"))
	assert.Equal(t, "true", q.Get("latestVersion"))
	assert.Equal(t, "50", q.Get("maxResults"))
}

func TestListTasksTool(t *testing.T) {
	engine, fake := newEngine(t)

	res, _, err := listTasksHandler(engine)(context.Background(), nil, listTasksInput{
		MaxResults:     5,
		CandidateGroup: "accounting",
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "\n  {")

	last := fake.Last(t)
	assert.Equal(t, "5", last.Query.Get("maxResults"))
	assert.JSONEq(t, `{"candidateGroup":"accounting","sorting":[{"sortBy":"created","sortOrder":"desc"}]}`, string(last.Body))
}

func TestMaxResultsValidation(t *testing.T) {
	engine, fake := newEngine(t)

	for _, n := range []int{-1, maxMaxResults + 1} {
		res, _, err := listIncidentsHandler(engine)(context.Background(), nil, listIncidentsInput{
			MaxResults: n,
		})
		require.NoError(t, err)
		assert.True(t, res.IsError, n)
	}
	assert.Empty(t, fake.Requests())
}

func TestCountProcessInstancesTool(t *testing.T) {
	engine, fake := newEngine(t)
	handler := countProcessInstancesHandler(engine)

	res, _, err := handler(context.Background(), nil, countProcessInstancesInput{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "process_definition_key or business_key is required", resultText(t, res))
	assert.Empty(t, fake.Requests())

	res, _, err = handler(context.Background(), nil, countProcessInstancesInput{
		ProcessDefinitionKey: "invoice",
		ActiveOnly:           true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":2}`, resultText(t, res))
	assert.JSONEq(t, `{"processDefinitionKey":"invoice","active":true}`, string(fake.Last(t).Body))
}

func TestListIncidentsTool(t *testing.T) {
	engine, fake := newEngine(t)

	res, _, err := listIncidentsHandler(engine)(context.Background(), nil, listIncidentsInput{
		IncidentType: "failedJob",
	})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "archiveInvoice")

	q := fake.Last(t).Query
	assert.Equal(t, "failedJob", q.Get("incidentType"))
	assert.Equal(t, "incidentTimestamp", q.Get("sortBy"))
}

func TestListExternalTasksTool(t *testing.T) {
	engine, fake := newEngine(t)

	res, _, err := listExternalTasksHandler(engine)(context.Background(), nil, listExternalTasksInput{
		TopicName:  "creditor-notification",
		LockedOnly: true,
	})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "worker-7")
	assert.JSONEq(t,
		`{"topicName":"creditor-notification","locked":true,"sorting":[{"sortBy":"id","sortOrder":"asc"}]}`,
		string(fake.Last(t).Body))
}

func TestGetVariablesTool(t *testing.T) {
	engine, _ := newEngine(t)
	handler := getVariablesHandler(engine)

	res, _, err := handler(context.Background(), nil, processInstanceInput{})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, _, err = handler(context.Background(), nil, processInstanceInput{
		ProcessInstanceID: testutil.FixtureProcessInstanceID,
	})
	require.NoError(t, err)
	var vars map[string]struct {
		Type  domain.ValueType `json:"type"`
		Value any              `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &vars))
	assert.Equal(t, "Great Pizza for Everyone Inc.", vars["creditor"].Value)
}

func TestRemoteFailureIsToolError(t *testing.T) {
	engine, fake := newEngine(t)
	fake.Fail(http.MethodPost, testutil.RESTRoot+"/task", http.StatusInternalServerError,
		"ProcessEngineException", "database unavailable")

	_, _, err := listTasksHandler(engine)(context.Background(), nil, listTasksInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Contains(t, err.Error(), "list_tasks")
}
