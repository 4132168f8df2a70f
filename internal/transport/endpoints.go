package transport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/procrest/engine-client-go/internal/ratelimit"
	"github.com/procrest/engine-client-go/internal/wire"
)

// BodyEndpoint posts the request as JSON: POST /<resource> and POST /<resource>/count.
type BodyEndpoint[Req, Rec any] struct {
	c    *Client
	path string
}

// List fetches one page of records.
func (e BodyEndpoint[Req, Rec]) List(ctx context.Context, req Req, firstResult, maxResults int) ([]Rec, error) {
	var out []Rec
	err := e.c.do(ctx, call{
		class:  ratelimit.CallList,
		method: http.MethodPost,
		path:   e.path,
		query:  pageParams(firstResult, maxResults),
		body:   req,
	}, &out)
	return out, err
}

// Count returns the number of matching records.
func (e BodyEndpoint[Req, Rec]) Count(ctx context.Context, req Req) (int64, error) {
	var out wire.CountResult
	err := e.c.do(ctx, call{
		class:  ratelimit.CallCount,
		method: http.MethodPost,
		path:   e.path + "/count",
		body:   req,
	}, &out)
	return out.Count, err
}

// ParamEndpoint sends the request as query parameters: GET /<resource> and GET /<resource>/count.
type ParamEndpoint[Req, Rec any] struct {
	c    *Client
	path string
}

func (e ParamEndpoint[Req, Rec]) List(ctx context.Context, req Req, firstResult, maxResults int) ([]Rec, error) {
	values, err := wire.Values(req)
	if err != nil {
		return nil, fmt.Errorf("transport: GET %s: %w", e.path, err)
	}
	for k, v := range pageParams(firstResult, maxResults) {
		values[k] = v
	}
	var out []Rec
	err = e.c.do(ctx, call{class: ratelimit.CallList, method: http.MethodGet, path: e.path, query: values}, &out)
	return out, err
}

func (e ParamEndpoint[Req, Rec]) Count(ctx context.Context, req Req) (int64, error) {
	values, err := wire.Values(req)
	if err != nil {
		return 0, fmt.Errorf("transport: GET %s/count: %w", e.path, err)
	}
	var out wire.CountResult
	err = e.c.do(ctx, call{class: ratelimit.CallCount, method: http.MethodGet, path: e.path + "/count", query: values}, &out)
	return out.Count, err
}

func (c *Client) Tasks() BodyEndpoint[wire.TaskQuery, wire.TaskRecord] {
	return BodyEndpoint[wire.TaskQuery, wire.TaskRecord]{c: c, path: "/task"}
}

func (c *Client) ProcessInstances() BodyEndpoint[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord] {
	return BodyEndpoint[wire.ProcessInstanceQuery, wire.ProcessInstanceRecord]{c: c, path: "/process-instance"}
}

func (c *Client) Executions() BodyEndpoint[wire.ExecutionQuery, wire.ExecutionRecord] {
	return BodyEndpoint[wire.ExecutionQuery, wire.ExecutionRecord]{c: c, path: "/execution"}
}

func (c *Client) ExternalTasks() BodyEndpoint[wire.ExternalTaskQuery, wire.ExternalTaskRecord] {
	return BodyEndpoint[wire.ExternalTaskQuery, wire.ExternalTaskRecord]{c: c, path: "/external-task"}
}

func (c *Client) HistoricProcessInstances() BodyEndpoint[wire.HistoricProcessInstanceQuery, wire.HistoricProcessInstanceRecord] {
	return BodyEndpoint[wire.HistoricProcessInstanceQuery, wire.HistoricProcessInstanceRecord]{c: c, path: "/history/process-instance"}
}

func (c *Client) Incidents() ParamEndpoint[wire.IncidentQuery, wire.IncidentRecord] {
	return ParamEndpoint[wire.IncidentQuery, wire.IncidentRecord]{c: c, path: "/incident"}
}

func (c *Client) EventSubscriptions() ParamEndpoint[wire.EventSubscriptionQuery, wire.EventSubscriptionRecord] {
	return ParamEndpoint[wire.EventSubscriptionQuery, wire.EventSubscriptionRecord]{c: c, path: "/event-subscription"}
}

func (c *Client) Deployments() ParamEndpoint[wire.DeploymentQuery, wire.DeploymentRecord] {
	return ParamEndpoint[wire.DeploymentQuery, wire.DeploymentRecord]{c: c, path: "/deployment"}
}

func (c *Client) ProcessDefinitions() ParamEndpoint[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord] {
	return ParamEndpoint[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord]{c: c, path: "/process-definition"}
}
