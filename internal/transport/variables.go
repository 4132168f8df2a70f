package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/ratelimit"
	"github.com/procrest/engine-client-go/internal/variables"
	"github.com/procrest/engine-client-go/internal/wire"
)

// ProcessInstanceVariables fetches the variables visible from a process
// instance. JSON object values are returned parsed.
func (c *Client) ProcessInstanceVariables(ctx context.Context, processInstanceID string) (map[string]variables.TypedValue, error) {
	const op = "ProcessInstanceVariables"
	if err := domain.RequireString(op, "processInstanceId", processInstanceID); err != nil {
		return nil, err
	}
	var out map[string]wire.VariableValue
	err := c.do(ctx, call{
		class:  ratelimit.CallVariables,
		method: http.MethodGet,
		path:   "/process-instance/" + url.PathEscape(processInstanceID) + "/variables",
		query:  url.Values{"deserializeValues": {strconv.FormatBool(c.deserializeValues)}},
	}, &out)
	if err != nil {
		return nil, err
	}
	vars, err := variables.DecodeMany(out, true)
	if err != nil {
		return nil, fmt.Errorf("transport: %s %s: %w", op, processInstanceID, err)
	}
	return vars, nil
}
