package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"slices"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// ErrorDecoding controls how error responses are turned into EngineErrors.
type ErrorDecoding struct {
	Enabled bool

	// HTTPCodes lists the statuses whose body is decoded. Others produce a
	// plain status error.
	HTTPCodes []int

	// WrapExceptions returns decoded engine errors wrapped in a *domain.Error
	// of kind remote. Without it the *EngineError is returned as is.
	WrapExceptions bool
}

// DefaultErrorDecoding decodes 400 and 500 responses and wraps them.
func DefaultErrorDecoding() ErrorDecoding {
	return ErrorDecoding{Enabled: true, HTTPCodes: []int{400, 500}, WrapExceptions: true}
}

// EngineError is a failure reported by the engine in its {type, message, code} body.
type EngineError struct {
	Op      string
	Status  int
	Type    string
	Message string
	Code    int
}

func (e *EngineError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("engine %s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("engine %s: status %d: %s: %s", e.Op, e.Status, e.Type, e.Message)
}

// Is makes every EngineError match domain.ErrRemote.
func (e *EngineError) Is(target error) bool {
	return target == domain.ErrRemote
}

// qualifiedMessage matches "org.example.SomeException: text".
var qualifiedMessage = regexp.MustCompile(`^((?:[a-zA-Z_$][a-zA-Z\d_$]*\.)*[a-zA-Z_$][a-zA-Z\d_$]*): (.*)$`)

// parseQualifiedMessage splits a "type: message" string. ok is false when s
// has no type prefix.
func parseQualifiedMessage(s string) (typ, msg string, ok bool) {
	m := qualifiedMessage.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func (c *Client) remote(op string, err error) error {
	return domain.RemoteError(op, err)
}

func (c *Client) decodeError(op string, status int, body []byte) error {
	if !c.errors.Enabled || !slices.Contains(c.errors.HTTPCodes, status) {
		return c.remote(op, fmt.Errorf("unexpected status %d", status))
	}

	engineErr := &EngineError{Op: op, Status: status}
	var exc wire.ExceptionBody
	if err := json.Unmarshal(body, &exc); err != nil || (exc.Type == "" && exc.Message == "") {
		engineErr.Message = fmt.Sprintf("error during remote engine invocation of %s: %s", op, http.StatusText(status))
	} else {
		engineErr.Type, engineErr.Message = exc.Type, exc.Message
		if exc.Code != nil {
			engineErr.Code = *exc.Code
		}
		if engineErr.Type == "" {
			if typ, msg, ok := parseQualifiedMessage(exc.Message); ok {
				engineErr.Type, engineErr.Message = typ, msg
			}
		}
	}

	c.logger.Debug("engine error", "op", op, "status", status, "type", engineErr.Type)
	if c.errors.WrapExceptions {
		return c.remote(op, engineErr)
	}
	return engineErr
}
