package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/ratelimit"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

var (
	errNoTenant = errors.New("token carries no tenant")
	errNotFound = errors.New("not found")
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProcessDefinitions(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := r.URL.Query()
	latest, err := parseFlag(params.Get("latest"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "latest: "+err.Error())
		return
	}

	s.query(w, r, "process-definitions", func(ctx context.Context, tenants []string) (any, error) {
		q := s.engine.Repository().CreateProcessDefinitionQuery()
		if v := params.Get("nameLike"); v != "" {
			q.ProcessDefinitionNameLike(v)
		}
		if v := params.Get("key"); v != "" {
			q.ProcessDefinitionKey(v)
		}
		if latest {
			q.LatestVersion()
		}
		if len(tenants) > 0 {
			q.TenantIDIn(tenants...)
		}
		q.OrderByProcessDefinitionKey().Asc()
		return q.ListPage(ctx, p.first, p.max)
	})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := r.URL.Query()

	s.query(w, r, "tasks", func(ctx context.Context, tenants []string) (any, error) {
		q := s.engine.Tasks().CreateTaskQuery()
		if v := params.Get("assignee"); v != "" {
			q.TaskAssignee(v)
		}
		if v := params.Get("candidateGroup"); v != "" {
			q.TaskCandidateGroup(v)
		}
		if v := params.Get("processInstanceId"); v != "" {
			q.ProcessInstanceID(v)
		}
		if len(tenants) > 0 {
			q.TenantIDIn(tenants...)
		}
		q.OrderByTaskCreateTime().Desc()
		return q.ListPage(ctx, p.first, p.max)
	})
}

func (s *Server) handleProcessInstances(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := r.URL.Query()

	s.query(w, r, "process-instances", func(ctx context.Context, tenants []string) (any, error) {
		q := s.engine.Runtime().CreateProcessInstanceQuery()
		if v := params.Get("definitionKey"); v != "" {
			q.ProcessDefinitionKey(v)
		}
		if v := params.Get("businessKey"); v != "" {
			q.ProcessInstanceBusinessKey(v)
		}
		if len(tenants) > 0 {
			q.TenantIDIn(tenants...)
		}
		q.OrderByProcessInstanceID().Asc()
		return q.ListPage(ctx, p.first, p.max)
	})
}

func (s *Server) handleCountProcessInstances(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	s.query(w, r, "process-instances/count", func(ctx context.Context, tenants []string) (any, error) {
		q := s.engine.Runtime().CreateProcessInstanceQuery()
		if v := params.Get("definitionKey"); v != "" {
			q.ProcessDefinitionKey(v)
		}
		if v := params.Get("businessKey"); v != "" {
			q.ProcessInstanceBusinessKey(v)
		}
		if len(tenants) > 0 {
			q.TenantIDIn(tenants...)
		}
		n, err := q.Count(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]int64{"count": n}, nil
	})
}

type variableResponse struct {
	Type      domain.ValueType `json:"type"`
	Value     any              `json:"value"`
	ValueInfo map[string]any   `json:"valueInfo,omitempty"`
}

func (s *Server) handleVariables(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.query(w, r, "variables", func(ctx context.Context, tenants []string) (any, error) {
		if len(tenants) > 0 {
			n, err := s.engine.Runtime().CreateProcessInstanceQuery().
				ProcessInstanceID(id).
				TenantIDIn(tenants...).
				Count(ctx)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, fmt.Errorf("process instance %s: %w", id, errNotFound)
			}
		}
		vars, err := s.engine.Runtime().Variables(ctx, id)
		if err != nil {
			return nil, err
		}
		out := make(map[string]variableResponse, len(vars))
		for name, v := range vars {
			out[name] = variableResponse{Type: v.Type, Value: v.Value, ValueInfo: v.ValueInfo}
		}
		return out, nil
	})
}

func (s *Server) handleIncidents(w http.ResponseWriter, r *http.Request) {
	p, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params := r.URL.Query()

	s.query(w, r, "incidents", func(ctx context.Context, tenants []string) (any, error) {
		q := s.engine.Runtime().CreateIncidentQuery()
		if v := params.Get("processInstanceId"); v != "" {
			q.ProcessInstanceID(v)
		}
		if v := params.Get("type"); v != "" {
			q.IncidentType(v)
		}
		if len(tenants) > 0 {
			q.TenantIDIn(tenants...)
		}
		q.OrderByIncidentTimestamp().Desc()
		return q.ListPage(ctx, p.first, p.max)
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.query(w, r, "stats", func(ctx context.Context, tenants []string) (any, error) {
		return s.engine.Stats(ctx, tenants...)
	})
}

// query runs fn within the caller's tenant scope and query budget and
// writes its result as JSON.
func (s *Server) query(w http.ResponseWriter, r *http.Request, route string, fn func(context.Context, []string) (any, error)) {
	var tenants []string
	if s.scoped {
		tenants = TenantsFromContext(r.Context())
		if len(tenants) == 0 {
			writeError(w, http.StatusForbidden, errNoTenant.Error())
			return
		}
	}
	scope := strings.Join(tenants, ",")
	if err := s.budget.Take(scope, route); err != nil {
		s.writeQueryError(w, r, route, err)
		return
	}
	if s.budget.Enabled() {
		w.Header().Set("X-Query-Budget-Remaining", strconv.Itoa(s.budget.Remaining(scope, route)))
	}
	result, err := fn(r.Context(), tenants)
	if err != nil {
		s.writeQueryError(w, r, route, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeQueryError(w http.ResponseWriter, r *http.Request, route string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "query failed", "route", route, "status", status, "error", err)
	} else {
		s.logger.DebugContext(r.Context(), "query rejected", "route", route, "status", status, "error", err)
	}
	writeError(w, status, err.Error())
}

// statusFor maps the query error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ratelimit.ErrBudgetExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUsage), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRemote):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

type page struct {
	first, max int
}

// parsePage reads first and max. Negative values are left for the query to
// reject.
func parsePage(r *http.Request) (page, error) {
	p := page{first: 0, max: defaultPageSize}
	params := r.URL.Query()
	if v := params.Get("first"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page{}, fmt.Errorf("first: invalid number %q", v)
		}
		p.first = n
	}
	if v := params.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return page{}, fmt.Errorf("max: invalid number %q", v)
		}
		p.max = min(n, maxPageSize)
	}
	return p, nil
}

func parseFlag(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
