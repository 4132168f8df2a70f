package remote

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Stats is a dashboard snapshot of the engine.
type Stats struct {
	ProcessDefinitions     int64 `json:"processDefinitions"`
	ActiveProcessInstances int64 `json:"activeProcessInstances"`
	OpenTasks              int64 `json:"openTasks"`
	OpenIncidents          int64 `json:"openIncidents"`
	ExternalTasks          int64 `json:"externalTasks"`
}

// Stats runs the dashboard counts in parallel. A non-empty tenantIDs limits
// every count to those tenants. The first failing count cancels the others.
func (e *Engine) Stats(ctx context.Context, tenantIDs ...string) (Stats, error) {
	var s Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := e.Repository().CreateProcessDefinitionQuery().LatestVersion()
		if len(tenantIDs) > 0 {
			q.TenantIDIn(tenantIDs...)
		}
		n, err := q.Count(ctx)
		s.ProcessDefinitions = n
		return wrapCount("process definitions", err)
	})
	g.Go(func() error {
		q := e.Runtime().CreateProcessInstanceQuery().Active()
		if len(tenantIDs) > 0 {
			q.TenantIDIn(tenantIDs...)
		}
		n, err := q.Count(ctx)
		s.ActiveProcessInstances = n
		return wrapCount("process instances", err)
	})
	g.Go(func() error {
		q := e.Tasks().CreateTaskQuery()
		if len(tenantIDs) > 0 {
			q.TenantIDIn(tenantIDs...)
		}
		n, err := q.Count(ctx)
		s.OpenTasks = n
		return wrapCount("tasks", err)
	})
	g.Go(func() error {
		q := e.Runtime().CreateIncidentQuery()
		if len(tenantIDs) > 0 {
			q.TenantIDIn(tenantIDs...)
		}
		n, err := q.Count(ctx)
		s.OpenIncidents = n
		return wrapCount("incidents", err)
	})
	g.Go(func() error {
		q := e.ExternalTasks().CreateExternalTaskQuery()
		if len(tenantIDs) > 0 {
			q.TenantIDIn(tenantIDs...)
		}
		n, err := q.Count(ctx)
		s.ExternalTasks = n
		return wrapCount("external tasks", err)
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return s, nil
}

func wrapCount(what string, err error) error {
	if err != nil {
		return fmt.Errorf("remote: count %s: %w", what, err)
	}
	return nil
}
