package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// DeploymentQuery queries deployments.
type DeploymentQuery struct {
	base
	executor[wire.DeploymentQuery, wire.DeploymentRecord, domain.Deployment]

	deploymentID, name, nameLike string
	source                       string
	withoutSource                bool
	before, after                time.Time
	includeWithoutTenantID       bool
}

// NewDeploymentQuery returns an empty deployment query executed through endpoint.
func NewDeploymentQuery(endpoint Endpoint[wire.DeploymentQuery, wire.DeploymentRecord], opts ...Option) *DeploymentQuery {
	q := &DeploymentQuery{base: newBase("DeploymentQuery", opts)}
	q.executor = executor[wire.DeploymentQuery, wire.DeploymentRecord, domain.Deployment]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.Deployment,
	}
	return q
}

// DeploymentID filters by id.
func (q *DeploymentQuery) DeploymentID(id string) *DeploymentQuery {
	q.setString("DeploymentID", "deploymentId", &q.deploymentID, id)
	return q
}

// DeploymentName filters by name.
func (q *DeploymentQuery) DeploymentName(name string) *DeploymentQuery {
	q.setString("DeploymentName", "deploymentName", &q.name, name)
	return q
}

// DeploymentNameLike filters by name matching pattern, where % matches any characters.
func (q *DeploymentQuery) DeploymentNameLike(pattern string) *DeploymentQuery {
	q.setString("DeploymentNameLike", "deploymentNameLike", &q.nameLike, pattern)
	return q
}

// DeploymentSource filters by the source recorded at deployment time.
func (q *DeploymentQuery) DeploymentSource(source string) *DeploymentQuery {
	if q.ok(nil) && q.withoutSource {
		q.usage("DeploymentSource", "cannot set both source and withoutSource filters.")
		return q
	}
	q.setString("DeploymentSource", "source", &q.source, source)
	return q
}

// DeploymentWithoutSource selects deployments made without a source.
func (q *DeploymentQuery) DeploymentWithoutSource() *DeploymentQuery {
	if q.ok(nil) && q.source != "" {
		q.usage("DeploymentWithoutSource", "cannot set both source and withoutSource filters.")
		return q
	}
	q.setFlag(&q.withoutSource)
	return q
}

// DeploymentBefore restricts the query to deployments made before t.
func (q *DeploymentQuery) DeploymentBefore(t time.Time) *DeploymentQuery {
	q.setTime("DeploymentBefore", "before", &q.before, t)
	return q
}

// DeploymentAfter restricts the query to deployments made after t.
func (q *DeploymentQuery) DeploymentAfter(t time.Time) *DeploymentQuery {
	q.setTime("DeploymentAfter", "after", &q.after, t)
	return q
}

// TenantIDIn restricts the query to deployments whose tenant id is any of ids.
func (q *DeploymentQuery) TenantIDIn(ids ...string) *DeploymentQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to deployments without tenant id.
func (q *DeploymentQuery) WithoutTenantID() *DeploymentQuery {
	q.withoutTenantID()
	return q
}

// IncludeDeploymentsWithoutTenantID also returns deployments without tenant id when filtering by tenant.
func (q *DeploymentQuery) IncludeDeploymentsWithoutTenantID() *DeploymentQuery {
	q.setFlag(&q.includeWithoutTenantID)
	return q
}

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *DeploymentQuery) OrderBy(property string) *DeploymentQuery {
	q.orderBy(property)
	return q
}

// OrderByDeploymentID sorts by deployment id.
func (q *DeploymentQuery) OrderByDeploymentID() *DeploymentQuery { return q.OrderBy("id") }

// OrderByDeploymentName sorts by deployment name.
func (q *DeploymentQuery) OrderByDeploymentName() *DeploymentQuery { return q.OrderBy("name") }

// OrderByDeploymentTime sorts by deployment time.
func (q *DeploymentQuery) OrderByDeploymentTime() *DeploymentQuery {
	return q.OrderBy("deploymentTime")
}

// OrderByTenantID sorts by tenant id.
func (q *DeploymentQuery) OrderByTenantID() *DeploymentQuery { return q.OrderBy("tenantId") }

// Asc sets the direction of the most recent ordering to ascending.
func (q *DeploymentQuery) Asc() *DeploymentQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *DeploymentQuery) Desc() *DeploymentQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *DeploymentQuery) request(ctx context.Context) (wire.DeploymentQuery, error) {
	var req wire.DeploymentQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	sortBy, sortOrder := q.singleSort(ctx, deploymentSortKeys)
	err := project(&req, func(dst *wire.DeploymentQuery, field string) error {
		switch field {
		case "id":
			dst.ID = wire.String(q.deploymentID)
		case "name":
			dst.Name = wire.String(q.name)
		case "nameLike":
			dst.NameLike = wire.String(q.nameLike)
		case "source":
			dst.Source = wire.String(q.source)
		case "withoutSource":
			dst.WithoutSource = wire.True(q.withoutSource)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "withoutTenantId":
			dst.WithoutTenantID = q.withoutTenant()
		case "includeDeploymentsWithoutTenantId":
			dst.IncludeDeploymentsWithoutTenantID = wire.True(q.includeWithoutTenantID)
		case "before":
			dst.Before = wire.TimeOf(q.before)
		case "after":
			dst.After = wire.TimeOf(q.after)
		case "sortBy":
			dst.SortBy = sortBy
		case "sortOrder":
			dst.SortOrder = sortOrder
		default:
			return unmapped(q.kind, field)
		}
		return nil
	})
	return req, err
}
