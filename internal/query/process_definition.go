package query

import (
	"context"
	"time"

	"github.com/procrest/engine-client-go/internal/adapter"
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// ProcessDefinitionQuery queries deployed process definitions.
type ProcessDefinitionQuery struct {
	base
	executor[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord, domain.ProcessDefinition]

	id                                   string
	ids                                  []string
	name, nameLike                       string
	deploymentID                         string
	deployedAfter, deployedAt            time.Time
	key, keyLike                         string
	keys                                 []string
	category, categoryLike               string
	version                              *int
	latest                               bool
	resourceName, resourceNameLike       string
	startableBy                          string
	suspension                           domain.SuspensionState
	incidentID, incidentType             string
	incidentMessage, incidentMessageLike string
	includeWithoutTenantID               bool
	versionTag, versionTagLike           string
	withoutVersionTag                    bool
	startableInTasklist                  bool
	notStartableInTasklist               bool
}

// NewProcessDefinitionQuery returns an empty process definition query executed through endpoint.
func NewProcessDefinitionQuery(endpoint Endpoint[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord], opts ...Option) *ProcessDefinitionQuery {
	q := &ProcessDefinitionQuery{base: newBase("ProcessDefinitionQuery", opts)}
	q.executor = executor[wire.ProcessDefinitionQuery, wire.ProcessDefinitionRecord, domain.ProcessDefinition]{
		b: &q.base, endpoint: endpoint, request: q.request, adapt: adapter.ProcessDefinition,
	}
	return q
}

// ProcessDefinitionID filters by process definition id.
func (q *ProcessDefinitionQuery) ProcessDefinitionID(id string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionID", "processDefinitionId", &q.id, id)
	return q
}

// ProcessDefinitionIDIn restricts the query to process definitions whose process definition id is any of ids.
func (q *ProcessDefinitionQuery) ProcessDefinitionIDIn(ids ...string) *ProcessDefinitionQuery {
	q.setStrings("ProcessDefinitionIDIn", "ids", &q.ids, ids)
	return q
}

// ProcessDefinitionName filters by process definition name.
func (q *ProcessDefinitionQuery) ProcessDefinitionName(name string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionName", "processDefinitionName", &q.name, name)
	return q
}

// ProcessDefinitionNameLike filters by process definition name matching pattern, where % matches any characters.
func (q *ProcessDefinitionQuery) ProcessDefinitionNameLike(pattern string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionNameLike", "processDefinitionNameLike", &q.nameLike, pattern)
	return q
}

// DeploymentID filters by deployment id.
func (q *ProcessDefinitionQuery) DeploymentID(id string) *ProcessDefinitionQuery {
	q.setString("DeploymentID", "deploymentId", &q.deploymentID, id)
	return q
}

// DeployedAfter filters process definitions by deployed after t.
func (q *ProcessDefinitionQuery) DeployedAfter(t time.Time) *ProcessDefinitionQuery {
	q.setTime("DeployedAfter", "deployedAfter", &q.deployedAfter, t)
	return q
}

// DeployedAt filters process definitions by deployed at t.
func (q *ProcessDefinitionQuery) DeployedAt(t time.Time) *ProcessDefinitionQuery {
	q.setTime("DeployedAt", "deployedAt", &q.deployedAt, t)
	return q
}

// ProcessDefinitionKey filters by process definition key.
func (q *ProcessDefinitionQuery) ProcessDefinitionKey(key string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionKey", "processDefinitionKey", &q.key, key)
	return q
}

// ProcessDefinitionKeysIn restricts the query to process definitions whose process definition key is any of keys.
func (q *ProcessDefinitionQuery) ProcessDefinitionKeysIn(keys ...string) *ProcessDefinitionQuery {
	q.setStrings("ProcessDefinitionKeysIn", "keys", &q.keys, keys)
	return q
}

// ProcessDefinitionKeyLike filters by process definition key matching pattern, where % matches any characters.
func (q *ProcessDefinitionQuery) ProcessDefinitionKeyLike(pattern string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionKeyLike", "processDefinitionKeyLike", &q.keyLike, pattern)
	return q
}

// ProcessDefinitionCategory filters by process definition category.
func (q *ProcessDefinitionQuery) ProcessDefinitionCategory(category string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionCategory", "category", &q.category, category)
	return q
}

// ProcessDefinitionCategoryLike filters by process definition category matching pattern, where % matches any characters.
func (q *ProcessDefinitionQuery) ProcessDefinitionCategoryLike(pattern string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionCategoryLike", "categoryLike", &q.categoryLike, pattern)
	return q
}

// ProcessDefinitionVersion filters by version; versions start at 1.
func (q *ProcessDefinitionQuery) ProcessDefinitionVersion(version int) *ProcessDefinitionQuery {
	if !q.ok(nil) {
		return q
	}
	if version <= 0 {
		q.usage("ProcessDefinitionVersion", "version must be positive, got %d", version)
		return q
	}
	q.version = &version
	return q
}

// LatestVersion keeps only the latest version of each process definition key.
func (q *ProcessDefinitionQuery) LatestVersion() *ProcessDefinitionQuery {
	q.setFlag(&q.latest)
	return q
}

// ProcessDefinitionResourceName filters by process definition resource name.
func (q *ProcessDefinitionQuery) ProcessDefinitionResourceName(name string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionResourceName", "resourceName", &q.resourceName, name)
	return q
}

// ProcessDefinitionResourceNameLike filters by process definition resource name matching pattern, where % matches any characters.
func (q *ProcessDefinitionQuery) ProcessDefinitionResourceNameLike(pattern string) *ProcessDefinitionQuery {
	q.setString("ProcessDefinitionResourceNameLike", "resourceNameLike", &q.resourceNameLike, pattern)
	return q
}

// StartableByUser filters by startable by user.
func (q *ProcessDefinitionQuery) StartableByUser(userID string) *ProcessDefinitionQuery {
	q.setString("StartableByUser", "userId", &q.startableBy, userID)
	return q
}

// Active restricts the query to active process definitions.
func (q *ProcessDefinitionQuery) Active() *ProcessDefinitionQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionActive
	}
	return q
}

// Suspended restricts the query to suspended process definitions.
func (q *ProcessDefinitionQuery) Suspended() *ProcessDefinitionQuery {
	if q.ok(nil) {
		q.suspension = domain.SuspensionSuspended
	}
	return q
}

// IncidentID filters by incident id.
func (q *ProcessDefinitionQuery) IncidentID(id string) *ProcessDefinitionQuery {
	q.setString("IncidentID", "incidentId", &q.incidentID, id)
	return q
}

// IncidentType filters by incident type.
func (q *ProcessDefinitionQuery) IncidentType(incidentType string) *ProcessDefinitionQuery {
	q.setString("IncidentType", "incidentType", &q.incidentType, incidentType)
	return q
}

// IncidentMessage filters by incident message.
func (q *ProcessDefinitionQuery) IncidentMessage(message string) *ProcessDefinitionQuery {
	q.setString("IncidentMessage", "incidentMessage", &q.incidentMessage, message)
	return q
}

// IncidentMessageLike filters by incident message matching pattern, where % matches any characters.
func (q *ProcessDefinitionQuery) IncidentMessageLike(pattern string) *ProcessDefinitionQuery {
	q.setString("IncidentMessageLike", "incidentMessageLike", &q.incidentMessageLike, pattern)
	return q
}

// TenantIDIn restricts the query to process definitions whose tenant id is any of ids.
func (q *ProcessDefinitionQuery) TenantIDIn(ids ...string) *ProcessDefinitionQuery {
	q.tenantIDIn(ids)
	return q
}

// WithoutTenantID restricts the query to process definitions without tenant id.
func (q *ProcessDefinitionQuery) WithoutTenantID() *ProcessDefinitionQuery {
	q.withoutTenantID()
	return q
}

// IncludeProcessDefinitionsWithoutTenantID also returns process definitions without tenant id when filtering by tenant.
func (q *ProcessDefinitionQuery) IncludeProcessDefinitionsWithoutTenantID() *ProcessDefinitionQuery {
	q.setFlag(&q.includeWithoutTenantID)
	return q
}

// VersionTag filters by version tag.
func (q *ProcessDefinitionQuery) VersionTag(tag string) *ProcessDefinitionQuery {
	q.setString("VersionTag", "versionTag", &q.versionTag, tag)
	return q
}

// VersionTagLike filters by version tag matching pattern, where % matches any characters.
func (q *ProcessDefinitionQuery) VersionTagLike(pattern string) *ProcessDefinitionQuery {
	q.setString("VersionTagLike", "versionTagLike", &q.versionTagLike, pattern)
	return q
}

// WithoutVersionTag restricts the query to process definitions without version tag.
func (q *ProcessDefinitionQuery) WithoutVersionTag() *ProcessDefinitionQuery {
	q.setFlag(&q.withoutVersionTag)
	return q
}

// StartableInTasklist restricts the query to process definitions that are startable in tasklist.
func (q *ProcessDefinitionQuery) StartableInTasklist() *ProcessDefinitionQuery {
	q.setFlag(&q.startableInTasklist)
	return q
}

// NotStartableInTasklist restricts the query to process definitions that are not startable in tasklist.
func (q *ProcessDefinitionQuery) NotStartableInTasklist() *ProcessDefinitionQuery {
	q.setFlag(&q.notStartableInTasklist)
	return q
}

// OrderBy appends an ordering entry for an arbitrary property. Properties the
// engine cannot sort by are dropped with a warning when the query runs.
func (q *ProcessDefinitionQuery) OrderBy(property string) *ProcessDefinitionQuery {
	q.orderBy(property)
	return q
}

// OrderByProcessDefinitionCategory sorts by process definition category.
func (q *ProcessDefinitionQuery) OrderByProcessDefinitionCategory() *ProcessDefinitionQuery {
	return q.OrderBy("category")
}

// OrderByProcessDefinitionKey sorts by process definition key.
func (q *ProcessDefinitionQuery) OrderByProcessDefinitionKey() *ProcessDefinitionQuery {
	return q.OrderBy("key")
}

// OrderByProcessDefinitionID sorts by process definition id.
func (q *ProcessDefinitionQuery) OrderByProcessDefinitionID() *ProcessDefinitionQuery {
	return q.OrderBy("id")
}

// OrderByProcessDefinitionVersion sorts by process definition version.
func (q *ProcessDefinitionQuery) OrderByProcessDefinitionVersion() *ProcessDefinitionQuery {
	return q.OrderBy("version")
}

// OrderByProcessDefinitionName sorts by process definition name.
func (q *ProcessDefinitionQuery) OrderByProcessDefinitionName() *ProcessDefinitionQuery {
	return q.OrderBy("name")
}

// OrderByDeploymentID sorts by deployment id.
func (q *ProcessDefinitionQuery) OrderByDeploymentID() *ProcessDefinitionQuery {
	return q.OrderBy("deploymentId")
}

// OrderByDeploymentTime sorts by deployment time.
func (q *ProcessDefinitionQuery) OrderByDeploymentTime() *ProcessDefinitionQuery {
	return q.OrderBy("deployTime")
}

// OrderByTenantID sorts by tenant id.
func (q *ProcessDefinitionQuery) OrderByTenantID() *ProcessDefinitionQuery {
	return q.OrderBy("tenantId")
}

// OrderByVersionTag sorts by version tag.
func (q *ProcessDefinitionQuery) OrderByVersionTag() *ProcessDefinitionQuery {
	return q.OrderBy("versionTag")
}

// Asc sets the direction of the most recent ordering to ascending.
func (q *ProcessDefinitionQuery) Asc() *ProcessDefinitionQuery {
	q.direction("Asc", domain.SortAsc)
	return q
}

// Desc sets the direction of the most recent ordering to descending.
func (q *ProcessDefinitionQuery) Desc() *ProcessDefinitionQuery {
	q.direction("Desc", domain.SortDesc)
	return q
}

func (q *ProcessDefinitionQuery) request(ctx context.Context) (wire.ProcessDefinitionQuery, error) {
	var req wire.ProcessDefinitionQuery
	if err := q.validate(); err != nil {
		return req, err
	}
	sortBy, sortOrder := q.singleSort(ctx, processDefinitionSortKeys)
	err := project(&req, func(dst *wire.ProcessDefinitionQuery, field string) error {
		switch field {
		case "processDefinitionId":
			dst.ProcessDefinitionID = wire.String(q.id)
		case "processDefinitionIdIn":
			dst.ProcessDefinitionIDIn = q.ids
		case "name":
			dst.Name = wire.String(q.name)
		case "nameLike":
			dst.NameLike = wire.String(q.nameLike)
		case "deploymentId":
			dst.DeploymentID = wire.String(q.deploymentID)
		case "deployedAfter":
			dst.DeployedAfter = wire.TimeOf(q.deployedAfter)
		case "deployedAt":
			dst.DeployedAt = wire.TimeOf(q.deployedAt)
		case "key":
			dst.Key = wire.String(q.key)
		case "keysIn":
			dst.KeysIn = q.keys
		case "keyLike":
			dst.KeyLike = wire.String(q.keyLike)
		case "category":
			dst.Category = wire.String(q.category)
		case "categoryLike":
			dst.CategoryLike = wire.String(q.categoryLike)
		case "version":
			dst.Version = q.version
		case "latestVersion":
			dst.LatestVersion = wire.True(q.latest)
		case "resourceName":
			dst.ResourceName = wire.String(q.resourceName)
		case "resourceNameLike":
			dst.ResourceNameLike = wire.String(q.resourceNameLike)
		case "startableBy":
			dst.StartableBy = wire.String(q.startableBy)
		case "active":
			dst.Active = wire.True(q.suspension == domain.SuspensionActive)
		case "suspended":
			dst.Suspended = wire.True(q.suspension == domain.SuspensionSuspended)
		case "incidentId":
			dst.IncidentID = wire.String(q.incidentID)
		case "incidentType":
			dst.IncidentType = wire.String(q.incidentType)
		case "incidentMessage":
			dst.IncidentMessage = wire.String(q.incidentMessage)
		case "incidentMessageLike":
			dst.IncidentMessageLike = wire.String(q.incidentMessageLike)
		case "tenantIdIn":
			dst.TenantIDIn = q.tenantIDs
		case "withoutTenantId":
			dst.WithoutTenantID = q.withoutTenant()
		case "includeProcessDefinitionsWithoutTenantId":
			dst.IncludeProcessDefinitionsWithoutTenantID = wire.True(q.includeWithoutTenantID)
		case "versionTag":
			dst.VersionTag = wire.String(q.versionTag)
		case "versionTagLike":
			dst.VersionTagLike = wire.String(q.versionTagLike)
		case "withoutVersionTag":
			dst.WithoutVersionTag = wire.True(q.withoutVersionTag)
		case "startableInTasklist":
			dst.StartableInTasklist = wire.True(q.startableInTasklist)
		case "notStartableInTasklist":
			dst.NotStartableInTasklist = wire.True(q.notStartableInTasklist)
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
