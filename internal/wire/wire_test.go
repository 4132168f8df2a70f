package wire

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNamesFollowsJSONTags(t *testing.T) {
	t.Parallel()

	type shape struct {
		A        *string `json:"alpha,omitempty"`
		B        []int   `json:"beta"`
		Skipped  string  `json:"-"`
		Untagged string
	}

	assert.Equal(t, []string{"alpha", "beta"}, FieldNames[shape]())
	// cached result is stable
	assert.Equal(t, []string{"alpha", "beta"}, FieldNames[shape]())
}

func TestFieldNamesSkipsUnexportedFields(t *testing.T) {
	t.Parallel()

	type shape struct {
		hidden  string
		Visible string `json:"visible"`
	}

	assert.Equal(t, []string{"visible"}, FieldNames[shape]())
	assert.Empty(t, shape{}.hidden)
}

func TestParamShapesTagEveryField(t *testing.T) {
	t.Parallel()

	for _, rt := range []reflect.Type{
		reflect.TypeFor[IncidentQuery](),
		reflect.TypeFor[EventSubscriptionQuery](),
		reflect.TypeFor[DeploymentQuery](),
		reflect.TypeFor[ProcessDefinitionQuery](),
	} {
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			urlTag := f.Tag.Get("url")
			urlName, opts, _ := strings.Cut(urlTag, ",")
			assert.Equal(t, jsonName, urlName, "%s.%s", rt.Name(), f.Name)
			assert.Contains(t, opts, "omitempty", "%s.%s", rt.Name(), f.Name)
			if f.Type.Kind() == reflect.Slice {
				assert.Contains(t, opts, "comma", "%s.%s", rt.Name(), f.Name)
			}
		}
	}
}

func TestFieldNamesCoversRequestShapes(t *testing.T) {
	t.Parallel()

	assert.Contains(t, FieldNames[TaskQuery](), "candidateGroupExpression")
	assert.Contains(t, FieldNames[ProcessInstanceQuery](), "processDefinitionWithoutTenantId")
	assert.Contains(t, FieldNames[IncidentQuery](), "sortOrder")
	assert.NotContains(t, FieldNames[IncidentQuery](), "sorting")
}

func TestValuesEncodesQueryParameters(t *testing.T) {
	t.Parallel()

	after := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	req := ProcessDefinitionQuery{
		KeysIn:        []string{"invoice", "order"},
		NameLike:      String("%pay%"),
		Version:       Ptr(3),
		LatestVersion: True(true),
		Suspended:     True(false),
		DeployedAfter: TimeOf(after),
		SortBy:        String("version"),
		SortOrder:     String("desc"),
	}

	v, err := Values(&req)
	require.NoError(t, err)

	assert.Equal(t, "invoice,order", v.Get("keysIn"))
	assert.Equal(t, "%pay%", v.Get("nameLike"))
	assert.Equal(t, "3", v.Get("version"))
	assert.Equal(t, "true", v.Get("latestVersion"))
	assert.Equal(t, "2024-01-02T03:04:05.000+0000", v.Get("deployedAfter"))
	assert.Equal(t, "version", v.Get("sortBy"))
	assert.Equal(t, "desc", v.Get("sortOrder"))
	assert.False(t, v.Has("suspended"))
	assert.False(t, v.Has("tenantIdIn"))
	assert.Len(t, v, 7)
}

func TestValuesRejectsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := Values([]string{"x"})
	assert.ErrorContains(t, err, "cannot encode")
}

func TestValuesEncodesIncidentBounds(t *testing.T) {
	t.Parallel()

	before := time.Date(2024, 5, 6, 7, 8, 9, 10e6, time.FixedZone("", 2*60*60))
	v, err := Values(IncidentQuery{
		IncidentTimestampBefore: TimeOf(before),
		ProcessDefinitionKeyIn:  []string{"invoice"},
		TenantIDIn:              []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-06T07:08:09.010+0200", v.Get("incidentTimestampBefore"))
	assert.Equal(t, "invoice", v.Get("processDefinitionKeyIn"))
	assert.Len(t, v, 2)

	v, err = Values((*IncidentQuery)(nil))
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestTimeJSON(t *testing.T) {
	t.Parallel()

	type record struct {
		At  *Time `json:"at,omitempty"`
		Nil *Time `json:"nil"`
	}

	var r record
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2023-06-30T08:15:00.123+0200","nil":null}`), &r))
	require.NotNil(t, r.At)
	assert.Nil(t, r.Nil)
	assert.Equal(t, time.Date(2023, 6, 30, 6, 15, 0, 123e6, time.UTC), r.At.UTC())

	out, err := json.Marshal(record{At: r.At})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2023-06-30T08:15:00.123+0200","nil":null}`, string(out))
}

func TestParseTimeAcceptsRFC3339(t *testing.T) {
	t.Parallel()

	got, err := ParseTime("2023-06-30T08:15:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year())

	_, err = ParseTime("30.06.2023")
	assert.Error(t, err)

	var tm Time
	assert.Error(t, tm.UnmarshalJSON([]byte(`12`)))
}

func TestOptionalHelpers(t *testing.T) {
	t.Parallel()

	assert.Nil(t, String(""))
	assert.Equal(t, "x", *String("x"))
	assert.Nil(t, True(false))
	assert.True(t, *True(true))
	assert.Nil(t, TimeOf(time.Time{}))
	assert.True(t, (*Time)(nil).Std().IsZero())
}
