package adapter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

func TestTaskFromRecord(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	task := Task(wire.TaskRecord{
		ID:              "t1",
		Name:            "Approve invoice",
		Assignee:        "kermit",
		Priority:        50,
		Created:         &wire.Time{Time: created},
		DelegationState: "PENDING",
		TenantID:        "acme",
		Suspended:       true,
	})

	assert.Equal(t, "t1", task.ID())
	assert.Equal(t, "Approve invoice", task.Name())
	assert.Equal(t, "kermit", task.Assignee())
	assert.Equal(t, 50, task.Priority())
	assert.True(t, created.Equal(task.CreateTime()))
	assert.True(t, task.DueDate().IsZero())
	assert.Equal(t, domain.DelegationPending, task.DelegationState())
	assert.Equal(t, "acme", task.TenantID())
	assert.True(t, task.IsSuspended())
}

func TestUnknownEnumValuesAreDropped(t *testing.T) {
	task := Task(wire.TaskRecord{ID: "t1", DelegationState: "SOMETHING"})
	assert.Empty(t, task.DelegationState())

	hpi := HistoricProcessInstance(wire.HistoricProcessInstanceRecord{ID: "h1", State: "UNKNOWN"})
	assert.Empty(t, hpi.State())

	hpi = HistoricProcessInstance(wire.HistoricProcessInstanceRecord{ID: "h1", State: "COMPLETED"})
	assert.Equal(t, domain.HistoricCompleted, hpi.State())
}

func TestProcessDefinitionHistoryTimeToLive(t *testing.T) {
	def := ProcessDefinition(wire.ProcessDefinitionRecord{ID: "invoice:1:abc", Key: "invoice", Version: 1})
	_, ok := def.HistoryTimeToLive()
	assert.False(t, ok)

	ttl := 30
	def = ProcessDefinition(wire.ProcessDefinitionRecord{ID: "invoice:2:def", HistoryTimeToLive: &ttl})
	got, ok := def.HistoryTimeToLive()
	require.True(t, ok)
	assert.Equal(t, 30, got)

	ttl = 99
	got, _ = def.HistoryTimeToLive()
	assert.Equal(t, 30, got, "bean must not alias the record")
}

func TestViewsMarshalAsBeans(t *testing.T) {
	pi := ProcessInstance(wire.ProcessInstanceRecord{ID: "p1", BusinessKey: "order-7"})

	data, err := json.Marshal(pi)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1","businessKey":"order-7","ended":false,"suspended":false}`, string(data))
}
