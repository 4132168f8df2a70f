package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"usage", UsageError("TaskQuery.TaskCandidateGroup", "cannot set both candidateGroup and candidateUser"), ErrUsage},
		{"validation", ValidationError("TaskQuery.List", "sort direction has to be set for each ordering property"), ErrValidation},
		{"configuration", ConfigurationError("project", "foo", "no mapping for wire field %q", "foo"), ErrConfiguration},
		{"remote", RemoteError("POST /task", errors.New("connection refused")), ErrRemote},
		{"cardinality", CardinalityError("TaskQuery.SingleResult", 2), ErrCardinality},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			for _, other := range []error{ErrUsage, ErrValidation, ErrConfiguration, ErrRemote, ErrCardinality} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := UsageError("TaskQuery.TaskCandidateUser", "cannot set both candidateUser and candidateGroup")
	assert.Equal(t, "TaskQuery.TaskCandidateUser: cannot set both candidateUser and candidateGroup", err.Error())

	card := CardinalityError("", 2)
	assert.Equal(t, "Query return 2 results instead of expected maximum 1", card.Error())
	assert.Equal(t, 2, card.Context["count"])

	cause := errors.New("boom")
	remote := RemoteError("GET /incident", cause)
	assert.Equal(t, "GET /incident: boom", remote.Error())
	assert.ErrorIs(t, remote, cause)
}

func TestErrorIsByKindStruct(t *testing.T) {
	err := UsageError("HistoricProcessInstanceQuery.RootProcessInstances", "x")
	assert.ErrorIs(t, err, &Error{Kind: KindUsage})
	assert.ErrorIs(t, err, &Error{Kind: KindUsage, Op: "HistoricProcessInstanceQuery.RootProcessInstances"})
	assert.NotErrorIs(t, err, &Error{Kind: KindUsage, Op: "other"})
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindValidation, KindOf(fmt.Errorf("wrap: %w", ValidationError("q", "bad"))))
	require.Equal(t, "", KindOf(errors.New("plain")))
}
