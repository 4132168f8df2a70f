package domain

import "testing"

func TestSuspensionStateValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		state SuspensionState
		valid bool
	}{
		{name: "active", state: SuspensionActive, valid: true},
		{name: "suspended", state: SuspensionSuspended, valid: true},
		{name: "bogus", state: SuspensionState("bogus"), valid: false},
		{name: "empty", state: SuspensionState(""), valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.state.Valid(); got != tt.valid {
				t.Errorf("SuspensionState(%q).Valid() = %v, want %v", tt.state, got, tt.valid)
			}
		})
	}
}

func TestSortDirectionValid(t *testing.T) {
	t.Parallel()
	if SortUnset.Valid() {
		t.Error("unset direction must not be valid")
	}
	if !SortAsc.Valid() || !SortDesc.Valid() {
		t.Error("asc and desc must be valid")
	}
}

func TestOperatorWireNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		op   Operator
		want string
	}{
		{OpEquals, "eq"},
		{OpNotEquals, "neq"},
		{OpGreaterThan, "gt"},
		{OpGreaterThanOrEqual, "gteq"},
		{OpLessThan, "lt"},
		{OpLessThanOrEqual, "lteq"},
		{OpLike, "like"},
		{OpNotLike, "notLike"},
	}
	for _, tt := range tests {
		if got := tt.op.WireName(); got != tt.want {
			t.Errorf("%s.WireName() = %q, want %q", tt.op, got, tt.want)
		}
		parsed, ok := ParseOperator(tt.want)
		if !ok || parsed != tt.op {
			t.Errorf("ParseOperator(%q) = %q, %v", tt.want, parsed, ok)
		}
	}
	if Operator("BETWEEN").Valid() {
		t.Error("unknown operator must not be valid")
	}
}

func TestValueTypeWireName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		vt   ValueType
		wire string
	}{
		{TypeString, "String"},
		{TypeInteger, "Integer"},
		{TypeJSON, "Json"},
		{TypeNull, "Null"},
	}
	for _, tt := range tests {
		if got := tt.vt.WireName(); got != tt.wire {
			t.Errorf("%s.WireName() = %q, want %q", tt.vt, got, tt.wire)
		}
		if got := ValueTypeFromWire(tt.wire); got != tt.vt {
			t.Errorf("ValueTypeFromWire(%q) = %q, want %q", tt.wire, got, tt.vt)
		}
	}
	if ValueType("").WireName() != "" {
		t.Error("empty type must map to empty wire name")
	}
}

func TestValueTypeSerializable(t *testing.T) {
	t.Parallel()
	for _, vt := range []ValueType{TypeObject, TypeJSON, TypeXML} {
		if !vt.Serializable() {
			t.Errorf("%s should be serializable", vt)
		}
	}
	for _, vt := range []ValueType{TypeString, TypeLong, TypeBytes} {
		if vt.Serializable() {
			t.Errorf("%s should not be serializable", vt)
		}
	}
}

func TestRelationAndScopeValid(t *testing.T) {
	t.Parallel()
	if RelationNone.Valid() {
		t.Error("RelationNone must not be valid")
	}
	for _, r := range []Relation{RelationProcessInstance, RelationExecution, RelationTask, RelationCaseInstance, RelationCaseExecution} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, s := range []VariableScope{ScopeLocal, ScopeProcess, ScopeTask, ScopeCaseInstance} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
}
