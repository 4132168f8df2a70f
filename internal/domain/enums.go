package domain

import "strings"

// SuspensionState filters runtime entities by their activation state.
type SuspensionState string

const (
	SuspensionActive    SuspensionState = "ACTIVE"
	SuspensionSuspended SuspensionState = "SUSPENDED"
)

func (s SuspensionState) Valid() bool {
	switch s {
	case SuspensionActive, SuspensionSuspended:
		return true
	}
	return false
}

// DelegationState of a delegated task.
type DelegationState string

const (
	DelegationPending  DelegationState = "PENDING"
	DelegationResolved DelegationState = "RESOLVED"
)

func (d DelegationState) Valid() bool {
	switch d {
	case DelegationPending, DelegationResolved:
		return true
	}
	return false
}

// SortDirection of one ordering entry. The empty value means "not set yet".
type SortDirection string

const (
	SortUnset SortDirection = ""
	SortAsc   SortDirection = "asc"
	SortDesc  SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	switch d {
	case SortAsc, SortDesc:
		return true
	}
	return false
}

// Operator compares a variable against a value.
type Operator string

const (
	OpEquals             Operator = "EQUALS"
	OpNotEquals          Operator = "NOT_EQUALS"
	OpGreaterThan        Operator = "GREATER_THAN"
	OpGreaterThanOrEqual Operator = "GREATER_THAN_OR_EQUAL"
	OpLessThan           Operator = "LESS_THAN"
	OpLessThanOrEqual    Operator = "LESS_THAN_OR_EQUAL"
	OpLike               Operator = "LIKE"
	OpNotLike            Operator = "NOT_LIKE"
)

func (o Operator) Valid() bool {
	return o.WireName() != ""
}

// WireName is the operator token the engine REST API expects.
func (o Operator) WireName() string {
	switch o {
	case OpEquals:
		return "eq"
	case OpNotEquals:
		return "neq"
	case OpGreaterThan:
		return "gt"
	case OpGreaterThanOrEqual:
		return "gteq"
	case OpLessThan:
		return "lt"
	case OpLessThanOrEqual:
		return "lteq"
	case OpLike:
		return "like"
	case OpNotLike:
		return "notLike"
	}
	return ""
}

// ParseOperator accepts either the operator name or its wire token.
func ParseOperator(s string) (Operator, bool) {
	for _, op := range []Operator{
		OpEquals, OpNotEquals, OpGreaterThan, OpGreaterThanOrEqual,
		OpLessThan, OpLessThanOrEqual, OpLike, OpNotLike,
	} {
		if string(op) == s || op.WireName() == s {
			return op, true
		}
	}
	return "", false
}

// VariableScope says which entity a variable predicate applies to.
type VariableScope string

const (
	ScopeLocal        VariableScope = "local"
	ScopeProcess      VariableScope = "process"
	ScopeTask         VariableScope = "task"
	ScopeCaseInstance VariableScope = "caseInstance"
)

func (s VariableScope) Valid() bool {
	switch s {
	case ScopeLocal, ScopeProcess, ScopeTask, ScopeCaseInstance:
		return true
	}
	return false
}

// Relation tags a variable ordering entry with the entity owning the variable.
type Relation string

const (
	RelationNone            Relation = ""
	RelationProcessInstance Relation = "PROCESS_INSTANCE"
	RelationExecution       Relation = "EXECUTION"
	RelationTask            Relation = "TASK"
	RelationCaseInstance    Relation = "CASE_INSTANCE"
	RelationCaseExecution   Relation = "CASE_EXECUTION"
)

func (r Relation) Valid() bool {
	switch r {
	case RelationProcessInstance, RelationExecution, RelationTask,
		RelationCaseInstance, RelationCaseExecution:
		return true
	}
	return false
}

// ValueType is the semantic type of a process variable.
type ValueType string

const (
	TypeNull    ValueType = "null"
	TypeBoolean ValueType = "boolean"
	TypeBytes   ValueType = "bytes"
	TypeShort   ValueType = "short"
	TypeInteger ValueType = "integer"
	TypeLong    ValueType = "long"
	TypeDouble  ValueType = "double"
	TypeDate    ValueType = "date"
	TypeString  ValueType = "string"
	TypeObject  ValueType = "object"
	TypeJSON    ValueType = "json"
	TypeXML     ValueType = "xml"
	TypeFile    ValueType = "file"
)

func (t ValueType) Valid() bool {
	switch t {
	case TypeNull, TypeBoolean, TypeBytes, TypeShort, TypeInteger, TypeLong,
		TypeDouble, TypeDate, TypeString, TypeObject, TypeJSON, TypeXML, TypeFile:
		return true
	}
	return false
}

// WireName is the capitalized type name used by the engine REST API.
func (t ValueType) WireName() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// ValueTypeFromWire converts a REST type name ("Integer") back to a ValueType.
func ValueTypeFromWire(name string) ValueType {
	if name == "" {
		return ""
	}
	return ValueType(strings.ToLower(name[:1]) + name[1:])
}

// Serializable reports whether values of this type travel as serialized strings.
func (t ValueType) Serializable() bool {
	switch t {
	case TypeObject, TypeJSON, TypeXML:
		return true
	}
	return false
}

// HistoricState is the lifecycle state of a historic process instance.
type HistoricState string

const (
	HistoricActive               HistoricState = "ACTIVE"
	HistoricSuspended            HistoricState = "SUSPENDED"
	HistoricCompleted            HistoricState = "COMPLETED"
	HistoricExternallyTerminated HistoricState = "EXTERNALLY_TERMINATED"
	HistoricInternallyTerminated HistoricState = "INTERNALLY_TERMINATED"
)

func (s HistoricState) Valid() bool {
	switch s {
	case HistoricActive, HistoricSuspended, HistoricCompleted,
		HistoricExternallyTerminated, HistoricInternallyTerminated:
		return true
	}
	return false
}

// IncidentStatus filters historic process instances by incident state.
type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "open"
	IncidentResolved IncidentStatus = "resolved"
)

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentOpen, IncidentResolved:
		return true
	}
	return false
}
