package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class of a query. Match with errors.Is.
var (
	// ErrUsage is a builder call that violates a cross-field rule or misses a required argument.
	ErrUsage = errors.New("invalid query usage")

	// ErrValidation is a query that is not executable (missing sort direction, or-queries).
	ErrValidation = errors.New("invalid query")

	// ErrConfiguration is a wire field without a mapping rule. It indicates a programming defect.
	ErrConfiguration = errors.New("query mapping misconfigured")

	// ErrRemote is a failure reported by the transport.
	ErrRemote = errors.New("remote engine error")

	// ErrCardinality is a single-result query that matched more than one record.
	ErrCardinality = errors.New("too many results")
)

// Error kinds.
const (
	KindUsage         = "usage"
	KindValidation    = "validation"
	KindConfiguration = "configuration"
	KindRemote        = "remote"
	KindCardinality   = "cardinality"
)

var sentinelByKind = map[string]error{
	KindUsage:         ErrUsage,
	KindValidation:    ErrValidation,
	KindConfiguration: ErrConfiguration,
	KindRemote:        ErrRemote,
	KindCardinality:   ErrCardinality,
}

// Error carries the operation that failed and the failure class.
//
// errors.Is(err, ErrUsage) holds for an *Error of KindUsage, and likewise for
// the other kinds. The wrapped Err stays reachable through Unwrap.
type Error struct {
	// Op is the builder or executor operation, e.g. "TaskQuery.TaskCandidateUser".
	Op string

	// Kind is one of the Kind* constants.
	Kind string

	// Msg is the human readable reason.
	Msg string

	// Err is the underlying cause, if any.
	Err error

	// Context holds extra attributes such as the offending field name.
	Context map[string]any
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel or another *Error with the same kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if s, ok := sentinelByKind[e.Kind]; ok && s == target {
		return true
	}
	if t, ok := target.(*Error); ok && t.Kind != "" && t.Kind == e.Kind {
		return t.Op == "" || t.Op == e.Op
	}
	return false
}

// UsageError reports an invalid builder call.
func UsageError(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports a query that cannot be executed.
func ValidationError(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a wire field the projector cannot fill.
func ConfigurationError(op, field, format string, args ...any) *Error {
	return &Error{
		Op:      op,
		Kind:    KindConfiguration,
		Msg:     fmt.Sprintf(format, args...),
		Context: map[string]any{"field": field},
	}
}

// RemoteError wraps a transport failure.
func RemoteError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindRemote, Err: err}
}

// CardinalityError reports a single-result query with n matches.
func CardinalityError(op string, n int) *Error {
	return &Error{
		Op:      op,
		Kind:    KindCardinality,
		Msg:     fmt.Sprintf("Query return %d results instead of expected maximum 1", n),
		Context: map[string]any{"count": n},
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
