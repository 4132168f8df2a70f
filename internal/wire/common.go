// Package wire defines the payloads exchanged with the engine REST API:
// query request shapes, result records and their shared building blocks.
package wire

import (
	"bytes"
	"encoding/json"
)

// Sorting is one entry of a JSON-body "sorting" list.
type Sorting struct {
	SortBy     string             `json:"sortBy"`
	SortOrder  string             `json:"sortOrder,omitempty"`
	Parameters *SortingParameters `json:"parameters,omitempty"`
}

// SortingParameters qualifies a variable sort.
type SortingParameters struct {
	Variable string `json:"variable"`
	Type     string `json:"type"`
}

// VariableQueryParameter is one variable predicate.
type VariableQueryParameter struct {
	Name     string `json:"name"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// VariableValue is the typed wire representation of a variable.
//
// Numbers decode as json.Number so Long values keep all 64 bits.
type VariableValue struct {
	Type      string         `json:"type,omitempty"`
	Value     any            `json:"value"`
	ValueInfo map[string]any `json:"valueInfo,omitempty"`
}

func (v *VariableValue) UnmarshalJSON(data []byte) error {
	type plain VariableValue
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var p plain
	if err := dec.Decode(&p); err != nil {
		return err
	}
	*v = VariableValue(p)
	return nil
}

// CountResult is the body of every count endpoint.
type CountResult struct {
	Count int64 `json:"count"`
}

// ExceptionBody is the error body returned by the engine.
type ExceptionBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    *int   `json:"code,omitempty"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// String returns nil for "" so optional wire fields stay absent.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// True returns a pointer to true when b is set, nil otherwise.
func True(b bool) *bool {
	if !b {
		return nil
	}
	return &b
}
