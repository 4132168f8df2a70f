package query

import (
	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/variables"
	"github.com/procrest/engine-client-go/internal/wire"
)

// VariablePredicate compares one named variable against a value.
type VariablePredicate struct {
	Name     string
	Value    any
	Operator domain.Operator
	Scope    domain.VariableScope

	// NameIgnoreCase follows the query-level flag, including for predicates
	// added before the flag was set.
	NameIgnoreCase bool

	// ValueIgnoreCase is fixed when the predicate is added and is only ever
	// true for string values.
	ValueIgnoreCase bool
}

// variableFilter holds the variable predicates of a variable-capable query.
type variableFilter struct {
	predicates       []VariablePredicate
	namesIgnoreCase  bool
	valuesIgnoreCase bool
}

// Variables returns a copy of the variable predicates.
func (f *variableFilter) Variables() []VariablePredicate {
	return append([]VariablePredicate(nil), f.predicates...)
}

func (f *variableFilter) addVariable(b *base, setter, name string, value any, op domain.Operator, scope domain.VariableScope) {
	if !b.ok(domain.RequireString(b.op(setter), "variableName", name)) {
		return
	}
	_, text := value.(string)
	f.predicates = append(f.predicates, VariablePredicate{
		Name:            name,
		Value:           value,
		Operator:        op,
		Scope:           scope,
		NameIgnoreCase:  f.namesIgnoreCase,
		ValueIgnoreCase: f.valuesIgnoreCase && text,
	})
}

func (f *variableFilter) matchNamesIgnoreCase(b *base) {
	if !b.ok(nil) {
		return
	}
	f.namesIgnoreCase = true
	for i := range f.predicates {
		f.predicates[i].NameIgnoreCase = true
	}
}

func (f *variableFilter) matchValuesIgnoreCase(b *base) {
	if b.ok(nil) {
		f.valuesIgnoreCase = true
	}
}

// params encodes the predicates of one scope. It returns nil when the scope
// has none so the wire field stays absent.
func (f *variableFilter) params(kind string, scope domain.VariableScope) ([]wire.VariableQueryParameter, error) {
	var out []wire.VariableQueryParameter
	for _, p := range f.predicates {
		if p.Scope != scope {
			continue
		}
		encoded, err := variables.Encode(p.Value)
		if err != nil {
			return nil, domain.ValidationError(kind, "variable %s: %v", p.Name, err)
		}
		out = append(out, wire.VariableQueryParameter{
			Name:     p.Name,
			Operator: p.Operator.WireName(),
			Value:    encoded.Value,
		})
	}
	return out, nil
}
