package variables

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

type invoice struct {
	Number string  `json:"number"`
	Amount float64 `json:"amount"`
}

func TestEncodeGuessesType(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name      string
		in        any
		wantType  string
		wantValue any
	}{
		{"nil", nil, "Null", nil},
		{"bool", true, "Boolean", true},
		{"date", when, "Date", "2024-03-01T12:30:00.000+0000"},
		{"double", 1.5, "Double", 1.5},
		{"int", 42, "Integer", 42},
		{"int32", int32(7), "Integer", int32(7)},
		{"long", int64(1) << 40, "Long", int64(1) << 40},
		{"short", int16(3), "Short", int16(3)},
		{"string", "abc", "String", "abc"},
		{"bytes", []byte("hi"), "Bytes", "aGk="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantValue, got.Value)
		})
	}
}

func TestEncodeObjectSerializesJSON(t *testing.T) {
	t.Parallel()

	got, err := Encode(invoice{Number: "INV-1", Amount: 12.5})
	require.NoError(t, err)

	assert.Equal(t, "Object", got.Type)
	assert.JSONEq(t, `{"number":"INV-1","amount":12.5}`, got.Value.(string))
	assert.Equal(t, JSONDataFormat, got.ValueInfo["serializationDataFormat"])
	assert.Equal(t, "variables.invoice", got.ValueInfo["objectTypeName"])
}

func TestEncodeTypedValueKeepsDeclaredType(t *testing.T) {
	t.Parallel()

	got, err := Encode(TypedValue{Type: domain.TypeJSON, Value: `{"a":1}`})
	require.NoError(t, err)
	assert.Equal(t, "Json", got.Type)
	assert.Equal(t, `{"a":1}`, got.Value)

	_, err = Encode(TypedValue{Type: domain.TypeDate, Value: "yesterday"})
	assert.Error(t, err)

	_, err = Encode(TypedValue{Type: "money", Value: 1})
	assert.Error(t, err)
}

func TestEncodeFileOmitsContent(t *testing.T) {
	t.Parallel()

	got, err := Encode(TypedValue{Type: domain.TypeFile, Value: []byte("large"), ValueInfo: map[string]any{"filename": "a.txt"}})
	require.NoError(t, err)
	assert.Equal(t, "File", got.Type)
	assert.Nil(t, got.Value)
	assert.Equal(t, "a.txt", got.ValueInfo["filename"])
}

func TestDecodeOnePrimitives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   wire.VariableValue
		want any
	}{
		{"boolean", wire.VariableValue{Type: "Boolean", Value: true}, true},
		{"integer from json number", wire.VariableValue{Type: "Integer", Value: float64(5)}, 5},
		{"long", wire.VariableValue{Type: "Long", Value: float64(1 << 40)}, int64(1 << 40)},
		{"long above 2^53", wire.VariableValue{Type: "Long", Value: json.Number("9007199254740993")}, int64(9007199254740993)},
		{"integer from exact number", wire.VariableValue{Type: "Integer", Value: json.Number("-7")}, -7},
		{"double from exact number", wire.VariableValue{Type: "Double", Value: json.Number("30.5")}, 30.5},
		{"string from number", wire.VariableValue{Type: "String", Value: json.Number("42")}, "42"},
		{"short", wire.VariableValue{Type: "Short", Value: float64(2)}, int16(2)},
		{"double", wire.VariableValue{Type: "Double", Value: 2.25}, 2.25},
		{"string", wire.VariableValue{Type: "String", Value: "x"}, "x"},
		{"bytes", wire.VariableValue{Type: "Bytes", Value: "aGk="}, []byte("hi")},
		{"date", wire.VariableValue{Type: "Date", Value: "2024-03-01T12:30:00.000+0000"},
			time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("", 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeOne(tt.in, false)
			require.NoError(t, err)
			if want, ok := tt.want.(time.Time); ok {
				assert.True(t, want.Equal(got.Value.(time.Time)))
				return
			}
			assert.Equal(t, tt.want, got.Value)
			assert.True(t, got.Deserialized)
		})
	}
}

func TestDecodeOneRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := DecodeOne(wire.VariableValue{Type: "Money", Value: 1}, false)
	assert.ErrorContains(t, err, "unsupported value type")

	_, err = DecodeOne(wire.VariableValue{Type: "Integer", Value: 1.5}, false)
	assert.Error(t, err)

	_, err = DecodeOne(wire.VariableValue{Type: "Short", Value: float64(70000)}, false)
	assert.Error(t, err)

	_, err = DecodeOne(wire.VariableValue{Type: "Object", Value: 12.0}, true)
	assert.ErrorContains(t, err, "must be null or a string")
}

func TestDecodeOneRejectsLossyLongs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{"number above int64", json.Number("10000000000000000000")},
		{"float above int64", 1e19},
		{"float below int64", -1e19},
		{"float at 2^63", float64(1 << 63)},
		{"float above 2^53", float64(1<<53) + 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeOne(wire.VariableValue{Type: "Long", Value: tt.value}, false)
			assert.Error(t, err)
		})
	}

	got, err := DecodeOne(wire.VariableValue{Type: "Long", Value: float64(1 << 53)}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<53), got.Value)
}

func TestDecodeKeepsLongPrecisionThroughJSON(t *testing.T) {
	t.Parallel()

	var received map[string]wire.VariableValue
	require.NoError(t, json.Unmarshal([]byte(
		`{"big":{"type":"Long","value":9007199254740993},"plain":{"value":9007199254740993},"ratio":{"value":0.25}}`,
	), &received))

	decoded, err := DecodeMany(received, false)
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), decoded["big"].Value)
	assert.Equal(t, domain.TypeLong, decoded["plain"].Type)
	assert.Equal(t, int64(9007199254740993), decoded["plain"].Value)
	assert.Equal(t, domain.TypeDouble, decoded["ratio"].Type)
	assert.Equal(t, 0.25, decoded["ratio"].Value)
}

func TestDecodeOneObjectDeserialize(t *testing.T) {
	t.Parallel()

	in := wire.VariableValue{
		Type:      "Object",
		Value:     `{"number":"INV-1"}`,
		ValueInfo: map[string]any{"serializationDataFormat": JSONDataFormat, "objectTypeName": "com.acme.Invoice"},
	}

	kept, err := DecodeOne(in, false)
	require.NoError(t, err)
	assert.False(t, kept.Deserialized)
	assert.Equal(t, `{"number":"INV-1"}`, kept.Value)
	assert.Equal(t, "com.acme.Invoice", kept.ObjectTypeName())

	parsed, err := DecodeOne(in, true)
	require.NoError(t, err)
	assert.True(t, parsed.Deserialized)
	assert.Equal(t, map[string]any{"number": "INV-1"}, parsed.Value)
}

func TestDecodeOneRestoresInlinedJSON(t *testing.T) {
	t.Parallel()

	in := wire.VariableValue{Type: "Json", Value: map[string]any{"a": float64(1)}}
	got, err := DecodeOne(in, false)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got.Value)
}

func TestDecodeOneKeepsForeignFormatSerialized(t *testing.T) {
	t.Parallel()

	in := wire.VariableValue{
		Type:      "Object",
		Value:     "rO0ABXQ=",
		ValueInfo: map[string]any{"serializationDataFormat": "application/x-java-serialized-object"},
	}
	got, err := DecodeOne(in, true)
	require.NoError(t, err)
	assert.False(t, got.Deserialized)
	assert.Equal(t, "rO0ABXQ=", got.Value)
}

func TestDecodeManyRoundTripsEncodeMany(t *testing.T) {
	t.Parallel()

	encoded, err := EncodeMany(map[string]any{
		"approved": true,
		"amount":   int64(100),
		"customer": map[string]any{"name": "ACME"},
	})
	require.NoError(t, err)

	// simulate the JSON hop to and from the engine
	data, err := json.Marshal(encoded)
	require.NoError(t, err)
	var received map[string]wire.VariableValue
	require.NoError(t, json.Unmarshal(data, &received))

	decoded, err := DecodeMany(received, true)
	require.NoError(t, err)
	assert.Equal(t, true, decoded["approved"].Value)
	assert.Equal(t, int64(100), decoded["amount"].Value)
	assert.Equal(t, map[string]any{"name": "ACME"}, decoded["customer"].Value)
	assert.Equal(t, domain.TypeObject, decoded["customer"].Type)
}

func TestDecodeManyNamesFailingVariable(t *testing.T) {
	t.Parallel()

	_, err := DecodeMany(map[string]wire.VariableValue{"bad": {Type: "Date", Value: "tomorrow"}}, false)
	assert.ErrorContains(t, err, "variable bad")
}
