// Package variables converts between Go values and the engine's typed
// variable representation.
package variables

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/procrest/engine-client-go/internal/domain"
	"github.com/procrest/engine-client-go/internal/wire"
)

// JSONDataFormat is the serialization format used for object values.
const JSONDataFormat = "application/json"

const (
	infoDataFormat     = "serializationDataFormat"
	infoObjectTypeName = "objectTypeName"
)

// TypedValue is a variable value together with its engine type.
//
// For object, json and xml values Value holds the deserialized Go value when
// Deserialized is true and the serialized string otherwise.
type TypedValue struct {
	Type         domain.ValueType
	Value        any
	ValueInfo    map[string]any
	Deserialized bool
}

// DataFormat returns the serialization data format of a serializable value.
func (v TypedValue) DataFormat() string {
	s, _ := v.ValueInfo[infoDataFormat].(string)
	return s
}

// ObjectTypeName returns the declared type name of an object value.
func (v TypedValue) ObjectTypeName() string {
	s, _ := v.ValueInfo[infoObjectTypeName].(string)
	return s
}

// Object builds an object value that Encode serializes as JSON.
func Object(v any) TypedValue {
	return TypedValue{Type: domain.TypeObject, Value: v, Deserialized: true}
}

// Encode converts a Go value into its wire representation, guessing the
// engine type for untyped values. A TypedValue is encoded as declared.
func Encode(v any) (wire.VariableValue, error) {
	switch val := v.(type) {
	case TypedValue:
		return encodeTyped(val)
	case *TypedValue:
		if val == nil {
			return wire.VariableValue{Type: domain.TypeNull.WireName()}, nil
		}
		return encodeTyped(*val)
	}
	t := guessType(v)
	if t == domain.TypeObject {
		return encodeTyped(Object(v))
	}
	return encodeTyped(TypedValue{Type: t, Value: v})
}

func guessType(v any) domain.ValueType {
	switch v.(type) {
	case nil:
		return domain.TypeNull
	case bool:
		return domain.TypeBoolean
	case time.Time:
		return domain.TypeDate
	case float32, float64:
		return domain.TypeDouble
	case json.Number:
		if _, err := v.(json.Number).Int64(); err == nil {
			return domain.TypeLong
		}
		return domain.TypeDouble
	case int, int32:
		return domain.TypeInteger
	case int64:
		return domain.TypeLong
	case int16:
		return domain.TypeShort
	case string:
		return domain.TypeString
	case []byte:
		return domain.TypeBytes
	}
	return domain.TypeObject
}

func encodeTyped(v TypedValue) (wire.VariableValue, error) {
	if !v.Type.Valid() {
		return wire.VariableValue{}, fmt.Errorf("variables: unsupported value type %q", v.Type)
	}
	out := wire.VariableValue{Type: v.Type.WireName(), ValueInfo: v.ValueInfo}
	switch v.Type {
	case domain.TypeNull:
		out.Value = nil
	case domain.TypeDate:
		t, ok := v.Value.(time.Time)
		if !ok {
			return wire.VariableValue{}, fmt.Errorf("variables: date value must be time.Time, got %T", v.Value)
		}
		out.Value = t.Format(wire.DateFormat)
	case domain.TypeBytes:
		b, ok := v.Value.([]byte)
		if !ok {
			return wire.VariableValue{}, fmt.Errorf("variables: bytes value must be []byte, got %T", v.Value)
		}
		out.Value = base64.StdEncoding.EncodeToString(b)
	case domain.TypeFile:
		// file contents are never sent with a value
		out.Value = nil
	case domain.TypeObject, domain.TypeJSON, domain.TypeXML:
		serialized, info, err := serialize(v)
		if err != nil {
			return wire.VariableValue{}, err
		}
		out.Value = serialized
		out.ValueInfo = info
	default:
		out.Value = v.Value
	}
	return out, nil
}

func serialize(v TypedValue) (any, map[string]any, error) {
	info := make(map[string]any, len(v.ValueInfo)+2)
	for k, val := range v.ValueInfo {
		info[k] = val
	}
	if s, ok := v.Value.(string); ok && !v.Deserialized {
		return s, info, nil
	}
	if v.Value == nil {
		return nil, info, nil
	}
	format := v.DataFormat()
	if format != "" && format != JSONDataFormat {
		return nil, nil, fmt.Errorf("variables: cannot serialize %s value into %q", v.Type, format)
	}
	data, err := json.Marshal(v.Value)
	if err != nil {
		return nil, nil, fmt.Errorf("variables: serialize %s value: %w", v.Type, err)
	}
	if v.Type == domain.TypeObject {
		info[infoDataFormat] = JSONDataFormat
		if _, ok := info[infoObjectTypeName]; !ok {
			info[infoObjectTypeName] = fmt.Sprintf("%T", v.Value)
		}
	}
	return string(data), info, nil
}

// DecodeOne rebuilds a typed value from its wire representation. With
// deserialize set, JSON object and json values are parsed into Go values.
func DecodeOne(v wire.VariableValue, deserialize bool) (TypedValue, error) {
	if v.Type == "" {
		t := guessType(v.Value)
		value := v.Value
		switch t {
		case domain.TypeObject:
			t = domain.TypeJSON
		case domain.TypeLong:
			if n, ok := v.Value.(json.Number); ok {
				value, _ = n.Int64()
			}
		case domain.TypeDouble:
			if n, ok := v.Value.(json.Number); ok {
				f, err := n.Float64()
				if err != nil {
					return TypedValue{}, fmt.Errorf("variables: decode untyped number: %w", err)
				}
				value = f
			}
		}
		return TypedValue{Type: t, Value: value, ValueInfo: v.ValueInfo, Deserialized: true}, nil
	}
	t := domain.ValueTypeFromWire(v.Type)
	if !t.Valid() {
		return TypedValue{}, fmt.Errorf("variables: unsupported value type %q", v.Type)
	}
	out := TypedValue{Type: t, ValueInfo: v.ValueInfo}
	if v.Value == nil {
		out.Deserialized = !t.Serializable()
		return out, nil
	}
	var err error
	switch t {
	case domain.TypeNull:
	case domain.TypeBoolean:
		out.Value, err = toBool(v.Value)
	case domain.TypeShort:
		var n int64
		n, err = toInt(v.Value, math.MinInt16, math.MaxInt16)
		out.Value = int16(n)
	case domain.TypeInteger:
		var n int64
		n, err = toInt(v.Value, math.MinInt32, math.MaxInt32)
		out.Value = int(n)
	case domain.TypeLong:
		out.Value, err = toInt(v.Value, math.MinInt64, math.MaxInt64)
	case domain.TypeDouble:
		out.Value, err = toFloat(v.Value)
	case domain.TypeDate:
		s, ok := v.Value.(string)
		if !ok {
			return TypedValue{}, fmt.Errorf("variables: date value must be a string, got %T", v.Value)
		}
		out.Value, err = wire.ParseTime(s)
	case domain.TypeString:
		out.Value = fmt.Sprint(v.Value)
	case domain.TypeBytes, domain.TypeFile:
		s, ok := v.Value.(string)
		if !ok {
			return TypedValue{}, fmt.Errorf("variables: %s value must be base64 text, got %T", t, v.Value)
		}
		out.Value, err = base64.StdEncoding.DecodeString(s)
	case domain.TypeObject, domain.TypeJSON, domain.TypeXML:
		return decodeSerializable(out, v.Value, deserialize)
	}
	if err != nil {
		return TypedValue{}, fmt.Errorf("variables: decode %s value: %w", t, err)
	}
	out.Deserialized = true
	return out, nil
}

func decodeSerializable(out TypedValue, raw any, deserialize bool) (TypedValue, error) {
	serialized, ok := raw.(string)
	if !ok {
		switch raw.(type) {
		case map[string]any, []any:
			// the engine inlined the JSON document; restore its serialized form
			data, err := json.Marshal(raw)
			if err != nil {
				return TypedValue{}, fmt.Errorf("variables: restore %s value: %w", out.Type, err)
			}
			serialized = string(data)
		default:
			return TypedValue{}, fmt.Errorf("variables: %s value must be null or a string, got %T", out.Type, raw)
		}
	}
	out.Value = serialized
	if !deserialize || out.Type == domain.TypeXML {
		return out, nil
	}
	if format := out.DataFormat(); format != "" && format != JSONDataFormat {
		return out, nil
	}
	var parsed any
	if err := json.Unmarshal([]byte(serialized), &parsed); err != nil {
		return TypedValue{}, fmt.Errorf("variables: deserialize %s value: %w", out.Type, err)
	}
	out.Value = parsed
	out.Deserialized = true
	return out, nil
}

// DecodeMany decodes a whole variable map.
func DecodeMany(values map[string]wire.VariableValue, deserialize bool) (map[string]TypedValue, error) {
	out := make(map[string]TypedValue, len(values))
	for name, v := range values {
		tv, err := DecodeOne(v, deserialize)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		out[name] = tv
	}
	return out, nil
}

// EncodeMany encodes a variable map.
func EncodeMany(values map[string]any) (map[string]wire.VariableValue, error) {
	out := make(map[string]wire.VariableValue, len(values))
	for name, v := range values {
		wv, err := Encode(v)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		out[name] = wv
	}
	return out, nil
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(b)
	}
	return false, fmt.Errorf("unexpected %T", v)
}

// maxExactFloat is the largest magnitude below which every integer has an
// exact float64 representation.
const maxExactFloat = 1 << 53

func toInt(v any, lo, hi int64) (int64, error) {
	var n int64
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not an integer", x)
		}
		if x >= math.MaxInt64 || x < math.MinInt64 {
			return 0, fmt.Errorf("%v out of range", x)
		}
		if math.Abs(x) > maxExactFloat {
			return 0, fmt.Errorf("%v is not exact in a float", x)
		}
		n = int64(x)
	case json.Number:
		parsed, err := x.Int64()
		if err != nil {
			return 0, err
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, err
		}
		n = parsed
	case int:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d out of range", n)
	}
	return n, nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case string:
		return strconv.ParseFloat(x, 64)
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	return 0, fmt.Errorf("unexpected %T", v)
}
