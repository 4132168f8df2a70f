package wire

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/google/go-querystring/query"
)

var fieldCache sync.Map // reflect.Type -> []string

// FieldNames lists the wire field names of a request shape in declaration order.
// Names come from the json tags; untagged and "-" fields are skipped.
func FieldNames[T any]() []string {
	var zero T
	rt := reflect.TypeOf(zero)
	if cached, ok := fieldCache.Load(rt); ok {
		return cached.([]string)
	}
	names := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		if name := jsonName(rt.Field(i)); name != "" {
			names = append(names, name)
		}
	}
	fieldCache.Store(rt, names)
	return names
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// Values encodes a query-string request shape from its url tags.
func Values(req any) (url.Values, error) {
	values, err := query.Values(req)
	if err != nil {
		return nil, fmt.Errorf("wire: cannot encode %T as query parameters: %w", req, err)
	}
	return values, nil
}
