package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type table struct {
	header []string
	rows   [][]string
}

// print writes v as JSON or YAML, or tbl for table output.
func (o *rootOptions) print(w io.Writer, v any, tbl table) error {
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		plain, err := toPlain(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plain); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		t := tablewriter.NewWriter(w)
		t.SetHeader(tbl.header)
		t.SetBorder(false)
		t.SetAutoWrapText(false)
		t.AppendBulk(tbl.rows)
		t.Render()
		return nil
	}
}

// toPlain round-trips v through JSON so result views render with their
// JSON field names.
func toPlain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return out, nil
}
