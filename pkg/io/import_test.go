package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/erdot/pkg/erd"
	"github.com/matzehuels/erdot/pkg/errors"
)

const pairsJSON = `[
  [["Table A", "Field 1"], ["Table B", "Field 4"]],
  [["Table A", "Field 2"], ["Table B", "Field 3"]],
  [["Table B", "Field 1"], ["Table C", "Field 1"]],
  [["Table A", "Field 1"], ["Table C", "Field 4"]]
]`

func TestReadRelationships_JSONPairs(t *testing.T) {
	rels, err := ReadRelationships(strings.NewReader(pairsJSON), FormatJSON)
	if err != nil {
		t.Fatalf("ReadRelationships() error: %v", err)
	}
	assertRelationships(t, rels, erd.ExampleRelationships())
}

func TestReadRelationships_JSONObjects(t *testing.T) {
	input := `[
	  {"source": {"table": "orders", "field": "customer_id"},
	   "destination": {"table": "customers", "field": "id"}},
	  [["orders", "id"], ["order items", "order id"]]
	]`

	rels, err := ReadRelationships(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadRelationships() error: %v", err)
	}
	assertRelationships(t, rels, []erd.Relationship{
		erd.Rel("orders", "customer_id", "customers", "id"),
		erd.Rel("orders", "id", "order items", "order id"),
	})
}

func TestReadRelationships_YAML(t *testing.T) {
	input := `
- source: {table: orders, field: customer_id}
  destination: {table: customers, field: id}
- [[Table A, Field 1], [Table B, Field 4]]
`
	rels, err := ReadRelationships(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("ReadRelationships() error: %v", err)
	}
	assertRelationships(t, rels, []erd.Relationship{
		erd.Rel("orders", "customer_id", "customers", "id"),
		erd.Rel("Table A", "Field 1", "Table B", "Field 4"),
	})
}

func TestReadRelationships_Empty(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"json list", "[]", FormatJSON},
		{"yaml list", "[]", FormatYAML},
		{"yaml document", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rels, err := ReadRelationships(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadRelationships() error: %v", err)
			}
			if len(rels) != 0 {
				t.Errorf("got %d relationships, want 0", len(rels))
			}
		})
	}
}

func TestReadRelationships_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"malformed json", `[[["a"`, FormatJSON, errors.ErrCodeInvalidInput},
		{"not a list", `{"source": {}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"short pair", `[[["a", "x"]]]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"empty table", `[[["", "x"], ["b", "y"]]]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"missing field", `[{"source": {"table": "a"}, "destination": {"table": "b", "field": "y"}}]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"newline in name", `[[["a\nb", "x"], ["b", "y"]]]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"yaml mapping root", "source: x", FormatYAML, errors.ErrCodeInvalidInput},
		{"unknown format", "[]", Format("csv"), errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRelationships(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("ReadRelationships() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadRelationships_ErrorNamesIndex(t *testing.T) {
	input := `[[["a", "x"], ["b", "y"]], [["a", "x"], ["", "y"]]]`
	_, err := ReadRelationships(strings.NewReader(input), FormatJSON)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "relationship 1") {
		t.Errorf("error should name relationship 1, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "destination table") {
		t.Errorf("error should name the bad part, got %q", err.Error())
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"rels.json", FormatJSON, false},
		{"dir/rels.JSON", FormatJSON, false},
		{"rels.yaml", FormatYAML, false},
		{"rels.yml", FormatYAML, false},
		{"rels.csv", "", true},
		{"rels", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestImportRelationships(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rels.json")
	if err := os.WriteFile(path, []byte(pairsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	rels, err := ImportRelationships(path)
	if err != nil {
		t.Fatalf("ImportRelationships() error: %v", err)
	}
	if len(rels) != 4 {
		t.Errorf("got %d relationships, want 4", len(rels))
	}
}

func TestImportRelationships_Missing(t *testing.T) {
	_, err := ImportRelationships(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRelationshipsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRelationships(erd.ExampleRelationships(), &buf); err != nil {
		t.Fatalf("WriteRelationships() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"destination"`) {
		t.Error("WriteRelationships() should use the object shape")
	}

	rels, err := ReadRelationships(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("ReadRelationships() error: %v", err)
	}
	assertRelationships(t, rels, erd.ExampleRelationships())
}

func TestReadColors(t *testing.T) {
	input := `
[colors]
"Table A" = "lightyellow"
orders = "#ffcc00"
`
	colors, err := ReadColors(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadColors() error: %v", err)
	}
	if colors.Len() != 2 {
		t.Errorf("Len() = %d, want 2", colors.Len())
	}
	if got := colors.Lookup("Table_A"); got != "lightyellow" {
		t.Errorf("Lookup(Table_A) = %q, want lightyellow", got)
	}
	if got := colors.Lookup("other"); got != erd.DefaultColor {
		t.Errorf("Lookup(other) = %q, want %q", got, erd.DefaultColor)
	}
}

func TestReadColors_NoTable(t *testing.T) {
	colors, err := ReadColors(strings.NewReader(`title = "schema"`))
	if err != nil {
		t.Fatalf("ReadColors() error: %v", err)
	}
	if colors.Len() != 0 {
		t.Errorf("Len() = %d, want 0", colors.Len())
	}
}

func TestReadColors_Invalid(t *testing.T) {
	_, err := ReadColors(strings.NewReader("[colors\nbroken"))
	if !errors.Is(err, errors.ErrCodeInvalidColors) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColors)
	}
}

func TestImportColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.toml")
	if err := os.WriteFile(path, []byte("[colors]\nusers = \"pink\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	colors, err := ImportColors(path)
	if err != nil {
		t.Fatalf("ImportColors() error: %v", err)
	}
	if got := colors.Lookup("users"); got != "pink" {
		t.Errorf("Lookup(users) = %q, want pink", got)
	}
}

func TestExportDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultOutput)
	dot := erd.ToDOT(erd.ExampleRelationships(), erd.Colors{})

	if err := ExportDOT(dot, path); err != nil {
		t.Fatalf("ExportDOT() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != dot {
		t.Error("ExportDOT() wrote different content")
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT("digraph {}", &buf); err != nil {
		t.Fatalf("WriteDOT() error: %v", err)
	}
	if buf.String() != "digraph {}" {
		t.Errorf("WriteDOT() wrote %q", buf.String())
	}
}

func assertRelationships(t *testing.T, got, want []erd.Relationship) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d relationships, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("relationship %d = %v, want %v", i, got[i], want[i])
		}
	}
}
