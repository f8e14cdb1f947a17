package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/erdot/pkg/erd"
)

// DefaultOutput is the file name used when no output path is given.
const DefaultOutput = "erd.dot"

// WriteDOT writes a DOT document to w.
func WriteDOT(dot string, w io.Writer) error {
	if _, err := io.WriteString(w, dot); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

// ExportDOT writes a DOT document to path, creating parent directories.
func ExportDOT(dot, path string) error {
	return exportFile(path, []byte(dot))
}

// ExportBytes writes rendered output (SVG, PNG) to path, creating parent
// directories.
func ExportBytes(data []byte, path string) error {
	return exportFile(path, data)
}

func exportFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteRelationships encodes rels as an indented JSON list in the object
// shape. The output can be read back with [ReadRelationships].
func WriteRelationships(rels []erd.Relationship, w io.Writer) error {
	out := make([]relationship, len(rels))
	for i, r := range rels {
		out[i] = relationship{
			Source:      endpoint{Table: r.Source.Table, Field: r.Source.Field},
			Destination: endpoint{Table: r.Destination.Table, Field: r.Destination.Field},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportRelationships writes rels to a JSON file at path.
// This is a convenience wrapper around [WriteRelationships] for file-based output.
func ExportRelationships(rels []erd.Relationship, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteRelationships(rels, f)
}
