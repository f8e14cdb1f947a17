package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/erdot/pkg/erd"
	"github.com/matzehuels/erdot/pkg/errors"
)

// Format identifies a relationship file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported relationship file %s (must be .json, .yaml, or .yml)", filepath.Base(path))
	}
}

type endpoint struct {
	Table string `json:"table" yaml:"table"`
	Field string `json:"field" yaml:"field"`
}

type relationship struct {
	Source      endpoint `json:"source" yaml:"source"`
	Destination endpoint `json:"destination" yaml:"destination"`
}

// Relationships is a relationship list that decodes from either the object
// or the pair-of-pairs shape in JSON and YAML.
type Relationships []erd.Relationship

// UnmarshalJSON implements json.Unmarshaler.
func (rs *Relationships) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Relationships, 0, len(raw))
	for i, msg := range raw {
		r, err := decodeJSONRelationship(msg)
		if err != nil {
			return fmt.Errorf("relationship %d: %w", i, err)
		}
		out = append(out, r)
	}
	*rs = out
	return nil
}

func decodeJSONRelationship(msg json.RawMessage) (erd.Relationship, error) {
	if trimmed := bytes.TrimSpace(msg); len(trimmed) > 0 && trimmed[0] == '[' {
		var pair [][]string
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return erd.Relationship{}, err
		}
		return fromPair(pair)
	}
	var r relationship
	if err := json.Unmarshal(msg, &r); err != nil {
		return erd.Relationship{}, err
	}
	return r.toErd(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (rs *Relationships) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: relationships must be a list", value.Line)
	}
	out := make(Relationships, 0, len(value.Content))
	for i, item := range value.Content {
		r, err := decodeYAMLRelationship(item)
		if err != nil {
			return fmt.Errorf("relationship %d (line %d): %w", i, item.Line, err)
		}
		out = append(out, r)
	}
	*rs = out
	return nil
}

func decodeYAMLRelationship(node *yaml.Node) (erd.Relationship, error) {
	if node.Kind == yaml.SequenceNode {
		var pair [][]string
		if err := node.Decode(&pair); err != nil {
			return erd.Relationship{}, err
		}
		return fromPair(pair)
	}
	var r relationship
	if err := node.Decode(&r); err != nil {
		return erd.Relationship{}, err
	}
	return r.toErd(), nil
}

func fromPair(pair [][]string) (erd.Relationship, error) {
	if len(pair) != 2 || len(pair[0]) != 2 || len(pair[1]) != 2 {
		return erd.Relationship{}, fmt.Errorf("want [[table, field], [table, field]]")
	}
	return erd.Rel(pair[0][0], pair[0][1], pair[1][0], pair[1][1]), nil
}

func (r relationship) toErd() erd.Relationship {
	return erd.Rel(r.Source.Table, r.Source.Field, r.Destination.Table, r.Destination.Field)
}

// Validate checks every table and field name with [errors.ValidateName].
func (rs Relationships) Validate() error {
	for i, r := range rs {
		for _, check := range []struct{ kind, name string }{
			{"source table", r.Source.Table},
			{"source field", r.Source.Field},
			{"destination table", r.Destination.Table},
			{"destination field", r.Destination.Field},
		} {
			if err := errors.ValidateName(check.kind, check.name); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "relationship %d", i)
			}
		}
	}
	return nil
}

// ReadRelationships decodes and validates a relationship list from r.
// ReadRelationships does not close r.
func ReadRelationships(r io.Reader, format Format) ([]erd.Relationship, error) {
	var rels Relationships
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&rels)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&rels)
		if err == io.EOF {
			err = nil
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported relationship format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s relationships", format)
	}
	if err := rels.Validate(); err != nil {
		return nil, err
	}
	return rels, nil
}

// ImportRelationships reads the relationship file at path. The encoding is
// chosen by [FormatFromPath].
func ImportRelationships(path string) ([]erd.Relationship, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRelationships(f, format)
}

type colorsFile struct {
	Colors map[string]string `toml:"colors"`
}

// ReadColors decodes a TOML color table from r.
func ReadColors(r io.Reader) (erd.Colors, error) {
	var cf colorsFile
	if _, err := toml.NewDecoder(r).Decode(&cf); err != nil {
		return erd.Colors{}, errors.Wrap(errors.ErrCodeInvalidColors, err, "decode colors")
	}
	return erd.NewColors(cf.Colors), nil
}

// ImportColors reads the TOML color file at path.
func ImportColors(path string) (erd.Colors, error) {
	f, err := open(path)
	if err != nil {
		return erd.Colors{}, err
	}
	defer f.Close()
	return ReadColors(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
