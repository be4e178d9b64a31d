// Package schemas holds the JSON Schema documents for the kb_hisat2 record
// shapes and validates JSON documents against them.
//
// Schemas are keyed by versioned type string (e.g. "kb_hisat2.Hisat2Params-2.0").
// They allow additional properties: unknown fields are a forward-compatibility
// feature, not a validation failure.
package schemas

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed *.schema.json
var files embed.FS

const (
	baseURL    = "https://schemas.kbase.us/kb_hisat2/"
	fileSuffix = ".schema.json"
)

var loadAll = sync.OnceValues(compileAll)

func compileAll() (map[string]*jsonschema.Schema, error) {
	names, err := fs.Glob(files, "*"+fileSuffix)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	for _, name := range names {
		b, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if err := c.AddResource(baseURL+name, bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("schemas: add %s: %w", name, err)
		}
	}

	out := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		s, err := c.Compile(baseURL + name)
		if err != nil {
			return nil, fmt.Errorf("schemas: compile %s: %w", name, err)
		}
		out[strings.TrimSuffix(name, fileSuffix)] = s
	}
	return out, nil
}

// UnknownSchemaError is returned when no schema is registered for a type string.
type UnknownSchemaError struct {
	Type string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("schemas: no schema for type %q", e.Type)
}

// Types returns the type strings that have a schema, sorted.
func Types() ([]string, error) {
	all, err := loadAll()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(all))
	for k := range all {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// Document returns the raw schema document for typeName.
func Document(typeName string) ([]byte, error) {
	b, err := files.ReadFile(typeName + fileSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &UnknownSchemaError{Type: typeName}
	}
	return b, err
}

// Validate checks the JSON document doc against the schema for typeName.
// A schema violation is returned as *jsonschema.ValidationError; use Problems
// to flatten it.
func Validate(typeName string, doc []byte) error {
	all, err := loadAll()
	if err != nil {
		return err
	}
	s, ok := all[typeName]
	if !ok {
		return &UnknownSchemaError{Type: typeName}
	}
	// jsonschema expects json.Number for numbers.
	var v any
	d := json.NewDecoder(bytes.NewReader(doc))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return fmt.Errorf("schemas: decode document: %w", err)
	}
	return s.Validate(v)
}

// Problems flattens a validation error into sorted "location: message"
// lines, one per failing leaf keyword. Other errors yield a single line.
func Problems(err error) []string {
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	var out []string
	collectLeaves(ve, &out)
	sort.Strings(out)
	return out
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+ve.Message)
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}
