package kbhisat2

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/kbaseapps/kbhisat2-go/canonicaljson"
	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

// Record is implemented by a pointer to every record shape.
type Record interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
	fmt.Stringer
	slog.LogValuer

	// TypeName is the versioned workspace type of the shape.
	TypeName() typetoken.Token
	// FieldNames lists the declared wire names in wire order.
	FieldNames() []string

	Extensions() map[string]json.RawMessage
	Extension(name string) (json.RawMessage, bool)
	SetExtension(name string, v any) error
	DeleteExtension(name string)
}

var (
	_ Record = (*AlignmentObj)(nil)
	_ Record = (*Hisat2Output)(nil)
	_ Record = (*Hisat2SetOutput)(nil)
	_ Record = (*Hisat2Params)(nil)
	_ Record = (*LegacyHisat2Params)(nil)
)

var registry = map[typetoken.Token]func() Record{
	AlignmentObjType:       func() Record { return &AlignmentObj{} },
	Hisat2OutputType:       func() Record { return &Hisat2Output{} },
	Hisat2SetOutputType:    func() Record { return &Hisat2SetOutput{} },
	Hisat2ParamsType:       func() Record { return &Hisat2Params{} },
	LegacyHisat2ParamsType: func() Record { return &LegacyHisat2Params{} },
}

// UnknownTypeError is returned when a type string names no registered shape.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("kbhisat2: unknown type %q", e.Name)
}

// Types returns every registered shape, sorted.
func Types() []typetoken.Token {
	out := make([]typetoken.Token, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	slices.SortFunc(out, typetoken.Compare)
	return out
}

// Lookup resolves a type string to a registered token. A string without a
// version resolves to the latest registered version of that type.
func Lookup(typeName string) (typetoken.Token, error) {
	t, err := typetoken.Parse(typeName)
	if err != nil {
		return typetoken.Token{}, err
	}
	if t.Versioned {
		if _, ok := registry[t]; !ok {
			return typetoken.Token{}, &UnknownTypeError{Name: typeName}
		}
		return t, nil
	}

	var latest typetoken.Token
	found := false
	for cand := range registry {
		if !typetoken.SameType(cand, t) {
			continue
		}
		if !found || typetoken.Compare(cand, latest) > 0 {
			latest, found = cand, true
		}
	}
	if !found {
		return typetoken.Token{}, &UnknownTypeError{Name: typeName}
	}
	return latest, nil
}

// New returns an empty record for typeName.
func New(typeName string) (Record, error) {
	t, err := Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return registry[t](), nil
}

// Decode parses a JSON object into a new record of typeName.
func Decode(typeName string, data []byte) (Record, error) {
	r, err := New(typeName)
	if err != nil {
		return nil, err
	}
	// A bare null is not a record; UnmarshalJSON treats it as a no-op by convention.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, &DecodeError{Type: r.TypeName(), Err: errors.New("expected a JSON object, got null")}
	}
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}

// Equal reports whether a and b are the same shape with equal fixed fields
// and extension entries.
func Equal(a, b Record) (bool, error) {
	if a.TypeName() != b.TypeName() {
		return false, nil
	}
	ja, err := a.MarshalJSON()
	if err != nil {
		return false, err
	}
	jb, err := b.MarshalJSON()
	if err != nil {
		return false, err
	}
	return canonicaljson.Equal(json.RawMessage(ja), json.RawMessage(jb))
}
