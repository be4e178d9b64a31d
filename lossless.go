package kbhisat2

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

// extensionBag is embedded in every record to keep wire fields the shape
// does not declare. Values are stored as compact JSON.
type extensionBag struct {
	fields map[string]json.RawMessage
}

// Extensions returns a copy of the extension fields.
func (b extensionBag) Extensions() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(b.fields))
	for k, v := range b.fields {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// Extension returns the raw JSON value stored under name.
func (b extensionBag) Extension(name string) (json.RawMessage, bool) {
	v, ok := b.fields[name]
	return v, ok
}

// DeleteExtension removes name from the extension fields.
func (b *extensionBag) DeleteExtension(name string) {
	delete(b.fields, name)
}

func (b *extensionBag) set(t typetoken.Token, known map[string]struct{}, name string, v any) error {
	if _, ok := known[name]; ok {
		return &CollisionError{Type: t, Name: name}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kbhisat2: extension %q: %w", name, err)
	}
	if b.fields == nil {
		b.fields = map[string]json.RawMessage{}
	}
	b.fields[name] = raw
	return nil
}

// knownSet builds a map for constant-time declared-field checks.
func knownSet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// decodeLossless fills wire from b and returns the fields wire does not declare.
func decodeLossless(t typetoken.Token, b []byte, wire any, known map[string]struct{}) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &DecodeError{Type: t, Err: err}
	}

	// encoding/json matches tags case-insensitively, so only exact
	// declared names reach the wire struct.
	declared := make(map[string]json.RawMessage, len(known))
	var unknown map[string]json.RawMessage
	for k, v := range raw {
		if _, ok := known[k]; ok {
			declared[k] = v
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return nil, &DecodeError{Type: t, Err: err}
		}
		if unknown == nil {
			unknown = map[string]json.RawMessage{}
		}
		unknown[k] = buf.Bytes()
	}

	filtered, err := json.Marshal(declared)
	if err != nil {
		return nil, &DecodeError{Type: t, Err: err}
	}
	if err := json.Unmarshal(filtered, wire); err != nil {
		return nil, &DecodeError{Type: t, Err: err}
	}
	return unknown, nil
}

// marshalLossless encodes the typed wire view, whose struct order is the
// declared field order, then appends extension fields sorted by name.
func marshalLossless(typed any, ext map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(typed)
	if err != nil {
		return nil, err
	}
	if len(ext) == 0 {
		return b, nil
	}

	keys := sortedKeys(ext)
	var buf bytes.Buffer
	buf.Write(b[:len(b)-1])
	empty := len(b) == 2
	for _, k := range keys {
		if !empty {
			buf.WriteByte(',')
		}
		empty = false
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(ext[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// yamlNode re-reads JSON as a YAML node so that declared order survives,
// switching to block style and plain strings.
func yamlNode(b []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	n := &doc
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	blockStyle(n)
	return n, nil
}

// The encoder re-quotes any string that would otherwise read back as another type.
func blockStyle(n *yaml.Node) {
	switch {
	case n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode:
		n.Style &^= yaml.FlowStyle
	case n.Kind == yaml.ScalarNode && n.Tag == "!!str":
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// jsonFromYAML converts a YAML mapping node to JSON for UnmarshalJSON.
func jsonFromYAML(t typetoken.Token, n *yaml.Node) ([]byte, error) {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, &DecodeError{Type: t, Err: fmt.Errorf("yaml: line %d: expected a mapping", n.Line)}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, &DecodeError{Type: t, Err: err}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &DecodeError{Type: t, Err: err}
	}
	return b, nil
}

// field is one declared field in a record's diagnostic and log views.
// A nil value means the field is absent.
type field struct {
	name  string
	value any
}

func textField(name string, v *string) field {
	if v == nil {
		return field{name: name}
	}
	return field{name: name, value: *v}
}

func intField(name string, v *int64) field {
	if v == nil {
		return field{name: name}
	}
	return field{name: name, value: *v}
}

// render produces `Shape [a=1, b=null, extensions={k=v}]`.
func render(t typetoken.Token, fields []field, ext map[string]json.RawMessage) string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString(" [")
	for _, f := range fields {
		sb.WriteString(f.name)
		sb.WriteByte('=')
		if f.value == nil {
			sb.WriteString("null")
		} else {
			fmt.Fprint(&sb, f.value)
		}
		sb.WriteString(", ")
	}
	sb.WriteString("extensions={")
	for i, k := range sortedKeys(ext) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.Write(ext[k])
	}
	sb.WriteString("}]")
	return sb.String()
}

// logValue groups the present fields, plus an extensions group when the bag is not empty.
func logValue(fields []field, ext map[string]json.RawMessage) slog.Value {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for _, f := range fields {
		switch v := f.value.(type) {
		case nil:
		case string:
			attrs = append(attrs, slog.String(f.name, v))
		case int64:
			attrs = append(attrs, slog.Int64(f.name, v))
		case map[string]AlignmentObj:
			group := make([]any, 0, len(v))
			for _, k := range sortedKeys(v) {
				group = append(group, slog.Any(k, v[k]))
			}
			attrs = append(attrs, slog.Group(f.name, group...))
		default:
			attrs = append(attrs, slog.Any(f.name, v))
		}
	}
	if len(ext) > 0 {
		group := make([]any, 0, len(ext))
		for _, k := range sortedKeys(ext) {
			group = append(group, slog.String(k, string(ext[k])))
		}
		attrs = append(attrs, slog.Group("extensions", group...))
	}
	return slog.GroupValue(attrs...)
}

// DecodeError reports input that is not a well-formed record of the given type.
// Unknown fields never cause a DecodeError.
type DecodeError struct {
	Type typetoken.Token
	Err  error
}

func (e *DecodeError) Error() string {
	if e == nil || e.Err == nil {
		return "kbhisat2: decode error"
	}
	return "kbhisat2: decode " + e.Type.String() + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CollisionError is returned when an extension name equals a declared wire name.
type CollisionError struct {
	Type typetoken.Token
	Name string
}

func (e *CollisionError) Error() string {
	return "kbhisat2: " + e.Type.String() + ": extension " + strconv.Quote(e.Name) + " collides with a declared field"
}
