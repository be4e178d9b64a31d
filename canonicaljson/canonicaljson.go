// Package canonicaljson produces RFC 8785 (JCS) canonical JSON bytes.
//
// Records compare equal when their canonical forms are byte-identical, so
// whitespace, member order and number spelling (1, 1.0, 1e0) never matter.
package canonicaljson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ErrTrailingData is returned when raw input holds more than one JSON value.
var ErrTrailingData = errors.New("canonicaljson: trailing data after JSON value")

// Marshal returns the canonical encoding of v.
// json.RawMessage and []byte are treated as already-encoded JSON.
func Marshal(v any) ([]byte, error) {
	raw, err := rawJSON(v)
	if err != nil {
		return nil, err
	}
	tree, err := decodeSingle(raw)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode(&buf, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Equal reports whether a and b have the same canonical encoding.
func Equal(a, b any) (bool, error) {
	ca, err := Marshal(a)
	if err != nil {
		return false, err
	}
	cb, err := Marshal(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ca, cb), nil
}

func rawJSON(v any) ([]byte, error) {
	switch x := v.(type) {
	case json.RawMessage:
		return x, nil
	case []byte:
		return x, nil
	default:
		return json.Marshal(v)
	}
}

func decodeSingle(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, ErrTrailingData
		}
		return nil, err
	}
	return tree, nil
}

func encode(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case string:
		encodeString(buf, x)
	case json.Number:
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return fmt.Errorf("canonicaljson: number %q: %w", x, err)
		}
		s, err := formatNumber(f)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		return encodeObject(buf, x)
	default:
		return fmt.Errorf("canonicaljson: unsupported value %T", v)
	}
	return nil
}

// encodeObject writes members sorted by UTF-16 code units (RFC 8785 §3.2.3).
func encodeObject(buf *bytes.Buffer, obj map[string]any) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
	})

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeString(buf, k)
		buf.WriteByte(':')
		if err := encode(buf, obj[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

var shortEscapes = map[rune]string{
	'"':  `\"`,
	'\\': `\\`,
	'\b': `\b`,
	'\t': `\t`,
	'\n': `\n`,
	'\f': `\f`,
	'\r': `\r`,
}

func encodeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		if esc, ok := shortEscapes[r]; ok {
			buf.WriteString(esc)
			continue
		}
		if r < 0x20 {
			fmt.Fprintf(buf, `\u%04x`, r)
			continue
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('"')
}

// formatNumber follows the ECMAScript Number.prototype.toString rules.
func formatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.New("canonicaljson: NaN and Infinity are not JSON numbers")
	}
	if f == 0 {
		return "0", nil
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64)), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// trimExponent turns Go's "1e-07" into ECMAScript's "1e-7".
func trimExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + exp[:1] + digits
}
