package kbhisat2

import (
	"encoding/json"
	"testing"
)

func mustUnmarshalJSON[T any](t *testing.T, b []byte, v *T) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func mustMarshalJSON(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return out
}

func mustUnmarshalToMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return m
}

func mustEqualRecords(t *testing.T, a, b Record) {
	t.Helper()
	ok, err := Equal(a, b)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if !ok {
		t.Fatalf("records differ:\n a: %s\n b: %s", a, b)
	}
}

// mustRoundTrip marshals in and decodes the bytes into a fresh record of the same type.
func mustRoundTrip[T any, P interface {
	*T
	Record
}](t *testing.T, in P) P {
	t.Helper()
	out := P(new(T))
	if err := json.Unmarshal(mustMarshalJSON(t, in), out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func assertPreservedUnknown(t *testing.T, outMap map[string]any) {
	t.Helper()
	unknownField, ok := outMap["unknownField"].(map[string]any)
	if !ok {
		t.Fatalf("expected unknownField preserved as object, got %#v", outMap["unknownField"])
	}
	if unknownField["value"] != "unknownFieldValue" {
		t.Fatalf("expected unknownField.value preserved, got %#v", unknownField["value"])
	}
}
