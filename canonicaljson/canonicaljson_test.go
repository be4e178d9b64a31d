package canonicaljson

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMarshal_SortsMembersRecursively(t *testing.T) {
	out, err := Marshal(json.RawMessage(`{"name": "aligned_reads_1", "alignment_ref": "37/5/1", "x": {"b": 1, "a": [ {"d":0,"c":1} ]}}`))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"alignment_ref":"37/5/1","name":"aligned_reads_1","x":{"a":[{"c":1,"d":0}],"b":1}}`
	if string(out) != want {
		t.Fatalf("got %s\nwant %s", out, want)
	}
}

func TestMarshal_NumberSpelling(t *testing.T) {
	out, err := Marshal(json.RawMessage(`[1.0, 1e0, -0, 0.000001, 1e-7, 1e21, 500000]`))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[1,1,0,0.000001,1e-7,1e+21,500000]`
	if string(out) != want {
		t.Fatalf("got %s\nwant %s", out, want)
	}
}

func TestMarshal_StringEscapes(t *testing.T) {
	out, err := Marshal(map[string]string{"s": "a\"b\\c\n\x01é"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"s":"a\"b\\c\n\u0001é"}`
	if string(out) != want {
		t.Fatalf("got %s\nwant %s", out, want)
	}
}

func TestMarshal_RejectsTrailingData(t *testing.T) {
	_, err := Marshal(json.RawMessage(`{} {}`))
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}

func TestEqual_IgnoresLayout(t *testing.T) {
	ok, err := Equal(json.RawMessage(`{"trim3": 5, "skip": 0}`), map[string]int{"skip": 0, "trim3": 5})
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if !ok {
		t.Fatal("expected equal")
	}

	ok, err = Equal(json.RawMessage(`{"skip": 1}`), json.RawMessage(`{"skip": "1"}`))
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if ok {
		t.Fatal("number and string must differ")
	}
}
