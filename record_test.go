package kbhisat2

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

func TestTypes_Sorted(t *testing.T) {
	var names []string
	for _, tok := range Types() {
		names = append(names, tok.String())
	}
	want := []string{
		"kb_hisat2.AlignmentObj-1.0",
		"kb_hisat2.Hisat2Output-1.0",
		"kb_hisat2.Hisat2Output-2.0",
		"kb_hisat2.Hisat2Params-1.0",
		"kb_hisat2.Hisat2Params-2.0",
	}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", names, want)
	}
}

func TestNew_ResolvesVersions(t *testing.T) {
	cases := map[string]typetoken.Token{
		"kb_hisat2.Hisat2Params":       Hisat2ParamsType,
		"kb_hisat2.Hisat2Params-1.0":   LegacyHisat2ParamsType,
		"kb_hisat2.Hisat2Output":       Hisat2OutputType,
		"kb_hisat2.Hisat2Output-1.0":   Hisat2SetOutputType,
		"kb_hisat2.AlignmentObj-1.0":   AlignmentObjType,
		" kb_hisat2.AlignmentObj-1.0 ": AlignmentObjType,
	}
	for in, want := range cases {
		r, err := New(in)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if r.TypeName() != want {
			t.Fatalf("%s: got %s, want %s", in, r.TypeName(), want)
		}
	}
}

func TestNew_UnknownType(t *testing.T) {
	var ute *UnknownTypeError
	for _, in := range []string{"kb_hisat2.Hisat2Params-3.0", "kb_hisat2.Nope", "KBaseGenomes.Genome-4.0"} {
		if _, err := New(in); !errors.As(err, &ute) {
			t.Fatalf("%s: expected UnknownTypeError, got %v", in, err)
		}
	}
	if _, err := New("not a type"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDecode_ForwardCompatible(t *testing.T) {
	r, err := Decode("kb_hisat2.Hisat2Output", []byte(`{"report_name":"Report","report_ref":"37/9/1","future_field":42}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	o, ok := r.(*Hisat2Output)
	if !ok {
		t.Fatalf("expected *Hisat2Output, got %T", r)
	}
	if *o.ReportName != "Report" || o.AlignmentRef != nil {
		t.Fatalf("unexpected record: %s", o)
	}
	if raw, _ := o.Extension("future_field"); string(raw) != "42" {
		t.Fatalf("expected future_field preserved, got %s", raw)
	}
}

func TestDecode_RejectsNonRecords(t *testing.T) {
	var de *DecodeError
	for _, in := range []string{`null`, ` null `, `[]`, `"x"`} {
		if _, err := Decode("kb_hisat2.AlignmentObj", []byte(in)); !errors.As(err, &de) {
			t.Fatalf("%q: expected DecodeError, got %v", in, err)
		}
	}
}

func TestEqual(t *testing.T) {
	a := (&AlignmentObj{}).WithName("n")
	b := (&AlignmentObj{}).WithName("n")
	mustEqualRecords(t, a, b)

	if err := a.SetExtension("k", 1.0); err != nil {
		t.Fatalf("set extension: %v", err)
	}
	var c AlignmentObj
	mustUnmarshalJSON(t, []byte(`{"k": 1, "name": "n"}`), &c)
	mustEqualRecords(t, a, &c)

	ok, err := Equal(b, a)
	if err != nil || ok {
		t.Fatalf("expected unequal, got %v, %v", ok, err)
	}

	// Same wire fields, different shape.
	ok, err = Equal(&Hisat2Output{}, &Hisat2SetOutput{})
	if err != nil || ok {
		t.Fatalf("expected different shapes unequal, got %v, %v", ok, err)
	}
}

func TestRecord_FieldNamesReturnsCopy(t *testing.T) {
	var a AlignmentObj
	names := a.FieldNames()
	names[0] = "changed"
	if a.FieldNames()[0] != "alignment_ref" {
		t.Fatal("FieldNames exposed the package slice")
	}
}

func TestRecord_LogValue(t *testing.T) {
	o := (&Hisat2SetOutput{}).
		WithReportName("Report").
		WithAlignmentObj("37/3/1", *(&AlignmentObj{}).WithName("reads_alignment"))
	if err := o.SetExtension("future_field", 42); err != nil {
		t.Fatalf("set extension: %v", err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Info("aligned", "output", o)

	got := strings.TrimSpace(buf.String())
	want := "msg=aligned output.report_name=Report output.alignment_objs.37/3/1.name=reads_alignment output.extensions.future_field=42"
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}
