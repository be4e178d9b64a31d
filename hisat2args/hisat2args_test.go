package hisat2args

import (
	"errors"
	"strings"
	"testing"

	kbhisat2 "github.com/kbaseapps/kbhisat2-go"
)

func TestBuild_DefaultsThreads(t *testing.T) {
	got := strings.Join(Build(&kbhisat2.Hisat2Params{}), " ")
	if got != "-p 2" {
		t.Fatalf("unexpected args: %q", got)
	}
}

func TestBuild_FlagOrder(t *testing.T) {
	p := (&kbhisat2.Hisat2Params{}).
		WithMaxIntronLength(500000).
		WithSkip(10).
		WithTailorAlignments("dta-cufflinks").
		WithNoSplicedAlignment(1).
		WithOrientation("fr").
		WithQualityScore("phred33").
		WithNumThreads(8).
		WithTrim5(3)

	got := strings.Join(Build(p), " ")
	want := "-p 8 --phred33 --fr --no-spliced-alignment --dta-cufflinks --skip 10 --trim5 3 --max-intronlen 500000"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestBuild_NoSplicedAlignmentZeroIsOff(t *testing.T) {
	p := (&kbhisat2.Hisat2Params{}).WithNoSplicedAlignment(0)
	for _, a := range Build(p) {
		if a == "--no-spliced-alignment" {
			t.Fatalf("expected flag omitted for 0, got %v", Build(p))
		}
	}
}

func TestParse_InvertsBuild(t *testing.T) {
	in := (&kbhisat2.Hisat2Params{}).
		WithNumThreads(4).
		WithQualityScore("phred64").
		WithOrientation("rf").
		WithNoSplicedAlignment(1).
		WithTailorAlignments("dta").
		WithSkip(1).
		WithTrim3(2).
		WithTrim5(3).
		WithNp(1).
		WithMinins(100).
		WithMaxins(500).
		WithMinIntronLength(20).
		WithMaxIntronLength(500000)

	out, err := Parse(strings.Join(Build(in), " "))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ok, err := kbhisat2.Equal(in, out)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if !ok {
		t.Fatalf("round trip mismatch:\n in: %s\nout: %s", in, out)
	}
}

func TestParse_InlineValues(t *testing.T) {
	p, err := Parse(`--threads=3 --skip=7 '--trim3' 2`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.NumThreads == nil || *p.NumThreads != 3 {
		t.Fatalf("unexpected num_threads: %v", p.NumThreads)
	}
	if p.Skip == nil || *p.Skip != 7 {
		t.Fatalf("unexpected skip: %v", p.Skip)
	}
	if p.Trim3 == nil || *p.Trim3 != 2 {
		t.Fatalf("unexpected trim3: %v", p.Trim3)
	}
}

func TestParse_Errors(t *testing.T) {
	var ufe *UnknownFlagError
	if _, err := Parse("-p 2 --very-sensitive"); !errors.As(err, &ufe) || ufe.Flag != "--very-sensitive" {
		t.Fatalf("expected UnknownFlagError, got %v", err)
	}
	if _, err := Parse("phred33"); !errors.As(err, &ufe) {
		t.Fatalf("expected bare word rejected, got %v", err)
	}
	if _, err := Parse("--skip"); err == nil {
		t.Fatal("expected missing value error")
	}
	if _, err := Parse("--skip many"); err == nil {
		t.Fatal("expected parse error for non-integer value")
	}
	if _, err := Parse(`--skip "1`); err == nil {
		t.Fatal("expected tokenizer error for unterminated quote")
	}
}

func TestAlignerOpts(t *testing.T) {
	p := (&kbhisat2.Hisat2Params{}).
		WithWSName("my_workspace").
		WithGenomeRef("37/2/1").
		WithNumThreads(2)
	if err := p.SetExtension("future_field", map[string]int{"depth": 3}); err != nil {
		t.Fatalf("set extension: %v", err)
	}

	got, err := AlignerOpts(p)
	if err != nil {
		t.Fatalf("aligner opts: %v", err)
	}
	want := map[string]string{
		"ws_name":      "my_workspace",
		"genome_ref":   "37/2/1",
		"num_threads":  "2",
		"future_field": `{"depth":3}`,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: got %q, want %q", k, got[k], v)
		}
	}
}
