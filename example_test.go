package kbhisat2_test

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	kbhisat2 "github.com/kbaseapps/kbhisat2-go"
	"github.com/kbaseapps/kbhisat2-go/canonicaljson"
	"github.com/kbaseapps/kbhisat2-go/hisat2args"
	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

func ExampleAlignmentObj() {
	a := (&kbhisat2.AlignmentObj{}).
		WithAlignmentRef("37/5/1").
		WithName("aligned_reads_1")

	out, err := json.Marshal(a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
	fmt.Println(a)
	// Output:
	// {"alignment_ref":"37/5/1","name":"aligned_reads_1"}
	// AlignmentObj [alignment_ref=37/5/1, name=aligned_reads_1, extensions={}]
}

func ExampleHisat2Output_forwardCompatible() {
	data := []byte(`{"report_name": "Report", "report_ref": "37/9/1", "future_field": 42}`)

	var o kbhisat2.Hisat2Output
	if err := json.Unmarshal(data, &o); err != nil {
		log.Fatal(err)
	}

	raw, _ := o.Extension("future_field")
	fmt.Println(string(raw))
	fmt.Println(o)
	// Output:
	// 42
	// Hisat2Output [report_name=Report, report_ref=37/9/1, alignment_ref=null, extensions={future_field=42}]
}

func ExampleDecode() {
	r, err := kbhisat2.Decode("kb_hisat2.Hisat2Params-1.0", []byte(`{"ws_name": "my_workspace", "alignmentset_name": "reads_alignment_set"}`))
	if err != nil {
		log.Fatal(err)
	}
	p := r.(*kbhisat2.LegacyHisat2Params)
	fmt.Println(r.TypeName())
	fmt.Println(*p.AlignmentsetName)
	// Output:
	// kb_hisat2.Hisat2Params-1.0
	// reads_alignment_set
}

func ExampleValidate() {
	p := (&kbhisat2.Hisat2Params{}).
		WithWSName("my_workspace").
		WithAlignmentSuffix("_alignment").
		WithSamplesetRef("37/3/1").
		WithGenomeRef("37/2/1").
		WithQualityScore("phred33")
	if err := p.SetExtension("future_field", 42); err != nil {
		log.Fatal(err)
	}

	fmt.Println("default:", kbhisat2.Validate(p))
	fmt.Println("strict:", kbhisat2.Validate(p, kbhisat2.WithRejectUnknownFields()))
	// Output:
	// default: <nil>
	// strict: invalid kb_hisat2.Hisat2Params-2.0: unknown fields: future_field
}

func ExampleCollisionError() {
	var a kbhisat2.AlignmentObj
	err := a.SetExtension("name", "shadow")
	fmt.Println(err)
	// Output: kbhisat2: kb_hisat2.AlignmentObj-1.0: extension "name" collides with a declared field
}

func Example_hisat2args() {
	p := (&kbhisat2.Hisat2Params{}).
		WithQualityScore("phred33").
		WithOrientation("fr").
		WithMinIntronLength(20)

	fmt.Println(strings.Join(hisat2args.Build(p), " "))
	// Output: -p 2 --phred33 --fr --min-intronlen 20
}

func Example_canonicaljson() {
	out, _ := canonicaljson.Marshal(map[string]any{"z": 1, "a": 2, "m": 3})
	fmt.Println(string(out))
	// Output: {"a":2,"m":3,"z":1}
}

func Example_typetoken() {
	tok, _ := typetoken.Parse("KBaseFile.PairedEndLibrary-2.1")

	fmt.Println(tok.Module, tok.Name, tok.Major, tok.Minor)
	fmt.Println(tok.MatchesAny("KBaseFile.SingleEndLibrary", "KBaseFile.PairedEndLibrary"))
	// Output:
	// KBaseFile PairedEndLibrary 2 1
	// true
}
