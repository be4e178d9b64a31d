package kbhisat2

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

// Type tokens for the record shapes. Two generations of the params and
// output shapes exist on the wire under the same type name; they are
// separate Go types told apart by major version.
var (
	AlignmentObjType       = typetoken.MustParse("kb_hisat2.AlignmentObj-1.0")
	Hisat2OutputType       = typetoken.MustParse("kb_hisat2.Hisat2Output-2.0")
	Hisat2SetOutputType    = typetoken.MustParse("kb_hisat2.Hisat2Output-1.0")
	Hisat2ParamsType       = typetoken.MustParse("kb_hisat2.Hisat2Params-2.0")
	LegacyHisat2ParamsType = typetoken.MustParse("kb_hisat2.Hisat2Params-1.0")
)

// Declared wire names, in wire order.
var (
	alignmentObjFields    = []string{"alignment_ref", "name"}
	hisat2OutputFields    = []string{"report_name", "report_ref", "alignment_ref"}
	hisat2SetOutputFields = []string{"report_name", "report_ref", "alignmentset_ref", "alignment_objs"}

	knownAlignmentObjSet    = knownSet(alignmentObjFields...)
	knownHisat2OutputSet    = knownSet(hisat2OutputFields...)
	knownHisat2SetOutputSet = knownSet(hisat2SetOutputFields...)
)

// Ptr returns a pointer to v, for populating optional fields inline.
func Ptr[T any](v T) *T {
	return &v
}

// AlignmentObj is a created alignment object.
type AlignmentObj struct {
	// AlignmentRef is the workspace reference of the new alignment object.
	AlignmentRef *string
	// Name is the name of the new object, for convenience.
	Name *string

	extensionBag
}

type alignmentObjWire struct {
	AlignmentRef *string `json:"alignment_ref,omitempty"`
	Name         *string `json:"name,omitempty"`
}

// WithAlignmentRef sets alignment_ref and returns a.
func (a *AlignmentObj) WithAlignmentRef(v string) *AlignmentObj {
	a.AlignmentRef = &v
	return a
}

// WithName sets name and returns a.
func (a *AlignmentObj) WithName(v string) *AlignmentObj {
	a.Name = &v
	return a
}

func (a AlignmentObj) TypeName() typetoken.Token { return AlignmentObjType }

func (a AlignmentObj) FieldNames() []string { return append([]string(nil), alignmentObjFields...) }

func (a *AlignmentObj) SetExtension(name string, v any) error {
	return a.set(AlignmentObjType, knownAlignmentObjSet, name, v)
}

func (a *AlignmentObj) UnmarshalJSON(b []byte) error {
	var w alignmentObjWire
	unknown, err := decodeLossless(AlignmentObjType, b, &w, knownAlignmentObjSet)
	if err != nil {
		return err
	}
	*a = AlignmentObj{
		AlignmentRef: w.AlignmentRef,
		Name:         w.Name,
	}
	a.fields = unknown
	return nil
}

func (a AlignmentObj) MarshalJSON() ([]byte, error) {
	w := alignmentObjWire{
		AlignmentRef: a.AlignmentRef,
		Name:         a.Name,
	}
	return marshalLossless(w, a.fields)
}

func (a *AlignmentObj) UnmarshalYAML(n *yaml.Node) error {
	b, err := jsonFromYAML(AlignmentObjType, n)
	if err != nil {
		return err
	}
	return a.UnmarshalJSON(b)
}

func (a AlignmentObj) MarshalYAML() (any, error) {
	b, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return yamlNode(b)
}

func (a AlignmentObj) view() []field {
	return []field{
		textField("alignment_ref", a.AlignmentRef),
		textField("name", a.Name),
	}
}

func (a AlignmentObj) String() string { return render(AlignmentObjType, a.view(), a.fields) }

func (a AlignmentObj) LogValue() slog.Value { return logValue(a.view(), a.fields) }

// Hisat2Output is the result of a run that produced one alignment or one
// alignment set, referenced by AlignmentRef.
type Hisat2Output struct {
	ReportName   *string
	ReportRef    *string
	AlignmentRef *string

	extensionBag
}

type hisat2OutputWire struct {
	ReportName   *string `json:"report_name,omitempty"`
	ReportRef    *string `json:"report_ref,omitempty"`
	AlignmentRef *string `json:"alignment_ref,omitempty"`
}

// WithReportName sets report_name and returns o.
func (o *Hisat2Output) WithReportName(v string) *Hisat2Output {
	o.ReportName = &v
	return o
}

// WithReportRef sets report_ref and returns o.
func (o *Hisat2Output) WithReportRef(v string) *Hisat2Output {
	o.ReportRef = &v
	return o
}

// WithAlignmentRef sets alignment_ref and returns o.
func (o *Hisat2Output) WithAlignmentRef(v string) *Hisat2Output {
	o.AlignmentRef = &v
	return o
}

func (o Hisat2Output) TypeName() typetoken.Token { return Hisat2OutputType }

func (o Hisat2Output) FieldNames() []string { return append([]string(nil), hisat2OutputFields...) }

func (o *Hisat2Output) SetExtension(name string, v any) error {
	return o.set(Hisat2OutputType, knownHisat2OutputSet, name, v)
}

func (o *Hisat2Output) UnmarshalJSON(b []byte) error {
	var w hisat2OutputWire
	unknown, err := decodeLossless(Hisat2OutputType, b, &w, knownHisat2OutputSet)
	if err != nil {
		return err
	}
	*o = Hisat2Output{
		ReportName:   w.ReportName,
		ReportRef:    w.ReportRef,
		AlignmentRef: w.AlignmentRef,
	}
	o.fields = unknown
	return nil
}

func (o Hisat2Output) MarshalJSON() ([]byte, error) {
	w := hisat2OutputWire{
		ReportName:   o.ReportName,
		ReportRef:    o.ReportRef,
		AlignmentRef: o.AlignmentRef,
	}
	return marshalLossless(w, o.fields)
}

func (o *Hisat2Output) UnmarshalYAML(n *yaml.Node) error {
	b, err := jsonFromYAML(Hisat2OutputType, n)
	if err != nil {
		return err
	}
	return o.UnmarshalJSON(b)
}

func (o Hisat2Output) MarshalYAML() (any, error) {
	b, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return yamlNode(b)
}

func (o Hisat2Output) view() []field {
	return []field{
		textField("report_name", o.ReportName),
		textField("report_ref", o.ReportRef),
		textField("alignment_ref", o.AlignmentRef),
	}
}

func (o Hisat2Output) String() string { return render(Hisat2OutputType, o.view(), o.fields) }

func (o Hisat2Output) LogValue() slog.Value { return logValue(o.view(), o.fields) }

// Hisat2SetOutput is the result of a run over a reads set: the created
// alignment set plus each created alignment keyed by its reads reference.
type Hisat2SetOutput struct {
	ReportName      *string
	ReportRef       *string
	AlignmentsetRef *string
	// AlignmentObjs is nil when absent. An empty non-nil map is sent as {}.
	AlignmentObjs map[string]AlignmentObj

	extensionBag
}

type hisat2SetOutputWire struct {
	ReportName      *string                   `json:"report_name,omitempty"`
	ReportRef       *string                   `json:"report_ref,omitempty"`
	AlignmentsetRef *string                   `json:"alignmentset_ref,omitempty"`
	AlignmentObjs   *map[string]*AlignmentObj `json:"alignment_objs,omitempty"`
}

// WithReportName sets report_name and returns o.
func (o *Hisat2SetOutput) WithReportName(v string) *Hisat2SetOutput {
	o.ReportName = &v
	return o
}

// WithReportRef sets report_ref and returns o.
func (o *Hisat2SetOutput) WithReportRef(v string) *Hisat2SetOutput {
	o.ReportRef = &v
	return o
}

// WithAlignmentsetRef sets alignmentset_ref and returns o.
func (o *Hisat2SetOutput) WithAlignmentsetRef(v string) *Hisat2SetOutput {
	o.AlignmentsetRef = &v
	return o
}

// WithAlignmentObjs sets alignment_objs and returns o.
func (o *Hisat2SetOutput) WithAlignmentObjs(v map[string]AlignmentObj) *Hisat2SetOutput {
	o.AlignmentObjs = v
	return o
}

// WithAlignmentObj adds (or replaces) the alignment created for readsRef.
func (o *Hisat2SetOutput) WithAlignmentObj(readsRef string, v AlignmentObj) *Hisat2SetOutput {
	if o.AlignmentObjs == nil {
		o.AlignmentObjs = map[string]AlignmentObj{}
	}
	o.AlignmentObjs[readsRef] = v
	return o
}

func (o Hisat2SetOutput) TypeName() typetoken.Token { return Hisat2SetOutputType }

func (o Hisat2SetOutput) FieldNames() []string { return append([]string(nil), hisat2SetOutputFields...) }

func (o *Hisat2SetOutput) SetExtension(name string, v any) error {
	return o.set(Hisat2SetOutputType, knownHisat2SetOutputSet, name, v)
}

func (o *Hisat2SetOutput) UnmarshalJSON(b []byte) error {
	var w hisat2SetOutputWire
	unknown, err := decodeLossless(Hisat2SetOutputType, b, &w, knownHisat2SetOutputSet)
	if err != nil {
		return err
	}
	*o = Hisat2SetOutput{
		ReportName:      w.ReportName,
		ReportRef:       w.ReportRef,
		AlignmentsetRef: w.AlignmentsetRef,
	}
	if w.AlignmentObjs != nil {
		o.AlignmentObjs = make(map[string]AlignmentObj, len(*w.AlignmentObjs))
		for k, v := range *w.AlignmentObjs {
			if v == nil {
				*o = Hisat2SetOutput{}
				return &DecodeError{Type: Hisat2SetOutputType, Err: fmt.Errorf("alignment_objs[%q]: expected an object, got null", k)}
			}
			o.AlignmentObjs[k] = *v
		}
	}
	o.fields = unknown
	return nil
}

func (o Hisat2SetOutput) MarshalJSON() ([]byte, error) {
	w := hisat2SetOutputWire{
		ReportName:      o.ReportName,
		ReportRef:       o.ReportRef,
		AlignmentsetRef: o.AlignmentsetRef,
	}
	if o.AlignmentObjs != nil {
		objs := make(map[string]*AlignmentObj, len(o.AlignmentObjs))
		for k, v := range o.AlignmentObjs {
			v := v
			objs[k] = &v
		}
		w.AlignmentObjs = &objs
	}
	return marshalLossless(w, o.fields)
}

func (o *Hisat2SetOutput) UnmarshalYAML(n *yaml.Node) error {
	b, err := jsonFromYAML(Hisat2SetOutputType, n)
	if err != nil {
		return err
	}
	return o.UnmarshalJSON(b)
}

func (o Hisat2SetOutput) MarshalYAML() (any, error) {
	b, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return yamlNode(b)
}

func (o Hisat2SetOutput) view() []field {
	objs := field{name: "alignment_objs"}
	if o.AlignmentObjs != nil {
		objs.value = o.AlignmentObjs
	}
	return []field{
		textField("report_name", o.ReportName),
		textField("report_ref", o.ReportRef),
		textField("alignmentset_ref", o.AlignmentsetRef),
		objs,
	}
}

func (o Hisat2SetOutput) String() string { return render(Hisat2SetOutputType, o.view(), o.fields) }

func (o Hisat2SetOutput) LogValue() slog.Value { return logValue(o.view(), o.fields) }

var (
	_ json.Marshaler   = AlignmentObj{}
	_ json.Unmarshaler = (*AlignmentObj)(nil)
	_ yaml.Marshaler   = AlignmentObj{}
	_ yaml.Unmarshaler = (*AlignmentObj)(nil)
	_ slog.LogValuer   = AlignmentObj{}
)
