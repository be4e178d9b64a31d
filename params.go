package kbhisat2

import (
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

var (
	hisat2ParamsFields = []string{
		"ws_name", "alignment_suffix", "alignmentset_suffix", "sampleset_ref",
		"condition", "genome_ref", "num_threads", "quality_score", "skip",
		"trim3", "trim5", "np", "minins", "maxins", "orientation",
		"min_intron_length", "max_intron_length", "no_spliced_alignment",
		"transcriptome_mapping_only", "tailor_alignments", "build_report",
	}
	legacyHisat2ParamsFields = []string{
		"ws_name", "alignmentset_name", "sampleset_ref", "genome_ref",
		"condition", "num_threads", "quality_score", "skip", "trim3", "trim5",
		"np", "minins", "maxins", "orientation", "min_intron_length",
		"max_intron_length", "no_spliced_alignment",
		"transcriptome_mapping_only", "tailor_alignments",
	}

	knownHisat2ParamsSet       = knownSet(hisat2ParamsFields...)
	knownLegacyHisat2ParamsSet = knownSet(legacyHisat2ParamsFields...)
)

// Hisat2Params is the input for an alignment run.
//
// Boolean-valued fields (NoSplicedAlignment, TranscriptomeMappingOnly,
// BuildReport) follow the workspace convention: 0 is false, 1 is true.
type Hisat2Params struct {
	// WSName is the workspace that receives the output objects.
	WSName *string
	// AlignmentSuffix is appended to each reads object name to name its alignment.
	AlignmentSuffix *string
	// AlignmentsetSuffix is appended to the reads set name when a set is aligned.
	AlignmentsetSuffix *string
	// SamplesetRef references a reads library or a set of reads libraries.
	SamplesetRef *string
	// Condition is the experimental condition. Required for single reads, ignored for sets.
	Condition *string
	// GenomeRef references the genome or assembly to align against.
	GenomeRef *string

	NumThreads   *int64  // default 2
	QualityScore *string // phred33 or phred64
	Skip         *int64  // initial reads to skip
	Trim3        *int64  // bases trimmed off the 3' end
	Trim5        *int64  // bases trimmed off the 5' end
	Np           *int64  // ambiguous-character penalty
	Minins       *int64  // minimum paired-end fragment length
	Maxins       *int64  // maximum paired-end fragment length
	Orientation  *string // fr, rf or ff

	MinIntronLength          *int64
	MaxIntronLength          *int64
	NoSplicedAlignment       *int64
	TranscriptomeMappingOnly *int64
	TailorAlignments         *string // dta or dta-cufflinks
	// BuildReport is set by parent runs that build a single report for a set of subtasks.
	BuildReport *int64

	extensionBag
}

type hisat2ParamsWire struct {
	WSName                   *string `json:"ws_name,omitempty"`
	AlignmentSuffix          *string `json:"alignment_suffix,omitempty"`
	AlignmentsetSuffix       *string `json:"alignmentset_suffix,omitempty"`
	SamplesetRef             *string `json:"sampleset_ref,omitempty"`
	Condition                *string `json:"condition,omitempty"`
	GenomeRef                *string `json:"genome_ref,omitempty"`
	NumThreads               *int64  `json:"num_threads,omitempty"`
	QualityScore             *string `json:"quality_score,omitempty"`
	Skip                     *int64  `json:"skip,omitempty"`
	Trim3                    *int64  `json:"trim3,omitempty"`
	Trim5                    *int64  `json:"trim5,omitempty"`
	Np                       *int64  `json:"np,omitempty"`
	Minins                   *int64  `json:"minins,omitempty"`
	Maxins                   *int64  `json:"maxins,omitempty"`
	Orientation              *string `json:"orientation,omitempty"`
	MinIntronLength          *int64  `json:"min_intron_length,omitempty"`
	MaxIntronLength          *int64  `json:"max_intron_length,omitempty"`
	NoSplicedAlignment       *int64  `json:"no_spliced_alignment,omitempty"`
	TranscriptomeMappingOnly *int64  `json:"transcriptome_mapping_only,omitempty"`
	TailorAlignments         *string `json:"tailor_alignments,omitempty"`
	BuildReport              *int64  `json:"build_report,omitempty"`
}

// WithWSName sets ws_name and returns p.
func (p *Hisat2Params) WithWSName(v string) *Hisat2Params {
	p.WSName = &v
	return p
}

// WithAlignmentSuffix sets alignment_suffix and returns p.
func (p *Hisat2Params) WithAlignmentSuffix(v string) *Hisat2Params {
	p.AlignmentSuffix = &v
	return p
}

// WithAlignmentsetSuffix sets alignmentset_suffix and returns p.
func (p *Hisat2Params) WithAlignmentsetSuffix(v string) *Hisat2Params {
	p.AlignmentsetSuffix = &v
	return p
}

// WithSamplesetRef sets sampleset_ref and returns p.
func (p *Hisat2Params) WithSamplesetRef(v string) *Hisat2Params {
	p.SamplesetRef = &v
	return p
}

// WithCondition sets condition and returns p.
func (p *Hisat2Params) WithCondition(v string) *Hisat2Params {
	p.Condition = &v
	return p
}

// WithGenomeRef sets genome_ref and returns p.
func (p *Hisat2Params) WithGenomeRef(v string) *Hisat2Params {
	p.GenomeRef = &v
	return p
}

// WithNumThreads sets num_threads and returns p.
func (p *Hisat2Params) WithNumThreads(v int64) *Hisat2Params {
	p.NumThreads = &v
	return p
}

// WithQualityScore sets quality_score and returns p.
func (p *Hisat2Params) WithQualityScore(v string) *Hisat2Params {
	p.QualityScore = &v
	return p
}

// WithSkip sets skip and returns p.
func (p *Hisat2Params) WithSkip(v int64) *Hisat2Params {
	p.Skip = &v
	return p
}

// WithTrim3 sets trim3 and returns p.
func (p *Hisat2Params) WithTrim3(v int64) *Hisat2Params {
	p.Trim3 = &v
	return p
}

// WithTrim5 sets trim5 and returns p.
func (p *Hisat2Params) WithTrim5(v int64) *Hisat2Params {
	p.Trim5 = &v
	return p
}

// WithNp sets np and returns p.
func (p *Hisat2Params) WithNp(v int64) *Hisat2Params {
	p.Np = &v
	return p
}

// WithMinins sets minins and returns p.
func (p *Hisat2Params) WithMinins(v int64) *Hisat2Params {
	p.Minins = &v
	return p
}

// WithMaxins sets maxins and returns p.
func (p *Hisat2Params) WithMaxins(v int64) *Hisat2Params {
	p.Maxins = &v
	return p
}

// WithOrientation sets orientation and returns p.
func (p *Hisat2Params) WithOrientation(v string) *Hisat2Params {
	p.Orientation = &v
	return p
}

// WithMinIntronLength sets min_intron_length and returns p.
func (p *Hisat2Params) WithMinIntronLength(v int64) *Hisat2Params {
	p.MinIntronLength = &v
	return p
}

// WithMaxIntronLength sets max_intron_length and returns p.
func (p *Hisat2Params) WithMaxIntronLength(v int64) *Hisat2Params {
	p.MaxIntronLength = &v
	return p
}

// WithNoSplicedAlignment sets no_spliced_alignment and returns p.
func (p *Hisat2Params) WithNoSplicedAlignment(v int64) *Hisat2Params {
	p.NoSplicedAlignment = &v
	return p
}

// WithTranscriptomeMappingOnly sets transcriptome_mapping_only and returns p.
func (p *Hisat2Params) WithTranscriptomeMappingOnly(v int64) *Hisat2Params {
	p.TranscriptomeMappingOnly = &v
	return p
}

// WithTailorAlignments sets tailor_alignments and returns p.
func (p *Hisat2Params) WithTailorAlignments(v string) *Hisat2Params {
	p.TailorAlignments = &v
	return p
}

// WithBuildReport sets build_report and returns p.
func (p *Hisat2Params) WithBuildReport(v int64) *Hisat2Params {
	p.BuildReport = &v
	return p
}

func (p Hisat2Params) TypeName() typetoken.Token { return Hisat2ParamsType }

func (p Hisat2Params) FieldNames() []string { return append([]string(nil), hisat2ParamsFields...) }

func (p *Hisat2Params) SetExtension(name string, v any) error {
	return p.set(Hisat2ParamsType, knownHisat2ParamsSet, name, v)
}

func (p *Hisat2Params) UnmarshalJSON(b []byte) error {
	var w hisat2ParamsWire
	unknown, err := decodeLossless(Hisat2ParamsType, b, &w, knownHisat2ParamsSet)
	if err != nil {
		return err
	}
	*p = Hisat2Params{
		WSName:                   w.WSName,
		AlignmentSuffix:          w.AlignmentSuffix,
		AlignmentsetSuffix:       w.AlignmentsetSuffix,
		SamplesetRef:             w.SamplesetRef,
		Condition:                w.Condition,
		GenomeRef:                w.GenomeRef,
		NumThreads:               w.NumThreads,
		QualityScore:             w.QualityScore,
		Skip:                     w.Skip,
		Trim3:                    w.Trim3,
		Trim5:                    w.Trim5,
		Np:                       w.Np,
		Minins:                   w.Minins,
		Maxins:                   w.Maxins,
		Orientation:              w.Orientation,
		MinIntronLength:          w.MinIntronLength,
		MaxIntronLength:          w.MaxIntronLength,
		NoSplicedAlignment:       w.NoSplicedAlignment,
		TranscriptomeMappingOnly: w.TranscriptomeMappingOnly,
		TailorAlignments:         w.TailorAlignments,
		BuildReport:              w.BuildReport,
	}
	p.fields = unknown
	return nil
}

func (p Hisat2Params) MarshalJSON() ([]byte, error) {
	w := hisat2ParamsWire{
		WSName:                   p.WSName,
		AlignmentSuffix:          p.AlignmentSuffix,
		AlignmentsetSuffix:       p.AlignmentsetSuffix,
		SamplesetRef:             p.SamplesetRef,
		Condition:                p.Condition,
		GenomeRef:                p.GenomeRef,
		NumThreads:               p.NumThreads,
		QualityScore:             p.QualityScore,
		Skip:                     p.Skip,
		Trim3:                    p.Trim3,
		Trim5:                    p.Trim5,
		Np:                       p.Np,
		Minins:                   p.Minins,
		Maxins:                   p.Maxins,
		Orientation:              p.Orientation,
		MinIntronLength:          p.MinIntronLength,
		MaxIntronLength:          p.MaxIntronLength,
		NoSplicedAlignment:       p.NoSplicedAlignment,
		TranscriptomeMappingOnly: p.TranscriptomeMappingOnly,
		TailorAlignments:         p.TailorAlignments,
		BuildReport:              p.BuildReport,
	}
	return marshalLossless(w, p.fields)
}

func (p *Hisat2Params) UnmarshalYAML(n *yaml.Node) error {
	b, err := jsonFromYAML(Hisat2ParamsType, n)
	if err != nil {
		return err
	}
	return p.UnmarshalJSON(b)
}

func (p Hisat2Params) MarshalYAML() (any, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return yamlNode(b)
}

func (p Hisat2Params) view() []field {
	return []field{
		textField("ws_name", p.WSName),
		textField("alignment_suffix", p.AlignmentSuffix),
		textField("alignmentset_suffix", p.AlignmentsetSuffix),
		textField("sampleset_ref", p.SamplesetRef),
		textField("condition", p.Condition),
		textField("genome_ref", p.GenomeRef),
		intField("num_threads", p.NumThreads),
		textField("quality_score", p.QualityScore),
		intField("skip", p.Skip),
		intField("trim3", p.Trim3),
		intField("trim5", p.Trim5),
		intField("np", p.Np),
		intField("minins", p.Minins),
		intField("maxins", p.Maxins),
		textField("orientation", p.Orientation),
		intField("min_intron_length", p.MinIntronLength),
		intField("max_intron_length", p.MaxIntronLength),
		intField("no_spliced_alignment", p.NoSplicedAlignment),
		intField("transcriptome_mapping_only", p.TranscriptomeMappingOnly),
		textField("tailor_alignments", p.TailorAlignments),
		intField("build_report", p.BuildReport),
	}
}

func (p Hisat2Params) String() string { return render(Hisat2ParamsType, p.view(), p.fields) }

func (p Hisat2Params) LogValue() slog.Value { return logValue(p.view(), p.fields) }

// LegacyHisat2Params is the earlier params shape, which names the output
// alignment set directly instead of deriving names from suffixes.
type LegacyHisat2Params struct {
	WSName *string
	// AlignmentsetName is the name of the alignment set object to create.
	AlignmentsetName *string
	SamplesetRef     *string
	GenomeRef        *string
	Condition        *string

	NumThreads               *int64
	QualityScore             *string
	Skip                     *int64
	Trim3                    *int64
	Trim5                    *int64
	Np                       *int64
	Minins                   *int64
	Maxins                   *int64
	Orientation              *string
	MinIntronLength          *int64
	MaxIntronLength          *int64
	NoSplicedAlignment       *int64
	TranscriptomeMappingOnly *int64
	TailorAlignments         *string

	extensionBag
}

type legacyHisat2ParamsWire struct {
	WSName                   *string `json:"ws_name,omitempty"`
	AlignmentsetName         *string `json:"alignmentset_name,omitempty"`
	SamplesetRef             *string `json:"sampleset_ref,omitempty"`
	GenomeRef                *string `json:"genome_ref,omitempty"`
	Condition                *string `json:"condition,omitempty"`
	NumThreads               *int64  `json:"num_threads,omitempty"`
	QualityScore             *string `json:"quality_score,omitempty"`
	Skip                     *int64  `json:"skip,omitempty"`
	Trim3                    *int64  `json:"trim3,omitempty"`
	Trim5                    *int64  `json:"trim5,omitempty"`
	Np                       *int64  `json:"np,omitempty"`
	Minins                   *int64  `json:"minins,omitempty"`
	Maxins                   *int64  `json:"maxins,omitempty"`
	Orientation              *string `json:"orientation,omitempty"`
	MinIntronLength          *int64  `json:"min_intron_length,omitempty"`
	MaxIntronLength          *int64  `json:"max_intron_length,omitempty"`
	NoSplicedAlignment       *int64  `json:"no_spliced_alignment,omitempty"`
	TranscriptomeMappingOnly *int64  `json:"transcriptome_mapping_only,omitempty"`
	TailorAlignments         *string `json:"tailor_alignments,omitempty"`
}

// WithWSName sets ws_name and returns p.
func (p *LegacyHisat2Params) WithWSName(v string) *LegacyHisat2Params {
	p.WSName = &v
	return p
}

// WithAlignmentsetName sets alignmentset_name and returns p.
func (p *LegacyHisat2Params) WithAlignmentsetName(v string) *LegacyHisat2Params {
	p.AlignmentsetName = &v
	return p
}

// WithSamplesetRef sets sampleset_ref and returns p.
func (p *LegacyHisat2Params) WithSamplesetRef(v string) *LegacyHisat2Params {
	p.SamplesetRef = &v
	return p
}

// WithGenomeRef sets genome_ref and returns p.
func (p *LegacyHisat2Params) WithGenomeRef(v string) *LegacyHisat2Params {
	p.GenomeRef = &v
	return p
}

// WithCondition sets condition and returns p.
func (p *LegacyHisat2Params) WithCondition(v string) *LegacyHisat2Params {
	p.Condition = &v
	return p
}

// WithNumThreads sets num_threads and returns p.
func (p *LegacyHisat2Params) WithNumThreads(v int64) *LegacyHisat2Params {
	p.NumThreads = &v
	return p
}

// WithQualityScore sets quality_score and returns p.
func (p *LegacyHisat2Params) WithQualityScore(v string) *LegacyHisat2Params {
	p.QualityScore = &v
	return p
}

// WithSkip sets skip and returns p.
func (p *LegacyHisat2Params) WithSkip(v int64) *LegacyHisat2Params {
	p.Skip = &v
	return p
}

// WithTrim3 sets trim3 and returns p.
func (p *LegacyHisat2Params) WithTrim3(v int64) *LegacyHisat2Params {
	p.Trim3 = &v
	return p
}

// WithTrim5 sets trim5 and returns p.
func (p *LegacyHisat2Params) WithTrim5(v int64) *LegacyHisat2Params {
	p.Trim5 = &v
	return p
}

// WithNp sets np and returns p.
func (p *LegacyHisat2Params) WithNp(v int64) *LegacyHisat2Params {
	p.Np = &v
	return p
}

// WithMinins sets minins and returns p.
func (p *LegacyHisat2Params) WithMinins(v int64) *LegacyHisat2Params {
	p.Minins = &v
	return p
}

// WithMaxins sets maxins and returns p.
func (p *LegacyHisat2Params) WithMaxins(v int64) *LegacyHisat2Params {
	p.Maxins = &v
	return p
}

// WithOrientation sets orientation and returns p.
func (p *LegacyHisat2Params) WithOrientation(v string) *LegacyHisat2Params {
	p.Orientation = &v
	return p
}

// WithMinIntronLength sets min_intron_length and returns p.
func (p *LegacyHisat2Params) WithMinIntronLength(v int64) *LegacyHisat2Params {
	p.MinIntronLength = &v
	return p
}

// WithMaxIntronLength sets max_intron_length and returns p.
func (p *LegacyHisat2Params) WithMaxIntronLength(v int64) *LegacyHisat2Params {
	p.MaxIntronLength = &v
	return p
}

// WithNoSplicedAlignment sets no_spliced_alignment and returns p.
func (p *LegacyHisat2Params) WithNoSplicedAlignment(v int64) *LegacyHisat2Params {
	p.NoSplicedAlignment = &v
	return p
}

// WithTranscriptomeMappingOnly sets transcriptome_mapping_only and returns p.
func (p *LegacyHisat2Params) WithTranscriptomeMappingOnly(v int64) *LegacyHisat2Params {
	p.TranscriptomeMappingOnly = &v
	return p
}

// WithTailorAlignments sets tailor_alignments and returns p.
func (p *LegacyHisat2Params) WithTailorAlignments(v string) *LegacyHisat2Params {
	p.TailorAlignments = &v
	return p
}

func (p LegacyHisat2Params) TypeName() typetoken.Token { return LegacyHisat2ParamsType }

func (p LegacyHisat2Params) FieldNames() []string {
	return append([]string(nil), legacyHisat2ParamsFields...)
}

func (p *LegacyHisat2Params) SetExtension(name string, v any) error {
	return p.set(LegacyHisat2ParamsType, knownLegacyHisat2ParamsSet, name, v)
}

func (p *LegacyHisat2Params) UnmarshalJSON(b []byte) error {
	var w legacyHisat2ParamsWire
	unknown, err := decodeLossless(LegacyHisat2ParamsType, b, &w, knownLegacyHisat2ParamsSet)
	if err != nil {
		return err
	}
	*p = LegacyHisat2Params{
		WSName:                   w.WSName,
		AlignmentsetName:         w.AlignmentsetName,
		SamplesetRef:             w.SamplesetRef,
		GenomeRef:                w.GenomeRef,
		Condition:                w.Condition,
		NumThreads:               w.NumThreads,
		QualityScore:             w.QualityScore,
		Skip:                     w.Skip,
		Trim3:                    w.Trim3,
		Trim5:                    w.Trim5,
		Np:                       w.Np,
		Minins:                   w.Minins,
		Maxins:                   w.Maxins,
		Orientation:              w.Orientation,
		MinIntronLength:          w.MinIntronLength,
		MaxIntronLength:          w.MaxIntronLength,
		NoSplicedAlignment:       w.NoSplicedAlignment,
		TranscriptomeMappingOnly: w.TranscriptomeMappingOnly,
		TailorAlignments:         w.TailorAlignments,
	}
	p.fields = unknown
	return nil
}

func (p LegacyHisat2Params) MarshalJSON() ([]byte, error) {
	w := legacyHisat2ParamsWire{
		WSName:                   p.WSName,
		AlignmentsetName:         p.AlignmentsetName,
		SamplesetRef:             p.SamplesetRef,
		GenomeRef:                p.GenomeRef,
		Condition:                p.Condition,
		NumThreads:               p.NumThreads,
		QualityScore:             p.QualityScore,
		Skip:                     p.Skip,
		Trim3:                    p.Trim3,
		Trim5:                    p.Trim5,
		Np:                       p.Np,
		Minins:                   p.Minins,
		Maxins:                   p.Maxins,
		Orientation:              p.Orientation,
		MinIntronLength:          p.MinIntronLength,
		MaxIntronLength:          p.MaxIntronLength,
		NoSplicedAlignment:       p.NoSplicedAlignment,
		TranscriptomeMappingOnly: p.TranscriptomeMappingOnly,
		TailorAlignments:         p.TailorAlignments,
	}
	return marshalLossless(w, p.fields)
}

func (p *LegacyHisat2Params) UnmarshalYAML(n *yaml.Node) error {
	b, err := jsonFromYAML(LegacyHisat2ParamsType, n)
	if err != nil {
		return err
	}
	return p.UnmarshalJSON(b)
}

func (p LegacyHisat2Params) MarshalYAML() (any, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return yamlNode(b)
}

func (p LegacyHisat2Params) view() []field {
	return []field{
		textField("ws_name", p.WSName),
		textField("alignmentset_name", p.AlignmentsetName),
		textField("sampleset_ref", p.SamplesetRef),
		textField("genome_ref", p.GenomeRef),
		textField("condition", p.Condition),
		intField("num_threads", p.NumThreads),
		textField("quality_score", p.QualityScore),
		intField("skip", p.Skip),
		intField("trim3", p.Trim3),
		intField("trim5", p.Trim5),
		intField("np", p.Np),
		intField("minins", p.Minins),
		intField("maxins", p.Maxins),
		textField("orientation", p.Orientation),
		intField("min_intron_length", p.MinIntronLength),
		intField("max_intron_length", p.MaxIntronLength),
		intField("no_spliced_alignment", p.NoSplicedAlignment),
		intField("transcriptome_mapping_only", p.TranscriptomeMappingOnly),
		textField("tailor_alignments", p.TailorAlignments),
	}
}

func (p LegacyHisat2Params) String() string {
	return render(LegacyHisat2ParamsType, p.view(), p.fields)
}

func (p LegacyHisat2Params) LogValue() slog.Value { return logValue(p.view(), p.fields) }
