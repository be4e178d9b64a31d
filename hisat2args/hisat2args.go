// Package hisat2args converts alignment params to hisat2 command-line flags
// and back.
package hisat2args

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"

	kbhisat2 "github.com/kbaseapps/kbhisat2-go"
)

// DefaultNumThreads is passed as -p when the params leave num_threads unset.
const DefaultNumThreads = 2

type intFlag struct {
	flag string
	slot func(*kbhisat2.Hisat2Params) **int64
}

// intFlags are emitted in this order, each only when set.
var intFlags = []intFlag{
	{"--skip", func(p *kbhisat2.Hisat2Params) **int64 { return &p.Skip }},
	{"--trim3", func(p *kbhisat2.Hisat2Params) **int64 { return &p.Trim3 }},
	{"--trim5", func(p *kbhisat2.Hisat2Params) **int64 { return &p.Trim5 }},
	{"--np", func(p *kbhisat2.Hisat2Params) **int64 { return &p.Np }},
	{"--minins", func(p *kbhisat2.Hisat2Params) **int64 { return &p.Minins }},
	{"--maxins", func(p *kbhisat2.Hisat2Params) **int64 { return &p.Maxins }},
	{"--min-intronlen", func(p *kbhisat2.Hisat2Params) **int64 { return &p.MinIntronLength }},
	{"--max-intronlen", func(p *kbhisat2.Hisat2Params) **int64 { return &p.MaxIntronLength }},
}

var (
	qualityScores = []string{"phred33", "phred64"}
	orientations  = []string{"fr", "rf", "ff"}
	tailorModes   = []string{"dta", "dta-cufflinks"}
)

// Build returns the hisat2 flags for p. Index, reads and output arguments
// are the caller's business.
func Build(p *kbhisat2.Hisat2Params) []string {
	threads := int64(DefaultNumThreads)
	if p.NumThreads != nil {
		threads = *p.NumThreads
	}
	args := []string{"-p", strconv.FormatInt(threads, 10)}

	if p.QualityScore != nil {
		args = append(args, "--"+*p.QualityScore)
	}
	if p.Orientation != nil {
		args = append(args, "--"+*p.Orientation)
	}
	if p.NoSplicedAlignment != nil && *p.NoSplicedAlignment > 0 {
		args = append(args, "--no-spliced-alignment")
	}
	if p.TailorAlignments != nil {
		args = append(args, "--"+*p.TailorAlignments)
	}
	for _, f := range intFlags {
		if v := *f.slot(p); v != nil {
			args = append(args, f.flag, strconv.FormatInt(*v, 10))
		}
	}
	return args
}

// UnknownFlagError is returned by Parse for a flag Build never emits.
type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("hisat2args: unknown flag %q", e.Flag)
}

// Parse reads a flag string, as produced by Build and joined with spaces,
// back into params. Values may be given as "--skip 5" or "--skip=5".
func Parse(cmdline string) (*kbhisat2.Hisat2Params, error) {
	tokens, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("hisat2args: %w", err)
	}

	p := &kbhisat2.Hisat2Params{}
	for i := 0; i < len(tokens); i++ {
		flag, inline, hasInline := strings.Cut(tokens[i], "=")
		value := func() (int64, error) {
			raw := inline
			if !hasInline {
				if i+1 >= len(tokens) {
					return 0, fmt.Errorf("hisat2args: %s: missing value", flag)
				}
				i++
				raw = tokens[i]
			}
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("hisat2args: %s: %w", flag, err)
			}
			return n, nil
		}

		name := strings.TrimPrefix(flag, "--")
		switch {
		case flag == "-p" || flag == "--threads":
			n, err := value()
			if err != nil {
				return nil, err
			}
			p.NumThreads = &n
		case flag == "--no-spliced-alignment":
			p.NoSplicedAlignment = kbhisat2.Ptr[int64](1)
		case contains(qualityScores, name) && flag != name:
			p.QualityScore = &name
		case contains(orientations, name) && flag != name:
			p.Orientation = &name
		case contains(tailorModes, name) && flag != name:
			p.TailorAlignments = &name
		default:
			slot := lookupIntFlag(flag)
			if slot == nil {
				return nil, &UnknownFlagError{Flag: tokens[i]}
			}
			n, err := value()
			if err != nil {
				return nil, err
			}
			*slot(p) = &n
		}
	}
	return p, nil
}

func lookupIntFlag(flag string) func(*kbhisat2.Hisat2Params) **int64 {
	for _, f := range intFlags {
		if f.flag == flag {
			return f.slot
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// AlignerOpts stringifies every field r sends on the wire, extensions
// included, keyed by wire name. Uploaded alignments record these as the
// aligner options. Text values are used as-is; other values keep their JSON
// spelling.
func AlignerOpts(r kbhisat2.Record) (map[string]string, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if json.Unmarshal(v, &s) == nil {
			out[k] = s
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return nil, err
		}
		out[k] = buf.String()
	}
	return out, nil
}
