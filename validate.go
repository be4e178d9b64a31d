package kbhisat2

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kbaseapps/kbhisat2-go/schemas"
	"github.com/kbaseapps/kbhisat2-go/typetoken"
)

type validateOptions struct {
	rejectUnknownFields bool
	skipSchema          bool
}

// ValidateOption configures Validate.
type ValidateOption func(*validateOptions)

// WithRejectUnknownFields treats extension fields as errors, including those
// of nested alignment objects. By default they are allowed for forward
// compatibility.
func WithRejectUnknownFields() ValidateOption {
	return func(o *validateOptions) { o.rejectUnknownFields = true }
}

// WithoutSchema skips the JSON Schema check.
func WithoutSchema() ValidateOption {
	return func(o *validateOptions) { o.skipSchema = true }
}

// Validate checks r against its shape's schema. Records are never validated
// implicitly: mutators and codecs accept any value of the declared type.
func Validate(r Record, opts ...ValidateOption) error {
	var o validateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var errs []string

	if !o.skipSchema {
		doc, err := r.MarshalJSON()
		if err != nil {
			return fmt.Errorf("kbhisat2: validate %s: %w", r.TypeName(), err)
		}
		if err := schemas.Validate(r.TypeName().String(), doc); err != nil {
			errs = append(errs, schemas.Problems(err)...)
		}
	}

	if o.rejectUnknownFields {
		appendUnknownFieldProblems(&errs, "", r.Extensions())
		if so, ok := r.(*Hisat2SetOutput); ok {
			for _, k := range sortedKeys(so.AlignmentObjs) {
				appendUnknownFieldProblems(&errs, fmt.Sprintf("alignment_objs[%q]", k), so.AlignmentObjs[k].fields)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Type: r.TypeName(), Problems: errs}
}

func appendUnknownFieldProblems(errs *[]string, prefix string, unknown map[string]json.RawMessage) {
	if len(unknown) == 0 {
		return
	}
	keys := strings.Join(sortedKeys(unknown), ", ")
	if prefix == "" {
		*errs = append(*errs, "unknown fields: "+keys)
		return
	}
	*errs = append(*errs, fmt.Sprintf("%s: unknown fields: %s", prefix, keys))
}

// ValidationError is a deterministic, multi-problem validation error.
type ValidationError struct {
	Type     typetoken.Token
	Problems []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid record"
	}
	return "invalid " + e.Type.String() + ": " + strings.Join(e.Problems, "; ")
}
