// Package kbhisat2 models the records exchanged with the KBase HISAT2
// alignment app: the run parameters, the per-reads alignment result and
// the two shapes of run output.
//
// Every record round-trips losslessly through JSON and YAML. Fields the
// record does not declare are kept as compact JSON in an extension bag and
// written back after the declared fields, sorted by name.
//
// # Quick Start
//
//	r, err := kbhisat2.Decode("kb_hisat2.Hisat2Output", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := r.(*kbhisat2.Hisat2Output)
//	fmt.Println(out)
//
//	if err := kbhisat2.Validate(out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Shapes
//
// The parameters and the output each exist in two shapes, told apart by the
// major version of their KBase type name:
//
//   - kb_hisat2.Hisat2Params-2.0 (Hisat2Params) names outputs with alignment_suffix
//   - kb_hisat2.Hisat2Params-1.0 (LegacyHisat2Params) names the set with alignmentset_name
//   - kb_hisat2.Hisat2Output-2.0 (Hisat2Output) carries a single alignment_ref
//   - kb_hisat2.Hisat2Output-1.0 (Hisat2SetOutput) carries alignmentset_ref and alignment_objs
//
// A name without a version resolves to the latest one.
//
// # Extensions
//
// SetExtension refuses names that are declared on the record and returns a
// *CollisionError, so a declared field and an extension can never share a key.
// Extensions returns a copy of the bag.
//
// # Concurrency
//
// Records are plain values. Concurrent reads are safe; writes need external
// synchronization.
//
// # Subpackages
//
//   - canonicaljson: RFC 8785 (JCS) serialization used by Equal
//   - typetoken: parse and compare Module.Name-Major.Minor type names
//   - schemas: embedded JSON Schemas for every record type
//   - hisat2args: translate params to and from hisat2 command-line flags
package kbhisat2
