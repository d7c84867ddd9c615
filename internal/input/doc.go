// Package input decodes containment problems.
//
// The text format is a whitespace separated stream of integers: the mote
// count M and device count D, then M radii, then D length/width/height
// triples. Tokens past the last device are ignored.
//
// YAML and JSON documents carry the same data:
//
//	motes: [1, 5]
//	devices:
//	  - [2, 2, 2]
//
// Malformed, missing or negative values fail with *InputError. Counts above
// the configured limit fail with *AllocationError before any storage is
// reserved for them.
package input
