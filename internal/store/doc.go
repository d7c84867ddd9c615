// Package store provides persistence for containment run reports.
//
// ReportFileStore keeps one CBOR-encoded blob per report under
// <dir>/reports/ and a JSON index (<dir>/reports.json) mapping report IDs to
// problem fingerprints and creation times, so a previous run for the same
// problem can be found without decoding every blob. Writes go through a
// temp file and rename. MemoryStore is the in-process equivalent used by the
// solve daemon and tests.
//
// All methods are concurrency-safe via internal locking.
package store
