// Package digest fingerprints containment problems.
//
// A fingerprint is the hex BLAKE2b-256 digest of the problem's canonical CBOR
// encoding (core deterministic encoding, motes and devices as arrays in input
// order). Two problems with the same motes and devices in the same order
// share a fingerprint, which lets stored reports be reused.
package digest
