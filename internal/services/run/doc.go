// Package run turns solved problems into reports.
//
// A run fingerprints the problem, optionally returns a stored report for the
// same fingerprint, otherwise solves it, stamps the result with a fresh
// report ID and creation time, and optionally persists it.
package run
