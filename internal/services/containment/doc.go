// Package containment computes the uncontained volume of a problem.
//
// The pipeline is: derive mote and device volumes, sort each side by
// non-increasing volume, then run the greedy best-fit matcher. The two sides
// are sorted concurrently when a parallel cutoff is configured; matching is
// always a single sequential pass.
package containment
