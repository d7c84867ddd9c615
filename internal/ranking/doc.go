// Package ranking orders volume-tagged entities from largest to smallest.
//
// The sort is a top-down merge sort: O(N log N) comparisons in the worst
// case, with heap-backed scratch buffers allocated per merge. It is stable,
// so entities of equal volume keep their input order; that makes the result
// reproducible for a given input even though tie order never changes the
// uncontained total.
//
// DescendingParallel splits ranges larger than a cutoff across goroutines
// and produces exactly the same sequence as Descending.
package ranking
