// Package matcher places motes into devices with a greedy best-fit policy.
//
// Motes are visited largest first. Each one claims the smallest device that
// is still unused and whose volume is at least the mote's volume minus
// Tolerance. Motes that find no device add their volume to the uncontained
// total. Devices are claimed at most once and there is no backtracking.
//
// Two Pool strategies are available. The linear pool is the reference
// O(M·D) scan from the smallest device towards the largest. The indexed pool
// keeps the available devices in ascending order and binary-searches the
// first fit; it claims exactly the same device as the linear pool for every
// mote.
package matcher
