// Package commands defines the containment CLI and wires dependencies for subcommands.
//
// Commands
//
//   - solve          Read a problem and print the uncontained volume
//   - reports list   List stored run reports
//   - reports show   Print one stored report
//   - shell          Build and solve problems interactively
//   - version        Print the build version
//
// # Input
//
// solve reads the text format (M D, then M radii, then D length/width/height
// triples) from a file argument or stdin. YAML and JSON documents are
// selected with --format or by the .yaml/.yml/.json file extension.
//
// # Implementation
//
// The root command loads the YAML config (default ~/.containment/config.yaml),
// applies flag overrides and builds the dependency graph (logger, solver,
// report store, remote client) before any subcommand runs.
package commands
