// Package app wires application dependencies for the CLI.
//
// It loads Config from an optional YAML file, then builds the logger, solver,
// report store, run service and optional remote client, exposing them via
// the Wire struct for commands to use.
package app
