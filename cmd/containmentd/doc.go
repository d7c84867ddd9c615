// Package main runs containmentd, an HTTP server that solves containment
// problems and keeps the resulting reports in memory.
//
// HTTP API
//
//	POST /solve
//	    Solve {"motes": [...], "devices": [[l, w, h], ...]} and return the
//	    stored report, including mote-to-device assignments.
//
//	GET /reports/{id}
//	    Return a report produced by an earlier POST /solve.
//
//	GET /healthz
//	    Liveness probe.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - An access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :8080.
//   - SIGINT/SIGTERM trigger a graceful shutdown.
package main
