// Package remote connects the CLI to a containmentd solve server.
//
// HTTP is the client implementation of domain.RemoteClient; NewHandler
// builds the server side used by cmd/containmentd.
//
// HTTP API
//
//	POST /solve
//	    Body: {"motes": [r, ...], "devices": [[l, w, h], ...]}.
//	    Solves the problem, stores the report and returns it.
//
//	GET /reports/{id}
//	    Return a report previously produced by POST /solve.
//
//	GET /healthz
//	    Liveness probe.
//
// Requests and responses are JSON. Non-2xx responses carry
// {"error": "..."}; the client turns them into errors with the method, URL
// and status text. Malformed problems are rejected with 400, oversized ones
// with 413.
package remote
