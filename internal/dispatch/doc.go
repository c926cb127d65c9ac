// Package dispatch resolves a tool name to its catalog invocation and runs
// it, converting every failure into a normalized outcome value.
//
// The router is the sole error boundary of the core: the credential
// provider and backend client raise errors, transport adapters only ever
// see a DispatchOutcome. The router is transport-agnostic; it knows nothing
// of JSON-RPC envelopes, HTTP status codes, or stdio framing.
//
// Nothing here is retried. A failed dispatch is reported as-is; a later
// dispatch of the same tool starts from scratch.
package dispatch
