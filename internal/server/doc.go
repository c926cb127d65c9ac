// Package server binds the dispatch router to the three supported
// transports: an MCP server on stdio, an MCP streamable-HTTP endpoint, and
// a stdio-to-HTTP bridge that relays every request to a remote azdomcp
// instance.
//
// Adapters decode one incoming request into a (tool name, arguments) pair,
// call the router, and encode the outcome into their transport's envelope.
// They never see raw errors from the core, only dispatch outcomes.
//
// The bridge is the exception to the direct-call rule: it re-encodes its
// received call as an outbound MCP request to the remote instance and
// relays that instance's response verbatim. It holds no credential state
// and never attempts authentication of its own.
package server
