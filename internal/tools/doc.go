// Package tools holds the operation catalog: a static, insertion-ordered
// registry mapping each tool name to its description, input schema, and the
// backend client invocation it performs.
//
// The registry is populated once at startup and read-only afterwards. Input
// schemas are advisory documentation for callers; enforcement happens where
// the backend client uses the parameters, so a missing required field
// surfaces as whatever error the remote call produces.
package tools
