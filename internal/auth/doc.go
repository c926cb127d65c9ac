// Package auth produces the Authorization header value for outbound Azure
// DevOps requests.
//
// Exactly one authentication mode is active for the process lifetime,
// selected at startup:
//
//   - static-token mode: a configured personal access token is encoded as an
//     HTTP Basic header once at construction and returned unchanged on every
//     call. No network traffic, no caching, no per-call failure mode.
//
//   - interactive mode: a device-code login against the Microsoft identity
//     platform produces a bearer token with a finite expiry. The token is
//     cached in memory (and optionally on disk) and reused while its expiry
//     is more than 60 seconds away.
//
// Interactive acquisition is single-flight: any number of concurrent callers
// that observe a cache miss share one upstream exchange and all receive its
// result, success or failure. A failed exchange leaves the cache empty so a
// later call starts a fresh attempt; nothing here retries automatically.
//
// The provider owns the only mutable shared state in the process (the token
// cache and the in-flight marker). No other component mutates it.
package auth
