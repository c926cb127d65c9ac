// Package azdo is the Azure DevOps backend client: one method per catalog
// operation, each issuing a single REST request against the configured
// organization (composites like MyWorkItems are explicitly documented).
//
// Authorization material is fetched from the credential provider before
// every outbound call, never cached client-side, so a request made after a
// token refresh can never carry a stale header.
//
// Error policy: a remote 404 on a list-style operation where absence is a
// normal provisioned state (team membership, backlogs, boards, iterations,
// advanced-security alerts) is normalized to an empty result. Every other
// non-2xx status is returned unchanged as a *RequestError.
package azdo
