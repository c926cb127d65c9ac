package auth

import (
	"context"
	"encoding/base64"
	"fmt"
)

// staticProvider serves a pre-issued personal access token as an HTTP Basic
// header. The header is computed once; every call returns the same value
// without touching any shared state.
type staticProvider struct {
	header string
}

func newStaticProvider(pat string) (*staticProvider, error) {
	if pat == "" {
		return nil, fmt.Errorf("static-token mode requires a non-empty personal access token")
	}
	// Azure DevOps accepts a PAT as the password of a Basic credential with
	// an empty user name.
	encoded := base64.StdEncoding.EncodeToString([]byte(":" + pat))
	return &staticProvider{header: "Basic " + encoded}, nil
}

func (p *staticProvider) Authorization(ctx context.Context) (string, error) {
	return p.header, nil
}
