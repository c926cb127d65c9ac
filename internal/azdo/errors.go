package azdo

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError carries a non-2xx response from the Azure DevOps REST API.
// The remote status and body are preserved verbatim so the dispatch router
// can surface them to the caller.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("azure devops request failed: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("azure devops request failed: %s", e.Status)
}

// IsNotFound reports whether err is a remote 404 response.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}
