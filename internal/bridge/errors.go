package bridge

import "fmt"

// InvalidToolError reports a tool name outside the fixed registry.
// No upstream call is made when this error is returned.
type InvalidToolError struct {
	Tool string
}

func (e *InvalidToolError) Error() string {
	return fmt.Sprintf("tool %q not found", e.Tool)
}

// MissingParameterError reports a required parameter that is absent or empty.
type MissingParameterError struct {
	Tool  string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("tool %q requires parameter %q", e.Tool, e.Param)
}

// UpstreamError reports a failed provider call: network error, non-2xx
// status, or a malformed response body. Terminal for the request.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream search failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
