package sempconfig

import "fmt"

// TransportError is returned when an HTTP call to the broker fails, times
// out, or comes back non-2xx. Body holds the broker's response verbatim,
// including the SEMP v2 error envelope when one was returned.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("SEMP request %s %s failed: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("SEMP request %s %s returned HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigError is returned before any network call when the invocation is
// missing a required parameter, such as the parent Message VPN of a
// Client Username.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Reason)
}
