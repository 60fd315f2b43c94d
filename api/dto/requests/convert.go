// ABOUTME: Request DTOs for the convert endpoint
// ABOUTME: Defines the JSON shape of incoming conversion requests

package requests

// ConvertRequest is the body of POST /convert.
type ConvertRequest struct {
	// Input is the raw time expression, optionally carrying a trailing
	// ",zone" clause (e.g. "2019-01-30 21:24:44,gmt-7")
	Input string `json:"input"`

	// From overrides the configured default source zone for this request
	From string `json:"from,omitempty"`
}
