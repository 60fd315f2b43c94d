// ABOUTME: Response DTOs for the convert and zones endpoints
// ABOUTME: Defines the JSON shape of conversion results and zone listings

package responses

// ZoneRendition is one display-zone rendering of a parsed instant.
type ZoneRendition struct {
	// Zone is the display label of the zone
	Zone string `json:"zone"`

	// Formatted is the instant rendered as
	// "YYYY-MM-DDTHH:MM:SS ±HH:MM ZONE"
	Formatted string `json:"formatted"`
}

// ConvertResponse is the body returned by POST /convert.
type ConvertResponse struct {
	// Input is the parsed text after zone-suffix stripping
	Input string `json:"input"`

	// SourceZone is the display label of the zone the input was
	// interpreted in
	SourceZone string `json:"source_zone"`

	// Pattern is the label of the format parser that matched
	Pattern string `json:"pattern"`

	// Instant is the absolute instant in milliseconds since the Unix epoch
	Instant int64 `json:"instant"`

	// Renditions holds the instant rendered in each configured display zone
	Renditions []ZoneRendition `json:"renditions"`
}

// ZoneInfo describes one configured display zone.
type ZoneInfo struct {
	// Label is the zone's display label
	Label string `json:"label"`

	// Kind is "fixed" or "named"
	Kind string `json:"kind"`
}

// ZonesResponse is the body returned by GET /zones.
type ZonesResponse struct {
	Zones []ZoneInfo `json:"zones"`
}

// ErrorResponse is the body returned for failed requests.
type ErrorResponse struct {
	// Error is a short actionable message
	Error string `json:"error"`

	// SourceZone is the display label of the zone that would have been
	// used, when the failure came from the parse pipeline
	SourceZone string `json:"source_zone,omitempty"`
}
