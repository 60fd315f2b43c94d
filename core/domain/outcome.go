// ABOUTME: ParseOutcome and ParseState domain models for the parse pipeline
// ABOUTME: Outcome is the tagged success/failure result of one parse call

package domain

// ParseState classifies the shape of trimmed input text. It is purely a
// dispatch key selecting which candidate parsers run, and in what order.
type ParseState int

const (
	StateUnknown ParseState = iota
	StateDigit
	StateDigitDash
	StateDigitSlash
	StateDigitAlpha
	StateAlpha
)

// String returns the state name for logging and diagnostics.
func (s ParseState) String() string {
	switch s {
	case StateDigit:
		return "digit"
	case StateDigitDash:
		return "digit-dash"
	case StateDigitSlash:
		return "digit-slash"
	case StateDigitAlpha:
		return "digit-alpha"
	case StateAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// ParseOutcome is the immutable result of a single parse call. Exactly one
// of the success or failure halves is populated, discriminated by OK.
type ParseOutcome struct {
	// OK discriminates success from failure
	OK bool

	// InputText is the text that was parsed, after zone-suffix stripping
	InputText string

	// SourceZone is the zone the input was interpreted in
	SourceZone ZoneSpec

	// SourceZoneLabel is the display label of SourceZone
	SourceZoneLabel string

	// Instant is the parsed absolute instant in ms since the Unix epoch
	// (success only)
	Instant int64

	// MatchedPattern is the label of the format parser that accepted the
	// input (success only)
	MatchedPattern string

	// ErrorMessage is a short actionable description (failure only)
	ErrorMessage string
}

// SuccessOutcome builds a success result.
func SuccessOutcome(text string, zone ZoneSpec, instant int64, pattern string) ParseOutcome {
	return ParseOutcome{
		OK:              true,
		InputText:       text,
		SourceZone:      zone,
		SourceZoneLabel: zone.DisplayLabel(),
		Instant:         instant,
		MatchedPattern:  pattern,
	}
}

// FailureOutcome builds a failure result.
func FailureOutcome(text string, zone ZoneSpec, message string) ParseOutcome {
	return ParseOutcome{
		OK:              false,
		InputText:       text,
		SourceZone:      zone,
		SourceZoneLabel: zone.DisplayLabel(),
		ErrorMessage:    message,
	}
}
