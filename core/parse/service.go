// ABOUTME: Parse service is the top-level entry point for date input parsing
// ABOUTME: Splits the zone suffix, classifies the text and runs the pattern pipeline

package parse

import (
	"github.com/mrdear/time-convert/core/domain"
	coreerrors "github.com/mrdear/time-convert/core/errors"
	"github.com/mrdear/time-convert/core/interfaces"
	"github.com/mrdear/time-convert/core/timezone"
)

// ParseService orchestrates a parse call: zone-suffix split, state
// classification, and the ordered parser pipeline. It is stateless and
// safe for concurrent use.
type ParseService struct {
	deps     interfaces.Dependencies
	zones    *timezone.ZoneService
	pipeline map[domain.ParseState][]patternEntry
}

// NewParseService creates a new parse service instance
func NewParseService(deps interfaces.Dependencies, zones *timezone.ZoneService) *ParseService {
	s := &ParseService{
		deps:  deps,
		zones: zones,
	}
	s.pipeline = s.buildPipeline()
	return s
}

// ParseDateInput parses a raw input string against the default source zone.
// Every input path terminates in either a success or a descriptive failure;
// individual parser declines are never fatal, only pipeline exhaustion is.
func (s *ParseService) ParseDateInput(rawInput string, defaultZone domain.ZoneSpec) domain.ParseOutcome {
	text, zone := s.SplitZoneSuffix(rawInput, defaultZone)

	if text == "" {
		var empty coreerrors.EmptyInputError
		return domain.FailureOutcome(text, zone, empty.Error())
	}

	state := Classify(text)
	s.logDebug("Classified input", map[string]interface{}{
		"text":  text,
		"state": state.String(),
		"zone":  zone.DisplayLabel(),
	})

	for _, entry := range s.pipeline[state] {
		instant, ok := entry.parse(text, zone)
		if !ok {
			continue
		}
		s.logDebug("Matched pattern", map[string]interface{}{
			"pattern": entry.label,
			"instant": instant,
		})
		return domain.SuccessOutcome(text, zone, instant, entry.label)
	}

	err := coreerrors.UnrecognizedFormatError{Text: text}
	return domain.FailureOutcome(text, zone, err.Error())
}

func (s *ParseService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
