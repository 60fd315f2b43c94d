// ABOUTME: Free-text date parser implementation built on araddon/dateparse
// ABOUTME: Interprets text relative to a ZoneSpec-derived time.Location

package freetext

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrdear/time-convert/core/domain"
)

// LocationResolver supplies location handles for named zones. The tzdb
// implementation satisfies it.
type LocationResolver interface {
	Location(name string) (*time.Location, error)
}

// DateparseParser implements the FreeTextParser interface using the
// general-purpose dateparse library.
type DateparseParser struct {
	locations LocationResolver
}

// NewDateparseParser creates a new dateparse-backed free-text parser
func NewDateparseParser(locations LocationResolver) *DateparseParser {
	return &DateparseParser{locations: locations}
}

// Parse interprets text relative to the given zone. Zone information
// embedded in the text itself (offsets, zone names) takes precedence over
// the supplied zone, which only anchors zone-less fields.
func (p *DateparseParser) Parse(text string, zone domain.ZoneSpec) (int64, error) {
	loc, err := p.location(zone)
	if err != nil {
		return 0, err
	}

	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// location derives a time.Location from a ZoneSpec.
func (p *DateparseParser) location(zone domain.ZoneSpec) (*time.Location, error) {
	if zone.Kind == domain.ZoneFixed {
		return time.FixedZone(zone.DisplayLabel(), zone.OffsetMinutes*60), nil
	}
	return p.locations.Location(zone.Name)
}
