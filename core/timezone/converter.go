// ABOUTME: Instant converter maps civil date components to absolute instants and back
// ABOUTME: Owns the two-pass DST offset correction for named zones

package timezone

import (
	"fmt"
	"time"

	"github.com/mrdear/time-convert/core/domain"
)

const millisPerMinute = int64(60 * 1000)

// ToInstant converts civil date components interpreted in the given zone
// into an absolute instant (ms since the Unix epoch).
//
// The components are first treated as if they were UTC. For a fixed zone
// the true instant is that guess minus the offset. For a named zone the
// offset depends on the instant itself, so a two-pass correction applies:
// subtract the offset at the guess, then re-query the offset at the
// corrected instant and recompute if it changed (a DST boundary between
// the two). Local times that are doubly valid or skipped exactly at a DST
// transition resolve to whichever side the second query lands on; this is
// an accepted approximation.
func (s *ZoneService) ToInstant(c domain.DateComponents, zone domain.ZoneSpec) (int64, error) {
	guess := c.UTCGuess()

	if zone.Kind == domain.ZoneFixed {
		return guess - int64(zone.OffsetMinutes)*millisPerMinute, nil
	}

	first, err := s.deps.TimeZones.OffsetAt(zone.Name, guess)
	if err != nil {
		return 0, err
	}
	adjusted := guess - int64(first)*millisPerMinute

	second, err := s.deps.TimeZones.OffsetAt(zone.Name, adjusted)
	if err != nil {
		return 0, err
	}
	if second != first {
		adjusted = guess - int64(second)*millisPerMinute
	}
	return adjusted, nil
}

// FormatForZone renders an instant as the zone-local string
// "YYYY-MM-DDTHH:MM:SS ±HH:MM ZONE". The zone token is the stored label
// for fixed zones and the short designation at that instant for named
// zones (so it tracks standard/daylight renames).
func (s *ZoneService) FormatForZone(instant int64, zone domain.ZoneSpec) (string, error) {
	var (
		c      domain.DateComponents
		offset int
		token  string
		err    error
	)

	if zone.Kind == domain.ZoneFixed {
		offset = zone.OffsetMinutes
		token = zone.DisplayLabel()
		t := time.UnixMilli(instant).In(time.FixedZone(token, offset*60))
		c = domain.DateComponents{
			Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
			Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		}
	} else {
		c, err = s.deps.TimeZones.CivilTime(zone.Name, instant)
		if err != nil {
			return "", err
		}
		offset, err = s.deps.TimeZones.OffsetAt(zone.Name, instant)
		if err != nil {
			return "", err
		}
		token, err = s.deps.TimeZones.ShortName(zone.Name, instant)
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d %s %s",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second,
		domain.FormatOffset(offset), token), nil
}
