// ABOUTME: Zone resolver parses textual zone specifiers into ZoneSpec values
// ABOUTME: Recognizes local/utc aliases, Etc/GMT identifiers, numeric offsets and IANA names

package timezone

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mrdear/time-convert/core/domain"
	coreerrors "github.com/mrdear/time-convert/core/errors"
)

var (
	// Etc/GMT+7 style identifiers; hours only, 0-23
	etcGMTPattern = regexp.MustCompile(`(?i)^Etc/GMT([+-])(\d{1,2})$`)

	// UTC+8, GMT -07:30 style offsets with an explicit prefix
	prefixedOffsetPattern = regexp.MustCompile(`(?i)^(?:UTC|GMT)\s*([+-])(\d{1,2})(?::(\d{2}))?$`)

	// bare +8, -07:30 style offsets
	bareOffsetPattern = regexp.MustCompile(`^([+-])(\d{1,2})(?::(\d{2}))?$`)
)

// ResolveZone parses a textual zone specifier into a ZoneSpec.
//
// Recognition order, first match wins: the "local" alias, the UTC aliases
// ("utc", "gmt", "z"), Etc/GMT identifiers (whose sign is reversed relative
// to the literal token: Etc/GMT+7 means UTC-07:00), prefixed numeric
// offsets, bare numeric offsets, and finally IANA zone names validated
// against the timezone database.
func (s *ZoneService) ResolveZone(raw string) (domain.ZoneSpec, error) {
	spec := strings.TrimSpace(raw)
	if spec == "" {
		return domain.ZoneSpec{}, &coreerrors.InvalidZoneError{Spec: raw}
	}

	switch strings.ToLower(spec) {
	case "local":
		return domain.LocalZone(), nil
	case "utc", "gmt", "z":
		return domain.UTCZone(), nil
	}

	if m := etcGMTPattern.FindStringSubmatch(spec); m != nil {
		hours, _ := strconv.Atoi(m[2])
		if hours <= 23 {
			offset := hours * 60
			// POSIX-style Etc/GMT zones carry the opposite sign.
			if m[1] == "+" {
				offset = -offset
			}
			return domain.NewFixedZone(offset, "")
		}
	}

	if m := prefixedOffsetPattern.FindStringSubmatch(spec); m != nil {
		if zone, ok := offsetZone(m[1], m[2], m[3]); ok {
			return zone, nil
		}
	}

	if m := bareOffsetPattern.FindStringSubmatch(spec); m != nil {
		if zone, ok := offsetZone(m[1], m[2], m[3]); ok {
			return zone, nil
		}
	}

	if s.deps.TimeZones.Validate(spec) {
		return domain.NewNamedZone(spec, "")
	}

	return domain.ZoneSpec{}, &coreerrors.InvalidZoneError{Spec: raw}
}

// offsetZone builds a fixed zone from sign/hour/minute capture groups.
func offsetZone(sign, hourStr, minuteStr string) (domain.ZoneSpec, bool) {
	hours, _ := strconv.Atoi(hourStr)
	minutes := 0
	if minuteStr != "" {
		minutes, _ = strconv.Atoi(minuteStr)
	}
	if hours > 23 || minutes > 59 {
		return domain.ZoneSpec{}, false
	}
	offset := hours*60 + minutes
	if sign == "-" {
		offset = -offset
	}
	zone, err := domain.NewFixedZone(offset, "")
	if err != nil {
		return domain.ZoneSpec{}, false
	}
	return zone, true
}
