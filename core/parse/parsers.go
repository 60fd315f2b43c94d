// ABOUTME: Format parsers for current-time, relative phrases, epochs and library fallback
// ABOUTME: Each parser returns a valid instant or declines; declines are not errors

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mrdear/time-convert/core/domain"
)

// maxAbsInstant bounds the representable instant range in milliseconds
// (±100,000,000 days around the epoch).
const maxAbsInstant = int64(8640000000000000)

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

var (
	agoPattern = regexp.MustCompile(`(?i)^(\d+)\s*(minutes?|hours?|days?)\s+ago$`)

	// explicit timezone tokens that make native-fallback eligible
	utcWordPattern   = regexp.MustCompile(`(?i)\b(?:UTC|GMT)\b`)
	etcTokenPattern  = regexp.MustCompile(`(?i)Etc/GMT[+-]\d{1,2}`)
	regionPattern    = regexp.MustCompile(`[A-Za-z]+/[A-Za-z_]+`)
	numOffsetPattern = regexp.MustCompile(`[+-]\d{2}:?\d{2}`)

	// fractional seconds with a comma separator, or longer than the
	// millisecond precision we keep
	fractionPattern = regexp.MustCompile(`(\d{2}:\d{2}:\d{2})[.,](\d+)`)
)

// validInstant reports whether ms is inside the representable range.
func validInstant(ms int64) bool {
	return ms >= -maxAbsInstant && ms <= maxAbsInstant
}

// componentsToInstant validates the components and converts them to an
// instant in the given zone. Any invalidity is a decline.
func (s *ParseService) componentsToInstant(c domain.DateComponents, zone domain.ZoneSpec) (int64, bool) {
	if !c.Valid() {
		return 0, false
	}
	instant, err := s.zones.ToInstant(c, zone)
	if err != nil || !validInstant(instant) {
		return 0, false
	}
	return instant, true
}

// parseNow matches input beginning with "now" and returns the current
// instant truncated to whole seconds.
func (s *ParseService) parseNow(text string, _ domain.ZoneSpec) (int64, bool) {
	if !strings.HasPrefix(strings.ToLower(text), "now") {
		return 0, false
	}
	now := s.deps.Clock.NowMillis()
	return now - now%millisPerSecond, true
}

// parseAgo matches "<n> minutes|hours|days ago" and subtracts from now.
func (s *ParseService) parseAgo(text string, _ domain.ZoneSpec) (int64, bool) {
	m := agoPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	var unit int64
	switch strings.ToLower(strings.TrimSuffix(m[2], "s")) {
	case "minute":
		unit = millisPerMinute
	case "hour":
		unit = millisPerHour
	default:
		unit = millisPerDay
	}

	instant := s.deps.Clock.NowMillis() - amount*unit
	if !validInstant(instant) {
		return 0, false
	}
	return instant, true
}

// parseNumericEpoch interprets an all-digit string. Absolute calendar
// forms leading with the digit '2' take priority: 14 digits is
// YYYYMMDDHHMMSS, 8 digits is YYYYMMDD, 4 digits is a bare year
// (January 1). Anything else is an epoch
// count whose unit follows from the digit length: >16 nanoseconds,
// >13 microseconds, >10 milliseconds, otherwise seconds.
func (s *ParseService) parseNumericEpoch(text string, zone domain.ZoneSpec) (int64, bool) {
	if !allDigits(text) {
		return 0, false
	}

	switch {
	case len(text) == 14 && text[0] == '2':
		c := domain.DateComponents{
			Year:   atoi(text[0:4]),
			Month:  atoi(text[4:6]),
			Day:    atoi(text[6:8]),
			Hour:   atoi(text[8:10]),
			Minute: atoi(text[10:12]),
			Second: atoi(text[12:14]),
		}
		return s.componentsToInstant(c, zone)
	case len(text) == 8 && text[0] == '2':
		c := domain.DateComponents{
			Year:  atoi(text[0:4]),
			Month: atoi(text[4:6]),
			Day:   atoi(text[6:8]),
		}
		return s.componentsToInstant(c, zone)
	case len(text) == 4 && text[0] == '2':
		c := domain.DateComponents{Year: atoi(text), Month: 1, Day: 1}
		return s.componentsToInstant(c, zone)
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}

	var ms int64
	switch {
	case len(text) > 16: // nanoseconds
		ms = value / 1_000_000
	case len(text) > 13: // microseconds
		ms = value / 1_000
	case len(text) > 10: // already milliseconds
		ms = value
	default: // seconds
		if value > maxAbsInstant/millisPerSecond {
			return 0, false
		}
		ms = value * millisPerSecond
	}

	if ms < 0 || ms > maxAbsInstant {
		return 0, false
	}
	return ms, true
}

// parseNativeFallback defers to the general-purpose date/time text parser,
// but only when the text carries an explicit timezone token or the source
// zone is the process-local zone. Without either, handing zone-less text
// to a library with its own zone default would silently reinterpret it.
func (s *ParseService) parseNativeFallback(text string, zone domain.ZoneSpec) (int64, bool) {
	if !hasExplicitZoneToken(text) && !zone.IsLocal() {
		return 0, false
	}

	instant, err := s.deps.FreeText.Parse(normalizeForNative(text), zone)
	if err != nil || !validInstant(instant) {
		return 0, false
	}
	return instant, true
}

// hasExplicitZoneToken reports whether the text itself names a timezone:
// a UTC/GMT word, an Etc/GMT identifier, a Region/City name, a numeric
// ±HH:MM offset, or a trailing Z.
func hasExplicitZoneToken(text string) bool {
	return utcWordPattern.MatchString(text) ||
		etcTokenPattern.MatchString(text) ||
		regionPattern.MatchString(text) ||
		numOffsetPattern.MatchString(text) ||
		strings.HasSuffix(text, "Z")
}

// normalizeForNative rewrites comma fraction separators to dots, truncates
// fractional seconds to millisecond precision, and collapses whitespace.
func normalizeForNative(text string) string {
	text = fractionPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := fractionPattern.FindStringSubmatch(match)
		frac := m[2]
		if len(frac) > 3 {
			frac = frac[:3]
		}
		return m[1] + "." + frac
	})
	return strings.Join(strings.Fields(text), " ")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
