// ABOUTME: Date grammar parsers for dashed, slashed, Chinese and month-name formats
// ABOUTME: Each grammar is a compiled regexp plus calendar validation of the capture

package parse

import (
	"regexp"
	"strings"

	"github.com/mrdear/time-convert/core/domain"
)

var (
	dashYMDPattern  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dashYMPattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	dashYMonPattern = regexp.MustCompile(`^(\d{4})-([A-Za-z]{3})-(\d{1,2})$`)
	dashFullPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})[T ](\d{1,2}):(\d{2})(?::(\d{2}))?(?:\.(\d+))?(?:\s*([AaPp][Mm]))?$`)

	slashPattern = regexp.MustCompile(`^(\d{1,4})/(\d{1,4})/(\d{1,4})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\.(\d+))?(?:\s*([AaPp][Mm]))?)?$`)

	chinesePattern = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日(?:\s*(\d{1,2}):(\d{2}))?$`)

	dayMonthPattern = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]{3})\s+(\d{4}),\s*(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

	monthNamePattern = regexp.MustCompile(`^([A-Za-z]{3,9})\s+(\d{1,2}),\s*(\d{4})(?:\s+(\d{1,2}):(\d{2}):(\d{2})\s*([AaPp][Mm])?)?$`)

	ansiPattern = regexp.MustCompile(`^(?:[A-Za-z]{3}\s+)?([A-Za-z]{3})\s+(\d{1,2})\s+(\d{1,2}):(\d{2}):(\d{2})\s+(\d{4})$`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthFromName resolves a month name of 3 to 9 letters: either the
// standard three-letter abbreviation or any longer prefix of the full name.
func monthFromName(name string) (int, bool) {
	name = strings.ToLower(name)
	if len(name) < 3 {
		return 0, false
	}
	for i, full := range monthNames {
		if strings.HasPrefix(full, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// fractionMillis converts captured fraction digits to milliseconds,
// truncating beyond three digits.
func fractionMillis(frac string) int {
	if frac == "" {
		return 0
	}
	for len(frac) < 3 {
		frac += "0"
	}
	return atoi(frac[:3])
}

// applyMeridiem folds a 12-hour clock marker into a 24-hour value. Without
// a marker the hour passes through untouched.
func applyMeridiem(hour int, marker string) (int, bool) {
	if marker == "" {
		return hour, true
	}
	if hour < 1 || hour > 12 {
		return 0, false
	}
	switch strings.ToLower(marker) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}
	return hour, true
}

// parseDashDate matches the dashed family: YYYY-M-D, YYYY-M (day 1),
// YYYY-Mon-D, and the full date-time with optional seconds, fraction and
// meridiem. The variants are tried in that order.
func (s *ParseService) parseDashDate(text string, zone domain.ZoneSpec) (int64, bool) {
	if m := dashYMDPattern.FindStringSubmatch(text); m != nil {
		c := domain.DateComponents{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}
		return s.componentsToInstant(c, zone)
	}

	if m := dashYMPattern.FindStringSubmatch(text); m != nil {
		c := domain.DateComponents{Year: atoi(m[1]), Month: atoi(m[2]), Day: 1}
		return s.componentsToInstant(c, zone)
	}

	if m := dashYMonPattern.FindStringSubmatch(text); m != nil {
		month, ok := monthFromName(m[2])
		if !ok {
			return 0, false
		}
		c := domain.DateComponents{Year: atoi(m[1]), Month: month, Day: atoi(m[3])}
		return s.componentsToInstant(c, zone)
	}

	if m := dashFullPattern.FindStringSubmatch(text); m != nil {
		hour, ok := applyMeridiem(atoi(m[4]), m[8])
		if !ok {
			return 0, false
		}
		c := domain.DateComponents{
			Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3]),
			Hour: hour, Minute: atoi(m[5]), Second: atoi(m[6]),
			Millisecond: fractionMillis(m[7]),
		}
		return s.componentsToInstant(c, zone)
	}

	return 0, false
}

// expandTwoDigitYear maps a two-digit year token onto a century:
// 69 and above become 19xx, everything below becomes 20xx.
func expandTwoDigitYear(v int) int {
	if v >= 69 {
		return 1900 + v
	}
	return 2000 + v
}

// parseSlashDate matches A/B/C with an optional time clause. A four-digit
// first group fixes Y/M/D order; a four-digit third group fixes M/D/Y.
// When all three groups have at most two digits both readings are tried in
// a fixed order: year-first (year=A, month=B, day=C), then year-last
// (year=C, month=A, day=B). The first calendar-valid reading wins, even
// when both would be valid.
func (s *ParseService) parseSlashDate(text string, zone domain.ZoneSpec) (int64, bool) {
	m := slashPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	hour, ok := applyMeridiem(atoi(m[4]), m[8])
	if !ok {
		return 0, false
	}
	base := domain.DateComponents{
		Hour: hour, Minute: atoi(m[5]), Second: atoi(m[6]),
		Millisecond: fractionMillis(m[7]),
	}

	try := func(year, month, day int) (int64, bool) {
		c := base
		c.Year, c.Month, c.Day = year, month, day
		return s.componentsToInstant(c, zone)
	}

	a, b, c := m[1], m[2], m[3]
	switch {
	case len(a) == 4:
		return try(atoi(a), atoi(b), atoi(c))
	case len(c) == 4:
		return try(atoi(c), atoi(a), atoi(b))
	case len(a) <= 2 && len(b) <= 2 && len(c) <= 2:
		if instant, ok := try(expandTwoDigitYear(atoi(a)), atoi(b), atoi(c)); ok {
			return instant, true
		}
		return try(expandTwoDigitYear(atoi(c)), atoi(a), atoi(b))
	}
	return 0, false
}

// parseChineseDate matches YYYY年M月D日 with an optional H:MM time.
func (s *ParseService) parseChineseDate(text string, zone domain.ZoneSpec) (int64, bool) {
	m := chinesePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	c := domain.DateComponents{
		Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3]),
		Hour: atoi(m[4]), Minute: atoi(m[5]),
	}
	return s.componentsToInstant(c, zone)
}

// parseDayMonthName matches "D Mon YYYY, H:MM[:SS]".
func (s *ParseService) parseDayMonthName(text string, zone domain.ZoneSpec) (int64, bool) {
	m := dayMonthPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	month, ok := monthFromName(m[2])
	if !ok {
		return 0, false
	}
	c := domain.DateComponents{
		Year: atoi(m[3]), Month: month, Day: atoi(m[1]),
		Hour: atoi(m[4]), Minute: atoi(m[5]), Second: atoi(m[6]),
	}
	return s.componentsToInstant(c, zone)
}

// parseMonthName matches "Mon D, YYYY" with an optional 12-hour time.
func (s *ParseService) parseMonthName(text string, zone domain.ZoneSpec) (int64, bool) {
	m := monthNamePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	month, ok := monthFromName(m[1])
	if !ok {
		return 0, false
	}
	hour, ok := applyMeridiem(atoi(m[4]), m[7])
	if !ok {
		return 0, false
	}
	c := domain.DateComponents{
		Year: atoi(m[3]), Month: month, Day: atoi(m[2]),
		Hour: hour, Minute: atoi(m[5]), Second: atoi(m[6]),
	}
	return s.componentsToInstant(c, zone)
}

// parseANSIStyle matches the ctime-like "[Wkd ]Mon D H:MM:SS YYYY".
func (s *ParseService) parseANSIStyle(text string, zone domain.ZoneSpec) (int64, bool) {
	m := ansiPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	month, ok := monthFromName(m[1])
	if !ok {
		return 0, false
	}
	c := domain.DateComponents{
		Year: atoi(m[6]), Month: month, Day: atoi(m[2]),
		Hour: atoi(m[3]), Minute: atoi(m[4]), Second: atoi(m[5]),
	}
	return s.componentsToInstant(c, zone)
}
