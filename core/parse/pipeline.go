// ABOUTME: Pattern pipeline maps each parse state to its ordered parser candidates
// ABOUTME: The now and ago parsers lead every state; first valid instant wins

package parse

import (
	"github.com/mrdear/time-convert/core/domain"
)

// parserFunc is the single capability every format parser implements:
// produce a valid instant for the text, or decline. Declining is an
// ordinary result, not an error.
type parserFunc func(text string, zone domain.ZoneSpec) (int64, bool)

// patternEntry pairs a parser with the label reported on a match.
type patternEntry struct {
	label string
	parse parserFunc
}

// buildPipeline wires the per-state candidate tables. The ordering within
// each list is load-bearing: syntactically overlapping grammars rely on
// earlier entries winning.
func (s *ParseService) buildPipeline() map[domain.ParseState][]patternEntry {
	var (
		now      = patternEntry{"now", s.parseNow}
		ago      = patternEntry{"ago", s.parseAgo}
		epoch    = patternEntry{"numeric-epoch", s.parseNumericEpoch}
		dash     = patternEntry{"dash-date", s.parseDashDate}
		slash    = patternEntry{"slash-date", s.parseSlashDate}
		chinese  = patternEntry{"chinese-date", s.parseChineseDate}
		dayMonth = patternEntry{"day-month-name", s.parseDayMonthName}
		month    = patternEntry{"month-name", s.parseMonthName}
		ansi     = patternEntry{"ansi-style", s.parseANSIStyle}
		native   = patternEntry{"native-fallback", s.parseNativeFallback}
	)

	return map[domain.ParseState][]patternEntry{
		domain.StateDigit:      {now, ago, epoch, native},
		domain.StateDigitDash:  {now, ago, dash, chinese, native},
		domain.StateDigitSlash: {now, ago, slash, native},
		domain.StateDigitAlpha: {now, ago, chinese, dayMonth, native},
		domain.StateAlpha:      {now, ago, month, ansi, native},
		domain.StateUnknown:    {now, ago, epoch, dash, slash, chinese, native},
	}
}
