// ABOUTME: Zone-suffix splitter extracts a trailing ",zone" clause from raw input
// ABOUTME: Falls back to the caller-supplied default zone when resolution fails

package parse

import (
	"strings"

	"github.com/mrdear/time-convert/core/domain"
)

// SplitZoneSuffix inspects the raw input for a trailing ",zone" clause.
// The clause after the last comma is handed to the zone resolver; when it
// resolves, the text before the comma parses against that zone. When it
// does not resolve the comma is treated as ordinary text and the whole
// trimmed input parses against the default zone. There is no partial
// consumption on failure.
func (s *ParseService) SplitZoneSuffix(raw string, defaultZone domain.ZoneSpec) (string, domain.ZoneSpec) {
	trimmed := strings.TrimSpace(raw)

	idx := strings.LastIndex(trimmed, ",")
	if idx <= 0 {
		return trimmed, defaultZone
	}

	suffix := strings.TrimSpace(trimmed[idx+1:])
	zone, err := s.zones.ResolveZone(suffix)
	if err != nil {
		return trimmed, defaultZone
	}

	return strings.TrimSpace(trimmed[:idx]), zone
}
