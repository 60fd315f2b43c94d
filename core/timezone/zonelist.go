// ABOUTME: Zone list helper turns a comma-separated specifier string into display zones
// ABOUTME: Deduplicates by zone identity and defaults to UTC when nothing resolves

package timezone

import (
	"strings"

	"github.com/mrdear/time-convert/core/domain"
)

// ParseZoneList resolves a comma-separated string of zone specifiers into
// an ordered, de-duplicated list. Specifiers that fail to resolve are
// skipped with a warning. When includeLocal is set the process-local zone
// leads the list. An empty result defaults to UTC.
func (s *ZoneService) ParseZoneList(specs string, includeLocal bool) []domain.ZoneSpec {
	var (
		zones []domain.ZoneSpec
		seen  = make(map[string]bool)
	)

	add := func(zone domain.ZoneSpec) {
		key := zone.IdentityKey()
		if seen[key] {
			return
		}
		seen[key] = true
		zones = append(zones, zone)
	}

	if includeLocal {
		add(domain.LocalZone())
	}

	for _, part := range strings.Split(specs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		zone, err := s.ResolveZone(part)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Skipping unresolvable display zone", map[string]interface{}{
					"spec": part,
				})
			}
			continue
		}
		add(zone)
	}

	if len(zones) == 0 {
		zones = append(zones, domain.UTCZone())
	}
	return zones
}
