// ABOUTME: Mappers convert core domain results into API response DTOs
// ABOUTME: Keeps the wire format decoupled from the domain types

package mappers

import (
	"github.com/mrdear/time-convert/api/dto/responses"
	"github.com/mrdear/time-convert/core/domain"
)

// ToConvertResponse maps a successful parse outcome plus its per-zone
// renderings onto the wire format.
func ToConvertResponse(outcome domain.ParseOutcome, renditions []responses.ZoneRendition) responses.ConvertResponse {
	return responses.ConvertResponse{
		Input:      outcome.InputText,
		SourceZone: outcome.SourceZoneLabel,
		Pattern:    outcome.MatchedPattern,
		Instant:    outcome.Instant,
		Renditions: renditions,
	}
}

// ToZonesResponse maps the configured display zones onto the wire format.
func ToZonesResponse(zones []domain.ZoneSpec) responses.ZonesResponse {
	resp := responses.ZonesResponse{Zones: make([]responses.ZoneInfo, 0, len(zones))}
	for _, zone := range zones {
		kind := "named"
		if zone.Kind == domain.ZoneFixed {
			kind = "fixed"
		}
		resp.Zones = append(resp.Zones, responses.ZoneInfo{
			Label: zone.DisplayLabel(),
			Kind:  kind,
		})
	}
	return resp
}
