// ABOUTME: Convert handler exposes the parse pipeline over HTTP
// ABOUTME: Parses a raw expression and renders the instant in every display zone

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrdear/time-convert/api/dto/mappers"
	"github.com/mrdear/time-convert/api/dto/requests"
	"github.com/mrdear/time-convert/api/dto/responses"
	"github.com/mrdear/time-convert/core/domain"
	"github.com/mrdear/time-convert/core/interfaces"
	"github.com/mrdear/time-convert/core/parse"
	"github.com/mrdear/time-convert/core/timezone"
)

// ConvertHandler handles time conversion HTTP requests
type ConvertHandler struct {
	parser       *parse.ParseService
	zones        *timezone.ZoneService
	defaultZone  domain.ZoneSpec
	displayZones []domain.ZoneSpec
	logger       interfaces.Logger
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(parser *parse.ParseService, zones *timezone.ZoneService,
	defaultZone domain.ZoneSpec, displayZones []domain.ZoneSpec, logger interfaces.Logger) *ConvertHandler {
	return &ConvertHandler{
		parser:       parser,
		zones:        zones,
		defaultZone:  defaultZone,
		displayZones: displayZones,
		logger:       logger,
	}
}

// RegisterRoutes registers all conversion-related routes
func (h *ConvertHandler) RegisterRoutes(r chi.Router) {
	r.Post("/convert", h.Convert)
	r.Get("/zones", h.Zones)
}

// Convert handles the POST /convert endpoint
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req requests.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, responses.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	sourceZone := h.defaultZone
	if req.From != "" {
		zone, err := h.zones.ResolveZone(req.From)
		if err != nil {
			writeError(w, http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
			return
		}
		sourceZone = zone
	}

	outcome := h.parser.ParseDateInput(req.Input, sourceZone)
	if !outcome.OK {
		writeError(w, http.StatusUnprocessableEntity, responses.ErrorResponse{
			Error:      outcome.ErrorMessage,
			SourceZone: outcome.SourceZoneLabel,
		})
		return
	}

	renditions := make([]responses.ZoneRendition, 0, len(h.displayZones))
	for _, zone := range h.displayZones {
		formatted, err := h.zones.FormatForZone(outcome.Instant, zone)
		if err != nil {
			h.logger.Error("Failed to format instant for zone", map[string]interface{}{
				"zone":  zone.DisplayLabel(),
				"error": err.Error(),
			})
			continue
		}
		renditions = append(renditions, responses.ZoneRendition{
			Zone:      zone.DisplayLabel(),
			Formatted: formatted,
		})
	}

	writeJSON(w, http.StatusOK, mappers.ToConvertResponse(outcome, renditions))
}

// Zones handles the GET /zones endpoint
func (h *ConvertHandler) Zones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mappers.ToZonesResponse(h.displayZones))
}
