// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// TimeZones provides timezone database lookups
	TimeZones TimeZoneDatabase

	// FreeText provides the general date/time text parser used by the
	// native-fallback format parser
	FreeText FreeTextParser

	// Clock provides the current instant
	Clock Clock

	// Logger provides structured logging
	Logger Logger
}
