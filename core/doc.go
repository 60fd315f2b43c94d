// Package core contains the business logic for the time-convert service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ZoneSpec, DateComponents, ParseOutcome)
// - timezone: Zone specifier resolution and instant conversion
// - parse: Input classification and the ordered format-parser pipeline
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (timezone database,
//   free-text parser, clock, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Parsing is fully synchronous; services are stateless and safe for
//   concurrent use
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    TimeZones: tzdb.NewIANADatabase(),
//	    Clock:     clock.NewSystemClock(),
//	}
//	zones := timezone.NewZoneService(deps)
//	parser := parse.NewParseService(deps, zones)
//
//	outcome := parser.ParseDateInput("2019-01-30 21:24:44,gmt-7", domain.UTCZone())
//	if outcome.OK {
//	    formatted, _ := zones.FormatForZone(outcome.Instant, domain.UTCZone())
//	    fmt.Println(outcome.MatchedPattern, formatted)
//	}
package core
