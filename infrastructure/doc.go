// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as timezone database access, free-text parsing, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - tzdb: IANA-backed timezone database with a location-handle cache
// - freetext: general date/time text parser built on araddon/dateparse
// - clock: system clock supplying the current instant
// - logger/logrus: structured logger implementation on sirupsen/logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Timezone Database
//
//	db := tzdb.NewIANADatabase()
//	offset, err := db.OffsetAt("Asia/Shanghai", 1548854618000)
//
// Location handles are derived once per zone name and cached for the
// process lifetime; concurrent insertion of the same key is idempotent.
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Parsed input", map[string]interface{}{
//	    "pattern": "dash-date",
//	})
package infrastructure
