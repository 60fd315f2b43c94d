// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"github.com/mrdear/time-convert/core/domain"
)

// TimeZoneDatabase is the timezone/calendar capability the core depends on.
// Implementations are expected to be backed by the IANA timezone database
// and to treat the reserved name "Local" as the process-local zone.
//
// All instants are milliseconds since the Unix epoch. All offsets are
// minutes east of UTC.
type TimeZoneDatabase interface {
	// Validate reports whether name is a known zone identifier.
	Validate(name string) bool

	// OffsetAt returns the zone's UTC offset in minutes at the given
	// instant. The offset varies with the instant for zones observing DST.
	OffsetAt(name string, instant int64) (int, error)

	// CivilTime decomposes an instant into the zone-local civil fields.
	CivilTime(name string, instant int64) (domain.DateComponents, error)

	// ShortName returns the zone's abbreviated designation at the given
	// instant (e.g. "PST" vs "PDT" across a DST boundary).
	ShortName(name string, instant int64) (string, error)
}

// FreeTextParser is the general-purpose date/time text parser capability.
// Only the native-fallback format parser consults it.
type FreeTextParser interface {
	// Parse interprets text relative to the given zone and returns the
	// instant in milliseconds since the Unix epoch.
	Parse(text string, zone domain.ZoneSpec) (int64, error)
}
