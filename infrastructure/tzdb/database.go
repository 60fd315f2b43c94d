// ABOUTME: IANA timezone database implementation backed by the system tzdata
// ABOUTME: Caches location handles process-wide; entries are never evicted

package tzdb

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mrdear/time-convert/core/domain"
)

// IANADatabase implements the TimeZoneDatabase interface on top of the
// system's IANA timezone data.
//
// Location handles are derived on first use per zone name and kept in a
// process-wide read-through cache for the lifetime of the process. The
// cache only ever grows, bounded by the number of distinct zone names
// requested, and concurrent inserts of the same name are idempotent (both
// writers produce equivalent handles).
type IANADatabase struct {
	locations *gocache.Cache
}

// NewIANADatabase creates a new IANA-backed timezone database
func NewIANADatabase() *IANADatabase {
	return &IANADatabase{
		locations: gocache.New(gocache.NoExpiration, 0),
	}
}

// Location returns the cached *time.Location for a zone name. The reserved
// name "Local" maps to the process-local zone.
func (d *IANADatabase) Location(name string) (*time.Location, error) {
	if name == domain.LocalZoneName {
		return time.Local, nil
	}

	if cached, found := d.locations.Get(name); found {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	d.locations.Set(name, loc, gocache.NoExpiration)
	return loc, nil
}

// Validate reports whether name is a known zone identifier
func (d *IANADatabase) Validate(name string) bool {
	_, err := d.Location(name)
	return err == nil
}

// OffsetAt returns the zone's UTC offset in minutes at the given instant
func (d *IANADatabase) OffsetAt(name string, instant int64) (int, error) {
	loc, err := d.Location(name)
	if err != nil {
		return 0, err
	}
	_, offsetSeconds := time.UnixMilli(instant).In(loc).Zone()
	return offsetSeconds / 60, nil
}

// CivilTime decomposes an instant into the zone-local civil fields
func (d *IANADatabase) CivilTime(name string, instant int64) (domain.DateComponents, error) {
	loc, err := d.Location(name)
	if err != nil {
		return domain.DateComponents{}, err
	}
	t := time.UnixMilli(instant).In(loc)
	return domain.DateComponents{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}, nil
}

// ShortName returns the zone's abbreviated designation at the given
// instant, falling back to the zone name when the data carries none.
func (d *IANADatabase) ShortName(name string, instant int64) (string, error) {
	loc, err := d.Location(name)
	if err != nil {
		return "", err
	}
	abbrev, _ := time.UnixMilli(instant).In(loc).Zone()
	if abbrev == "" {
		return name, nil
	}
	return abbrev, nil
}
