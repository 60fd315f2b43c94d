// ABOUTME: ZoneSpec domain model represents a resolved timezone specifier
// ABOUTME: Either a fixed UTC offset or a named IANA zone with a variable offset

package domain

import (
	"errors"
	"fmt"
)

// ZoneKind discriminates the two ZoneSpec variants.
type ZoneKind int

const (
	// ZoneFixed is a constant UTC offset (e.g. "GMT-7", "+08:00", "Etc/GMT+7")
	ZoneFixed ZoneKind = iota

	// ZoneNamed is a geographic zone identifier whose offset varies by
	// instant due to DST (e.g. "Asia/Shanghai", "Local")
	ZoneNamed
)

// ZoneSpec is an immutable, value-comparable zone representation.
// Construct through NewFixedZone/NewNamedZone so the invariants hold.
type ZoneSpec struct {
	// Kind selects which of the variant fields are meaningful
	Kind ZoneKind

	// OffsetMinutes is the UTC offset for ZoneFixed, east positive
	OffsetMinutes int

	// Name is the zone identifier for ZoneNamed
	Name string

	// Label overrides the display token; empty means derive from the variant
	Label string
}

// minutesPerDay bounds a fixed offset to less than one day in either direction.
const minutesPerDay = 24 * 60

// NewFixedZone creates a fixed-offset ZoneSpec.
func NewFixedZone(offsetMinutes int, label string) (ZoneSpec, error) {
	if offsetMinutes <= -minutesPerDay || offsetMinutes >= minutesPerDay {
		return ZoneSpec{}, fmt.Errorf("fixed zone offset out of range: %d minutes", offsetMinutes)
	}
	if label == "" {
		label = OffsetLabel(offsetMinutes)
	}
	return ZoneSpec{Kind: ZoneFixed, OffsetMinutes: offsetMinutes, Label: label}, nil
}

// NewNamedZone creates a named-zone ZoneSpec. The caller is responsible for
// validating the name against the timezone database before construction.
func NewNamedZone(name, label string) (ZoneSpec, error) {
	if name == "" {
		return ZoneSpec{}, errors.New("named zone requires a non-empty identifier")
	}
	return ZoneSpec{Kind: ZoneNamed, Name: name, Label: label}, nil
}

// UTCZone returns the fixed zero-offset zone labeled "UTC".
func UTCZone() ZoneSpec {
	return ZoneSpec{Kind: ZoneFixed, OffsetMinutes: 0, Label: "UTC"}
}

// LocalZoneName is the reserved identifier for the process-local zone.
const LocalZoneName = "Local"

// LocalZone returns the named zone that tracks the process-local timezone.
func LocalZone() ZoneSpec {
	return ZoneSpec{Kind: ZoneNamed, Name: LocalZoneName, Label: LocalZoneName}
}

// IsLocal reports whether the zone refers to the process-local timezone.
func (z ZoneSpec) IsLocal() bool {
	return z.Kind == ZoneNamed && z.Name == LocalZoneName
}

// DisplayLabel returns the token shown for this zone: the stored label for
// fixed zones, the override label or raw name for named zones.
func (z ZoneSpec) DisplayLabel() string {
	if z.Label != "" {
		return z.Label
	}
	if z.Kind == ZoneNamed {
		return z.Name
	}
	return OffsetLabel(z.OffsetMinutes)
}

// IdentityKey returns the deduplication key for the zone: fixed zones key by
// offset, named zones by identifier. Labels do not participate.
func (z ZoneSpec) IdentityKey() string {
	if z.Kind == ZoneFixed {
		return fmt.Sprintf("fixed:%d", z.OffsetMinutes)
	}
	return "named:" + z.Name
}

// FormatOffset renders a minute offset as a signed, zero-padded "±HH:MM".
func FormatOffset(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// OffsetLabel is the display label for a fixed offset: "UTC" at zero,
// otherwise "UTC±HH:MM".
func OffsetLabel(offsetMinutes int) string {
	if offsetMinutes == 0 {
		return "UTC"
	}
	return "UTC" + FormatOffset(offsetMinutes)
}
