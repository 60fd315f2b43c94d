package timezone

import (
	"fmt"
	"time"

	"github.com/mrdear/time-convert/core/domain"
	"github.com/mrdear/time-convert/core/interfaces"
)

// fakeDatabase is a scripted TimeZoneDatabase. Offsets come from a
// per-name function so tests can model DST transitions deterministically.
type fakeDatabase struct {
	names   map[string]bool
	offsets map[string]func(instant int64) int
	shorts  map[string]string
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{
		names:   make(map[string]bool),
		offsets: make(map[string]func(instant int64) int),
		shorts:  make(map[string]string),
	}
}

func (f *fakeDatabase) addZone(name string, short string, offset func(instant int64) int) {
	f.names[name] = true
	f.offsets[name] = offset
	f.shorts[name] = short
}

func (f *fakeDatabase) Validate(name string) bool {
	return f.names[name]
}

func (f *fakeDatabase) OffsetAt(name string, instant int64) (int, error) {
	offset, ok := f.offsets[name]
	if !ok {
		return 0, fmt.Errorf("unknown zone: %s", name)
	}
	return offset(instant), nil
}

func (f *fakeDatabase) CivilTime(name string, instant int64) (domain.DateComponents, error) {
	offset, err := f.OffsetAt(name, instant)
	if err != nil {
		return domain.DateComponents{}, err
	}
	t := time.UnixMilli(instant + int64(offset)*60_000).UTC()
	return domain.DateComponents{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}, nil
}

func (f *fakeDatabase) ShortName(name string, instant int64) (string, error) {
	short, ok := f.shorts[name]
	if !ok {
		return "", fmt.Errorf("unknown zone: %s", name)
	}
	return short, nil
}

// constantOffset scripts a zone with no DST.
func constantOffset(minutes int) func(int64) int {
	return func(int64) int { return minutes }
}

func newTestService(db *fakeDatabase) *ZoneService {
	return NewZoneService(interfaces.Dependencies{TimeZones: db})
}
