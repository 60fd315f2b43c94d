package parse

import (
	"errors"
	"fmt"
	"time"

	"github.com/mrdear/time-convert/core/domain"
	"github.com/mrdear/time-convert/core/interfaces"
	"github.com/mrdear/time-convert/core/timezone"
)

// fakeClock returns a fixed current instant.
type fakeClock struct {
	now int64
}

func (c *fakeClock) NowMillis() int64 { return c.now }

// fakeDatabase scripts constant-offset named zones.
type fakeDatabase struct {
	offsets map[string]int
	shorts  map[string]string
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{offsets: make(map[string]int), shorts: make(map[string]string)}
}

func (f *fakeDatabase) addZone(name, short string, offsetMinutes int) {
	f.offsets[name] = offsetMinutes
	f.shorts[name] = short
}

func (f *fakeDatabase) Validate(name string) bool {
	_, ok := f.offsets[name]
	return ok
}

func (f *fakeDatabase) OffsetAt(name string, instant int64) (int, error) {
	offset, ok := f.offsets[name]
	if !ok {
		return 0, fmt.Errorf("unknown zone: %s", name)
	}
	return offset, nil
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

// fakeFreeText records calls and returns a scripted result.
type fakeFreeText struct {
	calls   []string
	instant int64
	err     error
}

func (f *fakeFreeText) Parse(text string, zone domain.ZoneSpec) (int64, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return 0, f.err
	}
	return f.instant, nil
}

var errNoMatch = errors.New("could not find format")

type testParser struct {
	*ParseService
	clock    *fakeClock
	db       *fakeDatabase
	freeText *fakeFreeText
}

func newTestParser() *testParser {
	clk := &fakeClock{now: 1548854618123}
	db := newFakeDatabase()
	ft := &fakeFreeText{err: errNoMatch}

	deps := interfaces.Dependencies{
		TimeZones: db,
		FreeText:  ft,
		Clock:     clk,
	}
	zones := timezone.NewZoneService(deps)

	return &testParser{
		ParseService: NewParseService(deps, zones),
		clock:        clk,
		db:           db,
		freeText:     ft,
	}
}

// utcMillis is a shorthand for building expected instants.
func utcMillis(year int, month time.Month, day, hour, minute, second, millisecond int) int64 {
	return time.Date(year, month, day, hour, minute, second,
		millisecond*int(time.Millisecond), time.UTC).UnixMilli()
}
