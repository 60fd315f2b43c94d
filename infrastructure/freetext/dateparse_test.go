package freetext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdear/time-convert/core/domain"
	"github.com/mrdear/time-convert/infrastructure/tzdb"
)

func newParser() *DateparseParser {
	return NewDateparseParser(tzdb.NewIANADatabase())
}

func TestParse_EmbeddedOffsetWinsOverZone(t *testing.T) {
	p := newParser()

	instant, err := p.Parse("2019-01-30 21:24:44 -07:00", domain.UTCZone())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.January, 31, 4, 24, 44, 0, time.UTC).UnixMilli(), instant)
}

func TestParse_ZoneAnchorsZonelessText(t *testing.T) {
	p := newParser()

	zone, err := domain.NewNamedZone("Asia/Shanghai", "")
	require.NoError(t, err)

	instant, err := p.Parse("2019-01-31 12:24:44", zone)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.January, 31, 4, 24, 44, 0, time.UTC).UnixMilli(), instant)
}

func TestParse_FixedZoneAnchor(t *testing.T) {
	p := newParser()

	zone, err := domain.NewFixedZone(-420, "")
	require.NoError(t, err)

	instant, err := p.Parse("2019-01-30 21:24:44", zone)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.January, 31, 4, 24, 44, 0, time.UTC).UnixMilli(), instant)
}

func TestParse_TrailingZ(t *testing.T) {
	p := newParser()

	instant, err := p.Parse("2019-01-31T04:24:44Z", domain.UTCZone())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.January, 31, 4, 24, 44, 0, time.UTC).UnixMilli(), instant)
}

func TestParse_UnparseableText(t *testing.T) {
	p := newParser()

	_, err := p.Parse("definitely not a date", domain.UTCZone())
	assert.Error(t, err)
}
