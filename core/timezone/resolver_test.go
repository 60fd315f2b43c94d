package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdear/time-convert/core/domain"
	coreerrors "github.com/mrdear/time-convert/core/errors"
)

func TestResolveZone_Aliases(t *testing.T) {
	s := newTestService(newFakeDatabase())

	for _, spec := range []string{"local", "Local", "LOCAL"} {
		zone, err := s.ResolveZone(spec)
		require.NoError(t, err, spec)
		assert.True(t, zone.IsLocal(), spec)
		assert.Equal(t, "Local", zone.DisplayLabel(), spec)
	}

	for _, spec := range []string{"utc", "UTC", "gmt", "GMT", "z", "Z"} {
		zone, err := s.ResolveZone(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, domain.ZoneFixed, zone.Kind, spec)
		assert.Equal(t, 0, zone.OffsetMinutes, spec)
		assert.Equal(t, "UTC", zone.DisplayLabel(), spec)
	}
}

func TestResolveZone_EtcGMTSignIsReversed(t *testing.T) {
	s := newTestService(newFakeDatabase())

	zone, err := s.ResolveZone("Etc/GMT+7")
	require.NoError(t, err)
	assert.Equal(t, -420, zone.OffsetMinutes)

	zone, err = s.ResolveZone("Etc/GMT-5")
	require.NoError(t, err)
	assert.Equal(t, 300, zone.OffsetMinutes)

	zone, err = s.ResolveZone("etc/gmt+12")
	require.NoError(t, err)
	assert.Equal(t, -720, zone.OffsetMinutes)
}

func TestResolveZone_PrefixedOffsets(t *testing.T) {
	s := newTestService(newFakeDatabase())

	tests := []struct {
		spec   string
		offset int
	}{
		{"GMT-7", -420},
		{"UTC+8", 480},
		{"utc +05:30", 330},
		{"GMT -07:30", -450},
		{"UTC+0", 0},
	}

	for _, tt := range tests {
		zone, err := s.ResolveZone(tt.spec)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, domain.ZoneFixed, zone.Kind, tt.spec)
		assert.Equal(t, tt.offset, zone.OffsetMinutes, tt.spec)
	}
}

func TestResolveZone_BareOffsets(t *testing.T) {
	s := newTestService(newFakeDatabase())

	zone, err := s.ResolveZone("+08:00")
	require.NoError(t, err)
	assert.Equal(t, 480, zone.OffsetMinutes)

	zone, err = s.ResolveZone("-7")
	require.NoError(t, err)
	assert.Equal(t, -420, zone.OffsetMinutes)
}

func TestResolveZone_RejectsOutOfRangeOffsets(t *testing.T) {
	s := newTestService(newFakeDatabase())

	for _, spec := range []string{"UTC+24", "GMT-7:60", "+99:00"} {
		_, err := s.ResolveZone(spec)
		assert.Error(t, err, spec)
	}
}

func TestResolveZone_NamedZones(t *testing.T) {
	db := newFakeDatabase()
	db.addZone("Asia/Shanghai", "CST", constantOffset(480))
	s := newTestService(db)

	zone, err := s.ResolveZone("Asia/Shanghai")
	require.NoError(t, err)
	assert.Equal(t, domain.ZoneNamed, zone.Kind)
	assert.Equal(t, "Asia/Shanghai", zone.Name)
	assert.Equal(t, "Asia/Shanghai", zone.DisplayLabel())

	_, err = s.ResolveZone("Nowhere/Special")
	require.Error(t, err)
	assert.True(t, coreerrors.IsInvalidZone(err))
}

func TestResolveZone_EmptyInput(t *testing.T) {
	s := newTestService(newFakeDatabase())

	_, err := s.ResolveZone("   ")
	assert.True(t, coreerrors.IsInvalidZone(err))
}
