package tzdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	db := NewIANADatabase()

	assert.True(t, db.Validate("UTC"))
	assert.True(t, db.Validate("America/New_York"))
	assert.True(t, db.Validate("Asia/Shanghai"))
	assert.True(t, db.Validate("Local"))
	assert.False(t, db.Validate("Not/AZone"))
	assert.False(t, db.Validate(""))
}

func TestOffsetAt_DSTAware(t *testing.T) {
	db := NewIANADatabase()

	winter := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC).UnixMilli()
	summer := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC).UnixMilli()

	offset, err := db.OffsetAt("America/New_York", winter)
	require.NoError(t, err)
	assert.Equal(t, -300, offset)

	offset, err = db.OffsetAt("America/New_York", summer)
	require.NoError(t, err)
	assert.Equal(t, -240, offset)

	// Shanghai has no DST
	offset, err = db.OffsetAt("Asia/Shanghai", winter)
	require.NoError(t, err)
	assert.Equal(t, 480, offset)

	_, err = db.OffsetAt("Not/AZone", winter)
	assert.Error(t, err)
}

func TestCivilTime(t *testing.T) {
	db := NewIANADatabase()

	instant := time.Date(2019, time.January, 31, 4, 24, 44, 123_000_000, time.UTC).UnixMilli()

	c, err := db.CivilTime("Asia/Shanghai", instant)
	require.NoError(t, err)
	assert.Equal(t, 2019, c.Year)
	assert.Equal(t, 1, c.Month)
	assert.Equal(t, 31, c.Day)
	assert.Equal(t, 12, c.Hour)
	assert.Equal(t, 24, c.Minute)
	assert.Equal(t, 44, c.Second)
	assert.Equal(t, 123, c.Millisecond)
}

func TestShortName(t *testing.T) {
	db := NewIANADatabase()

	instant := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC).UnixMilli()

	short, err := db.ShortName("America/New_York", instant)
	require.NoError(t, err)
	assert.Equal(t, "EST", short)

	short, err = db.ShortName("Asia/Shanghai", instant)
	require.NoError(t, err)
	assert.Equal(t, "CST", short)

	_, err = db.ShortName("Not/AZone", instant)
	assert.Error(t, err)
}

func TestLocation_CachesHandles(t *testing.T) {
	db := NewIANADatabase()

	first, err := db.Location("America/New_York")
	require.NoError(t, err)
	second, err := db.Location("America/New_York")
	require.NoError(t, err)
	assert.Same(t, first, second)
}
