package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateComponents_Valid(t *testing.T) {
	tests := []struct {
		name  string
		c     DateComponents
		valid bool
	}{
		{"plain date", DateComponents{Year: 2019, Month: 1, Day: 30}, true},
		{"leap day", DateComponents{Year: 2024, Month: 2, Day: 29}, true},
		{"leap day in non-leap year", DateComponents{Year: 2023, Month: 2, Day: 29}, false},
		{"february 30th", DateComponents{Year: 2024, Month: 2, Day: 30}, false},
		{"month 13", DateComponents{Year: 2023, Month: 13, Day: 1}, false},
		{"month 0", DateComponents{Year: 2023, Month: 0, Day: 1}, false},
		{"day 31 in april", DateComponents{Year: 2023, Month: 4, Day: 31}, false},
		{"day 0", DateComponents{Year: 2023, Month: 4, Day: 0}, false},
		{"hour 24", DateComponents{Year: 2023, Month: 4, Day: 1, Hour: 24}, false},
		{"minute 60", DateComponents{Year: 2023, Month: 4, Day: 1, Minute: 60}, false},
		{"second 60", DateComponents{Year: 2023, Month: 4, Day: 1, Second: 60}, false},
		{"millisecond 1000", DateComponents{Year: 2023, Month: 4, Day: 1, Millisecond: 1000}, false},
		{"full valid", DateComponents{Year: 2019, Month: 1, Day: 30, Hour: 23, Minute: 59, Second: 59, Millisecond: 999}, true},
		{"ancient year", DateComponents{Year: 44, Month: 3, Day: 15}, true},
		{"far future year", DateComponents{Year: 12345, Month: 6, Day: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.c.Valid())
		})
	}
}

func TestDateComponents_UTCGuess(t *testing.T) {
	c := DateComponents{Year: 2019, Month: 1, Day: 30, Hour: 21, Minute: 24, Second: 44, Millisecond: 123}
	want := time.Date(2019, time.January, 30, 21, 24, 44, 123*int(time.Millisecond), time.UTC).UnixMilli()
	assert.Equal(t, want, c.UTCGuess())
}
