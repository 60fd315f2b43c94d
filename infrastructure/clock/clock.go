// ABOUTME: System clock implementation supplying the current instant
// ABOUTME: Satisfies the core Clock interface for the now and ago parsers

package clock

import "time"

// SystemClock reads the current instant from the operating system.
type SystemClock struct{}

// NewSystemClock creates a new system clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// NowMillis returns the current instant in milliseconds since the Unix epoch
func (c *SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}
