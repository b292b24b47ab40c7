package console

import "time"

// SystemClock reads the wall clock.
type SystemClock struct{}

// NowMillis returns the current time in milliseconds.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}
