package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockFormat is the format used to store a time of day.
const ClockFormat = "15:04:05"

// Clock is a time of day with second granularity.
type Clock struct {
	sec int // seconds since midnight
}

// NewClock returns a normalized Clock, hours wrap around midnight.
func NewClock(hour, min, sec int) Clock {
	s := ((hour*60+min)*60 + sec) % 86400
	if s < 0 {
		s += 86400
	}
	return Clock{s}
}

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) Clock { return NewClock(t.Clock()) }

// Now returns the current time of day.
func Now() Clock { return ClockOf(time.Now()) }

func (c Clock) Hour() int   { return c.sec / 3600 }
func (c Clock) Minute() int { return c.sec / 60 % 60 }
func (c Clock) Second() int { return c.sec % 60 }

// Compare returns -1, 0 or +1 if c is before, equal or after x.
func (c Clock) Compare(x Clock) int {
	switch {
	case c.sec < x.sec:
		return -1
	case c.sec > x.sec:
		return 1
	}
	return 0
}

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

// Short formats the clock as HH:MM.
func (c Clock) Short() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

// ParseClock parses "15:04:05" or "15:04".
func ParseClock(str string) (Clock, error) {
	for _, layout := range []string{ClockFormat, "15:04", "3:04PM", time.TimeOnly + ".000000"} {
		if t, err := time.Parse(layout, str); err == nil {
			return ClockOf(t), nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time %q want format %q", str, ClockFormat)
}

func (c *Clock) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseClock(str)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}
