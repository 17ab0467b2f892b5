// Package timeslot parses the human-readable time ranges that generated
// tasks carry ("9:00 AM - 11:00 AM"). It is the single parsing routine
// shared by the calendar and the reminder scheduler; divergent copies with
// different rounding would put reminders and the calendar out of step.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNoDigits = errors.New("timeslot: no digits in clock string")

// Clock is a time of day parsed from a slot half.
type Clock struct {
	Hour   int
	Minute int
}

// Decimal converts the clock to a comparable decimal hour, e.g. 12:30 PM
// becomes 12.5.
func (c Clock) Decimal() float64 {
	return float64(c.Hour) + float64(c.Minute)/60
}

// ParseClock parses "H[:MM] [AM|PM]". A missing minute part defaults to 0.
// PM adds 12 hours unless the hour is already 12; AM maps hour 12 to 0.
// A bare "H:MM" with no modifier is treated as 24-hour time. Input with no
// digits is an input-validation error, never a silent midnight.
func ParseClock(raw string) (Clock, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Clock{}, fmt.Errorf("%w: %q", ErrNoDigits, raw)
	}

	upper := strings.ToUpper(s)
	modifier := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		modifier = "AM"
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "PM"):
		modifier = "PM"
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hourPart := s
	minutePart := ""
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourPart = strings.TrimSpace(s[:idx])
		minutePart = strings.TrimSpace(s[idx+1:])
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrNoDigits, raw)
	}
	minute := 0
	if minutePart != "" {
		minute, err = strconv.Atoi(minutePart)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q", ErrNoDigits, raw)
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("timeslot: clock out of range: %q", raw)
	}

	switch modifier {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// SlotStart parses the start half of a slot string. The slot is split once
// on the first '-'; each half is trimmed before parsing.
func SlotStart(slot string) (Clock, error) {
	start, _, _ := strings.Cut(slot, "-")
	return ParseClock(start)
}

// SlotEnd parses the end half of a slot string. A slot without a '-' has no
// end; the start clock is returned.
func SlotEnd(slot string) (Clock, error) {
	start, end, found := strings.Cut(slot, "-")
	if !found {
		return ParseClock(start)
	}
	return ParseClock(end)
}
