package srt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Timestamp is a timecode of the form hours:minutes:seconds,milliseconds.
//
// Subtitle uses a pair of these for the time a cue appears on screen and
// the time it disappears. The maximum representable value is 255:59:59,999.
//
// NewTimestamp, Set and Parse store fields as given, without normalizing;
// minutes or seconds above 59 (or milliseconds above 999) are accepted and
// rendered as-is. Only the shift operations normalize, through carry.
type Timestamp struct {
	hours        uint8
	minutes      uint8
	seconds      uint8
	milliseconds uint16
}

// NewTimestamp constructs a Timestamp from raw field values.
func NewTimestamp(hours, minutes, seconds uint8, milliseconds uint16) Timestamp {
	return Timestamp{
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		milliseconds: milliseconds,
	}
}

// ParseTimestamp parses a string with the format
// "hours:minutes:seconds,milliseconds".
//
// A string without two colons and a comma fails with ErrMalformedTimestamp.
// A field that does not fit its storage width (8 bits, 16 for milliseconds)
// fails with the underlying integer-parse error. Values that fit their
// width but exceed their semantic range (e.g. minutes of 99) are accepted.
func ParseTimestamp(s string) (Timestamp, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return Timestamp{}, ErrMalformedTimestamp
	}

	secParts := strings.SplitN(parts[2], ",", 2)
	if len(secParts) != 2 {
		return Timestamp{}, ErrMalformedTimestamp
	}

	hours, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid hours field: %w", err)
	}
	minutes, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid minutes field: %w", err)
	}
	seconds, err := strconv.ParseUint(secParts[0], 10, 8)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid seconds field: %w", err)
	}
	milliseconds, err := strconv.ParseUint(secParts[1], 10, 16)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid milliseconds field: %w", err)
	}

	return Timestamp{
		hours:        uint8(hours),
		minutes:      uint8(minutes),
		seconds:      uint8(seconds),
		milliseconds: uint16(milliseconds),
	}, nil
}

// AddHours moves the timestamp n hours forward in time. Negative values
// move it back. Returns ErrTimestampRange if the result would exceed 255
// hours or go below zero, leaving the timestamp unchanged.
func (t *Timestamp) AddHours(n int) error {
	// n < -hours rather than -n > hours: negating math.MinInt overflows
	if n > int(math.MaxUint8-t.hours) || n < -int(t.hours) {
		return ErrTimestampRange
	}
	t.hours = uint8(int(t.hours) + n)
	return nil
}

// AddMinutes moves the timestamp n minutes forward in time, carrying whole
// hours into AddHours. Negative values move it back.
func (t *Timestamp) AddMinutes(n int) error {
	total := int(t.minutes) + n
	delta := total % 60
	carry := total / 60
	if delta < 0 {
		carry--
	}
	if err := t.AddHours(carry); err != nil {
		return err
	}
	t.minutes = uint8((60 + delta) % 60)
	return nil
}

// AddSeconds moves the timestamp n seconds forward in time, carrying whole
// minutes into AddMinutes. Negative values move it back.
func (t *Timestamp) AddSeconds(n int) error {
	total := int(t.seconds) + n
	delta := total % 60
	carry := total / 60
	if delta < 0 {
		carry--
	}
	if err := t.AddMinutes(carry); err != nil {
		return err
	}
	t.seconds = uint8((60 + delta) % 60)
	return nil
}

// AddMilliseconds moves the timestamp n milliseconds forward in time,
// carrying whole seconds into AddSeconds. Negative values move it back.
func (t *Timestamp) AddMilliseconds(n int) error {
	total := int(t.milliseconds) + n
	delta := total % 1000
	carry := total / 1000
	if delta < 0 {
		carry--
	}
	if err := t.AddSeconds(carry); err != nil {
		return err
	}
	t.milliseconds = uint16((1000 + delta) % 1000)
	return nil
}

// Add moves the timestamp forward by the amount held in other, field by
// field from hours down to milliseconds. A range failure on any field
// aborts with the fields already applied left in place.
func (t *Timestamp) Add(other Timestamp) error {
	if err := t.AddHours(int(other.hours)); err != nil {
		return err
	}
	if err := t.AddMinutes(int(other.minutes)); err != nil {
		return err
	}
	if err := t.AddSeconds(int(other.seconds)); err != nil {
		return err
	}
	return t.AddMilliseconds(int(other.milliseconds))
}

// Sub moves the timestamp backward by the amount held in other, field by
// field from milliseconds up to hours. A range failure on any field
// aborts with the fields already applied left in place.
func (t *Timestamp) Sub(other Timestamp) error {
	if err := t.AddMilliseconds(-int(other.milliseconds)); err != nil {
		return err
	}
	if err := t.AddSeconds(-int(other.seconds)); err != nil {
		return err
	}
	if err := t.AddMinutes(-int(other.minutes)); err != nil {
		return err
	}
	return t.AddHours(-int(other.hours))
}

// Get returns the four raw field values.
func (t Timestamp) Get() (hours, minutes, seconds uint8, milliseconds uint16) {
	return t.hours, t.minutes, t.seconds, t.milliseconds
}

// Set overwrites the four fields with raw values, without normalizing.
func (t *Timestamp) Set(hours, minutes, seconds uint8, milliseconds uint16) {
	t.hours = hours
	t.minutes = minutes
	t.seconds = seconds
	t.milliseconds = milliseconds
}

// Compare orders timestamps by hours, then minutes, then seconds, then
// milliseconds. It returns -1 if t is earlier than other, 0 if equal,
// and +1 if later.
func (t Timestamp) Compare(other Timestamp) int {
	if c := cmpInt(int(t.hours), int(other.hours)); c != 0 {
		return c
	}
	if c := cmpInt(int(t.minutes), int(other.minutes)); c != 0 {
		return c
	}
	if c := cmpInt(int(t.seconds), int(other.seconds)); c != 0 {
		return c
	}
	return cmpInt(int(t.milliseconds), int(other.milliseconds))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the timestamp as HH:MM:SS,mmm. Hours above 99 widen the
// first field instead of wrapping.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		t.hours, t.minutes, t.seconds, t.milliseconds)
}
