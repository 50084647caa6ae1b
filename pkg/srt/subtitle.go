package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// Subtitle is a single cue: the numeric counter, the on-screen time range
// and the text.
//
// Num is not required to be unique or sequential, and no relation between
// Start and End is enforced; both are left to the caller.
type Subtitle struct {
	Num   int
	Start Timestamp
	End   Timestamp
	Text  string
}

// NewSubtitle constructs a Subtitle.
func NewSubtitle(num int, start, end Timestamp, text string) Subtitle {
	return Subtitle{
		Num:   num,
		Start: start,
		End:   end,
		Text:  text,
	}
}

// ParseSubtitle parses one cue block with the format
// "num\nstart --> end\ntext" or
// "num\nstart --> end rendering-metadata\ntext".
//
// Leading blank lines are stripped. Anything after the first space
// following the end timecode is per-cue rendering metadata (position,
// alignment and the like) and is discarded. The text section keeps its
// embedded line breaks verbatim.
//
// A block missing its time range or text fails with a StructureError
// carrying the ordinal if the ordinal line was already parsed.
func ParseSubtitle(input string) (Subtitle, error) {
	parts := strings.SplitN(strings.TrimLeft(input, "\n"), "\n", 3)

	num64, err := strconv.ParseUint(parts[0], 10, 63)
	if err != nil {
		return Subtitle{}, fmt.Errorf("invalid subtitle number: %w", err)
	}
	num := int(num64)

	if len(parts) < 2 {
		return Subtitle{}, structureError(num, true)
	}
	timeRange := strings.SplitN(parts[1], " --> ", 2)
	if len(timeRange) != 2 {
		return Subtitle{}, structureError(num, true)
	}

	start, err := ParseTimestamp(timeRange[0])
	if err != nil {
		return Subtitle{}, err
	}
	// the end timecode runs up to the first space; the rest of the line
	// is rendering metadata
	endToken, _, _ := strings.Cut(timeRange[1], " ")
	end, err := ParseTimestamp(endToken)
	if err != nil {
		return Subtitle{}, err
	}

	if len(parts) < 3 {
		return Subtitle{}, structureError(num, true)
	}

	return NewSubtitle(num, start, end, parts[2]), nil
}

// AddHours moves both timestamps n hours forward (backward when negative).
// If the end timestamp fails the range check, the start keeps its shifted
// value; there is no rollback across the pair.
func (s *Subtitle) AddHours(n int) error {
	if err := s.Start.AddHours(n); err != nil {
		return err
	}
	return s.End.AddHours(n)
}

// AddMinutes moves both timestamps n minutes forward (backward when
// negative), without rollback on a partial failure.
func (s *Subtitle) AddMinutes(n int) error {
	if err := s.Start.AddMinutes(n); err != nil {
		return err
	}
	return s.End.AddMinutes(n)
}

// AddSeconds moves both timestamps n seconds forward (backward when
// negative), without rollback on a partial failure.
func (s *Subtitle) AddSeconds(n int) error {
	if err := s.Start.AddSeconds(n); err != nil {
		return err
	}
	return s.End.AddSeconds(n)
}

// AddMilliseconds moves both timestamps n milliseconds forward (backward
// when negative), without rollback on a partial failure.
func (s *Subtitle) AddMilliseconds(n int) error {
	if err := s.Start.AddMilliseconds(n); err != nil {
		return err
	}
	return s.End.AddMilliseconds(n)
}

// Add moves both timestamps forward by the amount held in delta, without
// rollback on a partial failure.
func (s *Subtitle) Add(delta Timestamp) error {
	if err := s.Start.Add(delta); err != nil {
		return err
	}
	return s.End.Add(delta)
}

// Sub moves both timestamps backward by the amount held in delta, without
// rollback on a partial failure.
func (s *Subtitle) Sub(delta Timestamp) error {
	if err := s.Start.Sub(delta); err != nil {
		return err
	}
	return s.End.Sub(delta)
}

// Compare orders cues by Num, breaking ties by start time and then end
// time. It returns -1, 0 or +1.
func (s Subtitle) Compare(other Subtitle) int {
	if c := cmpInt(s.Num, other.Num); c != 0 {
		return c
	}
	if c := s.Start.Compare(other.Start); c != 0 {
		return c
	}
	return s.End.Compare(other.End)
}

// String renders the cue in its on-disk form, with no trailing separator.
func (s Subtitle) String() string {
	return fmt.Sprintf("%d\n%s --> %s\n%s", s.Num, s.Start, s.End, s.Text)
}
