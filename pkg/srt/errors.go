package srt

import (
	"errors"
	"fmt"
)

var (
	// returned when a timecode does not have the H:M:S,mmm shape
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// returned when a shift would push a timestamp above 255 hours or below zero
	ErrTimestampRange = errors.New("timestamp out of range")

	// returned when a subtitle block is missing one of its three sections
	ErrBadStructure = errors.New("bad subtitle structure")

	// returned when an encoding label is not in the WHATWG registry
	ErrBadEncodingName = errors.New("unrecognized encoding name")
)

// StructureError reports a subtitle block that is missing its time range
// or text section. Num is the cue's ordinal when the ordinal line was
// parsed before the failure; NumKnown is false otherwise.
type StructureError struct {
	Num      int
	NumKnown bool
}

func (e *StructureError) Error() string {
	if e.NumKnown {
		return fmt.Sprintf("bad subtitle structure (subtitle %d)", e.Num)
	}
	return "bad subtitle structure (subtitle unknown)"
}

func (e *StructureError) Unwrap() error {
	return ErrBadStructure
}

func structureError(num int, known bool) error {
	return &StructureError{Num: num, NumKnown: known}
}
