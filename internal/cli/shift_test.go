package cli

import (
	"errors"
	"testing"

	"github.com/srt-tools/srtkit/pkg/srt"
)

func TestShiftSubtitle(t *testing.T) {
	sub := srt.NewSubtitle(
		1,
		srt.NewTimestamp(0, 0, 5, 0),
		srt.NewTimestamp(0, 0, 7, 500),
		"Hello",
	)

	if err := shiftSubtitle(&sub, 1, 2, -3, 250); err != nil {
		t.Fatalf("shiftSubtitle error: %v", err)
	}
	if got := sub.Start.String(); got != "01:02:02,250" {
		t.Errorf("start = %s, want 01:02:02,250", got)
	}
	if got := sub.End.String(); got != "01:02:04,750" {
		t.Errorf("end = %s, want 01:02:04,750", got)
	}
}

func TestShiftSubtitlePastZero(t *testing.T) {
	sub := srt.NewSubtitle(
		1,
		srt.NewTimestamp(0, 0, 5, 0),
		srt.NewTimestamp(0, 0, 7, 0),
		"Hello",
	)

	err := shiftSubtitle(&sub, 0, 0, -10, 0)
	if !errors.Is(err, srt.ErrTimestampRange) {
		t.Errorf("got %v, want ErrTimestampRange", err)
	}
}
