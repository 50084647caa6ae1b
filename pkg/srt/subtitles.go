// Package srt handles SubRip (.srt) subtitle files as collections of cue
// structs, so files can be parsed, edited in memory and serialized back
// without touching the text by hand.
//
// A file is a Subtitles collection; each cue is a Subtitle with a numeric
// counter, a start and end Timestamp and the cue text. Collections can be
// parsed from strings or files, built from scratch, shifted in time,
// sorted and written back out.
package srt

import (
	"sort"
	"strings"
	"unicode"
)

// Subtitles is an ordered collection of cues, one per block of a .srt
// file. Insertion order is what serialization follows; it is independent
// of each cue's Num.
type Subtitles []Subtitle

// NewSubtitles constructs an empty collection.
func NewSubtitles() Subtitles {
	return Subtitles{}
}

// From constructs a collection from a slice of cues.
func From(subs []Subtitle) Subtitles {
	return Subtitles(subs)
}

// ParseSubtitles parses a whole document: cue blocks separated by blank
// lines.
//
// A leading byte-order mark and all carriage returns are removed first,
// so files with Windows line endings parse identically to plain ones.
// Blocks containing no letter or digit are skipped, which tolerates stray
// blank blocks at either end of the file. The first malformed block
// aborts the parse; there is no partial result.
func ParseSubtitles(input string) (Subtitles, error) {
	input = strings.TrimLeft(input, "\uFEFF")
	if strings.ContainsRune(input, '\r') {
		input = strings.ReplaceAll(input, "\r", "")
	}

	res := NewSubtitles()
	for _, block := range strings.Split(input, "\n\n") {
		if !strings.ContainsFunc(block, isAlphanumeric) {
			continue
		}
		sub, err := ParseSubtitle(block)
		if err != nil {
			return nil, err
		}
		res.Push(sub)
	}

	return res, nil
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Push appends a cue at the end of the collection.
func (s *Subtitles) Push(sub Subtitle) {
	*s = append(*s, sub)
}

// Len returns the number of cues in the collection.
func (s Subtitles) Len() int {
	return len(s)
}

// IsEmpty reports whether the collection holds no cues.
func (s Subtitles) IsEmpty() bool {
	return len(s) == 0
}

// Sort orders the cues in place by their numeric counter, breaking ties
// by start and then end time. The sort is stable, so cues that compare
// equal keep their insertion order.
func (s Subtitles) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Compare(s[j]) < 0
	})
}

// String renders the whole document: cues joined by blank lines, with no
// leading or trailing separator. An empty collection renders as the
// empty string.
func (s Subtitles) String() string {
	if s.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	for i, sub := range s {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(sub.String())
	}
	return sb.String()
}
