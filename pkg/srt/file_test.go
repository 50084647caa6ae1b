package srt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const fileFixture = "1\n00:00:01,000 --> 00:00:04,000\nHello, world!\n\n" +
	"2\n00:00:05,500 --> 00:00:08,200\nThis is a test.\nWith multiple lines."

func TestParseFileUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.srt")
	if err := os.WriteFile(path, []byte(fileFixture), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	subs, err := ParseFile(path, "")
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if subs.Len() != 2 {
		t.Fatalf("expected 2 subtitles, got %d", subs.Len())
	}
	if subs[1].Text != "This is a test.\nWith multiple lines." {
		t.Errorf("subs[1].Text = %q", subs[1].Text)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	subs, err := ParseSubtitles(fileFixture)
	if err != nil {
		t.Fatalf("ParseSubtitles error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.srt")
	if err := subs.WriteFile(path, ""); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	again, err := ParseFile(path, "")
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if again.String() != subs.String() {
		t.Errorf("file round trip changed the document")
	}
}

func TestParseFileEncodingLabel(t *testing.T) {
	// "¡Hola!" in ISO-8859-1: 0xA1 is the inverted exclamation mark
	content := []byte("1\n00:00:01,000 --> 00:00:02,000\n\xa1Hola!")
	path := filepath.Join(t.TempDir(), "latin1.srt")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// "latin1" is a WHATWG label for windows-1252
	subs, err := ParseFile(path, "latin1")
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if subs[0].Text != "¡Hola!" {
		t.Errorf("decoded text = %q, want ¡Hola!", subs[0].Text)
	}
}

func TestWriteFileEncodingLabel(t *testing.T) {
	subs := From([]Subtitle{
		NewSubtitle(1, NewTimestamp(0, 0, 1, 0), NewTimestamp(0, 0, 2, 0), "¡Hola!"),
	})
	path := filepath.Join(t.TempDir(), "latin1.srt")
	if err := subs.WriteFile(path, "latin1"); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	want := "1\n00:00:01,000 --> 00:00:02,000\n\xa1Hola!"
	if string(raw) != want {
		t.Errorf("encoded bytes = %q, want %q", raw, want)
	}
}

func TestParseFileBadEncodingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.srt")
	if err := os.WriteFile(path, []byte(fileFixture), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := ParseFile(path, "klingon")
	if !errors.Is(err, ErrBadEncodingName) {
		t.Errorf("got %v, want ErrBadEncodingName", err)
	}
}

func TestWriteFileBadEncodingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	err := NewSubtitles().WriteFile(path, "klingon")
	if !errors.Is(err, ErrBadEncodingName) {
		t.Errorf("got %v, want ErrBadEncodingName", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("file was created despite the bad encoding name")
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.srt"), "")
	if err == nil {
		t.Error("expected an I/O error for a missing file")
	}
}
