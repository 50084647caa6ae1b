package srt

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ParseFile parses a .srt file.
//
// label is a WHATWG encoding label ("iso-8859-7", "shift_jis", "greek",
// ...) or the empty string for UTF-8. An unrecognized label fails with
// ErrBadEncodingName before the file is touched. See
// https://encoding.spec.whatwg.org/#names-and-labels for the label list.
func ParseFile(path string, label string) (Subtitles, error) {
	var enc encoding.Encoding
	if label != "" {
		var err error
		enc, err = htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEncodingName, label)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(raw)
	if enc != nil {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decoding %s as %s: %w", path, label, err)
		}
		text = string(decoded)
	}

	return ParseSubtitles(text)
}

// WriteFile writes the rendered collection to a .srt file.
//
// label follows the same rules as in ParseFile; the empty string writes
// UTF-8. An unrecognized label fails with ErrBadEncodingName before the
// file is created. Output always uses bare line feeds and carries no
// byte-order mark.
func (s Subtitles) WriteFile(path string, label string) error {
	raw := []byte(s.String())
	if label != "" {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadEncodingName, label)
		}
		raw, _, err = transform.Bytes(enc.NewEncoder(), raw)
		if err != nil {
			return fmt.Errorf("encoding as %s: %w", label, err)
		}
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
