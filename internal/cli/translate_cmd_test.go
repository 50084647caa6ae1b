package cli

import (
	"testing"

	"github.com/srt-tools/srtkit/internal/translate"
)

func TestDefaultTranslateOutput(t *testing.T) {
	tests := []struct {
		path    string
		lang    string
		overlay bool
		want    string
	}{
		{"movie.srt", "spanish", false, "movie.spanish.srt"},
		{"movie.srt", "ja", true, "movie.ja.overlay.srt"},
		{"dir/movie.srt", "french", false, "dir/movie.french.srt"},
		{"noext", "de", false, "noext.de"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := defaultTranslateOutput(tt.path, tt.lang, tt.overlay)
			if got != tt.want {
				t.Errorf(
					"defaultTranslateOutput(%q, %q, %v) = %q, want %q",
					tt.path,
					tt.lang,
					tt.overlay,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"gemini", "GEMINI_API_KEY"},
		{"openai", "OPENAI_API_KEY"},
		{"anthropic", "ANTHROPIC_API_KEY"},
		{"something-else", "API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			got := apiKeyEnvVar(translate.Provider(tt.provider))
			if got != tt.want {
				t.Errorf("apiKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}
