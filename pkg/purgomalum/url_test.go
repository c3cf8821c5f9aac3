package purgomalum

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		format Format
		opts   Options
		want   string
	}{
		{
			name:   "all parameters",
			text:   "test text",
			format: FormatJSON,
			opts:   Options{Add: "test", FillText: "[filtered]", FillChar: "|"},
			want:   "https://www.purgomalum.com/service/json?text=test+text&add=test&fill_text=%5Bfiltered%5D&fill_char=%7C",
		},
		{
			name:   "text only",
			text:   "hello",
			format: FormatPlain,
			want:   "https://www.purgomalum.com/service/plain?text=hello",
		},
		{
			name:   "order kept when add is missing",
			text:   "hello",
			format: FormatXML,
			opts:   Options{FillChar: "-", FillText: "~"},
			want:   "https://www.purgomalum.com/service/xml?text=hello&fill_text=~&fill_char=-",
		},
		{
			name:   "contains profanity",
			text:   "@$$hole hello",
			format: FormatContainsProfanity,
			opts:   Options{Add: "foo,bar"},
			want:   "https://www.purgomalum.com/service/containsprofanity?text=%40%24%24hole+hello&add=foo%2Cbar",
		},
		{
			name:   "reserved characters",
			text:   "a&b=c?d/e*f",
			format: FormatJSON,
			want:   "https://www.purgomalum.com/service/json?text=a%26b%3Dc%3Fd%2Fe%2Af",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.text, tt.format, tt.opts)
			if err != nil {
				t.Fatalf("BuildURL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}

			again, _ := BuildURL(tt.text, tt.format, tt.opts)
			if again != got {
				t.Errorf("BuildURL() is not deterministic: %q != %q", again, got)
			}
		})
	}
}

func TestBuildURLInvalid(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		format  Format
		wantMsg string
	}{
		{"no text and invalid format", "", "invalid", "no input text provided"},
		{"no text", "", FormatJSON, "no input text provided"},
		{"invalid format", "test text", "invalid", "must be one of [json plain xml containsprofanity]"},
		{"format is case sensitive", "test text", "JSON", "must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildURL(tt.text, tt.format, Options{})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("BuildURL() error = %v, want %v", err, ErrInvalidArgument)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("BuildURL() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestClient_BuildURL(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"", "https://www.purgomalum.com/service/json?text=hi"},
		{"http://localhost:8099", "http://localhost:8099/service/json?text=hi"},
		{"http://localhost:8099/", "http://localhost:8099/service/json?text=hi"},
	}

	for _, tt := range tests {
		c := New(tt.baseURL, 0)
		got, err := c.BuildURL("hi", FormatJSON, Options{})
		if err != nil {
			t.Fatalf("BuildURL() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("New(%q).BuildURL() = %q, want %q", tt.baseURL, got, tt.want)
		}
	}
}
