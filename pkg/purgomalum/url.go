package purgomalum

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Format is the response format requested from the service. It is also the
// last path segment of the request URL.
type Format string

const (
	FormatJSON              Format = "json"
	FormatPlain             Format = "plain"
	FormatXML               Format = "xml"
	FormatContainsProfanity Format = "containsprofanity"
)

var (
	filterFormats = []Format{FormatJSON, FormatPlain, FormatXML}
	validFormats  = append(slices.Clone(filterFormats), FormatContainsProfanity)
)

// Options holds the optional query parameters. Empty fields are omitted.
type Options struct {
	// Add is a comma separated list of words added to the profanity list.
	// The service accepts letters, numbers, underscores and commas, up to
	// 10 words or 200 characters.
	Add string
	// FillText replaces each matched word, at most 20 characters.
	FillText string
	// FillChar is repeated to the length of each matched word.
	FillChar string
}

// BuildURL returns the request URL for the default service endpoint.
func BuildURL(text string, format Format, opts Options) (string, error) {
	return buildURL(serviceURL(DefaultBaseURL), text, format, opts)
}

// serviceURL returns the endpoint prefix the format segment is appended to.
func serviceURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/service/"
}

func buildURL(endpoint, text string, format Format, opts Options) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: no input text provided", ErrInvalidArgument)
	}
	if !slices.Contains(validFormats, format) {
		return "", fmt.Errorf("%w: format %q must be one of %v", ErrInvalidArgument, format, validFormats)
	}

	// url.Values.Encode sorts keys, the service documents text first.
	params := [][2]string{
		{"text", text},
		{"add", opts.Add},
		{"fill_text", opts.FillText},
		{"fill_char", opts.FillChar},
	}

	var query []string
	for _, p := range params {
		if p[1] == "" {
			continue
		}
		query = append(query, url.QueryEscape(p[0])+"="+url.QueryEscape(p[1]))
	}

	return endpoint + string(format) + "?" + strings.Join(query, "&"), nil
}
