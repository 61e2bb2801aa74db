package errors

import (
	"math"
	"net/url"
	"slices"
	"strings"
)

// MaxTextLength bounds text accepted over the network. The CLI accepts any length.
const MaxTextLength = 1 << 20

// Font size bounds, in points.
const (
	MinFontSize = 6.0
	MaxFontSize = 72.0
)

// ValidateText checks text submitted to the HTTP API.
// Empty text is valid and yields an empty flowchart.
func ValidateText(text string) error {
	if len(text) > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (max %d bytes)", MaxTextLength)
	}
	if strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidInput, "text contains null bytes")
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateVizType checks that vizType is one of allowed.
func ValidateVizType(vizType string, allowed []string) error {
	if !slices.Contains(allowed, vizType) {
		return New(ErrCodeInvalidVizType, "unsupported visualization %q (want one of %s)", vizType, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateFontSize checks that size is a usable label size.
func ValidateFontSize(size float64) error {
	if math.IsNaN(size) || size < MinFontSize || size > MaxFontSize {
		return New(ErrCodeInvalidInput, "font size %v out of range [%v, %v]", size, MinFontSize, MaxFontSize)
	}
	return nil
}

// ValidateURL checks that rawURL is an absolute http or https URL with a host.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || rawURL == "" {
		return New(ErrCodeInvalidInput, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL %q has no host", rawURL)
	}
	return nil
}
