package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"paragraph", "Start. Check if x. End.", false},
		{"unicode", "Démarrer. Fin.", false},
		{"null byte", "Start.\x00End.", true},
		{"too long", strings.Repeat("a", MaxTextLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want INVALID_INPUT", GetCode(err))
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"png", "svg"}
	if err := ValidateFormat("png", allowed); err != nil {
		t.Errorf("png: %v", err)
	}
	err := ValidateFormat("gif", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("gif: %v", err)
	}
	if !strings.Contains(UserMessage(err), "png, svg") {
		t.Errorf("message should list allowed formats: %s", UserMessage(err))
	}
}

func TestValidateVizType(t *testing.T) {
	allowed := []string{"flowchart", "nodelink"}
	if err := ValidateVizType("nodelink", allowed); err != nil {
		t.Errorf("nodelink: %v", err)
	}
	if err := ValidateVizType("sequence", allowed); !Is(err, ErrCodeInvalidVizType) {
		t.Errorf("sequence: %v", err)
	}
}

func TestValidateFontSize(t *testing.T) {
	tests := []struct {
		size    float64
		wantErr bool
	}{
		{16, false},
		{MinFontSize, false},
		{MaxFontSize, false},
		{0, true},
		{-1, true},
		{100, true},
		{math.NaN(), true},
	}
	for _, tt := range tests {
		if err := ValidateFontSize(tt.size); (err != nil) != tt.wantErr {
			t.Errorf("ValidateFontSize(%v) error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://api.openai.com/v1", false},
		{"http://localhost:11434/v1", false},
		{"", true},
		{"ftp://example.com", true},
		{"javascript:alert(1)", true},
		{"https://", true},
		{"api.openai.com/v1", true},
	}
	for _, tt := range tests {
		if err := ValidateURL(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
