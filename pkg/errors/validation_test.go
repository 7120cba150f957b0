package errors

import (
	"testing"
)

func TestParseCharacterID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"simple", "1", 1, false},
		{"padded", " 42 ", 42, false},
		{"max", "100000", 100000, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"not a number", "luke", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"too large", "100001", 0, true},
		{"path traversal", "../1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCharacterID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCharacterID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidCharacter) {
					t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidCharacter)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCharacterID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePage(t *testing.T) {
	tests := []struct {
		page    int
		wantErr bool
	}{
		{1, false},
		{9, false},
		{MaxPage, false},
		{0, true},
		{-1, true},
		{MaxPage + 1, true},
	}

	for _, tt := range tests {
		err := ValidatePage(tt.page)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePage(%d) error = %v, wantErr %v", tt.page, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidPage) {
			t.Errorf("ValidatePage(%d) code = %v", tt.page, GetCode(err))
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://sw-api.starnavi.io", false},
		{"http localhost", "http://localhost:8080/api", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "sw-api.starnavi.io", true},
		{"newline", "https://example.com\n/evil", true},
		{"space", "https://example.com/a b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURLSchemes(t *testing.T) {
	redis := []string{"redis", "rediss", "unix"}
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"redis://localhost:6379/0", false},
		{"rediss://cache.internal:6380", false},
		{"unix:///run/redis.sock", false},
		{"http://localhost:6379", true},
		{"redis://localhost:6379/0 ", true},
	}
	for _, tt := range tests {
		err := ValidateURL(tt.input, redis...)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q, redis) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateURL(%q) code = %v, want INVALID_INPUT", tt.input, err)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"json", "yaml", "dot", "svg"}

	for _, f := range supported {
		if err := ValidateFormat(f, supported); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}

	err := ValidateFormat("png", supported)
	if err == nil {
		t.Fatal("ValidateFormat(png) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
	if want := `unsupported format "png" (supported: json, yaml, dot, svg)`; UserMessage(err) != want {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err), want)
	}
}
