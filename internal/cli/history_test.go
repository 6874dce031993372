package cli

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"SIA Klients", 30, "SIA Klients"},
		{"SIA Ļoti garš uzņēmuma nosaukums ar garumzīmēm", 20, "SIA Ļoti garš uzņ..."},
		{"āēī", 2, "āē"},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.maxLen)
		}
	}
}
