package units

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int64
	}{
		{"bare bytes", "512", 512},
		{"kilobytes", "4K", 4 * 1024},
		{"megabytes", "120M", 120 * 1024 * 1024},
		{"gigabytes", "2G", 2 * 1024 * 1024 * 1024},
		{"terabytes", "1T", 1024 * 1024 * 1024 * 1024},
		{"lowercase unit", "120m", 120 * 1024 * 1024},
		{"fractional", "1.5K", 1536},
		{"fractional floored", "2.7", 2},
		{"surrounding whitespace", "  3M ", 3 * 1024 * 1024},
		{"empty", "", 0},
		{"no number", "M", 0},
		{"unknown suffix", "10Q", 0},
		{"garbage", "abc", 0},
		{"negative", "-5M", 0},
		{"embedded space", "1 M", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.token); got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseThresholdMB(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		wantMB int
		wantOK bool
	}{
		{"valid", "250", 250, true},
		{"valid with spaces", " 50 ", 50, true},
		{"zero falls back", "0", DefaultMinSizeMB, false},
		{"negative falls back", "-10", DefaultMinSizeMB, false},
		{"non-numeric falls back", "lots", DefaultMinSizeMB, false},
		{"empty falls back", "", DefaultMinSizeMB, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mb, ok := ParseThresholdMB(tt.arg)
			if mb != tt.wantMB || ok != tt.wantOK {
				t.Errorf("ParseThresholdMB(%q) = (%d, %v), want (%d, %v)", tt.arg, mb, ok, tt.wantMB, tt.wantOK)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(200 * 1024 * 1024); got != "200 MiB" {
		t.Errorf("Format(200MiB) = %q", got)
	}
	if got := Format(-1); got != "0 B" {
		t.Errorf("Format(-1) = %q, want 0 B", got)
	}
}
