package logger

import (
	"errors"
	"testing"
	"time"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"keeps\nnewlines\tand tabs", "keeps\nnewlines\tand tabs"},
		{"drops\x00control\x1bchars", "dropscontrolchars"},
		{"del\x7fchar", "delchar"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("abcdef", 3); got != "abc" {
		t.Errorf("SanitizeLimit = %q, want abc", got)
	}
	if got := SanitizeLimit("abc", 10); got != "abc" {
		t.Errorf("SanitizeLimit = %q, want abc", got)
	}
	if got := SanitizeLimit("anything", 0); got != "" {
		t.Errorf("SanitizeLimit with max 0 = %q, want empty", got)
	}
	// Runes, not bytes.
	if got := SanitizeLimit("héllo", 2); got != "hé" {
		t.Errorf("SanitizeLimit = %q, want hé", got)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(nil); got != "ok" {
		t.Errorf("Status(nil) = %q", got)
	}
	if got := Status(errors.New("boom")); got != "fail" {
		t.Errorf("Status(err) = %q", got)
	}
}

func TestRoundMS(t *testing.T) {
	if got := RoundMS(1499 * time.Microsecond); got != time.Millisecond {
		t.Errorf("RoundMS = %v, want 1ms", got)
	}
	if got := RoundMS(-time.Second); got != 0 {
		t.Errorf("RoundMS(negative) = %v, want 0", got)
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(5, -100, 42); got != "5:-100:42" {
		t.Errorf("BuildRID = %q", got)
	}
}
