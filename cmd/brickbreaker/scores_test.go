package main

import (
	"errors"
	"testing"

	"github.com/rosasor/brick-breaker/internal/breakout"
)

func TestParseBoard(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"campaign", "campaign"},
		{" Campaign ", "campaign"},
		{"classic", "classic"},
		{"FORTRESS", "fortress"},
		{"Diamond", "diamond"},
	}

	for _, tc := range tests {
		got, err := parseBoard(tc.in)
		if err != nil {
			t.Errorf("parseBoard(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("parseBoard(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}

	if _, err := parseBoard("spiral"); !errors.Is(err, breakout.ErrUnknownLevel) {
		t.Errorf("unknown board error = %v, expected ErrUnknownLevel", err)
	}
}
