package model

import (
	"testing"
	"time"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want Policy
		ok   bool
	}{
		{"mix", PolicyMix, true},
		{"BLOCK", PolicyBlock, true},
		{"Mix", PolicyMix, true},
		{"asap", PolicyMix, false},
		{"", PolicyMix, false},
	}
	for _, c := range cases {
		got, err := ParsePolicy(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParsePolicy(%q) = %v, %v", c.in, got, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParsePolicy(%q): expected error", c.in)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-06")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Equal(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("got %s", d)
	}
	if _, err := ParseDate("06/01/2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestMaxEnd(t *testing.T) {
	end1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end2 := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	p := Plan{Projects: []Project{{End: end1}, {End: end2}}}
	if !p.MaxEnd().Equal(end2) {
		t.Fatalf("max end: %s", p.MaxEnd())
	}
	if !(Plan{}).MaxEnd().IsZero() {
		t.Fatalf("empty plan should have zero max end")
	}
}
