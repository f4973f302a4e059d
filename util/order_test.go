package util

import (
	"strings"
	"testing"
	"time"
)

func TestOrderNumber(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := OrderNumber(now); got != "AMS1700000000000" {
		t.Fatalf("OrderNumber = %q", got)
	}
}

func TestTrackingNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got := TrackingNumber()
		if !strings.HasPrefix(got, "TRK") || len(got) != 12 {
			t.Fatalf("malformed tracking number %q", got)
		}
		for _, r := range got[3:] {
			if !strings.ContainsRune(base36, r) {
				t.Fatalf("unexpected character %q in %q", r, got)
			}
		}
		seen[got] = true
	}
	if len(seen) < 90 {
		t.Fatalf("tracking numbers look non-random: %d distinct of 100", len(seen))
	}
}
