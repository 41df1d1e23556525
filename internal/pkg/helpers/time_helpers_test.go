package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("got %v, want 90m", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("got %v, want the fallback", got)
	}
	if got := ParseDuration("", 12*time.Hour); got != 12*time.Hour {
		t.Errorf("got %v, want the fallback", got)
	}
}
