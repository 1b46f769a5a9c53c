package backend

import (
	"testing"
	"time"
)

func TestThrottleDropsWithinInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	th := newThrottle(100 * time.Millisecond)
	th.now = func() time.Time { return clock }

	if !th.allow("a") {
		t.Fatalf("expected first call allowed")
	}
	if th.allow("a") {
		t.Fatalf("expected second call inside the interval dropped")
	}
	if !th.allow("b") {
		t.Fatalf("expected other keys unaffected")
	}
	clock = clock.Add(100 * time.Millisecond)
	if !th.allow("a") {
		t.Fatalf("expected call after the interval allowed")
	}
}

func TestZeroThrottleAllowsEverything(t *testing.T) {
	th := newThrottle(0)
	for i := 0; i < 3; i++ {
		if !th.allow("a") {
			t.Fatalf("expected zero interval to allow call %d", i)
		}
	}
}
