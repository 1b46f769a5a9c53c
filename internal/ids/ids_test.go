package ids

import (
	"sync"
	"testing"
)

func TestNewWindowIDNeverRepeats(t *testing.T) {
	const workers, per = 8, 200
	var (
		mu   sync.Mutex
		seen = make(map[WindowID]struct{}, workers*per)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]WindowID, 0, per)
			for j := 0; j < per; j++ {
				local = append(local, NewWindowID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				if _, dup := seen[id]; dup {
					t.Errorf("duplicate window id %s", id)
				}
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Fatalf("expected %d ids, got %d", workers*per, len(seen))
	}
}

func TestIDStrings(t *testing.T) {
	if got := WindowID(3).String(); got != "window#3" {
		t.Fatalf("expected window#3, got %q", got)
	}
	if got := WidgetID(7).String(); got != "widget#7" {
		t.Fatalf("expected widget#7, got %q", got)
	}
}
