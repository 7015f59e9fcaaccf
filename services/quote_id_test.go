package services

import (
	"regexp"
	"sync"
	"testing"
)

func TestRandomQuoteIDs_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{9}$`)
	src := RandomQuoteIDs{}
	for i := 0; i < 20; i++ {
		id := src.NextQuoteID()
		if !pattern.MatchString(id) {
			t.Fatalf("NextQuoteID() = %q, want 9 upper-case hex characters", id)
		}
	}
}

func TestSequentialQuoteIDs(t *testing.T) {
	src := NewSequentialQuoteIDs("Q")
	for _, want := range []string{"Q000001", "Q000002", "Q000003"} {
		if got := src.NextQuoteID(); got != want {
			t.Errorf("NextQuoteID() = %q, want %q", got, want)
		}
	}
}

func TestSequentialQuoteIDs_Concurrent(t *testing.T) {
	src := NewSequentialQuoteIDs("T")
	const n = 50

	var (
		mu   sync.Mutex
		seen = make(map[string]bool, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := src.NextQuoteID()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestNewQuoteIDSource(t *testing.T) {
	if _, ok := NewQuoteIDSource("sequential").(*SequentialQuoteIDs); !ok {
		t.Error("expected sequential source")
	}
	if _, ok := NewQuoteIDSource(" Sequential ").(*SequentialQuoteIDs); !ok {
		t.Error("mode should be case and space insensitive")
	}
	if _, ok := NewQuoteIDSource("").(RandomQuoteIDs); !ok {
		t.Error("expected random source by default")
	}
}
