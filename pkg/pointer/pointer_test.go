package pointer

import (
	"sync"
	"testing"
)

func TestSurfaceDeliversInOrder(t *testing.T) {
	s := NewSurface()
	var got []int
	s.OnMove(func(x, _ int) { got = append(got, x) })
	for _, x := range []int{3, 1, 2} {
		s.Move(x, 0)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("unexpected delivery order %v", got)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	s := NewSurface()
	calls := 0
	sub := s.OnMove(func(int, int) { calls++ })
	s.Move(1, 1)
	sub.Cancel()
	sub.Cancel()
	if n := s.Move(2, 2); n != 0 {
		t.Fatalf("expected no handlers to run, got %d", n)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if s.Listeners() != 0 || sub.Active() {
		t.Fatalf("subscription still registered")
	}
}

func TestReleaseIsOneShot(t *testing.T) {
	r := NewReleaseSignal()
	calls := 0
	r.Once(func(int, int) { calls++ })
	if r.Listeners() != 1 {
		t.Fatalf("expected 1 listener, got %d", r.Listeners())
	}
	r.Release(0, 0)
	r.Release(0, 0)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if r.Listeners() != 0 {
		t.Fatalf("expected listener to be removed, got %d", r.Listeners())
	}
}

func TestReleaseHandlerCanCancelMoves(t *testing.T) {
	s := NewSurface()
	r := NewReleaseSignal()
	moves := 0
	sub := s.OnMove(func(int, int) { moves++ })
	r.Once(func(int, int) { sub.Cancel() })

	s.Move(1, 0)
	r.Release(1, 0)
	s.Move(2, 0)
	if moves != 1 {
		t.Fatalf("expected 1 move before release, got %d", moves)
	}
}

func TestCancelWaitsForInflightMove(t *testing.T) {
	s := NewSurface()
	entered := make(chan struct{})
	unblock := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	sub := s.OnMove(func(int, int) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(entered)
			<-unblock
		}
	})

	done := make(chan struct{})
	go func() {
		s.Move(1, 0)
		close(done)
	}()
	<-entered

	cancelled := make(chan struct{})
	go func() {
		sub.Cancel()
		close(cancelled)
	}()

	close(unblock)
	<-done
	<-cancelled

	s.Move(2, 0)
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected no delivery after cancel, got %d calls", calls)
	}
}
