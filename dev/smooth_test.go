package dev

import "testing"

func TestNewSmootherRejectsEmptyWindow(t *testing.T) {
	if _, err := NewSmoother(0); err != ErrWindowSize {
		t.Fatalf("NewSmoother(0) err = %v, want %v", err, ErrWindowSize)
	}
	if _, err := NewSmoother(-3); err != ErrWindowSize {
		t.Fatalf("NewSmoother(-3) err = %v, want %v", err, ErrWindowSize)
	}
}

func TestSmootherWindowOfOnePassesThrough(t *testing.T) {
	s, err := NewSmoother(1)
	if err != nil {
		t.Fatalf("NewSmoother: %v", err)
	}
	for _, raw := range []uint16{0, 1, 500, 0xFFFF} {
		if got := s.Observe(raw); got != raw {
			t.Fatalf("Observe(%d) = %d, want %d", raw, got, raw)
		}
	}
}

func TestSmootherRunningMean(t *testing.T) {
	s, err := NewSmoother(4)
	if err != nil {
		t.Fatalf("NewSmoother: %v", err)
	}

	steps := []struct {
		raw  uint16
		want uint16
	}{
		{100, 25},
		{200, 75},
		{300, 150},
		{400, 250},
		{500, 350}, // wraps, 100 falls out of the window
		{500, 425}, // 200 falls out
	}
	for _, st := range steps {
		if got := s.Observe(st.raw); got != st.want {
			t.Fatalf("Observe(%d) = %d, want %d", st.raw, got, st.want)
		}
	}
}

func TestSmootherMeanTruncates(t *testing.T) {
	s, err := NewSmoother(3)
	if err != nil {
		t.Fatalf("NewSmoother: %v", err)
	}

	if got := s.Observe(1); got != 0 { // 1/3
		t.Fatalf("Observe #1 = %d, want 0", got)
	}
	if got := s.Observe(1); got != 0 { // 2/3
		t.Fatalf("Observe #2 = %d, want 0", got)
	}
	if got := s.Observe(1); got != 1 { // 3/3
		t.Fatalf("Observe #3 = %d, want 1", got)
	}
}

func TestSmootherPrimeSkipsRampUp(t *testing.T) {
	s, err := NewSmoother(8)
	if err != nil {
		t.Fatalf("NewSmoother: %v", err)
	}

	s.Prime(1000)
	if got := s.Observe(1000); got != 1000 {
		t.Fatalf("Observe after Prime = %d, want 1000", got)
	}

	// Re-priming resets an already-used history too.
	s.Observe(0)
	s.Prime(2000)
	if got := s.Observe(2000); got != 2000 {
		t.Fatalf("Observe after second Prime = %d, want 2000", got)
	}
}

func TestSmootherFullScaleDoesNotOverflow(t *testing.T) {
	s, err := NewSmoother(8)
	if err != nil {
		t.Fatalf("NewSmoother: %v", err)
	}

	s.Prime(0xFFFF)
	if got := s.Observe(0xFFFF); got != 0xFFFF {
		t.Fatalf("Observe at full scale = %d, want %d", got, 0xFFFF)
	}
}

func TestSmootherWindow(t *testing.T) {
	s, err := NewSmoother(8)
	if err != nil {
		t.Fatalf("NewSmoother: %v", err)
	}
	if got := s.Window(); got != 8 {
		t.Fatalf("Window() = %d, want 8", got)
	}
}
