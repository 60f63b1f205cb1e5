package tui

import (
	"errors"
	"testing"
	"time"

	"memoflow/internal/domain"
	"memoflow/internal/flow"
	"memoflow/internal/logger"
)

func TestMarquee_AttachWithoutViewport(t *testing.T) {
	m := NewMarquee(1)
	if _, err := m.Attach("Hello", 0); !errors.Is(err, flow.ErrNoViewport) {
		t.Errorf("Attach() error = %v, want ErrNoViewport", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestMarquee_Measure(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"ascii", "Hello", 5},
		{"wide runes", "日本", 4},
		{"mixed", "a日b", 4},
		{"empty", "", 0},
	}

	m := NewMarquee(1)
	m.SetWidth(80)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := m.Attach(tt.text, 80)
			if err != nil {
				t.Fatalf("Attach() error = %v", err)
			}
			got, err := m.Measure(h)
			if err != nil {
				t.Fatalf("Measure() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Measure(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMarquee_DetachedHandle(t *testing.T) {
	m := NewMarquee(1)
	m.SetWidth(20)
	h, _ := m.Attach("x", 20)
	m.Detach(h)

	if _, err := m.Measure(h); !errors.Is(err, flow.ErrNotAttached) {
		t.Errorf("Measure() error = %v, want ErrNotAttached", err)
	}
	if err := m.Animate(h, flow.Motion{}); !errors.Is(err, flow.ErrNotAttached) {
		t.Errorf("Animate() error = %v, want ErrNotAttached", err)
	}
	// Detaching twice is harmless
	m.Detach(h)
}

func TestMarquee_LanesRoundRobin(t *testing.T) {
	m := NewMarquee(2)
	m.SetWidth(10)
	var lanes []int
	for range 3 {
		h, err := m.Attach("x", 10)
		if err != nil {
			t.Fatal(err)
		}
		lanes = append(lanes, m.entities[h].lane)
	}
	want := []int{0, 1, 0}
	for i := range want {
		if lanes[i] != want[i] {
			t.Errorf("lanes = %v, want %v", lanes, want)
			break
		}
	}
}

func TestMarquee_LinesFollowMotion(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMarquee(1)
	m.SetWidth(10)
	h, _ := m.Attach("Hi", 10)
	if err := m.Animate(h, flow.Motion{From: 10, To: -2, Start: start, Duration: 12 * time.Second}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "          "},
		{4 * time.Second, "      Hi  "},
		{10 * time.Second, "Hi        "},
		{11 * time.Second, "i         "},
		{12 * time.Second, "          "},
	}
	for _, tt := range tests {
		m.SetNow(start.Add(tt.elapsed))
		got := m.lines()[0]
		if got != tt.want {
			t.Errorf("at %v: line = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestDraw_ClipsWideRunes(t *testing.T) {
	tests := []struct {
		name string
		col  int
		text string
		want string
	}{
		{"fits", 1, "日本", " 日本 "},
		{"left half cut", -1, "日本", " 本   "},
		{"right half cut", 5, "日", "      "},
		{"past the end", 6, "abc", "      "},
		{"narrow clipped", 4, "abc", "    ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := []rune("      ")
			draw(canvas, tt.col, tt.text)
			if got := renderCanvas(canvas); got != tt.want {
				t.Errorf("draw() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDraw_OverwriteSplitsWideRune(t *testing.T) {
	canvas := []rune("      ")
	draw(canvas, 0, "日本")
	draw(canvas, 1, "x")
	got := renderCanvas(canvas)
	if want := " x本  "; got != want {
		t.Errorf("draw() = %q, want %q", got, want)
	}
}

func TestMarquee_DrivenByScheduler(t *testing.T) {
	m := NewMarquee(1)
	m.SetWidth(100)
	rnd := zeroRandom{}
	s := flow.NewScheduler(
		flow.Config{BaseInterval: 2 * time.Second, Speed: 10},
		flow.NewPool(rnd, ""),
		m, rnd, logger.Discard(),
	)
	if err := s.Start([]domain.Note{{Content: "Hello"}}); err != nil {
		t.Fatal(err)
	}

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := s.Tick(t0)
	if res.Spawned == nil {
		t.Fatalf("Tick() spawned nothing, skipped = %v", res.Skipped)
	}
	// (100 + 5) cells at 10 cells/s
	if got, want := res.Spawned.Motion.Duration, 10500*time.Millisecond; got != want {
		t.Errorf("duration = %v, want %v", got, want)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}

	res = s.Tick(res.Spawned.RemoveAt)
	if len(res.Removed) != 1 {
		t.Errorf("Removed = %v, want one handle", res.Removed)
	}
	// A new comment spawns in the same tick since the deadline has passed
	if res.Spawned == nil || m.Len() != 1 {
		t.Errorf("Len() = %d after removal and respawn, want 1", m.Len())
	}
}

type zeroRandom struct{}

func (zeroRandom) IntN(int) int     { return 0 }
func (zeroRandom) Float64() float64 { return 0 }
