package flow

import (
	"errors"
	"time"
)

var (
	// ErrNotAttached is returned by a Surface for a handle it does not hold
	ErrNotAttached = errors.New("entity not attached")
	// ErrNoViewport is returned when the surface has nothing to draw into yet
	ErrNoViewport = errors.New("viewport unavailable")
	// ErrNoExtent is reported when an attached entity measures as empty
	ErrNoExtent = errors.New("entity has no extent")
)

// Handle identifies an entity attached to a Surface
type Handle uint64

// Motion is a committed linear travel along the flow axis
type Motion struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// Position returns where the entity is at t. Before Start it is at From,
// after Start+Duration it is at To.
func (m Motion) Position(t time.Time) float64 {
	if m.Duration <= 0 {
		return m.To
	}
	elapsed := t.Sub(m.Start)
	switch {
	case elapsed <= 0:
		return m.From
	case elapsed >= m.Duration:
		return m.To
	}
	frac := float64(elapsed) / float64(m.Duration)
	return m.From + (m.To-m.From)*frac
}

// End returns the time the motion reaches To
func (m Motion) End() time.Time {
	return m.Start.Add(m.Duration)
}

// Surface is a rendering target for flowing comments. Entities are created in
// two phases: Attach materializes the entity at rest so it can be measured,
// then Animate commits its motion.
type Surface interface {
	// Extent returns the current viewport size along the flow axis
	Extent() float64

	// Attach materializes text at position at and returns its handle
	Attach(text string, at float64) (Handle, error)

	// Measure returns the rendered extent of an attached entity
	Measure(h Handle) (float64, error)

	// Animate commits the motion of an attached entity
	Animate(h Handle, m Motion) error

	// Detach removes an entity. Unknown handles are ignored.
	Detach(h Handle)
}
