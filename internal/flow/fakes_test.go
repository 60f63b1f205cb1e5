package flow

import (
	"unicode/utf8"
)

// seqRandom replays fixed sequences, repeating the last value once exhausted
type seqRandom struct {
	ints   []int
	floats []float64
}

func (r *seqRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *seqRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

type fakeEntity struct {
	text   string
	at     float64
	motion *Motion
}

// fakeSurface measures text at 10 units per rune unless widths overrides it
type fakeSurface struct {
	extent     float64
	widths     map[string]float64
	attachErr  error
	measureErr error

	next     Handle
	attached map[Handle]*fakeEntity
	detached map[Handle]int
}

func newFakeSurface(extent float64) *fakeSurface {
	return &fakeSurface{
		extent:   extent,
		widths:   make(map[string]float64),
		attached: make(map[Handle]*fakeEntity),
		detached: make(map[Handle]int),
	}
}

func (f *fakeSurface) Extent() float64 { return f.extent }

func (f *fakeSurface) Attach(text string, at float64) (Handle, error) {
	if f.attachErr != nil {
		return 0, f.attachErr
	}
	f.next++
	f.attached[f.next] = &fakeEntity{text: text, at: at}
	return f.next, nil
}

func (f *fakeSurface) Measure(h Handle) (float64, error) {
	if f.measureErr != nil {
		return 0, f.measureErr
	}
	e, ok := f.attached[h]
	if !ok {
		return 0, ErrNotAttached
	}
	if w, ok := f.widths[e.text]; ok {
		return w, nil
	}
	return float64(utf8.RuneCountInString(e.text) * 10), nil
}

func (f *fakeSurface) Animate(h Handle, m Motion) error {
	e, ok := f.attached[h]
	if !ok {
		return ErrNotAttached
	}
	e.motion = &m
	return nil
}

func (f *fakeSurface) Detach(h Handle) {
	if _, ok := f.attached[h]; ok {
		delete(f.attached, h)
		f.detached[h]++
	}
}
