package flow

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"memoflow/internal/domain"
)

// Default marquee timing. Speed is in surface units per second.
const (
	DefaultBaseInterval = 2000 * time.Millisecond
	DefaultJitter       = 3000 * time.Millisecond
	DefaultSpeed        = 100.0
)

// ErrAlreadyStarted is returned by Start on a running scheduler
var ErrAlreadyStarted = errors.New("scheduler already started")

// Config holds the spawn cadence and travel speed
type Config struct {
	BaseInterval time.Duration
	Jitter       time.Duration // spawn delay is BaseInterval plus a uniform draw from [0, Jitter)
	Speed        float64
}

// DefaultConfig returns the reference marquee timing
func DefaultConfig() Config {
	return Config{
		BaseInterval: DefaultBaseInterval,
		Jitter:       DefaultJitter,
		Speed:        DefaultSpeed,
	}
}

// State is the loop's only mutable decision state
type State struct {
	NextSpawn time.Time
}

// Advance decides whether a comment is due at now. When it is, the returned
// state carries the next deadline: now + BaseInterval + jitter.
func Advance(st State, now time.Time, cfg Config, rnd Random) (State, bool) {
	if !now.After(st.NextSpawn) {
		return st, false
	}
	st.NextSpawn = now.Add(cfg.BaseInterval + jitter(cfg.Jitter, rnd))
	return st, true
}

func jitter(max time.Duration, rnd Random) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rnd.Float64() * float64(max))
}

// TravelDuration is the time a comment of extent w needs to cross a viewport
// of extent v at speed: (v + w) / speed seconds.
func TravelDuration(v, w, speed float64) time.Duration {
	return time.Duration((v + w) / speed * float64(time.Second))
}

// Comment is a flowing comment in flight
type Comment struct {
	Handle   Handle
	Text     string
	Extent   float64
	Motion   Motion
	RemoveAt time.Time
}

// TickResult reports the effects applied by one tick
type TickResult struct {
	Spawned *Comment
	Skipped error // set when a spawn was due but could not be placed
	Removed []Handle
}

// Scheduler spawns flowing comments at randomized intervals and removes each
// one when its travel ends.
type Scheduler struct {
	cfg     Config
	pool    *Pool
	surface Surface
	rnd     Random
	log     *logrus.Entry

	state    State
	running  bool
	inFlight map[Handle]*Comment
	removals removalQueue
	seq      uint64
}

// NewScheduler creates an idle scheduler. Non-positive speed falls back to
// DefaultSpeed and negative intervals to zero.
func NewScheduler(cfg Config, pool *Pool, surface Surface, rnd Random, log *logrus.Entry) *Scheduler {
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}
	cfg.BaseInterval = max(cfg.BaseInterval, 0)
	cfg.Jitter = max(cfg.Jitter, 0)

	return &Scheduler{
		cfg:      cfg,
		pool:     pool,
		surface:  surface,
		rnd:      rnd,
		log:      log,
		inFlight: make(map[Handle]*Comment),
	}
}

// Start refreshes the pool from notes and begins spawning on the next tick.
// It must be called once per session.
func (s *Scheduler) Start(notes []domain.Note) error {
	if s.running {
		return ErrAlreadyStarted
	}
	s.pool.Refresh(notes)
	s.running = true
	s.log.WithField("pool_size", s.pool.Len()).Info("marquee started")
	return nil
}

// RefreshPool rebuilds the pool. Comments already in flight keep their text.
func (s *Scheduler) RefreshPool(notes []domain.Note) {
	s.pool.Refresh(notes)
	s.log.WithField("pool_size", s.pool.Len()).Debug("marquee pool refreshed")
}

// Running reports whether Start has been called
func (s *Scheduler) Running() bool {
	return s.running
}

// State returns the current decision state
func (s *Scheduler) State() State {
	return s.state
}

// InFlight returns the number of comments awaiting removal
func (s *Scheduler) InFlight() int {
	return len(s.inFlight)
}

// Comment returns the in-flight comment for h
func (s *Scheduler) Comment(h Handle) (Comment, bool) {
	c, ok := s.inFlight[h]
	if !ok {
		return Comment{}, false
	}
	return *c, true
}

// Tick runs one frame of the loop at the frame's timestamp: due removals fire
// first, then a comment is spawned if the deadline has passed.
func (s *Scheduler) Tick(now time.Time) TickResult {
	var res TickResult
	if !s.running {
		return res
	}

	for _, r := range s.removals.popDue(now) {
		s.surface.Detach(r.handle)
		delete(s.inFlight, r.handle)
		res.Removed = append(res.Removed, r.handle)
	}

	next, due := Advance(s.state, now, s.cfg, s.rnd)
	if !due {
		return res
	}
	s.state = next

	c, err := s.spawnOne(now)
	if err != nil {
		res.Skipped = err
		s.log.WithError(err).Debug("marquee spawn skipped")
		return res
	}
	res.Spawned = c
	s.log.WithFields(logrus.Fields{
		"handle":   c.Handle,
		"extent":   c.Extent,
		"duration": c.Motion.Duration,
	}).Debug("marquee comment spawned")
	return res
}

// spawnOne places one comment and queues its removal. On failure nothing is
// left attached and nothing is queued.
func (s *Scheduler) spawnOne(now time.Time) (*Comment, error) {
	text := s.pool.Sample()

	v := max(s.surface.Extent(), 0)
	h, err := s.surface.Attach(text, v)
	if err != nil {
		return nil, err
	}

	w, err := s.surface.Measure(h)
	if err == nil && w <= 0 {
		err = ErrNoExtent
	}
	if err != nil {
		s.surface.Detach(h)
		return nil, err
	}

	m := Motion{
		From:     v,
		To:       -w,
		Start:    now,
		Duration: TravelDuration(v, w, s.cfg.Speed),
	}
	if err := s.surface.Animate(h, m); err != nil {
		s.surface.Detach(h)
		return nil, err
	}

	c := &Comment{
		Handle:   h,
		Text:     text,
		Extent:   w,
		Motion:   m,
		RemoveAt: m.End(),
	}
	s.inFlight[h] = c
	s.seq++
	s.removals.schedule(removal{at: c.RemoveAt, handle: h, seq: s.seq})
	return c, nil
}
