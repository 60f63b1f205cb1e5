// Package flow drives the marquee of flowing comments.
//
// A Pool holds the strings eligible for display, rebuilt from the current notes
// whenever they change. A Scheduler is ticked once per frame with the frame's
// wall-clock timestamp; when the spawn deadline has passed it samples the pool,
// materializes a comment on a Surface, measures it, commits a linear motion
// across the viewport and queues the comment's removal. Removals are popped
// from a deadline queue on later ticks, so each comment is detached exactly
// once and no later than one frame after its travel ends.
//
// Everything runs on the caller's goroutine; the types here are not safe for
// concurrent use.
package flow
