// Package logbuf: construction events, trace hooks, and Buffer options.
package logbuf

// Event identifies which construction path produced a Buffer.
//
//   - EventDefault - New: empty (or WithValues-seeded) construction.
//   - EventCopy    - Clone: independent duplicate of an existing Buffer.
//   - EventMove    - Move: ownership transfer that empties the source.
type Event int

const (
	// EventDefault marks default construction via New.
	EventDefault Event = iota

	// EventCopy marks copy construction via Clone.
	EventCopy

	// EventMove marks move construction via Move.
	EventMove
)

// String returns the lesson-friendly name of the construction path.
func (ev Event) String() string {
	switch ev {
	case EventDefault:
		return "default"
	case EventCopy:
		return "copy"
	case EventMove:
		return "move"
	default:
		return "unknown"
	}
}

// TraceFunc observes construction events. A Buffer's hook is inherited by
// buffers constructed from it (Clone and Move both carry it over), so one
// hook can follow a value through its whole construction history.
type TraceFunc func(Event)

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithTrace attaches fn as the construction-event hook.
// A nil fn leaves the Buffer silent (the default).
func WithTrace(fn TraceFunc) Option {
	return func(b *Buffer) { b.trace = fn }
}

// WithValues seeds the Buffer with vs, in order.
// The values are copied; the caller's slice is never aliased.
func WithValues(vs ...int) Option {
	return func(b *Buffer) { b.data = append(b.data, vs...) }
}
