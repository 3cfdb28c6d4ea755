// SPDX-License-Identifier: MIT
// Package logbuf: Buffer construction paths and sequence methods.
// Determinism:
//   - Clone never aliases the source's backing storage.
//   - Move leaves the source valid and deterministically empty.

package logbuf

import (
	"errors"
	"slices"
)

// ErrIndexOutOfRange indicates an At index outside [0, Len).
var ErrIndexOutOfRange = errors.New("logbuf: index out of range")

// Buffer owns one ordered, resizable sequence of integers.
//
// Not safe for concurrent use: the lesson's execution model is
// single-threaded, so Buffer carries no locks.
type Buffer struct {
	data  []int
	trace TraceFunc // construction-event hook; nil means silent
}

// New returns a Buffer built through the default construction path:
// empty unless seeded with WithValues. Fires EventDefault.
// Complexity: O(len(seed))
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	b.emit(EventDefault)

	return b
}

// Clone returns an independent duplicate of b: same contents, fresh
// backing storage, same trace hook. Mutating either side afterwards never
// affects the other. The source is left untouched. Fires EventCopy on the
// clone's hook.
// Complexity: O(n)
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{
		data:  slices.Clone(b.data),
		trace: b.trace,
	}
	clone.emit(EventCopy)

	return clone
}

// Move returns a Buffer that takes ownership of src's backing storage.
//
// After Move, the returned Buffer holds exactly the contents src held,
// and src is valid but empty: Len()==0, Append still works, and no
// storage is shared between the two. The trace hook carries over to the
// destination. Fires EventMove.
//
// Move(nil) degrades to default construction of an empty Buffer: a nil
// source has nothing to transfer.
// Complexity: O(1) - transfers the slice header, copies nothing.
func Move(src *Buffer) *Buffer {
	if src == nil {
		return New()
	}
	dst := &Buffer{
		data:  src.data,
		trace: src.trace,
	}
	src.data = nil
	dst.emit(EventMove)

	return dst
}

// Append appends vs to the end of the sequence, in order.
// Complexity: amortized O(1) per element.
func (b *Buffer) Append(vs ...int) {
	b.data = append(b.data, vs...)
}

// Len reports the number of stored integers.
// Complexity: O(1)
func (b *Buffer) Len() int {
	return len(b.data)
}

// At returns the i-th stored integer, or ErrIndexOutOfRange when i is
// outside [0, Len).
// Complexity: O(1)
func (b *Buffer) At(i int) (int, error) {
	if i < 0 || i >= len(b.data) {
		return 0, ErrIndexOutOfRange
	}

	return b.data[i], nil
}

// Values returns a copy of the stored sequence. The returned slice never
// aliases the Buffer's backing storage, so callers may mutate it freely.
// Complexity: O(n)
func (b *Buffer) Values() []int {
	return slices.Clone(b.data)
}

// Reset drops all contents while keeping the allocated capacity.
// Not a construction path: the trace hook does not fire.
// Complexity: O(1)
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// emit reports ev to the trace hook, if one is attached.
func (b *Buffer) emit(ev Event) {
	if b.trace != nil {
		b.trace(ev)
	}
}
