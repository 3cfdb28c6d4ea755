// Package logbuf implements Buffer, an owned, ordered sequence of integers
// with three explicit construction paths: default, copy and move.
//
// 🚀 What is logbuf?
//
//	The ownership lesson of the study log as a real type:
//	  • New     - default construction: an empty Buffer (or seeded via
//	    WithValues)
//	  • Clone   - copy construction: an independent duplicate; the two
//	    buffers never share backing storage afterwards
//	  • Move    - move construction: the new Buffer takes ownership of the
//	    source's storage; the source stays valid but becomes empty
//
// ✨ Key properties:
//   - a Buffer's contents at construction are fully determined by its
//     construction path
//   - after Clone, mutating either side never affects the other
//   - after Move, the destination holds exactly what the source held and
//     the source is empty yet still usable (Append works)
//   - construction cannot fail; no manual release step exists - the
//     sequence is the only owned resource and the GC reclaims it
//
// 🔭 Observability:
//
//	The original lesson made constructor invocations visible by printing.
//	Here the library stays silent; attach a trace hook instead:
//
//	  src := logbuf.New(
//	    logbuf.WithValues(1, 2, 3),
//	    logbuf.WithTrace(func(ev logbuf.Event) { fmt.Println(ev) }),
//	  )
//	  dst := src.Clone()   // hook reports EventCopy
//	  own := logbuf.Move(src) // hook reports EventMove; src now empty
//
// Buffer is not safe for concurrent use; guard it externally if shared.
//
// Performance: Append is amortized O(1) per element; Clone is O(n);
// Move is O(1) - it transfers the backing slice, it does not copy.
package logbuf
