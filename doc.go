// Package semlab is your in-memory playground for the core mechanics of
// value semantics: copying, ownership transfer, silent vs. checked error
// policies, and mutation visibility.
//
// 🚀 What is semlab?
//
//	A small, self-contained library that turns a sequential study log of
//	language mechanics into working, tested Go:
//		• calc    - a stateless four-operation calculator with a documented
//		            silent-zero division policy and a checked variant
//		• logbuf  - an owned integer sequence with three construction paths:
//		            default (empty), copy (independent duplicate) and move
//		            (ownership transfer that empties the source)
//		• roster  - a tiny Player aggregate plus closure-driven search,
//		            filter and stable-sort lesson operations
//
// ✨ Why semlab?
//
//   - Beginner-friendly - minimal API, clear, intuitive naming
//   - Deterministic - every operation's outcome is fixed by its inputs
//   - Pure Go - no cgo, no hidden deps
//   - Observable - construction paths are reported through an optional
//     trace hook instead of hard-wired printing
//
// Everything is organized under three subpackages:
//
//	calc/   - Add, Sub, Mul, Div (silent zero), DivChecked (sentinel error)
//	logbuf/ - Buffer, Clone, Move, and the construction-event trace hook
//	roster/ - Player, Roster, Find/Filter/SortBy/Healthiest
//
// Quick example:
//
//	src := logbuf.New(logbuf.WithValues(1, 2, 3))
//	dst := logbuf.Move(src)   // dst owns {1,2,3}; src is valid and empty
//
// The examples/ directory walks through each mechanic as a narrated
// program, in the order the original study topics introduced them.
package semlab
