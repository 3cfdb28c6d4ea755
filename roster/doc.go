// Package roster implements the Player aggregate from the study log and
// the closure-driven search, filter and sort lesson operations over it.
//
// 🚀 What is roster?
//
//	Two lessons in one package:
//	  • mutation visibility - Player carries a matched pair of methods:
//	    Healed (value receiver, returns a modified copy; the caller's
//	    original never changes) and Heal (pointer receiver, mutates in
//	    place). The same pairing the original demonstrated with a
//	    reference and a pointer.
//	  • standard algorithms with closures - Roster exposes Find, FindByID,
//	    Filter, CountIf, SortBy and Healthiest, each taking the predicate
//	    or ordering as a function value.
//
// ✨ Key properties:
//   - Roster operations are value-semantic: Filter and SortBy return
//     fresh slices and never reorder or mutate their receiver
//   - SortBy is stable - equal elements keep their relative order
//   - Health never goes below zero (Damage clamps)
//
// ⚙️ Usage:
//
//	import "github.com/talha-safdar/semlab/roster"
//
//	r := roster.Roster{
//	  {ID: 1, Name: "Ada", Health: 100},
//	  {ID: 2, Name: "Brin", Health: 40},
//	}
//	hurt := r.Filter(func(p roster.Player) bool { return p.Health < 50 })
//	byHP := r.SortBy(func(a, b roster.Player) bool { return a.Health < b.Health })
//
// Performance: Find/Filter/CountIf are O(n); SortBy is O(n log n).
package roster
