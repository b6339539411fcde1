// Package terrain defines the per-tile bit layout shared by every pathfinder
// in this module, plus the small set of id/coordinate conversions that
// operate on it.
//
// What:
//
//   - A tile is a byte. Bit 7 marks land, bit 6 marks shoreline, bit 5 is
//     reserved and ignored, and bits 0..4 carry a 5-bit water-distance
//     magnitude (0..31). See the comment on the bit constants in types.go
//     for the exact layout.
//   - A Grid pairs a terrain buffer with its Width/Height and exposes
//     ID/coordinate conversion plus the four semantic predicates
//     (IsLand, IsWater, IsShoreline, Magnitude).
//
// Why:
//
//   - AStarWater and AStarRail both need the same tile semantics but apply
//     different cost models on top of them. Centralizing the bit layout
//     here means the two engines can never disagree about what a byte
//     means, while staying free to diverge on everything else (this is the
//     only package they share).
//
// Non-goals:
//
//   - No traversal, no cost model, no search state. Those live in
//     astarwater and astarrail, which embed their own scratch arrays and
//     priority queues per the spec's "resist unifying the engines" design
//     note.
package terrain
