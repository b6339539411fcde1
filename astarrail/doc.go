// Package astarrail implements A* pathfinding for overland routes that
// normally follow land but may cross narrow water via shoreline tiles,
// penalizing direction changes to keep rail segments visually straight.
//
// What:
//
//   - AStarRail searches a terrain.Grid 4-connected. Stepping onto water or
//     shoreline terrain costs more than stepping onto plain land, and
//     changing direction from the previous step costs more still.
//   - Water is only enterable from a shoreline tile, and only exitable onto
//     one, so routes cross narrow channels via the shore rather than
//     cutting straight through open water.
//   - Because every cost term is a small bounded integer, the engine uses
//     a bucket queue (one stack per integer priority) instead of a binary
//     heap — strictly faster than a comparison-based queue when the
//     priority range is this small.
//
// Why:
//
//   - Grounded in original_source/rust/wasm-core/src/pathfinding/astar_rail.rs.
//     The cost model, traversability rule, and bucket queue shape below are
//     a direct port of that file's constants and arithmetic.
//
// Scratch reuse:
//
//   - Same generation-stamp technique as astarwater: g_score/came_from/
//     closed arrays are allocated once and reused across calls, amortizing
//     the full-array clear over 2^32-1 queries.
//
// Monomorphism:
//
//   - Like astarwater, this engine embeds its own priority queue rather
//     than routing through the shared minheap package — see astarwater's
//     doc comment for why the two engines deliberately don't share a
//     runtime-dispatched queue abstraction.
package astarrail
