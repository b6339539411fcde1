// Package astarwater implements A* pathfinding for naval units restricted
// to water tiles, biased toward the open-sea band a moderate distance from
// shore.
//
// What:
//
//   - AStarWater searches a terrain.Grid 4-connected, charging BASE_COST per
//     step plus a shore-distance penalty, and stops as soon as the goal
//     tile is popped off its internal priority queue.
//   - The goal tile may be land (it represents a dock); every other
//     expanded tile must be water.
//   - A cross-product tie-breaker nudges exploration toward the straight
//     line from the first start to the goal, for visually straight routes.
//     Inside the bounding box of the first start and the goal it stays
//     below COST_SCALE; far outside that box it can grow larger.
//
// Why:
//
//   - Grounded in original_source/rust/wasm-core/src/pathfinding/astar_water.rs,
//     itself a WASM port of the game's original TypeScript engine. The cost
//     model, heuristic, and tie-breaker below are a direct port of that
//     file's constants and arithmetic, not a reinterpretation.
//
// Scratch reuse:
//
//   - Per-tile g_score/came_from/closed arrays and an inline binary heap
//     are allocated once at construction and reused across calls via a
//     generation stamp (see AStarWater's stamp fields), the same technique
//     the teacher's dijkstra package uses for its lazy-decrease-key heap,
//     generalized here to avoid the O(n) clear dijkstra still pays at the
//     start of every call.
//
// Monomorphism:
//
//   - This engine embeds its own array-backed min-heap rather than using
//     the shared minheap package. Its priorities are large scaled integers
//     dominated by the heuristic weight, while astarrail's priorities are
//     small integers suited to a bucket queue — unifying the two behind one
//     generic heap would cost the hot loop a virtual dispatch for no
//     shared benefit, which is exactly what spec.md's design notes ask
//     implementers to resist.
package astarwater
