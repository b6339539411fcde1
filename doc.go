// Package tilepath is the grid pathfinding core for an RTS map: two
// purpose-built A* engines plus the terrain model and priority-queue
// primitives they share.
//
// What's here:
//
//	terrain/      — the byte-encoded terrain contract (land, shoreline,
//	                water-distance magnitude) every other package reads.
//	terrainbuild/ — computes a terrain.Grid from a raw land/water mask.
//	minheap/      — a generic binary min-heap for external A* consumers.
//	astarwater/   — A* restricted to water, penalized by shore distance.
//	astarrail/    — A* over land that may cross narrow water via
//	                shoreline tiles, penalized for direction changes.
//
// astarwater and astarrail are deliberately not unified behind a shared
// priority-queue abstraction: their cost magnitudes differ by two orders
// of magnitude, so one is driven by a binary heap and the other by a
// bucket queue, and each keeps its own scratch buffers and stamping
// scheme tuned to its own cost model. minheap exists for callers outside
// this module that want a generic priority queue without either engine's
// domain baggage.
//
// Every pathfinder reuses its internal scratch slices (gScore, cameFrom,
// the closed markers) across repeated FindPath calls via a generation
// counter rather than reallocating or fully clearing them, and empties its
// open set in place without reallocating it, so that running the
// same *AStarWater or *AStarRail many times over the same terrain.Grid
// costs no more setup than the first call.
package tilepath
