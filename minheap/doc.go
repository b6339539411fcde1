// Package minheap provides a generic binary min-heap priority queue for
// external A* and Dijkstra-style consumers.
//
// What:
//
//   - A MinHeap[P] stores (payload P, priority float32) pairs and always
//     pops the pair with the smallest priority.
//   - Backed by two parallel slices (payloads, priorities) rather than a
//     slice of structs, so a hot relax-and-push loop never allocates a
//     wrapper value per push.
//
// Why:
//
//   - astarwater embeds its own inline heap for the reasons given in its
//     doc comment (monomorphic hot path, no generic dispatch). MinHeap is
//     the general-purpose sibling spec.md assigns a name of its own
//     (§4.4, §6): any caller doing its own Dijkstra/A* variant over this
//     module's terrain model — or anything else — gets a ready queue
//     without reimplementing bubble-up/bubble-down.
//
// Complexity:
//
//   - Push:  amortized O(log n); O(n) on the (rare) capacity-doubling push.
//   - Pop:   O(log n).
//   - IsEmpty, Len, Clear: O(1).
//
// Ordering:
//
//   - Ties between equal priorities resolve arbitrarily — this mirrors the
//     teacher's dijkstra package, which also makes no tie-breaking
//     guarantee among equal-distance heap entries.
//   - NaN priorities are not supported; behavior with one pushed is
//     undefined, matching spec §4.4.
//
// Thread safety:
//
//   - A MinHeap is not safe for concurrent use. Two searches sharing one
//     instance must not overlap, the same rule the stamped engines in
//     astarwater/astarrail follow for their own scratch state.
package minheap
