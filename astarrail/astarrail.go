package astarrail

import (
	"github.com/openfrontio/tilepath/terrain"
)

// AStarRail is a reusable A* pathfinder over an overland-with-shoreline-
// crossing traversal model. Construct one per terrain buffer and call
// FindPath/FindPathMulti as many times as needed; all per-tile scratch is
// allocated once and recycled across calls via a generation stamp.
//
// Two searches on the same AStarRail must not run concurrently; the
// terrain.Grid it was built from may be shared by any number of other
// pathfinders as long as none of them are driven concurrently either.
type AStarRail struct {
	grid          terrain.Grid
	maxIterations uint32

	gScore      []uint32
	gScoreStamp []uint32
	closedStamp []uint32
	cameFrom    []int32
	stamp       uint32

	queue *bucketQueue
}

// New constructs an AStarRail bound to grid, allocating all per-tile
// scratch and the bucket queue up front. Options may override the default
// iteration budget (500,000).
func New(grid terrain.Grid, opts ...Option) (*AStarRail, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxIterations == 0 {
		return nil, ErrBadMaxIterations
	}

	n := grid.NumNodes()
	cameFrom := make([]int32, n)
	for i := range cameFrom {
		cameFrom[i] = -1
	}

	maxPriority := HeuristicWeight * (grid.Width + grid.Height) * maxStepCost

	return &AStarRail{
		grid:          grid,
		maxIterations: cfg.MaxIterations,
		gScore:        make([]uint32, n),
		gScoreStamp:   make([]uint32, n),
		closedStamp:   make([]uint32, n),
		cameFrom:      cameFrom,
		stamp:         1,
		queue:         newBucketQueue(maxPriority),
	}, nil
}

// FindPath finds a path from start to goal. It is equivalent to
// FindPathMulti with a single-element start set.
func (a *AStarRail) FindPath(start, goal terrain.TileID) (Path, bool) {
	return a.FindPathMulti([]terrain.TileID{start}, goal)
}

// FindPathMulti finds a path from any of starts to goal, honoring the
// shoreline traversability rule (§4.3): water is only entered from a
// shoreline tile, or onto one. Returns (nil, false) if no path exists
// within the configured iteration budget.
func (a *AStarRail) FindPathMulti(starts []terrain.TileID, goal terrain.TileID) (Path, bool) {
	if len(starts) == 0 {
		return nil, false
	}

	a.advanceStamp()
	stamp := a.stamp
	width := uint32(a.grid.Width)
	numNodes := uint32(a.grid.NumNodes())

	goalX := uint32(goal) % width
	goalY := uint32(goal) / width

	a.queue.clear()

	for _, s := range starts {
		si := uint32(s)
		a.gScore[si] = 0
		a.gScoreStamp[si] = stamp
		a.cameFrom[si] = -1

		sx := si % width
		sy := si / width
		a.queue.push(si, heuristic(sx, sy, goalX, goalY))
	}

	iterations := a.maxIterations

	for a.queue.len() > 0 {
		iterations--
		if iterations == 0 {
			return nil, false
		}

		current := a.queue.pop()

		if a.closedStamp[current] == stamp {
			continue
		}
		a.closedStamp[current] = stamp

		if terrain.TileID(current) == goal {
			return a.buildPath(goal), true
		}

		currentG := a.gScore[current]
		prev := a.cameFrom[current]
		currentX := current % width
		fromShoreline := a.grid.IsShoreline(terrain.TileID(current))

		if current >= width {
			a.relax(current, current-width, goal, stamp, currentG, prev, goalX, goalY, fromShoreline)
		}
		if current < numNodes-width {
			a.relax(current, current+width, goal, stamp, currentG, prev, goalX, goalY, fromShoreline)
		}
		if currentX != 0 {
			a.relax(current, current-1, goal, stamp, currentG, prev, goalX, goalY, fromShoreline)
		}
		if currentX != width-1 {
			a.relax(current, current+1, goal, stamp, currentG, prev, goalX, goalY, fromShoreline)
		}
	}

	return nil, false
}

// relax considers stepping from current onto neighbor, updating
// g_score/came_from and queuing a fresh entry if this path improves on
// any previously known cost.
func (a *AStarRail) relax(
	current, neighbor uint32,
	goal terrain.TileID,
	stamp uint32,
	currentG uint32,
	prev int32,
	goalX, goalY uint32,
	fromShoreline bool,
) {
	if a.closedStamp[neighbor] == stamp {
		return
	}
	if !a.isTraversable(neighbor, fromShoreline) {
		return
	}

	moveCost := a.stepCost(current, neighbor, prev)
	tentativeG := currentG + moveCost

	if a.gScoreStamp[neighbor] != stamp || tentativeG < a.gScore[neighbor] {
		a.cameFrom[neighbor] = int32(current)
		a.gScore[neighbor] = tentativeG
		a.gScoreStamp[neighbor] = stamp

		width := uint32(a.grid.Width)
		neighborX := neighbor % width
		neighborY := neighbor / width
		a.queue.push(neighbor, tentativeG+heuristic(neighborX, neighborY, goalX, goalY))
	}
}

// isTraversable implements §4.3's rule: land is always traversable; water
// is traversable only if entered from a shoreline tile or is itself
// shoreline water.
func (a *AStarRail) isTraversable(to uint32, fromShoreline bool) bool {
	toByte := a.grid.Bytes[to]
	if terrain.IsLand(toByte) {
		return true
	}
	return fromShoreline || terrain.IsShoreline(toByte)
}

// stepCost computes the cost of moving from "from" onto "to", given the
// tile before "from" (prev, or -1 if "from" is a start). Water or
// shoreline terrain (land or water) adds WaterPenalty; a change in
// direction from the previous step adds DirectionChangePenalty.
func (a *AStarRail) stepCost(from, to uint32, prev int32) uint32 {
	toByte := a.grid.Bytes[to]
	penalized := terrain.IsWater(toByte) || terrain.IsShoreline(toByte)

	var c uint32 = 1
	if penalized {
		c += WaterPenalty
	}

	if prev != -1 {
		d1 := int64(from) - int64(prev)
		d2 := int64(to) - int64(from)
		if d1 != d2 {
			c += DirectionChangePenalty
		}
	}

	return c
}

// buildPath walks came_from backward from goal to a start and reverses
// the result into source->destination order.
func (a *AStarRail) buildPath(goal terrain.TileID) Path {
	var path Path
	current := int32(goal)
	for current != -1 {
		path = append(path, terrain.TileID(current))
		current = a.cameFrom[current]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// advanceStamp increments the generation counter, performing the one-time
// full clear of both stamp arrays on the rare wraparound to zero.
func (a *AStarRail) advanceStamp() {
	a.stamp++
	if a.stamp == 0 {
		for i := range a.closedStamp {
			a.closedStamp[i] = 0
			a.gScoreStamp[i] = 0
		}
		a.stamp = 1
	}
}
