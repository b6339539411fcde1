package astarwater

import (
	"github.com/openfrontio/tilepath/terrain"
)

// AStarWater is a reusable A* pathfinder over a water-only traversal
// model. Construct one per terrain buffer and call FindPath/FindPathMulti
// as many times as needed; all per-tile scratch is allocated once and
// recycled across calls via a generation stamp.
//
// Two searches on the same AStarWater must not run concurrently; the
// terrain.Grid it was built from may be shared by any number of other
// pathfinders as long as none of them are driven concurrently either
// (it is never mutated).
type AStarWater struct {
	grid            terrain.Grid
	heuristicWeight uint32
	maxIterations   uint32

	gScore      []uint32
	gScoreStamp []uint32
	closedStamp []uint32
	cameFrom    []int32
	stamp       uint32

	heapNodes      []uint32
	heapPriorities []uint32
	heapSize       int
}

// New constructs an AStarWater bound to grid, allocating all per-tile
// scratch up front. Options may override the default heuristic weight (5)
// and iteration budget (1,000,000).
func New(grid terrain.Grid, opts ...Option) (*AStarWater, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.HeuristicWeight == 0 {
		return nil, ErrBadHeuristicWeight
	}
	if cfg.MaxIterations == 0 {
		return nil, ErrBadMaxIterations
	}

	n := grid.NumNodes()
	cameFrom := make([]int32, n)
	for i := range cameFrom {
		cameFrom[i] = -1
	}

	return &AStarWater{
		grid:            grid,
		heuristicWeight: cfg.HeuristicWeight,
		maxIterations:   cfg.MaxIterations,
		gScore:          make([]uint32, n),
		gScoreStamp:     make([]uint32, n),
		closedStamp:     make([]uint32, n),
		cameFrom:        cameFrom,
		stamp:           1,
		heapNodes:       make([]uint32, n),
		heapPriorities:  make([]uint32, n),
	}, nil
}

// FindPath finds a path from start to goal. It is equivalent to
// FindPathMulti with a single-element start set.
func (a *AStarWater) FindPath(start, goal terrain.TileID) (Path, bool) {
	return a.FindPathMulti([]terrain.TileID{start}, goal)
}

// FindPathMulti finds a path from any of starts to goal. The goal tile may
// be land; every other tile the search steps onto must be water. Returns
// (nil, false) if no path exists within the configured iteration budget —
// spec.md deliberately does not distinguish a genuinely disconnected goal
// from budget exhaustion.
func (a *AStarWater) FindPathMulti(starts []terrain.TileID, goal terrain.TileID) (Path, bool) {
	if len(starts) == 0 {
		return nil, false
	}

	a.advanceStamp()
	stamp := a.stamp
	width := uint32(a.grid.Width)
	numNodes := uint32(a.grid.NumNodes())
	weight := a.heuristicWeight

	goalX := uint32(goal) % width
	goalY := uint32(goal) / width

	a.heapSize = 0

	// Cross-product tie-breaker setup, anchored on the first start.
	s0 := uint32(starts[0])
	startX := s0 % width
	startY := s0 / width
	dxGoal := int64(goalX) - int64(startX)
	dyGoal := int64(goalY) - int64(startY)
	crossNorm := absInt64(dxGoal) + absInt64(dyGoal)
	if crossNorm < 1 {
		crossNorm = 1
	}

	for _, s := range starts {
		si := uint32(s)
		a.gScore[si] = 0
		a.gScoreStamp[si] = stamp
		a.cameFrom[si] = -1

		sx := si % width
		sy := si / width
		h := weight * BaseCost * (absDiff(sx, goalX) + absDiff(sy, goalY))
		a.heapPush(si, h)
	}

	iterations := a.maxIterations

	for a.heapSize > 0 {
		iterations--
		if iterations == 0 {
			return nil, false
		}

		current := a.heapPop()

		if a.closedStamp[current] == stamp {
			continue
		}
		a.closedStamp[current] = stamp

		if terrain.TileID(current) == goal {
			return a.buildPath(goal), true
		}

		currentG := a.gScore[current]
		currentX := current % width
		currentY := current / width

		if current >= width {
			a.relax(current, current-width, currentX, currentY-1, goal, stamp, currentG, goalX, goalY, weight, dxGoal, dyGoal, crossNorm)
		}
		if current < numNodes-width {
			a.relax(current, current+width, currentX, currentY+1, goal, stamp, currentG, goalX, goalY, weight, dxGoal, dyGoal, crossNorm)
		}
		if currentX != 0 {
			a.relax(current, current-1, currentX-1, currentY, goal, stamp, currentG, goalX, goalY, weight, dxGoal, dyGoal, crossNorm)
		}
		if currentX != width-1 {
			a.relax(current, current+1, currentX+1, currentY, goal, stamp, currentG, goalX, goalY, weight, dxGoal, dyGoal, crossNorm)
		}
	}

	return nil, false
}

// relax considers stepping from current onto neighbor, updating
// g_score/came_from and pushing a fresh heap entry if this path improves
// on any previously known cost.
func (a *AStarWater) relax(
	current, neighbor, neighborX, neighborY uint32,
	goal terrain.TileID,
	stamp uint32,
	currentG uint32,
	goalX, goalY uint32,
	weight uint32,
	dxGoal, dyGoal int64,
	crossNorm int64,
) {
	if a.closedStamp[neighbor] == stamp {
		return
	}

	neighborByte := a.grid.Bytes[neighbor]
	if terrain.TileID(neighbor) != goal && terrain.IsLand(neighborByte) {
		return
	}

	var cost uint32 = BaseCost
	if terrain.IsWater(neighborByte) {
		cost += magnitudePenalty(terrain.Magnitude(neighborByte))
	}
	tentativeG := currentG + cost

	if a.gScoreStamp[neighbor] != stamp || tentativeG < a.gScore[neighbor] {
		a.cameFrom[neighbor] = int32(current)
		a.gScore[neighbor] = tentativeG
		a.gScoreStamp[neighbor] = stamp

		h := weight * BaseCost * (absDiff(neighborX, goalX) + absDiff(neighborY, goalY))
		tie := crossProductTieBreaker(neighborX, neighborY, goalX, goalY, dxGoal, dyGoal, crossNorm)
		a.heapPush(neighbor, tentativeG+h+tie)
	}
}

// crossProductTieBreaker measures how far neighbor deviates from the
// straight line between the first start and the goal, divided by
// crossNorm². For tiles inside the bounding box of the first start and
// the goal the result stays under one BaseCost unit (at most about
// CostScale/2); tiles far outside that box can receive a larger value.
func crossProductTieBreaker(nx, ny, goalX, goalY uint32, dxGoal, dyGoal int64, crossNorm int64) uint32 {
	dxN := int64(nx) - int64(goalX)
	dyN := int64(ny) - int64(goalY)
	cross := dxGoal*dyN - dyGoal*dxN
	if cross < 0 {
		cross = -cross
	}
	return uint32((cross * (CostScale - 1)) / (crossNorm * crossNorm))
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// buildPath walks came_from backward from goal to a start and reverses
// the result into source->destination order.
func (a *AStarWater) buildPath(goal terrain.TileID) Path {
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
func (a *AStarWater) advanceStamp() {
	a.stamp++
	if a.stamp == 0 {
		for i := range a.closedStamp {
			a.closedStamp[i] = 0
			a.gScoreStamp[i] = 0
		}
		a.stamp = 1
	}
}

// heapPush inserts node at priority into the inline array-backed heap,
// growing it by doubling if it's at capacity. spec.md leaves this an open
// question ("grow on overflow" vs "assert the bound"); this engine grows,
// matching the generic minheap package's behavior rather than asserting,
// since a caller feeding a pathological map should not crash the engine.
func (a *AStarWater) heapPush(node, priority uint32) {
	if a.heapSize >= len(a.heapNodes) {
		newCap := len(a.heapNodes) * 2
		if newCap == 0 {
			newCap = 1
		}
		nodes := make([]uint32, newCap)
		prios := make([]uint32, newCap)
		copy(nodes, a.heapNodes)
		copy(prios, a.heapPriorities)
		a.heapNodes = nodes
		a.heapPriorities = prios
	}

	i := a.heapSize
	a.heapNodes[i] = node
	a.heapPriorities[i] = priority
	a.heapSize++

	for i > 0 {
		parent := (i - 1) >> 1
		if a.heapPriorities[parent] <= a.heapPriorities[i] {
			break
		}
		a.heapNodes[parent], a.heapNodes[i] = a.heapNodes[i], a.heapNodes[parent]
		a.heapPriorities[parent], a.heapPriorities[i] = a.heapPriorities[i], a.heapPriorities[parent]
		i = parent
	}
}

func (a *AStarWater) heapPop() uint32 {
	result := a.heapNodes[0]
	a.heapSize--

	if a.heapSize > 0 {
		a.heapNodes[0] = a.heapNodes[a.heapSize]
		a.heapPriorities[0] = a.heapPriorities[a.heapSize]

		i := 0
		for {
			left := (i << 1) + 1
			right := left + 1
			smallest := i

			if left < a.heapSize && a.heapPriorities[left] < a.heapPriorities[smallest] {
				smallest = left
			}
			if right < a.heapSize && a.heapPriorities[right] < a.heapPriorities[smallest] {
				smallest = right
			}
			if smallest == i {
				break
			}
			a.heapNodes[smallest], a.heapNodes[i] = a.heapNodes[i], a.heapNodes[smallest]
			a.heapPriorities[smallest], a.heapPriorities[i] = a.heapPriorities[i], a.heapPriorities[smallest]
			i = smallest
		}
	}

	return result
}
