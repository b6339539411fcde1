package terrainbuild

import "github.com/openfrontio/tilepath/terrain"

// neighborOffsets is the 4-connected adjacency both the shoreline scan and
// the magnitude BFS walk, declared once at package level and shared by
// every call.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// BuildTerrain converts a rectangular land/water grid (land[y][x] == true
// means land) into a terrain.Grid-ready byte buffer: each tile's LAND bit
// mirrors the input, its SHORELINE bit is set when a 4-connected neighbor
// is of the opposite kind, and each water tile's MAGNITUDE is its BFS
// distance from the nearest shoreline-water tile (clamped to
// terrain.MaxMagnitude). Land tiles carry magnitude 0.
//
// Returns ErrEmptyGrid if land has no rows or columns, ErrNonRectangular
// if any row's length differs from the first.
func BuildTerrain(land [][]bool) ([]byte, int, int, error) {
	if len(land) == 0 || len(land[0]) == 0 {
		return nil, 0, 0, ErrEmptyGrid
	}
	height := len(land)
	width := len(land[0])
	for _, row := range land {
		if len(row) != width {
			return nil, 0, 0, ErrNonRectangular
		}
	}

	shoreline := computeShoreline(land, width, height)
	magnitude := computeMagnitude(land, shoreline, width, height)

	buf := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if land[y][x] {
				buf[idx] = terrain.EncodeLand(shoreline[idx])
			} else {
				buf[idx] = terrain.EncodeWater(shoreline[idx], int(magnitude[idx]))
			}
		}
	}
	return buf, width, height, nil
}

// computeShoreline marks every tile that has a 4-connected neighbor of the
// opposite land/water kind, the same single-pass neighbor scan
// gridgraph.ConnectedComponents uses to compare a cell against its
// neighbors, here comparing "is land" instead of "is the same value".
func computeShoreline(land [][]bool, width, height int) []bool {
	shoreline := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isLand := land[y][x]
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if land[ny][nx] != isLand {
					shoreline[y*width+x] = true
					break
				}
			}
		}
	}
	return shoreline
}

// computeMagnitude runs a multi-source BFS seeded from every shoreline
// water tile at once, the level-by-level queue technique
// gridgraph.ExpandIsland uses for its 0-1 BFS, specialized here to a
// uniform step cost of 1 (a plain BFS rather than a deque-based 0-1 BFS,
// since every hop has the same cost). Unreached water (no shoreline
// anywhere on the map) keeps magnitude 0; reached water is clamped to
// terrain.MaxMagnitude.
func computeMagnitude(land [][]bool, shoreline []bool, width, height int) []byte {
	n := width * height
	magnitude := make([]byte, n)
	visited := make([]bool, n)
	queue := make([]int, 0, n)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if !land[y][x] && shoreline[idx] {
				visited[idx] = true
				queue = append(queue, idx)
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		x, y := idx%width, idx/width
		dist := int(magnitude[idx])

		for _, d := range neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			nIdx := ny*width + nx
			if visited[nIdx] || land[ny][nx] {
				continue
			}
			visited[nIdx] = true
			nd := dist + 1
			if nd > terrain.MaxMagnitude {
				nd = terrain.MaxMagnitude
			}
			magnitude[nIdx] = byte(nd)
			queue = append(queue, nIdx)
		}
	}

	return magnitude
}
