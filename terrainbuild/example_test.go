package terrainbuild_test

import (
	"fmt"

	"github.com/openfrontio/tilepath/terrain"
	"github.com/openfrontio/tilepath/terrainbuild"
)

// ExampleBuildTerrain builds a tiny coastline: two land columns, then open
// water, and prints the shoreline flag and magnitude class of every tile.
func ExampleBuildTerrain() {
	land := [][]bool{
		{true, true, false, false, false},
	}

	buf, w, h, err := terrainbuild.BuildTerrain(land)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g, err := terrain.NewGrid(buf, w, h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for x := 0; x < w; x++ {
		b := g.At(g.ID(x, 0))
		fmt.Printf("x=%d land=%t shoreline=%t magnitude=%d\n", x, terrain.IsLand(b), terrain.IsShoreline(b), terrain.Magnitude(b))
	}

	_ = h
	// Output:
	// x=0 land=true shoreline=false magnitude=0
	// x=1 land=true shoreline=true magnitude=0
	// x=2 land=false shoreline=true magnitude=0
	// x=3 land=false shoreline=false magnitude=1
	// x=4 land=false shoreline=false magnitude=2
}
