package terrain_test

import (
	"fmt"

	"github.com/openfrontio/tilepath/terrain"
)

// ExampleGrid demonstrates wrapping a small terrain buffer and reading
// the bit-encoded fields back out for one tile.
func ExampleGrid() {
	buf := []byte{
		terrain.EncodeWater(false, 12), terrain.EncodeWater(true, 1),
		terrain.EncodeLand(true), terrain.EncodeLand(false),
	}
	g, _ := terrain.NewGrid(buf, 2, 2)

	id := g.ID(1, 0)
	fmt.Println("water:", g.IsWater(id), "shoreline:", g.IsShoreline(id), "magnitude:", g.Magnitude(id))
	// Output:
	// water: true shoreline: true magnitude: 1
}
