package terrain_test

import (
	"testing"

	"github.com/openfrontio/tilepath/terrain"
)

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		buf           []byte
		width, height int
		err           error
	}{
		{"ZeroWidth", []byte{1}, 0, 1, terrain.ErrBadDimensions},
		{"ZeroHeight", []byte{1}, 1, 0, terrain.ErrBadDimensions},
		{"EmptyBuffer", nil, 2, 2, terrain.ErrEmptyBuffer},
		{"SizeMismatch", []byte{1, 2, 3}, 2, 2, terrain.ErrSizeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.NewGrid(tc.buf, tc.width, tc.height)
			if err != tc.err {
				t.Fatalf("NewGrid(%v, %d, %d) error = %v; want %v", tc.buf, tc.width, tc.height, err, tc.err)
			}
		})
	}
}

func TestGrid_IDRoundTrip(t *testing.T) {
	buf := make([]byte, 12)
	g, err := terrain.NewGrid(buf, 4, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			id := g.ID(x, y)
			gotX, gotY := g.XY(id)
			if gotX != x || gotY != y {
				t.Errorf("XY(ID(%d,%d)) = (%d,%d); want (%d,%d)", x, y, gotX, gotY, x, y)
			}
		}
	}
}

func TestPredicates(t *testing.T) {
	land := terrain.EncodeLand(false)
	shoreLand := terrain.EncodeLand(true)
	water := terrain.EncodeWater(false, 7)
	shoreWater := terrain.EncodeWater(true, 2)

	if !terrain.IsLand(land) || terrain.IsWater(land) {
		t.Errorf("EncodeLand(false) should be land, got byte %08b", land)
	}
	if !terrain.IsShoreline(shoreLand) {
		t.Errorf("EncodeLand(true) should be shoreline, got byte %08b", shoreLand)
	}
	if !terrain.IsWater(water) || terrain.IsLand(water) {
		t.Errorf("EncodeWater should be water, got byte %08b", water)
	}
	if terrain.Magnitude(water) != 7 {
		t.Errorf("Magnitude(water) = %d; want 7", terrain.Magnitude(water))
	}
	if !terrain.IsShoreline(shoreWater) {
		t.Errorf("EncodeWater(true, ...) should be shoreline, got byte %08b", shoreWater)
	}

	// Bit 5 is reserved and must never leak into any predicate.
	reservedSet := water | (1 << 5)
	if terrain.Magnitude(reservedSet) != terrain.Magnitude(water) {
		t.Errorf("reserved bit leaked into Magnitude: got %d want %d", terrain.Magnitude(reservedSet), terrain.Magnitude(water))
	}
	if terrain.IsShoreline(reservedSet) != terrain.IsShoreline(water) {
		t.Errorf("reserved bit leaked into IsShoreline")
	}
}

func TestMagnitudeClamping(t *testing.T) {
	if got := terrain.EncodeWater(false, 1000); terrain.Magnitude(got) != byte(terrain.MaxMagnitude) {
		t.Errorf("EncodeWater clamp high: got magnitude %d, want %d", terrain.Magnitude(got), terrain.MaxMagnitude)
	}
	if got := terrain.EncodeWater(false, -5); terrain.Magnitude(got) != 0 {
		t.Errorf("EncodeWater clamp low: got magnitude %d, want 0", terrain.Magnitude(got))
	}
}
