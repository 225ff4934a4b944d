package voxel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/voxpath/voxel"
)

// BenchmarkNeighbors measures neighbor enumeration on a 64×64×8 grid with
// roughly 20% walls.
// Complexity: O(26) per call.
func BenchmarkNeighbors(b *testing.B) {
	const n, depth = 64, 8
	g, err := voxel.NewGrid(n, n, depth)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for info := range g.Cells() {
		if rng.Intn(5) == 0 {
			_ = g.ToggleWall(info.Coord)
		}
	}
	coords := make([]voxel.Coord, 0, g.Len())
	for info := range g.Cells() {
		coords = append(coords, info.Coord)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(coords[i%len(coords)])
	}
}

// BenchmarkReset measures a full search-state reset on a 128×128×4 grid.
// Complexity: O(x·y·z).
func BenchmarkReset(b *testing.B) {
	g, err := voxel.NewGrid(128, 128, 4, voxel.WithGoal(voxel.C(127, 127, 3)))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset(false)
	}
}

// BenchmarkResize alternates between two extents inside the same capacity.
func BenchmarkResize(b *testing.B) {
	g, err := voxel.NewGrid(64, 64, 4)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = g.Resize(32, 32, 2)
		} else {
			_ = g.Resize(64, 64, 4)
		}
	}
}
