package seam_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/optima/seam"
)

func BenchmarkMinPath_512x512(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	grid := make([][]float64, 512)
	for i := range grid {
		grid[i] = make([]float64, 512)
		for j := range grid[i] {
			grid[i][j] = rng.Float64() * 100
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := seam.MinPath(grid); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnergyRGB_256x256(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	pix := make([][][3]uint8, 256)
	for i := range pix {
		pix[i] = make([][3]uint8, 256)
		for j := range pix[i] {
			pix[i][j] = [3]uint8{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seam.EnergyRGB(pix)
	}
}
