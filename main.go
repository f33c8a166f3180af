package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/df07/go-distant-sensor/pkg/core"
	"github.com/df07/go-distant-sensor/pkg/geometry"
	"github.com/df07/go-distant-sensor/pkg/scene"
	"github.com/df07/go-distant-sensor/pkg/sensor"
)

// estimateProjectedArea samples rays from a default-strategy distant sensor
// looking along direction and intersects them against the scene. The disk
// cross-section area times the hit fraction converges to the scene's
// projected area along that direction.
func estimateProjectedArea(sc *scene.Scene, direction core.Vec3, samples int, seed int64) (int, float64, error) {
	dist, err := sensor.NewDistant(sensor.Options{Direction: &direction})
	if err != nil {
		return 0, 0, err
	}
	dist.Bind(sc)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	hits := 0
	for i := 0; i < samples; i++ {
		result := dist.SampleRay(0, sampler.Get1D(), sampler.Get2D())
		if !result.Valid {
			continue
		}
		for _, shape := range sc.Shapes {
			if _, ok := shape.Hit(result.Ray, core.RayEpsilon, math.Inf(1)); ok {
				hits++
				break
			}
		}
	}

	radius := dist.BoundingSphere().Radius
	diskArea := math.Pi * radius * radius
	return hits, diskArea * float64(hits) / float64(samples), nil
}

func main() {
	// Parse command line flags
	dirX := flag.Float64("dx", 0, "X component of the sensing direction")
	dirY := flag.Float64("dy", 0, "Y component of the sensing direction")
	dirZ := flag.Float64("dz", -1, "Z component of the sensing direction")
	samples := flag.Int("samples", 100000, "Number of rays to sample")
	seed := flag.Int64("seed", 42, "Random seed")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Distant sensor demo")
		fmt.Println("Estimates the projected area of a small scene as seen from a direction,")
		fmt.Println("by sampling rays from a distant directional sensor and intersecting them")
		fmt.Println("against the scene geometry.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	// A unit sphere next to a 2x2 quad
	sc := scene.NewScene(
		geometry.NewSphere(core.NewVec3(-2.5, 0, 0), 1.0),
		geometry.NewQuad(core.NewVec3(0.5, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)),
	)

	direction := core.NewVec3(*dirX, *dirY, *dirZ)
	hits, area, err := estimateProjectedArea(sc, direction, *samples, *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Direction:      %v\n", direction.Normalize())
	fmt.Printf("Samples:        %d\n", *samples)
	fmt.Printf("Scene hits:     %d (%.2f%%)\n", hits, 100*float64(hits)/float64(*samples))
	fmt.Printf("Projected area: %.4f\n", area)
}
