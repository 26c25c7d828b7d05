package mandel

import (
	"fmt"
	"slices"
	"strings"
)

// Classic regions / landmarks in the Mandelbrot set.
var (
	// FullSet shows the whole set.
	FullSet = Viewport{XMin: -2.5, XMax: 1, YMin: -1.25, YMax: 1.25}

	// SeahorseValley has dense filaments and repeating "seahorse" curls.
	SeahorseValley = Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// ElephantValley has a large bulb with trunk-like tendrils.
	ElephantValley = Viewport{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// SpiralMinibrot is a small copy of the set with tight spiral arms.
	SpiralMinibrot = Viewport{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// TripleSpiral is a threefold symmetric spiral.
	TripleSpiral = Viewport{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}

	// ValleyOfTheDragon has deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Viewport{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}

	// MinibrotInMiniSpiral is a copy of the set inside a spiral arm.
	MinibrotInMiniSpiral = Viewport{XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220}
)

var regions = map[string]Viewport{
	"full":          FullSet,
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"spiral":        SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// RegionByName returns a named landmark viewport.
func RegionByName(name string) (Viewport, error) {
	v, ok := regions[strings.ToLower(name)]
	if !ok {
		return Viewport{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownRegion, name,
			strings.Join(RegionNames(), ", "))
	}
	return v, nil
}

// RegionNames returns the names accepted by RegionByName, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
