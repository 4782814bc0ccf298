package catalog

import "math"

// SeededRandom maps an integer seed to a value in [0,1). It is a pure
// function, so the same seed yields the same value on every run. All
// price variance and availability draws go through it so that a
// product's offers are reproducible from its id alone.
func SeededRandom(seed int) float64 {
	x := math.Sin(float64(seed)*9301+49297) * 49297
	return x - math.Floor(x)
}
