package quantize

import (
	"math"
	"math/rand"
	"slices"

	"github.com/jmylchreest/tonal/internal/hct"
)

// point is a unique input colour in L*a*b* with its pixel count.
type point struct {
	lab    [3]float64
	weight float64
	count  int
}

func (p point) distanceSq(c [3]float64) float64 {
	dl := p.lab[0] - c[0]
	da := p.lab[1] - c[1]
	db := p.lab[2] - c[2]
	return dl*dl + da*da + db*db
}

// kmeans is a weighted k-means over unique colours. Each unique colour counts
// as many times as it appears, without being repeated in memory.
type kmeans struct {
	k             int
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

func newKMeans(cfg Config) *kmeans {
	return &kmeans{
		k:             cfg.MaxColors,
		maxIterations: cfg.MaxIterations,
		convergence:   cfg.Convergence,
		rng:           rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- reproducible clustering, not security
	}
}

func (km *kmeans) run(counts map[uint32]int) *Result {
	// Map iteration order is random; sort so a given seed always sees the same input.
	argbs := make([]uint32, 0, len(counts))
	for argb := range counts {
		argbs = append(argbs, argb)
	}
	slices.Sort(argbs)

	points := make([]point, len(argbs))
	for i, argb := range argbs {
		points[i] = point{lab: hct.LabFromArgb(argb), weight: float64(counts[argb]), count: counts[argb]}
	}

	centroids := km.initializeCentroids(points)
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	totalWeight := 0.0
	for _, p := range points {
		totalWeight += p.weight
	}

	for iter := 0; iter < km.maxIterations; iter++ {
		changed := 0.0
		for i, p := range points {
			nearest := findNearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed += p.weight
			}
		}

		if changed/totalWeight < 0.01 {
			break
		}

		next := km.recalculateCentroids(points, assignments, len(centroids))
		movement := 0.0
		for i := range centroids {
			movement += math.Sqrt(point{lab: centroids[i]}.distanceSq(next[i]))
		}
		centroids = next

		if movement/float64(len(centroids)) < km.convergence {
			break
		}
	}

	populations := make(map[uint32]int, len(centroids))
	for i, p := range points {
		if assignments[i] < 0 {
			continue
		}
		c := centroids[assignments[i]]
		populations[hct.ArgbFromLab(c[0], c[1], c[2])] += p.count
	}
	return &Result{Populations: populations}
}

// initializeCentroids picks starting centroids with weighted k-means++.
func (km *kmeans) initializeCentroids(points []point) [][3]float64 {
	k := min(km.k, len(points))
	centroids := make([][3]float64, 0, k)

	weights := make([]float64, len(points))
	for i, p := range points {
		weights[i] = p.weight
	}
	centroids = append(centroids, points[km.pick(weights)].lab)

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				minDist = min(minDist, p.distanceSq(c))
			}
			distances[i] = minDist * p.weight
			total += distances[i]
		}
		if total == 0 {
			break
		}
		centroids = append(centroids, points[km.pick(distances)].lab)
	}
	return centroids
}

// pick draws an index with probability proportional to its weight.
func (km *kmeans) pick(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := km.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if w > 0 && cumulative >= target {
			return i
		}
	}
	return len(weights) - 1
}

func findNearestCentroid(p point, centroids [][3]float64) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distanceSq(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func (km *kmeans) recalculateCentroids(points []point, assignments []int, k int) [][3]float64 {
	sums := make([][3]float64, k)
	weights := make([]float64, k)
	for i, p := range points {
		c := assignments[i]
		sums[c][0] += p.lab[0] * p.weight
		sums[c][1] += p.lab[1] * p.weight
		sums[c][2] += p.lab[2] * p.weight
		weights[c] += p.weight
	}

	centroids := make([][3]float64, k)
	for i := range k {
		if weights[i] > 0 {
			centroids[i] = [3]float64{sums[i][0] / weights[i], sums[i][1] / weights[i], sums[i][2] / weights[i]}
			continue
		}
		// Empty cluster: restart it on a random input colour.
		centroids[i] = points[km.rng.Intn(len(points))].lab
	}
	return centroids
}
