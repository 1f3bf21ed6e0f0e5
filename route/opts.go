package route

// Opts contains tunable parameters for path optimization and obstacle
// validation.
type Opts struct {
	// MergeThreshold is the per-axis proximity within which near-equal
	// coordinates collapse onto one representative value.
	MergeThreshold float64 `json:"mergeThreshold"`
	// ObstacleMargin grows obstacle rectangles before crossing tests,
	// keeping routes a minimum distance away from node boundaries.
	ObstacleMargin float64 `json:"obstacleMargin"`
}

// DefaultOpts is the default configuration for path optimization.
var DefaultOpts = Opts{
	MergeThreshold: 4,
	ObstacleMargin: 4,
}
