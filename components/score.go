package components

// Score is the point counter attached to each paddle entity.
// It only decreases on an explicit match reset.
type Score struct {
	Points int
}

// ScoreText is the display model maintained by the score display system.
// The renderer draws it top-center as "left : right".
type ScoreText struct {
	Left, Right int
}
