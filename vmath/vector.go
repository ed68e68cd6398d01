package vmath

import "math"

// Magnitude returns vector length sqrt(x² + y²)
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Normalize returns the unit vector, zero-safe
func Normalize(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Scale multiplies vector by scalar factor
func Scale(x, y, factor float64) (sx, sy float64) {
	return x * factor, y * factor
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Magnitude(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
// Use for left/right edge collision
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
// Use for top/bottom edge collision
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}
