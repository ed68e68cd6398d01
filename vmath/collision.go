package vmath

// Side identifies which face of box A was struck by box B.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns the name of the side for debugging
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// CollideAABB tests overlap between two axis-aligned boxes given by center
// position and full size. It returns the side of box A that box B entered
// through, chosen by minimum penetration depth, or SideNone when the boxes
// do not overlap.
//
// Discrete post-move test: a box that fully crosses A within one step is
// not detected (no swept test).
func CollideAABB(ax, ay, aw, ah, bx, by, bw, bh float64) Side {
	// Penetration on each axis; <= 0 means separated
	overlapX := (aw+bw)/2 - abs(bx-ax)
	overlapY := (ah+bh)/2 - abs(by-ay)
	if overlapX <= 0 || overlapY <= 0 {
		return SideNone
	}

	if overlapX < overlapY {
		if bx < ax {
			return SideLeft
		}
		return SideRight
	}
	if by < ay {
		return SideTop
	}
	return SideBottom
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
