package navigator

// SwipeThreshold is the minimum horizontal travel, in pixels, for a swipe to navigate.
const SwipeThreshold = 50

// DirectionFromKey maps the arrow keys to a direction.
func DirectionFromKey(key string) (Direction, bool) {
	switch key {
	case "ArrowLeft":
		return Previous, true
	case "ArrowRight":
		return Next, true
	default:
		return 0, false
	}
}

// DirectionFromSwipe maps a touch gesture delta to a direction.
// A swipe right goes to the previous pattern, a swipe left to the next.
func DirectionFromSwipe(dx, dy float64) (Direction, bool) {
	if abs(dx) <= abs(dy) || abs(dx) <= SwipeThreshold {
		return 0, false
	}
	if dx > 0 {
		return Previous, true
	}
	return Next, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
