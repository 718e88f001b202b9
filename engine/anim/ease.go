package anim

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float32) float32

func Linear(t float32) float32 { return t }

func InQuad(t float32) float32  { return t * t }
func OutQuad(t float32) float32 { return t * (2 - t) }

func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func OutCubic(t float32) float32 {
	t--
	return t*t*t + 1
}
