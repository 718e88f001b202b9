package renderer2d

// ScreenProjection maps framebuffer pixels (top-left origin, Y down) to clip
// space.
func ScreenProjection(w, h int) [16]float32 {
	return ortho(0, float32(max(w, 1)), float32(max(h, 1)), 0, -1, 1)
}

// Column-major, GLSL-style.
func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// Apply transforms a point by a column-major matrix.
func Apply(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}
