package keyboard

// InCorner reports whether (x, y) lies within margin pixels of any corner of
// a width x height screen.
func InCorner(x, y, width, height, margin int) bool {
	if width <= 0 || height <= 0 {
		return x <= margin && y <= margin
	}
	nearLeft := x <= margin
	nearRight := x >= width-1-margin
	nearTop := y <= margin
	nearBottom := y >= height-1-margin
	return (nearLeft || nearRight) && (nearTop || nearBottom)
}
