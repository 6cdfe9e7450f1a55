package field

// Pointer is the last-known pointer position, or absent once the pointer
// leaves the canvas. Only the input layer writes it; the field reads it
// once per particle per Step.
type Pointer struct {
	X, Y    float64
	Present bool
}

// PointerAt returns a present pointer at the given coordinates.
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// NoPointer returns the absent sentinel.
func NoPointer() Pointer {
	return Pointer{}
}
