package mathutil

// Number is the set of component types a Vec2 can carry.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Vec2 is a 2-component vector. Vec2[int] holds pixel (cell) coordinates,
// Vec2[float64] holds continuous ones.
type Vec2[T Number] struct {
	X, Y T
}

func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}
