package packed

// Lane-wise arithmetic. These are the plain per-lane form of the pattern the
// transform primitives follow; the compiler vectorizes what it can.

// Add returns a + b lane by lane. Integer lanes wrap.
func Add[T Scalar](a, b Vec[T]) Vec[T] {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		x[i] += y[i]
	}
	return a
}

// Sub returns a - b lane by lane. Integer lanes wrap.
func Sub[T Scalar](a, b Vec[T]) Vec[T] {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		x[i] -= y[i]
	}
	return a
}

// Mul returns a * b lane by lane. Integer lanes wrap.
func Mul[T Scalar](a, b Vec[T]) Vec[T] {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		x[i] *= y[i]
	}
	return a
}

// Min returns the lane-wise minimum. A lane of a is kept unless the matching
// lane of b is strictly less, so NaN in a propagates.
func Min[T Scalar](a, b Vec[T]) Vec[T] {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		if y[i] < x[i] {
			x[i] = y[i]
		}
	}
	return a
}

// Max returns the lane-wise maximum, with the same NaN rule as Min.
func Max[T Scalar](a, b Vec[T]) Vec[T] {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		if y[i] > x[i] {
			x[i] = y[i]
		}
	}
	return a
}

// Abs returns the lane-wise absolute value. Float lanes have their sign bit
// cleared; the most negative integer stays negative.
func Abs[T Scalar](v Vec[T]) Vec[T] {
	x := v.lanes()
	if isFloat[T]() {
		sign := uint64(1) << (8*SizeOf[T]() - 1)
		for i := range x {
			x[i] = fromBits[T](toBits(x[i]) &^ sign)
		}
		return v
	}
	for i := range x {
		if x[i] < 0 {
			x[i] = -x[i]
		}
	}
	return v
}
