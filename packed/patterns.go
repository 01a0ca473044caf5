package packed

// Splat returns a vector with every lane set to x.
func Splat[T Scalar](x T) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = x
	}
	return v
}

// Zeroes returns a vector with every lane set to 0.
func Zeroes[T Scalar]() Vec[T] {
	return Vec[T]{}
}

// Ones returns a vector with every lane set to 1.
func Ones[T Scalar]() Vec[T] {
	return Splat(T(1))
}

// Halfs returns a vector whose lower half is a and upper half is b.
func Halfs[T Scalar](a, b T) Vec[T] {
	return Partition(a, b, MaxLanes[T]()/2)
}

// Interleave returns a vector whose even lanes are a and odd lanes are b.
func Interleave[T Scalar](a, b T) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		if i%2 == 0 {
			lanes[i] = a
		} else {
			lanes[i] = b
		}
	}
	return v
}

// Partition returns a vector whose first offset lanes are a and the rest b.
// It panics if offset is outside [0, MaxLanes[T]()].
func Partition[T Scalar](a, b T, offset int) Vec[T] {
	checkOffset("Partition", offset, MaxLanes[T]())
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		if i < offset {
			lanes[i] = a
		} else {
			lanes[i] = b
		}
	}
	return v
}

// FromLanes builds a vector from up to MaxLanes[T]() values; missing lanes
// are zero.
func FromLanes[T Scalar](xs ...T) Vec[T] {
	if len(xs) > MaxLanes[T]() {
		fail("FromLanes", ErrWidthMismatch, "%d values for %d lanes", len(xs), MaxLanes[T]())
	}
	var v Vec[T]
	copy(v.lanes(), xs)
	return v
}

// Iota returns a vector with lane i set to start+i.
func Iota[T Scalar](start T) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = start + T(i)
	}
	return v
}

func checkOffset(op string, offset, n int) {
	if offset < 0 || offset > n {
		fail(op, ErrPartitionOffset, "offset %d, lanes %d", offset, n)
	}
}
