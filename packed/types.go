package packed

import (
	"fmt"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalar is a constraint for all types that can be stored in vector lanes.
type Scalar interface {
	Floats | Integers
}

// registerWords is the number of 64-bit words in one register image.
const registerWords = RegisterBytes / 8

// Vec is a fixed-width vector of T lanes.
//
// It is a value type: copying a Vec copies its lanes, and no operation in
// this package mutates a Vec passed to it. The zero value has every lane set
// to zero.
type Vec[T Scalar] struct {
	// w is the register image. Lane i occupies bytes
	// [i*SizeOf[T](), (i+1)*SizeOf[T]()) in memory order.
	w [registerWords]uint64
}

// SizeOf returns the size in bytes of one T lane.
func SizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxLanes returns the number of T lanes in a vector for the compiled tier.
//
// For example, with the avx2 tier (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - uint8:   32/1 = 32 lanes
func MaxLanes[T Scalar]() int {
	return RegisterBytes / SizeOf[T]()
}

// NumLanes returns the number of lanes in v.
func (v Vec[T]) NumLanes() int {
	return MaxLanes[T]()
}

// Lanes returns a copy of the lanes of v.
func (v Vec[T]) Lanes() []T {
	out := make([]T, MaxLanes[T]())
	copy(out, v.lanes())
	return out
}

// String formats the lanes of v like a slice.
func (v Vec[T]) String() string {
	return fmt.Sprint(v.lanes())
}

// lanes views the register image of v as a slice of T.
// The slice aliases v, so it must only be used on a local copy.
func (v *Vec[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.w[0])), MaxLanes[T]())
}

// BitsEqual reports whether a and b have identical register images.
// Unlike comparing lanes with ==, NaN lanes compare equal to themselves and
// -0 differs from +0.
func BitsEqual[T Scalar](a, b Vec[T]) bool {
	return a.w == b.w
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Scalar]() bool {
	half := T(1) / 2
	return half != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// toBits returns the raw bits of x, zero-extended to 64 bits.
func toBits[T Scalar](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch SizeOf[T]() {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

// fromBits builds a T from the low SizeOf[T]() bytes of u.
func fromBits[T Scalar](u uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch SizeOf[T]() {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return x
}
