package packed

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// Word-level helpers for the accelerated bodies. A register image is handled
// as registerWords 64-bit words; after laneOrder, lane k of a word sits in
// bits [8*size*k, 8*size*(k+1)) regardless of host byte order.

// laneOrder converts a word between memory order and lane order. It is its
// own inverse.
func laneOrder(w uint64) uint64 {
	if cpu.IsBigEndian {
		return bits.ReverseBytes64(w)
	}
	return w
}

func (v *Vec[T]) word(i int) uint64 {
	return laneOrder(v.w[i])
}

func (v *Vec[T]) setWord(i int, w uint64) {
	v.w[i] = laneOrder(w)
}

// evenLaneMask selects the even lanes of a lane-ordered word.
func evenLaneMask(size int) uint64 {
	switch size {
	case 1:
		return 0x00FF00FF00FF00FF
	case 2:
		return 0x0000FFFF0000FFFF
	default:
		return 0x00000000FFFFFFFF
	}
}

// packEven gathers the even lanes of w into its low 32 bits.
func packEven(w uint64, size int) uint64 {
	switch size {
	case 1:
		w &= 0x00FF00FF00FF00FF
		w = (w | w>>8) & 0x0000FFFF0000FFFF
		return (w | w>>16) & 0x00000000FFFFFFFF
	case 2:
		w &= 0x0000FFFF0000FFFF
		return (w | w>>16) & 0x00000000FFFFFFFF
	default:
		return w & 0x00000000FFFFFFFF
	}
}

// spread is the inverse of packEven: the lanes in the low 32 bits of x move
// to the even lane slots, and the odd slots are zero.
func spread(x uint64, size int) uint64 {
	x &= 0x00000000FFFFFFFF
	switch size {
	case 1:
		x = (x | x<<16) & 0x0000FFFF0000FFFF
		return (x | x<<8) & 0x00FF00FF00FF00FF
	case 2:
		return (x | x<<16) & 0x0000FFFF0000FFFF
	default:
		return x
	}
}

// signExtend copies the sign bit of each size-byte value held in the low half
// of a 2*size slot into the high half of that slot.
func signExtend(x uint64, size int) uint64 {
	var lsb, fill uint64
	switch size {
	case 1:
		lsb, fill = 0x0001000100010001, 0xFF00
	case 2:
		lsb, fill = 0x0000000100000001, 0xFFFF0000
	default:
		lsb, fill = 0x0000000000000001, 0xFFFFFFFF00000000
	}
	signs := (x >> (8*size - 1)) & lsb
	return x | signs*fill
}

// swapWord reverses the bytes inside every size-byte group of w.
func swapWord(w uint64, size int) uint64 {
	switch size {
	case 1:
		return w
	case 2:
		const m = 0x00FF00FF00FF00FF
		return (w>>8)&m | (w&m)<<8
	case 4:
		return bits.RotateLeft64(bits.ReverseBytes64(w), 32)
	default:
		return bits.ReverseBytes64(w)
	}
}

// swapBits reverses the low size bytes of u.
func swapBits(u uint64, size int) uint64 {
	switch size {
	case 1:
		return u
	case 2:
		return uint64(bits.ReverseBytes16(uint16(u)))
	case 4:
		return uint64(bits.ReverseBytes32(uint32(u)))
	default:
		return bits.ReverseBytes64(u)
	}
}
