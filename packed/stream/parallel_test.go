package stream

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-packed/packed"
)

// The engine has no parallelism of its own. Callers split buffers into
// chunks and run an independent pipeline per chunk; the results must match a
// single serial pipeline.

func scale(v packed.Vec[float32]) packed.Vec[float32] {
	return packed.Mul(v, packed.Splat[float32](0.5))
}

func TestParallelChunksMatchSerial(t *testing.T) {
	const size = 10_007
	data := make([]float32, size)
	for i := range data {
		data[i] = float32(math.Sin(float64(i)))
	}

	serial := make([]float32, size)
	Fill(Map(New(data, packed.Zeroes[float32]()), scale), serial)

	for _, chunk := range []int{packed.MaxLanes[float32]() * 64, 1000, 333} {
		parallel := make([]float32, size)
		var g errgroup.Group
		g.SetLimit(4)
		for lo := 0; lo < size; lo += chunk {
			hi := min(lo+chunk, size)
			g.Go(func() error {
				Fill(Map(New(data[lo:hi], packed.Zeroes[float32]()), scale), parallel[lo:hi])
				return nil
			})
		}
		require.NoError(t, g.Wait())
		if diff := cmp.Diff(serial, parallel); diff != "" {
			t.Errorf("chunk %d: parallel result differs (-serial +parallel):\n%s", chunk, diff)
		}
	}
}

func TestParallelReduce(t *testing.T) {
	const size = 4099
	data := seq[int64](size)
	sum := func(chunk []int64) int64 {
		acc := Reduce(New(chunk, packed.Zeroes[int64]()), packed.Zeroes[int64](), packed.Add[int64])
		return packed.Sum(acc)
	}

	parts := make([]int64, 8)
	step := (size + len(parts) - 1) / len(parts)
	var g errgroup.Group
	for i := range parts {
		lo, hi := min(i*step, size), min((i+1)*step, size)
		g.Go(func() error {
			parts[i] = sum(data[lo:hi])
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var total int64
	for _, p := range parts {
		total += p
	}
	require.Equal(t, sum(data), total)
	require.Equal(t, int64(size*(size+1)/2), total)
}
