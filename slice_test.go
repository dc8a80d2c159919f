// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mseq"
	"code.hybscloud.com/mseq/cont"
)

func TestTake(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3, 4, 5})
	require.Equal(t, []int{1, 2, 3}, runEff(mseq.ToSlice(mseq.Take(3, s))))
}

func TestTakeMoreThanAvailable(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2})
	require.Equal(t, []int{1, 2}, runEff(mseq.ToSlice(mseq.Take(10, s))))
}

func TestTakeNonPositiveTouchesNothing(t *testing.T) {
	steps := 0
	s := counted(&steps, []int{1, 2, 3})
	require.True(t, mseq.Take(0, s).IsEmpty())
	require.True(t, mseq.Take(-5, s).IsEmpty())
	require.Zero(t, steps)
}

func TestTakeForcesExactlyEnough(t *testing.T) {
	steps := 0
	s := counted(&steps, []int{1, 2, 3, 4, 5})
	got := runEff(mseq.ToSlice(mseq.Take(3, s)))
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, 2, steps, "three heads need two advances")
}

func TestTakeWhile(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3, 4, 1})
	below := runEff(mseq.TakeWhile(func(x int) cont.Eff[bool] {
		return cont.Pure(x < 3)
	}, s))
	require.Equal(t, []int{1, 2}, runEff(mseq.ToSlice(below)))
}

func TestTakeWhileOnInfinite(t *testing.T) {
	s := mseq.Iterate(func(x int) cont.Eff[int] { return cont.Pure(x + 1) }, 0)
	below := runEff(mseq.TakeWhile(func(x int) cont.Eff[bool] {
		return cont.Pure(x < 4)
	}, s))
	require.Equal(t, []int{0, 1, 2, 3}, runEff(mseq.ToSlice(below)))
}

func TestDrop(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3, 4, 5})
	rest := runEff(mseq.Drop(2, s))
	require.Equal(t, []int{3, 4, 5}, runEff(mseq.ToSlice(rest)))
}

func TestDropNonPositiveReturnsUnchanged(t *testing.T) {
	steps := 0
	s := counted(&steps, []int{1, 2, 3})
	rest := runEff(mseq.Drop(0, s))
	require.Zero(t, steps, "Drop(0) must not run anything")
	h, err := rest.Head()
	require.NoError(t, err)
	require.Equal(t, 1, h)
}

func TestDropRunsSkippedEffects(t *testing.T) {
	steps := 0
	s := counted(&steps, []int{1, 2, 3, 4})
	rest := runEff(mseq.Drop(2, s))
	require.Equal(t, 2, steps, "each skipped element's effect still runs")
	h, err := rest.Head()
	require.NoError(t, err)
	require.Equal(t, 3, h)
}

func TestDropPastEnd(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2})
	rest := runEff(mseq.Drop(10, s))
	require.True(t, rest.IsEmpty())
}

func TestDropWhile(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3, 1})
	rest := runEff(mseq.DropWhile(func(x int) cont.Eff[bool] {
		return cont.Pure(x < 3)
	}, s))
	require.Equal(t, []int{3, 1}, runEff(mseq.ToSlice(rest)))
}

func TestDropWhileAll(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2})
	rest := runEff(mseq.DropWhile(func(int) cont.Eff[bool] {
		return cont.Pure(true)
	}, s))
	require.True(t, rest.IsEmpty())
}

// take(n, s) ++ drop(n, s) reconstructs s for finite s and n >= 0.
func TestTakeDropComplementarity(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	for n := 0; n <= len(items)+1; n++ {
		s := mseq.FromSlice[cont.Resumed](items)
		taken := runEff(mseq.ToSlice(mseq.Take(n, s)))
		rest := runEff(cont.Bind(mseq.Drop(n, s), mseq.ToSlice[cont.Resumed, int]))
		joined := append(append([]int(nil), taken...), rest...)
		require.Equal(t, items, joined, "n=%d", n)
	}
}
