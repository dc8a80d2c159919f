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

func TestIterate(t *testing.T) {
	s := mseq.Iterate(func(x int) cont.Eff[int] {
		return cont.Pure(x + 1)
	}, 0)
	got := runEff(mseq.ToSlice(mseq.Take(5, s)))
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestIterateRunsOneStepPerPull(t *testing.T) {
	calls := 0
	s := mseq.Iterate(func(x int) cont.Eff[int] {
		calls++
		return cont.Pure(x + 1)
	}, 0)
	require.Zero(t, calls, "Iterate construction must run nothing")

	tl, err := s.Tail()
	require.NoError(t, err)
	require.Zero(t, calls, "Tail returns the effect without running it")

	next := runEff(tl)
	require.Equal(t, 1, calls)
	h, err := next.Head()
	require.NoError(t, err)
	require.Equal(t, 1, h)
}

func TestIterateRestartable(t *testing.T) {
	f := func(x int) cont.Eff[int] { return cont.Pure(x * 2) }
	first := runEff(mseq.ToSlice(mseq.Take(4, mseq.Iterate(f, 1))))
	second := runEff(mseq.ToSlice(mseq.Take(4, mseq.Iterate(f, 1))))
	require.Equal(t, first, second)
}

func TestRepeatRerunsEffectPerElement(t *testing.T) {
	n := 0
	item := cont.Suspend[cont.Resumed](func(k func(int) cont.Resumed) cont.Resumed {
		n++
		return k(n)
	})
	s := runEff(mseq.Repeat(item))
	got := runEff(mseq.ToSlice(mseq.Take(3, s)))
	require.Equal(t, []int{1, 2, 3}, got, "each element re-runs the item effect")
}

func TestReplicate(t *testing.T) {
	runs := 0
	item := cont.Suspend[cont.Resumed](func(k func(string) cont.Resumed) cont.Resumed {
		runs++
		return k("x")
	})
	s := runEff(mseq.Replicate(3, item))
	got := runEff(mseq.ToSlice(s))
	require.Equal(t, []string{"x", "x", "x"}, got)
	require.Equal(t, 3, runs)
}

func TestReplicateNonPositive(t *testing.T) {
	item := cont.Suspend[cont.Resumed](func(k func(int) cont.Resumed) cont.Resumed {
		t.Fatal("item effect ran for n <= 0")
		return k(0)
	})
	require.True(t, runEff(mseq.Replicate(0, item)).IsEmpty())
	require.True(t, runEff(mseq.Replicate(-1, item)).IsEmpty())
}

func TestCycle(t *testing.T) {
	s, err := mseq.Cycle(mseq.FromSlice[cont.Resumed]([]int{1, 2, 3}))
	require.NoError(t, err)
	got := runEff(mseq.ToSlice(mseq.Take(7, s)))
	require.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)
}

func TestCycleSingleton(t *testing.T) {
	s, err := mseq.Cycle(mseq.FromSlice[cont.Resumed]([]int{9}))
	require.NoError(t, err)
	got := runEff(mseq.ToSlice(mseq.Take(3, s)))
	require.Equal(t, []int{9, 9, 9}, got)
}
