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

func TestFoldLeftSum(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3, 4})
	got := runEff(mseq.FoldLeft(func(acc, x int) cont.Eff[int] {
		return cont.Pure(acc + x)
	}, 0, s))
	require.Equal(t, 10, got)
}

func TestFoldLeftOrder(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]string{"a", "b", "c"})
	got := runEff(mseq.FoldLeft(func(acc, x string) cont.Eff[string] {
		return cont.Pure(acc + x)
	}, "", s))
	require.Equal(t, "abc", got)
}

func TestFoldLeftEmpty(t *testing.T) {
	got := runEff(mseq.FoldLeft(func(acc, x int) cont.Eff[int] {
		return cont.Pure(acc + x)
	}, 42, mseq.Empty[cont.Resumed, int]()))
	require.Equal(t, 42, got)
}

func TestFoldRightOrder(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]string{"a", "b", "c"})
	got := runEff(mseq.FoldRight(func(x, acc string) cont.Eff[string] {
		return cont.Pure(x + acc)
	}, "", s))
	require.Equal(t, "abc", got)
}

func TestFoldRightAppliesBackward(t *testing.T) {
	var applied []int
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3})
	_ = runEff(mseq.FoldRight(func(x, acc int) cont.Eff[int] {
		applied = append(applied, x)
		return cont.Pure(acc)
	}, 0, s))
	require.Equal(t, []int{3, 2, 1}, applied)
}

func TestUnfoldScenario(t *testing.T) {
	s := runEff(mseq.Unfold(func(n int) cont.Eff[mseq.Option[mseq.Tuple2[int, int]]] {
		if n > 3 {
			return cont.Pure(mseq.None[mseq.Tuple2[int, int]]())
		}
		return cont.Pure(mseq.Some(mseq.Tuple2[int, int]{First: n, Second: n + 1}))
	}, 0))
	require.Equal(t, []int{0, 1, 2, 3}, runEff(mseq.ToSlice(s)))
}

func TestUnfoldStepsOnDemand(t *testing.T) {
	calls := 0
	step := func(n int) cont.Eff[mseq.Option[mseq.Tuple2[int, int]]] {
		calls++
		return cont.Pure(mseq.Some(mseq.Tuple2[int, int]{First: n, Second: n + 1}))
	}
	m := mseq.Unfold(step, 0)
	require.Zero(t, calls, "Unfold construction must run nothing")

	s := runEff(m)
	require.Equal(t, 1, calls, "resolving the first node runs one step")

	h, err := s.Head()
	require.NoError(t, err)
	require.Equal(t, 0, h)
	require.Equal(t, 1, calls)
}

func TestMapAccumScenario(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3})
	got := runEff(mseq.MapAccum(func(acc, x int) cont.Eff[mseq.Tuple2[int, int]] {
		return cont.Pure(mseq.Tuple2[int, int]{First: acc + x, Second: acc + x})
	}, 0, s))
	require.Equal(t, 6, got.First)
	require.Equal(t, []int{1, 3, 6}, runEff(mseq.ToSlice(got.Second)))
}

func TestReverse(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3})
	got := runEff(cont.Bind(mseq.Reverse(s), mseq.ToSlice[cont.Resumed, int]))
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestReverseEmpty(t *testing.T) {
	got := runEff(mseq.Reverse(mseq.Empty[cont.Resumed, int]()))
	require.True(t, got.IsEmpty())
}
