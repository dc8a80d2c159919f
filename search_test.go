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

func TestElemFound(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3})
	require.True(t, runEff(mseq.Elem(2, s)))
}

func TestElemAbsent(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3})
	require.False(t, runEff(mseq.Elem(9, s)))
}

func TestElemEmpty(t *testing.T) {
	require.False(t, runEff(mseq.Elem(1, mseq.Empty[cont.Resumed, int]())))
}

// Semi-decision: elem answers true on an infinite sequence as soon as the
// target appears, without the sequence ever ending.
func TestElemSemiDecidesInfinite(t *testing.T) {
	steps := 0
	s := mseq.Iterate(func(x int) cont.Eff[int] {
		steps++
		return cont.Pure(x + 1)
	}, 0)
	require.True(t, runEff(mseq.Elem(5, s)))
	require.Equal(t, 5, steps, "found at the fifth step, no further")
}

func TestElemStopsAtFirstHit(t *testing.T) {
	steps := 0
	s := counted(&steps, []int{1, 2, 3, 4})
	require.True(t, runEff(mseq.Elem(2, s)))
	require.Equal(t, 1, steps)
}

func TestNotElem(t *testing.T) {
	s := mseq.FromSlice[cont.Resumed]([]int{1, 2, 3})
	require.False(t, runEff(mseq.NotElem(2, s)))
	require.True(t, runEff(mseq.NotElem(9, s)))
}
