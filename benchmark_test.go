// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq_test

import (
	"testing"

	"code.hybscloud.com/mseq"
	"code.hybscloud.com/mseq/cont"
)

func BenchmarkFromSliceToSlice(b *testing.B) {
	items := make([]int, 64)
	for i := range items {
		items[i] = i
	}
	b.ReportAllocs()
	for b.Loop() {
		s := mseq.FromSlice[cont.Resumed](items)
		_ = runBench(mseq.ToSlice(s))
	}
}

func BenchmarkTakeIterate(b *testing.B) {
	inc := func(x int) cont.Eff[int] { return cont.Pure(x + 1) }
	b.ReportAllocs()
	for b.Loop() {
		s := mseq.Take(32, mseq.Iterate(inc, 0))
		_ = runBench(mseq.ToSlice(s))
	}
}

func BenchmarkFoldLeft(b *testing.B) {
	items := make([]int, 64)
	for i := range items {
		items[i] = i
	}
	add := func(acc, x int) cont.Eff[int] { return cont.Pure(acc + x) }
	b.ReportAllocs()
	for b.Loop() {
		s := mseq.FromSlice[cont.Resumed](items)
		_ = runBench(mseq.FoldLeft(add, 0, s))
	}
}

func BenchmarkZipWith2(b *testing.B) {
	items := make([]int, 32)
	for i := range items {
		items[i] = i
	}
	add := func(x, y int) cont.Eff[int] { return cont.Pure(x + y) }
	b.ReportAllocs()
	for b.Loop() {
		s1 := mseq.FromSlice[cont.Resumed](items)
		s2 := mseq.FromSlice[cont.Resumed](items)
		_ = runBench(cont.Bind(mseq.ZipWith2(add, s1, s2), mseq.ToSlice[cont.Resumed, int]))
	}
}

// runBench runs a pure Eff without the test-failure plumbing of runEff.
func runBench[A any](m cont.Eff[A]) A {
	return cont.RunWith(m, func(a A) cont.Resumed { return a }).(A)
}
