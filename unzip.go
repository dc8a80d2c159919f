// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// Unzip2..Unzip7 are the strict duals of the Zip family: each fully
// consumes the input (via FoldRight, so the input must be finite) and
// returns N independently walkable sequences whose tails are all trivial,
// already resolved effects.

// Unzip2 splits a sequence of pairs into two sequences.
func Unzip2[R, T1, T2 any](s Seq[R, Tuple2[T1, T2]]) cont.Cont[R, Tuple2[Seq[R, T1], Seq[R, T2]]] {
	return FoldRight(func(p Tuple2[T1, T2], acc Tuple2[Seq[R, T1], Seq[R, T2]]) cont.Cont[R, Tuple2[Seq[R, T1], Seq[R, T2]]] {
		return cont.Return[R](Tuple2[Seq[R, T1], Seq[R, T2]]{
			First:  Cons(p.First, cont.Return[R](acc.First)),
			Second: Cons(p.Second, cont.Return[R](acc.Second)),
		})
	}, Tuple2[Seq[R, T1], Seq[R, T2]]{
		First:  Empty[R, T1](),
		Second: Empty[R, T2](),
	}, s)
}

// Unzip3 splits a sequence of triples into three sequences.
func Unzip3[R, T1, T2, T3 any](s Seq[R, Tuple3[T1, T2, T3]]) cont.Cont[R, Tuple3[Seq[R, T1], Seq[R, T2], Seq[R, T3]]] {
	return FoldRight(func(p Tuple3[T1, T2, T3], acc Tuple3[Seq[R, T1], Seq[R, T2], Seq[R, T3]]) cont.Cont[R, Tuple3[Seq[R, T1], Seq[R, T2], Seq[R, T3]]] {
		return cont.Return[R](Tuple3[Seq[R, T1], Seq[R, T2], Seq[R, T3]]{
			First:  Cons(p.First, cont.Return[R](acc.First)),
			Second: Cons(p.Second, cont.Return[R](acc.Second)),
			Third:  Cons(p.Third, cont.Return[R](acc.Third)),
		})
	}, Tuple3[Seq[R, T1], Seq[R, T2], Seq[R, T3]]{
		First:  Empty[R, T1](),
		Second: Empty[R, T2](),
		Third:  Empty[R, T3](),
	}, s)
}

// Unzip4 splits a sequence of quadruples into four sequences.
func Unzip4[R, T1, T2, T3, T4 any](s Seq[R, Tuple4[T1, T2, T3, T4]]) cont.Cont[R, Tuple4[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4]]] {
	return FoldRight(func(p Tuple4[T1, T2, T3, T4], acc Tuple4[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4]]) cont.Cont[R, Tuple4[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4]]] {
		return cont.Return[R](Tuple4[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4]]{
			First:  Cons(p.First, cont.Return[R](acc.First)),
			Second: Cons(p.Second, cont.Return[R](acc.Second)),
			Third:  Cons(p.Third, cont.Return[R](acc.Third)),
			Fourth: Cons(p.Fourth, cont.Return[R](acc.Fourth)),
		})
	}, Tuple4[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4]]{
		First:  Empty[R, T1](),
		Second: Empty[R, T2](),
		Third:  Empty[R, T3](),
		Fourth: Empty[R, T4](),
	}, s)
}

// Unzip5 splits a sequence of quintuples into five sequences.
func Unzip5[R, T1, T2, T3, T4, T5 any](s Seq[R, Tuple5[T1, T2, T3, T4, T5]]) cont.Cont[R, Tuple5[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5]]] {
	return FoldRight(func(p Tuple5[T1, T2, T3, T4, T5], acc Tuple5[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5]]) cont.Cont[R, Tuple5[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5]]] {
		return cont.Return[R](Tuple5[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5]]{
			First:  Cons(p.First, cont.Return[R](acc.First)),
			Second: Cons(p.Second, cont.Return[R](acc.Second)),
			Third:  Cons(p.Third, cont.Return[R](acc.Third)),
			Fourth: Cons(p.Fourth, cont.Return[R](acc.Fourth)),
			Fifth:  Cons(p.Fifth, cont.Return[R](acc.Fifth)),
		})
	}, Tuple5[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5]]{
		First:  Empty[R, T1](),
		Second: Empty[R, T2](),
		Third:  Empty[R, T3](),
		Fourth: Empty[R, T4](),
		Fifth:  Empty[R, T5](),
	}, s)
}

// Unzip6 splits a sequence of sextuples into six sequences.
func Unzip6[R, T1, T2, T3, T4, T5, T6 any](s Seq[R, Tuple6[T1, T2, T3, T4, T5, T6]]) cont.Cont[R, Tuple6[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6]]] {
	return FoldRight(func(p Tuple6[T1, T2, T3, T4, T5, T6], acc Tuple6[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6]]) cont.Cont[R, Tuple6[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6]]] {
		return cont.Return[R](Tuple6[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6]]{
			First:  Cons(p.First, cont.Return[R](acc.First)),
			Second: Cons(p.Second, cont.Return[R](acc.Second)),
			Third:  Cons(p.Third, cont.Return[R](acc.Third)),
			Fourth: Cons(p.Fourth, cont.Return[R](acc.Fourth)),
			Fifth:  Cons(p.Fifth, cont.Return[R](acc.Fifth)),
			Sixth:  Cons(p.Sixth, cont.Return[R](acc.Sixth)),
		})
	}, Tuple6[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6]]{
		First:  Empty[R, T1](),
		Second: Empty[R, T2](),
		Third:  Empty[R, T3](),
		Fourth: Empty[R, T4](),
		Fifth:  Empty[R, T5](),
		Sixth:  Empty[R, T6](),
	}, s)
}

// Unzip7 splits a sequence of septuples into seven sequences.
func Unzip7[R, T1, T2, T3, T4, T5, T6, T7 any](s Seq[R, Tuple7[T1, T2, T3, T4, T5, T6, T7]]) cont.Cont[R, Tuple7[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6], Seq[R, T7]]] {
	return FoldRight(func(p Tuple7[T1, T2, T3, T4, T5, T6, T7], acc Tuple7[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6], Seq[R, T7]]) cont.Cont[R, Tuple7[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6], Seq[R, T7]]] {
		return cont.Return[R](Tuple7[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6], Seq[R, T7]]{
			First:   Cons(p.First, cont.Return[R](acc.First)),
			Second:  Cons(p.Second, cont.Return[R](acc.Second)),
			Third:   Cons(p.Third, cont.Return[R](acc.Third)),
			Fourth:  Cons(p.Fourth, cont.Return[R](acc.Fourth)),
			Fifth:   Cons(p.Fifth, cont.Return[R](acc.Fifth)),
			Sixth:   Cons(p.Sixth, cont.Return[R](acc.Sixth)),
			Seventh: Cons(p.Seventh, cont.Return[R](acc.Seventh)),
		})
	}, Tuple7[Seq[R, T1], Seq[R, T2], Seq[R, T3], Seq[R, T4], Seq[R, T5], Seq[R, T6], Seq[R, T7]]{
		First:   Empty[R, T1](),
		Second:  Empty[R, T2](),
		Third:   Empty[R, T3](),
		Fourth:  Empty[R, T4](),
		Fifth:   Empty[R, T5](),
		Sixth:   Empty[R, T6](),
		Seventh: Empty[R, T7](),
	}, s)
}
