// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// FoldLeft strictly consumes the whole sequence left to right, threading
// the accumulator through each effect in sequence order. There is no
// short-circuit: on an infinite sequence it does not terminate.
func FoldLeft[R, A, B any](f func(B, A) cont.Cont[R, B], seed B, s Seq[R, A]) cont.Cont[R, B] {
	return cont.Defer(func() cont.Cont[R, B] {
		if s.IsEmpty() {
			return cont.Return[R](seed)
		}
		return cont.Bind(f(seed, s.head), func(acc B) cont.Cont[R, B] {
			return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, B] {
				return FoldLeft(f, acc, next)
			})
		})
	})
}

// FoldRight recurses to the end of the sequence first, then applies f from
// the last element backward to the first. Requires a finite sequence.
func FoldRight[R, A, B any](f func(A, B) cont.Cont[R, B], seed B, s Seq[R, A]) cont.Cont[R, B] {
	return cont.Defer(func() cont.Cont[R, B] {
		if s.IsEmpty() {
			return cont.Return[R](seed)
		}
		return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, B] {
			return cont.Bind(FoldRight(f, seed, next), func(acc B) cont.Cont[R, B] {
				return f(s.head, acc)
			})
		})
	})
}

// Unfold is the dual of fold: each step runs f on the current state and
// either stops on None or emits the produced element, deferring the next
// step behind the new node's tail. f that never returns None produces an
// infinite sequence.
func Unfold[R, S, A any](f func(S) cont.Cont[R, Option[Tuple2[A, S]]], seed S) cont.Cont[R, Seq[R, A]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		return cont.Map(f(seed), func(o Option[Tuple2[A, S]]) Seq[R, A] {
			step, ok := o.Get()
			if !ok {
				return Empty[R, A]()
			}
			return Cons(step.First, Unfold(f, step.Second))
		})
	})
}

// MapAccum folds and transforms at once: the accumulator is threaded
// strictly through the whole input while a transformed output sequence is
// built alongside. Because the final accumulator requires full consumption,
// MapAccum is strict-only — the output nodes carry trivial tails and the
// input must be finite.
func MapAccum[R, A, B, C any](f func(B, A) cont.Cont[R, Tuple2[B, C]], seed B, s Seq[R, A]) cont.Cont[R, Tuple2[B, Seq[R, C]]] {
	return cont.Defer(func() cont.Cont[R, Tuple2[B, Seq[R, C]]] {
		if s.IsEmpty() {
			return cont.Return[R](Tuple2[B, Seq[R, C]]{First: seed, Second: Empty[R, C]()})
		}
		return cont.Bind(f(seed, s.head), func(step Tuple2[B, C]) cont.Cont[R, Tuple2[B, Seq[R, C]]] {
			return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, Tuple2[B, Seq[R, C]]] {
				return cont.Map(MapAccum(f, step.First, next), func(r Tuple2[B, Seq[R, C]]) Tuple2[B, Seq[R, C]] {
					return Tuple2[B, Seq[R, C]]{
						First:  r.First,
						Second: Cons(step.Second, cont.Return[R](r.Second)),
					}
				})
			})
		})
	})
}

// Reverse strictly consumes the whole input and returns it reversed with
// trivial (already resolved) tails. Cannot be applied to an infinite
// sequence.
func Reverse[R, A any](s Seq[R, A]) cont.Cont[R, Seq[R, A]] {
	return FoldLeft(func(acc Seq[R, A], x A) cont.Cont[R, Seq[R, A]] {
		return cont.Return[R](Cons(x, cont.Return[R](acc)))
	}, Empty[R, A](), s)
}
