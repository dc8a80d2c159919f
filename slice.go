// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// Take returns a lazy sequence of at most the first n elements.
// n <= 0 yields the empty sequence without touching s's effects at all;
// otherwise no effect runs beyond what the consumer demands.
func Take[R, A any](n int, s Seq[R, A]) Seq[R, A] {
	if n <= 0 || s.IsEmpty() {
		return Empty[R, A]()
	}
	// The nth element ends the result by count alone; running the input's
	// tail effect past it would force one step too many.
	if n == 1 {
		return Cons(s.head, cont.Return[R](Empty[R, A]()))
	}
	return Cons(s.head, cont.Map(s.tail, func(next Seq[R, A]) Seq[R, A] {
		return Take(n-1, next)
	}))
}

// TakeWhile returns the longest prefix whose elements the effectful
// predicate accepts. The returned effect runs p on the head only; each
// further inclusion is decided on demand.
func TakeWhile[R, A any](p func(A) cont.Cont[R, bool], s Seq[R, A]) cont.Cont[R, Seq[R, A]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		if s.IsEmpty() {
			return cont.Return[R](s)
		}
		return cont.Map(p(s.head), func(keep bool) Seq[R, A] {
			if !keep {
				return Empty[R, A]()
			}
			return Cons(s.head, cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, Seq[R, A]] {
				return TakeWhile(p, next)
			}))
		})
	})
}

// Drop skips the first n elements. Skipping is not free: each skipped
// element's production effect still runs. n <= 0 returns s unchanged
// without running anything.
func Drop[R, A any](n int, s Seq[R, A]) cont.Cont[R, Seq[R, A]] {
	if n <= 0 {
		return cont.Return[R](s)
	}
	return cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		if s.IsEmpty() {
			return cont.Return[R](s)
		}
		return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, Seq[R, A]] {
			return Drop(n-1, next)
		})
	})
}

// DropWhile skips the longest prefix the effectful predicate accepts,
// returning the remaining sequence. Skipped elements' effects run.
func DropWhile[R, A any](p func(A) cont.Cont[R, bool], s Seq[R, A]) cont.Cont[R, Seq[R, A]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		if s.IsEmpty() {
			return cont.Return[R](s)
		}
		return cont.Bind(p(s.head), func(skip bool) cont.Cont[R, Seq[R, A]] {
			if !skip {
				return cont.Return[R](s)
			}
			return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, Seq[R, A]] {
				return DropWhile(p, next)
			})
		})
	})
}
