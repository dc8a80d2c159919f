// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// Map applies an effectful transformation to each element. The returned
// effect, when run, runs f on the head exactly once to materialize the new
// head; the effect for element i+1 does not run until the consumer of
// element i asks for it.
func Map[R, A, B any](f func(A) cont.Cont[R, B], s Seq[R, A]) cont.Cont[R, Seq[R, B]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, B]] {
		if s.IsEmpty() {
			return cont.Return[R](Empty[R, B]())
		}
		return cont.Map(f(s.head), func(b B) Seq[R, B] {
			return Cons(b, cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, Seq[R, B]] {
				return Map(f, next)
			}))
		})
	})
}

// Filter keeps the elements the effectful predicate accepts. Lazy: the
// returned effect scans only far enough to find the first accepted element,
// and each further node scans on demand. Like Elem, it is semi-decidable:
// scanning an infinite all-rejected region never returns.
func Filter[R, A any](p func(A) cont.Cont[R, bool], s Seq[R, A]) cont.Cont[R, Seq[R, A]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		if s.IsEmpty() {
			return cont.Return[R](s)
		}
		return cont.Bind(p(s.head), func(keep bool) cont.Cont[R, Seq[R, A]] {
			rest := cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, Seq[R, A]] {
				return Filter(p, next)
			})
			if keep {
				return cont.Return[R](Cons(s.head, rest))
			}
			return rest
		})
	})
}

// Append concatenates two sequences lazily. No effect runs at call time;
// s2's effects run only after s1 is exhausted.
func Append[R, A any](s1, s2 Seq[R, A]) Seq[R, A] {
	if s1.IsEmpty() {
		return s2
	}
	return Cons(s1.head, cont.Map(s1.tail, func(next Seq[R, A]) Seq[R, A] {
		return Append(next, s2)
	}))
}

// Concat flattens a sequence of sequences lazily, in order.
func Concat[R, A any](ss Seq[R, Seq[R, A]]) cont.Cont[R, Seq[R, A]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		if ss.IsEmpty() {
			return cont.Return[R](Empty[R, A]())
		}
		inner := ss.head
		if inner.IsEmpty() {
			return cont.Bind(ss.tail, Concat[R, A])
		}
		return cont.Return[R](Cons(inner.head,
			cont.Bind(inner.tail, func(rest Seq[R, A]) cont.Cont[R, Seq[R, A]] {
				return Concat(Cons(rest, ss.tail))
			})))
	})
}
