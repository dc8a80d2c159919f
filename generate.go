// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// Iterate produces the infinite sequence seed, f(seed), f(f(seed)), ...
// Constructing it runs nothing; each pull on a tail runs f once.
// Re-invoking Iterate with the same arguments yields an equivalent fresh
// sequence, but a single Seq value remains a forward-only cursor.
func Iterate[R, A any](f func(A) cont.Cont[R, A], seed A) Seq[R, A] {
	return Cons(seed, cont.Defer(func() cont.Cont[R, Seq[R, A]] {
		return cont.Map(f(seed), func(next A) Seq[R, A] {
			return Iterate(f, next)
		})
	}))
}

// Repeat produces an infinite sequence in which every element re-runs item
// to obtain its value; nothing is cached between elements.
func Repeat[R, A any](item cont.Cont[R, A]) cont.Cont[R, Seq[R, A]] {
	return cont.Map(item, func(h A) Seq[R, A] {
		return Cons(h, Repeat(item))
	})
}

// Replicate is the finite version of Repeat: n elements, each re-running
// item. n <= 0 yields the empty sequence without running item at all.
func Replicate[R, A any](n int, item cont.Cont[R, A]) cont.Cont[R, Seq[R, A]] {
	if n <= 0 {
		return cont.Return[R](Empty[R, A]())
	}
	return cont.Map(item, func(h A) Seq[R, A] {
		return Cons(h, Replicate(n-1, item))
	})
}

// Cycle repeats a finite sequence forever. Cycling the empty sequence is
// undefined and returns ErrEmptyAccess.
func Cycle[R, A any](s Seq[R, A]) (Seq[R, A], error) {
	if s.IsEmpty() {
		return s, ErrEmptyAccess
	}
	return cycleFrom(s, s), nil
}

// cycleFrom walks cur, restarting from orig whenever cur runs out.
// cur is never empty.
func cycleFrom[R, A any](cur, orig Seq[R, A]) Seq[R, A] {
	return Cons(cur.head, cont.Map(cur.tail, func(next Seq[R, A]) Seq[R, A] {
		if next.IsEmpty() {
			next = orig
		}
		return cycleFrom(next, orig)
	}))
}
