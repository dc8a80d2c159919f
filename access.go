// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// Last returns the effect producing the final element, running every tail
// effect on the way there. Returns ErrEmptyAccess immediately on the empty
// sequence; the returned effect does not terminate on an infinite one.
func Last[R, A any](s Seq[R, A]) (cont.Cont[R, A], error) {
	if s.IsEmpty() {
		return nil, ErrEmptyAccess
	}
	return lastFrom(s.head, s.tail), nil
}

func lastFrom[R, A any](h A, t cont.Cont[R, Seq[R, A]]) cont.Cont[R, A] {
	return cont.Bind(t, func(next Seq[R, A]) cont.Cont[R, A] {
		if next.IsEmpty() {
			return cont.Return[R](h)
		}
		return lastFrom(next.head, next.tail)
	})
}

// Init returns all elements except the last, lazily mirroring the input
// one step behind: producing element i requires having looked ahead to
// element i+1 to confirm it is not past the end, which is why the first
// node is already behind an effect. Returns ErrEmptyAccess on the empty
// sequence.
func Init[R, A any](s Seq[R, A]) (cont.Cont[R, Seq[R, A]], error) {
	if s.IsEmpty() {
		return nil, ErrEmptyAccess
	}
	return initFrom(s.head, s.tail), nil
}

func initFrom[R, A any](h A, t cont.Cont[R, Seq[R, A]]) cont.Cont[R, Seq[R, A]] {
	return cont.Map(t, func(next Seq[R, A]) Seq[R, A] {
		if next.IsEmpty() {
			return Empty[R, A]()
		}
		return Cons(h, initFrom(next.head, next.tail))
	})
}

// Length counts the elements, strictly consuming the whole sequence.
// Does not terminate on an infinite sequence.
func Length[R, A any](s Seq[R, A]) cont.Cont[R, int] {
	return lengthFrom(s, 0)
}

func lengthFrom[R, A any](s Seq[R, A], n int) cont.Cont[R, int] {
	if s.IsEmpty() {
		return cont.Return[R](n)
	}
	return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, int] {
		return lengthFrom(next, n+1)
	})
}
