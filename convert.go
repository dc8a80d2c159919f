// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// FromSlice lifts a finite slice into a sequence whose tails are all the
// trivial effect. Useful for interop and tests; the input slice is not
// retained.
func FromSlice[R, A any](items []A) Seq[R, A] {
	s := Empty[R, A]()
	for i := len(items) - 1; i >= 0; i-- {
		s = Cons(items[i], cont.Return[R](s))
	}
	return s
}

// ToSlice materializes the whole sequence, running every tail effect in
// head-to-tail order and accumulating heads. This is the single point of
// full materialization: it does not terminate on an infinite sequence, so
// bound the input with Take or TakeWhile first when in doubt.
func ToSlice[R, A any](s Seq[R, A]) cont.Cont[R, []A] {
	return toSlice(s, nil)
}

func toSlice[R, A any](s Seq[R, A], acc []A) cont.Cont[R, []A] {
	if s.IsEmpty() {
		return cont.Return[R](acc)
	}
	return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, []A] {
		return toSlice(next, append(acc, s.head))
	})
}
