// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// Elem scans for target, running tail effects until it is found or the
// sequence ends. Semi-decidable: on an infinite sequence it returns true
// as soon as target appears but never returns false.
func Elem[R any, A comparable](target A, s Seq[R, A]) cont.Cont[R, bool] {
	return cont.Defer(func() cont.Cont[R, bool] {
		if s.IsEmpty() {
			return cont.Return[R](false)
		}
		if s.head == target {
			return cont.Return[R](true)
		}
		return cont.Bind(s.tail, func(next Seq[R, A]) cont.Cont[R, bool] {
			return Elem(target, next)
		})
	})
}

// NotElem is the logical negation of Elem, with the same termination
// caveat on infinite input.
func NotElem[R any, A comparable](target A, s Seq[R, A]) cont.Cont[R, bool] {
	return cont.Map(Elem(target, s), func(found bool) bool {
		return !found
	})
}
