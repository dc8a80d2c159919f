// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import (
	"errors"

	"code.hybscloud.com/mseq/cont"
)

// ErrEmptyAccess is returned by operations that require at least one
// element (Head, Tail, Last, Init, Cycle) when invoked on an empty
// sequence. It distinguishes "legitimately empty" from a bug; match with
// errors.Is.
var ErrEmptyAccess = errors.New("mseq: access on empty sequence")

// Seq is a lazy effectful sequence with answer type R and element type A.
//
// A Seq is either Empty or Cons(head, tail): head is a plain, already
// materialized value; tail is an unevaluated effect that, when run, yields
// the next node. The zero value is the empty sequence.
//
// Each traversal step runs a tail effect exactly once; the structure holds
// no cache, so independent traversals of the same value re-run effects.
type Seq[R, A any] struct {
	nonEmpty bool
	head     A
	tail     cont.Cont[R, Seq[R, A]]
}

// Empty returns the empty sequence.
func Empty[R, A any]() Seq[R, A] {
	return Seq[R, A]{}
}

// Cons builds a node from an already materialized head and an effect
// producing the rest of the sequence. The tail effect is not run.
func Cons[R, A any](head A, tail cont.Cont[R, Seq[R, A]]) Seq[R, A] {
	return Seq[R, A]{nonEmpty: true, head: head, tail: tail}
}

// IsEmpty reports whether the sequence has no elements.
// O(1); inspects only the already resolved node, running no effects.
func (s Seq[R, A]) IsEmpty() bool {
	return !s.nonEmpty
}

// Head returns the first element without running any effect.
// Returns ErrEmptyAccess on the empty sequence.
func (s Seq[R, A]) Head() (A, error) {
	if !s.nonEmpty {
		var zero A
		return zero, ErrEmptyAccess
	}
	return s.head, nil
}

// Tail returns the effect that advances one step, yielding the rest of the
// sequence. The effect is not run. Returns ErrEmptyAccess on the empty
// sequence.
func (s Seq[R, A]) Tail() (cont.Cont[R, Seq[R, A]], error) {
	if !s.nonEmpty {
		return nil, ErrEmptyAccess
	}
	return s.tail, nil
}
