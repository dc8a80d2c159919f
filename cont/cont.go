// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cont

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
//
// Constructing a Cont never executes it; effects run only when the Cont is
// applied to a continuation (directly, or via [Run], [RunWith], [Handle]).
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// This is the trivial effect: it performs no side effect and immediately
// passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that need direct
// access to the continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Defer delays construction of a continuation until it is run.
// f is invoked each time the resulting continuation runs, so any work f
// performs while building its result is itself deferred. Lazy recursive
// structures use Defer for their self-referencing steps.
func Defer[R, A any](f func() Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		return f()(k)
	}
}

// Eff is an effectful computation that produces a value of type A.
// This is the continuation type used with [Perform] and [Handle].
type Eff[A any] = Cont[Resumed, A]

// Pure lifts a value into an effectful computation with no effects.
// Pure(a) is equivalent to Return[Resumed](a) with full type inference on A.
func Pure[A any](a A) Eff[A] {
	return Return[Resumed](a)
}
