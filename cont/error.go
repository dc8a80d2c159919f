// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cont

// Error effect operations.
// Error[E] provides exception-like error propagation: a Throw performed
// anywhere inside a computation aborts it, and RunError reports the error
// to the caller as a Left. Failures of an underlying effect cross a lazy
// traversal through this channel without being caught or rewrapped.

// Throw is the effect operation for raising an error.
// Perform[A](Throw[E]{Err: e}) aborts the computation with error e.
type Throw[E any] struct{ Err E }

// errorHandler dispatches Throw by short-circuiting with a Left value.
type errorHandler[E, A any] struct{}

func (errorHandler[E, A]) Dispatch(op Operation) (Resumed, bool) {
	if t, ok := op.(Throw[E]); ok {
		return Left[E, A](t.Err), false
	}
	unhandledEffect("ErrorHandler")
	return nil, false
}

// rightCont is the identity continuation for error runners.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func rightCont[E, A any](a A) Resumed { return Right[E, A](a) }

// RunError runs an error-capable computation and returns Either.
func RunError[E, A any](m Eff[A]) Either[E, A] {
	result := m(rightCont[E, A])
	if result == nil {
		var zero A
		return Right[E, A](zero)
	}
	return handleDispatch[Either[E, A]](result, errorHandler[E, A]{})
}

// Either represents a value that is either Left (error) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
