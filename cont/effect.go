// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cont

// Operation is the interface for effect operations in handler dispatch.
// All values passed as the op parameter to Handler.Dispatch implement this interface.
type Operation any

// Resumed is the interface for values flowing through effect suspension and
// resumption. Effectful computations use Cont[Resumed, A] as their
// continuation type.
type Resumed any

// unhandledEffect panics with a descriptive message for unmatched operations.
//
//go:noinline
func unhandledEffect(handler string) {
	panic("cont: unhandled effect in " + handler)
}

// Handler dispatches effect operations.
// Dispatch returns (resumeValue, true) to continue the computation,
// or (finalResult, false) to short-circuit and return immediately.
type Handler interface {
	Dispatch(op Operation) (Resumed, bool)
}

// handlerFunc wraps a dispatch function as a concrete Handler.
type handlerFunc struct {
	f func(op Operation) (Resumed, bool)
}

func (h *handlerFunc) Dispatch(op Operation) (Resumed, bool) {
	return h.f(op)
}

// HandleFunc creates a handler from a dispatch function.
// The function receives each effect operation and returns (resumeValue, true)
// to continue the computation, or (finalResult, false) to short-circuit.
//
// Example:
//
//	HandleFunc(func(op Operation) (Resumed, bool) {
//	    switch op.(type) {
//	    case ReadLine:
//	        return readLine(), true
//	    default:
//	        panic("unhandled effect")
//	    }
//	})
func HandleFunc(f func(op Operation) (Resumed, bool)) Handler {
	return &handlerFunc{f: f}
}

// suspension represents a computation suspended on an effect operation.
// Resuming it with the handler's value continues the computation, which
// either completes or yields the next suspension.
type suspension struct {
	op Operation
	k  func(Resumed) Resumed
}

func (s *suspension) Op() Operation            { return s.op }
func (s *suspension) Resume(v Resumed) Resumed { return s.k(v) }

// Perform triggers an effect operation and suspends the computation.
// The handler receives the operation via [Handler.Dispatch] and provides
// a resume value of type A, or short-circuits with a final result.
func Perform[A any](op Operation) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return &suspension{op: op, k: func(v Resumed) Resumed {
			return k(v.(A))
		}}
	}
}

// toResumed is the identity continuation for effect runners. Named generic
// function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func toResumed[A any](a A) Resumed { return a }

// Handle runs an effectful computation with a handler.
// The handler intercepts each effect operation and determines how to resume.
func Handle[R any](m Eff[R], h Handler) R {
	return handleDispatch[R](m(toResumed[R]), h)
}

// handleDispatch is the trampoline loop: resume suspensions until the
// computation completes or the handler short-circuits.
func handleDispatch[R any](result Resumed, h Handler) R {
	for {
		s, ok := result.(*suspension)
		if !ok {
			if result == nil {
				var zero R
				return zero
			}
			return result.(R)
		}
		v, shouldResume := h.Dispatch(s.Op())
		if !shouldResume {
			return v.(R)
		}
		result = s.Resume(v)
	}
}
