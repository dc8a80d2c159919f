// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cont

// State effect operations.
// State[S] provides mutable state threading through computations.

// Get is the effect operation for reading state.
// Perform[S](Get[S]{}) returns the current state of type S.
type Get[S any] struct{}

// Put is the effect operation for writing state.
// Perform[struct{}](Put[S]{Value: s}) replaces the current state.
type Put[S any] struct{ Value S }

// Modify is the effect operation for modifying state.
// Perform[S](Modify[S]{F: f}) applies f to state and returns the new state.
type Modify[S any] struct{ F func(S) S }

// stateHandler dispatches the State effect family against a single
// mutable cell.
type stateHandler[S any] struct {
	state *S
}

func (h *stateHandler[S]) Dispatch(op Operation) (Resumed, bool) {
	switch o := op.(type) {
	case Get[S]:
		return *h.state, true
	case Put[S]:
		*h.state = o.Value
		return struct{}{}, true
	case Modify[S]:
		*h.state = o.F(*h.state)
		return *h.state, true
	}
	unhandledEffect("StateHandler")
	return nil, false
}

// RunState runs a computation with the State effect.
// Returns the result and final state.
func RunState[S, A any](initial S, m Eff[A]) (A, S) {
	state := initial
	h := &stateHandler[S]{state: &state}
	result := Handle(m, h)
	return result, state
}
