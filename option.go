// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

// Option represents an optional value: Some(a) or None.
// Unfold steps report "emit another element" versus "stop" through it.
type Option[A any] struct {
	present bool
	value   A
}

// Some creates an Option holding a value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}
