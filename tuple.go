// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

// Fixed-arity tuples for the Zip/Unzip families, Unfold and MapAccum.

// Tuple2 is a pair of values.
type Tuple2[T1, T2 any] struct {
	First  T1
	Second T2
}

// Tuple3 is a triple of values.
type Tuple3[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

// Tuple4 is a quadruple of values.
type Tuple4[T1, T2, T3, T4 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
}

// Tuple5 is a quintuple of values.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
	Fifth  T5
}

// Tuple6 is a sextuple of values.
type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
	Fifth  T5
	Sixth  T6
}

// Tuple7 is a septuple of values.
type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	First   T1
	Second  T2
	Third   T3
	Fourth  T4
	Fifth   T5
	Sixth   T6
	Seventh T7
}
