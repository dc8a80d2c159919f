// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cont provides the continuation-passing effect type that the
// sequence package is parameterized over.
//
// The core type [Cont] represents a computation that accepts a continuation
// and produces a final result. Two operations make it an effect abstraction
// in the sense the sequence combinators require:
//
//   - [Return]: lift a pure value into a continuation (the trivial effect)
//   - [Bind]: sequence two continuations, feeding the first result into
//     a function producing the second
//
// Derived operations:
//
//   - [Map]: apply a pure function to the result
//   - [Then]: sequence, discarding the first result
//   - [Defer]: delay construction of a continuation until it is run
//
// Execution:
//
//   - [Run]: execute a continuation with the identity continuation
//   - [RunWith]: execute with a custom final continuation
//
// # Pluggable effects
//
// A host program supplies concrete side effects through [Perform] and
// [Handler]. Perform suspends the computation on an [Operation] value;
// [Handle] runs a trampoline that dispatches each suspended operation to a
// handler, which resumes the computation with a result or short-circuits.
// Console I/O, network reads, random number generation and the like all
// enter an effectful sequence through this seam.
//
// Two stock effect families ship with the package: State ([Get], [Put],
// [Modify], run by [RunState]) and Error ([Throw], run by [RunError],
// which reports failure through [Either]). Error is the channel by which a
// failing underlying effect propagates out of a sequence traversal
// unchanged.
package cont
