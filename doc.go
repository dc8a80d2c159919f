// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mseq provides a lazy effectful sequence: a list whose tail is
// produced by an effectful computation that runs only when the next element
// is demanded.
//
// The core type [Seq] is a two-variant sum: Empty, or Cons of an already
// materialized head and an unevaluated [cont.Cont] producing the rest.
// Sequences may be infinite; elements come into existence one at a time as
// a consumer pulls on tail effects. Console reads, network fetches, random
// draws — any effect expressible as a cont.Cont — can drive production.
//
// # Laziness and ordering contract
//
// Every combinator defers the effect that produces the next element until
// that element is demanded, and never forces more of the underlying
// sequence than needed to produce the requested elements. Constructing a
// derived sequence (Map, Take, ZipWith, ...) executes no effects; effects
// run only when the result is itself pulled on. For any single linear
// traversal, tail effects run in strict head-to-tail order, exactly once
// per step.
//
// # Re-traversal
//
// The sequence does not memoize. Traversing the same Seq value from two
// independent call sites re-runs every tail effect each traversal
// encounters, so a non-idempotent or expensive effect embedded in a
// sequence executes once per traversal. Callers that need sharing should
// materialize with [ToSlice] (bounded via [Take] first if the input may be
// infinite) or layer caching into the effect itself.
//
// # Divergence on infinite input
//
// Operations that must see the entire sequence — [ToSlice], [Length],
// [Last], [Reverse], [FoldLeft], [FoldRight], [MapAccum], the Unzip family —
// do not terminate on a sequence that never reaches Empty. This is a
// documented property of the operations, not an error the package guards
// against. [Elem] and [Filter] are semi-decidable: they answer as soon as a
// witness appears but never return on an infinite sequence without one.
//
// # Result shape
//
// A Cons head is materialized, so an operation whose first output element
// requires running an effect returns cont.Cont[R, Seq[R, A]] rather than a
// bare Seq (Map, Filter, TakeWhile, the ZipWith family, Init, Concat,
// Repeat, Replicate, Unfold). Operations whose first element is decidable
// without effects return Seq directly (Take, Iterate, Append, Cycle,
// FromSlice).
package mseq
