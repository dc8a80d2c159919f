// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mseq

import "code.hybscloud.com/mseq/cont"

// ZipWith2..ZipWith7 combine N sequences pointwise with an effectful
// combiner, stopping as soon as any input runs out. Construction runs
// nothing; each output element is produced on demand, running the
// combiner on the current heads and then, for the following element,
// the N input tails in left-to-right order.
//
// Zip2..Zip7 are the tupling specializations with the identity combiner.

// ZipWith2 zips two sequences with an effectful combiner.
func ZipWith2[R, T1, T2, Z any](f func(T1, T2) cont.Cont[R, Z], s1 Seq[R, T1], s2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, Z]] {
		if s1.IsEmpty() || s2.IsEmpty() {
			return cont.Return[R](Empty[R, Z]())
		}
		return cont.Map(f(s1.head, s2.head), func(z Z) Seq[R, Z] {
			return Cons(z, cont.Bind(s1.tail, func(n1 Seq[R, T1]) cont.Cont[R, Seq[R, Z]] {
				return cont.Bind(s2.tail, func(n2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
					return ZipWith2(f, n1, n2)
				})
			}))
		})
	})
}

// ZipWith3 zips three sequences with an effectful combiner.
func ZipWith3[R, T1, T2, T3, Z any](f func(T1, T2, T3) cont.Cont[R, Z], s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3]) cont.Cont[R, Seq[R, Z]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, Z]] {
		if s1.IsEmpty() || s2.IsEmpty() || s3.IsEmpty() {
			return cont.Return[R](Empty[R, Z]())
		}
		return cont.Map(f(s1.head, s2.head, s3.head), func(z Z) Seq[R, Z] {
			return Cons(z, cont.Bind(s1.tail, func(n1 Seq[R, T1]) cont.Cont[R, Seq[R, Z]] {
				return cont.Bind(s2.tail, func(n2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
					return cont.Bind(s3.tail, func(n3 Seq[R, T3]) cont.Cont[R, Seq[R, Z]] {
						return ZipWith3(f, n1, n2, n3)
					})
				})
			}))
		})
	})
}

// ZipWith4 zips four sequences with an effectful combiner.
func ZipWith4[R, T1, T2, T3, T4, Z any](f func(T1, T2, T3, T4) cont.Cont[R, Z], s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4]) cont.Cont[R, Seq[R, Z]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, Z]] {
		if s1.IsEmpty() || s2.IsEmpty() || s3.IsEmpty() || s4.IsEmpty() {
			return cont.Return[R](Empty[R, Z]())
		}
		return cont.Map(f(s1.head, s2.head, s3.head, s4.head), func(z Z) Seq[R, Z] {
			return Cons(z, cont.Bind(s1.tail, func(n1 Seq[R, T1]) cont.Cont[R, Seq[R, Z]] {
				return cont.Bind(s2.tail, func(n2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
					return cont.Bind(s3.tail, func(n3 Seq[R, T3]) cont.Cont[R, Seq[R, Z]] {
						return cont.Bind(s4.tail, func(n4 Seq[R, T4]) cont.Cont[R, Seq[R, Z]] {
							return ZipWith4(f, n1, n2, n3, n4)
						})
					})
				})
			}))
		})
	})
}

// ZipWith5 zips five sequences with an effectful combiner.
func ZipWith5[R, T1, T2, T3, T4, T5, Z any](f func(T1, T2, T3, T4, T5) cont.Cont[R, Z], s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4], s5 Seq[R, T5]) cont.Cont[R, Seq[R, Z]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, Z]] {
		if s1.IsEmpty() || s2.IsEmpty() || s3.IsEmpty() || s4.IsEmpty() || s5.IsEmpty() {
			return cont.Return[R](Empty[R, Z]())
		}
		return cont.Map(f(s1.head, s2.head, s3.head, s4.head, s5.head), func(z Z) Seq[R, Z] {
			return Cons(z, cont.Bind(s1.tail, func(n1 Seq[R, T1]) cont.Cont[R, Seq[R, Z]] {
				return cont.Bind(s2.tail, func(n2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
					return cont.Bind(s3.tail, func(n3 Seq[R, T3]) cont.Cont[R, Seq[R, Z]] {
						return cont.Bind(s4.tail, func(n4 Seq[R, T4]) cont.Cont[R, Seq[R, Z]] {
							return cont.Bind(s5.tail, func(n5 Seq[R, T5]) cont.Cont[R, Seq[R, Z]] {
								return ZipWith5(f, n1, n2, n3, n4, n5)
							})
						})
					})
				})
			}))
		})
	})
}

// ZipWith6 zips six sequences with an effectful combiner.
func ZipWith6[R, T1, T2, T3, T4, T5, T6, Z any](f func(T1, T2, T3, T4, T5, T6) cont.Cont[R, Z], s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4], s5 Seq[R, T5], s6 Seq[R, T6]) cont.Cont[R, Seq[R, Z]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, Z]] {
		if s1.IsEmpty() || s2.IsEmpty() || s3.IsEmpty() || s4.IsEmpty() || s5.IsEmpty() || s6.IsEmpty() {
			return cont.Return[R](Empty[R, Z]())
		}
		return cont.Map(f(s1.head, s2.head, s3.head, s4.head, s5.head, s6.head), func(z Z) Seq[R, Z] {
			return Cons(z, cont.Bind(s1.tail, func(n1 Seq[R, T1]) cont.Cont[R, Seq[R, Z]] {
				return cont.Bind(s2.tail, func(n2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
					return cont.Bind(s3.tail, func(n3 Seq[R, T3]) cont.Cont[R, Seq[R, Z]] {
						return cont.Bind(s4.tail, func(n4 Seq[R, T4]) cont.Cont[R, Seq[R, Z]] {
							return cont.Bind(s5.tail, func(n5 Seq[R, T5]) cont.Cont[R, Seq[R, Z]] {
								return cont.Bind(s6.tail, func(n6 Seq[R, T6]) cont.Cont[R, Seq[R, Z]] {
									return ZipWith6(f, n1, n2, n3, n4, n5, n6)
								})
							})
						})
					})
				})
			}))
		})
	})
}

// ZipWith7 zips seven sequences with an effectful combiner.
func ZipWith7[R, T1, T2, T3, T4, T5, T6, T7, Z any](f func(T1, T2, T3, T4, T5, T6, T7) cont.Cont[R, Z], s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4], s5 Seq[R, T5], s6 Seq[R, T6], s7 Seq[R, T7]) cont.Cont[R, Seq[R, Z]] {
	return cont.Defer(func() cont.Cont[R, Seq[R, Z]] {
		if s1.IsEmpty() || s2.IsEmpty() || s3.IsEmpty() || s4.IsEmpty() || s5.IsEmpty() || s6.IsEmpty() || s7.IsEmpty() {
			return cont.Return[R](Empty[R, Z]())
		}
		return cont.Map(f(s1.head, s2.head, s3.head, s4.head, s5.head, s6.head, s7.head), func(z Z) Seq[R, Z] {
			return Cons(z, cont.Bind(s1.tail, func(n1 Seq[R, T1]) cont.Cont[R, Seq[R, Z]] {
				return cont.Bind(s2.tail, func(n2 Seq[R, T2]) cont.Cont[R, Seq[R, Z]] {
					return cont.Bind(s3.tail, func(n3 Seq[R, T3]) cont.Cont[R, Seq[R, Z]] {
						return cont.Bind(s4.tail, func(n4 Seq[R, T4]) cont.Cont[R, Seq[R, Z]] {
							return cont.Bind(s5.tail, func(n5 Seq[R, T5]) cont.Cont[R, Seq[R, Z]] {
								return cont.Bind(s6.tail, func(n6 Seq[R, T6]) cont.Cont[R, Seq[R, Z]] {
									return cont.Bind(s7.tail, func(n7 Seq[R, T7]) cont.Cont[R, Seq[R, Z]] {
										return ZipWith7(f, n1, n2, n3, n4, n5, n6, n7)
									})
								})
							})
						})
					})
				})
			}))
		})
	})
}

// Zip2 pairs two sequences, shortest input wins.
func Zip2[R, T1, T2 any](s1 Seq[R, T1], s2 Seq[R, T2]) cont.Cont[R, Seq[R, Tuple2[T1, T2]]] {
	return ZipWith2(func(a T1, b T2) cont.Cont[R, Tuple2[T1, T2]] {
		return cont.Return[R](Tuple2[T1, T2]{First: a, Second: b})
	}, s1, s2)
}

// Zip3 triples three sequences, shortest input wins.
func Zip3[R, T1, T2, T3 any](s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3]) cont.Cont[R, Seq[R, Tuple3[T1, T2, T3]]] {
	return ZipWith3(func(a T1, b T2, c T3) cont.Cont[R, Tuple3[T1, T2, T3]] {
		return cont.Return[R](Tuple3[T1, T2, T3]{First: a, Second: b, Third: c})
	}, s1, s2, s3)
}

// Zip4 tuples four sequences, shortest input wins.
func Zip4[R, T1, T2, T3, T4 any](s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4]) cont.Cont[R, Seq[R, Tuple4[T1, T2, T3, T4]]] {
	return ZipWith4(func(a T1, b T2, c T3, d T4) cont.Cont[R, Tuple4[T1, T2, T3, T4]] {
		return cont.Return[R](Tuple4[T1, T2, T3, T4]{First: a, Second: b, Third: c, Fourth: d})
	}, s1, s2, s3, s4)
}

// Zip5 tuples five sequences, shortest input wins.
func Zip5[R, T1, T2, T3, T4, T5 any](s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4], s5 Seq[R, T5]) cont.Cont[R, Seq[R, Tuple5[T1, T2, T3, T4, T5]]] {
	return ZipWith5(func(a T1, b T2, c T3, d T4, e T5) cont.Cont[R, Tuple5[T1, T2, T3, T4, T5]] {
		return cont.Return[R](Tuple5[T1, T2, T3, T4, T5]{First: a, Second: b, Third: c, Fourth: d, Fifth: e})
	}, s1, s2, s3, s4, s5)
}

// Zip6 tuples six sequences, shortest input wins.
func Zip6[R, T1, T2, T3, T4, T5, T6 any](s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4], s5 Seq[R, T5], s6 Seq[R, T6]) cont.Cont[R, Seq[R, Tuple6[T1, T2, T3, T4, T5, T6]]] {
	return ZipWith6(func(a T1, b T2, c T3, d T4, e T5, g T6) cont.Cont[R, Tuple6[T1, T2, T3, T4, T5, T6]] {
		return cont.Return[R](Tuple6[T1, T2, T3, T4, T5, T6]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: g})
	}, s1, s2, s3, s4, s5, s6)
}

// Zip7 tuples seven sequences, shortest input wins.
func Zip7[R, T1, T2, T3, T4, T5, T6, T7 any](s1 Seq[R, T1], s2 Seq[R, T2], s3 Seq[R, T3], s4 Seq[R, T4], s5 Seq[R, T5], s6 Seq[R, T6], s7 Seq[R, T7]) cont.Cont[R, Seq[R, Tuple7[T1, T2, T3, T4, T5, T6, T7]]] {
	return ZipWith7(func(a T1, b T2, c T3, d T4, e T5, g T6, h T7) cont.Cont[R, Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
		return cont.Return[R](Tuple7[T1, T2, T3, T4, T5, T6, T7]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: g, Seventh: h})
	}, s1, s2, s3, s4, s5, s6, s7)
}
