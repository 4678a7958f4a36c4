// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ricci builds tensors from formulas written in index notation.
//
// An expression declares named indices, binds tensor operands to them, and
// is then evaluated with a body that computes one result element. Free
// indices become the axes of the result; bound indices are ranged over by
// Reduce inside the body.
//
// Matrix product c[i, k] = Σ_j a[i, j]·b[j, k]:
//
//	x := ricci.New()
//	i, k := x.Free("i"), x.Free("k")
//	j := x.Bound("j")
//	a := ricci.Use(x, "a", A, i, j)
//	b := ricci.Use(x, "b", B, j, k)
//
//	c, err := ricci.Evaluate(x, func(env ricci.Env) float64 {
//	    return ricci.Reduce(env, []ricci.Index{j}, func(env ricci.Env) float64 {
//	        return a.At(env) * b.At(env)
//	    }, reduce.Sum[float64])
//	})
//
// Every index symbol is unified across all operand axes it addresses before
// any element is read. A size conflict fails with ErrDimensionMismatch, a
// symbol that addresses nothing with ErrUnboundIndex, and a symbol reused in
// a conflicting role with ErrDuplicateIndex. Reads outside a tensor during
// evaluation fail with tensor.ErrIndexOutOfRange. A failed evaluation never
// returns a partial result.
//
// Evaluation is sequential by default. WithParallel spreads result elements
// over a bounded worker pool; bodies must then be safe for concurrent use.
package ricci
