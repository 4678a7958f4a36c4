// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensor container of the tensorism
// index-expression engine.
//
// # Overview
//
// A Tensor[T] is an immutable, dense, row-major N-axis array of any element
// type. Every axis carries a dimension tag (see package dim) so that index
// expressions can check that axes addressed by the same index symbol have
// the same size.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorism/dim"
//	    "github.com/born-ml/tensorism/tensor"
//	)
//
//	func main() {
//	    rows, cols := dim.Static(2), dim.New(3)
//
//	    // From flat row-major data
//	    a, err := tensor.New(tensor.Of(rows, cols), []float64{1, 2, 3, 4, 5, 6})
//
//	    // From a function of the multi-index
//	    eye := tensor.FromFunc(tensor.Of(rows, rows), func(ix []int) float64 {
//	        if ix[0] == ix[1] {
//	            return 1
//	        }
//	        return 0
//	    })
//
//	    v, err := a.At(1, 2) // 6
//	}
//
// # Incremental Construction
//
// Builder fills a tensor in row-major order and refuses to build until
// every position is set exactly once:
//
//	b := tensor.NewBuilder[int](tensor.Of(rows, cols))
//	b.Append(1, 2, 3)
//	t, err := b.Fill(0)
//
// # Errors
//
// Construction with the wrong element count fails with ErrShapeMismatch;
// reads outside the axes fail with ErrIndexOutOfRange.
//
// # Memory Management
//
// Tensors never expose their storage. Constructors copy their input, Data
// returns a copy, and a tensor can be read concurrently from any number of
// goroutines. Cast re-stamps the axes of a tensor without copying, since
// neither tensor can be modified.
package tensor
