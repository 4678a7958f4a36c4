// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ricci

import (
	"log/slog"

	"github.com/born-ml/tensorism/internal/eval"
	"github.com/born-ml/tensorism/internal/index"
	"github.com/born-ml/tensorism/internal/parallel"
	"github.com/born-ml/tensorism/tensor"
)

// Type aliases for public API

// Expr is an index expression under construction.
type Expr = eval.Expr

// Index is a handle to an index symbol declared on an Expr.
type Index = eval.Index

// Env maps active indices to their current positions during evaluation.
type Env = eval.Env

// Operand is a tensor bound to a list of indices, like a[i, j].
type Operand[T any] = eval.Operand[T]

// Reducer consumes a single-pass sequence and returns one summary element.
// See package reduce for the stock reducers.
type Reducer[T, R any] = eval.Reducer[T, R]

// Option configures an Expr.
type Option = eval.Option

// MismatchError reports two occurrences of one index symbol whose axes have
// different sizes. It matches ErrDimensionMismatch under errors.Is.
type MismatchError = index.MismatchError

// Occurrence locates one axis addressed by an index symbol.
type Occurrence = index.Occurrence

// ParallelConfig controls parallel evaluation.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrDimensionMismatch = index.ErrDimensionMismatch
	ErrRankMismatch      = index.ErrRankMismatch
	ErrUnboundIndex      = index.ErrUnboundIndex
	ErrDuplicateIndex    = index.ErrDuplicateIndex
	ErrSequenceReused    = eval.ErrSequenceReused
	ErrNotScalar         = eval.ErrNotScalar
)

// New creates an empty expression.
func New(opts ...Option) *Expr {
	return eval.New(opts...)
}

// WithLogger sets the logger used for resolution and evaluation events.
func WithLogger(logger *slog.Logger) Option {
	return eval.WithLogger(logger)
}

// WithParallel enables parallel evaluation of result elements.
func WithParallel(cfg ParallelConfig) Option {
	return eval.WithParallel(cfg)
}

// DefaultParallelConfig returns a parallel configuration sized to the host.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Use binds t to x through idx, one index per axis.
func Use[T any](x *Expr, name string, t *tensor.Tensor[T], idx ...Index) Operand[T] {
	return eval.Use(x, name, t, idx...)
}

// Evaluate resolves x and builds the tensor of body(env) over every
// combination of its free indices, row-major in declaration order.
func Evaluate[T any](x *Expr, body func(Env) T) (*tensor.Tensor[T], error) {
	return eval.Evaluate(x, body)
}

// Scalar evaluates an expression without free indices.
func Scalar[T any](x *Expr, body func(Env) T) (T, error) {
	return eval.Scalar(x, body)
}

// Reduce feeds body over every joint combination of group to reducer.
func Reduce[T, R any](env Env, group []Index, body func(Env) T, reducer Reducer[T, R]) R {
	return eval.Reduce(env, group, body, reducer)
}

// Cond evaluates exactly one of then and otherwise, depending on pred.
func Cond[T any](env Env, pred func(Env) bool, then, otherwise func(Env) T) T {
	return eval.Cond(env, pred, then, otherwise)
}
