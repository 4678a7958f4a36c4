package main

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/born-ml/tensorism/reduce"
	"github.com/born-ml/tensorism/ricci"
	"github.com/born-ml/tensorism/tensor"
)

type matrix = *tensor.Tensor[float64]

// formula is a stock expression over named float64 operands.
type formula struct {
	operands []string
	eval     func(opts []ricci.Option, in map[string]matrix) (matrix, error)
}

var formulas = map[string]formula{
	// tr = Σ_i a[i, i]
	"trace": {
		operands: []string{"a"},
		eval: func(opts []ricci.Option, in map[string]matrix) (matrix, error) {
			x := ricci.New(opts...)
			i := x.Bound("i")
			a := ricci.Use(x, "a", in["a"], i, i)
			return ricci.Evaluate(x, func(env ricci.Env) float64 {
				return ricci.Reduce(env, []ricci.Index{i}, a.At, reduce.Sum[float64])
			})
		},
	},
	// c[i, k] = Σ_j a[i, j]·b[j, k]
	"matmul": {
		operands: []string{"a", "b"},
		eval: func(opts []ricci.Option, in map[string]matrix) (matrix, error) {
			x := ricci.New(opts...)
			i, k := x.Free("i"), x.Free("k")
			j := x.Bound("j")
			a := ricci.Use(x, "a", in["a"], i, j)
			b := ricci.Use(x, "b", in["b"], j, k)
			return ricci.Evaluate(x, func(env ricci.Env) float64 {
				return ricci.Reduce(env, []ricci.Index{j}, func(env ricci.Env) float64 {
					return a.At(env) * b.At(env)
				}, reduce.Sum[float64])
			})
		},
	},
	// t[j, i] = a[i, j]
	"transpose": {
		operands: []string{"a"},
		eval: func(opts []ricci.Option, in map[string]matrix) (matrix, error) {
			x := ricci.New(opts...)
			j, i := x.Free("j"), x.Free("i")
			a := ricci.Use(x, "a", in["a"], i, j)
			return ricci.Evaluate(x, a.At)
		},
	},
	// r[i] = Σ_j a[i, j]
	"rowsum": {
		operands: []string{"a"},
		eval: func(opts []ricci.Option, in map[string]matrix) (matrix, error) {
			x := ricci.New(opts...)
			i := x.Free("i")
			j := x.Bound("j")
			a := ricci.Use(x, "a", in["a"], i, j)
			return ricci.Evaluate(x, func(env ricci.Env) float64 {
				return ricci.Reduce(env, []ricci.Index{j}, a.At, reduce.Sum[float64])
			})
		},
	},
	// o[i, j] = a[i]·b[j]
	"outer": {
		operands: []string{"a", "b"},
		eval: func(opts []ricci.Option, in map[string]matrix) (matrix, error) {
			x := ricci.New(opts...)
			i, j := x.Free("i"), x.Free("j")
			a := ricci.Use(x, "a", in["a"], i)
			b := ricci.Use(x, "b", in["b"], j)
			return ricci.Evaluate(x, func(env ricci.Env) float64 {
				return a.At(env) * b.At(env)
			})
		},
	},
	// ‖a‖ = √(Σ_{i,j} a[i, j]²)
	"frobenius": {
		operands: []string{"a"},
		eval: func(opts []ricci.Option, in map[string]matrix) (matrix, error) {
			x := ricci.New(opts...)
			i, j := x.Bound("i"), x.Bound("j")
			a := ricci.Use(x, "a", in["a"], i, j)
			return ricci.Evaluate(x, func(env ricci.Env) float64 {
				return math.Sqrt(ricci.Reduce(env, []ricci.Index{i, j}, func(env ricci.Env) float64 {
					v := a.At(env)
					return v * v
				}, reduce.Sum[float64]))
			})
		},
	},
}

// formulaNames returns the stock formula names in sorted order.
func formulaNames() []string {
	return slices.Sorted(maps.Keys(formulas))
}

// Evaluate runs the document's formula on its tensors.
func Evaluate(doc *Document, opts ...ricci.Option) (matrix, error) {
	f, ok := formulas[doc.Formula]
	if !ok {
		return nil, fmt.Errorf("%w: unknown formula %q (want one of %v)", ErrInvalidDocument, doc.Formula, formulaNames())
	}
	in := make(map[string]matrix, len(f.operands))
	for _, name := range f.operands {
		t, err := doc.Tensor(name)
		if err != nil {
			return nil, err
		}
		in[name] = t
	}
	return f.eval(opts, in)
}
