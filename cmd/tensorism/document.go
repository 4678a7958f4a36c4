package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/tensorism/dim"
	"github.com/born-ml/tensorism/tensor"
)

// Document is the YAML input of the eval command.
//
//	formula: matmul
//	tensors:
//	  a: {shape: [2, 3], data: [1, 2, 3, 4, 5, 6]}
//	  b: {shape: [3, 1], data: [1, 0, 1]}
type Document struct {
	Formula string                `yaml:"formula"`
	Tensors map[string]TensorSpec `yaml:"tensors"`
}

// TensorSpec describes one input tensor: axis sizes and row-major data.
type TensorSpec struct {
	Shape []int     `yaml:"shape"`
	Data  []float64 `yaml:"data"`
}

// ErrInvalidDocument is returned for documents that cannot be evaluated.
var ErrInvalidDocument = errors.New("invalid document")

// ReadDocument decodes a document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc.Formula == "" {
		return nil, fmt.Errorf("%w: missing formula", ErrInvalidDocument)
	}
	return &doc, nil
}

// Names returns the tensor names in sorted order.
func (d *Document) Names() []string {
	return slices.Sorted(maps.Keys(d.Tensors))
}

// Tensor builds the named input tensor. Unnamed axes get a dynamic
// dimension tag since sizes are only known once the document is read;
// named axes are then cast to the document's static tag for that name.
func (d *Document) Tensor(name string) (*tensor.Tensor[float64], error) {
	spec, ok := d.Tensors[name]
	if !ok {
		return nil, fmt.Errorf("%w: tensor %q not defined", ErrInvalidDocument, name)
	}
	dims := make([]dim.Dim, len(spec.Shape))
	for k, n := range spec.Shape {
		if n < 0 {
			return nil, fmt.Errorf("%w: tensor %q has negative axis size %d", ErrInvalidDocument, name, n)
		}
		dims[k] = dim.New(n)
	}
	t, err := tensor.New(tensor.Of(dims...), spec.Data)
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", name, err)
	}
	if len(spec.Axes) == 0 {
		return t, nil
	}
	if len(spec.Axes) != len(spec.Shape) {
		return nil, fmt.Errorf("%w: tensor %q has %d axes but %d axis names",
			ErrInvalidDocument, name, len(spec.Shape), len(spec.Axes))
	}
	for k, axis := range spec.Axes {
		dims[k] = d.extent(axis, spec.Shape[k])
	}
	t, err = t.Cast(tensor.Of(dims...))
	if err != nil {
		return nil, fmt.Errorf("tensor %q axes %v: %w", name, spec.Axes, err)
	}
	return t, nil
}

// extent returns the static tag named axis, sized by its first use.
func (d *Document) extent(axis string, size int) dim.Dim {
	if d.extents == nil {
		d.extents = make(map[string]dim.Dim)
	}
	tag, ok := d.extents[axis]
	if !ok {
		tag = dim.Static(size)
		d.extents[axis] = tag
	}
	return tag
}
