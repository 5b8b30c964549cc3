// Package dataset defines the tabular dataset representation and the
// deterministic synthesizers that produce the demo training data.
package dataset

import (
	"gonum.org/v1/gonum/mat"
)

// FeatureSpec describes one feature slot: its name and the inclusive
// range the synthesizer draws it from.
type FeatureSpec struct {
	Name string
	Min  float64
	Max  float64
}

// Schema is an ordered sequence of feature slots plus the target name.
// The order fixed here at training time must be preserved exactly when
// building feature vectors for inference.
type Schema struct {
	Features []FeatureSpec
	Target   string
}

// FeatureNames returns the feature names in schema order.
func (s Schema) FeatureNames() []string {
	names := make([]string, len(s.Features))
	for i, f := range s.Features {
		names[i] = f.Name
	}
	return names
}

// Dataset is an immutable collection of rows: a feature matrix X with
// one column per schema feature, and the target vector Y.
type Dataset struct {
	Schema Schema
	X      *mat.Dense
	Y      *mat.VecDense
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	r, _ := d.X.Dims()
	return r
}

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int {
	_, c := d.X.Dims()
	return c
}
