// Package ensemble wraps the randomForest library behind the estimator
// interfaces used by the churn pipeline.
package ensemble

import (
	randomforest "github.com/malaschitz/randomForest"
	"gonum.org/v1/gonum/mat"

	"mldemo/core/model"
	"mldemo/pkg/errors"
)

// ForestOptions are the hyperparameters recorded for a forest. NTrees,
// MaxDepth and MinSamplesLeaf are passed through to the backing
// library; MinSamplesSplit and Balanced are recorded in the metadata
// but the library exposes no equivalent knob (its vote is already a
// per-class proportion).
type ForestOptions struct {
	NTrees          int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Balanced        bool
}

// DefaultForestOptions mirrors the churn model's training setup.
func DefaultForestOptions() ForestOptions {
	return ForestOptions{
		NTrees:          100,
		MaxDepth:        10,
		MinSamplesSplit: 5,
		MinSamplesLeaf:  2,
		Balanced:        true,
	}
}

// Option configures a RandomForestClassifier.
type Option func(*RandomForestClassifier)

// WithTrees sets the number of trees in the forest.
func WithTrees(n int) Option {
	return func(rf *RandomForestClassifier) {
		rf.Options.NTrees = n
	}
}

// WithMaxDepth limits how deep each tree may grow.
func WithMaxDepth(depth int) Option {
	return func(rf *RandomForestClassifier) {
		rf.Options.MaxDepth = depth
	}
}

// WithMinSamplesSplit sets the minimum samples required to split a node.
func WithMinSamplesSplit(n int) Option {
	return func(rf *RandomForestClassifier) {
		rf.Options.MinSamplesSplit = n
	}
}

// WithMinSamplesLeaf sets the minimum samples required at a leaf.
func WithMinSamplesLeaf(n int) Option {
	return func(rf *RandomForestClassifier) {
		rf.Options.MinSamplesLeaf = n
	}
}

// WithBalancedClasses records that class-balanced weighting was requested.
func WithBalancedClasses(balanced bool) Option {
	return func(rf *RandomForestClassifier) {
		rf.Options.Balanced = balanced
	}
}

// RandomForestClassifier is a decision-forest classifier for
// integer-coded class labels. Fields are exported for gob persistence.
type RandomForestClassifier struct {
	State      *model.StateManager
	Options    ForestOptions
	Forest     *randomforest.Forest
	NumClasses int
}

var _ model.Classifier = (*RandomForestClassifier)(nil)

// NewRandomForestClassifier creates an unfitted forest with the default
// hyperparameters.
func NewRandomForestClassifier(options ...Option) *RandomForestClassifier {
	rf := &RandomForestClassifier{
		State:   model.NewStateManager(),
		Options: DefaultForestOptions(),
	}
	for _, opt := range options {
		opt(rf)
	}
	return rf
}

// Fit builds the forest on X and the integer-coded labels in y.
func (rf *RandomForestClassifier) Fit(X mat.Matrix, y *mat.VecDense) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.NewValueError("RandomForestClassifier.Fit", "empty training data")
	}
	if y.Len() != rows {
		return errors.NewDimensionError("RandomForestClassifier.Fit", rows, y.Len(), 0)
	}

	xData := make([][]float64, rows)
	yData := make([]int, rows)
	maxClass := 0
	seen := make(map[int]bool)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = X.At(i, j)
		}
		xData[i] = row

		class := int(y.AtVec(i))
		if class < 0 || float64(class) != y.AtVec(i) {
			return errors.NewValueError("RandomForestClassifier.Fit", "labels must be non-negative integers")
		}
		yData[i] = class
		seen[class] = true
		if class > maxClass {
			maxClass = class
		}
	}
	if len(seen) < 2 {
		return errors.NewFitError("RandomForestClassifier.Fit", "training labels contain a single class", nil)
	}

	forest := &randomforest.Forest{
		LeafSize: rf.Options.MinSamplesLeaf,
		MaxDepth: rf.Options.MaxDepth,
	}
	forest.Data = randomforest.ForestData{X: xData, Class: yData}
	forest.Train(rf.Options.NTrees)

	rf.Forest = forest
	rf.NumClasses = maxClass + 1
	rf.State.SetDimensions(cols, rows)
	rf.State.SetFitted()
	return nil
}

// Predict returns the majority-vote class for each row of X.
func (rf *RandomForestClassifier) Predict(X mat.Matrix) (*mat.VecDense, error) {
	proba, err := rf.PredictProba(X)
	if err != nil {
		return nil, err
	}

	rows, _ := proba.Dims()
	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		best := 0
		for c := 1; c < rf.NumClasses; c++ {
			if proba.At(i, c) > proba.At(i, best) {
				best = c
			}
		}
		out.SetVec(i, float64(best))
	}
	return out, nil
}

// PredictProba returns the per-class vote share for each row of X, one
// column per class code.
func (rf *RandomForestClassifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if err := rf.State.RequireFitted("RandomForestClassifier", "PredictProba"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	nFeatures, _ := rf.State.GetDimensions()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("RandomForestClassifier.PredictProba", nFeatures, cols, 1)
	}

	out := mat.NewDense(rows, rf.NumClasses, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row[j] = X.At(i, j)
		}
		votes := rf.Forest.Vote(row)
		for c := 0; c < rf.NumClasses && c < len(votes); c++ {
			out.Set(i, c, votes[c])
		}
	}
	return out, nil
}

// PredictProbaOne returns the class distribution for a single feature
// vector in schema order.
func (rf *RandomForestClassifier) PredictProbaOne(features []float64) ([]float64, error) {
	proba, err := rf.PredictProba(mat.NewDense(1, len(features), features))
	if err != nil {
		return nil, err
	}
	out := make([]float64, rf.NumClasses)
	for c := 0; c < rf.NumClasses; c++ {
		out[c] = proba.At(0, c)
	}
	return out, nil
}

// Classes returns the class codes the forest was trained on.
func (rf *RandomForestClassifier) Classes() []int {
	classes := make([]int, rf.NumClasses)
	for i := range classes {
		classes[i] = i
	}
	return classes
}

// FeatureImportances returns the library's per-feature importance
// scores in column order.
func (rf *RandomForestClassifier) FeatureImportances() ([]float64, error) {
	if err := rf.State.RequireFitted("RandomForestClassifier", "FeatureImportances"); err != nil {
		return nil, err
	}
	out := make([]float64, len(rf.Forest.FeatureImportance))
	copy(out, rf.Forest.FeatureImportance)
	return out, nil
}
