package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that learn from training data.
type Fitter interface {
	// Fit trains the model on X and the column vector y.
	Fit(X mat.Matrix, y *mat.VecDense) error
}

// Predictor is the interface for fitted models that produce predictions.
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer is the interface for models that can compute a score on data.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X mat.Matrix, y *mat.VecDense) (float64, error)
}

// Regressor combines the interfaces for regression models.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// Classifier combines the interfaces for classification models.
type Classifier interface {
	Fitter
	Predictor

	// PredictProba returns per-class probability estimates, one row per
	// sample, columns ordered by class label.
	PredictProba(X mat.Matrix) (*mat.Dense, error)

	// Classes returns the unique classes seen during fitting.
	Classes() []int
}
