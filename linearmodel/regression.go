// Package linearmodel implements ordinary least squares linear
// regression, the model behind the house price pipeline.
package linearmodel

import (
	"gonum.org/v1/gonum/mat"

	"mldemo/core/model"
	"mldemo/metrics"
	"mldemo/pkg/errors"
)

// LinearRegression fits y = X·coef + intercept by QR-decomposed least
// squares. Fields are exported for gob persistence.
type LinearRegression struct {
	State        *model.StateManager
	FitIntercept bool

	// Learned parameters
	Coef      []float64
	Intercept float64
}

var _ model.Regressor = (*LinearRegression)(nil)

// Option configures a LinearRegression.
type Option func(*LinearRegression)

// WithFitIntercept sets whether to learn the intercept term.
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.FitIntercept = fit
	}
}

// NewLinearRegression creates an unfitted model with sklearn-compatible
// defaults.
func NewLinearRegression(options ...Option) *LinearRegression {
	lr := &LinearRegression{
		State:        model.NewStateManager(),
		FitIntercept: true,
	}
	for _, opt := range options {
		opt(lr)
	}
	return lr
}

// Fit solves the least squares problem via QR decomposition, which is
// numerically stabler than forming the normal equations.
func (lr *LinearRegression) Fit(X mat.Matrix, y *mat.VecDense) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.NewValueError("LinearRegression.Fit", "empty training data")
	}
	if y.Len() != rows {
		return errors.NewDimensionError("LinearRegression.Fit", rows, y.Len(), 0)
	}

	var XFit mat.Matrix = X
	if lr.FitIntercept {
		withIntercept := mat.NewDense(rows, cols+1, nil)
		for i := 0; i < rows; i++ {
			withIntercept.Set(i, 0, 1.0)
			for j := 0; j < cols; j++ {
				withIntercept.Set(i, j+1, X.At(i, j))
			}
		}
		XFit = withIntercept
	}

	yCol := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		yCol.Set(i, 0, y.AtVec(i))
	}

	var qr mat.QR
	qr.Factorize(XFit)

	var solution mat.Dense
	if err := qr.SolveTo(&solution, false, yCol); err != nil {
		return errors.NewFitError("LinearRegression.Fit", "least squares solve failed", err)
	}

	if lr.FitIntercept {
		lr.Intercept = solution.At(0, 0)
		lr.Coef = make([]float64, cols)
		for j := 0; j < cols; j++ {
			lr.Coef[j] = solution.At(j+1, 0)
		}
	} else {
		lr.Intercept = 0
		lr.Coef = make([]float64, cols)
		for j := 0; j < cols; j++ {
			lr.Coef[j] = solution.At(j, 0)
		}
	}

	lr.State.SetDimensions(cols, rows)
	lr.State.SetFitted()
	return nil
}

// Predict returns one predicted value per row of X.
func (lr *LinearRegression) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if err := lr.State.RequireFitted("LinearRegression", "Predict"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	if cols != len(lr.Coef) {
		return nil, errors.NewDimensionError("LinearRegression.Predict", len(lr.Coef), cols, 1)
	}

	out := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		sum := lr.Intercept
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * lr.Coef[j]
		}
		out.SetVec(i, sum)
	}
	return out, nil
}

// PredictOne predicts a single feature vector in schema order.
func (lr *LinearRegression) PredictOne(features []float64) (float64, error) {
	pred, err := lr.Predict(mat.NewDense(1, len(features), features))
	if err != nil {
		return 0, err
	}
	return pred.AtVec(0), nil
}

// Score returns the coefficient of determination R² on (X, y).
func (lr *LinearRegression) Score(X mat.Matrix, y *mat.VecDense) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, pred)
}
