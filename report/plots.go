// Package report renders training reports as PNG files next to the
// model artifacts.
package report

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"mldemo/pkg/errors"
)

// PredictedActual writes a scatter of predicted vs actual values for
// the test fold, with the identity line for reference.
func PredictedActual(yTrue, yPred *mat.VecDense, path string) error {
	n := yTrue.Len()
	if n == 0 {
		return errors.NewValueError("report.PredictedActual", "empty vector")
	}
	if yPred.Len() != n {
		return errors.NewDimensionError("report.PredictedActual", n, yPred.Len(), 0)
	}

	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = yTrue.AtVec(i)
		pts[i].Y = yPred.AtVec(i)
	}

	p := plot.New()
	p.Title.Text = "Predicted vs actual"
	p.X.Label.Text = "actual"
	p.Y.Label.Text = "predicted"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(scatter)

	identity := plotter.NewFunction(func(x float64) float64 { return x })
	p.Add(identity)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot %s", path)
	}
	return nil
}

// FeatureImportance writes a bar chart of per-feature importance
// scores. Names and scores are parallel slices in display order.
func FeatureImportance(names []string, scores []float64, path string) error {
	if len(names) == 0 {
		return errors.NewValueError("report.FeatureImportance", "no features")
	}
	if len(names) != len(scores) {
		return errors.NewDimensionError("report.FeatureImportance", len(names), len(scores), 0)
	}

	p := plot.New()
	p.Title.Text = "Feature importance"
	p.Y.Label.Text = "importance"

	bars, err := plotter.NewBarChart(plotter.Values(scores), vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "failed to build bar chart")
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot %s", path)
	}
	return nil
}
