package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPredictedActual(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pred.png")

	yTrue := mat.NewVecDense(4, []float64{100, 200, 300, 400})
	yPred := mat.NewVecDense(4, []float64{110, 190, 310, 390})
	require.NoError(t, PredictedActual(yTrue, yPred, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPredictedActualValidation(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{1, 2, 3})
	yPred := mat.NewVecDense(2, []float64{1, 2})
	assert.Error(t, PredictedActual(yTrue, yPred, "unused.png"))
}

func TestFeatureImportance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "importance.png")

	names := []string{"tenure", "contract_type", "age"}
	scores := []float64{0.4, 0.25, 0.1}
	require.NoError(t, FeatureImportance(names, scores, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFeatureImportanceValidation(t *testing.T) {
	assert.Error(t, FeatureImportance(nil, nil, "unused.png"))
	assert.Error(t, FeatureImportance([]string{"a"}, []float64{1, 2}, "unused.png"))
}
