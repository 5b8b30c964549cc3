package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"mldemo/linearmodel"
	"mldemo/pkg/errors"
)

func fittedRegression(t *testing.T) *linearmodel.LinearRegression {
	t.Helper()
	X := mat.NewDense(4, 2, []float64{1, 1, 2, 1, 3, 2, 4, 5})
	y := mat.NewVecDense(4, nil)
	for i := 0; i < 4; i++ {
		y.SetVec(i, 3*X.At(i, 0)+2*X.At(i, 1)+7)
	}
	lr := linearmodel.NewLinearRegression()
	require.NoError(t, lr.Fit(X, y))
	return lr
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "house_price_model.gob"), filepath.Join(dir, "model_info.json"))

	lr := fittedRegression(t)
	info := HouseModelInfo{
		ModelType: "LinearRegression",
		Features:  []string{"bedrooms", "bathrooms", "sqft", "age"},
		FeatureDescriptions: map[string]string{
			"bedrooms": "Number of bedrooms (1-5)",
		},
		Target:            "price",
		TargetDescription: "House price in USD",
		Performance:       Performance{R2Score: 0.93, RMSE: 19876.5},
		SampleInput:       map[string]float64{"bedrooms": 3, "bathrooms": 2, "sqft": 1500, "age": 10},
	}
	require.NoError(t, store.Save(lr, info))

	var loadedModel linearmodel.LinearRegression
	var loadedInfo HouseModelInfo
	require.NoError(t, store.Load(&loadedModel, &loadedInfo))

	assert.Equal(t, info.Features, loadedInfo.Features, "feature order must survive the round trip")
	assert.Equal(t, info.Performance, loadedInfo.Performance)
	assert.Equal(t, info.SampleInput, loadedInfo.SampleInput)

	assert.True(t, loadedModel.State.IsFitted(), "fitted state must survive the round trip")
	assert.InDeltaSlice(t, lr.Coef, loadedModel.Coef, 1e-12)
	assert.InDelta(t, lr.Intercept, loadedModel.Intercept, 1e-12)

	pred, err := loadedModel.PredictOne([]float64{2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 3*2+2*2+7, pred, 1e-8)
}

func TestStoreMetadataFieldNames(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "m.gob"), filepath.Join(dir, "model_info.json"))

	info := ChurnModelInfo{
		FeatureNames: []string{"age", "tenure"},
		ModelType:    "RandomForestClassifier",
		Accuracy:     0.81,
		FeatureImportance: []FeatureWeight{
			{Feature: "tenure", Importance: 0.4},
			{Feature: "age", Importance: 0.2},
		},
	}
	require.NoError(t, store.Save(fittedRegression(t), info))

	raw, err := os.ReadFile(store.InfoPath)
	require.NoError(t, err)

	// The JSON keys are the wire contract shared with other consumers.
	for _, key := range []string{`"feature_names"`, `"model_type"`, `"accuracy"`, `"feature_importance"`, `"feature"`, `"importance"`} {
		assert.True(t, strings.Contains(string(raw), key), "metadata must contain %s", key)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "m.gob"), filepath.Join(dir, "i.json"))

	var m linearmodel.LinearRegression
	var info HouseModelInfo
	err := store.Load(&m, &info)

	var nf *errors.NotFoundError
	require.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)
	assert.Contains(t, nf.Hint, "training pipeline")
}

func TestStoreLoadMissingSidecar(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "m.gob"), filepath.Join(dir, "i.json"))

	// Write only the model blob, bypassing Save's pair discipline.
	require.NoError(t, os.WriteFile(store.ModelPath, []byte("not a pair"), 0o644))

	var m linearmodel.LinearRegression
	var info HouseModelInfo
	err := store.Load(&m, &info)

	var nf *errors.NotFoundError
	require.True(t, errors.As(err, &nf), "a half-present pair must be reported as missing, got %v", err)
	assert.Equal(t, store.InfoPath, nf.Path)
}
