package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mldemo/config"
	"mldemo/inference"
	"mldemo/pkg/errors"
)

func churnConfig(dir string) config.Churn {
	cfg := config.Default().Churn
	cfg.ModelPath = filepath.Join(dir, "customer_churn_model.gob")
	cfg.InfoPath = filepath.Join(dir, "churn_model_info.json")
	cfg.PlotPath = "" // keep tests filesystem-light
	return cfg
}

func houseConfig(dir string) config.House {
	cfg := config.Default().House
	cfg.ModelPath = filepath.Join(dir, "house_price_model.gob")
	cfg.InfoPath = filepath.Join(dir, "house_model_info.json")
	cfg.PlotPath = ""
	return cfg
}

func TestChurnPipelineEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("trains a 100-tree forest")
	}

	dir := t.TempDir()
	cfg := churnConfig(dir)

	summary, err := TrainChurn(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 4000, summary.TrainSamples)
	assert.Equal(t, 1000, summary.TestSamples)
	assert.Greater(t, summary.Info.Accuracy, 0.6, "forest should beat coin flipping comfortably")
	assert.Len(t, summary.Info.FeatureNames, 8)
	assert.Len(t, summary.Info.FeatureImportance, 8)
	for i := 1; i < len(summary.Info.FeatureImportance); i++ {
		assert.GreaterOrEqual(t,
			summary.Info.FeatureImportance[i-1].Importance,
			summary.Info.FeatureImportance[i].Importance,
			"importances sorted descending")
	}

	predictor, info, err := LoadChurnPredictor(cfg.ModelPath, cfg.InfoPath)
	require.NoError(t, err)
	assert.Equal(t, summary.Info.FeatureNames, info.FeatureNames)

	// The synthesizer's own probability formula saturates for this
	// new, month-to-month, electronic-check, no-tech-support profile.
	result, err := predictor.Predict(map[string]float64{
		"age": 25, "tenure": 3, "monthly_charges": 95.0, "total_charges": 285.0,
		"contract_type": 0, "payment_method": 0, "internet_service": 1, "tech_support": 0,
	})
	require.NoError(t, err)
	assert.Equal(t, inference.RiskHigh, result.RiskLevel)
	assert.Equal(t, 1, result.Prediction)
	assert.Equal(t, "Churn", result.PredictionLabel)
	assert.InDelta(t, 1.0, result.ChurnProbability+result.NoChurnProbability, 1e-9)
}

func TestHousePipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := houseConfig(dir)

	summary, err := TrainHouse(cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 800, summary.TrainSamples)
	assert.Equal(t, 200, summary.TestSamples)
	assert.Greater(t, summary.Info.Performance.R2Score, 0.8, "linear target with modest noise")
	assert.Greater(t, summary.Info.Performance.RMSE, 0.0)

	// 3br/2ba/1500sqft/10y is roughly $295k before noise.
	assert.Greater(t, summary.SamplePrediction, 200000.0)
	assert.Less(t, summary.SamplePrediction, 400000.0)

	predictor, info, err := LoadPricePredictor(cfg.ModelPath, cfg.InfoPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"bedrooms", "bathrooms", "sqft", "age"}, info.Features)

	a, err := predictor.Predict(map[string]float64{"sqft": 1500, "bedrooms": 3, "age": 10, "bathrooms": 2})
	require.NoError(t, err)
	b, err := predictor.Predict(map[string]float64{"bedrooms": 3, "bathrooms": 2, "sqft": 1500, "age": 10})
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-12, "input map order must not matter")
	assert.InDelta(t, summary.SamplePrediction, a, 1e-8, "reloaded model must agree with the freshly trained one")
}

func TestLoadBeforeTrain(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadPricePredictor(filepath.Join(dir, "m.gob"), filepath.Join(dir, "i.json"))
	var nf *errors.NotFoundError
	require.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)

	_, _, err = LoadChurnPredictor(filepath.Join(dir, "m.gob"), filepath.Join(dir, "i.json"))
	require.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)
}

func TestHouseDemoRuns(t *testing.T) {
	dir := t.TempDir()
	cfg := houseConfig(dir)

	_, err := TrainHouse(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, RunHouseDemo(cfg.ModelPath, cfg.InfoPath, zerolog.Nop()))
}
