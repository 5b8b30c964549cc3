package pipeline

import (
	"github.com/rs/zerolog"

	"mldemo/artifact"
	"mldemo/config"
	"mldemo/dataset"
	"mldemo/inference"
	"mldemo/linearmodel"
	"mldemo/metrics"
	"mldemo/modelselection"
	"mldemo/report"
)

// houseFeatureDescriptions documents the generated value ranges in the
// metadata sidecar.
var houseFeatureDescriptions = map[string]string{
	"bedrooms":  "Number of bedrooms (1-5)",
	"bathrooms": "Number of bathrooms (1-3)",
	"sqft":      "Square footage (800-4000)",
	"age":       "Age of house in years (0-50)",
}

// houseSampleInput is the canned sample persisted with the metadata and
// predicted right after training.
var houseSampleInput = map[string]float64{
	"bedrooms":  3,
	"bathrooms": 2,
	"sqft":      1500,
	"age":       10,
}

// HouseSummary reports one house price training run.
type HouseSummary struct {
	Info             artifact.HouseModelInfo
	SamplePrediction float64
	TrainSamples     int
	TestSamples      int
}

// TrainHouse runs the full house price pipeline: synthesize, split, fit
// the regression, evaluate, persist, and render the predicted-vs-actual
// report.
func TrainHouse(cfg config.House, logger zerolog.Logger) (*HouseSummary, error) {
	logger.Info().Uint64("seed", cfg.Seed).Int("samples", cfg.Samples).Msg("generating sample house data")
	ds, err := dataset.GenerateHousing(cfg.Seed, cfg.Samples)
	if err != nil {
		return nil, err
	}

	split, err := modelselection.TrainTestSplit(ds.X, ds.Y, cfg.TestSize, cfg.SplitSeed)
	if err != nil {
		return nil, err
	}
	trainRows := split.YTrain.Len()
	testRows := split.YTest.Len()
	logger.Info().Int("train", trainRows).Int("test", testRows).Msg("dataset split")

	lr := linearmodel.NewLinearRegression()
	if err := lr.Fit(split.XTrain, split.YTrain); err != nil {
		return nil, err
	}

	pred, err := lr.Predict(split.XTest)
	if err != nil {
		return nil, err
	}
	r2, err := metrics.R2Score(split.YTest, pred)
	if err != nil {
		return nil, err
	}
	rmse, err := metrics.RMSE(split.YTest, pred)
	if err != nil {
		return nil, err
	}
	logger.Info().Float64("r2_score", r2).Float64("rmse", rmse).Msg("model evaluated")

	info := artifact.HouseModelInfo{
		ModelType:           "LinearRegression",
		Features:            ds.Schema.FeatureNames(),
		FeatureDescriptions: houseFeatureDescriptions,
		Target:              ds.Schema.Target,
		TargetDescription:   "House price in USD",
		Performance:         artifact.Performance{R2Score: r2, RMSE: rmse},
		SampleInput:         houseSampleInput,
	}
	store := artifact.NewStore(cfg.ModelPath, cfg.InfoPath)
	if err := store.Save(lr, info); err != nil {
		return nil, err
	}
	logger.Info().Str("model", cfg.ModelPath).Str("metadata", cfg.InfoPath).Msg("artifact saved")

	if cfg.PlotPath != "" {
		if err := report.PredictedActual(split.YTest, pred, cfg.PlotPath); err != nil {
			logger.Warn().Err(err).Str("path", cfg.PlotPath).Msg("prediction plot skipped")
		}
	}

	predictor := &inference.PricePredictor{Model: lr, Features: info.Features}
	sample, err := predictor.Predict(houseSampleInput)
	if err != nil {
		return nil, err
	}
	logger.Info().Float64("predicted_price", sample).Msg("sample prediction: 3 bedrooms, 2 bathrooms, 1500 sqft, 10 years old")

	return &HouseSummary{
		Info:             info,
		SamplePrediction: sample,
		TrainSamples:     trainRows,
		TestSamples:      testRows,
	}, nil
}

// LoadPricePredictor reloads a persisted house price artifact pair into
// a ready predictor.
func LoadPricePredictor(modelPath, infoPath string) (*inference.PricePredictor, *artifact.HouseModelInfo, error) {
	var lr linearmodel.LinearRegression
	var info artifact.HouseModelInfo

	store := artifact.NewStore(modelPath, infoPath)
	if err := store.Load(&lr, &info); err != nil {
		return nil, nil, err
	}
	return &inference.PricePredictor{Model: &lr, Features: info.Features}, &info, nil
}
