// Package pipeline wires the synthesizers, splitters, models, metrics
// and artifact store into the two end-to-end demo pipelines.
package pipeline

import (
	"sort"

	"github.com/rs/zerolog"

	"mldemo/artifact"
	"mldemo/config"
	"mldemo/dataset"
	"mldemo/ensemble"
	"mldemo/inference"
	"mldemo/metrics"
	"mldemo/modelselection"
	"mldemo/report"
)

// ChurnSummary reports one churn training run.
type ChurnSummary struct {
	Info         artifact.ChurnModelInfo
	Confusion    *metrics.ConfusionMatrix
	ClassReports []metrics.ClassReport
	ChurnRate    float64
	TrainSamples int
	TestSamples  int
}

// TrainChurn runs the full churn pipeline: synthesize, split
// stratified, fit the forest, evaluate on the held-out fold, persist
// the artifact pair, and render the feature importance report.
func TrainChurn(cfg config.Churn, logger zerolog.Logger) (*ChurnSummary, error) {
	logger.Info().Uint64("seed", cfg.Seed).Int("samples", cfg.Samples).Msg("generating synthetic customer data")
	ds, err := dataset.GenerateChurn(cfg.Seed, cfg.Samples)
	if err != nil {
		return nil, err
	}

	var churned float64
	for i := 0; i < ds.Len(); i++ {
		churned += ds.Y.AtVec(i)
	}
	churnRate := churned / float64(ds.Len())
	logger.Info().Int("records", ds.Len()).Float64("churn_rate", churnRate).Msg("dataset ready")

	split, err := modelselection.StratifiedTrainTestSplit(ds.X, ds.Y, cfg.TestSize, cfg.SplitSeed)
	if err != nil {
		return nil, err
	}
	trainRows := split.YTrain.Len()
	testRows := split.YTest.Len()
	logger.Info().Int("train", trainRows).Int("test", testRows).Msg("dataset split")

	rf := ensemble.NewRandomForestClassifier(
		ensemble.WithTrees(cfg.Forest.Trees),
		ensemble.WithMaxDepth(cfg.Forest.MaxDepth),
		ensemble.WithMinSamplesSplit(cfg.Forest.MinSamplesSplit),
		ensemble.WithMinSamplesLeaf(cfg.Forest.MinSamplesLeaf),
		ensemble.WithBalancedClasses(cfg.Forest.Balanced),
	)
	logger.Info().Int("trees", cfg.Forest.Trees).Msg("training random forest classifier")
	if err := rf.Fit(split.XTrain, split.YTrain); err != nil {
		return nil, err
	}

	pred, err := rf.Predict(split.XTest)
	if err != nil {
		return nil, err
	}
	accuracy, err := metrics.Accuracy(split.YTest, pred)
	if err != nil {
		return nil, err
	}
	confusion, err := metrics.NewConfusionMatrix(split.YTest, pred)
	if err != nil {
		return nil, err
	}
	reports := confusion.Report()
	logger.Info().Float64("accuracy", accuracy).Msg("model evaluated")
	for _, r := range reports {
		logger.Info().
			Int("class", r.Class).
			Float64("precision", r.Precision).
			Float64("recall", r.Recall).
			Float64("f1", r.F1).
			Int("support", r.Support).
			Msg("class report")
	}

	importance, err := rankedImportance(rf, ds.Schema.FeatureNames())
	if err != nil {
		return nil, err
	}
	for _, fw := range importance {
		logger.Info().Str("feature", fw.Feature).Float64("importance", fw.Importance).Msg("feature importance")
	}

	info := artifact.ChurnModelInfo{
		FeatureNames:      ds.Schema.FeatureNames(),
		ModelType:         "RandomForestClassifier",
		Accuracy:          accuracy,
		FeatureImportance: importance,
	}
	store := artifact.NewStore(cfg.ModelPath, cfg.InfoPath)
	if err := store.Save(rf, info); err != nil {
		return nil, err
	}
	logger.Info().Str("model", cfg.ModelPath).Str("metadata", cfg.InfoPath).Msg("artifact saved")

	if cfg.PlotPath != "" {
		names := make([]string, len(importance))
		scores := make([]float64, len(importance))
		for i, fw := range importance {
			names[i] = fw.Feature
			scores[i] = fw.Importance
		}
		if err := report.FeatureImportance(names, scores, cfg.PlotPath); err != nil {
			logger.Warn().Err(err).Str("path", cfg.PlotPath).Msg("feature importance plot skipped")
		}
	}

	return &ChurnSummary{
		Info:         info,
		Confusion:    confusion,
		ClassReports: reports,
		ChurnRate:    churnRate,
		TrainSamples: trainRows,
		TestSamples:  testRows,
	}, nil
}

func rankedImportance(rf *ensemble.RandomForestClassifier, names []string) ([]artifact.FeatureWeight, error) {
	scores, err := rf.FeatureImportances()
	if err != nil {
		return nil, err
	}
	out := make([]artifact.FeatureWeight, 0, len(names))
	for i, name := range names {
		score := 0.0
		if i < len(scores) {
			score = scores[i]
		}
		out = append(out, artifact.FeatureWeight{Feature: name, Importance: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out, nil
}

// LoadChurnPredictor reloads a persisted churn artifact pair into a
// ready predictor.
func LoadChurnPredictor(modelPath, infoPath string) (*inference.ChurnPredictor, *artifact.ChurnModelInfo, error) {
	var rf ensemble.RandomForestClassifier
	var info artifact.ChurnModelInfo

	store := artifact.NewStore(modelPath, infoPath)
	if err := store.Load(&rf, &info); err != nil {
		return nil, nil, err
	}
	return &inference.ChurnPredictor{Model: &rf, Features: info.FeatureNames}, &info, nil
}
