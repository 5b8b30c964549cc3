// Package artifact persists fitted models and their metadata sidecars.
// A model artifact is always a pair: a gob-encoded model blob and a
// JSON metadata document. The JSON field names are the wire contract
// for downstream consumers and must not be renamed.
package artifact

// FeatureWeight is one (feature, importance) entry, kept in descending
// importance order.
type FeatureWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// ChurnModelInfo is the metadata sidecar of the churn classifier.
type ChurnModelInfo struct {
	FeatureNames      []string        `json:"feature_names"`
	ModelType         string          `json:"model_type"`
	Accuracy          float64         `json:"accuracy"`
	FeatureImportance []FeatureWeight `json:"feature_importance"`
}

// Performance holds the regression metrics computed on the test fold.
type Performance struct {
	R2Score float64 `json:"r2_score"`
	RMSE    float64 `json:"rmse"`
}

// HouseModelInfo is the metadata sidecar of the house price regressor.
type HouseModelInfo struct {
	ModelType           string             `json:"model_type"`
	Features            []string           `json:"features"`
	FeatureDescriptions map[string]string  `json:"feature_descriptions"`
	Target              string             `json:"target"`
	TargetDescription   string             `json:"target_description"`
	Performance         Performance        `json:"performance"`
	SampleInput         map[string]float64 `json:"sample_input"`
}
