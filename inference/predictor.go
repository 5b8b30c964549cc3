package inference

import (
	"mldemo/ensemble"
	"mldemo/linearmodel"
	"mldemo/pkg/errors"
)

// OrderFeatures rearranges a name→value mapping into the exact column
// order recorded at training time. Every required name must be present
// and no extra names are tolerated; silently dropping an unknown key
// would hide a schema drift between caller and model.
func OrderFeatures(op string, values map[string]float64, order []string) ([]float64, error) {
	known := make(map[string]bool, len(order))
	out := make([]float64, len(order))
	for i, name := range order {
		known[name] = true
		v, ok := values[name]
		if !ok {
			return nil, errors.NewMissingFeatureError(op, name)
		}
		out[i] = v
	}
	for name := range values {
		if !known[name] {
			return nil, errors.NewUnexpectedFeatureError(op, name)
		}
	}
	return out, nil
}

// ChurnPrediction is the JSON-shaped result of one churn prediction.
// Field names match the inference output contract.
type ChurnPrediction struct {
	Prediction         int     `json:"prediction"`
	ChurnProbability   float64 `json:"churn_probability"`
	NoChurnProbability float64 `json:"no_churn_probability"`
	RiskLevel          string  `json:"risk_level"`
	PredictionLabel    string  `json:"prediction_label"`
}

// ChurnPredictor applies a loaded churn classifier to named feature
// mappings. Each call is a pure function of (model, features, input).
type ChurnPredictor struct {
	Model    *ensemble.RandomForestClassifier
	Features []string
}

// Predict classifies one customer and derives the risk label.
func (p *ChurnPredictor) Predict(values map[string]float64) (*ChurnPrediction, error) {
	row, err := OrderFeatures("ChurnPredictor.Predict", values, p.Features)
	if err != nil {
		return nil, err
	}

	proba, err := p.Model.PredictProbaOne(row)
	if err != nil {
		return nil, err
	}
	if len(proba) < 2 {
		return nil, errors.NewValueError("ChurnPredictor.Predict", "classifier did not return two class probabilities")
	}

	churnProb := proba[1]
	prediction := 0
	label := "No Churn"
	if churnProb > proba[0] {
		prediction = 1
		label = "Churn"
	}

	return &ChurnPrediction{
		Prediction:         prediction,
		ChurnProbability:   churnProb,
		NoChurnProbability: proba[0],
		RiskLevel:          RiskLevel(churnProb),
		PredictionLabel:    label,
	}, nil
}

// PricePredictor applies a loaded house price regressor to named
// feature mappings.
type PricePredictor struct {
	Model    *linearmodel.LinearRegression
	Features []string
}

// Predict returns the raw predicted price for one house.
func (p *PricePredictor) Predict(values map[string]float64) (float64, error) {
	row, err := OrderFeatures("PricePredictor.Predict", values, p.Features)
	if err != nil {
		return 0, err
	}
	return p.Model.PredictOne(row)
}
