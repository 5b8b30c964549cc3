package pipeline

import (
	"github.com/rs/zerolog"
)

// ChurnProfile is a canned customer used by the demo runs.
type ChurnProfile struct {
	Name     string
	Features map[string]float64
}

// ChurnProfiles returns the demo customers, spanning the risk spectrum.
func ChurnProfiles() []ChurnProfile {
	return []ChurnProfile{
		{
			Name: "Loyal Long-term Customer",
			Features: map[string]float64{
				"age": 55, "tenure": 60, "monthly_charges": 70.0, "total_charges": 4200.0,
				"contract_type": 2, "payment_method": 3, "internet_service": 0, "tech_support": 1,
			},
		},
		{
			Name: "New High-Value Customer",
			Features: map[string]float64{
				"age": 30, "tenure": 2, "monthly_charges": 110.0, "total_charges": 220.0,
				"contract_type": 0, "payment_method": 0, "internet_service": 1, "tech_support": 0,
			},
		},
		{
			Name: "Budget-Conscious Customer",
			Features: map[string]float64{
				"age": 40, "tenure": 24, "monthly_charges": 35.0, "total_charges": 840.0,
				"contract_type": 1, "payment_method": 2, "internet_service": 2, "tech_support": 0,
			},
		},
		{
			Name: "Young Professional",
			Features: map[string]float64{
				"age": 28, "tenure": 8, "monthly_charges": 85.0, "total_charges": 680.0,
				"contract_type": 0, "payment_method": 3, "internet_service": 1, "tech_support": 1,
			},
		},
		{
			Name: "Senior Customer",
			Features: map[string]float64{
				"age": 68, "tenure": 48, "monthly_charges": 45.0, "total_charges": 2160.0,
				"contract_type": 2, "payment_method": 2, "internet_service": 0, "tech_support": 1,
			},
		},
	}
}

// HouseProfile is a canned house used by the demo runs.
type HouseProfile struct {
	Name     string
	Features map[string]float64
}

// HouseProfiles returns the demo houses.
func HouseProfiles() []HouseProfile {
	return []HouseProfile{
		{Name: "Small starter home", Features: map[string]float64{"bedrooms": 2, "bathrooms": 1, "sqft": 900, "age": 25}},
		{Name: "Average family home", Features: map[string]float64{"bedrooms": 3, "bathrooms": 2, "sqft": 1500, "age": 10}},
		{Name: "Large luxury home", Features: map[string]float64{"bedrooms": 5, "bathrooms": 3, "sqft": 3500, "age": 5}},
		{Name: "Older compact home", Features: map[string]float64{"bedrooms": 2, "bathrooms": 1, "sqft": 1000, "age": 40}},
		{Name: "New modern home", Features: map[string]float64{"bedrooms": 4, "bathrooms": 3, "sqft": 2500, "age": 2}},
	}
}

// RunChurnDemo reloads the churn artifact and classifies the demo
// customers.
func RunChurnDemo(modelPath, infoPath string, logger zerolog.Logger) error {
	predictor, info, err := LoadChurnPredictor(modelPath, infoPath)
	if err != nil {
		return err
	}
	logger.Info().Str("model_type", info.ModelType).Float64("accuracy", info.Accuracy).Msg("model loaded")

	for _, profile := range ChurnProfiles() {
		result, err := predictor.Predict(profile.Features)
		if err != nil {
			return err
		}
		logger.Info().
			Str("customer", profile.Name).
			Str("prediction", result.PredictionLabel).
			Float64("churn_probability", result.ChurnProbability).
			Str("risk_level", result.RiskLevel).
			Msg("prediction")
	}
	return nil
}

// RunHouseDemo reloads the house price artifact and prices the demo
// houses.
func RunHouseDemo(modelPath, infoPath string, logger zerolog.Logger) error {
	predictor, info, err := LoadPricePredictor(modelPath, infoPath)
	if err != nil {
		return err
	}
	logger.Info().
		Str("model_type", info.ModelType).
		Float64("r2_score", info.Performance.R2Score).
		Float64("rmse", info.Performance.RMSE).
		Msg("model loaded")

	for _, profile := range HouseProfiles() {
		price, err := predictor.Predict(profile.Features)
		if err != nil {
			return err
		}
		logger.Info().
			Str("house", profile.Name).
			Float64("predicted_price", price).
			Msg("prediction")
	}
	return nil
}
