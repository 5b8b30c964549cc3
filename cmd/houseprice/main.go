// Command houseprice trains, demos, and serves one-off predictions for
// the house price regressor.
//
// Usage:
//
//	houseprice [flags] train      synthesize data, fit the regression, save the artifact
//	houseprice [flags] demo       reload the artifact and price the demo houses
//	houseprice [flags] predict    price one house given -features JSON
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mldemo/config"
	"mldemo/pipeline"
	"mldemo/pkg/log"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to yaml config (defaults used when empty)")
		logLevel = flag.String("log-level", "", "log level override (debug, info, warn, error)")
		features = flag.String("features", "", "JSON feature mapping for the predict command")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger := log.WithComponent(log.Setup(level), "houseprice")

	command := flag.Arg(0)
	if command == "" {
		command = "train"
	}

	switch command {
	case "train":
		if _, err := pipeline.TrainHouse(cfg.House, logger); err != nil {
			logger.Error().Err(err).Msg("training failed")
			os.Exit(1)
		}
	case "demo":
		if err := pipeline.RunHouseDemo(cfg.House.ModelPath, cfg.House.InfoPath, logger); err != nil {
			logger.Error().Err(err).Msg("demo failed")
			os.Exit(1)
		}
	case "predict":
		if err := predictOne(cfg, *features); err != nil {
			logger.Error().Err(err).Msg("prediction failed")
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want train, demo, or predict)\n", command)
		os.Exit(2)
	}
}

// predictOne prices a single house from a JSON feature mapping and
// prints the JSON-shaped result to stdout.
func predictOne(cfg config.Config, featuresJSON string) error {
	if featuresJSON == "" {
		return fmt.Errorf("predict requires -features, e.g. -features '{\"bedrooms\":3,\"bathrooms\":2,\"sqft\":1500,\"age\":10}'")
	}

	var values map[string]float64
	if err := json.Unmarshal([]byte(featuresJSON), &values); err != nil {
		return fmt.Errorf("invalid -features JSON: %w", err)
	}

	predictor, _, err := pipeline.LoadPricePredictor(cfg.House.ModelPath, cfg.House.InfoPath)
	if err != nil {
		return err
	}
	price, err := predictor.Predict(values)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(struct {
		Prediction float64 `json:"prediction"`
	}{Prediction: price}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
