// Command churn trains, demos, and serves one-off predictions for the
// customer churn classifier.
//
// Usage:
//
//	churn [flags] train      synthesize data, fit the forest, save the artifact
//	churn [flags] demo       reload the artifact and classify the demo customers
//	churn [flags] predict    classify one customer given -features JSON
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
	logger := log.WithComponent(log.Setup(level), "churn")

	command := flag.Arg(0)
	if command == "" {
		command = "train"
	}

	switch command {
	case "train":
		if _, err := pipeline.TrainChurn(cfg.Churn, logger); err != nil {
			logger.Error().Err(err).Msg("training failed")
			os.Exit(1)
		}
	case "demo":
		if err := pipeline.RunChurnDemo(cfg.Churn.ModelPath, cfg.Churn.InfoPath, logger); err != nil {
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

// predictOne classifies a single customer from a JSON feature mapping
// and prints the JSON-shaped result to stdout.
func predictOne(cfg config.Config, featuresJSON string) error {
	if featuresJSON == "" {
		return fmt.Errorf("predict requires -features, e.g. -features '{\"age\":25,\"tenure\":3,...}'")
	}

	var values map[string]float64
	if err := json.Unmarshal([]byte(featuresJSON), &values); err != nil {
		return fmt.Errorf("invalid -features JSON: %w", err)
	}

	predictor, _, err := pipeline.LoadChurnPredictor(cfg.Churn.ModelPath, cfg.Churn.InfoPath)
	if err != nil {
		return err
	}
	result, err := predictor.Predict(values)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
