// Package config loads the pipeline configuration from a yaml file,
// falling back to defaults that reproduce the original demo setups.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"mldemo/pkg/errors"
)

// Pipeline holds the knobs shared by both pipelines.
type Pipeline struct {
	Seed      uint64  `yaml:"seed"`
	Samples   int     `yaml:"samples"`
	TestSize  float64 `yaml:"testSize"`
	SplitSeed uint64  `yaml:"splitSeed"`
	ModelPath string  `yaml:"modelPath"`
	InfoPath  string  `yaml:"infoPath"`
	PlotPath  string  `yaml:"plotPath"`
}

// Forest holds the churn classifier hyperparameters.
type Forest struct {
	Trees           int  `yaml:"trees"`
	MaxDepth        int  `yaml:"maxDepth"`
	MinSamplesSplit int  `yaml:"minSamplesSplit"`
	MinSamplesLeaf  int  `yaml:"minSamplesLeaf"`
	Balanced        bool `yaml:"balanced"`
}

// Churn configures the churn classification pipeline.
type Churn struct {
	Pipeline `yaml:",inline"`
	Forest   Forest `yaml:"forest"`
}

// House configures the house price regression pipeline.
type House struct {
	Pipeline `yaml:",inline"`
}

// Config is the root configuration document.
type Config struct {
	LogLevel string `yaml:"logLevel"`
	Churn    Churn  `yaml:"churn"`
	House    House  `yaml:"house"`
}

// Default returns the configuration both pipelines were originally
// trained with.
func Default() Config {
	return Config{
		LogLevel: "info",
		Churn: Churn{
			Pipeline: Pipeline{
				Seed:      42,
				Samples:   5000,
				TestSize:  0.2,
				SplitSeed: 42,
				ModelPath: "customer_churn_model.gob",
				InfoPath:  "churn_model_info.json",
				PlotPath:  "churn_feature_importance.png",
			},
			Forest: Forest{
				Trees:           100,
				MaxDepth:        10,
				MinSamplesSplit: 5,
				MinSamplesLeaf:  2,
				Balanced:        true,
			},
		},
		House: House{
			Pipeline: Pipeline{
				Seed:      42,
				Samples:   1000,
				TestSize:  0.2,
				SplitSeed: 42,
				ModelPath: "house_price_model.gob",
				InfoPath:  "house_model_info.json",
				PlotPath:  "house_price_predictions.png",
			},
		},
	}
}

// Load reads a config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations no pipeline could train from.
func (c Config) Validate() error {
	for _, p := range []Pipeline{c.Churn.Pipeline, c.House.Pipeline} {
		if p.Samples <= 0 {
			return errors.NewValidationError("samples", "must be positive", p.Samples)
		}
		if p.TestSize <= 0 || p.TestSize >= 1 {
			return errors.NewValidationError("testSize", "must be in (0, 1)", p.TestSize)
		}
		if p.ModelPath == "" || p.InfoPath == "" {
			return errors.NewValidationError("modelPath/infoPath", "must not be empty", "")
		}
	}
	if c.Churn.Forest.Trees <= 0 {
		return errors.NewValidationError("forest.trees", "must be positive", c.Churn.Forest.Trees)
	}
	return nil
}
