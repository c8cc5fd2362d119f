// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "NETIM"

// unset marks an optional probability that was not configured.
const unset = -1.0

// Config is the resolved CLI configuration.
type Config struct {
	Graph     GraphConfig     `mapstructure:"graph"`
	Algorithm AlgorithmConfig `mapstructure:"algorithm"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Output    OutputConfig    `mapstructure:"output"`
}

// GraphConfig describes the generated network.
type GraphConfig struct {
	Kind     string  `mapstructure:"kind"`
	Nodes    int     `mapstructure:"nodes"`
	P        float64 `mapstructure:"p"`
	Directed bool    `mapstructure:"directed"`
	Weights  string  `mapstructure:"weights"`
	Weight   float64 `mapstructure:"weight"`
}

// AlgorithmConfig holds diffusion and optimizer parameters.
type AlgorithmConfig struct {
	Model   string  `mapstructure:"model"`
	Seed    int64   `mapstructure:"seed"`
	Rounds  int     `mapstructure:"rounds"`
	Workers int     `mapstructure:"workers"`
	K       int     `mapstructure:"k"`
	RRSets  int     `mapstructure:"rr_sets"`
	Epsilon float64 `mapstructure:"epsilon"`
	Ell     float64 `mapstructure:"ell"`
	Beta    float64 `mapstructure:"beta"`
	Gamma   float64 `mapstructure:"gamma"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("graph.kind", "random")
	v.SetDefault("graph.nodes", 100)
	v.SetDefault("graph.p", 0.05)
	v.SetDefault("graph.directed", true)
	v.SetDefault("graph.weights", "wc")
	v.SetDefault("graph.weight", 0.1)

	v.SetDefault("algorithm.model", "IC")
	v.SetDefault("algorithm.seed", 1)
	v.SetDefault("algorithm.rounds", 1000)
	v.SetDefault("algorithm.workers", 1)
	v.SetDefault("algorithm.k", 5)
	v.SetDefault("algorithm.rr_sets", 10000)
	v.SetDefault("algorithm.epsilon", 0.5)
	v.SetDefault("algorithm.ell", 1.0)
	v.SetDefault("algorithm.beta", unset)
	v.SetDefault("algorithm.gamma", unset)

	v.SetDefault("logging.level", "info")
	v.SetDefault("output.format", "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlags maps config keys to flags of fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return errors.Errorf("flag --%s is not defined", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}

	return nil
}

// loadConfig reads the optional dotenv file and the config file (--config,
// else ./netim.yaml when present) and resolves the configuration. Precedence: flags, environment, config file, defaults.
// Variables already present in the environment win over the dotenv file.
func loadConfig(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", envFile)
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configFile)
		}
	} else {
		v.SetConfigName("netim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read ./netim.yaml")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.Graph.Kind = strings.ToLower(strings.TrimSpace(cfg.Graph.Kind))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	return &cfg, nil
}
