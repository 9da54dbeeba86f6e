// Package config loads the acquisition configuration from YAML and
// BCI_-prefixed environment variables.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Recorder struct {
	SamplingFrequency float64  `mapstructure:"sampling_frequency" yaml:"sampling_frequency"`
	StreamType        string   `mapstructure:"stream_type" yaml:"stream_type"`
	ChannelLabels     []string `mapstructure:"channel_labels" yaml:"channel_labels"`
}

type Stream struct {
	Endpoints          []string `mapstructure:"endpoints" yaml:"endpoints"`
	ResolveTimeoutSecs float64  `mapstructure:"resolve_timeout_seconds" yaml:"resolve_timeout_seconds"`
}

type Session struct {
	Iterations   int     `mapstructure:"iterations" yaml:"iterations"`
	DurationSecs float64 `mapstructure:"duration_seconds" yaml:"duration_seconds"`
	RestSecs     float64 `mapstructure:"rest_seconds" yaml:"rest_seconds"`
}

type Output struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
	EDF bool   `mapstructure:"edf" yaml:"edf"`
}

type Root struct {
	LogLvl   string   `mapstructure:"log_level" yaml:"log_level"`
	Recorder Recorder `mapstructure:"recorder" yaml:"recorder"`
	Stream   Stream   `mapstructure:"stream" yaml:"stream"`
	Session  Session  `mapstructure:"session" yaml:"session"`
	Output   Output   `mapstructure:"output" yaml:"output"`
}

// Load reads configuration from the given file (or, if path is empty,
// from an optional ./config.yaml), applying defaults and BCI_*
// environment overrides.
func Load(path string) (*Root, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("recorder.sampling_frequency", 256.0)
	v.SetDefault("recorder.stream_type", "EEG")
	v.SetDefault("stream.endpoints", []string{"127.0.0.1:16571"})
	v.SetDefault("stream.resolve_timeout_seconds", 4.0)
	v.SetDefault("session.iterations", 10)
	v.SetDefault("session.duration_seconds", 2.0)
	v.SetDefault("session.rest_seconds", 2.0)
	v.SetDefault("output.dir", "outputs")
	v.SetDefault("output.edf", true)

	v.SetEnvPrefix("BCI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
		// A config file is optional; defaults and env cover everything.
		_ = v.ReadInConfig()
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func DurSeconds(n float64) time.Duration { return time.Duration(n * float64(time.Second)) }
