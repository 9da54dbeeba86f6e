// bci-record runs repeated-trial EEG acquisition sessions over a live
// sensor stream and exports the recorded dataset.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/Commanchae/bci-data-collection/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:          "bci-record",
		Short:        "Repeated-trial EEG acquisition sessions",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override configured log level")
	cmd.AddCommand(recordCmd(&cfgPath, &logLevel))
	cmd.AddCommand(streamsCmd(&cfgPath, &logLevel))
	return cmd
}

func loadConfig(path, levelOverride string) (*cfg.Root, error) {
	conf, err := cfg.Load(path)
	if err != nil {
		return nil, err
	}
	lvl := conf.LogLvl
	if levelOverride != "" {
		lvl = levelOverride
	}
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(parsed)
	return conf, nil
}
