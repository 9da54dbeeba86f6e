package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/Commanchae/bci-data-collection/config"
	"github.com/Commanchae/bci-data-collection/export"
	"github.com/Commanchae/bci-data-collection/recorder"
	"github.com/Commanchae/bci-data-collection/stream"
)

func recordCmd(cfgPath, logLevel *string) *cobra.Command {
	var (
		simulate   bool
		iterations int
		duration   float64
		rest       float64
		fields     []string
		labels     []string
		outDir     string
		edfOut     bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Run one acquisition session and export the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(*cfgPath, *logLevel)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				conf.Session.Iterations = iterations
			}
			if cmd.Flags().Changed("duration") {
				conf.Session.DurationSecs = duration
			}
			if cmd.Flags().Changed("rest") {
				conf.Session.RestSecs = rest
			}
			if cmd.Flags().Changed("out") {
				conf.Output.Dir = outDir
			}
			if cmd.Flags().Changed("edf") {
				conf.Output.EDF = edfOut
			}

			meta, err := parseMetadata(fields, labels)
			if err != nil {
				return err
			}

			var resolver stream.Resolver
			if simulate {
				channels := len(conf.Recorder.ChannelLabels)
				if channels == 0 {
					channels = 5
				}
				resolver = stream.NewSimResolver(conf.Recorder.StreamType, channels, conf.Recorder.SamplingFrequency)
			} else {
				resolver = stream.NewTCPResolver(conf.Stream.Endpoints)
			}

			names := make([]string, 0, len(meta))
			for name := range meta {
				names = append(names, name)
			}
			rec := recorder.New(recorder.Config{
				SamplingFrequency: conf.Recorder.SamplingFrequency,
				StreamType:        conf.Recorder.StreamType,
				AdditionalFields:  names,
				Hooks:             consoleHooks(),
			}, stream.NewBinder(resolver))

			err = rec.RunSession(nil, recorder.SessionOptions{
				Iterations: conf.Session.Iterations,
				Duration:   cfg.DurSeconds(conf.Session.DurationSecs),
				Rest:       cfg.DurSeconds(conf.Session.RestSecs),
				Metadata:   meta,
			})
			if errors.Is(err, recorder.ErrNoStream) {
				logrus.Warnf("no %s stream was found", conf.Recorder.StreamType)
				return nil
			}
			if err != nil {
				return err
			}

			dir, err := export.Write(rec.Dataset(), export.Options{
				Dir:               conf.Output.Dir,
				SamplingFrequency: conf.Recorder.SamplingFrequency,
				TrialDuration:     cfg.DurSeconds(conf.Session.DurationSecs),
				ChannelLabels:     conf.Recorder.ChannelLabels,
				EDF:               conf.Output.EDF,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&simulate, "simulate", false, "record from a synthetic stream instead of the bridge")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "number of trials")
	cmd.Flags().Float64Var(&duration, "duration", 0, "capture duration per trial, seconds")
	cmd.Flags().Float64Var(&rest, "rest", 0, "rest interval before each capture, seconds")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "metadata repeated per trial, key=value")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "per-trial metadata, key=v1,v2,... (one value per trial)")
	cmd.Flags().StringVar(&outDir, "out", "", "output root directory")
	cmd.Flags().BoolVar(&edfOut, "edf", true, "also write an EDF file")
	return cmd
}

// consoleHooks drives the stimulus protocol with log lines. Sessions on
// real subjects swap these for audio or visual cues.
func consoleHooks() recorder.Hooks {
	log := logrus.WithField("component", "stimulus")
	return recorder.Hooks{
		SessionStart:  func() { log.Info("session start") },
		SessionEnd:    func() { log.Info("session end") },
		StimulusStart: func() { log.Info("stimulus on") },
		StimulusEnd:   func() { log.Info("stimulus off") },
	}
}

func parseMetadata(fields, labels []string) (map[string]recorder.Field, error) {
	meta := make(map[string]recorder.Field, len(fields)+len(labels))
	for _, kv := range fields {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("bad --field %q, want key=value", kv)
		}
		meta[k] = recorder.Repeated(v)
	}
	for _, kv := range labels {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("bad --label %q, want key=v1,v2,...", kv)
		}
		meta[k] = recorder.PerTrial(strings.Split(v, ",")...)
	}
	return meta, nil
}
