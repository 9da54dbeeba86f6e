package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "github.com/Commanchae/bci-data-collection/config"
	"github.com/Commanchae/bci-data-collection/stream"
)

func streamsCmd(cfgPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "streams",
		Short: "Run one discovery pass and list matching streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(*cfgPath, *logLevel)
			if err != nil {
				return err
			}
			resolver := stream.NewTCPResolver(conf.Stream.Endpoints)
			timeout := cfg.DurSeconds(conf.Stream.ResolveTimeoutSecs)
			candidates := resolver.Resolve("type", conf.Recorder.StreamType, timeout)
			if len(candidates) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no %s streams found\n", conf.Recorder.StreamType)
				return nil
			}
			for _, c := range candidates {
				info := c.Info()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d ch\t%.1f Hz\t%s\n",
					info.Name, info.Type, info.ChannelCount, info.SamplingRate, info.Source)
			}
			return nil
		},
	}
}
