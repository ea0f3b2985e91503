package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose    bool
	configPath string
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		cancel()
	}()
	err := cliParser().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sapling",
		Short: "sapling is a tool to grow ID3 decision trees",
		Long:  `A tool to grow ID3 decision trees from tabular data with discrete attributes, and inspect the information gain of each attribute`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log at debug level, including the information gain of every attribute considered")
	rootCmd.PersistentFlags().StringVarP(&(config.configPath), "config", "c", "", "path to a configuration file (TOML, YAML or JSON) with log and grow sections")
	rootCmd.AddCommand(versionCmd(), growCmd(config), gainsCmd(config))
	return rootCmd
}
