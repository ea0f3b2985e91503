package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/config"
	"github.com/pbanos/sapling/tree"
	"github.com/pbanos/sapling/tree/dot"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	grow *config.Grow
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	growConfig := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow an ID3 decision tree from a set of data to predict its label.`,
		Run:   runWithExit(rootConfig, growConfig.run),
	}
	inputFlags(cmd.Flags())
	cmd.Flags().StringP("format", "f", "text", "format in which the grown tree is written: text or dot")
	cmd.Flags().StringP("output", "o", "", "path to a file to which the grown tree will be written (defaults to STDOUT)")
	return cmd
}

func (gcc *growCmdConfig) run(cmd *cobra.Command, s *session) error {
	gcc.grow = s.conf.Grow
	err := gcc.Validate()
	if err != nil {
		return fail(exitValidate, err)
	}
	d, labels, err := s.dataset(commandContext(cmd))
	if err != nil {
		return err
	}
	trace := &sapling.Trace{}
	s.log.Debug("Growing tree...")
	root, err := sapling.New(sapling.LogObserver(s.log)).Grow(d, labels, trace)
	if err != nil {
		return fail(exitGrow, fmt.Errorf("growing the tree: %w", err))
	}
	nodes, leaves := tree.Count(root)
	s.log.WithFields(logrus.Fields{
		"trace":  trace.String(),
		"nodes":  nodes,
		"leaves": leaves,
		"depth":  tree.Depth(root),
	}).Info("Grew tree")
	err = outputTree(s.conf.Grow.Output, s.conf.Grow.Format, root, cmd.OutOrStdout())
	if err != nil {
		return fail(exitOutput, err)
	}
	return nil
}

// Validate checks the grow settings the command was given
func (gcc *growCmdConfig) Validate() error {
	if gcc.grow == nil {
		return fmt.Errorf("grow settings were not loaded")
	}
	switch gcc.grow.Format {
	case "text", "dot":
		return nil
	}
	return fmt.Errorf("unknown format %q, valid formats are text and dot", gcc.grow.Format)
}

func outputTree(outputPath, format string, root tree.Node, stdout io.Writer) error {
	w := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	if format == "dot" {
		return dot.Write(w, root)
	}
	_, err := fmt.Fprint(w, root)
	return err
}
