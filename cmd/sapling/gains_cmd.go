package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/dataset"
	"github.com/spf13/cobra"
)

type gainsCmdConfig struct {
	*rootCmdConfig
}

func gainsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "gains",
		Short: "Show the information gain of each attribute of a set of data",
		Long:  `Show the entropy of a set of data and the information gain of splitting it on each of its attributes, marking the attribute a tree would split on first.`,
		Run:   runWithExit(rootConfig, config.run),
	}
	inputFlags(cmd.Flags())
	return cmd
}

func (gcc *gainsCmdConfig) run(cmd *cobra.Command, s *session) error {
	d, labels, err := s.dataset(commandContext(cmd))
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fail(exitGrow, sapling.ErrNoAttributes)
	}
	err = writeGains(cmd.OutOrStdout(), d, labels)
	if err != nil {
		return fail(exitGrow, err)
	}
	return nil
}

func writeGains(w io.Writer, d *dataset.Dataset, labels attribute.Labels) error {
	gains, err := sapling.InformationGains(d)
	if err != nil {
		return err
	}
	best, ok, err := sapling.SelectBestAttribute(d, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Entropy: %.4f (%d records)\n", d.Entropy(), d.Len())
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Information gain", Align: text.AlignRight},
		{Name: "Selected", Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	t.AppendHeader(table.Row{"#", "Attribute", "Information gain", "Selected"})
	for _, g := range gains {
		selected := ""
		if ok && g.Attribute == best {
			selected = "*"
		}
		t.AppendRow(table.Row{g.Attribute, labels[g.Attribute], fmt.Sprintf("%.4f", g.Gain), selected})
	}
	t.Render()
	if !ok {
		fmt.Fprintln(w, "No attribute improves on the entropy of the dataset")
	}
	return nil
}
