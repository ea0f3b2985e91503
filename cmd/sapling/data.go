package main

import (
	"context"
	"fmt"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/attribute/yaml"
	"github.com/pbanos/sapling/config"
	"github.com/pbanos/sapling/dataset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exit codes for each stage of a command run
const (
	exitConfig = iota + 1
	exitLog
	exitValidate
	exitMetadata
	exitInput
	exitDataset
	exitGrow
	exitOutput
)

// stageError is an error that makes the command exit with a given code
type stageError struct {
	code int
	err  error
}

func (se *stageError) Error() string {
	return se.err.Error()
}

func (se *stageError) Unwrap() error {
	return se.err
}

func fail(code int, err error) error {
	return &stageError{code, err}
}

func inputFlags(flags *pflag.FlagSet) {
	flags.StringP("input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL, MongoDB or Redis URL or sample:loan, with the data to use (defaults to STDIN, interpreted as CSV)")
	flags.StringP("metadata", "m", "", "path to a YML file with the label and attributes to use from the input (defaults to the last column as label and the rest as attributes)")
	flags.StringP("table", "t", "", "name of the table, collection or key holding the data in a database input (defaults to samples)")
}

/*
session holds what a command run needs: its configuration and its logger.
*/
type session struct {
	conf *config.Config
	log  *logrus.Entry
}

func newSession(rootConfig *rootCmdConfig, flags *pflag.FlagSet) (*session, error) {
	conf, err := config.Load(rootConfig.configPath, flags)
	if err != nil {
		return nil, fail(exitConfig, err)
	}
	log, err := newLogger(conf.Log, rootConfig.verbose)
	if err != nil {
		return nil, fail(exitLog, err)
	}
	return &session{conf, log}, nil
}

/*
dataset reads the metadata, if any, and the input configured for the
session and returns the dataset and attribute labels built from them.
*/
func (s *session) dataset(ctx context.Context) (*dataset.Dataset, attribute.Labels, error) {
	var md *attribute.Metadata
	if s.conf.Grow.Metadata != "" {
		var err error
		md, err = yaml.ReadMetadataFromFile(s.conf.Grow.Metadata)
		if err != nil {
			return nil, nil, fail(exitMetadata, err)
		}
		s.log.WithField("metadata", s.conf.Grow.Metadata).Debugf("Read metadata with %d attributes to predict %s", len(md.Attributes), md.Label)
	}
	l, description := loader(s.conf.Grow.Input, s.conf.Grow.Table)
	s.log.Debugf("Reading data from %s...", description)
	table, err := l.Load(ctx)
	if err != nil {
		return nil, nil, fail(exitInput, fmt.Errorf("reading data from %s: %v", description, err))
	}
	d, labels, err := table.Dataset(md)
	if err != nil {
		return nil, nil, fail(exitDataset, fmt.Errorf("building dataset: %w", err))
	}
	s.log.WithFields(logrus.Fields{
		"records":    d.Len(),
		"attributes": len(labels),
		"entropy":    d.Entropy(),
	}).Info("Read dataset")
	return d, labels, nil
}

/*
runWithExit takes the root configuration and a command body and returns
a cobra Run function that opens a session and runs the body with it.
Errors are logged through the session logger, or on stderr if the session
could not be opened, and the process exits with the code of the failing
stage.
*/
func runWithExit(rootConfig *rootCmdConfig, f func(*cobra.Command, *session) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		var log logrus.FieldLogger = logrus.New()
		s, err := newSession(rootConfig, cmd.Flags())
		if err == nil {
			log = s.log
			err = f(cmd, s)
		}
		if err == nil {
			return
		}
		code := 1
		if se, ok := err.(*stageError); ok {
			code = se.code
		}
		log.Error(err)
		exit(code)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
