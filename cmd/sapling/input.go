package main

import (
	"strings"

	"github.com/pbanos/sapling/source"
	"github.com/pbanos/sapling/source/csv"
	"github.com/pbanos/sapling/source/loan"
	"github.com/pbanos/sapling/source/mongosource"
	"github.com/pbanos/sapling/source/redissource"
	"github.com/pbanos/sapling/source/sqlsource"
)

const loanSample = "sample:loan"

/*
loader takes the input and table settings and returns the source.Loader
that reads them along with a description of the source for logging.
*/
func loader(input, table string) (source.Loader, string) {
	switch {
	case input == "":
		return csv.NewLoader(""), "CSV from STDIN"
	case input == loanSample:
		return loan.NewLoader(), "built-in loan dataset"
	case strings.HasPrefix(input, "postgres://"), strings.HasPrefix(input, "postgresql://"):
		return sqlsource.NewLoader(sqlsource.PostgreSQL(input), table), "PostgreSQL database"
	case strings.HasPrefix(input, "mongodb://"):
		return mongosource.NewLoader(input, table), "MongoDB database"
	case strings.HasPrefix(input, "redis://"):
		return redissource.NewLoader(input, table), "Redis list"
	case strings.HasSuffix(input, ".db"):
		return sqlsource.NewLoader(sqlsource.SQLite3(input), table), "SQLite3 database " + input
	default:
		return csv.NewLoader(input), "CSV file " + input
	}
}
