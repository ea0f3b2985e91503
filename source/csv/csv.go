/*
Package csv reads tables from CSV streams. The first row of the stream is
taken as the header with the names of the columns and every following row
as a row of string values.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling/source"
)

/*
ReadTable takes a context and an io.Reader for a CSV stream and returns
the table parsed from it or an error. The context is checked between
rows so that reading a long stream can be cancelled.
*/
func ReadTable(ctx context.Context, reader io.Reader) (*source.Table, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: empty CSV stream")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	table := &source.Table{Header: header}
	for l := 2; ; l++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %v", l, err)
		}
		values := make([]interface{}, 0, len(row))
		for _, v := range row {
			values = append(values, v)
		}
		table.Rows = append(table.Rows, values)
	}
	return table, nil
}

/*
ReadTableFromFilePath takes a context and a filepath string, opens the
file to which the filepath points and uses ReadTable to return the table
in it or an error. If the filepath is "" os.Stdin is read instead.
*/
func ReadTableFromFilePath(ctx context.Context, filepath string) (*source.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading training set: %v", err)
		}
		defer f.Close()
	}
	table, err := ReadTable(ctx, f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return table, err
}

type loader struct {
	filepath string
}

/*
NewLoader takes a filepath string and returns a source.Loader that reads
the CSV file to which it points, or os.Stdin if the filepath is "".
*/
func NewLoader(filepath string) source.Loader {
	return &loader{filepath}
}

func (l *loader) Load(ctx context.Context) (*source.Table, error) {
	return ReadTableFromFilePath(ctx, l.filepath)
}
