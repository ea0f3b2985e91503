/*
Package sqlsource provides source.Loader implementations that read the
rows of a table in an SQL database. Adapters for SQLite3 database files and
PostgreSQL servers are provided.
*/
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/source"
)

// DefaultTable is the name of the table read when none is given
const DefaultTable = "samples"

/*
Adapter is an interface providing what a loader needs to know about a
database engine: the name of its database/sql driver, and how a
data source name is opened with it.
*/
type Adapter interface {
	Driver() string
	DataSourceName() string
}

type loader struct {
	adapter Adapter
	table   string
}

/*
NewLoader takes an Adapter and a table name and returns a source.Loader
that reads every row of the table in the database the adapter points to.
If the table name is "", DefaultTable is used.
*/
func NewLoader(adapter Adapter, table string) source.Loader {
	if table == "" {
		table = DefaultTable
	}
	return &loader{adapter, table}
}

func (l *loader) Load(ctx context.Context) (*source.Table, error) {
	query, err := selectAll(l.table)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(l.adapter.Driver(), l.adapter.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %v", l.adapter.Driver(), err)
	}
	defer db.Close()
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", l.table, err)
	}
	defer rows.Close()
	table, err := ReadRows(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %v", l.table, err)
	}
	return table, nil
}

/*
ReadRows takes a context and the *sql.Rows resulting from a query and
returns a table with the query's columns as header and its rows, or an
error. Byte slices, as returned by some drivers for text columns, are
converted to strings so that values can be compared.
*/
func ReadRows(ctx context.Context, rows *sql.Rows) (*source.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	table := &source.Table{Header: columns}
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		err = rows.Scan(pointers...)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}
	return table, rows.Err()
}

func selectAll(table string) (string, error) {
	if table == "" || strings.ContainsAny(table, `"`) {
		return "", fmt.Errorf(`invalid table name '%s'`, table)
	}
	return fmt.Sprintf(`SELECT * FROM "%s"`, table), nil
}
