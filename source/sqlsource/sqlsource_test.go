package sqlsource

import (
	"context"
	"database/sql"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/source/loan"
	"github.com/stretchr/testify/require"
)

func loanDatabase(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "sapling-sql")
	require.NoError(t, err)
	path := filepath.Join(dir, "loan.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`CREATE TABLE samples (age INTEGER, job INTEGER, house INTEGER, credit INTEGER, approved TEXT)`)
	require.NoError(t, err)
	for _, r := range loan.Records() {
		_, err = db.Exec(`INSERT INTO samples VALUES (?, ?, ?, ?, ?)`, r...)
		require.NoError(t, err)
	}
	return path, func() { os.RemoveAll(dir) }
}

func TestSQLite3Loader(t *testing.T) {
	path, cleanup := loanDatabase(t)
	defer cleanup()

	table, err := NewLoader(SQLite3(path), "").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"age", "job", "house", "credit", "approved"}, table.Header)
	require.Len(t, table.Rows, 15)
	require.Equal(t, "yes", table.Rows[2][4])

	d, labels, err := table.Dataset(nil)
	require.NoError(t, err)
	trace := &sapling.Trace{}
	_, err = sapling.Grow(d, labels, trace)
	require.NoError(t, err)
	require.Equal(t, []string{"house", "job"}, trace.Attributes())
}

func TestSQLite3LoaderErrors(t *testing.T) {
	path, cleanup := loanDatabase(t)
	defer cleanup()

	_, err := NewLoader(SQLite3(path), "missing").Load(context.Background())
	require.Error(t, err)

	_, err = NewLoader(SQLite3(path), `sam"ples`).Load(context.Background())
	require.Error(t, err)
}

func TestAdapters(t *testing.T) {
	require.Equal(t, "sqlite3", SQLite3("a.db").Driver())
	require.Equal(t, "a.db", SQLite3("a.db").DataSourceName())
	url := "postgres://localhost/loans?sslmode=disable"
	require.Equal(t, "postgres", PostgreSQL(url).Driver())
	require.Equal(t, url, PostgreSQL(url).DataSourceName())
}

func TestPostgreSQLLoader(t *testing.T) {
	url := os.Getenv("SAPLING_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("SAPLING_TEST_POSTGRES_URL not set")
	}
	table, err := NewLoader(PostgreSQL(url), "").Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, table.Header)
}
