package sqlsource

import (
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type sqlite3Adapter struct {
	path string
}

/*
SQLite3 takes a path to an SQLite3 database file and returns an Adapter
for it.
*/
func SQLite3(path string) Adapter {
	return &sqlite3Adapter{path}
}

func (a *sqlite3Adapter) Driver() string {
	return "sqlite3"
}

func (a *sqlite3Adapter) DataSourceName() string {
	return a.path
}
