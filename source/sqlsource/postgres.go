package sqlsource

import (
	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type pgAdapter struct {
	url string
}

/*
PostgreSQL takes a PostgreSQL database connection URL and returns an
Adapter for it.
*/
func PostgreSQL(url string) Adapter {
	return &pgAdapter{url}
}

func (a *pgAdapter) Driver() string {
	return "postgres"
}

func (a *pgAdapter) DataSourceName() string {
	return a.url
}
