/*
Package redissource provides a source.Loader that reads a table stored in
a Redis list: its first element is the CSV header and every other element
a CSV row.
*/
package redissource

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/source"
	"github.com/pbanos/sapling/source/csv"
	"gopkg.in/redis.v5"
)

// DefaultKey is the key of the list read when none is given
const DefaultKey = "samples"

type loader struct {
	url string
	key string
}

/*
NewLoader takes a Redis URL and a key and returns a source.Loader that
reads the list stored at the key. If the key is "", DefaultKey is used.
*/
func NewLoader(url, key string) source.Loader {
	if key == "" {
		key = DefaultKey
	}
	return &loader{url, key}
}

func (l *loader) Load(ctx context.Context) (*source.Table, error) {
	opts, err := redis.ParseURL(l.url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %v", err)
	}
	rc := redis.NewClient(opts)
	defer rc.Close()
	elements, err := rc.LRange(l.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading list %s: %v", l.key, err)
	}
	table, err := ReadList(ctx, elements)
	if err != nil {
		return nil, fmt.Errorf("reading list %s: %v", l.key, err)
	}
	return table, nil
}

/*
ReadList takes a context and the elements of a list, each a CSV record,
and returns the table they hold or an error.
*/
func ReadList(ctx context.Context, elements []string) (*source.Table, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("list is empty or does not exist")
	}
	return csv.ReadTable(ctx, strings.NewReader(strings.Join(elements, "\n")))
}
