/*
Package mongosource provides a source.Loader that reads the documents of a
MongoDB collection as the rows of a table.

The fields of the first document, in the order they are stored and
leaving out _id, become the header of the table. Every document must have
all of those fields.
*/
package mongosource

import (
	"context"
	"fmt"
	"time"

	"github.com/pbanos/sapling/source"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	// DefaultCollection is the name of the collection read when none is given
	DefaultCollection = "samples"
	dialTimeout       = 10 * time.Second
)

type loader struct {
	url        string
	collection string
}

/*
NewLoader takes a MongoDB connection URL and a collection name and returns
a source.Loader that reads the collection from the URL's database. If the
collection name is "", DefaultCollection is used.
*/
func NewLoader(url, collection string) source.Loader {
	if collection == "" {
		collection = DefaultCollection
	}
	return &loader{url, collection}
}

func (l *loader) Load(ctx context.Context) (*source.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	session, err := mgo.DialWithTimeout(l.url, timeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %v", err)
	}
	defer session.Close()
	iter := session.DB("").C(l.collection).Find(nil).Sort("_id").Iter()
	table, err := ReadDocuments(ctx, iter)
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", l.collection, err)
	}
	return table, nil
}

/*
Iter is the interface of the mgo iterator used to read documents, so
that documents can be read from any other source as well.
*/
type Iter interface {
	Next(interface{}) bool
	Close() error
}

/*
ReadDocuments takes a context and an Iter and returns the table with the
documents it yields, or an error. The iterator is closed when done.
*/
func ReadDocuments(ctx context.Context, iter Iter) (*source.Table, error) {
	var table *source.Table
	var doc bson.D
	for i := 0; iter.Next(&doc); i++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		if table == nil {
			table = &source.Table{Header: header(doc)}
		}
		row, err := documentRow(table.Header, doc)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("document %d: %v", i, err)
		}
		table.Rows = append(table.Rows, row)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("no documents found")
	}
	return table, nil
}

func header(doc bson.D) []string {
	result := make([]string, 0, len(doc))
	for _, e := range doc {
		if e.Name != "_id" {
			result = append(result, e.Name)
		}
	}
	return result
}

func documentRow(header []string, doc bson.D) ([]interface{}, error) {
	values := doc.Map()
	row := make([]interface{}, 0, len(header))
	for _, name := range header {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("missing field %s", name)
		}
		row = append(row, v)
	}
	return row, nil
}
