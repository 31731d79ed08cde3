/*
Package mongodataset reads dataset tables from, and writes them to,
MongoDB collections. Every row is a document with a property per field;
missing or null properties stand for missing values.
*/
package mongodataset

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/pbanos/fuzzytree/dataset"
)

// MaxDocumentInsertionsPerBatch is the maximum number of documents
// WriteTable inserts with a single command.
const MaxDocumentInsertionsPerBatch = 100

/*
ReadTable takes a context, a MongoDB session, the name of a collection
in the session's default database and a slice of fields and returns a
dataset.Table with a row per document of the collection.
*/
func ReadTable(ctx context.Context, session *mgo.Session, collection string, fields []dataset.Field) (*dataset.Table, error) {
	projection := bson.M{"_id": 0}
	for _, f := range fields {
		projection[f.Name] = 1
	}
	iter := session.DB("").C(collection).Find(nil).Select(projection).Iter()
	defer iter.Close()
	t := dataset.NewTable(fields)
	var doc bson.M
	for n := 0; iter.Next(&doc); n++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		values := make([]interface{}, len(fields))
		for i, f := range fields {
			v, err := convert(f, doc[f.Name])
			if err != nil {
				return nil, errors.Wrapf(err, "document %d of %s", n, collection)
			}
			values[i] = v
		}
		if err := t.AppendRow(values); err != nil {
			return nil, err
		}
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading collection %s", collection)
	}
	return t, nil
}

/*
WriteTable takes a context, a MongoDB session, the name of a collection
in the session's default database and a dataset.Table and inserts a
document per row of the table into the collection.
*/
func WriteTable(ctx context.Context, session *mgo.Session, collection string, t *dataset.Table) error {
	c := session.DB("").C(collection)
	fields := t.Fields()
	for start := 0; start < t.Len(); start += MaxDocumentInsertionsPerBatch {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		end := start + MaxDocumentInsertionsPerBatch
		if end > t.Len() {
			end = t.Len()
		}
		docs := make([]interface{}, 0, end-start)
		for r := start; r < end; r++ {
			row := t.Row(r)
			doc := make(bson.M, len(fields))
			for _, f := range fields {
				if v := row[f.Name]; v != nil {
					doc[f.Name] = v
				}
			}
			docs = append(docs, doc)
		}
		if err := c.Insert(docs...); err != nil {
			return errors.Wrapf(err, "inserting documents %d to %d", start, end-1)
		}
	}
	return nil
}

func convert(f dataset.Field, v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return f.ParseValue(v)
	case float64:
		if f.Categorical {
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		}
		return v, nil
	case int:
		if f.Categorical {
			return strconv.Itoa(v), nil
		}
		return float64(v), nil
	case int64:
		if f.Categorical {
			return strconv.FormatInt(v, 10), nil
		}
		return float64(v), nil
	case bool:
		if f.Categorical {
			return strconv.FormatBool(v), nil
		}
	}
	return nil, errors.Newf("unsupported value %v of type %T for %s", v, v, f.Name)
}
