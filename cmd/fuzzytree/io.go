package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"

	"github.com/pbanos/fuzzytree/dataset"
	"github.com/pbanos/fuzzytree/dataset/csv"
	"github.com/pbanos/fuzzytree/dataset/mongodataset"
	"github.com/pbanos/fuzzytree/dataset/sqldataset"
	"github.com/pbanos/fuzzytree/dataset/sqldataset/pgadapter"
	"github.com/pbanos/fuzzytree/dataset/sqldataset/sqlite3adapter"
	"github.com/pbanos/fuzzytree/queue"
	qjson "github.com/pbanos/fuzzytree/queue/json"
	"github.com/pbanos/fuzzytree/queue/redisq"
	"github.com/pbanos/fuzzytree/tree"
	"github.com/pbanos/fuzzytree/tree/json"
	"github.com/pbanos/fuzzytree/tree/redisstore"
)

const (
	inputFlagUsage = "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with the data (defaults to STDIN, interpreted as CSV)"
	tableFlagUsage = "name of the SQL table or MongoDB collection holding the data, when the input is a database"
	treeFlagUsage  = "path to a JSON file with the tree, or a redis://HOST:PORT/NAME URL of a tree kept on redis"
)

type source int

const (
	csvSource source = iota
	sqlite3Source
	postgresSource
	mongoSource
)

func sourceOf(location string) source {
	switch {
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		return postgresSource
	case strings.HasPrefix(location, "mongodb://"):
		return mongoSource
	case strings.HasSuffix(location, ".db"):
		return sqlite3Source
	}
	return csvSource
}

/*
readTable reads the given fields from the data at location: a CSV file
or STDIN, an SQL table or a MongoDB collection.
*/
func (rcc *rootCmdConfig) readTable(ctx context.Context, location, table string, fields []dataset.Field) (*dataset.Table, error) {
	logger := rcc.logger.With(zap.String("input", location))
	switch sourceOf(location) {
	case postgresSource, sqlite3Source:
		a, err := sqlAdapter(location)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		logger.Info("reading SQL table", zap.String("table", table))
		return sqldataset.ReadTable(ctx, a, table, fields)
	case mongoSource:
		session, err := mgo.Dial(location)
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %v", location, err)
		}
		defer session.Close()
		logger.Info("reading MongoDB collection", zap.String("collection", table))
		return mongodataset.ReadTable(ctx, session, table, fields)
	}
	logger.Info("reading CSV")
	return csv.ReadTableFromFilePath(location, fields)
}

// writeTable writes a table onto location, which is interpreted like
// readTable does, an empty location meaning STDOUT.
func (rcc *rootCmdConfig) writeTable(ctx context.Context, location, table string, t *dataset.Table) error {
	logger := rcc.logger.With(zap.String("output", location), zap.Int("rows", t.Len()))
	switch sourceOf(location) {
	case postgresSource, sqlite3Source:
		a, err := sqlAdapter(location)
		if err != nil {
			return err
		}
		defer a.Close()
		logger.Info("writing SQL table", zap.String("table", table))
		return sqldataset.WriteTable(ctx, a, table, t)
	case mongoSource:
		session, err := mgo.Dial(location)
		if err != nil {
			return fmt.Errorf("connecting to %s: %v", location, err)
		}
		defer session.Close()
		logger.Info("writing MongoDB collection", zap.String("collection", table))
		return mongodataset.WriteTable(ctx, session, table, t)
	}
	logger.Info("writing CSV")
	return withOutput(location, func(w io.Writer) error {
		return csv.WriteTable(w, t)
	})
}

func sqlAdapter(location string) (sqldataset.Adapter, error) {
	if sourceOf(location) == sqlite3Source {
		return sqlite3adapter.New(location)
	}
	return pgadapter.New(location)
}

// withOutput calls f with the file at path, created or truncated, or
// with STDOUT if path is empty.
func withOutput(path string, f func(io.Writer) error) error {
	if path == "" {
		return f(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = f(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// redisLocation returns the client and the final path element of a
// redis://HOST:PORT/NAME URL.
func redisLocation(location string) (*redis.Client, string, bool, error) {
	if !strings.HasPrefix(location, "redis://") {
		return nil, "", false, nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, "", true, fmt.Errorf("parsing %s: %v", location, err)
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return nil, "", true, fmt.Errorf("no name given in %s", location)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	return redis.NewClient(opts), name, true, nil
}

func (rcc *rootCmdConfig) treeStore(rc *redis.Client) tree.Store {
	return redisstore.New(rc, rcc.v.GetString("redis-prefix"), json.New(json.NewNodeEncodeDecoder()))
}

// loadTree reads a tree from a JSON file, STDIN if location is empty,
// or from redis.
func (rcc *rootCmdConfig) loadTree(ctx context.Context, location string) (*tree.Tree, error) {
	rc, name, ok, err := redisLocation(location)
	if err != nil {
		return nil, err
	}
	if ok {
		defer rc.Close()
		t, err := rcc.treeStore(rc).Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree %q on redis", name)
		}
		return t, nil
	}
	r := io.Reader(os.Stdin)
	if location != "" {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("reading tree in JSON from %s: %v", location, err)
		}
		defer f.Close()
		r = f
	}
	t, err := json.ReadJSONTree(ctx, json.NewNodeEncodeDecoder(), r)
	if err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %v", location, err)
	}
	return t, nil
}

// saveTree writes a tree as JSON onto a file, STDOUT if location is
// empty, or saves it on redis.
func (rcc *rootCmdConfig) saveTree(ctx context.Context, location string, t *tree.Tree) error {
	rc, name, ok, err := redisLocation(location)
	if err != nil {
		return err
	}
	if ok {
		defer rc.Close()
		return rcc.treeStore(rc).Save(ctx, name, t)
	}
	return withOutput(location, func(w io.Writer) error {
		return json.WriteJSONTree(ctx, t, json.NewNodeEncodeDecoder(), w)
	})
}

// growthQueue returns the queue for the pending nodes of a growth: a
// redis list for redis://HOST:PORT/ID locations, in memory otherwise.
func growthQueue(location string) (queue.Queue, func() error, error) {
	rc, id, ok, err := redisLocation(location)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return queue.New(), func() error { return nil }, nil
	}
	return redisq.New(id, rc, qjson.New()), rc.Close, nil
}
