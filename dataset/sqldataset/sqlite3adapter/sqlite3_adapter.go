/*
Package sqlite3adapter provides an implementation of the Adapter
interface in the sqldataset package that works over a SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"
	"strings"

	"github.com/cockroachdb/errors"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/pbanos/fuzzytree/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite3 database %s", path)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty names cannot be used as column or table names")
	}
	if strings.ContainsAny(name, `"`) {
		return "", errors.Newf(`name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
