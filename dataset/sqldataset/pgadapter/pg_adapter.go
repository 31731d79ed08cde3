/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/pbanos/fuzzytree/dataset/sqldataset"
)

// maxIdentifierLength is the length PostgreSQL truncates identifiers to.
const maxIdentifierLength = 63

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "opening postgres database")
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
	if len(name) > maxIdentifierLength {
		return "", errors.Newf("name '%s' is longer than %d bytes", name, maxIdentifierLength)
	}
	return name, nil
}

func (a *adapter) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

func (a *adapter) Close() error {
	return a.db.Close()
}
