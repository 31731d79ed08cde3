/*
Package sqldataset reads dataset tables from, and writes them to, SQL
databases. Every field is stored in a column with the field's name:
TEXT for categorical fields and REAL for numeric ones, NULL standing for
missing values.

Database specifics are provided by an Adapter, with implementations for
SQLite3 and PostgreSQL in the subpackages.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/dataset"
)

// MaxRowInsertionsPerStatement is the maximum number of rows inserted
// with a single statement by WriteTable. Tables with more rows are
// written with several statements.
const MaxRowInsertionsPerStatement = 10

/*
Adapter represents a connection to a SQL database.

Its DB method returns the database handle statements are run on.

Its ColumnName method takes a field or table name and returns the name
of the column or table representing it, or an error if the name cannot
be used with the database.

Its Placeholder method takes the 1-based position of a statement
parameter and returns its placeholder.
*/
type Adapter interface {
	DB() *sql.DB
	ColumnName(string) (string, error)
	Placeholder(int) string
	Close() error
}

/*
ReadTable takes a context, an Adapter, the name of a database table and
a slice of fields and returns a dataset.Table with every row of the
database table, reading a column per field.
*/
func ReadTable(ctx context.Context, a Adapter, table string, fields []dataset.Field) (*dataset.Table, error) {
	tableName, err := a.ColumnName(table)
	if err != nil {
		return nil, err
	}
	var query bytes.Buffer
	query.WriteString("SELECT ")
	for i, f := range fields {
		c, err := a.ColumnName(f.Name)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	query.WriteString(fmt.Sprintf(` FROM "%s"`, tableName))
	rows, err := a.DB().QueryContext(ctx, query.String())
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	t := dataset.NewTable(fields)
	raw := make([]interface{}, len(fields))
	dest := make([]interface{}, len(fields))
	for i := range raw {
		dest[i] = &raw[i]
	}
	for n := 0; rows.Next(); n++ {
		if err = rows.Scan(dest...); err != nil {
			return nil, errors.Wrapf(err, "scanning row %d of %s", n, table)
		}
		values := make([]interface{}, len(fields))
		for i, f := range fields {
			values[i], err = convert(f, raw[i])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d of %s", n, table)
			}
		}
		if err = t.AppendRow(values); err != nil {
			return nil, err
		}
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	return t, nil
}

/*
WriteTable takes a context, an Adapter, the name of a database table and
a dataset.Table and inserts every row of the dataset table into the
database table, creating it if it does not exist. Rows are inserted in a
single transaction.
*/
func WriteTable(ctx context.Context, a Adapter, table string, t *dataset.Table) error {
	tableName, err := a.ColumnName(table)
	if err != nil {
		return err
	}
	fields := t.Fields()
	columns := make([]string, len(fields))
	var create bytes.Buffer
	create.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (`, tableName))
	for i, f := range fields {
		columns[i], err = a.ColumnName(f.Name)
		if err != nil {
			return err
		}
		if i > 0 {
			create.WriteString(", ")
		}
		kind := "REAL"
		if f.Categorical {
			kind = "TEXT"
		}
		create.WriteString(fmt.Sprintf(`"%s" %s NULL`, columns[i], kind))
	}
	create.WriteString(")")
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting transaction")
	}
	defer tx.Rollback()
	if _, err = tx.ExecContext(ctx, create.String()); err != nil {
		return errors.Wrapf(err, "ensuring table %s exists", table)
	}
	for start := 0; start < t.Len(); start += MaxRowInsertionsPerStatement {
		end := start + MaxRowInsertionsPerStatement
		if end > t.Len() {
			end = t.Len()
		}
		stmt, args := insertStatement(a, tableName, columns, fields, t, start, end)
		if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
			return errors.Wrapf(err, "inserting rows %d to %d", start, end-1)
		}
	}
	return errors.Wrap(tx.Commit(), "committing rows")
}

func insertStatement(a Adapter, table string, columns []string, fields []dataset.Field, t *dataset.Table, start, end int) (string, []interface{}) {
	var stmt bytes.Buffer
	stmt.WriteString(fmt.Sprintf(`INSERT INTO "%s" (`, table))
	for i, c := range columns {
		if i > 0 {
			stmt.WriteString(", ")
		}
		stmt.WriteString(fmt.Sprintf(`"%s"`, c))
	}
	stmt.WriteString(") VALUES ")
	args := make([]interface{}, 0, (end-start)*len(fields))
	for r := start; r < end; r++ {
		if r > start {
			stmt.WriteString(", ")
		}
		stmt.WriteString("(")
		row := t.Row(r)
		for i, f := range fields {
			if i > 0 {
				stmt.WriteString(", ")
			}
			args = append(args, row[f.Name])
			stmt.WriteString(a.Placeholder(len(args)))
		}
		stmt.WriteString(")")
	}
	return stmt.String(), args
}

func convert(f dataset.Field, v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return f.ParseValue(string(v))
	case string:
		return f.ParseValue(v)
	case float64:
		if f.Categorical {
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		}
		return v, nil
	case float32:
		if f.Categorical {
			return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
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
