/*
Package dataset provides the raw tabular data fuzzy sets are built from,
along with readers for several data sources in its subpackages.
*/
package dataset

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

// UndefinedValue is the conventional representation of missing values
// in text sources.
const UndefinedValue = "?"

/*
Field describes a column of a table. Categorical fields hold string
values; the rest hold float64 values. Missing values are nil in both
cases.
*/
type Field struct {
	Name        string
	Categorical bool
}

/*
Table is an in-memory collection of observations, stored by column.
*/
type Table struct {
	fields  []Field
	columns map[string][]interface{}
	rows    int
}

// NewTable takes the fields of a table and returns an empty table with
// them.
func NewTable(fields []Field) *Table {
	t := &Table{
		fields:  append([]Field(nil), fields...),
		columns: make(map[string][]interface{}),
	}
	for _, f := range fields {
		t.columns[f.Name] = nil
	}
	return t
}

/*
AppendRow takes the values of an observation in field order and adds it
to the table. Values must be nil, strings for categorical fields or
float64 for numeric ones.
*/
func (t *Table) AppendRow(values []interface{}) error {
	if len(values) != len(t.fields) {
		return errors.Wrapf(fuzzy.ErrLengthMismatch, "row with %d values for a table with %d fields", len(values), len(t.fields))
	}
	for i, f := range t.fields {
		if err := f.check(values[i]); err != nil {
			return errors.Wrapf(err, "row %d", t.rows)
		}
	}
	for i, f := range t.fields {
		t.columns[f.Name] = append(t.columns[f.Name], values[i])
	}
	t.rows++
	return nil
}

/*
Append takes an observation as a map of field names to values and adds
it to the table. Fields missing from the map are set to nil.
*/
func (t *Table) Append(row map[string]interface{}) error {
	values := make([]interface{}, len(t.fields))
	for i, f := range t.fields {
		values[i] = row[f.Name]
	}
	return t.AppendRow(values)
}

// Fields returns the fields of the table.
func (t *Table) Fields() []Field {
	return append([]Field(nil), t.fields...)
}

// Len returns the number of observations of the table.
func (t *Table) Len() int {
	return t.rows
}

// Row returns the i-th observation of the table as a map of field names
// to values.
func (t *Table) Row(i int) map[string]interface{} {
	result := make(map[string]interface{}, len(t.fields))
	for _, f := range t.fields {
		result[f.Name] = t.columns[f.Name][i]
	}
	return result
}

/*
Column takes a field name and returns its values for every observation,
or an ErrUnknownAttribute error if the table has no such field.
*/
func (t *Table) Column(name string) ([]interface{}, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, errors.Wrapf(fuzzy.ErrUnknownAttribute, "column %q", name)
	}
	return values, nil
}

/*
Floats takes the name of a numeric field and returns its values. It
returns an error if any of them is missing.
*/
func (t *Table) Floats(name string) ([]float64, error) {
	column, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(column))
	for i, v := range column {
		f, ok := v.(float64)
		if !ok {
			return nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "%s has non numeric value %v at row %d", name, v, i)
		}
		result[i] = f
	}
	return result, nil
}

/*
Strings takes a field name and returns its values as strings. Missing
values are returned as empty strings.
*/
func (t *Table) Strings(name string) ([]string, error) {
	column, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(column))
	for i, v := range column {
		switch v := v.(type) {
		case nil:
		case string:
			result[i] = v
		case float64:
			result[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return result, nil
}

func (f Field) check(value interface{}) error {
	switch value.(type) {
	case nil:
		return nil
	case string:
		if f.Categorical {
			return nil
		}
	case float64:
		if !f.Categorical {
			return nil
		}
	}
	return errors.Wrapf(fuzzy.ErrInvalidOperand, "value %v of type %T for field %s", value, value, f.Name)
}

/*
ParseValue takes the textual representation of a value of the field and
returns the value, nil for the undefined value or the empty string.
*/
func (f Field) ParseValue(s string) (interface{}, error) {
	if s == UndefinedValue || s == "" || s == "NA" {
		return nil, nil
	}
	if f.Categorical {
		return s, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "parsing %q as a value of %s", s, f.Name)
	}
	return v, nil
}
