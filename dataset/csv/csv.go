/*
Package csv reads dataset tables from CSV streams and writes tables and
fuzzy variables back as CSV.
*/
package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/dataset"
	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
Writer is an interface for a CSV destination rows can be written to.
*/
type Writer interface {
	// Write takes the values of a row in field order and writes it.
	Write([]interface{}) error
	// Count returns the total number of rows written to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count  int
	fields []dataset.Field
	w      *csv.Writer
}

/*
ReadTable takes an io.Reader for a CSV stream and a slice of fields and
returns a dataset.Table with the rows parsed from the reader or an error.

The header or first row of the CSV content must name every field in the
given slice, in any order. Columns not naming a field are ignored. The
rest of the rows should consist of valid values for all the fields,
with '?', 'NA' or the empty string indicating an undefined value.
*/
func ReadTable(reader io.Reader, fields []dataset.Field) (*dataset.Table, error) {
	t := dataset.NewTable(fields)
	err := ReadTableByRow(reader, fields, func(_ int, row []interface{}) (bool, error) {
		return true, t.AppendRow(row)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

/*
ReadTableByRow takes an io.Reader for a CSV stream, a slice of fields and a
lambda function on an integer and the values of a row in field order that
returns a boolean value. It parses the rows from the reader and for each
it calls the lambda function with the row index and its values. If the
lambda function returns true, it will continue processing the next row,
otherwise it will stop. An error is returned if something goes wrong when
reading the stream or parsing a row.
*/
func ReadTableByRow(reader io.Reader, fields []dataset.Field, lambda func(int, []interface{}) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return errors.Wrap(err, "reading header")
	}
	columns, err := parseColumnsFromCSVHeader(header, fields)
	if err != nil {
		return err
	}
	for l := 2; ; l++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "reading body")
		}
		row, err := parseRowFromCSVRecord(record, columns, fields)
		if err != nil {
			return errors.Wrapf(err, "parsing line %d", l)
		}
		ok, err := lambda(l-2, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadTableFromFilePath takes a filepath string and a slice of fields, opens
the file to which the filepath points to and uses ReadTable to return a
dataset.Table or an error read from it. If the filepath is "" os.Stdin is
read instead.
*/
func ReadTableFromFilePath(filepath string, fields []dataset.Field) (*dataset.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, errors.Wrap(err, "reading data set")
		}
		defer f.Close()
	}
	t, err := ReadTable(f, fields)
	if err != nil {
		err = errors.Wrapf(err, "parsing CSV file %s", filepath)
	}
	return t, err
}

/*
NewWriter takes an io.Writer and a slice of fields and returns a Writer
that will write rows on the io.Writer, after a header with the field
names.
*/
func NewWriter(writer io.Writer, fields []dataset.Field) (Writer, error) {
	w := csv.NewWriter(writer)
	record := make([]string, len(fields))
	for i, f := range fields {
		record[i] = f.Name
	}
	err := w.Write(record)
	if err != nil {
		return nil, errors.Wrap(err, "writing CSV header")
	}
	return &csvWriter{fields: fields, w: w}, nil
}

/*
WriteTable takes a writer and a dataset.Table and dumps the table to the
writer in CSV format, with '?' for undefined values.
*/
func WriteTable(writer io.Writer, t *dataset.Table) error {
	fields := t.Fields()
	cw, err := NewWriter(writer, fields)
	if err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		values := make([]interface{}, len(fields))
		for j, f := range fields {
			values[j] = row[f.Name]
		}
		if err = cw.Write(values); err != nil {
			return err
		}
	}
	return cw.Flush()
}

/*
WriteVariable takes a writer and a fuzzy variable and writes a CSV
document with a row per observation: its index followed by its degree
of membership to every term of the variable.
*/
func WriteVariable(writer io.Writer, fv *fuzzy.Variable) error {
	w := csv.NewWriter(writer)
	terms := fv.Terms()
	record := append([]string{"observation"}, terms...)
	if err := w.Write(record); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for i := 0; i < fv.Len(); i++ {
		record[0] = strconv.Itoa(i)
		for j, d := range fv.Value(i).Degrees() {
			record[j+1] = strconv.FormatFloat(d, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "writing CSV row for observation %d", i)
		}
	}
	w.Flush()
	return w.Error()
}

func parseColumnsFromCSVHeader(header []string, fields []dataset.Field) ([]int, error) {
	positions := make(map[string]int)
	for i, name := range header {
		positions[name] = i
	}
	columns := make([]int, len(fields))
	for i, f := range fields {
		p, ok := positions[f.Name]
		if !ok {
			return nil, errors.Wrapf(fuzzy.ErrUnknownAttribute, "parsing header: missing column for %s", f.Name)
		}
		columns[i] = p
	}
	return columns, nil
}

func parseRowFromCSVRecord(record []string, columns []int, fields []dataset.Field) ([]interface{}, error) {
	row := make([]interface{}, len(fields))
	for i, f := range fields {
		if columns[i] >= len(record) {
			return nil, errors.Newf("missing value for %s", f.Name)
		}
		v, err := f.ParseValue(record[columns[i]])
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(values []interface{}) error {
	record := make([]string, len(cw.fields))
	for j := range cw.fields {
		switch v := values[j].(type) {
		case nil:
			record[j] = dataset.UndefinedValue
		case float64:
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		case string:
			record[j] = v
		default:
			return errors.Newf("unsupported value %v of type %T for %s", v, v, cw.fields[j].Name)
		}
	}
	err := cw.w.Write(record)
	if err != nil {
		return errors.Wrapf(err, "writing CSV row %d", cw.count+1)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
