package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/buger/jsonparser"
	"github.com/lukehollenback/okexacct/constants"
)

const (
	Name = "≪csv-writer≫"
)

var logger = constants.NewLogger(Name)

//
// Writer flattens the "data" payload of an exchange response, a JSON array of flat objects, into
// CSV. The header row is the sorted union of every key seen; nested values are written as their raw
// JSON text.
//
type Writer struct {
	out  io.Writer
	name string
}

//
// New instantiates a writer that outputs to out. The name is only used in log lines.
//
func New(out io.Writer, name string) *Writer {
	return &Writer{
		out:  out,
		name: name,
	}
}

//
// Write outputs the provided payload and returns the number of data rows written. A payload that is
// a single object is written as one row.
//
func (o *Writer) Write(data []byte) (int, error) {
	rows, err := records(data)
	if err != nil {
		return 0, err
	}

	//
	// Gather the header row.
	//
	seen := make(map[string]bool)
	header := make([]string, 0)

	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	sort.Strings(header)

	//
	// Write the header and every row in turn.
	//
	w := csv.NewWriter(o.out)

	if err := w.Write(header); err != nil {
		return 0, err
	}

	for _, row := range rows {
		line := make([]string, len(header))
		for i, k := range header {
			line[i] = row[k]
		}

		if err := w.Write(line); err != nil {
			return 0, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}

	logger.Printf("Wrote %d rows to %s.", len(rows), o.name)

	return len(rows), nil
}

//
// records turns the payload into one map per object.
//
func records(data []byte) ([]map[string]string, error) {
	_, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	switch dataType {
	case jsonparser.Object:
		row, err := record(data)
		if err != nil {
			return nil, err
		}

		return []map[string]string{row}, nil

	case jsonparser.Array:
		rows := make([]map[string]string, 0)

		var rowErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			if rowErr != nil {
				return
			}

			if dataType != jsonparser.Object {
				rowErr = fmt.Errorf("cannot write a %s element as a CSV row", dataType)
				return
			}

			var row map[string]string
			row, rowErr = record(value)
			rows = append(rows, row)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}

		if rowErr != nil {
			return nil, rowErr
		}

		return rows, nil
	}

	return nil, fmt.Errorf("cannot write a %s payload as CSV", dataType)
}

func record(object []byte) (map[string]string, error) {
	row := make(map[string]string)

	err := jsonparser.ObjectEach(object, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		k := string(key)

		switch dataType {
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return err
			}
			row[k] = s
		case jsonparser.Null:
			row[k] = ""
		default:
			row[k] = string(value)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse row: %w", err)
	}

	return row, nil
}
