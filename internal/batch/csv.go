package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/jimang/internal/recommend"
)

// Columns is the required CSV header, in any order.
var Columns = []string{"name", "middle_school", "disposition", "score", "zone", "gender"}

// Row is one student read from a batch file. ParseErr is set when the score
// column could not be parsed; the row is still returned so it can be
// reported in order.
type Row struct {
	Line     int
	Request  recommend.ProfileRequest
	ParseErr error
}

// ReadCSV reads a header row followed by one student per row. Missing
// required columns fail the whole read; bad values fail only their row.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		// Strip a UTF-8 BOM left by spreadsheet exports.
		h = strings.TrimPrefix(h, "\ufeff")
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("read line %d: %w", pe.StartLine, err)
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		get := func(col string) string {
			if i := idx[col]; i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}

		row := Row{
			Line: line,
			Request: recommend.ProfileRequest{
				Name:         get("name"),
				MiddleSchool: get("middle_school"),
				Disposition:  get("disposition"),
				Zone:         get("zone"),
				Gender:       get("gender"),
			},
		}
		row.Request.Score, row.ParseErr = recommend.ParseScore(get("score"))
		rows = append(rows, row)
	}
	return rows, nil
}
