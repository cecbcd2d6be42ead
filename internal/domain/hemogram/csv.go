package hemogram

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadRows parses a header-driven CSV feed into raw rows. Column order is
// irrelevant; unknown columns are carried through and missing trailing
// fields are tolerated. Value interpretation (absence sentinels, numeric
// coercion) is left to the processor.
func ReadRows(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(RawRow, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
