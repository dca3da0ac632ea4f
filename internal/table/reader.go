package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmpty is returned when a table has no header row.
var ErrEmpty = errors.New("table has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Rows is a whole CSV file, header included.
type Rows struct {
	Records [][]string
	// Lines holds the 1-based line each record starts on. A quoted cell
	// spanning several lines makes it differ from the record position.
	Lines []int
}

// FromRecords wraps records whose source lines are unknown.
func FromRecords(records [][]string) Rows {
	return Rows{Records: records}
}

// Line returns the line record i starts on, or i+1 when it is unknown.
func (r Rows) Line(i int) int {
	if i >= 0 && i < len(r.Lines) {
		return r.Lines[i]
	}

	return i + 1
}

// ReadFile reads every row of the CSV file at path, header included.
func ReadFile(path string) (Rows, error) {
	file, err := os.Open(path)
	if err != nil {
		return Rows{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	rows, err := Read(file)
	if err != nil {
		return Rows{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return rows, nil
}

// Read reads every row from r, header included.
// It returns ErrEmpty if r holds no rows at all.
func Read(r io.Reader) (Rows, error) {
	br := bufio.NewReader(r)

	// Spreadsheet exports often start with a BOM; it must not leak into the first cell.
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows Rows

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Rows{}, fmt.Errorf("parsing csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rows.Records = append(rows.Records, record)
		rows.Lines = append(rows.Lines, line)
	}

	if len(rows.Records) == 0 {
		return Rows{}, ErrEmpty
	}

	return rows, nil
}
