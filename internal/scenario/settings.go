package scenario

import (
	"errors"
	"fmt"
	"slices"

	"scenario-generator/internal/common"
	"scenario-generator/internal/table"
)

// InputHeader is the first header cell of scenario_settings.csv.
const InputHeader = "input"

// ErrNoInputColumn is returned by Save when no keys were ever recorded.
var ErrNoInputColumn = errors.New("input column is empty, nothing to save")

// MisalignmentError reports a scenario whose keys do not line up with the
// input column. Settings aligns values by position, so such a scenario's
// values end up on the wrong rows or padded with "".
type MisalignmentError struct {
	Scenario string
	// InputLen and ScenarioLen are the row counts of the input column and
	// of the scenario.
	InputLen    int
	ScenarioLen int
	// Row is the first differing position, -1 if only the lengths differ.
	Row         int
	InputKey    string
	ScenarioKey string
}

func (e *MisalignmentError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("scenario %s has %d rows, input column has %d", e.Scenario, e.ScenarioLen, e.InputLen)
	}

	return fmt.Sprintf("scenario %s row %d is %q, input column has %q",
		e.Scenario, e.Row, e.ScenarioKey, e.InputKey)
}

// Settings accumulates the scenario-by-key matrix of scenario_settings.csv.
type Settings struct {
	input    []string
	inputSet bool
	columns  map[string][]string
}

// NewSettings returns an empty Settings.
func NewSettings() *Settings {
	return &Settings{columns: make(map[string][]string)}
}

// SetInputColumn records the row keys. Only the first call has an effect.
func (s *Settings) SetInputColumn(keys []string) {
	if s.inputSet {
		return
	}

	s.input = slices.Clone(keys)
	s.inputSet = true
}

// InputColumn returns the recorded row keys.
func (s *Settings) InputColumn() []string {
	return s.input
}

// AddColumn stores the values of a scenario, replacing any earlier values
// stored under the same name.
func (s *Settings) AddColumn(name string, values []string) {
	s.columns[name] = slices.Clone(values)
}

// Merge stores col's values under name like AddColumn, then checks that
// col's keys match the input column position by position. The values are
// stored even when a *MisalignmentError is returned.
func (s *Settings) Merge(name string, col Column) error {
	s.AddColumn(name, col.Values())

	if !s.inputSet {
		return nil
	}

	keys := col.Keys()
	for i := range min(len(keys), len(s.input)) {
		if keys[i] != s.input[i] {
			return &MisalignmentError{
				Scenario:    name,
				InputLen:    len(s.input),
				ScenarioLen: len(keys),
				Row:         i,
				InputKey:    s.input[i],
				ScenarioKey: keys[i],
			}
		}
	}

	if len(keys) != len(s.input) {
		return &MisalignmentError{
			Scenario:    name,
			InputLen:    len(s.input),
			ScenarioLen: len(keys),
			Row:         -1,
		}
	}

	return nil
}

// Names returns the stored scenario names in lexicographic order.
func (s *Settings) Names() []string {
	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Table renders the header and rows of scenario_settings.csv.
// Missing trailing values render as "".
func (s *Settings) Table() ([]string, [][]string, error) {
	if len(s.input) == 0 {
		return nil, nil, ErrNoInputColumn
	}

	names := s.Names()
	header := append([]string{InputHeader}, names...)

	rows := make([][]string, len(s.input))
	for i, key := range s.input {
		row := make([]string, 0, len(header))
		row = append(row, key)

		for _, name := range names {
			row = append(row, common.AtOrZero(s.columns[name], i))
		}

		rows[i] = row
	}

	return header, rows, nil
}

// Save writes the matrix to path. Nothing is written when the input column
// is empty.
func (s *Settings) Save(path string) error {
	header, rows, err := s.Table()
	if err != nil {
		return err
	}

	return table.WriteFile(path, header, rows)
}
