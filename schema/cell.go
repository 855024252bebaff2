package schema

import (
	"encoding/json"
	"strings"
)

// Cell is a single spreadsheet cell kept as text. The raw exports mix
// numbers, strings and nulls in the same column; every cell is carried as
// text and the pipeline owns all numeric coercion.
type Cell string

func (c Cell) String() string {
	return string(c)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cell(s)
		return nil
	}

	// numbers and booleans keep their literal form
	*c = Cell(strings.TrimSpace(string(data)))
	return nil
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}
