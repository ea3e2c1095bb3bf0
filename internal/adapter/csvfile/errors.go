package csvfile

import "fmt"

// SchemaError reports a required column missing from the header row.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("storm data header missing column %q", e.Column)
}

// ParseError reports a malformed data row: a wrong field count or a
// non-numeric value in a numeric column.
type ParseError struct {
	Line   int    // 1-based line in the CSV, header included
	Column string // column name, empty for structural errors
	Value  string // offending raw value
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("storm data line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("storm data line %d: column %s: cannot parse %q as a number", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
