package mysqlstore

import "strings"

// setClause accumulates column assignments for a partial UPDATE.  Callers
// add one assignment per non-nil input field, so untouched columns never
// appear in the statement.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) set(col string, v any) {
	c.cols = append(c.cols, col+" = ?")
	c.args = append(c.args, v)
}

func (c *setClause) empty() bool { return len(c.cols) == 0 }

// assignments renders the SET body, e.g. "title = ?, status = ?".
func (c *setClause) assignments() string {
	return strings.Join(c.cols, ", ")
}
