package mkbd

// Row is one record of an extracted spreadsheet table, mapping a column
// label to a cell value. A cell is a number, a string, or absent.
type Row map[string]any

// Table is one labeled table produced by the spreadsheet ingestion step.
//
// Columns is ordered and its labels are unique within the table. Row order
// is significant: the position of a row (1-based) encodes the regulatory row
// number of the form, which the locator uses as an extraction hint.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Clone returns a deep copy of the table. The correction pass only ever
// writes into clones, so caller-owned tables stay logically immutable.
func (t *Table) Clone() *Table {
	c := &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		nr := make(Row, len(row))
		for k, v := range row {
			nr[k] = v
		}
		c.Rows[i] = nr
	}
	return c
}

// cloneTables deep-copies a whole table set.
func cloneTables(tables []*Table) []*Table {
	clones := make([]*Table, len(tables))
	for i, t := range tables {
		clones[i] = t.Clone()
	}
	return clones
}

// Cell returns the value at the given 1-based row position and column label.
// A position or label outside the table yields an absent cell (nil, false).
func (t *Table) Cell(pos int, column string) (any, bool) {
	if pos < 1 || pos > len(t.Rows) {
		return nil, false
	}
	v, ok := t.Rows[pos-1][column]
	return v, ok
}

// SetCell writes a value at the given 1-based row position and column label.
// Writes outside the table are ignored.
func (t *Table) SetCell(pos int, column string, value any) {
	if pos < 1 || pos > len(t.Rows) {
		return
	}
	if t.Rows[pos-1] == nil {
		t.Rows[pos-1] = Row{}
	}
	t.Rows[pos-1][column] = value
}
