package mkbd

import (
	"fmt"
	"regexp"
	"strings"
)

// normalizeName lowers a table name and strips everything but letters and
// digits, so "VD5-10", "vd5_10", "vd510" and "Formulir 10" compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindTable returns the first table whose name matches the role's pattern.
// Absence is not an error: a missing form contributes its defaults to the
// calculation instead of failing it.
func (c *Config) FindTable(tables []*Table, role TableRole) (*Table, bool) {
	pattern, ok := c.Forms[role]
	if !ok {
		return nil, false
	}
	for _, t := range tables {
		if pattern.MatchString(normalizeName(t.Name)) {
			return t, true
		}
	}
	return nil, false
}

// FindColumn returns the first column label matching the role's pattern.
// The fallback when nothing matches is the call site's decision: callers
// that can substitute the first column do so explicitly.
func (c *Config) FindColumn(t *Table, role ColumnRole) (string, bool) {
	pattern, ok := c.Columns[role]
	if !ok {
		return "", false
	}
	for _, label := range t.Columns {
		if pattern.MatchString(label) {
			return label, true
		}
	}
	return "", false
}

// rowText concatenates the string cells of a row, in column order, for label
// matching. Numeric cells do not take part in label identity.
func rowText(t *Table, pos int) string {
	if pos < 1 || pos > len(t.Rows) {
		return ""
	}
	row := t.Rows[pos-1]
	var parts []string
	for _, col := range t.Columns {
		if s, ok := row[col].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// FindRow returns the 1-based position of the first row matching the
// pattern. The preferred positions are tried first: if the row sitting at a
// preferred position carries the expected label, it wins immediately. Only
// then does the full scan run. A zero position means no row matched anywhere.
func FindRow(t *Table, pattern *regexp.Regexp, preferred ...int) (int, bool) {
	for _, pos := range preferred {
		if pos >= 1 && pos <= len(t.Rows) && pattern.MatchString(rowText(t, pos)) {
			return pos, true
		}
	}
	for pos := 1; pos <= len(t.Rows); pos++ {
		if pattern.MatchString(rowText(t, pos)) {
			return pos, true
		}
	}
	return 0, false
}

// findRoleRow resolves a row role on its form: preferred positions, then
// label scan.
func (c *Config) findRoleRow(t *Table, role RowRole) (int, bool) {
	spec, ok := c.Rows[role]
	if !ok {
		return 0, false
	}
	return FindRow(t, spec.Pattern, spec.PreferredRows...)
}

// rowValue reads the monetary value of a located row: the preferred value
// column when the form has one, otherwise the last parseable cell of the
// row. The bool reports whether any cell yielded a value.
func (c *Config) rowValue(t *Table, pos int, col ColumnRole) (Money, bool) {
	if label, ok := c.FindColumn(t, col); ok {
		if cell, ok := t.Cell(pos, label); ok {
			if v, ok := parseAmountStrict(cell); ok {
				return v, true
			}
		}
	}
	// fall back on the last parseable cell of the row
	var value Money
	found := false
	for _, label := range t.Columns {
		cell, ok := t.Cell(pos, label)
		if !ok {
			continue
		}
		if v, ok := parseAmountStrict(cell); ok {
			value, found = v, true
		}
	}
	return value, found
}

// describeRow is the short human form of a row used in audit records,
// e.g. "row 102: MODAL KERJA BERSIH DISESUAIKAN".
func describeRow(t *Table, pos int) string {
	text := rowText(t, pos)
	if len(text) > 60 {
		text = text[:60]
	}
	return fmt.Sprintf("row %d: %s", pos, text)
}
