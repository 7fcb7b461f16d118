package mkbd

import "fmt"

// Step is one line of the calculation audit trail. Reviewers use the trail
// to tell a degraded calculation (a missing source form shows up as a
// defaulted step) from a complete one.
type Step struct {
	Name    string `json:"name"`
	Source  string `json:"source,omitempty"` // table the value came from, empty when defaulted
	Formula string `json:"formula"`
	Value   Money  `json:"value"`
}

// BaseValues are the four quantities extracted from the filing before any
// derived figure is computed. Immutable once produced.
type BaseValues struct {
	CurrentAssets Money `json:"totalCurrentAssets"`
	Liabilities   Money `json:"totalLiabilities"`
	Equity        Money `json:"totalEquity"`
	RequiredMKBD  Money `json:"requiredMKBD"`
}

// extractBase pulls the base quantities out of their owning forms. Missing
// forms, rows or columns degrade to zero, except the required MKBD which
// degrades to the statutory minimum. One audit step is emitted per quantity.
func (c *Config) extractBase(tables []*Table) (BaseValues, []Step) {
	var base BaseValues
	var steps []Step

	base.CurrentAssets, steps = c.extractQuantity(tables, RowCurrentAssets, "TOTAL_CURRENT_ASSETS", IDR(0), steps)
	base.Liabilities, steps = c.extractQuantity(tables, RowLiabilities, "TOTAL_LIABILITIES", IDR(0), steps)
	base.Equity, steps = c.extractQuantity(tables, RowEquity, "TOTAL_EQUITY", IDR(0), steps)
	base.RequiredMKBD, steps = c.extractQuantity(tables, RowRequired, "REQUIRED_MKBD", c.StatutoryMinimum, steps)

	return base, steps
}

// extractQuantity resolves one base quantity: owning form, labeled row,
// value column (with last-parseable-cell fallback), parsed amount.
func (c *Config) extractQuantity(tables []*Table, role RowRole, name string, deflt Money, steps []Step) (Money, []Step) {
	spec := c.Rows[role]

	form, ok := c.FindTable(tables, spec.Form)
	if !ok {
		return deflt, append(steps, Step{
			Name:    name,
			Formula: fmt.Sprintf("form %s not found, defaulting to %s", spec.Form, deflt),
			Value:   deflt,
		})
	}

	pos, ok := c.findRoleRow(form, role)
	if !ok {
		return deflt, append(steps, Step{
			Name:    name,
			Source:  form.Name,
			Formula: fmt.Sprintf("row %q not found in %s, defaulting to %s", spec.Pattern, form.Name, deflt),
			Value:   deflt,
		})
	}

	value, ok := c.rowValue(form, pos, spec.Column)
	if !ok {
		value = deflt
	}
	return value, append(steps, Step{
		Name:    name,
		Source:  form.Name,
		Formula: fmt.Sprintf("%s (%s)", name, describeRow(form, pos)),
		Value:   value,
	})
}
