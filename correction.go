package mkbd

import "fmt"

// CorrectionRecord is the audit trail of one overwritten cell. The policy is
// a blind overwrite: the computed value replaces whatever the filing carried,
// and the prior value is recorded here for review.
type CorrectionRecord struct {
	Row         int    `json:"row"` // 1-based position in the form
	Description string `json:"description"`
	Column      string `json:"column"`
	Before      any    `json:"before"`
	After       Money  `json:"after"`
	Formula     string `json:"formula"`
}

// derived holds the figures of the MKBD dependency chain computed from the
// base values and the ranking charge.
type derived struct {
	WorkingCapital Money
	HaircutSum     Money
	AdjustedMKBD   Money
	RequiredMKBD   Money
	SurplusDeficit Money
}

// deriveFigures walks the fixed dependency chain without touching any cell:
//
//	workingCapital = currentAssets - liabilities - rankingCharge
//	adjustedMKBD   = workingCapital - haircutSum
//	surplusDeficit = adjustedMKBD - requiredMKBD
//
// The haircut sum and the required MKBD are read from the VD5-9 form when it
// is present; a missing form leaves the haircut at zero and the required
// MKBD at its extracted (possibly statutory) value.
func (c *Config) deriveFigures(tables []*Table, base BaseValues, rankingCharge Money) derived {
	d := derived{
		WorkingCapital: base.CurrentAssets.Sub(base.Liabilities).Sub(rankingCharge),
		RequiredMKBD:   base.RequiredMKBD,
	}

	if form, ok := c.FindTable(tables, FormWorkingCapital); ok {
		d.HaircutSum = c.haircutSum(form)
		if pos, ok := c.findRoleRow(form, RowRequired); ok {
			if v, ok := c.rowValue(form, pos, c.Rows[RowRequired].Column); ok {
				d.RequiredMKBD = v
			}
		}
	}

	d.AdjustedMKBD = d.WorkingCapital.Sub(d.HaircutSum)
	d.SurplusDeficit = d.AdjustedMKBD.Sub(d.RequiredMKBD)
	return d
}

// haircutSum adds up the Total column over the fixed haircut row range of
// the VD5-9 form. Rows beyond the table, and cells that do not parse, count
// as zero.
func (c *Config) haircutSum(form *Table) Money {
	label, ok := c.FindColumn(form, ColTotal)
	if !ok {
		return IDR(0)
	}
	sum := IDR(0)
	for pos := c.HaircutFrom; pos <= c.HaircutTo; pos++ {
		cell, _ := form.Cell(pos, label)
		sum = sum.Add(ParseAmount(cell))
	}
	return sum
}

// corrector accumulates blind overwrites on one cloned form.
type corrector struct {
	cfg     *Config
	form    *Table
	column  string
	written map[string]bool // "row/column" cells already corrected this run
	records []CorrectionRecord
}

// overwrite locates the role's row and replaces its value cell, recording
// the prior value. An unlocatable row is silently skipped: the calculation
// keeps using the computed figure and the audit log simply lacks the record.
func (w *corrector) overwrite(role RowRole, pos int, value Money, formula string) {
	spec := w.cfg.Rows[role]
	target, ok := FindRow(w.form, spec.Pattern, pos)
	if !ok {
		return
	}
	key := fmt.Sprintf("%d/%s", target, w.column)
	if w.written[key] {
		// a pattern fallback already landed on this cell; one record is enough
		return
	}
	w.written[key] = true

	before, _ := w.form.Cell(target, w.column)
	w.form.SetCell(target, w.column, value.AsFloat())
	w.records = append(w.records, CorrectionRecord{
		Row:         target,
		Description: describeRow(w.form, target),
		Column:      w.column,
		Before:      before,
		After:       value,
		Formula:     formula,
	})
}

// correctionPass overwrites the dependent figures on the cloned VD5-9 form
// (and the portfolio total on the cloned VD5-10 form), returning the audit
// records. The tables passed in must already be clones: every write here is
// destructive by design.
func (c *Config) correctionPass(clones []*Table, base BaseValues, rankingCharge Money, d derived) []CorrectionRecord {
	var records []CorrectionRecord

	if form, ok := c.FindTable(clones, FormWorkingCapital); ok {
		column, ok := c.FindColumn(form, ColBalance)
		if !ok {
			// forms without a balance column keep their layout quirks; write
			// into the total column instead
			column, ok = c.FindColumn(form, ColTotal)
		}
		if ok {
			w := &corrector{cfg: c, form: form, column: column, written: map[string]bool{}}

			w.overwrite(RowRankingTotal, 12, rankingCharge,
				"RANKING_LIABILITIES = sum of per-group concentration charges")

			// the four working-capital rows hold the same figure by
			// regulatory definition
			for _, pos := range c.Rows[RowWorkingCapital].PreferredRows {
				w.overwrite(RowWorkingCapital, pos, d.WorkingCapital,
					"MODAL_KERJA = TOTAL_CURRENT_ASSETS - TOTAL_LIABILITIES - RANKING_LIABILITIES")
			}

			w.overwrite(RowAdjusted, 102, d.AdjustedMKBD,
				"MKBD = MODAL_KERJA - HAIRCUT_SUM")
			w.overwrite(RowSurplus, 104, d.SurplusDeficit,
				"SURPLUS_DEFICIT = MKBD - REQUIRED_MKBD")

			records = append(records, w.records...)
		}
	}

	if form, ok := c.FindTable(clones, FormRanking); ok {
		column, ok := c.FindColumn(form, ColGroupMarketValue)
		if !ok {
			column, ok = c.FindColumn(form, ColMarketValue)
		}
		if ok {
			w := &corrector{cfg: c, form: form, column: column, written: map[string]bool{}}
			w.overwrite(RowPortfolioTotal, 0, rankingCharge,
				"TOTAL_PORTOFOLIO = sum of per-group concentration charges")
			records = append(records, w.records...)
		}
	}

	return records
}
