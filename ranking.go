package mkbd

import (
	"fmt"
	"strings"
)

// RankingItem is the concentration charge computed for one eligible row of
// the VD5-10 ranking form.
type RankingItem struct {
	Instrument  string  `json:"instrument"`
	IssuerGroup string  `json:"issuerGroup,omitempty"`
	MarketValue Money   `json:"marketValue"`
	Threshold   Money   `json:"threshold"`
	Charge      Money   `json:"charge"`
	OfEquity    Percent `json:"ofEquity"`
	Formula     string  `json:"formula"`
}

// placeholderInstrument reports whether an instrument code denotes the
// catch-all bucket of the form ("other" rows carry no issuer identity and
// are excluded from concentration).
func placeholderInstrument(code string) bool {
	lower := strings.ToLower(code)
	return strings.Contains(lower, "other") || strings.Contains(lower, "lain")
}

// rankingPass computes the per-issuer-group excess-concentration charges on
// the ranking form.
//
// The threshold is ConcentrationRate percent of total equity. Rows whose
// group market value is not positive, and placeholder rows, are skipped. The
// per-item charge is floored at zero: holding less than the threshold never
// earns a credit. When equity itself is not positive the whole pass is
// skipped, the threshold being meaningless.
func (c *Config) rankingPass(tables []*Table, equity Money) ([]RankingItem, Money) {
	total := IDR(0)
	if !equity.IsPositive() {
		return nil, total
	}

	form, ok := c.FindTable(tables, FormRanking)
	if !ok {
		return nil, total
	}

	threshold := equity.Percent(c.ConcentrationRate)

	instCol, _ := c.FindColumn(form, ColInstrument)
	groupValCol, hasGroupVal := c.FindColumn(form, ColGroupMarketValue)
	valCol, hasVal := c.FindColumn(form, ColMarketValue)
	issuerCol, _ := c.FindColumn(form, ColIssuerGroup)

	totalRowPattern := c.Rows[RowPortfolioTotal].Pattern

	var items []RankingItem
	for pos := 1; pos <= len(form.Rows); pos++ {
		code, _ := form.Cell(pos, instCol)
		codeText, _ := code.(string)
		if placeholderInstrument(codeText) {
			continue
		}
		// the form's own total row is a write target, not an instrument
		if totalRowPattern != nil && totalRowPattern.MatchString(rowText(form, pos)) {
			continue
		}

		// the pre-aggregated group value wins over the row's own market value
		var value Money
		found := false
		if hasGroupVal {
			if cell, ok := form.Cell(pos, groupValCol); ok {
				value, found = parseAmountStrict(cell)
			}
		}
		if !found && hasVal {
			if cell, ok := form.Cell(pos, valCol); ok {
				value, found = parseAmountStrict(cell)
			}
		}
		if !found || !value.IsPositive() {
			continue
		}

		charge := value.Sub(threshold)
		if charge.IsNegative() {
			charge = IDR(0)
		}

		issuer, _ := form.Cell(pos, issuerCol)
		issuerText, _ := issuer.(string)

		items = append(items, RankingItem{
			Instrument:  codeText,
			IssuerGroup: issuerText,
			MarketValue: value,
			Threshold:   threshold,
			Charge:      charge,
			OfEquity:    value.PercentOf(equity),
			Formula:     fmt.Sprintf("max(0, %s - %s)", value, threshold),
		})
		total = total.Add(charge)
	}
	return items, total
}
