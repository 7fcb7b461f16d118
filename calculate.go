package mkbd

import "fmt"

// Result is the complete outcome of one MKBD calculation run: the extracted
// base values, the concentration detail, the derived capital chain, the
// ordered audit steps and, when corrections were applied, the audit trail of
// every overwritten cell. A Result is immutable and owned by the caller.
type Result struct {
	Base BaseValues `json:"base"`

	TotalRankingLiabilities Money `json:"totalRankingLiabilities"`
	WorkingCapital          Money `json:"workingCapital"`
	HaircutSum              Money `json:"haircutSum"`
	AdjustedMKBD            Money `json:"adjustedMKBD"`
	RequiredMKBD            Money `json:"requiredMKBD"`
	SurplusDeficit          Money `json:"surplusDeficit"`

	Steps       []Step             `json:"steps"`
	Ranking     []RankingItem      `json:"ranking,omitempty"`
	Corrections []CorrectionRecord `json:"corrections,omitempty"`
}

// Calculate runs the extraction, ranking and derivation passes over the
// given tables and assembles the result. It is a pure function: the same
// tables and configuration always yield the same result, and the tables are
// never mutated. A nil configuration means DefaultConfig.
func Calculate(tables []*Table, cfg *Config) *Result {
	c := cfg.orDefault()

	base, steps := c.extractBase(tables)
	ranking, charge := c.rankingPass(tables, base.Equity)
	d := c.deriveFigures(tables, base, charge)

	steps = append(steps,
		Step{
			Name:    "RANKING_LIABILITIES",
			Formula: fmt.Sprintf("sum of concentration charges over %d groups", len(ranking)),
			Value:   charge,
		},
		Step{
			Name:    "MODAL_KERJA",
			Formula: "TOTAL_CURRENT_ASSETS - TOTAL_LIABILITIES - RANKING_LIABILITIES",
			Value:   d.WorkingCapital,
		},
		Step{
			Name:    "HAIRCUT_SUM",
			Formula: fmt.Sprintf("sum of haircut rows %d..%d", c.HaircutFrom, c.HaircutTo),
			Value:   d.HaircutSum,
		},
		Step{
			Name:    "MKBD",
			Formula: "MODAL_KERJA - HAIRCUT_SUM",
			Value:   d.AdjustedMKBD,
		},
		Step{
			Name:    "SURPLUS_DEFICIT",
			Formula: "MKBD - REQUIRED_MKBD",
			Value:   d.SurplusDeficit,
		},
	)

	return &Result{
		Base:                    base,
		TotalRankingLiabilities: charge,
		WorkingCapital:          d.WorkingCapital,
		HaircutSum:              d.HaircutSum,
		AdjustedMKBD:            d.AdjustedMKBD,
		RequiredMKBD:            d.RequiredMKBD,
		SurplusDeficit:          d.SurplusDeficit,
		Steps:                   steps,
		Ranking:                 ranking,
	}
}

// ApplyCorrections runs the full calculation and then overwrites the
// dependent figures on private clones of the tables, returning the corrected
// clones and the result carrying the correction audit trail.
//
// The returned tables are the authoritative input for any downstream export:
// the raw uploaded values of the corrected cells are superseded. The
// caller's tables are never touched, and applying corrections twice to the
// same original input yields identical clones and an identical trail.
func ApplyCorrections(tables []*Table, cfg *Config) ([]*Table, *Result) {
	c := cfg.orDefault()

	result := Calculate(tables, c)
	clones := cloneTables(tables)
	result.Corrections = c.correctionPass(clones, result.Base, result.TotalRankingLiabilities, derived{
		WorkingCapital: result.WorkingCapital,
		HaircutSum:     result.HaircutSum,
		AdjustedMKBD:   result.AdjustedMKBD,
		RequiredMKBD:   result.RequiredMKBD,
		SurplusDeficit: result.SurplusDeficit,
	})
	return clones, result
}

// MarshalJSON keeps the result fields in calculation order in the export
// payload consumed by the dashboard.
func (r *Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("base", r.Base)
	w.Append("totalRankingLiabilities", r.TotalRankingLiabilities)
	w.Append("workingCapital", r.WorkingCapital)
	w.Append("haircutSum", r.HaircutSum)
	w.Append("adjustedMKBD", r.AdjustedMKBD)
	w.Append("requiredMKBD", r.RequiredMKBD)
	w.Append("surplusDeficit", r.SurplusDeficit)
	w.Append("steps", r.Steps)
	w.Optional("ranking", r.Ranking)
	w.Optional("corrections", r.Corrections)
	return w.MarshalJSON()
}
