package mkbd

import "regexp"

// TableRole identifies the semantic role of a regulatory form among the
// extracted tables.
type TableRole string

const (
	// FormAssets is the VD5-1 form carrying the asset side of the balance sheet.
	FormAssets TableRole = "vd5-1"
	// FormLiabilities is the VD5-2 form carrying liabilities and equity.
	FormLiabilities TableRole = "vd5-2"
	// FormWorkingCapital is the VD5-9 form where the MKBD chain is computed.
	FormWorkingCapital TableRole = "vd5-9"
	// FormRanking is the VD5-10 concentration (ranking liabilities) form.
	FormRanking TableRole = "vd5-10"
)

// ColumnRole identifies a semantic column inside a form.
type ColumnRole string

const (
	ColBalance          ColumnRole = "balance"
	ColTotal            ColumnRole = "total"
	ColInstrument       ColumnRole = "instrument"
	ColMarketValue      ColumnRole = "market-value"
	ColGroupMarketValue ColumnRole = "group-market-value"
	ColIssuerGroup      ColumnRole = "issuer-group"
)

// RowRole identifies a semantic row of a form. Each role is resolved through
// its RowSpec: preferred regulatory row numbers first, label pattern scan
// second, absence third.
type RowRole string

const (
	RowCurrentAssets  RowRole = "total-current-assets"
	RowLiabilities    RowRole = "total-liabilities"
	RowEquity         RowRole = "total-equity"
	RowRequired       RowRole = "required-mkbd"
	RowRankingTotal   RowRole = "ranking-total"
	RowWorkingCapital RowRole = "working-capital"
	RowAdjusted       RowRole = "adjusted-mkbd"
	RowSurplus        RowRole = "surplus-deficit"
	RowPortfolioTotal RowRole = "portfolio-total"
)

// RowSpec ties a row role to its owning form, its label pattern and the
// regulatory row numbers where recent form versions place it.
//
// Regulatory forms have nominally fixed row numbers per version, but real
// filings shift rows. Trying the expected positions first and falling back to
// a full label scan keeps the locator robust against version drift.
type RowSpec struct {
	Form          TableRole
	Pattern       *regexp.Regexp
	PreferredRows []int // 1-based, tried in order before the scan
	Column        ColumnRole
}

// Config carries the complete location and formula table of one calculation
// run. It replaces what the workflow historically kept as a mutable
// process-wide formula registry: every run now receives its own immutable
// value, so concurrent calculations cannot observe each other's overrides.
type Config struct {
	// ConcentrationRate is the share of equity beyond which a single issuer
	// group attracts a ranking-liabilities charge.
	ConcentrationRate Percent
	// StatutoryMinimum is the floor used for the required MKBD when the
	// filing does not carry one.
	StatutoryMinimum Money
	// HaircutFrom and HaircutTo bound, inclusive and 1-based, the VD5-9
	// rows whose Total column sums into the haircut deduction.
	HaircutFrom, HaircutTo int

	// Forms maps a role to a pattern over normalized table names.
	Forms map[TableRole]*regexp.Regexp
	// Columns maps a role to a pattern over column labels.
	Columns map[ColumnRole]*regexp.Regexp
	// Rows maps a role to its location spec.
	Rows map[RowRole]RowSpec
}

// Overrides carries per-call replacements for entries of the default
// configuration. Zero-valued fields keep the default.
type Overrides struct {
	ConcentrationRate Percent
	StatutoryMinimum  Money
	PreferredRows     map[RowRole][]int
	RowPatterns       map[RowRole]string
}

// DefaultConfig returns the location and formula table of the current VD5
// form generation. The returned value is owned by the caller and safe to
// mutate before use.
func DefaultConfig() *Config {
	return &Config{
		ConcentrationRate: 20,
		StatutoryMinimum:  IDR(25_000_000_000),
		HaircutFrom:       33,
		HaircutTo:         92,

		// Matched against normalized names, so "VD5-10", "vd5_10" and
		// "Formulir 10" all resolve to the ranking form.
		Forms: map[TableRole]*regexp.Regexp{
			FormAssets:         regexp.MustCompile(`vd51($|[^0-9])|formulir1($|[^0-9])`),
			FormLiabilities:    regexp.MustCompile(`vd52($|[^0-9])|formulir2($|[^0-9])`),
			FormWorkingCapital: regexp.MustCompile(`vd59($|[^0-9])|formulir9($|[^0-9])`),
			FormRanking:        regexp.MustCompile(`vd510($|[^0-9])|formulir10($|[^0-9])`),
		},

		Columns: map[ColumnRole]*regexp.Regexp{
			ColBalance:          regexp.MustCompile(`(?i)saldo|balance|nilai akhir`),
			ColTotal:            regexp.MustCompile(`(?i)total|jumlah`),
			ColInstrument:       regexp.MustCompile(`(?i)kode\s*efek|instrument|kode`),
			ColMarketValue:      regexp.MustCompile(`(?i)nilai\s*pasar\s*wajar|market\s*value|nilai\s*pasar`),
			ColGroupMarketValue: regexp.MustCompile(`(?i)nilai.*kelompok|kelompok.*nilai|group.*market|market.*group`),
			ColIssuerGroup:      regexp.MustCompile(`(?i)kelompok\s*usaha|issuer|emiten`),
		},

		Rows: map[RowRole]RowSpec{
			RowCurrentAssets: {
				Form:    FormAssets,
				Pattern: regexp.MustCompile(`(?i)(jumlah|total)\s+ase?t\s+lancar|total\s+current\s+assets`),
				Column:  ColBalance,
			},
			RowLiabilities: {
				Form:    FormLiabilities,
				Pattern: regexp.MustCompile(`(?i)(jumlah|total)\s+(liabilitas|kewajiban)|total\s+liabilit`),
				Column:  ColBalance,
			},
			RowEquity: {
				Form:    FormLiabilities,
				Pattern: regexp.MustCompile(`(?i)(jumlah|total)\s+ekuitas|total\s+equity`),
				Column:  ColBalance,
			},
			RowRequired: {
				Form:          FormWorkingCapital,
				Pattern:       regexp.MustCompile(`(?i)mkbd\s+yang\s+diwajibkan|required\s+mkbd`),
				PreferredRows: []int{103},
				Column:        ColBalance,
			},
			RowRankingTotal: {
				Form:          FormWorkingCapital,
				Pattern:       regexp.MustCompile(`(?i)ranking\s+liabilit|risiko\s+konsentrasi|total\s+portofolio`),
				PreferredRows: []int{12},
				Column:        ColBalance,
			},
			RowWorkingCapital: {
				Form:          FormWorkingCapital,
				Pattern:       regexp.MustCompile(`(?i)modal\s+kerja|working\s+capital`),
				PreferredRows: []int{13, 15, 18, 20},
				Column:        ColBalance,
			},
			RowAdjusted: {
				Form:          FormWorkingCapital,
				Pattern:       regexp.MustCompile(`(?i)modal\s+kerja\s+bersih\s+disesuaikan|adjusted\s+(net\s+)?working\s+capital`),
				PreferredRows: []int{102},
				Column:        ColBalance,
			},
			RowSurplus: {
				Form:          FormWorkingCapital,
				Pattern:       regexp.MustCompile(`(?i)lebih\s*\(?\s*kurang\s*\)?|surplus|defisit|deficit`),
				PreferredRows: []int{104},
				Column:        ColBalance,
			},
			RowPortfolioTotal: {
				Form:    FormRanking,
				Pattern: regexp.MustCompile(`(?i)total\s+portofolio|total\s+portfolio`),
				Column:  ColGroupMarketValue,
			},
		},
	}
}

// With returns a copy of the configuration with the overrides applied.
// The receiver is left untouched.
func (c *Config) With(o Overrides) *Config {
	merged := *c
	merged.Forms = make(map[TableRole]*regexp.Regexp, len(c.Forms))
	for k, v := range c.Forms {
		merged.Forms[k] = v
	}
	merged.Columns = make(map[ColumnRole]*regexp.Regexp, len(c.Columns))
	for k, v := range c.Columns {
		merged.Columns[k] = v
	}
	merged.Rows = make(map[RowRole]RowSpec, len(c.Rows))
	for k, v := range c.Rows {
		merged.Rows[k] = v
	}

	if o.ConcentrationRate != 0 {
		merged.ConcentrationRate = o.ConcentrationRate
	}
	if !o.StatutoryMinimum.IsZero() {
		merged.StatutoryMinimum = o.StatutoryMinimum
	}
	for role, rows := range o.PreferredRows {
		spec := merged.Rows[role]
		spec.PreferredRows = rows
		merged.Rows[role] = spec
	}
	for role, pattern := range o.RowPatterns {
		spec := merged.Rows[role]
		spec.Pattern = regexp.MustCompile("(?i)" + pattern)
		merged.Rows[role] = spec
	}
	return &merged
}

// orDefault resolves a possibly nil caller configuration.
func (c *Config) orDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	return c
}
