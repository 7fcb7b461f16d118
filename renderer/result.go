package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/wicaksana/mkbd"
)

// ResultMarkdown renders the full calculation report: the audit steps, the
// capital chain and the surplus verdict.
func ResultMarkdown(r *mkbd.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Perhitungan MKBD")
	doc.PlainText(fmt.Sprintf("Modal Kerja Bersih Disesuaikan: %s", r.AdjustedMKBD))
	doc.PlainText(fmt.Sprintf("MKBD yang Diwajibkan: %s", r.RequiredMKBD))
	if r.SurplusDeficit.IsNegative() {
		doc.PlainText(fmt.Sprintf("DEFISIT: %s", r.SurplusDeficit))
	} else {
		doc.PlainText(fmt.Sprintf("Surplus: %s", r.SurplusDeficit.SignedString()))
	}

	doc.H2("Calculation Steps")
	steps := md.TableSet{
		Header: []string{"Step", "Formula", "Value"},
	}
	for _, s := range r.Steps {
		steps.Rows = append(steps.Rows, []string{s.Name, s.Formula, money(s.Value)})
	}
	doc.Table(steps)

	if len(r.Ranking) > 0 {
		doc.H2("Ranking Liabilities")
		doc.PlainText(RankingTable(r.Ranking))
	}

	return doc.String()
}

// RankingTable renders the per-issuer-group concentration detail.
func RankingTable(items []mkbd.RankingItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Header: []string{"Instrument", "Issuer Group", "Market Value", "% of Equity", "Threshold", "Charge"},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			it.Instrument,
			it.IssuerGroup,
			money(it.MarketValue),
			it.OfEquity.String(),
			money(it.Threshold),
			money(it.Charge),
		})
	}
	doc.Table(table)
	return doc.String()
}
