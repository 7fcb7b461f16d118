// Package renderer turns calculation results into markdown reports for the
// terminal dashboard and the audit-trail display.
package renderer

import (
	"github.com/wicaksana/mkbd"
)

// money formats an amount for a report cell, using "-" for zero so the
// tables stay scannable.
func money(m mkbd.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}
