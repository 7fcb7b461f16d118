// Package mkbd computes the Modal Kerja Bersih Disesuaikan (Adjusted Net
// Working Capital) regulatory figure for a securities broker from the
// VD5 spreadsheet forms, and writes the corrected figures back into
// those forms.
//
// The core functionalities include:
//   - Form Location: finding the relevant VD5-1/VD5-2/VD5-9/VD5-10 tables
//     among loosely named extracted spreadsheet tables, and locating the
//     regulatory rows and columns inside them despite spacing, casing and
//     abbreviation drift.
//   - Extraction: pulling the base quantities (total current assets, total
//     liabilities, total equity, required MKBD) out of their owning forms.
//   - Concentration Charges: computing the per-issuer-group excess over the
//     20%-of-equity concentration threshold on the VD5-10 ranking form.
//   - Correction: recomputing the dependent working-capital and adjusted
//     capital rows and overwriting them on a private clone of the forms,
//     with an audit record for every overwritten cell.
//
// The engine is a pure in-memory transform: it never raises an error for
// missing or malformed form data, degrading instead to defined defaults so
// that a partially populated filing still yields a best-effort figure. The
// audit trail is the signal; a missing step tells the reviewer which input
// was absent.
//
// This package serves as the foundational logic for the `mkbdc` command-line
// tool.
package mkbd
