// Package htmlgrid converts HTML documents into structured, styled
// spreadsheet workbooks. It parses markup into a tolerant tree, resolves
// table span geometry into dense grids, flattens block content into
// ordered records, and composes an abstract multi-sheet workbook model
// that a spreadsheet writer turns into an output file.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/,
// excelize/, sqlite/).
package htmlgrid
