// Package model defines the records read by an extract run.
//
// Types mirror the read-only tables the extract depends on:
//   - rkm_calendar(calendar_date DATE, daytype CHAR)
//   - tech_tools(id, name, is_open_source, developed_by, category, description, status)
//
// Conventions:
//   - Nullable columns use pgtype values; NULL renders as an empty CSV field
//   - Booleans render as True/False in the EOD file
package model
