// Package writer produces the EOD extract file.
//
// File layout (comma-delimited, one record per line):
//   - H,<run timestamp YYYYMMDDHHMMSS>
//   - D,<id>,<name>,<is_open_source>,<developed_by>,<category>,<description>,<status>  (one per tool)
//   - T,<number of D records>
//
// The file is named RKMINFO-<YYYY-MM-DD>.csv and an existing file for the same
// date is overwritten. Both the name and the header timestamp derive from a
// single run time supplied by the caller.
package writer
