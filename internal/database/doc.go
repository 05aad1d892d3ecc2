// Package database opens the single PostgreSQL connection an extract run uses.
//
// The connection reads the rkm_calendar and tech_tools tables only; nothing is
// written back. Credentials not present in the config fall through to the
// driver's own sources (PGPASSWORD, ~/.pgpass, pg_service.conf).
package database
