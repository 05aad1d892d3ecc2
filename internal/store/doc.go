// Package store runs the extract's two read-only queries: the business-day
// lookup against rkm_calendar and the full read of tech_tools.
//
// Queries go through the Querier interface, which *pgx.Conn satisfies, so the
// logic can be exercised without a live database.
package store
