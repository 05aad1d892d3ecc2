package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rkm/rkm-eod/internal/model"
)

// Querier is the subset of *pgx.Conn the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	calendarQuery = `
		SELECT daytype
		FROM rkm_calendar
		WHERE calendar_date = $1
	`

	toolsQuery = `
		SELECT id, name, is_open_source, developed_by, category,
		       description, status
		FROM tech_tools
	`
)

// IsBusinessDay looks up date in rkm_calendar. It returns true only when a row
// exists and the first row's daytype is 'B'. Rows beyond the first are ignored.
func IsBusinessDay(ctx context.Context, q Querier, date time.Time) (bool, error) {
	day := model.CalendarDay{
		Date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}

	rows, err := q.Query(ctx, calendarQuery, pgtype.Date{Time: day.Date, Valid: true})
	if err != nil {
		return false, fmt.Errorf("query rkm_calendar: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return false, fmt.Errorf("query rkm_calendar: %w", err)
		}
		return false, nil
	}

	if err := rows.Scan(&day.DayType); err != nil {
		return false, fmt.Errorf("scan rkm_calendar: %w", err)
	}

	rows.Close()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("query rkm_calendar: %w", err)
	}

	return day.IsBusinessDay(), nil
}

// FetchTools returns every tech_tools row in the order the database returns them.
func FetchTools(ctx context.Context, q Querier) ([]model.Tool, error) {
	rows, err := q.Query(ctx, toolsQuery)
	if err != nil {
		return nil, fmt.Errorf("query tech_tools: %w", err)
	}

	tools, err := pgx.CollectRows(rows, scanTool)
	if err != nil {
		return nil, fmt.Errorf("query tech_tools: %w", err)
	}

	return tools, nil
}

func scanTool(row pgx.CollectableRow) (model.Tool, error) {
	var t model.Tool
	err := row.Scan(t.ScanTargets()...)
	return t, err
}
