package model

import (
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DayTypeBusiness is the rkm_calendar daytype code for a business day.
const DayTypeBusiness = "B"

// -----------------------------------------------------------------------------
// Calendar
// -----------------------------------------------------------------------------

// CalendarDay is one row of rkm_calendar.
type CalendarDay struct {
	Date    time.Time   // calendar_date (day granularity)
	DayType pgtype.Text // Single-character code, 'B' = business day
}

// IsBusinessDay reports whether the day is flagged with daytype 'B'.
func (d CalendarDay) IsBusinessDay() bool {
	return d.DayType.Valid && d.DayType.String == DayTypeBusiness
}

// -----------------------------------------------------------------------------
// Reference Data
// -----------------------------------------------------------------------------

// ToolColumns lists the tech_tools columns in EOD output order.
var ToolColumns = []string{
	"id",
	"name",
	"is_open_source",
	"developed_by",
	"category",
	"description",
	"status",
}

// Tool is one row of tech_tools. Field order matches ToolColumns.
type Tool struct {
	ID           pgtype.Int8 // id; int2/int4/int8 columns scan into it
	Name         pgtype.Text // Tool name
	IsOpenSource pgtype.Bool // Licensing flag
	DevelopedBy  pgtype.Text // Vendor or team
	Category     pgtype.Text // e.g. "infra", "data"
	Description  pgtype.Text // Free text
	Status       pgtype.Text // e.g. "active", "retired"
}

// ScanTargets returns pointers to the fields in ToolColumns order.
func (t *Tool) ScanTargets() []any {
	return []any{
		&t.ID,
		&t.Name,
		&t.IsOpenSource,
		&t.DevelopedBy,
		&t.Category,
		&t.Description,
		&t.Status,
	}
}

// Fields renders the tool as CSV fields in ToolColumns order.
func (t Tool) Fields() []string {
	return []string{
		formatInt(t.ID),
		formatText(t.Name),
		formatBool(t.IsOpenSource),
		formatText(t.DevelopedBy),
		formatText(t.Category),
		formatText(t.Description),
		formatText(t.Status),
	}
}

func formatInt(n pgtype.Int8) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Int64, 10)
}

func formatBool(b pgtype.Bool) string {
	if !b.Valid {
		return ""
	}
	if b.Bool {
		return "True"
	}
	return "False"
}

func formatText(s pgtype.Text) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
