// Package period resolves client-supplied date parameters into UTC
// half-open intervals [Begin, End) used by report aggregation.
package period

import (
	"time"

	"github.com/timecraft-lab/backend/pkg/dateutil"
	"github.com/timecraft-lab/backend/pkg/enum"
	"github.com/timecraft-lab/backend/pkg/errorx"
)

// maxRangeDays bounds an explicit date range to keep aggregation
// queries from scanning an unbounded window.
const maxRangeDays = 366

type WeekSelector string

var (
	ThisWeek   = enum.New(WeekSelector("this_week"))
	LastWeek   = enum.New(WeekSelector("last_week"))
	CustomWeek = enum.New(WeekSelector("custom"))
)

type Period struct {
	Begin time.Time
	End   time.Time
}

func (p Period) Days() int {
	return int(p.End.Sub(p.Begin).Hours() / 24)
}

// Day resolves a single calendar day. An empty date means today.
func Day(date string, now time.Time) (Period, error) {
	begin := dateutil.StartOfDay(now)
	if date != "" {
		parsed, err := dateutil.ParseDate(date)
		if err != nil {
			return Period{}, errorx.New(errorx.BadRequest, "Invalid date format, expected YYYY-MM-DD")
		}

		begin = dateutil.StartOfDay(parsed)
	}

	return Period{Begin: begin, End: begin.AddDate(0, 0, 1)}, nil
}

// Week resolves a Monday-start week. The selector picks this week, last
// week, or the week containing an explicit date (custom). An empty
// selector with a date behaves like custom; fully empty means this week.
func Week(selector, date string, now time.Time) (Period, error) {
	if selector == "" {
		if date == "" {
			selector = string(ThisWeek)
		} else {
			selector = string(CustomWeek)
		}
	}

	s, err := enum.ToEnum[WeekSelector](selector)
	if err != nil {
		return Period{}, errorx.New(errorx.BadRequest,
			"Invalid week selector, expected this_week, last_week, or custom")
	}

	ref := now
	switch s {
	case LastWeek:
		ref = dateutil.LastWeek(ref)
	case CustomWeek:
		if date == "" {
			return Period{}, errorx.New(errorx.BadRequest, "A custom week requires a date")
		}

		parsed, err := dateutil.ParseDate(date)
		if err != nil {
			return Period{}, errorx.New(errorx.BadRequest, "Invalid date format, expected YYYY-MM-DD")
		}

		ref = parsed
	}

	begin := dateutil.MondayOfWeek(ref)
	return Period{Begin: begin, End: begin.AddDate(0, 0, 7)}, nil
}

// Month resolves a calendar month. The month accepts a number (1-12)
// or an English month name; an empty month means the current one. The
// year defaults to the current year when zero.
func Month(month string, year int, now time.Time) (Period, error) {
	m := now.UTC().Month()
	if month != "" {
		parsed, err := dateutil.ParseMonth(month)
		if err != nil {
			return Period{}, errorx.New(errorx.BadRequest, "Invalid month, expected a number or an English month name")
		}

		m = parsed
	}

	if year == 0 {
		year = now.UTC().Year()
	}

	begin := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	return Period{Begin: begin, End: begin.AddDate(0, 1, 0)}, nil
}

// Range resolves an explicit date range. Both bounds must be given
// together; an empty range means today. The end date is inclusive as
// supplied by the client and converted to a half-open interval here.
func Range(startDate, endDate string, now time.Time) (Period, error) {
	if startDate == "" && endDate == "" {
		return Day("", now)
	}

	if startDate == "" || endDate == "" {
		return Period{}, errorx.New(errorx.BadRequest, "Both start_date and end_date are required")
	}

	start, err := dateutil.ParseDate(startDate)
	if err != nil {
		return Period{}, errorx.New(errorx.BadRequest, "Invalid start_date format, expected YYYY-MM-DD")
	}

	end, err := dateutil.ParseDate(endDate)
	if err != nil {
		return Period{}, errorx.New(errorx.BadRequest, "Invalid end_date format, expected YYYY-MM-DD")
	}

	begin := dateutil.StartOfDay(start)
	finish := dateutil.StartOfDay(end).AddDate(0, 0, 1)
	if finish.Before(begin) || finish.Equal(begin) {
		return Period{}, errorx.New(errorx.BadRequest, "end_date must not be before start_date")
	}

	p := Period{Begin: begin, End: finish}
	if p.Days() > maxRangeDays {
		return Period{}, errorx.New(errorx.BadRequest, "Date range must not exceed %d days", maxRangeDays)
	}

	return p, nil
}
