package model

import "time"

type Report struct {
	ID         string    `json:"id"`
	ShortID    string    `json:"short_id"`
	ActivityID string    `json:"activity_id"`
	Date       time.Time `json:"date"`
	TimeOnTask float64   `json:"time_on_task"`
	TimeWasted float64   `json:"time_wasted"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReportRequest struct {
	ActivityID string  `json:"activity_id"`
	Date       string  `json:"date"`
	TimeOnTask float64 `json:"time_on_task"`
	TimeWasted float64 `json:"time_wasted"`
	Comment    string  `json:"comment"`
}

type CreateReportResponse struct {
	Report Report `json:"report"`
}

func (CreateReportResponse) Message() string {
	return "Report created successfully"
}

func (CreateReportResponse) StatusCode() int {
	return 201
}

// ActivitySummary is one entry of a report breakdown. Entries are keyed by
// activity id, never by name, so activities sharing a display name stay
// distinct.
type ActivitySummary struct {
	ActivityID      string  `json:"activity_id"`
	Name            string  `json:"name"`
	TotalTimeOnTask float64 `json:"total_time_on_task"`
	TotalTimeWasted float64 `json:"total_time_wasted"`
}

type ReportSummary struct {
	StartDate           time.Time                  `json:"start_date"`
	EndDate             time.Time                  `json:"end_date"`
	TotalProductiveTime float64                    `json:"total_productive_time"`
	TotalWastedTime     float64                    `json:"total_wasted_time"`
	Activities          map[string]ActivitySummary `json:"activities"`
}

type GetReportRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type GetReportRangeResponse struct {
	ReportSummary
}

func (GetReportRangeResponse) Message() string {
	return "Reports retrieved successfully"
}

type GetReportDayRequest struct {
	Date string `json:"date"`
}

type GetReportDayResponse struct {
	ReportSummary
	Weekday string `json:"weekday"`
}

func (GetReportDayResponse) Message() string {
	return "Reports retrieved successfully"
}

type GetReportWeekRequest struct {
	Week string `json:"week"`
	Date string `json:"date"`
}

type GetReportWeekResponse struct {
	ReportSummary
}

func (GetReportWeekResponse) Message() string {
	return "Reports retrieved successfully"
}

type GetReportMonthRequest struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

type GetReportMonthResponse struct {
	ReportSummary
	Month string `json:"month"`
	Year  int    `json:"year"`
}

func (GetReportMonthResponse) Message() string {
	return "Reports retrieved successfully"
}

type GetReportTotalsRequest struct{}

type GetReportTotalsResponse struct {
	TotalProductiveTime float64 `json:"total_productive_time"`
	TotalWastedTime     float64 `json:"total_wasted_time"`
}

func (GetReportTotalsResponse) Message() string {
	return "Totals retrieved successfully"
}
