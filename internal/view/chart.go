package view

import "attendance/console/internal/entity"

// Bar is one row of the today breakdown.
type Bar struct {
	Label   string
	Count   int
	Percent int
	Color   string
}

// TodayChart is the dashboard's breakdown of today's attendance.
type TodayChart struct {
	Total int
	Rate  int
	Bars  []Bar
}

func NewTodayChart(s entity.DashboardSummary) TodayChart {
	return TodayChart{
		Total: s.TotalEmployees,
		Rate:  s.AttendanceRate(),
		Bars: []Bar{
			{Label: "Present", Count: s.Today.Present, Percent: entity.Percent(s.Today.Present, s.TotalEmployees), Color: "bg-emerald-500"},
			{Label: "Absent", Count: s.Today.Absent, Percent: entity.Percent(s.Today.Absent, s.TotalEmployees), Color: "bg-rose-500"},
			{Label: "Not Marked", Count: s.Today.NotMarked, Percent: entity.Percent(s.Today.NotMarked, s.TotalEmployees), Color: "bg-amber-500"},
		},
	}
}

// PresenceBar is the width of an employee's present-days bar: five points
// per day, capped at 100.
func PresenceBar(presentDays int) int {
	if presentDays <= 0 {
		return 0
	}
	if presentDays*5 > 100 {
		return 100
	}
	return presentDays * 5
}

// Greeting depends on the hour of day.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
