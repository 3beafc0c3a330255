package page

import (
	"context"
	"log"
	"time"

	"attendance/console/internal/entity"
	"attendance/console/internal/hook"
	"attendance/console/internal/view"
)

// Dashboard shows today's counts and per-employee present days.
type Dashboard struct {
	summary *hook.Dashboard
	log     *log.Logger
	now     func() time.Time
}

func NewDashboard(d Deps) *Dashboard {
	d = d.withDefaults()
	return &Dashboard{summary: hook.NewDashboard(d.Dashboard), log: d.Log, now: d.Now}
}

func (p *Dashboard) Mount(ctx context.Context) {
	p.report(p.summary.Load(ctx).Err)
}

func (p *Dashboard) Unmount() {
	p.summary.Reset()
}

func (p *Dashboard) Refetch(ctx context.Context) {
	p.report(p.summary.Refetch(ctx).Err)
}

func (p *Dashboard) report(err error) {
	if err != nil {
		p.log.Printf("dashboard : loading summary : %v", err)
	}
}

type StatCard struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type StatRow struct {
	Code        string `json:"employee_code"`
	Name        string `json:"employee_name"`
	PresentDays int    `json:"present_days"`
	Bar         int    `json:"bar"`
}

type DashboardView struct {
	Loading  bool                    `json:"loading"`
	Loaded   bool                    `json:"loaded"`
	Error    string                  `json:"error,omitempty"`
	Summary  entity.DashboardSummary `json:"summary"`
	Greeting string                  `json:"greeting"`
	Cards    []StatCard              `json:"cards"`
	Chart    view.TodayChart         `json:"chart"`
	Stats    []StatRow               `json:"stats"`
}

func (p *Dashboard) View() DashboardView {
	snap := p.summary.Snapshot()
	s := snap.Data

	v := DashboardView{
		Loading:  snap.Loading(),
		Loaded:   snap.Loaded,
		Summary:  s,
		Greeting: view.Greeting(p.now().Hour()),
		Chart:    view.NewTodayChart(s),
		Cards: []StatCard{
			{Label: "Total Employees", Value: s.TotalEmployees, Color: "indigo"},
			{Label: "Present Today", Value: s.Today.Present, Color: "green"},
			{Label: "Absent Today", Value: s.Today.Absent, Color: "red"},
			{Label: "Not Marked", Value: s.Today.NotMarked, Color: "yellow"},
		},
		Stats: make([]StatRow, 0, len(s.EmployeeStats)),
	}
	if snap.State == hook.Failed {
		v.Error = Describe(snap.Err)
	}
	for _, stat := range s.EmployeeStats {
		v.Stats = append(v.Stats, StatRow{
			Code:        stat.EmployeeCode,
			Name:        stat.EmployeeName,
			PresentDays: stat.PresentDays,
			Bar:         view.PresenceBar(stat.PresentDays),
		})
	}
	return v
}
