package view

import (
	"html/template"
	"time"

	"attendance/console/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"button":     ButtonStyle,
		"card":       CardColor,
		"modalWidth": ModalWidth,
		"dialog":     Dialog,
		"badge":      StatusBadge,
		"presence":   PresenceBar,
		"day":        FormatDay,
		"joined":     FormatJoined,
		"first": func(f entity.FieldErrors, field string) string {
			return f.First(field)
		},
		"has": func(f entity.FieldErrors, field string) bool {
			return f.Has(field)
		},
	}
}

// FormatDay renders a calendar day like "Jan 2, 2006".
func FormatDay(d date.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format("Jan 2, 2006")
}

// FormatJoined renders a creation time; an absent time renders as a dash.
func FormatJoined(t entity.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// Today is the YYYY-MM-DD form of now, used to cap date inputs.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}
