// Package view holds the presentational pieces of the console: style
// lookups, table and layout models, chart math and the HTML templates.
package view

import "attendance/console/internal/entity"

var buttonVariants = map[string]string{
	"primary":   "bg-violet-600 hover:bg-violet-700 text-white shadow-sm hover:shadow",
	"secondary": "bg-zinc-100 hover:bg-zinc-200 text-zinc-700 border border-zinc-200 hover:border-zinc-300",
	"danger":    "bg-red-600 hover:bg-red-700 text-white shadow-sm hover:shadow",
	"success":   "bg-emerald-600 hover:bg-emerald-700 text-white shadow-sm hover:shadow",
	"outline":   "border border-violet-600 text-violet-600 hover:bg-violet-50 hover:border-violet-700",
	"ghost":     "text-zinc-600 hover:bg-zinc-100 hover:text-zinc-900",
}

var buttonSizes = map[string]string{
	"sm": "px-3 py-1.5 text-xs",
	"md": "px-4 py-2 text-sm",
	"lg": "px-5 py-2.5 text-base",
}

const buttonBase = "rounded-md font-medium transition-all duration-150 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-violet-500 disabled:opacity-50 disabled:cursor-not-allowed disabled:shadow-none inline-flex items-center justify-center gap-2"

// ButtonStyle maps a variant and size to classes. Unknown values fall back
// to primary and md.
func ButtonStyle(variant, size string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants["primary"]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes["md"]
	}
	return v + " " + s + " " + buttonBase
}

// CardStyle is the accent of a stat card.
type CardStyle struct {
	Border string
	Text   string
}

var cardStyles = map[string]CardStyle{
	"teal":   {Border: "border-l-violet-600", Text: "text-violet-600"},
	"green":  {Border: "border-l-emerald-600", Text: "text-emerald-600"},
	"red":    {Border: "border-l-red-500", Text: "text-red-500"},
	"yellow": {Border: "border-l-amber-500", Text: "text-amber-500"},
	"blue":   {Border: "border-l-blue-600", Text: "text-blue-600"},
	"indigo": {Border: "border-l-violet-600", Text: "text-violet-600"},
}

func CardColor(color string) CardStyle {
	if s, ok := cardStyles[color]; ok {
		return s
	}
	return cardStyles["teal"]
}

var modalWidths = map[string]string{
	"sm": "max-w-md",
	"md": "max-w-lg",
	"lg": "max-w-2xl",
	"xl": "max-w-4xl",
}

func ModalWidth(size string) string {
	if w, ok := modalWidths[size]; ok {
		return w
	}
	return modalWidths["md"]
}

// DialogStyle is the icon treatment of a confirm dialog.
type DialogStyle struct {
	Icon string
	Bg   string
	Text string
}

var dialogStyles = map[string]DialogStyle{
	"danger":  {Icon: "trash", Bg: "bg-rose-50", Text: "text-rose-600"},
	"warning": {Icon: "exclamation", Bg: "bg-amber-50", Text: "text-amber-600"},
	"info":    {Icon: "question", Bg: "bg-blue-50", Text: "text-blue-600"},
}

func Dialog(variant string) DialogStyle {
	if s, ok := dialogStyles[variant]; ok {
		return s
	}
	return dialogStyles["info"]
}

// Badge is a status pill.
type Badge struct {
	Label string
	Class string
	Dot   string
}

func StatusBadge(status entity.Status) Badge {
	if status == entity.StatusPresent {
		return Badge{Label: "Present", Class: "bg-emerald-50 text-emerald-700", Dot: "bg-emerald-500"}
	}
	return Badge{Label: "Absent", Class: "bg-rose-50 text-rose-700", Dot: "bg-rose-500"}
}

// Column of a table.
type Column struct {
	Key   string
	Label string
}

// Table decides between skeleton, empty state and rows; the rows
// themselves are rendered by the page template.
type Table struct {
	Columns      []Column
	Rows         int
	Loading      bool
	EmptyMessage string
}

func (t Table) Mode() string {
	switch {
	case t.Loading && t.Rows == 0:
		return "loading"
	case t.Rows == 0:
		return "empty"
	default:
		return "rows"
	}
}

// Field is an input with its error.
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Error       string
	Placeholder string
	Helper      string
	Required    bool
}
