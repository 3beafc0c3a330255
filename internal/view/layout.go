package view

// NavItem is a sidebar entry.
type NavItem struct {
	Path   string
	Label  string
	Icon   string
	Active bool
}

var navigation = []NavItem{
	{Path: "/", Label: "Dashboard", Icon: "home"},
	{Path: "/employees", Label: "Employees", Icon: "users"},
	{Path: "/attendance", Label: "Attendance", Icon: "calendar"},
}

var titles = map[string]string{
	"/":           "Dashboard",
	"/employees":  "Employees",
	"/attendance": "Attendance",
}

const (
	SidebarOpenWidth      = 240
	SidebarCollapsedWidth = 72
)

// Layout is the shell around every page.
type Layout struct {
	Brand       string
	Path        string
	Title       string
	Subtitle    string
	SidebarOpen bool
	Width       int
	Nav         []NavItem
}

// NewLayout builds the shell for path. Unknown paths are titled Dashboard.
func NewLayout(brand, path string, sidebarOpen bool, subtitles map[string]string) Layout {
	nav := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Path == path
		nav[i] = item
	}

	title, ok := titles[path]
	if !ok {
		title = titles["/"]
	}

	return Layout{
		Brand:       brand,
		Path:        path,
		Title:       title,
		Subtitle:    subtitles[path],
		SidebarOpen: sidebarOpen,
		Width:       SidebarWidth(sidebarOpen),
		Nav:         nav,
	}
}

func SidebarWidth(open bool) int {
	if open {
		return SidebarOpenWidth
	}
	return SidebarCollapsedWidth
}

// Page is what every page template receives.
type Page struct {
	Layout Layout
	Data   interface{}
}
