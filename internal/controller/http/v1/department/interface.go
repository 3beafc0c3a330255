package department

type Department interface {
	Departments() []string
}
