package domain

// FilterCriteria is the set of active filter selections. Every field is
// optional; an empty value means "no constraint". Values arrive as plain
// strings from the presentation layer and are compared as such.
type FilterCriteria struct {
	Search      string
	Month       string
	Year        string
	Designation string
	Department  string
}

// IsEmpty reports whether no constraint is active.
func (c FilterCriteria) IsEmpty() bool {
	return c.Search == "" && c.Month == "" && c.Year == "" &&
		c.Designation == "" && c.Department == ""
}
