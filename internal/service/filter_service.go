package service

import (
	"strconv"
	"strings"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

// FilterRecords derives a filtered view of records under the given criteria.
// Pure: the input slice is never mutated and the canonical order is
// preserved. Empty criteria yield a copy equal in content and order to the
// input.
func FilterRecords(records []domain.PayRecord, criteria domain.FilterCriteria) []domain.PayRecord {
	out := make([]domain.PayRecord, 0, len(records))
	term := strings.ToLower(criteria.Search)
	for i := range records {
		if matches(&records[i], criteria, term) {
			out = append(out, records[i])
		}
	}
	return out
}

// matches ANDs every active clause. The search term is a case-insensitive
// substring match against name, designation or department; the selector
// clauses are exact matches. An absent department compares as "".
func matches(r *domain.PayRecord, c domain.FilterCriteria, term string) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(r.Name), term) &&
		!strings.Contains(strings.ToLower(r.Designation), term) &&
		!strings.Contains(strings.ToLower(r.Department), term) {
		return false
	}
	if c.Month != "" && r.Month != c.Month {
		return false
	}
	if c.Year != "" && strconv.Itoa(r.Year) != c.Year {
		return false
	}
	if c.Designation != "" && r.Designation != c.Designation {
		return false
	}
	if c.Department != "" && r.Department != c.Department {
		return false
	}
	return true
}
