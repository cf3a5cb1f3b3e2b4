package service

import (
	"fmt"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

// LedgerService fronts the record store: loading snapshots and exposing the
// derived metadata the filter surface needs.
type LedgerService struct {
	repo domain.RecordRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(repo domain.RecordRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// Load replaces the session snapshot with the given records. The store sorts
// canonically and recomputes facets; the previous snapshot is dropped whole.
func (s *LedgerService) Load(records []domain.PayRecord) {
	s.repo.Replace(records)
}

// Records returns the current canonically sorted snapshot.
func (s *LedgerService) Records() []domain.PayRecord {
	return s.repo.Snapshot()
}

// Meta describes the loaded snapshot for the filter surface.
type Meta struct {
	TotalRecords int                 `json:"totalRecords"`
	Designations []string            `json:"designations"`
	Departments  []string            `json:"departments"`
	Period       *domain.PeriodRange `json:"period,omitempty"`
	PeriodLabel  string              `json:"periodLabel,omitempty"`
}

// Meta returns the snapshot metadata: counts, the distinct designation and
// department sets, and the period span (oldest to newest loaded period).
func (s *LedgerService) Meta() Meta {
	records := s.repo.Snapshot()
	meta := Meta{
		TotalRecords: len(records),
		Designations: s.repo.Designations(),
		Departments:  s.repo.Departments(),
	}
	if len(records) == 0 {
		return meta
	}

	newest := records[0]
	oldest := records[len(records)-1]
	meta.Period = &domain.PeriodRange{
		FromMonth: oldest.Month,
		FromYear:  oldest.Year,
		ToMonth:   newest.Month,
		ToYear:    newest.Year,
	}
	meta.PeriodLabel = fmt.Sprintf("Salary Data: %s %d - %s %d",
		oldest.Month, oldest.Year, newest.Month, newest.Year)
	return meta
}
