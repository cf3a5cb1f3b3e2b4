package memory

import (
	"sort"
	"sync"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

// RecordRepository implements domain.RecordRepository with an in-memory
// snapshot. The board holds one snapshot per session; there is nothing to
// persist, so the store is a guarded slice swapped wholesale on each intake.
type RecordRepository struct {
	mu           sync.RWMutex
	records      []domain.PayRecord
	designations []string
	departments  []string
}

// NewRecordRepository creates an empty RecordRepository
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

// Replace installs a new snapshot. The records are copied, canonically
// sorted, and the designation/department sets are recomputed; the previous
// snapshot is discarded in full.
func (r *RecordRepository) Replace(records []domain.PayRecord) {
	snapshot := make([]domain.PayRecord, len(records))
	copy(snapshot, records)
	domain.CanonicalSort(snapshot)

	designations := distinctSorted(snapshot, func(rec *domain.PayRecord) string { return rec.Designation })
	departments := distinctSorted(snapshot, func(rec *domain.PayRecord) string { return rec.Department })

	r.mu.Lock()
	r.records = snapshot
	r.designations = designations
	r.departments = departments
	r.mu.Unlock()
}

// Snapshot returns a copy of the current canonically sorted records.
func (r *RecordRepository) Snapshot() []domain.PayRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PayRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Designations returns the distinct designations present, sorted.
func (r *RecordRepository) Designations() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.designations...)
}

// Departments returns the distinct departments present, sorted. Records
// without a department do not contribute a value.
func (r *RecordRepository) Departments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.departments...)
}

func distinctSorted(records []domain.PayRecord, field func(*domain.PayRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for i := range records {
		v := field(&records[i])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
