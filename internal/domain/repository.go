package domain

// RecordRepository is the session's record store. The snapshot is immutable
// between loads: Replace swaps the whole collection, nothing mutates it in
// place, so readers never race a writer mid-update.
type RecordRepository interface {
	// Replace installs a new snapshot, canonically sorted, and recomputes
	// the derived designation/department sets.
	Replace(records []PayRecord)
	// Snapshot returns the current canonically sorted records. The returned
	// slice is the caller's to keep; later Replace calls do not touch it.
	Snapshot() []PayRecord
	// Designations returns the distinct designations present, sorted.
	Designations() []string
	// Departments returns the distinct departments present, sorted.
	Departments() []string
}
