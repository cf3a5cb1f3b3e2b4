package memory

import (
	"reflect"
	"testing"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

func TestReplace_SortsCanonically(t *testing.T) {
	repo := NewRecordRepository()
	repo.Replace([]domain.PayRecord{
		{Name: "A Rao", Month: "March", Year: 2023},
		{Name: "B Iyer", Month: "January", Year: 2024},
	})

	snap := repo.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 records, got %d", len(snap))
	}
	if snap[0].Name != "B Iyer" {
		t.Errorf("expected newest period first, got %s", snap[0].Name)
	}
}

func TestReplace_DiscardsPreviousSnapshot(t *testing.T) {
	repo := NewRecordRepository()
	repo.Replace([]domain.PayRecord{
		{Name: "A Rao", Designation: "TYPIST", Month: "March", Year: 2023},
	})
	repo.Replace([]domain.PayRecord{
		{Name: "B Iyer", Designation: "LECTURER", Month: "January", Year: 2024},
	})

	snap := repo.Snapshot()
	if len(snap) != 1 || snap[0].Name != "B Iyer" {
		t.Fatalf("expected only the second load, got %+v", snap)
	}
	if got := repo.Designations(); !reflect.DeepEqual(got, []string{"LECTURER"}) {
		t.Errorf("designations not recomputed on reload: %v", got)
	}
}

func TestFacets_DistinctAndSorted(t *testing.T) {
	repo := NewRecordRepository()
	repo.Replace([]domain.PayRecord{
		{Name: "a", Designation: "TYPIST", Department: "C", Month: "June", Year: 2024},
		{Name: "b", Designation: "LECTURER", Department: "A", Month: "June", Year: 2024},
		{Name: "c", Designation: "TYPIST", Department: "A", Month: "May", Year: 2024},
		{Name: "d", Designation: "LECTURER", Month: "May", Year: 2024}, // no department
	})

	if got := repo.Designations(); !reflect.DeepEqual(got, []string{"LECTURER", "TYPIST"}) {
		t.Errorf("Designations() = %v", got)
	}
	if got := repo.Departments(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("Departments() = %v", got)
	}
}

func TestSnapshot_IsolatedFromStore(t *testing.T) {
	repo := NewRecordRepository()
	repo.Replace([]domain.PayRecord{{Name: "A Rao", Month: "March", Year: 2023}})

	snap := repo.Snapshot()
	snap[0].Name = "mutated"

	if got := repo.Snapshot()[0].Name; got != "A Rao" {
		t.Errorf("store snapshot leaked to caller: %s", got)
	}
}

func TestEmptyRepository(t *testing.T) {
	repo := NewRecordRepository()
	if len(repo.Snapshot()) != 0 {
		t.Error("fresh repository should be empty")
	}
	if len(repo.Designations()) != 0 || len(repo.Departments()) != 0 {
		t.Error("fresh repository should have no facets")
	}
}
