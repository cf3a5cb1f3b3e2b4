package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejukargal/smp-salary-board/internal/domain"
	"github.com/tejukargal/smp-salary-board/internal/repository/memory"
)

func TestLedgerService_LoadAndRecords(t *testing.T) {
	repo := memory.NewRecordRepository()
	svc := NewLedgerService(repo)

	svc.Load([]domain.PayRecord{
		{Name: "Old", Month: "February", Year: 2024},
		{Name: "New", Month: "March", Year: 2024},
	})

	records := svc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "New", records[0].Name)
	assert.Equal(t, "Old", records[1].Name)
}

func TestLedgerService_Meta(t *testing.T) {
	repo := memory.NewRecordRepository()
	svc := NewLedgerService(repo)
	svc.Load([]domain.PayRecord{
		{Name: "A", Designation: "Clerk", Department: "C", Month: "March", Year: 2024},
		{Name: "B", Designation: "Typist", Month: "December", Year: 2023},
	})

	meta := svc.Meta()

	assert.Equal(t, 2, meta.TotalRecords)
	assert.Equal(t, []string{"Clerk", "Typist"}, meta.Designations)
	assert.Equal(t, []string{"C"}, meta.Departments)
	require.NotNil(t, meta.Period)
	assert.Equal(t, "December", meta.Period.FromMonth)
	assert.Equal(t, 2023, meta.Period.FromYear)
	assert.Equal(t, "March", meta.Period.ToMonth)
	assert.Equal(t, 2024, meta.Period.ToYear)
	assert.Equal(t, "Salary Data: December 2023 - March 2024", meta.PeriodLabel)
}

func TestLedgerService_MetaEmptyLedger(t *testing.T) {
	svc := NewLedgerService(memory.NewRecordRepository())

	meta := svc.Meta()

	assert.Equal(t, 0, meta.TotalRecords)
	assert.Nil(t, meta.Period)
	assert.Empty(t, meta.PeriodLabel)
}

func TestLedgerService_MetaSinglePeriod(t *testing.T) {
	repo := memory.NewRecordRepository()
	svc := NewLedgerService(repo)
	svc.Load([]domain.PayRecord{
		{Name: "A", Month: "March", Year: 2024},
		{Name: "B", Month: "March", Year: 2024},
	})

	meta := svc.Meta()

	assert.Equal(t, "Salary Data: March 2024 - March 2024", meta.PeriodLabel)
}
