package service

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/tejukargal/smp-salary-board/internal/domain"
	"github.com/tejukargal/smp-salary-board/internal/repository/memory"
)

func searchRepo(t *testing.T, records []domain.PayRecord) *memory.RecordRepository {
	t.Helper()
	repo := memory.NewRecordRepository()
	repo.Replace(records)
	return repo
}

func TestSuggest_EmptyTermYieldsNothing(t *testing.T) {
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "A Rao", Month: "March", Year: 2024},
	})
	svc := NewSearchService(repo)

	assert.Nil(t, svc.Suggest(""))
}

func TestSuggest_CaseInsensitiveSubstring(t *testing.T) {
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "Ramesh Kumar", Month: "March", Year: 2024},
		{Name: "B Iyer", Month: "March", Year: 2024},
	})
	svc := NewSearchService(repo)

	got := svc.Suggest("KUM")

	assert.Len(t, got, 1)
	assert.Equal(t, "Ramesh Kumar", got[0].Name)
}

func TestSuggest_DeduplicatesByName(t *testing.T) {
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "A Rao", Month: "March", Year: 2024},
		{Name: "A Rao", Month: "February", Year: 2024},
	})
	svc := NewSearchService(repo)

	got := svc.Suggest("rao")

	assert.Len(t, got, 1)
}

func TestSuggest_CappedAtThreeInSnapshotOrder(t *testing.T) {
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "Rao One", Month: "April", Year: 2024},
		{Name: "Rao Two", Month: "March", Year: 2024},
		{Name: "Rao Three", Month: "February", Year: 2024},
		{Name: "Rao Four", Month: "January", Year: 2024},
	})
	svc := NewSearchService(repo)

	got := svc.Suggest("rao")

	assert.Len(t, got, MaxSuggestions)
	assert.Equal(t, "Rao One", got[0].Name)
	assert.Equal(t, "Rao Two", got[1].Name)
	assert.Equal(t, "Rao Three", got[2].Name)
}

func TestSuggest_SegmentsPreserveOriginalCasing(t *testing.T) {
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "Ramesh Kumar", Month: "March", Year: 2024},
	})
	svc := NewSearchService(repo)

	got := svc.Suggest("kum")

	assert.Len(t, got, 1)
	assert.Equal(t, []SuggestionSegment{
		{Text: "Ramesh "},
		{Text: "Kum", Match: true},
		{Text: "ar"},
	}, got[0].Segments)
}

func TestSuggest_RepeatedMatchRuns(t *testing.T) {
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "Anna Banana", Month: "March", Year: 2024},
	})
	svc := NewSearchService(repo)

	got := svc.Suggest("an")

	assert.Len(t, got, 1)
	var matched int
	var joined string
	for _, seg := range got[0].Segments {
		joined += seg.Text
		if seg.Match {
			matched++
		}
	}
	assert.Equal(t, "Anna Banana", joined)
	assert.Equal(t, 3, matched)
}

func TestSuggest_MultibyteUppercaseName(t *testing.T) {
	// Lowercasing U+0130 changes the byte length, so segmentation must
	// never slice the original name at offsets taken from a lowered copy.
	repo := searchRepo(t, []domain.PayRecord{
		{Name: "İİİİa", Month: "March", Year: 2024},
	})
	svc := NewSearchService(repo)

	got := svc.Suggest("a")

	assert.Len(t, got, 1)
	var joined string
	for _, seg := range got[0].Segments {
		assert.True(t, utf8.ValidString(seg.Text), "segment %q", seg.Text)
		joined += seg.Text
	}
	assert.Equal(t, "İİİİa", joined)
	assert.Equal(t, []SuggestionSegment{
		{Text: "İİİİ"},
		{Text: "a", Match: true},
	}, got[0].Segments)
}

func TestSuggestionCursor_WrapsBothWays(t *testing.T) {
	c := NewSuggestionCursor(3)

	assert.Equal(t, -1, c.Index())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 2, c.Prev())
	assert.Equal(t, 1, c.Prev())
}

func TestSuggestionCursor_EmptyListIsNoOp(t *testing.T) {
	c := NewSuggestionCursor(0)

	assert.Equal(t, -1, c.Next())
	assert.Equal(t, -1, c.Prev())
	assert.Equal(t, -1, c.Index())
}
