package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

// CSVFileName is the download name the export endpoint advertises.
const CSVFileName = "salary_data_detailed.csv"

// PrintLevel selects which print layout to render.
type PrintLevel string

const (
	PrintLevelSummary  PrintLevel = "summary"
	PrintLevelDetailed PrintLevel = "detailed"
)

// ParsePrintLevel maps the query value onto a level. An empty value means
// summary; anything else must name a level exactly.
func ParsePrintLevel(s string) (PrintLevel, error) {
	switch s {
	case "", string(PrintLevelSummary):
		return PrintLevelSummary, nil
	case string(PrintLevelDetailed):
		return PrintLevelDetailed, nil
	}
	return "", domain.ErrInvalidInput
}

// ExportService renders record sets as CSV files and printable HTML
// documents. The clock is injectable so the generated-on date in print
// output is testable.
type ExportService struct {
	summaries *SummaryService
	now       func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService(summaries *SummaryService) *ExportService {
	return &ExportService{summaries: summaries, now: time.Now}
}

// RenderCSV produces the detailed CSV document: an unquoted header row,
// one all-quoted row per record, and a closing totals row whose money
// figures match the aggregate summary of the same records.
func (s *ExportService) RenderCSV(records []domain.PayRecord) string {
	cols := detailedColumns()

	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.header)
	}
	b.WriteByte('\n')

	for _, r := range records {
		for i, c := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			if c.numeric() {
				writeQuoted(&b, c.amount(r).String())
			} else {
				writeQuoted(&b, c.text(r))
			}
		}
		b.WriteByte('\n')
	}

	summary := s.summaries.Summarize(records)
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		switch {
		case i == 0:
			writeQuoted(&b, "Total")
		case i == 1:
			writeQuoted(&b, strconv.Itoa(summary.EmployeeCount))
		case !c.numeric():
			writeQuoted(&b, "")
		default:
			writeQuoted(&b, strconv.FormatInt(columnTotal(c, summary), 10))
		}
	}
	b.WriteByte('\n')

	return b.String()
}

// writeQuoted wraps v in double quotes unconditionally, escaping embedded
// quotes by doubling them. Every data field is quoted regardless of
// content; only the header row goes out bare.
func writeQuoted(b *strings.Builder, v string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(v, `"`, `""`))
	b.WriteByte('"')
}
