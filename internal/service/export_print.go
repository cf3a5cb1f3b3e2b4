package service

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/tejukargal/smp-salary-board/internal/domain"
	"github.com/tejukargal/smp-salary-board/internal/util"
)

// identityColumnCount is how many leading columns are non-money at either
// print level; the totals footer spans the last three of them.
const identityColumnCount = 5

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.WindowTitle}}</title>
    <style>{{.Style}}</style>
</head>
<body>
    <h1>{{.Heading}}</h1>
    <div class="summary">
        <div><strong>Report Generated:</strong> {{.GeneratedOn}}</div>
        <div><strong>Total Employees:</strong> {{.EmployeeCount}}</div>
    </div>
    {{if .Container}}<div class="container">{{end}}
    <table>
        <thead>
            <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
        </thead>
        <tbody>
            {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
            {{end}}
        </tbody>
        <tfoot>
            <tr><td><strong>Total</strong></td><td><strong>{{.EmployeeCount}}</strong></td><td colspan="3"></td>{{range .FooterTotals}}<td><strong>{{.}}</strong></td>{{end}}</tr>
        </tfoot>
    </table>
    {{if .Container}}</div>{{end}}
</body>
</html>
`))

type printData struct {
	WindowTitle   string
	Heading       string
	Style         template.CSS
	GeneratedOn   string
	EmployeeCount int
	Container     bool
	Headers       []string
	Rows          [][]string
	FooterTotals  []string
}

// RenderPrint produces a standalone printable HTML document for the given
// records. The summary level carries the nine headline columns; the
// detailed level adds the allowance and deduction breakdowns with banded
// backgrounds, mirroring the CSV layout.
func (s *ExportService) RenderPrint(records []domain.PayRecord, level PrintLevel) (string, error) {
	var cols []exportColumn
	data := printData{
		GeneratedOn:   s.now().Format("02/01/2006"),
		EmployeeCount: len(records),
	}
	switch level {
	case PrintLevelDetailed:
		cols = detailedColumns()
		data.WindowTitle = "Salary Data - Detailed"
		data.Heading = "SMP Salary Board Report - Detailed"
		data.Container = true
	default:
		cols = summaryColumns()
		data.WindowTitle = "Salary Data"
		data.Heading = "SMP Salary Board Report"
	}
	data.Style = printStyle(level, cols)

	for _, c := range cols {
		data.Headers = append(data.Headers, c.header)
	}
	for _, r := range records {
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			if c.numeric() {
				row = append(row, util.FormatINRAmount(c.amount(r)))
			} else {
				row = append(row, c.text(r))
			}
		}
		data.Rows = append(data.Rows, row)
	}

	summary := s.summaries.Summarize(records)
	for _, c := range cols[identityColumnCount:] {
		data.FooterTotals = append(data.FooterTotals, util.FormatINR(columnTotal(c, summary)))
	}

	var b strings.Builder
	if err := printTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render print document: %w", err)
	}
	return b.String(), nil
}

// printStyle builds the level's stylesheet: shared print chrome plus
// per-column width and alignment rules derived from the column manifest.
func printStyle(level PrintLevel, cols []exportColumn) template.CSS {
	detailed := level == PrintLevelDetailed

	margin, bodyFont, cellFont, footFont, headFont := "10mm", "10px", "9px", "9px", "16px"
	if detailed {
		margin, bodyFont, cellFont, footFont, headFont = "5mm", "8px", "7px", "8px", "14px"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: landscape; margin: %s; }\n", margin)
	fmt.Fprintf(&b, "body { font-family: 'Inter', Arial, sans-serif; font-size: %s; color: #000; margin: 15px; line-height: 1.3; }\n", bodyFont)
	b.WriteString("table { width: 100%; border-collapse: collapse; margin-bottom: 20px; table-layout: fixed; }\n")
	if detailed {
		b.WriteString(".container { width: 100%; max-width: 100%; }\n")
	}
	for i, c := range cols {
		fmt.Fprintf(&b, "th:nth-child(%d), td:nth-child(%d) { width: %d%%; }\n", i+1, i+1, c.width)
	}
	fmt.Fprintf(&b, "th, td { border: 1px solid #333; padding: 6px 8px; text-align: left; font-size: %s; overflow: hidden; text-overflow: ellipsis; vertical-align: top; }\n", cellFont)
	fmt.Fprintf(&b, "th { background-color: #f0f0f0; font-weight: bold; font-size: %s; text-align: center; }\n", cellFont)
	fmt.Fprintf(&b, "th:nth-child(n+%d), td:nth-child(n+%d) { text-align: right; }\n", identityColumnCount+1, identityColumnCount+1)
	b.WriteString("th:nth-child(1), td:nth-child(1), th:nth-child(2), td:nth-child(2) { text-align: left; }\n")
	b.WriteString("td:nth-child(1) { white-space: normal; word-wrap: break-word; max-width: 0; }\n")
	if detailed {
		if from, to, ok := groupSpan(cols, groupAllowance); ok {
			fmt.Fprintf(&b, "th:nth-child(n+%d):nth-child(-n+%d), td:nth-child(n+%d):nth-child(-n+%d) { background-color: #f9f9f9; }\n", from, to, from, to)
		}
		if from, to, ok := groupSpan(cols, groupDeduction); ok {
			fmt.Fprintf(&b, "th:nth-child(n+%d):nth-child(-n+%d), td:nth-child(n+%d):nth-child(-n+%d) { background-color: #fff2f2; }\n", from, to, from, to)
		}
	}
	fmt.Fprintf(&b, "tfoot td { font-weight: bold; background-color: #f0f0f0; font-size: %s; }\n", footFont)
	fmt.Fprintf(&b, "h1 { text-align: center; margin-bottom: 15px; font-size: %s; font-weight: bold; }\n", headFont)
	fmt.Fprintf(&b, ".summary { margin-bottom: 15px; font-size: %s; text-align: center; }\n", bodyFont)
	b.WriteString(".summary div { display: inline-block; margin-right: 30px; }\n")

	return template.CSS(b.String())
}

// groupSpan returns the 1-based first and last column positions of a
// contiguous column group.
func groupSpan(cols []exportColumn, g columnGroup) (int, int, bool) {
	first, last := 0, 0
	for i, c := range cols {
		if c.group != g {
			continue
		}
		if first == 0 {
			first = i + 1
		}
		last = i + 1
	}
	return first, last, first != 0
}
