package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mkrogh/kurv"
)

func sampleRecords() []kurv.PurchaseRecord {
	return []kurv.PurchaseRecord{
		{ID: 1, ProductName: "Organic Bananas", StoreName: "Super Brugsen", Quantity: 1, Unit: kurv.Kilo, Price: 24.95, Currency: "DKK", PurchaseDate: kurv.MustParseDate("2025-08-20")},
		{ID: 2, ProductName: "Organic Almonds", StoreName: "Irma", Quantity: 500, Unit: kurv.Gram, Price: 12.50, Currency: "EUR", PurchaseDate: kurv.MustParseDate("2025-08-21")},
	}
}

// parseReport parses a rendered report as GFM markdown and returns the
// number of level-1 headings and table body rows.
func parseReport(t *testing.T, report string) (headings, rows int) {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	src := []byte(report)
	root := md.Parser().Parse(text.NewReader(src))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 {
				headings++
			}
		case *extast.TableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return headings, rows
}

func TestRecordsMarkdown(t *testing.T) {
	report := RecordsMarkdown(sampleRecords(), kurv.DefaultRates())

	headings, rows := parseReport(t, report)
	if headings != 1 {
		t.Errorf("report has %d level-1 headings, want 1:\n%s", headings, report)
	}
	if rows != 2 {
		t.Errorf("report has %d table rows, want 2:\n%s", rows, report)
	}
	// 12.50 EUR for 500g is 186 DKK/kg.
	if !strings.Contains(report, "186.00 DKK/kg") {
		t.Errorf("report is missing the standardized almond price:\n%s", report)
	}
	if !strings.Contains(report, "500 g") {
		t.Errorf("report is missing the almond quantity:\n%s", report)
	}
}

func TestRecordsMarkdown_Empty(t *testing.T) {
	report := RecordsMarkdown(nil, kurv.DefaultRates())
	if !strings.Contains(report, "No purchases recorded yet") {
		t.Errorf("empty report = %q", report)
	}
}

func TestCompareMarkdown(t *testing.T) {
	records := sampleRecords()
	comparisons := []kurv.PriceComparison{
		{Record: records[1], BaseUnit: kurv.BaseKilo, Standardized: 25, StandardizedAnchor: 186},
	}
	report := CompareMarkdown("Organic Almonds", comparisons)

	headings, rows := parseReport(t, report)
	if headings != 1 || rows != 1 {
		t.Errorf("headings=%d rows=%d, want 1 and 1:\n%s", headings, rows, report)
	}
	if !strings.Contains(report, "Irma") || !strings.Contains(report, "186.00 DKK/kg") {
		t.Errorf("comparison report incomplete:\n%s", report)
	}
}

func TestCompareMarkdown_Empty(t *testing.T) {
	report := CompareMarkdown("Dragon Fruit", nil)
	if !strings.Contains(report, "No purchases of Dragon Fruit") {
		t.Errorf("empty comparison = %q", report)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	records := sampleRecords()
	report := SummaryMarkdown(records, 117.95)
	if !strings.Contains(report, "2 purchases") {
		t.Errorf("summary is missing the purchase count:\n%s", report)
	}
	_, rows := parseReport(t, report)
	if rows != 2 {
		t.Errorf("summary has %d store rows, want 2:\n%s", rows, report)
	}
}
