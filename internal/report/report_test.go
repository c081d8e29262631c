package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0.00"},
		{116.66666666, "R$ 116.67"},
		{2500, "R$ 2500.00"},
		{0.1 + 0.2, "R$ 0.30"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatPrice(nil); got != "R$ 0.00" {
		t.Errorf("FormatPrice(nil) = %q", got)
	}
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := FormatCurrency(v); got != "R$ --" {
			t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, "R$ --")
		}
	}
	if got := FormatPercent(math.NaN()); got != "--%" {
		t.Errorf("FormatPercent(NaN) = %q", got)
	}
}

func TestRenderer_ReportOverflowingTotals(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: floatPtr(1e308)},
		{ID: 2, Price: floatPtr(1e308)},
	}

	var buf bytes.Buffer
	if err := NewRenderer(&buf, false, 100).Report(stats.ComputeSummary(products, nil)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "R$ --") {
		t.Errorf("expected non-finite total to render as placeholder\n%s", buf.String())
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(200.0 / 3); got != "66.7%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct    float64
		width  int
		filled int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{150, 10, 10},
		{-5, 10, 0},
		{66.6, 3, 2},
	}
	for _, tt := range tests {
		bar := progressBar(tt.pct, tt.width)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("progressBar(%v, %d) filled %d, want %d", tt.pct, tt.width, got, tt.filled)
		}
		if runewidth.StringWidth(bar) != tt.width {
			t.Errorf("progressBar(%v, %d) width %d", tt.pct, tt.width, runewidth.StringWidth(bar))
		}
	}
}

func TestPadRightAccents(t *testing.T) {
	got := padRight("Eletrônicos", 15)
	if runewidth.StringWidth(got) != 15 {
		t.Errorf("expected display width 15, got %d (%q)", runewidth.StringWidth(got), got)
	}
}

func TestRenderer_Report(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: floatPtr(100), CategoryID: intPtr(1)},
		{ID: 2, Price: floatPtr(200), CategoryID: intPtr(1)},
		{ID: 3, Price: floatPtr(50)},
	}
	categories := []models.Category{{ID: 1, Name: "A"}}

	var buf bytes.Buffer
	if err := NewRenderer(&buf, false, 100).Report(stats.ComputeSummary(products, categories)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"R$ 200.00",
		"R$ 50.00",
		"R$ 350.00",
		"R$ 116.67",
		"2 produtos (66.7%)",
		"Produtos sem Categoria",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no ANSI sequences without color")
	}
}

func TestRenderer_ReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(&buf, false, 60).Report(stats.ComputeSummary(nil, nil)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Nenhuma distribuição disponível") {
		t.Errorf("expected empty distribution notice\n%s", buf.String())
	}
}

func TestRenderer_Dashboard(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Mouse", Price: floatPtr(50), CategoryID: intPtr(1), CategoryName: "Periféricos"},
		{ID: 2, Name: "Sem preço"},
	}

	var buf bytes.Buffer
	r := NewRenderer(&buf, false, 100)
	if err := r.Dashboard(stats.ComputeSummary(products, nil), stats.RecentProducts(products, 5)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "Sem preço") > strings.Index(out, "Mouse") {
		t.Errorf("expected most recent product first\n%s", out)
	}
	if !strings.Contains(out, "Sem categoria") || !strings.Contains(out, "Periféricos") {
		t.Errorf("expected category labels\n%s", out)
	}
}

func TestRenderer_Categories(t *testing.T) {
	var buf bytes.Buffer
	counts := []stats.CategoryCount{{ID: 1, Name: "A", Count: 1}, {ID: 2, Name: "B", Count: 3}}
	if err := NewRenderer(&buf, false, 80).Categories(counts); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 produto\n") || !strings.Contains(out, "3 produtos") {
		t.Errorf("unexpected output\n%s", out)
	}
}
