package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/rogerio-castellano/catalog-tracker/internal/models"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

const (
	minWidth     = 40
	narrowWidth  = 80
	barMaxWidth  = 30
	nameMaxWidth = 28
)

var barPalette = []string{"#4F8EF7", "#34C759", "#FF9500", "#AF52DE", "#FF3B30"}

type styles struct {
	section   lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	cardValue lipgloss.Style
	muted     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
}

// Renderer writes reports to w. Without color only plain text and box
// drawing characters are written.
type Renderer struct {
	w     io.Writer
	width int
	lg    *lipgloss.Renderer
	st    styles
}

func NewRenderer(w io.Writer, color bool, width int) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if color {
		lg.SetColorProfile(termenv.TrueColor)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}
	if width < minWidth {
		width = minWidth
	}

	return &Renderer{
		w:     w,
		width: width,
		lg:    lg,
		st: styles{
			section: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A")).MarginTop(1),
			card: lg.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A")),
			cardTitle: lg.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
			cardValue: lg.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
			muted:     lg.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
			label:     lg.NewStyle().Foreground(lipgloss.Color("#B8B8B8")),
			value:     lg.NewStyle().Bold(true),
		},
	}
}

func (r *Renderer) card(title, value, subtitle string) string {
	content := fmt.Sprintf("%s\n%s\n%s",
		r.st.cardTitle.Render(title),
		r.st.cardValue.Render(value),
		r.st.muted.Render(subtitle))
	return r.st.card.Render(content)
}

func (r *Renderer) cards(cards ...string) string {
	if r.width < narrowWidth {
		return strings.Join(cards, "\n")
	}
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		end := min(i+2, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) section(title string) string {
	return r.st.section.Render(title)
}

func (r *Renderer) row(label, value string) string {
	return padRight(r.st.label.Render(label), 28) + r.st.value.Render(value)
}

// Report writes the full statistics report.
func (r *Renderer) Report(s stats.Summary) error {
	var b strings.Builder
	b.WriteString(r.section("Relatórios e Estatísticas") + "\n")
	b.WriteString(r.cards(
		r.card("Produtos por Categoria", fmt.Sprintf("%d", s.TotalCategories), "Categorias ativas"),
		r.card("Produto Mais Caro", FormatCurrency(s.MaxPrice), "Maior preço"),
		r.card("Produto Mais Barato", FormatCurrency(s.MinPrice), "Menor preço"),
		r.card("Valor Total", FormatCurrency(s.TotalInventoryValue), "Soma total"),
	) + "\n")

	b.WriteString(r.section("Estatísticas Detalhadas") + "\n")
	b.WriteString(r.row("Total de Produtos", fmt.Sprintf("%d", s.TotalProducts)) + "\n")
	b.WriteString(r.row("Total de Categorias", fmt.Sprintf("%d", s.TotalCategories)) + "\n")
	b.WriteString(r.row("Produtos sem Categoria", fmt.Sprintf("%d", s.UncategorizedCount)) + "\n")
	b.WriteString(r.row("Valor Médio dos Produtos", FormatCurrency(s.AveragePrice)) + "\n")

	b.WriteString(r.section("Distribuição por Categoria") + "\n")
	b.WriteString(r.distribution(s.Distribution))

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) distribution(shares []stats.CategoryShare) string {
	if len(shares) == 0 {
		return r.st.muted.Render("Nenhuma distribuição disponível") + "\n"
	}
	barWidth := min(barMaxWidth, r.width-nameMaxWidth-24)

	var b strings.Builder
	for i, d := range shares {
		bar := r.lg.NewStyle().
			Foreground(lipgloss.Color(barPalette[i%len(barPalette)])).
			Render(progressBar(d.Percentage, barWidth))
		fmt.Fprintf(&b, "%s %s %s\n",
			padRight(truncate(d.Category, nameMaxWidth), nameMaxWidth),
			bar,
			r.st.muted.Render(fmt.Sprintf("%d produtos (%s)", d.Count, FormatPercent(d.Percentage))))
	}
	return b.String()
}

// Dashboard writes the home screen: totals, average and recent products.
func (r *Renderer) Dashboard(s stats.Summary, recent []models.Product) error {
	var b strings.Builder
	b.WriteString(r.section("Dashboard") + "\n")
	b.WriteString(r.cards(
		r.card("Total de Produtos", fmt.Sprintf("%d", s.TotalProducts), "Cadastrados"),
		r.card("Categorias", fmt.Sprintf("%d", s.TotalCategories), "Cadastradas"),
		r.card("Valor Médio", FormatCurrency(s.AveragePrice), "Por produto"),
		r.card("Sem Categoria", fmt.Sprintf("%d", s.UncategorizedCount), "Produtos"),
	) + "\n")

	b.WriteString(r.section("Produtos Recentes") + "\n")
	if len(recent) == 0 {
		b.WriteString(r.st.muted.Render("Nenhum produto cadastrado") + "\n")
	}
	for _, p := range recent {
		category := p.CategoryName
		if category == "" {
			category = "Sem categoria"
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			padRight(truncate(p.Name, nameMaxWidth), nameMaxWidth),
			padRight(FormatPrice(p.Price), 16),
			r.st.muted.Render(category))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Categories writes each category with its product count.
func (r *Renderer) Categories(counts []stats.CategoryCount) error {
	var b strings.Builder
	b.WriteString(r.section("Categorias") + "\n")
	if len(counts) == 0 {
		b.WriteString(r.st.muted.Render("Nenhuma categoria cadastrada") + "\n")
	}
	for _, c := range counts {
		noun := "produtos"
		if c.Count == 1 {
			noun = "produto"
		}
		fmt.Fprintf(&b, "%s %s\n",
			padRight(truncate(c.Name, nameMaxWidth), nameMaxWidth),
			r.st.muted.Render(fmt.Sprintf("%d %s", c.Count, noun)))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func progressBar(pct float64, width int) string {
	if width < 1 {
		width = 1
	}
	pct = math.Max(0, math.Min(100, pct))
	filled := int(math.Round(pct / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// padRight pads s with spaces to the given display width. ANSI sequences
// are ignored when measuring.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
