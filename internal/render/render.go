// Package render prints reports and booking lists as terminal tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultBarWidth is the widest bar drawn in frequency tables
const DefaultBarWidth = 30

// Options controls terminal output
type Options struct {
	Currency string // symbol printed before amounts (default £)
	Color    bool   // colored titles and table headers
	BarWidth int
}

func (o Options) currency() string {
	if o.Currency == "" {
		return "£"
	}
	return o.Currency
}

func (o Options) barWidth() int {
	if o.BarWidth <= 0 {
		return DefaultBarWidth
	}
	return o.BarWidth
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	s := styles{
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle(),
		muted:   r.NewStyle(),
	}
	if !color {
		return s
	}

	s.title = s.title.Foreground(lipgloss.Color("#F5A623"))
	s.section = s.section.Foreground(lipgloss.Color("#4FB0C6"))
	s.header = s.header.Foreground(lipgloss.Color("#00B386"))
	s.border = s.border.Foreground(lipgloss.Color("#5C5C5C"))
	s.muted = s.muted.Foreground(lipgloss.Color("#8A8A8A"))
	return s
}

// newTable builds a bordered table; rightCols are right aligned
func (s styles) newTable(headers []string, rows [][]string, rightCols ...int) string {
	right := make(map[int]bool, len(rightCols))
	for _, c := range rightCols {
		right[c] = true
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := s.cell
			if row == table.HeaderRow {
				st = s.header
			}
			if right[col] {
				st = st.Align(lipgloss.Right)
			}
			return st
		})
	return t.String()
}

// Money formats an amount with thousands separators and two decimals
func Money(currency string, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	abs := rounded.Abs()
	_, cents, _ := strings.Cut(abs.StringFixed(2), ".")
	return currency + " " + sign + humanize.BigComma(abs.BigInt()) + "." + cents
}

// bar draws a proportional bar of at most width cells
func bar(value, maxValue, width int) string {
	if value <= 0 || maxValue <= 0 {
		return ""
	}
	n := value * width / maxValue
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// percent formats part/total as a whole percentage
func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(part)*100/float64(total))
}

func write(w io.Writer, blocks []string) error {
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}
