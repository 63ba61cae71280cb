// Package ui renders inventory output for the terminal.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/adiprasetio/stockroom/pkg/types"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Title renders a bold section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Ok renders a success message.
func Ok(msg string) string {
	return successStyle.Render("✔ " + msg)
}

// Fail renders an error message.
func Fail(msg string) string {
	return errorStyle.Render("✖ " + msg)
}

// Muted renders de-emphasized detail text.
func Muted(msg string) string {
	return mutedStyle.Render(msg)
}

// Price formats a unit price or value with two decimals.
func Price(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ItemTable renders the collection as a bordered table: name, stock, unit
// price, and total value per row.
func ItemTable(items []*types.Item) string {
	if len(items) == 0 {
		return Muted("inventory is empty")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("NAME", "STOCK", "PRICE", "VALUE")

	for _, item := range items {
		t.Row(item.Name, strconv.FormatInt(item.Stock, 10), Price(item.Price), Price(item.Value()))
	}
	return t.Render()
}

// ItemDetail renders one item with its identity and timestamps.
func ItemDetail(item *types.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Title(item.Name))
	fmt.Fprintf(&b, "  id:      %s\n", item.ID)
	fmt.Fprintf(&b, "  stock:   %d\n", item.Stock)
	fmt.Fprintf(&b, "  price:   %s\n", Price(item.Price))
	fmt.Fprintf(&b, "  value:   %s\n", Price(item.Value()))
	fmt.Fprintf(&b, "  %s", Muted(fmt.Sprintf("created %s, updated %s",
		item.CreatedAt.Format("2006-01-02 15:04:05"),
		item.UpdatedAt.Format("2006-01-02 15:04:05"))))
	return b.String()
}

// ReportPanel renders the aggregate report inside a rounded border.
func ReportPanel(r *types.Report) string {
	lines := []string{
		Title("INVENTORY REPORT"),
		fmt.Sprintf("items:         %d", r.Count),
		fmt.Sprintf("total stock:   %d", r.TotalStock),
		fmt.Sprintf("total value:   %s", Price(r.TotalValue)),
	}
	if r.Count > 0 {
		lines = append(lines,
			fmt.Sprintf("avg value:     %s", Price(r.AverageValue)),
			fmt.Sprintf("lowest stock:  %s", r.LowestStock),
			fmt.Sprintf("highest value: %s", r.HighestValue),
		)
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}
