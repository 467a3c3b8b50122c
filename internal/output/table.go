package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableDimStyle    = lipgloss.NewStyle().Foreground(ColorDimGray)
)

// Table is a bordered table built row by row.
type Table struct {
	headers []string
	rows    [][]string
	dim     map[int]bool
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, dim: map[int]bool{}}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Dim renders the data cells of column col in a muted color.
func (t *Table) Dim(col int) *Table {
	t.dim[col] = true
	return t
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case t.dim[col]:
				return tableDimStyle
			default:
				return lipgloss.NewStyle()
			}
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}
