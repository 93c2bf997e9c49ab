package results

import "github.com/tsawler/barbell/htmldoc"

// Filtered is a row with spacer cells removed. Cells, Texts and Positions
// are parallel; Positions[i] is the index of Cells[i] in the original row.
// Column offsets are always counted in the filtered row.
type Filtered struct {
	Cells     []htmldoc.Cell
	Texts     []string
	Positions []int
}

// isSpacer reports whether a cell is merged layout filler: it spans the two
// header rows and holds nothing but whitespace (a non-breaking space is
// normalized away when the text is extracted).
func isSpacer(c htmldoc.Cell) bool {
	return c.RowSpan >= 2 && htmldoc.NormalizeText(c.Text) == ""
}

// FilterSpacers removes spacer cells from a row.
func FilterSpacers(row htmldoc.Row) Filtered {
	f := Filtered{
		Cells:     make([]htmldoc.Cell, 0, len(row.Cells)),
		Texts:     make([]string, 0, len(row.Cells)),
		Positions: make([]int, 0, len(row.Cells)),
	}
	for i, c := range row.Cells {
		if isSpacer(c) {
			continue
		}
		f.Cells = append(f.Cells, c)
		f.Texts = append(f.Texts, htmldoc.NormalizeText(c.Text))
		f.Positions = append(f.Positions, i)
	}
	return f
}
