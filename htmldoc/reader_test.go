package htmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestOpenReader_TitleAndMeta(t *testing.T) {
	src := `<!DOCTYPE html>
<html>
<head>
	<title>  Polish Championships  2024 </title>
	<meta name="author" content="PZPC">
	<meta property="og:title" content="Results">
	<meta name="empty" content="">
</head>
<body></body>
</html>`

	r, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer r.Close()

	if got := r.Title(); got != "Polish Championships 2024" {
		t.Errorf("Title() = %q", got)
	}
	if got := r.Meta("author"); got != "PZPC" {
		t.Errorf("Meta(author) = %q", got)
	}
	if got := r.Meta("og:title"); got != "Results" {
		t.Errorf("Meta(og:title) = %q", got)
	}
	if got := r.Meta("empty"); got != "" {
		t.Errorf("Meta(empty) = %q, want empty", got)
	}
	if len(r.Tables()) != 0 || r.RowCount() != 0 {
		t.Errorf("tables = %d, rows = %d, want none", len(r.Tables()), r.RowCount())
	}
}

func TestOpenReader_Tables(t *testing.T) {
	src := `<html><body>
	<p>Intro</p>
	<table>
		<thead><tr><th rowspan="2">Pl.</th><th colspan="4">Snatch</th></tr></thead>
		<tbody>
			<tr><td>1</td><td>Smith <b>J.</b></td><td rowspan="x">POL</td></tr>
			<tr></tr>
		</tbody>
		<tfoot><tr><td>Referee: Nowak</td></tr></tfoot>
	</table>
	<table></table>
	<table><tr><td>second</td></tr></table>
</body></html>`

	r, err := OpenReaderWithOptions(strings.NewReader(src), Options{NavigationExclusion: NavigationExclusionNone})
	if err != nil {
		t.Fatalf("OpenReaderWithOptions() failed: %v", err)
	}

	tables := r.Tables()
	if len(tables) != 2 {
		t.Fatalf("len(Tables()) = %d, want 2 (empty tables are dropped)", len(tables))
	}
	if tables[0].Index != 0 || tables[1].Index != 1 {
		t.Errorf("indexes = %d, %d", tables[0].Index, tables[1].Index)
	}
	if r.RowCount() != 5 {
		t.Errorf("RowCount() = %d, want 5", r.RowCount())
	}

	rows := tables[0].Rows
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}

	head := rows[0].Cells
	if !head[0].IsHeader || head[0].RowSpan != 2 || head[0].ColSpan != 1 {
		t.Errorf("head[0] = %+v", head[0])
	}
	if head[1].ColSpan != 4 || head[1].Text != "Snatch" {
		t.Errorf("head[1] = %+v", head[1])
	}

	body := rows[1].Cells
	if got := rows[1].Texts(); strings.Join(got, "|") != "1|Smith J.|POL" {
		t.Errorf("row 1 texts = %q", got)
	}
	if body[0].IsHeader {
		t.Error("body cell marked as header")
	}
	if body[2].RowSpan != 1 {
		t.Errorf("invalid rowspan parsed as %d, want 1", body[2].RowSpan)
	}
	if body[1].Node == nil || body[1].Node.Data != "td" {
		t.Errorf("cell node not kept: %+v", body[1].Node)
	}

	if len(rows[2].Cells) != 0 {
		t.Errorf("empty row has %d cells", len(rows[2].Cells))
	}
	if rows[3].Cells[0].Text != "Referee: Nowak" {
		t.Errorf("footer row = %q", rows[3].Texts())
	}
}

func TestOpenReader_NestedLayoutTables(t *testing.T) {
	src := `<html><body>
	<table class="layout"><tr>
		<td><table><tr><td>Menu</td></tr></table></td>
		<td>
			<table><tr><td>1</td><td>Smith J.</td></tr></table>
			<table><tr><td>2</td><td>Doe J.</td></tr></table>
		</td>
	</tr></table>
</body></html>`

	r, err := OpenReaderWithOptions(strings.NewReader(src), Options{NavigationExclusion: NavigationExclusionNone})
	if err != nil {
		t.Fatalf("OpenReaderWithOptions() failed: %v", err)
	}

	tables := r.Tables()
	if len(tables) != 3 {
		t.Fatalf("len(Tables()) = %d, want the 3 inner tables", len(tables))
	}
	want := []string{"Menu", "1|Smith J.", "2|Doe J."}
	for i, w := range want {
		if got := strings.Join(tables[i].Rows[0].Texts(), "|"); got != w {
			t.Errorf("tables[%d] = %q, want %q", i, got, w)
		}
	}
}

func TestOpenReader_SkipsScripts(t *testing.T) {
	src := `<html><body>
	<script>document.write("<table><tr><td>fake</td></tr></table>")</script>
	<table><tr><td>1<script>var x = 1;</script></td><td>Smith J.</td></tr></table>
</body></html>`

	r, err := OpenReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	if len(r.Tables()) != 1 {
		t.Fatalf("len(Tables()) = %d, want 1", len(r.Tables()))
	}
	if got := r.Tables()[0].Rows[0].Cells[0].Text; got != "1" {
		t.Errorf("cell text = %q, want 1", got)
	}
}

func TestOpenReader_InvalidHTML(t *testing.T) {
	// The HTML parser is lenient; unclosed tags still yield a table.
	r, err := OpenReader(strings.NewReader(`<table><tr><td>1<td>Smith J.`))
	if err != nil {
		t.Fatalf("OpenReader() should handle malformed HTML: %v", err)
	}
	if len(r.Tables()) != 1 || len(r.Tables()[0].Rows[0].Cells) != 2 {
		t.Errorf("tables = %+v", r.Tables())
	}
}

func TestOpen_NotFound(t *testing.T) {
	if _, err := Open("/nonexistent/results.html"); err == nil {
		t.Error("Open() expected error for nonexistent file")
	}
}

func TestOpen_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.html")
	if err := os.WriteFile(path, []byte(`<html><head><title>File</title></head><body>`+resultTable+`</body></html>`), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "File" {
		t.Errorf("Title() = %q", r.Title())
	}
	if len(r.Tables()) != 1 {
		t.Errorf("len(Tables()) = %d, want 1", len(r.Tables()))
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Smith\n\tJ. ", "Smith J."},
		{" ", ""},
		{"82 kg", "82 kg"},
		{"　Nowak　", "Nowak"},
		{"１２０", "120"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetTextContent(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"line break", `<td>Smith<br>J.</td>`, "Smith J."},
		{"divs", `<td><div>Smith</div><div>J.</div></td>`, "Smith J."},
		{"inline", `<td><b>Sm</b>ith</td>`, "Smith"},
		{"nbsp only", `<td>&nbsp;</td>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader("<table><tr>" + tt.html + "</tr></table>"))
			if err != nil {
				t.Fatalf("html.Parse() failed: %v", err)
			}
			td := FindFirst(doc, func(n *html.Node) bool {
				return n.Type == html.ElementNode && n.Data == "td"
			})
			if td == nil {
				t.Fatal("no td found")
			}
			if got := GetTextContent(td); got != tt.want {
				t.Errorf("GetTextContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCell_HasLink(t *testing.T) {
	tests := []struct {
		html string
		want bool
	}{
		{`<td><a href="/athlete/1">Smith J.</a></td>`, true},
		{`<td><span><a href="x">Smith J.</a></span></td>`, true},
		{`<td><a name="top">Smith J.</a></td>`, false},
		{`<td>Smith J.</td>`, false},
	}

	for _, tt := range tests {
		r, err := OpenReaderWithOptions(strings.NewReader("<table><tr>"+tt.html+"</tr></table>"), Options{})
		if err != nil {
			t.Fatalf("OpenReaderWithOptions() failed: %v", err)
		}
		cell := r.Tables()[0].Rows[0].Cells[0]
		if got := cell.HasLink(); got != tt.want {
			t.Errorf("HasLink(%s) = %v, want %v", tt.html, got, tt.want)
		}
	}

	var detached *Cell
	if detached.HasLink() {
		t.Error("nil cell reported a link")
	}
	c := NewCell("Smith J.")
	if c.HasLink() {
		t.Error("detached cell reported a link")
	}
}

func TestNewCell(t *testing.T) {
	c := NewCell("  82 kg ")
	if c.Text != "82 kg" || c.RowSpan != 1 || c.ColSpan != 1 || c.IsHeader || c.Node != nil {
		t.Errorf("NewCell() = %+v", c)
	}
}

func TestDefaultOptions(t *testing.T) {
	if got := DefaultOptions().NavigationExclusion; got != NavigationExclusionStandard {
		t.Errorf("DefaultOptions().NavigationExclusion = %v, want Standard", got)
	}
}
