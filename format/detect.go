// Package format recognises the content type of result pages. Federations
// publish results as HTML, but some links lead to PDFs or spreadsheets,
// which the table parser cannot read.
package format

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"path"
	"strings"
)

// ErrUnsupported is returned for content that cannot hold HTML tables.
var ErrUnsupported = errors.New("unsupported content")

// Format represents a page content type.
type Format int

const (
	// Unknown indicates content with no recognisable signature. HTML
	// fragments without a doctype land here and are still parsed.
	Unknown Format = iota
	// HTML indicates an HTML document.
	HTML
	// PDF indicates a PDF document.
	PDF
	// Archive indicates a ZIP container (XLSX, DOCX, ODS and friends).
	Archive
)

// sniffLen is how many leading bytes Peek inspects.
const sniffLen = 512

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	case Archive:
		return "Archive"
	default:
		return "Unknown"
	}
}

// Parseable reports whether content of this format may hold HTML tables.
func (f Format) Parseable() bool {
	return f == HTML || f == Unknown
}

// Detect determines the format from a file name or URL path extension.
func Detect(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm", ".xhtml", ".php", ".asp", ".aspx", ".jsp":
		return HTML
	case ".pdf":
		return PDF
	case ".zip", ".xlsx", ".docx", ".ods", ".odt":
		return Archive
	default:
		return Unknown
	}
}

// Sniff checks leading bytes to determine the format.
func Sniff(data []byte) Format {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}
	if bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		return Archive
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	return Unknown
}

// htmlMarkers are tags that identify HTML content found near the start.
var htmlMarkers = []string{"<!DOCTYPE HTML", "<HTML", "<HEAD", "<BODY", "<TABLE"}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	if data[0] != '<' {
		return false
	}
	upper := strings.ToUpper(string(data))
	for _, m := range htmlMarkers {
		if strings.HasPrefix(upper, m) {
			return true
		}
	}
	// XML declaration or a comment followed by html-like content
	if strings.HasPrefix(upper, "<?XML") || strings.HasPrefix(upper, "<!--") {
		return strings.Contains(upper, "<HTML")
	}
	return false
}

// Peek sniffs the start of r. The returned reader replays the inspected
// bytes, so callers must read from it instead of r.
func Peek(r io.Reader) (Format, io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return Unknown, br, err
	}
	return Sniff(head), br, nil
}
