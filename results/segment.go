package results

import (
	"fmt"
	"strings"

	"github.com/tsawler/barbell/htmldoc"
	"github.com/tsawler/barbell/model"
)

// Parser segments result tables into athlete records. It only holds the
// keyword rules, so one Parser can serve concurrent callers.
type Parser struct {
	rules *Rules
}

// NewParser returns a Parser using rules, or DefaultRules when rules is nil.
func NewParser(rules *Rules) *Parser {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Parser{rules: rules}
}

// Parse parses tables with the default rules.
func Parse(tables []htmldoc.Table, comp model.Competition) ([]model.AthleteResult, model.Diagnostics) {
	return NewParser(nil).ParseTables(tables, comp)
}

// segmentState is the parsing context of one table. A fresh value is used
// for every table.
type segmentState struct {
	weightClass string
	format      model.FormatVariant
	haveFormat  bool

	// inHeader is set while consecutive header rows are being read, so a
	// second header row refines the format instead of replacing it.
	inHeader    bool
	headerTexts []string
	headerCells int
}

func newSegmentState() segmentState {
	return segmentState{weightClass: model.UnknownWeightClass, format: model.DynamicFormat}
}

func (s *segmentState) enterCategory(c Classification) {
	s.weightClass = c.Label
	s.format = model.DynamicFormat
	s.haveFormat = false
	s.inHeader = false
	s.headerTexts = nil
	s.headerCells = 0
}

func (s *segmentState) enterHeader(f Filtered) {
	if !s.inHeader {
		s.headerTexts = nil
		s.headerCells = 0
	}
	s.inHeader = true
	s.headerTexts = append(s.headerTexts, f.Texts...)
	// Spacers are layout filler, so only the filtered cells count.
	if n := len(f.Cells); n > s.headerCells {
		s.headerCells = n
	}
	s.format = DetectFormat(s.headerTexts, s.headerCells)
	s.haveFormat = true
}

// ParseTables parses every table of a page. Each table starts with weight
// class "Unknown" and no format.
func (p *Parser) ParseTables(tables []htmldoc.Table, comp model.Competition) ([]model.AthleteResult, model.Diagnostics) {
	diag := model.Diagnostics{Competition: comp.Label()}
	var out []model.AthleteResult

	var failures []string
	for _, t := range tables {
		records, err := p.parseTableSafe(t, comp)
		if err != nil {
			failures = append(failures, fmt.Sprintf("table %d: %v", t.Index, err))
		}
		diag.AddTable(len(t.Rows), len(records))
		out = append(out, records...)
	}

	if len(failures) > 0 {
		diag.Detail = strings.Join(failures, "; ")
		if len(out) == 0 {
			diag.Reason = model.ReasonParseFailed
		}
	}
	diag.Finish()
	return out, diag
}

// ParseTable parses a single table.
func (p *Parser) ParseTable(t htmldoc.Table, comp model.Competition) []model.AthleteResult {
	records, _ := p.parseTableSafe(t, comp)
	return records
}

// parseTableSafe turns a panic on malformed input into an error so one bad
// table cannot take down the rest of the page.
func (p *Parser) parseTableSafe(t htmldoc.Table, comp model.Competition) (records []model.AthleteResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return p.parseTable(t, comp), nil
}

func (p *Parser) parseTable(t htmldoc.Table, comp model.Competition) []model.AthleteResult {
	state := newSegmentState()
	var out []model.AthleteResult

	for _, row := range t.Rows {
		f := FilterSpacers(row)
		c := Classify(p.rules, f)

		switch c.Tag {
		case TagCategoryHeader:
			state.enterCategory(c)

		case TagTableHeader:
			state.enterHeader(f)

		case TagAthleteRow:
			state.inHeader = false
			variant := model.DynamicFormat
			if state.haveFormat {
				variant = state.format
			}
			if rec, ok := Assemble(p.rules, f, variant, state.weightClass, comp); ok {
				out = append(out, rec)
			}

		case TagSubHeader, TagOther:
			// no-op
		}
	}

	return out
}
