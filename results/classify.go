package results

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/barbell/htmldoc"
)

// RowTag is the role of a table row.
type RowTag int

const (
	// TagOther rows carry nothing usable and are skipped.
	TagOther RowTag = iota
	// TagCategoryHeader rows announce a weight class, team or division.
	TagCategoryHeader
	// TagTableHeader rows name the columns.
	TagTableHeader
	// TagSubHeader rows hold attempt numbers (1/2/3) under a header.
	TagSubHeader
	// TagAthleteRow rows hold one athlete's results.
	TagAthleteRow
)

func (t RowTag) String() string {
	switch t {
	case TagCategoryHeader:
		return "category_header"
	case TagTableHeader:
		return "table_header"
	case TagSubHeader:
		return "sub_header"
	case TagAthleteRow:
		return "athlete_row"
	default:
		return "other"
	}
}

// CategoryKind says why a row was taken as a category header.
type CategoryKind int

const (
	CategoryNone CategoryKind = iota
	// CategoryTeam banners name a club or team.
	CategoryTeam
	// CategoryWeight banners hold a weight boundary such as "89 kg" or "+109 kg".
	CategoryWeight
	// CategoryDivision banners name an age group or division.
	CategoryDivision
	// CategoryGeneric banners matched nothing specific but are long enough to
	// be a label.
	CategoryGeneric
)

// Classification is the result of Classify.
type Classification struct {
	Tag RowTag
	// Rule names the rule that matched, for tracing.
	Rule string
	// Label is the banner text of a category header.
	Label    string
	Category CategoryKind
}

// rowView is what the rules look at: filtered cells and their text.
type rowView struct {
	cells []htmldoc.Cell
	texts []string
	lower string // space-joined lower-case text
}

func newRowView(f Filtered) rowView {
	return rowView{
		cells: f.Cells,
		texts: f.Texts,
		lower: strings.ToLower(strings.Join(f.Texts, " ")),
	}
}

func (v rowView) text(i int) string {
	if i < 0 || i >= len(v.texts) {
		return ""
	}
	return v.texts[i]
}

func (v rowView) cell(i int) *htmldoc.Cell {
	if i < 0 || i >= len(v.cells) {
		return nil
	}
	return &v.cells[i]
}

// rule is one entry of the classification list. match returns ok=false to
// pass the row on to the next rule.
type rule struct {
	name  string
	match func(r *Rules, v rowView) (Classification, bool)
}

// classificationRules is evaluated top to bottom; the first match wins.
// Athlete evidence sits above the header keywords so that a club called
// "... Club" in an athlete's row never resets the format. The team heuristic
// is the only one left below them.
var classificationRules = []rule{
	{"category-header", matchCategoryHeader},
	{"sub-header", matchSubHeader},
	{"athlete-placement", matchPlacedAthlete},
	{"athlete-status", matchStatusAthlete},
	{"athlete-link", matchLinkedAthlete},
	{"athlete-blank-place", matchBlankPlaceAthlete},
	{"table-header", matchTableHeader},
	{"athlete-team", matchTeamAthlete},
}

// Classify tags a filtered row.
func Classify(r *Rules, f Filtered) Classification {
	v := newRowView(f)
	for _, rl := range classificationRules {
		if c, ok := rl.match(r, v); ok {
			c.Rule = rl.name
			return c
		}
	}
	return Classification{Tag: TagOther}
}

// structuralWords are column-title words. A banner made only of these is a
// stray header cell, never a category.
var structuralWords = setOf(
	"place", "pl", "lp", "rank", "no", "nr", "name", "surname", "and", "nation",
	"nationality", "country", "club", "team", "snatch", "clean", "jerk", "c&j",
	"total", "sinclair", "sincler", "b.w", "bw", "body", "weight", "bodyweight",
	"group", "birthyear", "birth", "year", "points", "pts", "athlete", "lifter",
)

// isStructuralLabel ignores attempt numbers, so "Snatch 1" is still a column
// title. At least one word is required.
func isStructuralLabel(text string) bool {
	words := 0
	for _, t := range tokens(strings.ToLower(text)) {
		if integerPattern.MatchString(t) {
			continue
		}
		if !structuralWords[t] {
			return false
		}
		words++
	}
	return words > 0
}

func matchCategoryHeader(r *Rules, v rowView) (Classification, bool) {
	idx := -1
	for i, t := range v.texts {
		if t == "" {
			continue
		}
		if idx >= 0 {
			return Classification{}, false
		}
		idx = i
	}
	if idx < 0 {
		return Classification{}, false
	}

	label := v.texts[idx]
	if isStructuralLabel(label) || integerPattern.MatchString(label) || decimalPattern.MatchString(label) {
		return Classification{}, false
	}
	// A linked lone name is an athlete row with every other cell empty.
	if v.cell(idx).HasLink() {
		return Classification{}, false
	}

	// Team indicators are checked before the weight pattern: a banner that
	// looks like both is taken as a team.
	kind := CategoryNone
	switch {
	case r.hasTeamIndicator(label):
		kind = CategoryTeam
	case weightPattern.MatchString(label):
		kind = CategoryWeight
	case r.hasDivisionKeyword(label):
		kind = CategoryDivision
	case utf8.RuneCountInString(label) > 4:
		kind = CategoryGeneric
	default:
		return Classification{}, false
	}
	return Classification{Tag: TagCategoryHeader, Label: label, Category: kind}, true
}

func matchSubHeader(_ *Rules, v rowView) (Classification, bool) {
	if len(v.texts) == 0 || len(v.texts) > 6 {
		return Classification{}, false
	}
	seen := false
	for _, t := range v.texts {
		if t == "" {
			continue
		}
		if len(t) != 1 || t[0] < '0' || t[0] > '3' {
			return Classification{}, false
		}
		seen = true
	}
	return Classification{Tag: TagSubHeader}, seen
}

var athlete = Classification{Tag: TagAthleteRow}

func matchPlacedAthlete(_ *Rules, v rowView) (Classification, bool) {
	return athlete, len(v.texts) >= 3 && integerPattern.MatchString(v.text(0))
}

// statusTokens mark athletes without a placement.
var statusTokens = setOf("DNF", "DNS", "DQ", "---")

func hasNameAt(v rowView, i int) bool {
	t := v.text(i)
	return len(t) > 2 && isAlphabetic(t)
}

func matchStatusAthlete(_ *Rules, v rowView) (Classification, bool) {
	return athlete, len(v.texts) >= 3 && statusTokens[strings.ToUpper(v.text(0))] && hasNameAt(v, 1)
}

func matchLinkedAthlete(_ *Rules, v rowView) (Classification, bool) {
	if len(v.texts) < 3 {
		return Classification{}, false
	}
	for i := 0; i < 2; i++ {
		if c := v.cell(i); c != nil && !c.IsHeader && c.HasLink() {
			return athlete, true
		}
	}
	return Classification{}, false
}

// headerKeywords match whole tokens; longer ones also match as a prefix so
// "nationality" and "sinclair" count, and "name" also as a suffix so
// "Lastname" and "Firstname" do.
var (
	headerExactKeywords  = setOf("pl", "lp", "name", "names", "club", "total", "totals", "b.w", "jerk", "country")
	headerPrefixKeywords = []string{"surname", "nation", "snatch", "sincler", "sinclair", "birthyear", "points"}
	headerSuffixKeywords = []string{"name"}
	headerPhrases        = []string{"name and surname", "surname and name", "birth year"}
)

// hasHeaderKeyword reports whether lower-case row text carries a column title.
func hasHeaderKeyword(lower string) bool {
	for _, p := range headerPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	for _, t := range tokens(lower) {
		if headerExactKeywords[t] {
			return true
		}
		for _, p := range headerPrefixKeywords {
			if strings.HasPrefix(t, p) {
				return true
			}
		}
		for _, p := range headerSuffixKeywords {
			if strings.HasSuffix(t, p) {
				return true
			}
		}
	}
	return false
}

func matchTableHeader(_ *Rules, v rowView) (Classification, bool) {
	return Classification{Tag: TagTableHeader}, hasHeaderKeyword(v.lower)
}

// matchBlankPlaceAthlete recognises athletes listed without a placement: an
// empty first cell followed by a name. A row that also carries a header
// keyword, such as a club called "Barbell Club London", still counts when it
// has a numeric value and no <th> cells. A header row with an empty corner
// cell has neither, and its name cell is a column title.
func matchBlankPlaceAthlete(_ *Rules, v rowView) (Classification, bool) {
	if len(v.texts) < 3 || v.text(0) != "" || !hasNameAt(v, 1) {
		return Classification{}, false
	}
	if name := strings.ToLower(v.text(1)); hasHeaderKeyword(name) || isStructuralLabel(name) {
		return Classification{}, false
	}
	if !hasHeaderKeyword(v.lower) {
		return athlete, true
	}
	return athlete, !hasHeaderCell(v) && hasNumericFrom(v, 2)
}

func hasHeaderCell(v rowView) bool {
	for _, c := range v.cells {
		if c.IsHeader {
			return true
		}
	}
	return false
}

func hasNumericFrom(v rowView, start int) bool {
	for i := start; i < len(v.texts); i++ {
		if isNumeric(v.texts[i]) {
			return true
		}
	}
	return false
}

// matchTeamAthlete recognises condensed team rows: a name followed by a
// birth year or a bodyweight.
func matchTeamAthlete(_ *Rules, v rowView) (Classification, bool) {
	if len(v.texts) < 3 {
		return Classification{}, false
	}
	name, second := v.text(0), v.text(1)
	if utf8.RuneCountInString(name) <= 3 || !isAlphabetic(name) {
		return Classification{}, false
	}
	return athlete, yearPattern.MatchString(second) || isNumeric(second)
}
