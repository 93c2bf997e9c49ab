package results

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/barbell/model"
)

// dnfStandings are first-column values of athletes without a placement.
var dnfStandings = setOf("", "DNF", "DNS", "DQ", "---", "-")

// headerNames are header titles that sometimes land in the name column of a
// row misread as data.
var headerNames = setOf("name", "surname", "surname and name", "name and surname")

// Assemble maps a filtered athlete row onto a record. It returns false when
// the row does not name an athlete.
func Assemble(r *Rules, f Filtered, variant model.FormatVariant, weightClass string, comp model.Competition) (model.AthleteResult, bool) {
	v := newRowView(f)
	s := SchemaFor(r, variant, f.Texts)

	name := v.text(s.Name)
	if utf8.RuneCountInString(name) < 2 || headerNames[strings.ToLower(name)] {
		return model.AthleteResult{}, false
	}

	rec := model.AthleteResult{
		Competition: comp,
		WeightClass: weightClass,
		Name:        name,
		BirthYear:   v.text(s.BirthYear),
		Bodyweight:  v.text(s.Bodyweight),
		Group:       v.text(s.Group),
		Total:       v.text(s.LiftStart + totalOffset),
		Sinclair:    v.text(s.LiftStart + sinclairOffset),
	}

	if s.Standing != absent {
		rec.Standing = v.text(s.Standing)
		if dnfStandings[strings.ToUpper(rec.Standing)] {
			rec.Standing = model.DNF
		}
	}

	switch s.OrgSource {
	case OrgNation:
		rec.Nation = v.text(s.Org)
	case OrgClub:
		rec.Club = v.text(s.Org)
	case OrgWeightClass:
		if weightClass != model.UnknownWeightClass {
			rec.Club = weightClass
		}
	}

	if s.ClearNumericGroup && isNumeric(rec.Group) {
		rec.Group = ""
	}

	for i := 0; i < 3; i++ {
		rec.Snatch[i] = ParseLiftCell(v.cell(s.LiftStart + snatchOffset + i))
		rec.CleanJerk[i] = ParseLiftCell(v.cell(s.LiftStart + cleanJerkOffset + i))
	}

	return rec, true
}
