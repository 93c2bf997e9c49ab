package results

import "github.com/tsawler/barbell/model"

// absent marks a field that has no column in a layout.
const absent = -1

// OrgSource says where a record's organisation comes from.
type OrgSource int

const (
	OrgClub OrgSource = iota
	OrgNation
	// OrgWeightClass takes the club from the active section banner, which in
	// team layouts names the team.
	OrgWeightClass
)

// Schema maps record fields to offsets in a filtered row. Lift columns are
// laid out from LiftStart: three snatches, a snatch rank, three clean and
// jerks, a clean-and-jerk rank, the total and the Sinclair score.
type Schema struct {
	Standing   int
	Name       int
	Org        int
	OrgSource  OrgSource
	BirthYear  int
	Bodyweight int
	Group      int
	// ClearNumericGroup empties the group when it holds a plain number,
	// which means the guessed group column is really a lift.
	ClearNumericGroup bool
	LiftStart         int
}

const (
	snatchOffset    = 0
	cleanJerkOffset = 4
	totalOffset     = 8
	sinclairOffset  = 9
)

// schemas holds the fixed layouts. DynamicFormat is resolved per row by
// dynamicSchema.
var schemas = map[model.FormatVariant]Schema{
	model.TeamFormat: {
		Standing: absent, Name: 0, Org: absent, OrgSource: OrgWeightClass,
		BirthYear: 1, Bodyweight: 2, Group: absent, LiftStart: 3,
	},
	model.ClubFormat: {
		Standing: 0, Name: 1, Org: 2, OrgSource: OrgClub,
		BirthYear: absent, Bodyweight: 3, Group: absent, LiftStart: 4,
	},
	model.NationFormat: {
		Standing: 0, Name: 1, Org: 2, OrgSource: OrgNation,
		BirthYear: absent, Bodyweight: 3, Group: 4, LiftStart: 5,
	},
}

// SchemaFor returns the layout for a variant. Dynamic layouts depend on the
// row's content.
func SchemaFor(r *Rules, variant model.FormatVariant, texts []string) Schema {
	if s, ok := schemas[variant]; ok {
		return s
	}
	return dynamicSchema(r, texts)
}

// dynamicSchema guesses a layout for rows seen without a usable header.
// The organisation is a nation when column 2 is a known country code. The
// bodyweight is the first numeric value in columns 2 to 5 (column 3 if none),
// the group follows it, and lifts start after the group for nations or
// directly after the bodyweight for clubs.
func dynamicSchema(r *Rules, texts []string) Schema {
	s := Schema{
		Standing:          0,
		Name:              1,
		Org:               2,
		OrgSource:         OrgClub,
		BirthYear:         absent,
		Bodyweight:        3,
		ClearNumericGroup: true,
	}
	if len(texts) > 2 && r.IsCountryCode(texts[2]) {
		s.OrgSource = OrgNation
	}
	for i := 2; i <= 5 && i < len(texts); i++ {
		if isNumeric(texts[i]) {
			s.Bodyweight = i
			break
		}
	}
	s.Group = s.Bodyweight + 1
	if s.OrgSource == OrgNation {
		s.LiftStart = s.Bodyweight + 2
	} else {
		s.LiftStart = s.Bodyweight + 1
	}
	return s
}
