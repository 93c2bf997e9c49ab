package model

// UnknownWeightClass is the weight class used for athlete rows that appear
// before any category header in a table.
const UnknownWeightClass = "Unknown"

// DNF is the standing recorded for athletes without a placement.
const DNF = "DNF"

// Outcome is the result of a single lift attempt.
type Outcome int

const (
	// NoAttempt means the attempt was not taken or the cell could not be read.
	NoAttempt Outcome = iota
	// Successful means the declared weight was lifted.
	Successful
	// Unsuccessful means the declared weight was missed.
	Unsuccessful
)

// String returns the long name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Successful:
		return "successful"
	case Unsuccessful:
		return "unsuccessful"
	default:
		return "no_attempt"
	}
}

// Code returns the short code used by spreadsheet exporters.
func (o Outcome) Code() string {
	switch o {
	case Successful:
		return "s"
	case Unsuccessful:
		return "f"
	default:
		return "na"
	}
}

// MarshalText encodes the outcome by its long name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// LiftAttempt is one snatch or clean-and-jerk attempt.
type LiftAttempt struct {
	Weight  string  `json:"weight"` // empty when no weight was declared
	Outcome Outcome `json:"outcome"`
}

// FormatVariant identifies the column layout of a result table.
type FormatVariant int

const (
	// DynamicFormat resolves columns per row when no header was recognised.
	DynamicFormat FormatVariant = iota
	// ClubFormat: place, name, club, bodyweight, lifts.
	ClubFormat
	// NationFormat: place, name, nation, bodyweight, group, lifts.
	NationFormat
	// TeamFormat: name, birth year, bodyweight, lifts, points. The team is
	// announced by the section banner.
	TeamFormat
)

// String returns the canonical name of the variant.
func (f FormatVariant) String() string {
	switch f {
	case ClubFormat:
		return "club_format"
	case NationFormat:
		return "nation_format"
	case TeamFormat:
		return "team_format"
	default:
		return "dynamic"
	}
}

// AthleteResult is one athlete's line from a result table.
type AthleteResult struct {
	Competition

	WeightClass string         `json:"weight_class"`
	Standing    string         `json:"standing"`
	Name        string         `json:"name"`
	Nation      string         `json:"nation"`
	Club        string         `json:"club"`
	BirthYear   string         `json:"birth_year,omitempty"`
	Bodyweight  string         `json:"bodyweight"`
	Group       string         `json:"group"`
	Snatch      [3]LiftAttempt `json:"snatch"`
	CleanJerk   [3]LiftAttempt `json:"clean_jerk"`
	Total       string         `json:"total"`
	Sinclair    string         `json:"sinclair"`
}

// BestSnatch returns the heaviest successful snatch, or "" if none.
func (r *AthleteResult) BestSnatch() string {
	return best(r.Snatch)
}

// BestCleanJerk returns the heaviest successful clean and jerk, or "" if none.
func (r *AthleteResult) BestCleanJerk() string {
	return best(r.CleanJerk)
}

// best picks the last successful attempt. Attempts never decrease within a
// lift, so the last good one is the heaviest.
func best(attempts [3]LiftAttempt) string {
	result := ""
	for _, a := range attempts {
		if a.Outcome == Successful && a.Weight != "" {
			result = a.Weight
		}
	}
	return result
}
