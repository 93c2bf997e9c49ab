package results

import (
	"regexp"
	"strings"
	"unicode"
)

// Rules holds the keyword sets the classifier and assembler consult.
// The zero value matches nothing; use DefaultRules.
type Rules struct {
	// TeamAbbreviations are organisation abbreviations matched as
	// case-sensitive tokens (for example "AZS", "KS").
	TeamAbbreviations map[string]bool
	// TeamWords are lower-case words naming an organisation ("club", "team").
	TeamWords map[string]bool
	// DivisionKeywords are lower-case age/division words ("junior", "masters").
	DivisionKeywords map[string]bool
	// CountryCodes are three-letter upper-case nation codes.
	CountryCodes map[string]bool
}

// DefaultRules returns the built-in keyword sets.
func DefaultRules() *Rules {
	return &Rules{
		TeamAbbreviations: setOf(
			"KS", "AZS", "LKS", "MKS", "UKS", "GKS", "OKS", "SKS", "ZKS", "KKS",
			"WKS", "RKS", "AKS", "BKS", "CLKS", "WLKS", "MLKS", "LUKS", "KPW", "TS",
			"SC", "AC", "FC", "WLC", "BC",
		),
		TeamWords: setOf(
			"club", "team", "association", "klub", "academy", "federation",
			"society", "athletic", "athletics", "barbell", "sport", "sports",
			"stowarzyszenie", "verein",
		),
		DivisionKeywords: setOf(
			"open", "masters", "master", "junior", "juniors", "senior", "seniors",
			"youth", "novice", "elite", "university", "military",
		),
		CountryCodes: setOf(
			"AFG", "ALB", "ALG", "AND", "ARG", "ARM", "AUS", "AUT", "AZE", "BAH",
			"BAN", "BAR", "BEL", "BLR", "BOL", "BIH", "BRA", "BUL", "CAN", "CHI",
			"CHN", "COL", "CRO", "CUB", "CYP", "CZE", "DEN", "DOM", "ECU", "EGY",
			"ESA", "ESP", "EST", "FIJ", "FIN", "FRA", "GBR", "GEO", "GER", "GHA",
			"GRE", "GUA", "HKG", "HON", "HUN", "INA", "IND", "IRI", "IRL", "IRQ",
			"ISL", "ISR", "ITA", "JAM", "JOR", "JPN", "KAZ", "KEN", "KGZ", "KOR",
			"KSA", "KUW", "LAT", "LBN", "LTU", "LUX", "MAR", "MAS", "MDA", "MEX",
			"MGL", "MKD", "MLT", "MNE", "NED", "NGR", "NOR", "NRU", "NZL", "PAK",
			"PAN", "PER", "PHI", "PNG", "POL", "POR", "PRK", "PUR", "QAT", "ROU",
			"RSA", "RUS", "SAM", "SGP", "SLO", "SMR", "SRB", "SRI", "SUI", "SVK",
			"SWE", "SYR", "THA", "TJK", "TKM", "TON", "TPE", "TTO", "TUN", "TUR",
			"UAE", "UGA", "UKR", "URU", "USA", "UZB", "VEN", "VIE", "YEM", "ZIM",
		),
	}
}

// Extend adds entries to the rule sets. Abbreviations and country codes are
// upper-cased, words and keywords lower-cased.
func (r *Rules) Extend(teamAbbreviations, teamWords, divisionKeywords, countryCodes []string) {
	add := func(dst *map[string]bool, values []string, fold func(string) string) {
		if *dst == nil {
			*dst = make(map[string]bool)
		}
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				(*dst)[fold(v)] = true
			}
		}
	}
	add(&r.TeamAbbreviations, teamAbbreviations, strings.ToUpper)
	add(&r.TeamWords, teamWords, strings.ToLower)
	add(&r.DivisionKeywords, divisionKeywords, strings.ToLower)
	add(&r.CountryCodes, countryCodes, strings.ToUpper)
}

// IsCountryCode reports whether s is a known three-letter upper-case code.
func (r *Rules) IsCountryCode(s string) bool {
	return len(s) == 3 && strings.ToUpper(s) == s && r.CountryCodes[s]
}

// hasTeamIndicator reports whether text names an organisation.
func (r *Rules) hasTeamIndicator(text string) bool {
	for _, tok := range tokens(text) {
		if r.TeamAbbreviations[strings.ToUpper(tok)] && strings.ToUpper(tok) == tok {
			return true
		}
		if r.TeamWords[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}

// hasDivisionKeyword reports whether text names an age group or division.
func (r *Rules) hasDivisionKeyword(text string) bool {
	for _, tok := range tokens(text) {
		if r.DivisionKeywords[strings.ToLower(tok)] {
			return true
		}
	}
	return false
}

func setOf(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

var (
	integerPattern = regexp.MustCompile(`^\d+$`)
	decimalPattern = regexp.MustCompile(`^\d+[.,]\d+$`)
	numericPattern = regexp.MustCompile(`^\d+([.,]\d+)?$`)
	yearPattern    = regexp.MustCompile(`^(19|20)\d{2}$`)
	weightPattern  = regexp.MustCompile(`(?i)(^|[^\w+])\+?\d{2,3}\s*kg(\+|\b|$)`)
)

// isNumeric reports whether s is a plain integer or decimal.
func isNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// tokens splits text into words. Letters, digits and dots stay together so
// abbreviations such as "b.w." survive; trailing dots are dropped.
func tokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "."); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// isAlphabetic reports whether s is name-like text: at least one letter and
// otherwise only letters, spaces, dots, hyphens and apostrophes.
func isAlphabetic(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ' || r == '.' || r == '-' || r == '\'' || r == '’':
		default:
			return false
		}
	}
	return hasLetter
}
