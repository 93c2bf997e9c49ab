package results

import (
	"strings"

	"github.com/tsawler/barbell/model"
)

// formatRule is one step of format detection. Steps are tried in order.
type formatRule struct {
	variant model.FormatVariant
	match   func(lower string, cells int) bool
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var formatRules = []formatRule{
	{model.TeamFormat, func(lower string, _ int) bool { return containsAny(lower, "birthyear", "birth year", "points") }},
	{model.NationFormat, func(lower string, _ int) bool { return containsAny(lower, "nation", "country") }},
	{model.ClubFormat, func(lower string, _ int) bool { return strings.Contains(lower, "club") }},
	// Wide layouts carry both the nation and the group column.
	{model.NationFormat, func(_ string, cells int) bool { return cells >= 15 }},
	{model.TeamFormat, func(lower string, cells int) bool { return strings.Contains(lower, "surname") && cells < 12 }},
}

// DetectFormat returns the column layout announced by a header row, given the
// row's cell texts and its cell count with spacers removed. Club format is the fallback.
func DetectFormat(texts []string, cellCount int) model.FormatVariant {
	lower := strings.ToLower(strings.Join(texts, " "))
	for _, fr := range formatRules {
		if fr.match(lower, cellCount) {
			return fr.variant
		}
	}
	return model.ClubFormat
}
