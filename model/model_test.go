package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// Outcome Tests
// ============================================================================

func TestOutcomeNames(t *testing.T) {
	tests := []struct {
		outcome Outcome
		name    string
		code    string
	}{
		{Successful, "successful", "s"},
		{Unsuccessful, "unsuccessful", "f"},
		{NoAttempt, "no_attempt", "na"},
		{Outcome(42), "no_attempt", "na"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.name {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.outcome), got, tt.name)
		}
		if got := tt.outcome.Code(); got != tt.code {
			t.Errorf("Outcome(%d).Code() = %q, want %q", int(tt.outcome), got, tt.code)
		}
	}
}

func TestLiftAttemptJSON(t *testing.T) {
	data, err := json.Marshal(LiftAttempt{Weight: "150", Outcome: Unsuccessful})
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if got := string(data); got != `{"weight":"150","outcome":"unsuccessful"}` {
		t.Errorf("json = %s", got)
	}
}

// ============================================================================
// FormatVariant Tests
// ============================================================================

func TestFormatVariantString(t *testing.T) {
	tests := []struct {
		variant FormatVariant
		want    string
	}{
		{ClubFormat, "club_format"},
		{NationFormat, "nation_format"},
		{TeamFormat, "team_format"},
		{DynamicFormat, "dynamic"},
	}

	for _, tt := range tests {
		if got := tt.variant.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// ============================================================================
// AthleteResult Tests
// ============================================================================

func TestAthleteResultBestLifts(t *testing.T) {
	r := AthleteResult{
		Snatch: [3]LiftAttempt{
			{Weight: "140", Outcome: Successful},
			{Weight: "145", Outcome: Successful},
			{Weight: "150", Outcome: Unsuccessful},
		},
		CleanJerk: [3]LiftAttempt{
			{Weight: "175", Outcome: Unsuccessful},
			{Weight: "175", Outcome: Unsuccessful},
			{Outcome: NoAttempt},
		},
	}

	if got := r.BestSnatch(); got != "145" {
		t.Errorf("BestSnatch() = %q, want 145", got)
	}
	if got := r.BestCleanJerk(); got != "" {
		t.Errorf("BestCleanJerk() = %q, want empty", got)
	}
}

func TestAthleteResultJSON(t *testing.T) {
	r := AthleteResult{
		Competition: Competition{Name: "Polish Championships", Date: "2024-05-01"},
		WeightClass: "89 kg",
		Standing:    "1",
		Name:        "Smith J.",
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		`"competition":"Polish Championships"`,
		`"date":"2024-05-01"`,
		`"weight_class":"89 kg"`,
		`"outcome":"no_attempt"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("json missing %s: %s", want, got)
		}
	}
	if strings.Contains(got, "birth_year") {
		t.Errorf("empty birth year should be omitted: %s", got)
	}
}

// ============================================================================
// Competition Tests
// ============================================================================

func TestCompetitionLabel(t *testing.T) {
	tests := []struct {
		name string
		comp Competition
		want string
	}{
		{"name and date", Competition{Name: "Cup", Date: "2024", URL: "u"}, "Cup (2024)"},
		{"name only", Competition{Name: "Cup", URL: "u"}, "Cup"},
		{"url only", Competition{URL: "https://example.org/r.html"}, "https://example.org/r.html"},
		{"empty", Competition{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.comp.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Diagnostics Tests
// ============================================================================

func TestDiagnosticsFinish(t *testing.T) {
	tests := []struct {
		name   string
		tables [][2]int
		preset ReasonCode
		want   ReasonCode
	}{
		{"no tables", nil, "", ReasonNoTables},
		{"tables without records", [][2]int{{5, 0}, {2, 0}}, "", ReasonNoRecords},
		{"records", [][2]int{{5, 0}, {9, 4}}, "", ReasonOK},
		{"failure kept", [][2]int{{9, 4}}, ReasonFetchFailed, ReasonFetchFailed},
		{"ok recomputed", nil, ReasonOK, ReasonNoTables},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diagnostics{Reason: tt.preset}
			for _, tbl := range tt.tables {
				d.AddTable(tbl[0], tbl[1])
			}
			d.Finish()
			if d.Reason != tt.want {
				t.Errorf("Reason = %q, want %q", d.Reason, tt.want)
			}
		})
	}
}

func TestDiagnosticsAddTable(t *testing.T) {
	var d Diagnostics
	if !d.Zero() {
		t.Error("new Diagnostics should be zero")
	}

	d.AddTable(10, 3)
	d.AddTable(4, 0)

	if d.TableCount != 2 || d.RowCount != 14 || d.RecordCount != 3 {
		t.Errorf("counts = %d/%d/%d, want 2/14/3", d.TableCount, d.RowCount, d.RecordCount)
	}
	if d.Zero() {
		t.Error("Zero() = true with records")
	}
	if len(d.Tables) != 2 || d.Tables[1].Index != 1 || d.Tables[1].Rows != 4 {
		t.Errorf("Tables = %+v", d.Tables)
	}
}
