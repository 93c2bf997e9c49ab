package model

// ReasonCode explains why a competition produced the records it did.
type ReasonCode string

const (
	ReasonOK          ReasonCode = "ok"
	ReasonNoTables    ReasonCode = "no_tables"
	ReasonNoRecords   ReasonCode = "no_records"
	ReasonNoURL       ReasonCode = "no_url"
	ReasonFetchFailed ReasonCode = "fetch_failed"
	ReasonParseFailed ReasonCode = "parse_failed"
)

// TableDiagnostics describes one table of a page.
type TableDiagnostics struct {
	Index   int `json:"index"`
	Rows    int `json:"rows"`
	Records int `json:"records"`
}

// Diagnostics summarises the parse of one competition page.
type Diagnostics struct {
	RunID       string             `json:"run_id,omitempty"`
	Competition string             `json:"competition"`
	TableCount  int                `json:"table_count"`
	RowCount    int                `json:"row_count"`
	RecordCount int                `json:"record_count"`
	Reason      ReasonCode         `json:"reason"`
	Detail      string             `json:"detail,omitempty"`
	Tables      []TableDiagnostics `json:"tables,omitempty"`
}

// Zero reports whether no records were extracted.
func (d *Diagnostics) Zero() bool {
	return d.RecordCount == 0
}

// AddTable records the counts of one parsed table.
func (d *Diagnostics) AddTable(rows, records int) {
	d.Tables = append(d.Tables, TableDiagnostics{
		Index:   len(d.Tables),
		Rows:    rows,
		Records: records,
	})
	d.TableCount++
	d.RowCount += rows
	d.RecordCount += records
}

// Finish sets Reason from the counts unless a failure reason is already set.
func (d *Diagnostics) Finish() {
	if d.Reason != "" && d.Reason != ReasonOK {
		return
	}
	switch {
	case d.TableCount == 0:
		d.Reason = ReasonNoTables
	case d.RecordCount == 0:
		d.Reason = ReasonNoRecords
	default:
		d.Reason = ReasonOK
	}
}
