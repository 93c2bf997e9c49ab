package model

// Competition is the context a results page belongs to.
// The parser never modifies it.
type Competition struct {
	Name        string `json:"competition" yaml:"name"`
	Date        string `json:"date" yaml:"date"` // free text as published
	Location    string `json:"location" yaml:"location"`
	HostNation  string `json:"host_nation" yaml:"host_nation"`
	Sex         string `json:"sex" yaml:"sex"`
	AgeCategory string `json:"age_category" yaml:"age_category"`
	URL         string `json:"url" yaml:"url"`
}

// Label returns a short human-readable identifier for logs.
func (c Competition) Label() string {
	switch {
	case c.Name != "" && c.Date != "":
		return c.Name + " (" + c.Date + ")"
	case c.Name != "":
		return c.Name
	default:
		return c.URL
	}
}
