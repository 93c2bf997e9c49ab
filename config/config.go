// Package config loads YAML files that extend the parser's keyword rules and
// describe the competitions to parse.
//
// A rules file adds to the built-in sets:
//
//	team_abbreviations: [CWKS, MUKS]
//	team_words: [sportverein]
//	division_keywords: [u23, veterans]
//	country_codes: [AIN, EOR]
//
// A competition list holds one entry per results page:
//
//	competitions:
//	  - name: Polish Championships
//	    date: 2024-05-01
//	    url: results/pl-2024.html
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/barbell/model"
	"github.com/tsawler/barbell/results"
)

// ErrNoCompetitions is returned when a competition list has no entries.
var ErrNoCompetitions = errors.New("no competitions listed")

// RulesFile is the on-disk shape of a rules extension.
type RulesFile struct {
	TeamAbbreviations []string `yaml:"team_abbreviations"`
	TeamWords         []string `yaml:"team_words"`
	DivisionKeywords  []string `yaml:"division_keywords"`
	CountryCodes      []string `yaml:"country_codes"`
}

// Apply adds the file's entries to r.
func (f RulesFile) Apply(r *results.Rules) {
	r.Extend(f.TeamAbbreviations, f.TeamWords, f.DivisionKeywords, f.CountryCodes)
}

// ParseRules returns the default rules extended by YAML data.
func ParseRules(data []byte) (*results.Rules, error) {
	var f RulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for _, code := range f.CountryCodes {
		if len(strings.TrimSpace(code)) != 3 {
			return nil, fmt.Errorf("country code %q: must be three letters", code)
		}
	}

	r := results.DefaultRules()
	f.Apply(r)
	return r, nil
}

// LoadRules reads a rules extension file. An empty path returns the default
// rules.
func LoadRules(path string) (*results.Rules, error) {
	if path == "" {
		return results.DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	r, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

type competitionList struct {
	Competitions []model.Competition `yaml:"competitions"`
}

// ParseCompetitions decodes a competition list. Entries need a name or a URL.
func ParseCompetitions(data []byte) ([]model.Competition, error) {
	var list competitionList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(list.Competitions) == 0 {
		return nil, ErrNoCompetitions
	}
	for i, c := range list.Competitions {
		if c.Name == "" && c.URL == "" {
			return nil, fmt.Errorf("competition %d: name or url is required", i+1)
		}
	}
	return list.Competitions, nil
}

// LoadCompetitions reads a competition list file.
func LoadCompetitions(path string) ([]model.Competition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	comps, err := ParseCompetitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return comps, nil
}

// LoadCompetition reads a single competition document, the context for
// pages parsed one at a time. An empty path returns a zero Competition.
func LoadCompetition(path string) (model.Competition, error) {
	var c model.Competition
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return c, nil
}
