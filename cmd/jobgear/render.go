package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/jobgear/internal/game/inventory"
	"github.com/cory-johannsen/jobgear/internal/game/ruleset"
)

type jobView struct {
	Abbreviation    string   `yaml:"abbreviation" json:"abbreviation"`
	Name            string   `yaml:"name" json:"name"`
	Family          string   `yaml:"family" json:"family"`
	Category        string   `yaml:"category" json:"category"`
	Armor           string   `yaml:"armor" json:"armor"`
	MainStats       []string `yaml:"main_stats" json:"main_stats"`
	SupportingStats []string `yaml:"supporting_stats" json:"supporting_stats"`
	Descendants     []string `yaml:"descendants,omitempty" json:"descendants,omitempty"`
}

func newJobView(j *ruleset.Job) jobView {
	v := jobView{
		Abbreviation:    j.Abbreviation(),
		Name:            j.Name(),
		Family:          string(j.Family()),
		Category:        string(j.Category()),
		Armor:           j.Armor().String(),
		MainStats:       j.MainStats().Strings(),
		SupportingStats: j.SupportingStats().Strings(),
	}
	if j.IsBase() {
		v.Descendants = j.Descendants().Abbreviations()
	}
	return v
}

type restrictionView struct {
	Code string   `yaml:"code" json:"code"`
	Name string   `yaml:"name" json:"name"`
	Jobs []string `yaml:"jobs" json:"jobs"`
}

func newRestrictionView(r *ruleset.Restriction) restrictionView {
	return restrictionView{Code: r.Code(), Name: r.Name(), Jobs: r.Jobs().Abbreviations()}
}

type checkView struct {
	Code    string `yaml:"code" json:"code"`
	Job     string `yaml:"job" json:"job"`
	Allowed bool   `yaml:"allowed" json:"allowed"`
}

type slotView struct {
	Slot    string `yaml:"slot" json:"slot"`
	Code    string `yaml:"code" json:"code"`
	Name    string `yaml:"name" json:"name"`
	Primary bool   `yaml:"primary" json:"primary"`
}

func newSlotView(s inventory.Slot) slotView {
	return slotView{
		Slot:    string(s),
		Code:    string(s.Code()),
		Name:    inventory.SlotDisplayName(string(s)),
		Primary: s.IsPrimary(),
	}
}

// render writes v to w as YAML or indented JSON.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
