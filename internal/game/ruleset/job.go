package ruleset

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/jobgear/internal/game/stat"
)

// JobDef is the declared form of a job as it appears in content files.
//
// Precondition: Abbreviation and Family must be non-empty after loading.
type JobDef struct {
	Abbreviation string   `yaml:"abbreviation"`
	Name         string   `yaml:"name"`
	Family       Family   `yaml:"family"`
	Armor        string   `yaml:"armor"`       // empty = family minimum
	Descendants  []string `yaml:"descendants"` // abbreviations of advanced jobs
}

// Job is a playable job with its stat priorities and armor capability.
// Jobs are created by BuildJobRegistry and never change afterwards.
type Job struct {
	abbreviation    string
	name            string
	family          Family
	armor           ArmorCapability
	mainStats       stat.Set
	supportingStats stat.Set
	descendants     []*Job
}

// Abbreviation returns the unique short identifier, e.g. "PLD".
func (j *Job) Abbreviation() string { return j.abbreviation }

// Name returns the display name.
func (j *Job) Name() string { return j.name }

// Family returns the job's family.
func (j *Job) Family() Family { return j.family }

// Category returns the job's production category.
func (j *Job) Category() Category { return j.family.Category() }

// Armor returns the heaviest armor weight the job may equip.
func (j *Job) Armor() ArmorCapability { return j.armor }

// MainStats returns the stats that take absolute priority when comparing gear.
// Empty for crafting and gathering jobs.
func (j *Job) MainStats() stat.Set { return j.mainStats.Clone() }

// SupportingStats returns the tiebreaker stats, which are the only criterion
// when MainStats is empty.
func (j *Job) SupportingStats() stat.Set { return j.supportingStats.Clone() }

// RelevantStats returns MainStats ∪ SupportingStats.
//
// Postcondition: Returns a fresh, non-empty set for every catalogued job.
func (j *Job) RelevantStats() stat.Set {
	return j.mainStats.Union(j.supportingStats)
}

// Descendants returns the advanced jobs this base job can become.
func (j *Job) Descendants() JobSet {
	return NewJobSet(j.descendants...)
}

// WithDescendants returns the job together with all of its specializations.
// Descent is one level deep, so for an advanced job this is just {j}.
//
// Postcondition: the result always contains j.
func (j *Job) WithDescendants() JobSet {
	s := NewJobSet(j)
	for _, d := range j.descendants {
		s.Add(d)
	}
	return s
}

// IsBase reports whether the job has any declared descendants.
func (j *Job) IsBase() bool { return len(j.descendants) > 0 }

// String returns the abbreviation.
func (j *Job) String() string { return j.abbreviation }

// LoadJobs reads all .yaml files in dir and parses each as a list of JobDefs.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed defs (may be empty slice) or a non-nil error.
func LoadJobs(dir string) ([]*JobDef, error) {
	return LoadJobsFS(os.DirFS(dir), ".")
}

// LoadJobsFS is LoadJobs over an arbitrary filesystem, such as embedded content.
//
// Precondition: fsys must be non-nil; dir must be a readable directory within fsys.
// Postcondition: Returns all parsed defs in file-name order or a non-nil error.
func LoadJobsFS(fsys fs.FS, dir string) ([]*JobDef, error) {
	files, err := yamlFilesFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	defs := []*JobDef{}
	for _, path := range files {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var batch []*JobDef
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing job file %s: %w", path, err)
		}
		defs = append(defs, batch...)
	}
	return defs, nil
}
