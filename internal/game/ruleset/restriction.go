package ruleset

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RestrictionDef declares a named group restriction code printed on gear.
// Exactly one of Jobs, MinArmor, or All selects the group's members.
type RestrictionDef struct {
	Code     string   `yaml:"code"`
	Name     string   `yaml:"name"`
	Jobs     []string `yaml:"jobs"`      // explicit job abbreviations
	MinArmor string   `yaml:"min_armor"` // every job able to wear this weight
	All      bool     `yaml:"all"`       // every job
}

func (d *RestrictionDef) selectors() int {
	n := 0
	if len(d.Jobs) > 0 {
		n++
	}
	if d.MinArmor != "" {
		n++
	}
	if d.All {
		n++
	}
	return n
}

// Restriction is a resolved restriction code: its display name and the closed
// set of jobs eligible to equip gear carrying it.
type Restriction struct {
	code string
	name string
	jobs JobSet
}

// Code returns the code printed on gear.
func (r *Restriction) Code() string { return r.code }

// Name returns the display name: the job name for a job code, the group name otherwise.
func (r *Restriction) Name() string { return r.name }

// Jobs returns the eligible jobs.
//
// Postcondition: the returned set is a fresh copy.
func (r *Restriction) Jobs() JobSet { return r.jobs.Clone() }

// RestrictionTable maps every restriction code to its descendant-closed set of eligible jobs.
type RestrictionTable struct {
	entries map[string]*Restriction
}

// BuildRestrictionTable constructs the restriction table from the job catalog and
// the declared group codes.
//
// Every job is first seeded under its own abbreviation. Groups are then overlaid,
// replacing any seed with the same code. Finally each entry is expanded so that
// every member's descendants are also members.
//
// Precondition: jobs must be non-nil.
// Postcondition: Returns a table whose every entry is closed under WithDescendants,
// or an error describing every invalid group.
func BuildRestrictionTable(jobs *JobRegistry, groups []*RestrictionDef) (*RestrictionTable, error) {
	var errs []string
	entries := make(map[string]*Restriction, jobs.Len()+len(groups))

	for code, j := range jobs.jobs {
		entries[code] = &Restriction{code: code, name: j.name, jobs: NewJobSet(j)}
	}

	overlaid := make(map[string]bool, len(groups))
	for i, g := range groups {
		if g == nil {
			errs = append(errs, fmt.Sprintf("restriction #%d is nil", i))
			continue
		}
		if g.Code == "" {
			errs = append(errs, fmt.Sprintf("restriction #%d: code must not be empty", i))
			continue
		}
		if overlaid[g.Code] {
			errs = append(errs, fmt.Sprintf("restriction %s: code declared twice", g.Code))
			continue
		}
		overlaid[g.Code] = true
		if n := g.selectors(); n != 1 {
			errs = append(errs, fmt.Sprintf("restriction %s: exactly one of jobs, min_armor, all must be set (got %d)", g.Code, n))
			continue
		}

		var members JobSet
		switch {
		case g.All:
			members = jobs.All()
		case g.MinArmor != "":
			a, err := ParseArmorCapability(g.MinArmor)
			if err != nil {
				errs = append(errs, fmt.Sprintf("restriction %s: %v", g.Code, err))
				continue
			}
			members = jobs.WithArmor(a)
		default:
			members = make(JobSet, len(g.Jobs))
			for _, code := range g.Jobs {
				j, ok := jobs.Job(code)
				if !ok {
					errs = append(errs, fmt.Sprintf("restriction %s: unknown job %q", g.Code, code))
					continue
				}
				members.Add(j)
			}
		}
		entries[g.Code] = &Restriction{code: g.Code, name: g.Name, jobs: members}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("restriction table validation failed: %s", strings.Join(errs, "; "))
	}

	for _, r := range entries {
		r.jobs = expand(r.jobs)
	}
	return &RestrictionTable{entries: entries}, nil
}

// expand returns the union of WithDescendants over every member of s.
func expand(s JobSet) JobSet {
	out := make(JobSet, len(s))
	for _, j := range s {
		for k, d := range j.WithDescendants() {
			out[k] = d
		}
	}
	return out
}

// Resolve returns the jobs eligible to equip gear carrying code.
//
// Precondition: code may be any string.
// Postcondition: Returns a fresh set and true, or nil and false if code is unknown.
func (t *RestrictionTable) Resolve(code string) (JobSet, bool) {
	r, ok := t.entries[code]
	if !ok {
		return nil, false
	}
	return r.Jobs(), true
}

// Restriction returns the full entry for code.
//
// Postcondition: Returns the entry and true, or nil and false if code is unknown.
func (t *RestrictionTable) Restriction(code string) (*Restriction, bool) {
	r, ok := t.entries[code]
	return r, ok
}

// Allows reports whether job may equip gear carrying code.
// Unknown codes allow no job.
func (t *RestrictionTable) Allows(code string, job *Job) bool {
	r, ok := t.entries[code]
	return ok && r.jobs.Contains(job)
}

// Codes returns every known restriction code in lexical order.
func (t *RestrictionTable) Codes() []string {
	out := make([]string, 0, len(t.entries))
	for code := range t.entries {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// LoadRestrictions reads all .yaml files in dir and parses each as a list of RestrictionDefs.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed defs (may be empty slice) or a non-nil error.
func LoadRestrictions(dir string) ([]*RestrictionDef, error) {
	return LoadRestrictionsFS(os.DirFS(dir), ".")
}

// LoadRestrictionsFS is LoadRestrictions over an arbitrary filesystem.
func LoadRestrictionsFS(fsys fs.FS, dir string) ([]*RestrictionDef, error) {
	files, err := yamlFilesFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	defs := []*RestrictionDef{}
	for _, path := range files {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var batch []*RestrictionDef
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing restriction file %s: %w", path, err)
		}
		defs = append(defs, batch...)
	}
	return defs, nil
}
