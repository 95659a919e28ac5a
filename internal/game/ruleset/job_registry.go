package ruleset

import (
	"fmt"
	"strings"
)

// JobRegistry is the immutable catalog of every job, indexed by abbreviation.
type JobRegistry struct {
	jobs map[string]*Job
}

// BuildJobRegistry validates defs and links descendants into a JobRegistry.
//
// Precondition: defs may be empty; nil entries are reported as violations.
// Postcondition: Returns a registry holding exactly one Job per def, or an error
// describing every violation found. Descent in the returned registry is one level
// deep and forms a forest.
func BuildJobRegistry(defs []*JobDef) (*JobRegistry, error) {
	var errs []string
	r := &JobRegistry{jobs: make(map[string]*Job, len(defs))}
	accepted := make([]*JobDef, 0, len(defs))

	for i, d := range defs {
		if d == nil {
			errs = append(errs, fmt.Sprintf("job #%d is nil", i))
			continue
		}
		if d.Abbreviation == "" {
			errs = append(errs, fmt.Sprintf("job #%d: abbreviation must not be empty", i))
			continue
		}
		if _, dup := r.jobs[d.Abbreviation]; dup {
			errs = append(errs, fmt.Sprintf("job %s: abbreviation already registered", d.Abbreviation))
			continue
		}
		if !d.Family.Valid() {
			errs = append(errs, fmt.Sprintf("job %s: unknown family %q", d.Abbreviation, d.Family))
			continue
		}
		armor := d.Family.MinArmor()
		if d.Armor != "" {
			a, err := ParseArmorCapability(d.Armor)
			if err != nil {
				errs = append(errs, fmt.Sprintf("job %s: %v", d.Abbreviation, err))
				continue
			}
			if a < armor {
				errs = append(errs, fmt.Sprintf("job %s: armor %s is below the %s family minimum %s",
					d.Abbreviation, a, d.Family, armor))
				continue
			}
			armor = a
		}
		r.jobs[d.Abbreviation] = &Job{
			abbreviation:    d.Abbreviation,
			name:            d.Name,
			family:          d.Family,
			armor:           armor,
			mainStats:       d.Family.mainStats(),
			supportingStats: d.Family.supportingStats(),
		}
		accepted = append(accepted, d)
	}

	baseOf := make(map[string]string)
	for _, d := range accepted {
		j := r.jobs[d.Abbreviation]
		seen := make(map[string]bool, len(d.Descendants))
		for _, code := range d.Descendants {
			switch {
			case code == d.Abbreviation:
				errs = append(errs, fmt.Sprintf("job %s: cannot descend from itself", code))
				continue
			case seen[code]:
				errs = append(errs, fmt.Sprintf("job %s: descendant %s listed twice", d.Abbreviation, code))
				continue
			}
			seen[code] = true
			desc, ok := r.jobs[code]
			if !ok {
				errs = append(errs, fmt.Sprintf("job %s: unknown descendant %q", d.Abbreviation, code))
				continue
			}
			if prev, claimed := baseOf[code]; claimed {
				errs = append(errs, fmt.Sprintf("job %s: descendant of both %s and %s", code, prev, d.Abbreviation))
				continue
			}
			baseOf[code] = d.Abbreviation
			j.descendants = append(j.descendants, desc)
		}
	}
	for _, d := range accepted {
		j := r.jobs[d.Abbreviation]
		for _, desc := range j.descendants {
			if desc.IsBase() {
				errs = append(errs, fmt.Sprintf("job %s: descendant of %s cannot have descendants of its own",
					desc.abbreviation, j.abbreviation))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("job catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return r, nil
}

// Job returns the job with the given abbreviation. The match is exact and case-sensitive.
//
// Precondition: abbreviation may be any string.
// Postcondition: Returns the registered Job and true, or nil and false if not found.
func (r *JobRegistry) Job(abbreviation string) (*Job, bool) {
	j, ok := r.jobs[abbreviation]
	return j, ok
}

// All returns every registered job.
//
// Postcondition: the returned set is a fresh copy.
func (r *JobRegistry) All() JobSet {
	return JobSet(r.jobs).Clone()
}

// Len returns the number of registered jobs.
func (r *JobRegistry) Len() int { return len(r.jobs) }

// WithArmor returns every job whose armor capability allows armor of weight required.
func (r *JobRegistry) WithArmor(required ArmorCapability) JobSet {
	out := make(JobSet)
	for _, j := range r.jobs {
		if j.armor.Allows(required) {
			out.Add(j)
		}
	}
	return out
}
