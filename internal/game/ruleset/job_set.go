package ruleset

import "sort"

// JobSet is an unordered set of jobs keyed by abbreviation.
type JobSet map[string]*Job

// NewJobSet returns a JobSet holding jobs.
func NewJobSet(jobs ...*Job) JobSet {
	s := make(JobSet, len(jobs))
	for _, j := range jobs {
		s.Add(j)
	}
	return s
}

// Add inserts j into s.
//
// Precondition: j must be non-nil.
func (s JobSet) Add(j *Job) {
	s[j.abbreviation] = j
}

// Contains reports whether j is a member of s.
func (s JobSet) Contains(j *Job) bool {
	if j == nil {
		return false
	}
	got, ok := s[j.abbreviation]
	return ok && got == j
}

// Len returns the number of jobs in s.
func (s JobSet) Len() int { return len(s) }

// Union returns a new set holding every job in s or other.
func (s JobSet) Union(other JobSet) JobSet {
	out := make(JobSet, len(s)+len(other))
	for k, j := range s {
		out[k] = j
	}
	for k, j := range other {
		out[k] = j
	}
	return out
}

// Clone returns a copy of s.
func (s JobSet) Clone() JobSet { return s.Union(nil) }

// IsSubsetOf reports whether every job in s is also in other.
func (s JobSet) IsSubsetOf(other JobSet) bool {
	for _, j := range s {
		if !other.Contains(j) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other hold the same jobs.
func (s JobSet) Equal(other JobSet) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Abbreviations returns the member abbreviations in lexical order.
func (s JobSet) Abbreviations() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Jobs returns the members ordered by abbreviation.
func (s JobSet) Jobs() []*Job {
	out := make([]*Job, 0, len(s))
	for _, k := range s.Abbreviations() {
		out = append(out, s[k])
	}
	return out
}
