package ruleset

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/cory-johannsen/jobgear/internal/game/stat"
)

//go:embed content
var content embed.FS

// Taxonomy bundles the job catalog with the restriction table derived from it.
type Taxonomy struct {
	jobs         *JobRegistry
	restrictions *RestrictionTable
}

// Jobs returns the job catalog.
func (t *Taxonomy) Jobs() *JobRegistry { return t.jobs }

// Restrictions returns the restriction table built from the catalog.
func (t *Taxonomy) Restrictions() *RestrictionTable { return t.restrictions }

// NewTaxonomy builds the job catalog and then the restriction table from defs.
//
// Postcondition: Returns a fully linked Taxonomy or a non-nil error.
func NewTaxonomy(jobs []*JobDef, groups []*RestrictionDef) (*Taxonomy, error) {
	reg, err := BuildJobRegistry(jobs)
	if err != nil {
		return nil, err
	}
	table, err := BuildRestrictionTable(reg, groups)
	if err != nil {
		return nil, err
	}
	return &Taxonomy{jobs: reg, restrictions: table}, nil
}

// LoadTaxonomyFS loads job defs from fsys/jobs and restriction defs from fsys/restrictions.
//
// Precondition: fsys must contain both directories.
// Postcondition: Returns a fully linked Taxonomy or a non-nil error.
func LoadTaxonomyFS(fsys fs.FS) (*Taxonomy, error) {
	jobs, err := LoadJobsFS(fsys, "jobs")
	if err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}
	groups, err := LoadRestrictionsFS(fsys, "restrictions")
	if err != nil {
		return nil, fmt.Errorf("loading restrictions: %w", err)
	}
	return NewTaxonomy(jobs, groups)
}

// LoadEmbeddedTaxonomy loads the taxonomy compiled into the binary.
func LoadEmbeddedTaxonomy() (*Taxonomy, error) {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		return nil, err
	}
	return LoadTaxonomyFS(sub)
}

// MustLoadEmbeddedTaxonomy loads the embedded taxonomy, panicking on error.
// The embedded content is static, so an error here is a defect in the build.
func MustLoadEmbeddedTaxonomy() *Taxonomy {
	t, err := LoadEmbeddedTaxonomy()
	if err != nil {
		panic(err)
	}
	return t
}

var (
	defaultOnce     sync.Once
	defaultTaxonomy *Taxonomy
)

// Default returns the process-wide taxonomy, building it on first use.
// Concurrent first calls block until the single build completes.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTaxonomy = MustLoadEmbeddedTaxonomy()
	})
	return defaultTaxonomy
}

// LookupJob returns the job with the given abbreviation from the default taxonomy.
func LookupJob(abbreviation string) (*Job, bool) {
	return Default().Jobs().Job(abbreviation)
}

// AllJobs returns every job in the default taxonomy.
func AllJobs() JobSet {
	return Default().Jobs().All()
}

// RelevantStats returns j.RelevantStats().
func RelevantStats(j *Job) stat.Set {
	return j.RelevantStats()
}

// WithDescendants returns j.WithDescendants().
func WithDescendants(j *Job) JobSet {
	return j.WithDescendants()
}

// ResolveRestriction returns the jobs eligible for gear carrying code in the default taxonomy.
func ResolveRestriction(code string) (JobSet, bool) {
	return Default().Restrictions().Resolve(code)
}
