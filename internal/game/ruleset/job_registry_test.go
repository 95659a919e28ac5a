package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/jobgear/internal/game/ruleset"
	"github.com/cory-johannsen/jobgear/internal/game/stat"
)

func smallCatalog() []*ruleset.JobDef {
	return []*ruleset.JobDef{
		{Abbreviation: "GLA", Name: "Gladiator", Family: ruleset.FamilyTank, Descendants: []string{"PLD"}},
		{Abbreviation: "PLD", Name: "Paladin", Family: ruleset.FamilyTank},
		{Abbreviation: "LNC", Name: "Lancer", Family: ruleset.FamilyStrength, Armor: "mail"},
		{Abbreviation: "CNJ", Name: "Conjurer", Family: ruleset.FamilyHealer, Descendants: []string{"WHM"}},
		{Abbreviation: "WHM", Name: "White Mage", Family: ruleset.FamilyHealer},
		{Abbreviation: "CUL", Name: "Culinarian", Family: ruleset.FamilyCrafting},
		{Abbreviation: "FSH", Name: "Fisher", Family: ruleset.FamilyGathering},
	}
}

func TestBuildJobRegistry_Job_ReturnsKnownJob(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(smallCatalog())
	require.NoError(t, err)
	got, ok := reg.Job("GLA")
	require.True(t, ok)
	assert.Equal(t, "GLA", got.Abbreviation())
	assert.Equal(t, "Gladiator", got.Name())
	assert.Equal(t, 7, reg.Len())
}

func TestBuildJobRegistry_Job_UnknownReturnsNilFalse(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(smallCatalog())
	require.NoError(t, err)
	got, ok := reg.Job("gla")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestBuildJobRegistry_EmptyCatalog(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.All())
}

func TestBuildJobRegistry_StatPolicy(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(smallCatalog())
	require.NoError(t, err)

	gla, _ := reg.Job("GLA")
	assert.True(t, gla.MainStats().Equal(stat.NewSet(stat.Strength, stat.Vitality)))
	assert.True(t, gla.SupportingStats().Equal(stat.NewSet(stat.Tenacity, stat.Defense)))

	cnj, _ := reg.Job("CNJ")
	assert.True(t, cnj.MainStats().Equal(stat.NewSet(stat.Mind, stat.Vitality)))
	assert.True(t, cnj.SupportingStats().Equal(stat.NewSet(stat.Piety)))

	lnc, _ := reg.Job("LNC")
	assert.True(t, lnc.MainStats().Equal(stat.NewSet(stat.Strength, stat.Vitality)))
	assert.Equal(t, 0, lnc.SupportingStats().Len())

	cul, _ := reg.Job("CUL")
	assert.Equal(t, 0, cul.MainStats().Len())
	assert.True(t, cul.SupportingStats().Equal(stat.NewSet(stat.Control, stat.CP, stat.Craftsmanship)))
	assert.Equal(t, ruleset.CategoryCrafting, cul.Category())

	fsh, _ := reg.Job("FSH")
	assert.Equal(t, 0, fsh.MainStats().Len())
	assert.True(t, fsh.RelevantStats().Equal(stat.NewSet(stat.Gathering, stat.GP, stat.Perception)))
	assert.Equal(t, ruleset.CategoryGathering, fsh.Category())
}

func TestBuildJobRegistry_ArmorDefaultsAndOverride(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(smallCatalog())
	require.NoError(t, err)
	cases := map[string]ruleset.ArmorCapability{
		"GLA": ruleset.ArmorPlate,
		"LNC": ruleset.ArmorMail,
		"CNJ": ruleset.ArmorNone,
		"CUL": ruleset.ArmorNone,
	}
	for code, want := range cases {
		j, ok := reg.Job(code)
		require.True(t, ok, code)
		assert.Equal(t, want, j.Armor(), code)
	}
}

func TestJob_AccessorsReturnCopies(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(smallCatalog())
	require.NoError(t, err)
	gla, _ := reg.Job("GLA")

	gla.MainStats()[stat.Piety] = struct{}{}
	assert.False(t, gla.MainStats().Contains(stat.Piety))

	delete(gla.Descendants(), "PLD")
	assert.Equal(t, 1, gla.Descendants().Len())

	all := reg.All()
	delete(all, "GLA")
	_, ok := reg.Job("GLA")
	assert.True(t, ok)
	assert.Equal(t, 7, reg.All().Len())
}

func TestJob_WithDescendants(t *testing.T) {
	reg, err := ruleset.BuildJobRegistry(smallCatalog())
	require.NoError(t, err)
	gla, _ := reg.Job("GLA")
	pld, _ := reg.Job("PLD")

	assert.Equal(t, []string{"GLA", "PLD"}, gla.WithDescendants().Abbreviations())
	assert.Equal(t, []string{"PLD"}, pld.WithDescendants().Abbreviations())
	assert.True(t, gla.IsBase())
	assert.False(t, pld.IsBase())
}

func TestBuildJobRegistry_Violations(t *testing.T) {
	cases := []struct {
		name string
		defs []*ruleset.JobDef
		want string
	}{
		{"nil def", []*ruleset.JobDef{nil}, "job #0 is nil"},
		{"empty abbreviation", []*ruleset.JobDef{{Family: ruleset.FamilyTank}}, "abbreviation must not be empty"},
		{"duplicate", []*ruleset.JobDef{
			{Abbreviation: "PLD", Family: ruleset.FamilyTank},
			{Abbreviation: "PLD", Family: ruleset.FamilyTank},
		}, "job PLD: abbreviation already registered"},
		{"unknown family", []*ruleset.JobDef{{Abbreviation: "BLU", Family: "limited"}}, `unknown family "limited"`},
		{"unknown armor", []*ruleset.JobDef{{Abbreviation: "PGL", Family: ruleset.FamilyStrength, Armor: "cloth"}}, `unknown armor capability "cloth"`},
		{"armor below minimum", []*ruleset.JobDef{{Abbreviation: "MRD", Family: ruleset.FamilyTank, Armor: "mail"}}, "below the tank family minimum plate"},
		{"self descent", []*ruleset.JobDef{{Abbreviation: "ROG", Family: ruleset.FamilyDexterity, Descendants: []string{"ROG"}}}, "cannot descend from itself"},
		{"unknown descendant", []*ruleset.JobDef{{Abbreviation: "ROG", Family: ruleset.FamilyDexterity, Descendants: []string{"NIN"}}}, `unknown descendant "NIN"`},
		{"listed twice", []*ruleset.JobDef{
			{Abbreviation: "ROG", Family: ruleset.FamilyDexterity, Descendants: []string{"NIN", "NIN"}},
			{Abbreviation: "NIN", Family: ruleset.FamilyDexterity},
		}, "descendant NIN listed twice"},
		{"two bases", []*ruleset.JobDef{
			{Abbreviation: "ACN", Family: ruleset.FamilyCaster, Descendants: []string{"SCH"}},
			{Abbreviation: "CNJ", Family: ruleset.FamilyHealer, Descendants: []string{"SCH"}},
			{Abbreviation: "SCH", Family: ruleset.FamilyHealer},
		}, "job SCH: descendant of both ACN and CNJ"},
		{"two levels", []*ruleset.JobDef{
			{Abbreviation: "A", Family: ruleset.FamilyCaster, Descendants: []string{"B"}},
			{Abbreviation: "B", Family: ruleset.FamilyCaster, Descendants: []string{"C"}},
			{Abbreviation: "C", Family: ruleset.FamilyCaster},
		}, "job B: descendant of A cannot have descendants of its own"},
		{"cycle", []*ruleset.JobDef{
			{Abbreviation: "A", Family: ruleset.FamilyCaster, Descendants: []string{"B"}},
			{Abbreviation: "B", Family: ruleset.FamilyCaster, Descendants: []string{"A"}},
		}, "cannot have descendants of its own"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := ruleset.BuildJobRegistry(tc.defs)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestBuildJobRegistry_CollectsAllViolations(t *testing.T) {
	_, err := ruleset.BuildJobRegistry([]*ruleset.JobDef{
		{Abbreviation: "X", Family: "nope"},
		{Abbreviation: "Y", Family: ruleset.FamilyTank, Armor: "leather"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job X")
	assert.Contains(t, err.Error(), "job Y")
}

func TestLoadJobs_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tanks.yaml"), `
- abbreviation: GLA
  name: Gladiator
  family: tank
  descendants: [PLD]
- abbreviation: PLD
  name: Paladin
  family: tank
`)
	writeFile(t, filepath.Join(dir, "strength.yml"), `
- abbreviation: LNC
  name: Lancer
  family: strength
  armor: mail
`)
	writeFile(t, filepath.Join(dir, "README.md"), "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	defs, err := ruleset.LoadJobs(dir)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	// files are read in name order: strength.yml before tanks.yaml
	assert.Equal(t, "LNC", defs[0].Abbreviation)
	assert.Equal(t, "mail", defs[0].Armor)
	assert.Equal(t, "GLA", defs[1].Abbreviation)
	assert.Equal(t, ruleset.FamilyTank, defs[1].Family)
	assert.Equal(t, []string{"PLD"}, defs[1].Descendants)
}

func TestLoadJobs_EmptyDir(t *testing.T) {
	defs, err := ruleset.LoadJobs(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadJobs_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "abbreviation: [unterminated")
	_, err := ruleset.LoadJobs(dir)
	assert.Error(t, err)
}

func TestLoadJobs_MissingDir(t *testing.T) {
	_, err := ruleset.LoadJobs("/nonexistent/path")
	assert.Error(t, err)
}

func TestProperty_BuildJobRegistry_LookupIsLeftInverse(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		codes := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-Z]{3}`), 1, 20, rapid.ID[string]).Draw(rt, "codes")
		defs := make([]*ruleset.JobDef, len(codes))
		for i, c := range codes {
			defs[i] = &ruleset.JobDef{
				Abbreviation: c,
				Family:       rapid.SampledFrom(ruleset.Families()).Draw(rt, "family"),
			}
		}
		reg, err := ruleset.BuildJobRegistry(defs)
		require.NoError(rt, err)
		for _, c := range codes {
			j, ok := reg.Job(c)
			require.True(rt, ok)
			assert.Equal(rt, c, j.Abbreviation())
			assert.Equal(rt, []string{c}, j.WithDescendants().Abbreviations())
		}
	})
}
